package models

import "time"

type Task struct {
	ID          string
	UserID      string
	CategoryID  string
	Description string
	Completed   bool
	CreatedAt   time.Time
}
