package models

import "time"

type User struct {
	ID        string
	Username  string
	Email     string
	PhoneNo   string
	Password  string // argon2id hash, never the plaintext
	CreatedAt time.Time
	UpdatedAt time.Time
}
