package models

import "time"

// DefaultCategoryIcon is used when the caller creates a category
// without picking an icon.
const DefaultCategoryIcon = "📁"

type Category struct {
	ID        string
	UserID    string
	Name      string
	Icon      string
	CreatedAt time.Time

	// TaskCount is derived from the task store at read time
	// and is never persisted.
	TaskCount int
}
