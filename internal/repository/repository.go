package repository

import (
	"context"
	"errors"

	"github.com/okarpov/tasktracker/internal/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateIdentity = errors.New("user with that email or phone number already exists")
)

type UserRepository interface {
	// Create persists a new user and returns ErrDuplicateIdentity
	// if the email or the phone number is already taken.
	Create(ctx context.Context, user *models.User) error

	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error

	// ListByOwner returns the owner's categories ordered by
	// most-recently-created first. Task counts are not populated.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Category, error)

	GetByID(ctx context.Context, id string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error

	// ListByCategoryAndOwner returns tasks referencing the category and
	// owned by the given user, most-recently-created first.
	ListByCategoryAndOwner(ctx context.Context, categoryID, ownerID string) ([]*models.Task, error)

	GetByID(ctx context.Context, id string) (*models.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error

	// DeleteByCategory bulk-removes every task referencing the category,
	// irrespective of owner. Used only by the category deletion cascade,
	// which has already verified ownership of the category itself.
	DeleteByCategory(ctx context.Context, categoryID string) error

	CountByCategory(ctx context.Context, categoryID string) (int, error)
}
