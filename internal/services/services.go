package services

import (
	"context"
	"errors"

	"github.com/okarpov/tasktracker/internal/models"
)

var (
	ErrMissingFields     = errors.New("please enter all fields")
	ErrInvalidPhone      = errors.New("phone number must be exactly 10 digits")
	ErrEmptyCategoryName = errors.New("category name must not be empty")
	ErrEmptyDescription  = errors.New("task description must not be empty")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateIdentity  = errors.New("user with that email or phone number already exists")

	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTaskNotFound     = errors.New("task not found")

	// ErrNotOwner is returned when the resource exists
	// but belongs to a different user.
	ErrNotOwner = errors.New("user not authorized")

	ErrTokenInvalid = errors.New("token is not valid")
	ErrTokenExpired = errors.New("token is expired")
)

type AuthService interface {
	// Register validates the fields, hashes the password and creates
	// the user, then issues a signed token for it.
	//
	// It returns ErrMissingFields or ErrInvalidPhone on bad input and
	// ErrDuplicateIdentity if the email or phone number is taken.
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)

	// Login authenticates the user by email and password and issues
	// a signed token.
	//
	// It returns ErrInvalidCredentials both when no user with the
	// given email exists and when the password does not match, so
	// the caller cannot tell which of the two failed.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// UserByID returns the user's profile. The password hash on the
	// returned model is cleared.
	UserByID(ctx context.Context, id string) (*models.User, error)

	// ParseToken verifies a token and returns the user id it was
	// issued for, ErrTokenExpired when the signature is valid but the
	// expiry has elapsed, or ErrTokenInvalid otherwise.
	ParseToken(token string) (string, error)
}

type CategoryService interface {
	// Create persists a category owned by ownerID. The name is
	// trimmed and must not be empty; a missing icon falls back to
	// models.DefaultCategoryIcon.
	Create(ctx context.Context, ownerID, name, icon string) (*models.Category, error)

	// ListByOwner returns the owner's categories, most-recently-created
	// first, each annotated with a freshly computed task count.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Category, error)

	// GetByID returns ErrCategoryNotFound if the id does not resolve
	// and ErrNotOwner if the category belongs to someone else.
	GetByID(ctx context.Context, ownerID, id string) (*models.Category, error)

	// Delete removes the category and every task referencing it.
	// Tasks are removed first so a failure in between leaves at most
	// an empty category behind, never tasks without a category.
	Delete(ctx context.Context, ownerID, id string) error
}

type TaskService interface {
	// Create persists a task under the given category with
	// completed = false. The owner is always the authenticated
	// caller, never client input. It returns ErrCategoryNotFound
	// if the category id does not resolve.
	Create(ctx context.Context, ownerID, categoryID, description string) (*models.Task, error)

	// ListByCategory returns the caller's tasks in the category,
	// most-recently-created first.
	ListByCategory(ctx context.Context, ownerID, categoryID string) ([]*models.Task, error)

	// ToggleCompleted flips the completion flag and returns the
	// updated task.
	ToggleCompleted(ctx context.Context, ownerID, taskID string) (*models.Task, error)

	Delete(ctx context.Context, ownerID, taskID string) error
}

type RegisterParams struct {
	Username string
	Email    string
	PhoneNo  string
	Password string
}

type AuthResult struct {
	UserID    string
	Token     string
	ExpiresAt int64
}
