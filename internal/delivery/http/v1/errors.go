package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okarpov/tasktracker/internal/services"
)

var errInvalidRequestBody = errors.New("invalid request body")

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"message": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

// abortServiceError maps service sentinel errors onto the wire
// taxonomy. Anything unclassified becomes a generic 500 so no
// internal detail leaks to the caller.
func abortServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		abort(c, newBadRequestError("Please enter all fields."))
	case errors.Is(err, services.ErrInvalidPhone):
		abort(c, newBadRequestError("Phone number must be exactly 10 digits."))
	case errors.Is(err, services.ErrEmptyCategoryName):
		abort(c, newBadRequestError("Category name must not be empty."))
	case errors.Is(err, services.ErrEmptyDescription):
		abort(c, newBadRequestError("Task description must not be empty."))
	case errors.Is(err, services.ErrDuplicateIdentity):
		abort(c, newBadRequestError("User with that email or phone number already exists."))
	case errors.Is(err, services.ErrInvalidCredentials):
		abort(c, newBadRequestError("Invalid credentials."))
	case errors.Is(err, services.ErrUserNotFound):
		abort(c, newAPIError(http.StatusNotFound, "User not found."))
	case errors.Is(err, services.ErrCategoryNotFound):
		abort(c, newAPIError(http.StatusNotFound, "Category not found."))
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newAPIError(http.StatusNotFound, "Task not found."))
	case errors.Is(err, services.ErrNotOwner):
		abort(c, newAPIError(http.StatusForbidden, "User not authorized."))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}
