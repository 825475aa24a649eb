package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okarpov/tasktracker/internal/models"
)

type categoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func newCategoryResponse(category *models.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Icon:      category.Icon,
		UserID:    category.UserID,
		CreatedAt: category.CreatedAt,
	}
}

// listCategoryResponse adds the derived task count, which is only
// computed for listings.
type listCategoryResponse struct {
	categoryResponse
	Tasks int `json:"tasks"`
}

type createCategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

func (h *handlerImpl) HandleCreateCategory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req createCategoryRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	category, err := h.categories.Create(c, userID, req.Name, req.Icon)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create category")
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCategoryResponse(category))
}

func (h *handlerImpl) HandleGetCategories(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	categories, err := h.categories.ListByOwner(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list categories")
		abortServiceError(c, err)
		return
	}

	response := make([]listCategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = listCategoryResponse{
			categoryResponse: newCategoryResponse(category),
			Tasks:            category.TaskCount,
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetCategory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		h.logger.Error().Msg("no category id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	category, err := h.categories.GetByID(c, userID, categoryID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("category_id", categoryID).
			Msg("failed to get category")
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category))
}

func (h *handlerImpl) HandleDeleteCategory(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		h.logger.Error().Msg("no category id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	err := h.categories.Delete(c, userID, categoryID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("category_id", categoryID).
			Msg("failed to delete category")
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category and tasks removed."})
}
