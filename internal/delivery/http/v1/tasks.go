package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okarpov/tasktracker/internal/models"
)

type taskResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"user_id"`
	CategoryID  string    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Description: task.Description,
		Completed:   task.Completed,
		UserID:      task.UserID,
		CategoryID:  task.CategoryID,
		CreatedAt:   task.CreatedAt,
	}
}

type createTaskRequest struct {
	Description string `json:"description"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
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

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.Create(c, userID, categoryID, req.Description)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("category_id", categoryID).
			Msg("failed to create task")
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
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

	tasks, err := h.tasks.ListByCategory(c, userID, categoryID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("category_id", categoryID).
			Msg("failed to list tasks")
		abortServiceError(c, err)
		return
	}

	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleToggleTask(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		h.logger.Error().Msg("no task id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	task, err := h.tasks.ToggleCompleted(c, userID, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to toggle task")
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		h.logger.Error().Msg("no task id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	err := h.tasks.Delete(c, userID, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to delete task")
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task removed."})
}
