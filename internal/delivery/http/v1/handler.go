package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okarpov/tasktracker/internal/services"
)

type Handler interface {
	HandleRegister(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleGetUser(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleCreateCategory(c *gin.Context)
	HandleGetCategories(c *gin.Context)
	HandleGetCategory(c *gin.Context)
	HandleDeleteCategory(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleToggleTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger     zerolog.Logger
	auth       services.AuthService
	categories services.CategoryService
	tasks      services.TaskService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	categoryService services.CategoryService,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger:     logger,
		auth:       authService,
		categories: categoryService,
		tasks:      taskService,
	}
}
