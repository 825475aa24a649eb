package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okarpov/tasktracker/internal/models"
	"github.com/okarpov/tasktracker/internal/services"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	PhoneNo  string `json:"phone_no"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *handlerImpl) HandleRegister(c *gin.Context) {
	var req registerRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}
	h.logger.Info().
		Str("email", req.Email).
		Msg("register request")

	result, err := h.auth.Register(c, services.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		PhoneNo:  req.PhoneNo,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to register user")
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tokenResponse{Token: result.Token})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	result, err := h.auth.Login(c, req.Email, req.Password)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to login")
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: result.Token})
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	PhoneNo   string    `json:"phone_no"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		PhoneNo:   user.PhoneNo,
		CreatedAt: user.CreatedAt,
	}
}

func (h *handlerImpl) HandleGetUser(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := h.auth.UserByID(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get user")
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
