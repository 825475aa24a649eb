package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// authTokenHeader carries the raw token with no scheme prefix,
	// matching what the web client sends.
	authTokenHeader = "x-auth-token"

	userIDCtxKey = "user_id"
)

// HandleAuthMiddleware verifies the token on every protected route and
// injects the authenticated user id into the request context. It has
// no side effects and must run before any resource handler.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	token := c.GetHeader(authTokenHeader)
	if token == "" {
		h.logger.Warn().Msg("missing auth token header")
		abort(c, newAPIError(http.StatusUnauthorized, "No token, authorization denied."))
		return
	}

	userID, err := h.auth.ParseToken(token)
	if err != nil {
		// Expired and malformed tokens collapse to the same
		// boundary-visible rejection.
		h.logger.Warn().
			Err(err).
			Msg("rejected auth token")
		abort(c, newAPIError(http.StatusUnauthorized, "Token is not valid."))
		return
	}

	c.Set(userIDCtxKey, userID)
	c.Next()
}

func userIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(userIDCtxKey)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}
