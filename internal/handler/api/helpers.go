package api

import (
	"net/http"

	"event-portal/internal/handler/httperr"
	"event-portal/internal/handler/middleware"
	"event-portal/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

// currentSession returns the session attached by the session middleware, or aborts.
func currentSession(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.ErrNoSession, "Internal server error", nil)
		return nil, false
	}
	return s, true
}
