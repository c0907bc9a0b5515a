package middleware

import (
	"log/slog"
	"net/http"

	"event-portal/internal/handler/httperr"
	"event-portal/internal/pkg/config"
	"event-portal/internal/pkg/cookie"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

const (
	ctxSessionKey   = "session"
	ctxSessionIDKey = "session_id"
)

type SessionMiddleware struct {
	registry *session.Registry
	cookie   config.CookieConfig
}

func NewSessionMiddleware(registry *session.Registry, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		registry: registry,
		cookie:   cfg.Cookie,
	}
}

// Attach binds the request to the visitor's session, starting an anonymous one when
// the cookie is missing, invalid or expired. The cookie is re-signed on every request
// so an active visitor keeps the session.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, fresh, err := m.registry.Resolve(cookie.GetSessionToken(c))
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}

		token, err := m.registry.Issue(s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		cookie.SetSessionCookie(c, m.cookie, token, m.registry.TokenDuration())

		if fresh {
			slog.Debug("session started", "session_id", s.ID.String())
		}

		c.Set(ctxSessionKey, s)
		c.Set(ctxSessionIDKey, s.ID.String())
		c.Next()
	}
}

// RequireAdmin must run after Attach.
func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := GetSession(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, httperr.ErrNoSession, "Internal server error", nil)
			return
		}
		if !s.Authenticated() {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, session.MsgNotAuthenticated, nil)
			return
		}
		c.Next()
	}
}

// EndSession forgets the visitor's session and its cookie.
func (m *SessionMiddleware) EndSession(c *gin.Context, s *session.Session) {
	m.registry.Delete(s.ID)
	cookie.ClearSessionCookie(c, m.cookie)
}

func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}
