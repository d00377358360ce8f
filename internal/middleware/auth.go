package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oldsell/oldsell-backend/internal/session"
)

// UserIDKey is the echo context key holding the authenticated user id.
const UserIDKey = "userID"

type SessionMiddleware struct {
	sessions *session.Manager
}

func NewSessionMiddleware(sessions *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// LoadUser attaches the session's user id to the request context when a
// valid session cookie is present. It never rejects.
func (m *SessionMiddleware) LoadUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if uid := m.sessions.UserID(c); uid != 0 {
			c.Set(UserIDKey, uid)
		}
		return next(c)
	}
}

// RequireLogin redirects anonymous requests to the login page.
func (m *SessionMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, _ := c.Get(UserIDKey).(uint64)
		if uid == 0 {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}
