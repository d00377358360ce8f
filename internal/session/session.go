// Package session carries the logged-in user across requests in a signed
// HTTP-only cookie, plus a one-shot flash cookie consumed on the next render.
package session

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	CookieName      = "session"
	FlashCookieName = "flash"

	defaultTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

type Manager struct {
	secretKey []byte
}

func NewManager(secretKey string) *Manager {
	return &Manager{secretKey: []byte(secretKey)}
}

// Establish signs a session token for the user and sets the cookie.
// remember extends the lifetime from a day to thirty.
func (m *Manager) Establish(c echo.Context, userID uint64, remember bool) error {
	ttl := defaultTTL
	if remember {
		ttl = rememberTTL
	}
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatUint(userID, 10),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// UserID returns the authenticated user id from the session cookie, or 0
// when there is no valid session.
func (m *Manager) UserID(c echo.Context) uint64 {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return 0
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil || !token.Valid {
		return 0
	}
	return claims.UserID
}

// Clear drops the session unconditionally.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash queues a message for the next rendered page.
func Flash(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     FlashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TakeFlash returns the queued message, if any, and clears it.
func TakeFlash(c echo.Context) string {
	cookie, err := c.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	c.SetCookie(&http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
