package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oldsell/oldsell-backend/internal/service"
	"github.com/oldsell/oldsell-backend/internal/session"
)

type AuthHandler struct {
	svc      service.AuthService
	sessions *session.Manager
}

func NewAuthHandler(svc service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions}
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	if currentUserID(c) != 0 {
		return c.Redirect(http.StatusFound, "/")
	}
	return render(c, "login.html", nil)
}

func (h *AuthHandler) Login(c echo.Context) error {
	if currentUserID(c) != 0 {
		return c.Redirect(http.StatusFound, "/")
	}
	identifier := c.FormValue("login_input")
	password := c.FormValue("password")
	remember := c.FormValue("remember") != ""

	user, err := h.svc.Login(c.Request().Context(), identifier, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			session.Flash(c, "Invalid username or password")
			return c.Redirect(http.StatusFound, "/login")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}
	if err := h.sessions.Establish(c, user.ID, remember); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if currentUserID(c) != 0 {
		return c.Redirect(http.StatusFound, "/")
	}
	return render(c, "register.html", nil)
}

func (h *AuthHandler) Register(c echo.Context) error {
	if currentUserID(c) != 0 {
		return c.Redirect(http.StatusFound, "/")
	}
	_, err := h.svc.Register(c.Request().Context(),
		c.FormValue("username"),
		c.FormValue("email"),
		c.FormValue("phone"),
		c.FormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateIdentity):
			session.Flash(c, "Username, email, or phone number already exists.")
			return c.Redirect(http.StatusFound, "/register")
		case errors.Is(err, service.ErrValidation):
			session.Flash(c, "All fields are required.")
			return c.Redirect(http.StatusFound, "/register")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
	}
	session.Flash(c, "Registration successful! Please login.")
	return c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.Redirect(http.StatusFound, "/")
}
