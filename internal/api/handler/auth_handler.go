package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/api/metrics"
	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
)

// AuthHandler serves login, logout and "who am I" for one principal kind.
// The client and admin routes each get their own instance.
type AuthHandler struct {
	sessions ports.SessionDirectory
	kind     domain.PrincipalKind
}

func NewAuthHandler(sessions ports.SessionDirectory, kind domain.PrincipalKind) *AuthHandler {
	return &AuthHandler{sessions: sessions, kind: kind}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool              `json:"authenticated"`
	Principal     *domain.Principal `json:"principal,omitempty"`
}

// Login authenticates and starts a session for the current profile.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
// @Router       /admin/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(string(h.kind), "rejected").Inc()
		return err
	}

	p, err := h.sessions.Login(c.Request().Context(), h.kind, req.Email, req.Password)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrAuthFailure) || errors.Is(err, domain.ErrAccessDenied) ||
			errors.Is(err, domain.ErrTransport) || errors.Is(err, domain.ErrValidation) {
			result = "rejected"
		}
		metrics.LoginAttemptsTotal.WithLabelValues(string(h.kind), result).Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues(string(h.kind), "success").Inc()
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, Principal: p})
}

// Logout ends the session. It succeeds when no session exists.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
// @Router       /admin/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.EndSession(c.Request().Context(), h.kind); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current principal.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/me [get]
// @Router       /admin/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := h.sessions.CurrentPrincipal(c.Request().Context(), h.kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: p != nil, Principal: p})
}
