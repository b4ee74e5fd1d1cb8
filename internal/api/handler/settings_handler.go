package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
)

// SettingsHandler serves studio settings and the per-profile theme.
type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type settingsRequest struct {
	StudioName   string `json:"studioName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

type themeRequest struct {
	Theme domain.Theme `json:"theme" validate:"required,oneof=light dark"`
}

type themeResponse struct {
	Theme domain.Theme `json:"theme"`
}

// @Summary      Studio settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Settings
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.settings.Settings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// @Summary      Save studio settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      settingsRequest  true  "Settings"
// @Success      200   {object}  domain.Settings
// @Failure      422   {object}  map[string]string
// @Router       /admin/settings [put]
func (h *SettingsHandler) Save(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	s, err := h.settings.SaveSettings(c.Request().Context(), ports.SettingsInput{
		StudioName:   req.StudioName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// @Summary      Current theme
// @Tags         theme
// @Produce      json
// @Success      200  {object}  themeResponse
// @Router       /theme [get]
func (h *SettingsHandler) Theme(c echo.Context) error {
	t, err := h.settings.Theme(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: t})
}

// @Summary      Set theme
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        body  body      themeRequest  true  "light or dark"
// @Success      200   {object}  themeResponse
// @Failure      422   {object}  map[string]string
// @Router       /theme [put]
func (h *SettingsHandler) SetTheme(c echo.Context) error {
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.settings.SetTheme(c.Request().Context(), req.Theme); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: req.Theme})
}

// @Summary      Toggle theme
// @Tags         theme
// @Produce      json
// @Success      200  {object}  themeResponse
// @Router       /theme/toggle [post]
func (h *SettingsHandler) ToggleTheme(c echo.Context) error {
	t, err := h.settings.ToggleTheme(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: t})
}
