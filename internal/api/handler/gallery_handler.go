package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/api/middleware"
	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
)

// GalleryHandler serves the logged-in client's private gallery.
type GalleryHandler struct {
	clients ports.ClientService
}

func NewGalleryHandler(clients ports.ClientService) *GalleryHandler {
	return &GalleryHandler{clients: clients}
}

type galleryResponse struct {
	Client *domain.Principal  `json:"client"`
	Items  []domain.MediaItem `json:"items"`
}

// Get returns the current client's gallery, read fresh from the store.
//
// @Summary      My gallery
// @Tags         gallery
// @Produce      json
// @Success      200  {object}  galleryResponse
// @Failure      401  {object}  map[string]string
// @Router       /gallery [get]
func (h *GalleryHandler) Get(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}

	items, err := h.clients.Gallery(c.Request().Context(), p.ID)
	switch {
	case errors.Is(err, domain.ErrClientNotFound):
		// Accounts without a client record fall back to the session snapshot.
		items = p.Gallery
	case err != nil:
		return err
	}
	if items == nil {
		items = []domain.MediaItem{}
	}

	return c.JSON(http.StatusOK, galleryResponse{Client: p, Items: items})
}
