package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/api/metrics"
	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
)

// ClientHandler serves the admin dashboard's client management routes.
type ClientHandler struct {
	clients ports.ClientService
}

func NewClientHandler(clients ports.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type createClientRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	SessionType string `json:"sessionType"`
	SessionDate string `json:"sessionDate"`
}

type mediaRequest struct {
	Type     domain.MediaType `json:"type" validate:"required,oneof=image video"`
	URL      string           `json:"url" validate:"required"`
	Filename string           `json:"filename"`
	Title    string           `json:"title"`
}

type appendMediaRequest struct {
	Items []mediaRequest `json:"items" validate:"required,min=1,dive"`
}

// clientResponse is a client record without its password.
type clientResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	SessionType string             `json:"sessionType"`
	SessionDate string             `json:"sessionDate"`
	Gallery     []domain.MediaItem `json:"gallery"`
	CreatedAt   time.Time          `json:"createdAt,omitzero"`
}

type confirmationResponse struct {
	Token string `json:"token"`
}

func toClientResponse(c *domain.Client) clientResponse {
	gallery := c.Gallery
	if gallery == nil {
		gallery = []domain.MediaItem{}
	}
	return clientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		SessionType: c.SessionType,
		SessionDate: c.SessionDate,
		Gallery:     gallery,
		CreatedAt:   c.CreatedAt,
	}
}

// List returns every client.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}   clientResponse
// @Failure      401  {object}  map[string]string
// @Router       /admin/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]clientResponse, len(clients))
	for i := range clients {
		out[i] = toClientResponse(&clients[i])
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one client.
//
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.clients.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Create adds a client.
//
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /admin/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	client, err := h.clients.AddClient(c.Request().Context(), ports.NewClientInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		SessionType: req.SessionType,
		SessionDate: req.SessionDate,
	})
	if err != nil {
		return err
	}

	metrics.ClientsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toClientResponse(client))
}

// RequestDelete issues a confirmation token for deleting the client.
//
// @Summary      Request client deletion
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      202  {object}  confirmationResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients/{id}/delete-request [post]
func (h *ClientHandler) RequestDelete(c echo.Context) error {
	token, err := h.clients.RequestDelete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, confirmationResponse{Token: token})
}

// AppendMedia adds photos or videos to a client's gallery.
//
// @Summary      Upload media
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Client ID"
// @Param        body  body      appendMediaRequest  true  "Media items"
// @Success      201   {array}   domain.MediaItem
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /admin/clients/{id}/media [post]
func (h *ClientHandler) AppendMedia(c echo.Context) error {
	var req appendMediaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]ports.NewMediaInput, len(req.Items))
	for i, m := range req.Items {
		items[i] = ports.NewMediaInput{Type: m.Type, URL: m.URL, Filename: m.Filename, Title: m.Title}
	}

	added, err := h.clients.AppendMedia(c.Request().Context(), c.Param("id"), items)
	if err != nil {
		return err
	}

	for _, m := range added {
		metrics.MediaUploadedTotal.WithLabelValues(string(m.Type)).Inc()
	}
	return c.JSON(http.StatusCreated, added)
}

// RemoveMedia deletes a gallery item by id.
//
// @Summary      Remove media
// @Tags         clients
// @Param        id       path  string  true  "Client ID"
// @Param        mediaId  path  string  true  "Media ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients/{id}/media/{mediaId} [delete]
func (h *ClientHandler) RemoveMedia(c echo.Context) error {
	if err := h.clients.RemoveMedia(c.Request().Context(), c.Param("id"), c.Param("mediaId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveMediaAt deletes a gallery item by position.
//
// @Summary      Remove media by index
// @Tags         clients
// @Param        id     path  string   true  "Client ID"
// @Param        index  path  integer  true  "Gallery position"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients/{id}/media/at/{index} [delete]
func (h *ClientHandler) RemoveMediaAt(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return domain.NewValidationError("index must be an integer")
	}
	if err := h.clients.RemoveMediaAt(c.Request().Context(), c.Param("id"), index); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
