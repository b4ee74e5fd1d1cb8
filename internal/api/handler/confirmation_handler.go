package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/api/metrics"
	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
)

// ConfirmationHandler redeems deletion tokens issued by the delete-request
// routes.
type ConfirmationHandler struct {
	confirmer ports.Confirmer
}

func NewConfirmationHandler(confirmer ports.Confirmer) *ConfirmationHandler {
	return &ConfirmationHandler{confirmer: confirmer}
}

type confirmRequest struct {
	Token string `json:"token" validate:"required"`
}

// Confirm performs the deletion bound to the token.
//
// @Summary      Confirm deletion
// @Tags         confirmations
// @Accept       json
// @Param        body  body  confirmRequest  true  "Confirmation token"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /admin/confirmations [post]
func (h *ConfirmationHandler) Confirm(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.confirmer.Confirm(c.Request().Context(), req.Token); err != nil {
		if errors.Is(err, domain.ErrInvalidConfirmation) {
			metrics.ConfirmationsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	metrics.ConfirmationsTotal.WithLabelValues("confirmed").Inc()
	return c.NoContent(http.StatusNoContent)
}
