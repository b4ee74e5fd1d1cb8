package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/api/metrics"
	"github.com/lumenstudio/studio/internal/core/gate"
)

// PageHandler exposes the access gate to the static front end.
type PageHandler struct {
	gate *gate.Gate
}

func NewPageHandler(g *gate.Gate) *PageHandler {
	return &PageHandler{gate: g}
}

// Check evaluates the gate for a view. Redirect decisions are answered with
// 302 unless the caller asks for JSON via ?format=json.
//
// @Summary      Page access check
// @Tags         pages
// @Produce      json
// @Param        view    path      string  true   "gallery, login, admin or admin-login"
// @Param        format  query     string  false  "json to receive redirects as a decision body"
// @Success      200     {object}  gate.Decision
// @Success      302
// @Failure      404     {object}  map[string]string
// @Router       /pages/{view} [get]
func (h *PageHandler) Check(c echo.Context) error {
	view := c.Param("view")
	d, err := h.gate.Evaluate(c.Request().Context(), view)
	if err != nil {
		return err
	}
	metrics.GateDecisionsTotal.WithLabelValues(view, d.State.String()).Inc()

	if d.State == gate.Redirecting && c.QueryParam("format") != "json" {
		return c.Redirect(http.StatusFound, d.Location)
	}
	return c.JSON(http.StatusOK, d)
}
