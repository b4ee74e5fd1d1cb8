package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
)

type PortfolioHandler struct {
	portfolio ports.PortfolioService
}

func NewPortfolioHandler(portfolio ports.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

type createPortfolioItemRequest struct {
	Title     string           `json:"title"`
	Category  string           `json:"category"`
	Type      domain.MediaType `json:"type"`
	URL       string           `json:"url"`
	Thumbnail string           `json:"thumbnail"`
}

// List returns portfolio items, optionally filtered by category.
//
// @Summary      List portfolio
// @Tags         portfolio
// @Produce      json
// @Param        category  query     string  false  "Category filter; empty or \"all\" returns everything"
// @Success      200       {array}   domain.PortfolioItem
// @Router       /portfolio [get]
func (h *PortfolioHandler) List(c echo.Context) error {
	items, err := h.portfolio.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Categories returns the distinct categories for the filter buttons.
//
// @Summary      Portfolio categories
// @Tags         portfolio
// @Produce      json
// @Success      200  {array}  string
// @Router       /portfolio/categories [get]
func (h *PortfolioHandler) Categories(c echo.Context) error {
	cats, err := h.portfolio.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cats)
}

// Create adds an item to the portfolio.
//
// @Summary      Add portfolio item
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        body  body      createPortfolioItemRequest  true  "Portfolio item"
// @Success      201   {object}  domain.PortfolioItem
// @Failure      422   {object}  map[string]string
// @Router       /admin/portfolio [post]
func (h *PortfolioHandler) Create(c echo.Context) error {
	var req createPortfolioItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	item, err := h.portfolio.Add(c.Request().Context(), ports.NewPortfolioItemInput{
		Title:     req.Title,
		Category:  req.Category,
		Type:      req.Type,
		URL:       req.URL,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// RequestDelete issues a confirmation token for removing the item.
//
// @Summary      Request portfolio item deletion
// @Tags         portfolio
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      202  {object}  confirmationResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/portfolio/{id}/delete-request [post]
func (h *PortfolioHandler) RequestDelete(c echo.Context) error {
	token, err := h.portfolio.RequestDelete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, confirmationResponse{Token: token})
}
