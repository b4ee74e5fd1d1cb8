package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lumenstudio/studio/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, errorResponse{Error: ve.Error(), Fields: ve.Fields}
	}

	var te *domain.TransportError
	if errors.As(err, &te) {
		switch {
		case te.Code == domain.CodeTooManyRequests:
			c.Response().Header().Set("Retry-After", "60")
			return http.StatusTooManyRequests, errorResponse{Error: te.Message(), Code: te.Code}
		case te.Code == domain.CodeEmailInUse:
			return http.StatusConflict, errorResponse{Error: te.Message(), Code: te.Code}
		case te.IsCredentialError():
			return http.StatusUnauthorized, errorResponse{Error: te.Message(), Code: te.Code}
		}
		log.Warn().Err(err).Str("path", c.Path()).Msg("identity provider failure")
		return http.StatusServiceUnavailable, errorResponse{Error: te.Message(), Code: te.Code}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrAuthFailure):
		return http.StatusUnauthorized, errorResponse{Error: domain.ErrAuthFailure.Error()}
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, errorResponse{Error: "access denied"}
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, errorResponse{Error: "client not found"}
	case errors.Is(err, domain.ErrMediaNotFound):
		return http.StatusNotFound, errorResponse{Error: "media item not found"}
	case errors.Is(err, domain.ErrPortfolioItemNotFound):
		return http.StatusNotFound, errorResponse{Error: "portfolio item not found"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: "not found"}
	case errors.Is(err, domain.ErrInvalidConfirmation):
		return http.StatusBadRequest, errorResponse{Error: "invalid or expired confirmation token"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
