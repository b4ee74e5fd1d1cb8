package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/pkg/validate"
)

// newTestEcho mirrors the router's validator so c.Validate behaves as in
// production.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.Echo{}
	return e
}
