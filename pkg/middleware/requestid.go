package middleware

import (
	"context"

	"gearguard/pkg/contextkeys"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a UUID so log lines from one request can
// be correlated. An id supplied by the caller is kept.
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Response().Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(c.Request().Context(), contextkeys.RequestIDKey, id)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
