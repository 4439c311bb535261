package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader is the header the request id is read from and echoed on.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the echo context key the id is stored under, shared with
// the logger and recovery middleware.
const requestIDKey = "request_id"

// RequestID attaches an id to every request, generating one when the client
// did not send its own.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set(requestIDKey, rid)
			c.Response().Header().Set(RequestIDHeader, rid)
			return next(c)
		}
	}
}

// requestID reads the id set by RequestID, or "" when the middleware did not
// run for this request.
func requestID(c echo.Context) string {
	rid, _ := c.Get(requestIDKey).(string)
	return rid
}
