package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const XRequestID = "x-request-id"

type requestIDKey struct{}

// RequestID reuses an incoming x-request-id header or generates one, then
// makes it available on the echo context, the request context and the
// response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := GetRequestID(c)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			InjectRequestID(c, reqID)
			c.Response().Header().Set(XRequestID, reqID)
			return next(c)
		}
	}
}

func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(XRequestID).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}
	return GetRequestIDFromHeader(c.Request().Header)
}

func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

func GetRequestIDFromHeader(h http.Header) string {
	return h.Get(XRequestID)
}

func InjectRequestID(c echo.Context, reqID string) {
	ctx := context.WithValue(c.Request().Context(), requestIDKey{}, reqID)
	c.SetRequest(c.Request().WithContext(ctx))
	c.Set(XRequestID, reqID)
}
