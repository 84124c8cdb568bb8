package middleware

import (
	"time"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/labstack/echo/v4"
)

type LogRequestConfig struct {
	Logger  *logger.Logger
	Enabled func(c echo.Context) bool
}

// LogRequest logs one line per request: status, method, uri, latency and
// the request id.
func LogRequest(config LogRequestConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("Logger is required to use LogRequest")
	}
	if config.Enabled == nil {
		config.Enabled = func(echo.Context) bool { return true }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !config.Enabled(c) {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			args := []any{
				"status", res.Status,
				"method", req.Method,
				"uri", req.RequestURI,
				"latency_ms", time.Since(start).Milliseconds(),
				"real_ip", c.RealIP(),
			}
			if reqID := GetRequestID(c); reqID != "" {
				args = append(args, "request_id", reqID)
			}
			if err != nil {
				args = append(args, "error", err.Error())
			}

			config.Logger.Infow("http request", args...)
			return nil
		}
	}
}
