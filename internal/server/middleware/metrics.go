package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/salad-karo/storefront/pkg/util"
)

// Metrics observes request duration per route, method and status.
func Metrics() echo.MiddlewareFunc {
	histogram, err := util.GetHistogramVec("http_request_duration_seconds", "path", "method", "status")
	if err != nil {
		panic(err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			histogram.WithLabelValues(path, c.Request().Method, status).
				Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
