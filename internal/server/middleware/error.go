package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPError is the response body for any failed request. Data-layer
// failures pass through as an opaque 500 with the error message.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Logger interface {
	Errorw(template string, args ...interface{})
}

// ErrorHandler returns the echo error handler producing HTTPError bodies.
func ErrorHandler(log Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		resp := &HTTPError{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
		if v, ok := err.(*echo.HTTPError); ok {
			resp.Code = v.Code
			resp.Message = fmt.Sprint(v.Message)
		}

		if err := c.JSON(resp.Code, resp); err != nil {
			log.Errorw("could not write error response", "code", resp.Code, "error", err)
		}
	}
}
