package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	newContext := func(header http.Header) (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range header {
			req.Header[k] = v
		}
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("reuses incoming header", func(t *testing.T) {
		c, rec := newContext(http.Header{
			http.CanonicalHeaderKey(XRequestID): []string{"abc-123"},
		})
		var seen string
		h := RequestID()(func(c echo.Context) error {
			seen = GetRequestID(c)
			return nil
		})
		require.NoError(t, h(c))
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(XRequestID))
	})

	t.Run("generates when absent", func(t *testing.T) {
		c, rec := newContext(nil)
		var seen string
		h := RequestID()(func(c echo.Context) error {
			seen = GetRequestID(c)
			return nil
		})
		require.NoError(t, h(c))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(XRequestID))
	})

	t.Run("propagates into the request context", func(t *testing.T) {
		c, _ := newContext(nil)
		var fromCtx string
		h := RequestID()(func(c echo.Context) error {
			fromCtx = GetRequestIDFromContext(c.Request().Context())
			return nil
		})
		require.NoError(t, h(c))
		assert.NotEmpty(t, fromCtx)
	})
}
