package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "addressbook/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromCtx string
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := m.Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		fromCtx = deliverycontext.GetRequestIDFromContext(ctx)
		assert.NotNil(t, deliverycontext.GetLogger(ctx))
		assert.Equal(t, fromCtx, deliverycontext.GetRequestID(c))

		return nil
	})(c)
	require.NoError(t, err)

	return fromCtx, rec.Header().Get(deliverycontext.HeaderXRequestID)
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	id, header := runRequestID(t, "client-id-1")

	assert.Equal(t, "client-id-1", id)
	assert.Equal(t, "client-id-1", header)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	tests := map[string]string{
		"missing":   "",
		"too long":  strings.Repeat("a", maxRequestIDLength+1),
		"has space": "bad id",
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			id, echoed := runRequestID(t, header)

			_, err := uuid.Parse(id)
			assert.NoError(t, err)
			assert.Equal(t, id, echoed)
		})
	}
}
