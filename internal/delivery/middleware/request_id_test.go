package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "opinalocal/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestIDMiddleware(t *testing.T, headerValue string) (echo.Context, *httptest.ResponseRecorder) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewRequestIDMiddleware(logger)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if headerValue != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, headerValue)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	handler := m.Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return c, rec
}

func TestRequestIDMiddleware_KeepsClientSuppliedUUID(t *testing.T) {
	supplied := uuid.New().String()

	c, rec := runRequestIDMiddleware(t, supplied)

	assert.Equal(t, supplied, deliverycontext.GetRequestID(c))
	assert.Equal(t, supplied, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, supplied, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
}

func TestRequestIDMiddleware_ReplacesNonUUIDHeader(t *testing.T) {
	c, rec := runRequestIDMiddleware(t, "not-a-uuid")

	generated := deliverycontext.GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", generated)
	assert.Equal(t, generated, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesWhenHeaderMissing(t *testing.T) {
	c, rec := runRequestIDMiddleware(t, "")

	generated := deliverycontext.GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, rec.Header().Get(deliverycontext.HeaderXRequestID))

	scoped := deliverycontext.GetLogger(c.Request().Context())
	assert.NotNil(t, scoped)
}
