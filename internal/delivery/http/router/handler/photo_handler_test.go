package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"opinalocal/config"
	mockSvc "opinalocal/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPhotoHandler(t *testing.T) (*PhotoHandler, *mockSvc.MockPhotoStore) {
	store := mockSvc.NewMockPhotoStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPhotoHandler(store, &config.Config{}, logger), store
}

func newUploadContext(t *testing.T, contentType string, payload []byte) (echo.Context, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="photo"; filename="photo.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/photos", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestPhotoHandler_Upload_ReturnsStoredURL(t *testing.T) {
	h, store := newTestPhotoHandler(t)
	c, rec := newUploadContext(t, "image/jpeg", []byte("jpeg-bytes"))

	store.EXPECT().
		Save(mock.Anything, "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/photos/abc.jpg", nil)

	err := h.Upload(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cdn.example.com/photos/abc.jpg")
}

func TestPhotoHandler_Upload_RejectsUnsupportedType(t *testing.T) {
	h, store := newTestPhotoHandler(t)
	c, rec := newUploadContext(t, "image/gif", []byte("gif-bytes"))

	err := h.Upload(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNSUPPORTED_PHOTO_TYPE")
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestPhotoHandler_Delete_RemovesStoredPhoto(t *testing.T) {
	h, store := newTestPhotoHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/photos?url=https://cdn.example.com/photos/abc.jpg", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	store.EXPECT().
		Delete(mock.Anything, "https://cdn.example.com/photos/abc.jpg").
		Return(nil)

	err := h.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPhotoHandler_Delete_RequiresURL(t *testing.T) {
	h, store := newTestPhotoHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/photos", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
