package handler

import (
	"log/slog"
	"net/http"

	"opinalocal/config"
	"opinalocal/internal/delivery/http/response"
	"opinalocal/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultMaxUploadBytes = 5 << 20

var allowedPhotoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// PhotoHandler stores uploaded review and restaurant photos. The rest of the
// platform treats the returned URL as an opaque string.
type PhotoHandler struct {
	store          service.PhotoStore
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler, injected by Fx.
func NewPhotoHandler(store service.PhotoStore, cfg *config.Config, logger *slog.Logger) *PhotoHandler {
	maxUploadBytes := int64(defaultMaxUploadBytes)
	if cfg.Storage != nil && cfg.Storage.MaxUploadBytes > 0 {
		maxUploadBytes = cfg.Storage.MaxUploadBytes
	}

	return &PhotoHandler{
		store:          store,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Upload handles a multipart photo upload and returns the stored URL.
func (h *PhotoHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "photo file is required")
	}
	if fileHeader.Size > h.maxUploadBytes {
		return response.BadRequest(c, "PHOTO_TOO_LARGE", "photo exceeds the maximum upload size")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if _, ok := allowedPhotoTypes[contentType]; !ok {
		return response.BadRequest(c, "UNSUPPORTED_PHOTO_TYPE", "photo must be JPEG, PNG, or WebP")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded photo")
	}
	defer file.Close()

	url, err := h.store.Save(c.Request().Context(), contentType, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Photo uploaded successfully")
}

// Delete removes a stored photo that was uploaded but never attached to a
// review. Reviews are immutable, so attached photos are never deleted.
func (h *PhotoHandler) Delete(c echo.Context) error {
	url := c.QueryParam("url")
	if url == "" {
		return response.BadRequest(c, "INVALID_INPUT", "photo url is required")
	}

	if err := h.store.Delete(c.Request().Context(), url); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Photo deleted successfully")
}
