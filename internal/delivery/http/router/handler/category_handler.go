package handler

import (
	"log/slog"
	"net/http"

	"opinalocal/internal/delivery/http/middleware"
	"opinalocal/internal/delivery/http/response"
	"opinalocal/internal/domain/entity"
	"opinalocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category-related handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles a new category suggestion from an authenticated user.
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var input *usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.Create(c.Request().Context(), userID.String(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// List handles the category listing, optionally filtered by the status query
// parameter.
func (h *CategoryHandler) List(c echo.Context) error {
	var status *entity.CategoryStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed := entity.CategoryStatus(raw)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_CATEGORY_STATUS", "Invalid status filter")
		}
		status = &parsed
	}

	categories, err := h.uc.List(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// Search handles the category name search.
func (h *CategoryHandler) Search(c echo.Context) error {
	categories, err := h.uc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// setStatusRequest carries the target moderation status.
type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetStatus handles the admin moderation action on a category.
func (h *CategoryHandler) SetStatus(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
	}

	var req *setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.SetStatus(c.Request().Context(), categoryID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category status updated successfully")
}
