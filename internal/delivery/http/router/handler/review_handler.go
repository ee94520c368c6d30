package handler

import (
	"log/slog"
	"net/http"

	"opinalocal/internal/delivery/http/middleware"
	"opinalocal/internal/delivery/http/response"
	"opinalocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles a new review submission.
func (h *ReviewHandler) Submit(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var input *usecase.SubmitReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.Submit(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted successfully")
}

// Get handles the request for one review.
func (h *ReviewHandler) Get(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	review, err := h.uc.Get(c.Request().Context(), reviewID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review retrieved successfully")
}

// List handles review listings filtered by restaurant or user via query
// parameters.
func (h *ReviewHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam("restaurantId"); raw != "" {
		restaurantID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
		}

		reviews, err := h.uc.ListByRestaurant(ctx, restaurantID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
	}

	if raw := c.QueryParam("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
		}

		reviews, err := h.uc.ListByUser(ctx, userID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
	}

	return response.BadRequest(c, "INVALID_INPUT", "restaurantId or userId query parameter is required")
}

// ListRecent handles the recent-review feed filtered by timeframe.
func (h *ReviewHandler) ListRecent(c echo.Context) error {
	timeframe := usecase.ReviewTimeframe(c.QueryParam("timeframe"))
	if timeframe == "" {
		timeframe = usecase.TimeframeWeek
	}

	reviews, err := h.uc.ListRecent(c.Request().Context(), timeframe)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// Summary handles the request for a restaurant's rating breakdown.
func (h *ReviewHandler) Summary(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	summary, err := h.uc.Summary(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Summary retrieved successfully")
}
