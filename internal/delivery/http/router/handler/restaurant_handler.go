package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"opinalocal/internal/delivery/http/middleware"
	"opinalocal/internal/delivery/http/response"
	"opinalocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for restaurant-related handlers.
type RestaurantHandler struct {
	uc     usecase.RestaurantUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles a new restaurant submission.
func (h *RestaurantHandler) Register(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var input *usecase.RegisterRestaurantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	restaurant, err := h.uc.Register(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant registered successfully")
}

// Get handles the request for one restaurant with its derived rating.
func (h *RestaurantHandler) Get(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	result, err := h.uc.Get(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Restaurant retrieved successfully")
}

// List handles the restaurant listing, optionally filtered by validation
// status via the validated query parameter.
func (h *RestaurantHandler) List(c echo.Context) error {
	validated, err := parseOptionalBool(c.QueryParam("validated"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid validated filter")
	}

	restaurants, err := h.uc.List(c.Request().Context(), validated)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// Search handles the restaurant search. Query parameters: q, validated, and
// optionally lat+lng+radius for proximity filtering.
func (h *RestaurantHandler) Search(c echo.Context) error {
	validated, err := parseOptionalBool(c.QueryParam("validated"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid validated filter")
	}

	input := &usecase.SearchRestaurantsInput{
		Query:     c.QueryParam("q"),
		Validated: validated,
	}

	if input.Lat, err = parseOptionalFloat(c.QueryParam("lat")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid latitude")
	}
	if input.Lng, err = parseOptionalFloat(c.QueryParam("lng")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid longitude")
	}
	if input.RadiusKm, err = parseOptionalFloat(c.QueryParam("radius")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid radius")
	}

	results, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "Restaurants retrieved successfully")
}

// Update handles an ownership-gated restaurant patch.
func (h *RestaurantHandler) Update(c echo.Context) error {
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	var input *usecase.UpdateRestaurantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}

	restaurant, err := h.uc.Update(c.Request().Context(), restaurantID, requester, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant updated successfully")
}

// Validate handles the admin action marking a restaurant validated.
func (h *RestaurantHandler) Validate(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	restaurant, err := h.uc.Validate(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant validated successfully")
}

// addOwnerRequest carries the user granted ownership.
type addOwnerRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// AddOwner handles the admin action granting a user edit rights.
func (h *RestaurantHandler) AddOwner(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	var req *addOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AddOwner(c.Request().Context(), restaurantID, req.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Owner added successfully")
}

// RemoveOwner handles the admin action revoking a user's edit rights.
func (h *RestaurantHandler) RemoveOwner(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.RemoveOwner(c.Request().Context(), restaurantID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Owner removed successfully")
}

// ListOwned handles the caller's "my restaurants" listing.
func (h *RestaurantHandler) ListOwned(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	restaurants, err := h.uc.ListOwned(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// ShareQR handles the request for the restaurant's share QR code PNG.
func (h *RestaurantHandler) ShareQR(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	png, err := h.uc.ShareQR(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func parseOptionalBool(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
