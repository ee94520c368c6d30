// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"opinalocal/internal/delivery/http/middleware"
	"opinalocal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	RestaurantHandler *handler.RestaurantHandler
	CategoryHandler   *handler.CategoryHandler
	ReviewHandler     *handler.ReviewHandler
	CommentHandler    *handler.CommentHandler
	PhotoHandler      *handler.PhotoHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	adminOnly := []echo.MiddlewareFunc{auth.Authenticate, auth.RequireRole("admin")}

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session exchange; the identity assertion arrives from the trusted
	// provider boundary.
	e.POST("/auth/sessions", r.params.UserHandler.ExchangeSession)

	// User routes
	e.GET("/users/:id", r.params.UserHandler.GetUser)
	e.GET("/users/email/:email", r.params.UserHandler.GetUserByEmail)
	e.PATCH("/users/me", r.params.UserHandler.UpdateProfile, auth.Authenticate)
	e.PATCH("/users/me/preferences", r.params.UserHandler.UpdatePreferences, auth.Authenticate)
	e.GET("/users/me/restaurants", r.params.RestaurantHandler.ListOwned, auth.Authenticate)
	e.POST("/push-subscriptions", r.params.UserHandler.RegisterPushSubscription, auth.Authenticate)
	e.GET("/push-subscriptions", r.params.UserHandler.ListPushSubscriptions, auth.Authenticate)
	e.DELETE("/push-subscriptions/:token", r.params.UserHandler.UnregisterPushSubscription, auth.Authenticate)

	// Restaurant routes
	e.GET("/restaurants", r.params.RestaurantHandler.List)
	e.GET("/restaurants/search", r.params.RestaurantHandler.Search)
	e.GET("/restaurants/:id", r.params.RestaurantHandler.Get)
	e.GET("/restaurants/:id/summary", r.params.ReviewHandler.Summary)
	e.GET("/restaurants/:id/qr", r.params.RestaurantHandler.ShareQR)
	e.POST("/restaurants", r.params.RestaurantHandler.Register, auth.Authenticate)
	e.PATCH("/restaurants/:id", r.params.RestaurantHandler.Update, auth.Authenticate)
	e.PATCH("/restaurants/:id/validate", r.params.RestaurantHandler.Validate, adminOnly...)
	e.POST("/restaurants/:id/owners", r.params.RestaurantHandler.AddOwner, adminOnly...)
	e.DELETE("/restaurants/:id/owners/:userId", r.params.RestaurantHandler.RemoveOwner, adminOnly...)

	// Category routes
	e.GET("/categories", r.params.CategoryHandler.List)
	e.GET("/categories/search", r.params.CategoryHandler.Search)
	e.POST("/categories", r.params.CategoryHandler.Create, auth.Authenticate)
	e.PATCH("/categories/:id/status", r.params.CategoryHandler.SetStatus, adminOnly...)

	// Review routes
	e.GET("/reviews", r.params.ReviewHandler.List)
	e.GET("/reviews/recent", r.params.ReviewHandler.ListRecent)
	e.GET("/reviews/:id", r.params.ReviewHandler.Get)
	e.POST("/reviews", r.params.ReviewHandler.Submit, auth.Authenticate)

	// Comment routes
	e.GET("/reviews/:id/comments", r.params.CommentHandler.ListByReview)
	e.POST("/reviews/:id/comments", r.params.CommentHandler.Add, auth.Authenticate)
	e.DELETE("/comments/:id", r.params.CommentHandler.Delete, adminOnly...)

	// Photo storage
	e.POST("/photos", r.params.PhotoHandler.Upload, auth.Authenticate)
	e.DELETE("/photos", r.params.PhotoHandler.Delete, auth.Authenticate)
}
