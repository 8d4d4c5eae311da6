// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"relate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MessageHandler  *handler.MessageHandler
	FeedbackHandler *handler.FeedbackHandler
	SalesHandler    *handler.SalesHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	messageHandler  *handler.MessageHandler
	feedbackHandler *handler.FeedbackHandler
	salesHandler    *handler.SalesHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		messageHandler:  params.MessageHandler,
		feedbackHandler: params.FeedbackHandler,
		salesHandler:    params.SalesHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The server is stateless: no session is retained between requests and the
// client re-sends its user identifier on every call.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
	}

	messageGroup := api.Group("/messages")
	{
		messageGroup.POST("", r.messageHandler.Send)
		messageGroup.GET("/:userId", r.messageHandler.History)
	}

	feedbackGroup := api.Group("/feedback")
	{
		feedbackGroup.POST("", r.feedbackHandler.Submit)
		feedbackGroup.GET("/:userId", r.feedbackHandler.History)
	}

	salesGroup := api.Group("/sales")
	{
		salesGroup.POST("", r.salesHandler.Record)
		salesGroup.GET("/:businessId", r.salesHandler.List)
		salesGroup.GET("/:businessId/latest", r.salesHandler.Latest)
	}
}
