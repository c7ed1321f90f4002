// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"geowatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EventHandler      *handler.EventHandler
	SubscriberHandler *handler.SubscriberHandler
	StatsHandler      *handler.StatsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	eventHandler      *handler.EventHandler
	subscriberHandler *handler.SubscriberHandler
	statsHandler      *handler.StatsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		eventHandler:      params.EventHandler,
		subscriberHandler: params.SubscriberHandler,
		statsHandler:      params.StatsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Scanner feed ingest
	e.POST("/events", r.eventHandler.HandleEvents)

	// Subscriber management surface
	guildGroup := e.Group("/guilds/:guild_id")
	{
		guildGroup.PUT("/subscribers/:user_id", r.subscriberHandler.Upsert)
		guildGroup.GET("/subscribers/:user_id", r.subscriberHandler.Get)
		guildGroup.DELETE("/subscribers/:user_id", r.subscriberHandler.Delete)
	}

	// Daily stats surface
	statsGroup := e.Group("/stats")
	{
		statsGroup.GET("", r.statsHandler.Snapshot)
		statsGroup.POST("/reset", r.statsHandler.Reset)
	}
}
