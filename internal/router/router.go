package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	SearchEvents(c *ginext.Context)
	EventStats(c *ginext.Context)
	RegisterAttendees(c *ginext.Context)
	EventAnalytics(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.GET("/events/search", h.SearchEvents)
		api.GET("/events/:id/stats", h.EventStats)

		// Registrations
		api.POST("/events/:id/register", h.RegisterAttendees)

		// Analytics
		api.GET("/events/:id/analytics", h.EventAnalytics)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
