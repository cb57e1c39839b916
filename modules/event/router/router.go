package router

import (
	"slotswap/core/middleware"
	"slotswap/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	events := g.Group("/events")
	events.Use(mw.AuthMiddleware())

	events.POST("", r.controller.CreateEvent)
	events.GET("", r.controller.GetEvents)
	events.GET("/swappable-slots", r.controller.GetSwappableSlots)
	events.PUT("/:id", r.controller.UpdateEvent)
	events.DELETE("/:id", r.controller.DeleteEvent)
}
