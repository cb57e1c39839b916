package event

import (
	"slotswap/core/database"
	"slotswap/core/middleware"
	"slotswap/modules/event/controller"
	"slotswap/modules/event/repository"
	"slotswap/modules/event/router"
	"slotswap/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event module.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.EventService {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Register(g, mw)

	return svc
}
