package notification

import (
	"slotswap/core/constants"
	"slotswap/core/database"
	"slotswap/core/middleware"
	"slotswap/core/queue"
	"slotswap/modules/notification/controller"
	"slotswap/modules/notification/repository"
	"slotswap/modules/notification/router"
	"slotswap/modules/notification/service"
	"slotswap/modules/notification/task"

	"github.com/labstack/echo/v4"
)

// Init wires the notification module: HTTP endpoints, the queue worker
// handler, and the notifier handed to the swap module.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, qc *queue.Client, qs *queue.Server) *task.Notifier {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(g, mw)

	qs.HandleFunc(constants.TaskNotificationDeliver, task.NewHandler(svc).HandleDeliver)

	return task.NewNotifier(qc)
}
