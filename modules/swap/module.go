package swap

import (
	"slotswap/core/database"
	"slotswap/core/middleware"
	"slotswap/modules/swap/controller"
	"slotswap/modules/swap/repository"
	"slotswap/modules/swap/router"
	"slotswap/modules/swap/service"

	"github.com/labstack/echo/v4"
)

// Init wires the swap module. The notifier may be nil when no delivery
// backend is configured.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, notifier service.SwapNotifier) *service.SwapService {
	repo := repository.NewSwapRepository(db)
	svc := service.NewSwapService(repo, notifier)
	ctrl := controller.NewSwapController(svc)

	router.NewSwapRouter(ctrl).Register(g, mw)

	return svc
}
