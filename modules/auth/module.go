package auth

import (
	"slotswap/core/cache"
	"slotswap/core/database"
	"slotswap/core/middleware"
	"slotswap/modules/auth/controller"
	"slotswap/modules/auth/repository"
	"slotswap/modules/auth/router"
	"slotswap/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and returns the service for use by other modules.
func Init(g *echo.Group, db database.Database, cache cache.Cache, mw *middleware.Middleware) *service.AuthService {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, cache)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Register(g, mw)

	return svc
}
