package router

import (
	"slotswap/core/middleware"
	"slotswap/modules/swap/controller"

	"github.com/labstack/echo/v4"
)

type SwapRouter struct {
	controller *controller.SwapController
}

func NewSwapRouter(controller *controller.SwapController) *SwapRouter {
	return &SwapRouter{controller: controller}
}

func (r *SwapRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	swap := g.Group("/swap-request")
	swap.Use(mw.AuthMiddleware())

	swap.POST("", r.controller.CreateSwapRequest)
	swap.POST("/response/:requestId", r.controller.RespondToSwapRequest)
	swap.GET("/requests", r.controller.GetSwapRequests)
}
