package middleware

import (
	"net/http"
	"strings"

	"slotswap/core/cache"
	"slotswap/core/controller"
	"slotswap/core/logger"
	"slotswap/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(cache cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware validates the Bearer token and stores the parsed claims in
// the request context under "token_data".
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return controller.NewErrorResponse(http.StatusUnauthorized, "No token provided, authorization denied")
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized, "No token provided, authorization denied")
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted:Error:", err)
					return controller.NewErrorResponse(http.StatusInternalServerError, "internal server error")
				}
				if blacklisted {
					return controller.NewErrorResponse(http.StatusUnauthorized, "Invalid token, authorization denied")
				}
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, "Invalid token, authorization denied")
			}

			c.Set("token_data", claims)
			c.Set("raw_token", token)
			return next(c)
		}
	}
}
