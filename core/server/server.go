package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotswap/core/cache"
	"slotswap/core/config"
	"slotswap/core/database"
	"slotswap/core/logger"
	coreMiddleware "slotswap/core/middleware"
	"slotswap/core/queue"
	"slotswap/modules/auth"
	"slotswap/modules/event"
	"slotswap/modules/notification"
	"slotswap/modules/swap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run boots the whole application: config, storage, cache, queue, HTTP
// routes. It blocks until SIGINT/SIGTERM and then shuts down gracefully.
func Run() error {
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cfg)
	if err != nil {
		return fmt.Errorf("init redis cache: %w", err)
	}
	defer redisCache.Close()

	queueClient := queue.NewClient(cfg)
	defer queueClient.Close()
	queueServer := queue.NewServer(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	mw := coreMiddleware.NewMiddleware(redisCache)
	api := e.Group("/api/v1")

	auth.Init(api, db, redisCache, mw)
	event.Init(api, db, mw)
	notifier := notification.Init(api, db, mw, queueClient, queueServer)
	swap.Init(api, db, mw, notifier)

	if err := queueServer.Start(); err != nil {
		return fmt.Errorf("start queue server: %w", err)
	}

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error:", err)
		}
	}()
	logger.Info("Server started", "host", cfg.Server.Host, "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server:Shutdown:Error:", err)
	}
	queueServer.Shutdown()

	logger.Info("Server stopped")
	return nil
}
