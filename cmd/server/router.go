package main

import (
	"festival-lineup/config"
	"festival-lineup/internal/handler"
	"festival-lineup/internal/middleware"
	"festival-lineup/internal/web"
	"festival-lineup/pkg/logger"

	"github.com/gin-gonic/gin"
)

type routes struct {
	events *handler.EventHandler
	users  *handler.UserHandler
	health *handler.HealthHandler
	pages  *web.Pages
}

func newRouter(cfg *config.Config, r routes, tracing bool) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	if tracing {
		router.Use(middleware.Tracing(cfg.Service.Name))
	}
	router.Use(middleware.Logging(logger.WithComponent("http")))
	router.Use(middleware.Metrics())
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	r.health.RegisterRoutes(router)
	router.GET("/metrics", middleware.MetricsHandler())

	r.events.RegisterRoutes(router)
	r.users.RegisterRoutes(router)
	r.pages.RegisterRoutes(router)

	return router
}
