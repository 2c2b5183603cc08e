package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"waterline.io/waterline/internal/api/handlers"
	"waterline.io/waterline/internal/api/middleware"
	"waterline.io/waterline/internal/metrics"
	"waterline.io/waterline/internal/pkg/logger"
)

func newRouter(server *handlers.Server, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			middleware.RequestIDHeader, middleware.OrgIDHeader,
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.Any("/log/level", gin.WrapH(logger.HTTPHandler()))
	server.RegisterRoutes(router)
	return router
}
