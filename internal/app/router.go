package app

import (
	"study_tracker_backend/docs"
	"study_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	// 学习主题
	c.aspNetCore.Register(router.Group(pathAspNetCore))
	c.designPatterns.Register(router.Group(pathDesignPatterns))
	c.systemDesign.Register(router.Group(pathSystemDesign))
	c.csharp.Register(router.Group(pathCSharp))
	c.efCore.Register(router.Group(pathEFCore))

	// 学习记录
	c.studySessions.Register(router.Group(pathStudySessions))
}
