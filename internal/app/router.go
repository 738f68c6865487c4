package app

import (
	"github.com/NLarchive/ai-learning-roadmap/docs"
	"github.com/NLarchive/ai-learning-roadmap/internal/middleware"
	"github.com/NLarchive/ai-learning-roadmap/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 目录只读接口
		api.GET("/bundle", c.catalog.GetBundle)
		api.GET("/courses", c.catalog.GetCourses)
		api.GET("/courses/:id", c.catalog.GetCourse)
		api.GET("/categories", c.catalog.GetCategories)
		api.GET("/paths", c.catalog.GetPaths)
		api.GET("/paths/:id", c.catalog.GetPath)
		api.GET("/external-resources", c.catalog.GetExternalResources)
		api.GET("/stats", c.catalog.GetStats)

		// 手动刷新（前端"重试/刷新"按钮）
		api.POST("/catalog/refresh", c.catalog.Refresh)

		// 完成勾选，按匿名客户端标识隔离
		completions := api.Group("/completions")
		completions.Use(middleware.ClientID())
		{
			completions.GET("", c.completion.List)
			completions.DELETE("", c.completion.Clear)
			completions.PUT("/:courseId", c.completion.Set)
			completions.DELETE("/:courseId", c.completion.Unset)
		}
	}
}
