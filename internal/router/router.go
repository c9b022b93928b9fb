package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/goldengen/backend/config"
	"github.com/goldengen/backend/internal/embed"
	"github.com/goldengen/backend/internal/handler"
)

func Setup(
	cfg *config.Config,
	generationHandler *handler.GenerationHandler,
	configHandler *handler.ConfigHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		generate := api.Group("/generate")
		{
			generate.POST("/styling", generationHandler.GenerateFromStyling)
			generate.POST("/documents", generationHandler.GenerateFromDocuments)
		}

		generations := api.Group("/generations")
		{
			generations.GET("", generationHandler.List)
			generations.GET("/:id", generationHandler.Get)
			generations.GET("/:id/download", generationHandler.Download)
			generations.DELETE("/:id", generationHandler.Delete)
		}

		api.GET("/config", configHandler.Get)
	}

	// 设置前端静态文件路由（嵌入式）
	// 必须在API路由之后设置，确保API请求优先匹配
	embed.SetupRouter(r)

	return r
}
