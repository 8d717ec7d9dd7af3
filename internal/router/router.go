package router

import (
	"image-hub-server/internal/handler"
	"image-hub-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// InitRouter 注册全部 API 路由与中间件。
func InitRouter(r *gin.Engine, h *handler.Handler) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	// 写接口限流（创建文件夹与上传共用同一个实例，保持行为一致）
	writeLimiter := middleware.RateLimitMiddleware()
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong from gin"})
	})

	folders := api.Group("/folders")
	folders.GET("/", h.ListFolders)
	folders.POST("/", writeLimiter, h.CreateFolder)
	folders.GET("/:identifier/", h.GetFolder)
	folders.GET("/:identifier/images/", h.ListImages)
	folders.POST("/:identifier/images/", uploadBodyLimit, writeLimiter, h.UploadImage)
	folders.GET("/:identifier/images/:image_identifier/", h.GetImage)
}
