package middleware

import (
	"image-hub-server/internal/config"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为静态图片资源添加 Cache-Control 头。
// 缓存策略由 upload.cache_control 配置决定。
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := config.Get().Upload.CacheControl
		if cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
