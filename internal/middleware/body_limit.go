package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"image-hub-server/internal/config"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通 API 请求体大小。
// 上传接口（POST .../images/）由 UploadBodyLimitMiddleware 单独限制。
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost && strings.HasSuffix(strings.TrimSuffix(c.Request.URL.Path, "/"), "/images") {
			c.Next()
			return
		}

		// 普通 JSON 请求 2MB 足够
		maxBytes := int64(2) * 1024 * 1024

		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小。
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Upload.MaxSizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		// 预留 multipart 边界等开销
		maxBytes := int64(maxSizeMB)*1024*1024 + 1024*1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":  "FileTooLarge",
				"detail": fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB),
			})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
