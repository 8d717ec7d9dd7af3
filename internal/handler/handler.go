package handler

import (
	"image-hub-server/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *service.AppService
}

func NewHandler(appService *service.AppService) *Handler {
	return &Handler{service: appService}
}

// requestBaseURL 根据请求还原站点基础 URL，用于拼接图片完整地址。
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
