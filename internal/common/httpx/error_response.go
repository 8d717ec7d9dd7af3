package httpx

import (
	"net/http"

	"image-hub-server/internal/service"

	"github.com/gin-gonic/gin"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
// 响应体形如 {"error": 分类, "detail": 描述}。
func WriteServiceError(c *gin.Context, err error, fallbackDetail string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		c.JSON(serviceErrorStatus(serviceErr.Code), gin.H{
			"error":  string(serviceErr.Code),
			"detail": serviceErr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":  string(service.ErrorCodeInternal),
		"detail": fallbackDetail,
	})
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeInvalidName,
		service.ErrorCodeDuplicateName,
		service.ErrorCodeUnsupportedImageFormat,
		service.ErrorCodeFileTooLarge,
		service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeFolderNotFound, service.ErrorCodeImageNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
