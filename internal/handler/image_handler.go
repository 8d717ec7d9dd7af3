package handler

import (
	"net/http"
	"strings"

	"image-hub-server/internal/common/httpx"
	"image-hub-server/internal/config"
	"image-hub-server/internal/dto"
	"image-hub-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// UploadImage 上传图片到指定文件夹（multipart 字段 image_file）。
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation", "detail": "请通过 image_file 字段上传文件"})
		return
	}

	imageRecord, err := h.service.UploadImage(c.Param("identifier"), file)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, dto.NewImageResponse(*imageRecord, requestBaseURL(c)))
}

// ListImages 返回文件夹内全部图片；空文件夹返回空数组。
func (h *Handler) ListImages(c *gin.Context) {
	images, err := h.service.ListImages(c.Param("identifier"))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}

	c.JSON(http.StatusOK, dto.NewImageResponses(images, requestBaseURL(c)))
}

// GetImage 返回单张图片。
// 客户端 Accept 包含 text/html 时渲染详情页，否则返回 JSON。
func (h *Handler) GetImage(c *gin.Context) {
	folder, image, err := h.service.GetFolderImage(c.Param("identifier"), c.Param("image_identifier"))
	if err != nil {
		httpx.WriteServiceError(c, err, "查询图片失败")
		return
	}

	resp := dto.NewImageResponse(*image, requestBaseURL(c))

	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		loc := config.DisplayLocation()
		colorLabel := "灰度"
		if image.IsColor {
			colorLabel = "彩色"
		}
		c.HTML(http.StatusOK, "image_detail.html", gin.H{
			"Name":              image.Name,
			"URL":               resp.URL,
			"Width":             image.Width,
			"Height":            image.Height,
			"FormattedFileSize": utils.FormatFileSize(image.FileSize),
			"ColorLabel":        colorLabel,
			"FormattedDate":     utils.FormatDate(image.UploadDate, loc),
			"FormattedTime":     utils.FormatTime(image.UploadDate, loc),
			"FolderName":        folder.Name,
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
