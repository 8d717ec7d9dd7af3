package handler

import (
	"net/http"

	"image-hub-server/internal/common/httpx"
	"image-hub-server/internal/dto"

	"github.com/gin-gonic/gin"
)

// ListFolders 返回全部文件夹，附带 image_count 与内嵌图片列表。
func (h *Handler) ListFolders(c *gin.Context) {
	folders, err := h.service.ListFolders()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文件夹列表失败")
		return
	}

	baseURL := requestBaseURL(c)
	resp := make([]dto.FolderResponse, 0, len(folders))
	for _, folder := range folders {
		resp = append(resp, dto.NewFolderResponse(folder, baseURL))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateFolder 创建文件夹。
func (h *Handler) CreateFolder(c *gin.Context) {
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "InvalidName", "detail": "请提供非空的 name 字段"})
		return
	}

	folder, err := h.service.CreateFolder(req.Name)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建文件夹失败")
		return
	}

	c.JSON(http.StatusCreated, dto.NewFolderResponse(*folder, requestBaseURL(c)))
}

// GetFolder 按 id 或 slug 返回单个文件夹及其图片。
func (h *Handler) GetFolder(c *gin.Context) {
	folder, err := h.service.GetFolder(c.Param("identifier"))
	if err != nil {
		httpx.WriteServiceError(c, err, "查询文件夹失败")
		return
	}

	c.JSON(http.StatusOK, dto.NewFolderResponse(*folder, requestBaseURL(c)))
}
