package dto

import (
	"strings"
	"time"

	"image-hub-server/internal/config"
	"image-hub-server/internal/model"
	"image-hub-server/internal/utils"
)

type CreateFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

type ImageResponse struct {
	ID                uint   `json:"id"`
	Folder            uint   `json:"folder"`
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	ImageFile         string `json:"image_file"`
	UploadDate        string `json:"upload_date"`
	Width             int    `json:"width"`
	Height            int    `json:"height"`
	FileSize          int64  `json:"file_size"`
	FormattedFileSize string `json:"formatted_file_size"`
	IsColor           bool   `json:"is_color"`
	URL               string `json:"url"`
}

type FolderResponse struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Slug       string          `json:"slug"`
	CreatedAt  string          `json:"created_at"`
	ImageCount int             `json:"image_count"`
	Images     []ImageResponse `json:"images"`
}

// imageFileURL 拼接图片的访问路径：<url_prefix><相对存储路径>。
func imageFileURL(filePath string) string {
	prefix := config.Get().Upload.URLPrefix
	if prefix == "" {
		prefix = "/imgs/"
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + filePath
}

// NewImageResponse 构造图片响应体；baseURL 形如 "http://host"，用于拼接完整 URL。
func NewImageResponse(img model.Image, baseURL string) ImageResponse {
	imageFile := imageFileURL(img.FilePath)
	return ImageResponse{
		ID:                img.ID,
		Folder:            img.FolderID,
		Name:              img.Name,
		Slug:              img.Slug,
		ImageFile:         imageFile,
		UploadDate:        img.UploadDate.UTC().Format(time.RFC3339),
		Width:             img.Width,
		Height:            img.Height,
		FileSize:          img.FileSize,
		FormattedFileSize: utils.FormatFileSize(img.FileSize),
		IsColor:           img.IsColor,
		URL:               baseURL + imageFile,
	}
}

// NewImageResponses 批量构造；保证空列表序列化为 [] 而非 null。
func NewImageResponses(images []model.Image, baseURL string) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, NewImageResponse(img, baseURL))
	}
	return out
}

// NewFolderResponse 构造文件夹响应体，image_count 由预载图片数量派生。
func NewFolderResponse(folder model.Folder, baseURL string) FolderResponse {
	images := NewImageResponses(folder.Images, baseURL)
	return FolderResponse{
		ID:         folder.ID,
		Name:       folder.Name,
		Slug:       folder.Slug,
		CreatedAt:  folder.CreatedAt.UTC().Format(time.RFC3339),
		ImageCount: len(images),
		Images:     images,
	}
}
