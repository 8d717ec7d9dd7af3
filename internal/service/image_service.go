package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"image-hub-server/internal/config"
	"image-hub-server/internal/model"
	"image-hub-server/internal/repository"
	"image-hub-server/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// validateUploadFile 校验上传文件的大小、扩展名与内容（Magic Bytes）。
// 返回小写扩展名（如 .jpg）。
func validateUploadFile(file *multipart.FileHeader) (string, error) {
	cfg := config.Get()

	maxSizeMB := cfg.Upload.MaxSizeMB
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return "", NewFileTooLargeError(fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return "", NewUnsupportedImageFormatError("无法识别文件类型")
	}

	allowed := false
	for _, allowExt := range strings.Split(cfg.Upload.AllowExtensions, ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", NewUnsupportedImageFormatError(fmt.Sprintf("不支持的文件类型: %s", ext))
	}

	src, err := file.Open()
	if err != nil {
		return "", NewInternalError("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		return "", NewUnsupportedImageFormatError(msg)
	}

	return ext, nil
}

// UploadImage 处理图片上传：解析目标文件夹、提取元数据、落盘并写入记录。
// 文件与记录要么同时存在要么都不存在：数据库失败时删除已写入的文件。
func (s *AppService) UploadImage(folderIdentifier string, file *multipart.FileHeader) (*model.Image, error) {
	folder, err := s.GetFolder(folderIdentifier)
	if err != nil {
		return nil, err
	}

	ext, err := validateUploadFile(file)
	if err != nil {
		return nil, err
	}

	// 图片名取自上传文件名（去扩展名）
	name := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	base := utils.Slugify(name)
	if base == "" {
		return nil, NewInvalidNameError("文件名未包含有效字符")
	}

	src, err := file.Open()
	if err != nil {
		return nil, NewInternalError("无法读取上传文件")
	}
	data, readErr := io.ReadAll(src)
	_ = src.Close()
	if readErr != nil {
		return nil, NewInternalError("读取上传文件失败")
	}

	// 元数据在落盘前计算：解码失败时不留任何痕迹
	meta, err := ExtractImageMetadata(data)
	if err != nil {
		return nil, err
	}

	slug, err := uniqueSlug(base, s.repos.Images.SlugExists)
	if err != nil {
		log.Printf("Generate image slug error: %v\n", err)
		return nil, NewInternalError("生成 slug 失败")
	}

	cfg := config.Get()
	uploadRoot := cfg.Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/imgs"
	}

	// 存储路径：<storageRoot>/<文件夹ID>/<uuid><ext>
	relativePath := filepath.ToSlash(filepath.Join(
		fmt.Sprintf("%d", folder.ID), uuid.New().String()+ext))
	dst, err := utils.SecureJoin(uploadRoot, filepath.FromSlash(relativePath))
	if err != nil {
		log.Printf("Resolve upload path error: %v\n", err)
		return nil, NewInternalError("系统错误: 存储路径不安全")
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		log.Printf("MkdirAll error: %v\n", err)
		return nil, NewInternalError("系统错误: 无法创建存储目录")
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		log.Printf("Write file error: %v\n", err)
		return nil, NewInternalError("文件保存失败")
	}

	imageRecord := &model.Image{
		FolderID:   folder.ID,
		Name:       name,
		Slug:       slug,
		FilePath:   relativePath,
		UploadDate: time.Now(),
		Width:      meta.Width,
		Height:     meta.Height,
		FileSize:   meta.FileSize,
		IsColor:    meta.IsColor,
	}

	if err := s.repos.Images.Create(imageRecord); err != nil {
		_ = os.Remove(dst) // 回滚文件，避免孤儿存储
		if repository.IsUniqueViolation(err) {
			return nil, NewDuplicateNameError("同名图片刚刚被创建，请重试")
		}
		log.Printf("Create image record error: %v\n", err)
		return nil, NewInternalError("系统错误: 数据库记录失败")
	}

	return imageRecord, nil
}

// ListImages 返回文件夹内全部图片（上传顺序）；空文件夹返回空列表。
func (s *AppService) ListImages(folderIdentifier string) ([]model.Image, error) {
	folder, err := s.GetFolder(folderIdentifier)
	if err != nil {
		return nil, err
	}

	images, err := s.repos.Images.ListByFolder(folder.ID)
	if err != nil {
		log.Printf("List images error: %v\n", err)
		return nil, NewInternalError("获取图片列表失败")
	}
	return images, nil
}

// GetImage 在指定文件夹内按 id 或 slug 查找图片。
// 图片不存在、或存在但属于其他文件夹，统一返回 ImageNotFound。
func (s *AppService) GetImage(folderIdentifier, imageIdentifier string) (*model.Image, error) {
	_, image, err := s.GetFolderImage(folderIdentifier, imageIdentifier)
	return image, err
}

// GetFolderImage 同时返回归属文件夹与图片，供详情页渲染使用。
func (s *AppService) GetFolderImage(folderIdentifier, imageIdentifier string) (*model.Folder, *model.Image, error) {
	folder, err := s.GetFolder(folderIdentifier)
	if err != nil {
		return nil, nil, err
	}

	image, err := s.repos.Images.FindByIdentifierInFolder(folder.ID, imageIdentifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NewImageNotFoundError("图片不存在")
		}
		log.Printf("Find image error: %v\n", err)
		return nil, nil, NewInternalError("查询图片失败")
	}
	return folder, image, nil
}
