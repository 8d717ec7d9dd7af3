package service

import (
	"errors"
	"log"
	"strings"

	"image-hub-server/internal/model"
	"image-hub-server/internal/repository"
	"image-hub-server/internal/utils"

	"gorm.io/gorm"
)

// CreateFolder 创建文件夹：校验名称、生成唯一 slug、入库。
// 名称重复返回 DuplicateName；并发重名由数据库唯一约束兜底，只会有一个成功。
func (s *AppService) CreateFolder(name string) (*model.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewInvalidNameError("文件夹名称不能为空")
	}

	base := utils.Slugify(name)
	if base == "" {
		return nil, NewInvalidNameError("文件夹名称未包含有效字符")
	}

	exists, err := s.repos.Folders.NameExists(name)
	if err != nil {
		log.Printf("Check folder name error: %v\n", err)
		return nil, NewInternalError("查询文件夹失败")
	}
	if exists {
		return nil, NewDuplicateNameError("同名文件夹已存在")
	}

	slug, err := uniqueSlug(base, s.repos.Folders.SlugExists)
	if err != nil {
		log.Printf("Generate folder slug error: %v\n", err)
		return nil, NewInternalError("生成 slug 失败")
	}

	folder := &model.Folder{Name: name, Slug: slug}
	if err := s.repos.Folders.Create(folder); err != nil {
		// 并发创建时由唯一约束决出唯一赢家
		if repository.IsUniqueViolation(err) {
			return nil, NewDuplicateNameError("同名文件夹已存在")
		}
		log.Printf("Create folder error: %v\n", err)
		return nil, NewInternalError("创建文件夹失败")
	}

	return folder, nil
}

// ListFolders 返回全部文件夹（创建顺序），图片已按上传顺序预载。
func (s *AppService) ListFolders() ([]model.Folder, error) {
	folders, err := s.repos.Folders.List()
	if err != nil {
		log.Printf("List folders error: %v\n", err)
		return nil, NewInternalError("获取文件夹列表失败")
	}
	return folders, nil
}

// GetFolder 按数字 id 或 slug 查找文件夹，未命中返回 FolderNotFound。
func (s *AppService) GetFolder(identifier string) (*model.Folder, error) {
	folder, err := s.repos.Folders.FindByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewFolderNotFoundError("文件夹不存在")
		}
		log.Printf("Find folder error: %v\n", err)
		return nil, NewInternalError("查询文件夹失败")
	}
	return folder, nil
}
