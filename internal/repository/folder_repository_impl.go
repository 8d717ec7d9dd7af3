package repository

import (
	"image-hub-server/internal/model"

	"gorm.io/gorm"
)

type FolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderStore {
	return &FolderRepository{db: db}
}

// preloadImages 统一图片预载顺序：上传时间升序（最早在前）。
func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("images.upload_date ASC, images.id ASC")
}

func (r *FolderRepository) Create(folder *model.Folder) error {
	return r.db.Create(folder).Error
}

func (r *FolderRepository) List() ([]model.Folder, error) {
	var folders []model.Folder
	if err := r.db.Preload("Images", preloadImages).
		Order("folders.id ASC").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FolderRepository) FindByIdentifier(identifier string) (*model.Folder, error) {
	query := r.db.Preload("Images", preloadImages)

	var folder model.Folder
	if id, ok := parseNumericIdentifier(identifier); ok {
		if err := query.First(&folder, id).Error; err != nil {
			return nil, err
		}
		return &folder, nil
	}

	if err := query.Where("slug = ?", identifier).First(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepository) NameExists(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Folder{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FolderRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Folder{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
