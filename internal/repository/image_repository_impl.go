package repository

import (
	"image-hub-server/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) ListByFolder(folderID uint) ([]model.Image, error) {
	var images []model.Image
	if err := r.db.Where("folder_id = ?", folderID).
		Order("upload_date ASC, id ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) FindByIdentifierInFolder(folderID uint, identifier string) (*model.Image, error) {
	var image model.Image
	if id, ok := parseNumericIdentifier(identifier); ok {
		if err := r.db.Where("id = ? AND folder_id = ?", id, folderID).
			First(&image).Error; err != nil {
			return nil, err
		}
		return &image, nil
	}

	if err := r.db.Where("slug = ? AND folder_id = ?", identifier, folderID).
		First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Image{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ImageRepository) CountByFolder(folderID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Image{}).Where("folder_id = ?", folderID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
