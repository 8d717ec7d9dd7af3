package repository

import "image-hub-server/internal/model"

type ImageStore interface {
	Create(image *model.Image) error
	// ListByFolder 返回文件夹内全部图片，按上传顺序（最早在前）。
	ListByFolder(folderID uint) ([]model.Image, error)
	// FindByIdentifierInFolder 在指定文件夹内按数字 id 或 slug 查找图片。
	// 图片存在但属于其他文件夹时同样返回未找到。
	FindByIdentifierInFolder(folderID uint, identifier string) (*model.Image, error)
	SlugExists(slug string) (bool, error)
	CountByFolder(folderID uint) (int64, error)
}
