package repository

import "image-hub-server/internal/model"

type FolderStore interface {
	Create(folder *model.Folder) error
	// List 返回全部文件夹（创建顺序），并预载各自的图片（上传顺序）。
	List() ([]model.Folder, error)
	// FindByIdentifier 按数字 id 或 slug 查找文件夹，并预载图片。
	FindByIdentifier(identifier string) (*model.Folder, error)
	NameExists(name string) (bool, error)
	SlugExists(slug string) (bool, error)
}
