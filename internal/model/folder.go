package model

import "time"

// Folder 图片文件夹。名称与 slug 全局唯一，slug 创建后不再变化。
type Folder struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;unique"`
	Slug      string    `json:"slug" gorm:"not null;unique"`
	CreatedAt time.Time `json:"created_at"`
	Images    []Image   `json:"-" gorm:"foreignKey:FolderID"`
}
