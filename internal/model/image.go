package model

import "time"

// Image 上传后的图片记录。
// 宽高、字节数与色彩分类在入库时计算一次，之后不再修改。
type Image struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FolderID   uint      `json:"folder" gorm:"not null;index"`
	Folder     Folder    `json:"-" gorm:"foreignKey:FolderID;references:ID;constraint:OnDelete:CASCADE;"`
	Name       string    `json:"name" gorm:"not null"`
	Slug       string    `json:"slug" gorm:"not null;unique"`
	FilePath   string    `json:"-" gorm:"not null;unique"` // 相对 storageRoot 的存储路径
	UploadDate time.Time `json:"upload_date" gorm:"not null;index"`
	Width      int       `json:"width" gorm:"not null"`
	Height     int       `json:"height" gorm:"not null"`
	FileSize   int64     `json:"file_size" gorm:"not null"`
	IsColor    bool      `json:"is_color" gorm:"not null"`
}
