package service

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// colorTolerance 色彩判定容差：单像素最大两两通道差超过该值即视为彩色，
// 用于吸收 JPEG 压缩与取整噪声。
const colorTolerance = 10

// ImageMetadata 上传时一次性计算的图片元数据。
type ImageMetadata struct {
	Width    int
	Height   int
	FileSize int64
	IsColor  bool
}

// ExtractImageMetadata 从原始图片字节解码出宽高、字节数与色彩分类。
// 对输入无副作用；解码失败返回 UnsupportedImageFormat。
func ExtractImageMetadata(data []byte) (*ImageMetadata, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, NewUnsupportedImageFormatError("无法解码图片：文件损坏或格式不支持")
	}

	bounds := img.Bounds()
	return &ImageMetadata{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		FileSize: int64(len(data)),
		IsColor:  isColorImage(img),
	}, nil
}

// isColorImage 单次线性扫描判定彩色/灰度。
// 单通道编码直接判灰度；否则逐像素比较 RGB 通道差，
// 首个超出容差的像素即判彩色并提前退出。
func isColorImage(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return false
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA 返回 16 位通道，降到 8 位再比较
			if maxChannelDiff(int(r>>8), int(g>>8), int(b>>8)) > colorTolerance {
				return true
			}
		}
	}
	return false
}

// maxChannelDiff 返回 |R-G|、|R-B|、|G-B| 中的最大值。
func maxChannelDiff(r, g, b int) int {
	d := absInt(r - g)
	if v := absInt(r - b); v > d {
		d = v
	}
	if v := absInt(g - b); v > d {
		d = v
	}
	return d
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
