package testutils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// SolidPNG 生成指定尺寸的纯色 PNG（RGBA 编码）。
func SolidPNG(width, height int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// RedPNG 生成 4x4 纯红 PNG，用于彩色分类断言。
func RedPNG() []byte {
	return SolidPNG(4, 4, color.RGBA{R: 255, A: 255})
}

// GrayPNG 生成单通道灰度 PNG（R=G=B），用于灰度分类断言。
func GrayPNG(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x*16 + y*8) % 256)})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// NearGrayPNG 生成 RGBA 编码但通道差不超过容差的 PNG。
// 用于验证压缩噪声级别的偏色仍判为灰度。
func NearGrayPNG(width, height int, diff uint8) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			base := uint8(120)
			img.Set(x, y, color.RGBA{R: base + diff, G: base, B: base, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
