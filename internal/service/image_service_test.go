package service

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"image-hub-server/internal/model"
	"image-hub-server/internal/testutils"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	oldwd, _ := os.Getwd()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("切换目录失败: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
}

// 测试内容：验证上传图片的完整流程：落盘、元数据与记录字段。
func TestUploadImage(t *testing.T) {
	s, _ := setupTestService(t)
	chdirTemp(t)

	folder, err := s.CreateFolder("Uploads")
	if err != nil {
		t.Fatalf("创建文件夹失败: %v", err)
	}

	data := testutils.RedPNG()
	file := makeFileHeader(t, "sunset photo.png", data)

	img, err := s.UploadImage(folder.Slug, file)
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}

	if img.Name != "sunset photo" {
		t.Fatalf("期望名称去扩展名，实际为 %q", img.Name)
	}
	if img.Slug != "sunset-photo" {
		t.Fatalf("期望 slug sunset-photo，实际为 %q", img.Slug)
	}
	if img.FolderID != folder.ID {
		t.Fatalf("期望归属文件夹 %d，实际为 %d", folder.ID, img.FolderID)
	}
	if img.Width != 4 || img.Height != 4 {
		t.Fatalf("期望 4x4，实际为 %dx%d", img.Width, img.Height)
	}
	if img.FileSize != int64(len(data)) {
		t.Fatalf("期望 file_size %d，实际为 %d", len(data), img.FileSize)
	}
	if !img.IsColor {
		t.Fatalf("期望纯红图片 is_color = true")
	}

	// 物理文件存在
	full := filepath.Join("uploads", "imgs", filepath.FromSlash(img.FilePath))
	if _, err := os.Stat(full); err != nil {
		t.Fatalf("期望 file exists: %v", err)
	}
}

// 测试内容：验证灰度图片上传后 is_color = false。
func TestUploadImage_Grayscale(t *testing.T) {
	s, _ := setupTestService(t)
	chdirTemp(t)

	folder, _ := s.CreateFolder("Gray")
	img, err := s.UploadImage(folder.Slug, makeFileHeader(t, "gray.png", testutils.GrayPNG(6, 6)))
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if img.IsColor {
		t.Fatalf("期望灰度图片 is_color = false")
	}
}

// 测试内容：验证非图片内容上传失败，且不留下记录与文件。
func TestUploadImage_InvalidContent(t *testing.T) {
	s, gdb := setupTestService(t)
	chdirTemp(t)

	folder, _ := s.CreateFolder("Bad")

	_, err := s.UploadImage(folder.Slug, makeFileHeader(t, "fake.png", []byte("not an image at all")))
	serviceErr, ok := AsServiceError(err)
	if !ok || serviceErr.Code != ErrorCodeUnsupportedImageFormat {
		t.Fatalf("期望 UnsupportedImageFormat，实际为 %v", err)
	}

	var count int64
	_ = gdb.Model(&model.Image{}).Count(&count).Error
	if count != 0 {
		t.Fatalf("期望无图片记录，实际为 %d", count)
	}
	if entries, err := os.ReadDir(filepath.Join("uploads", "imgs")); err == nil && len(entries) != 0 {
		t.Fatalf("期望无落盘文件，实际为 %d", len(entries))
	}
}

// 测试内容：验证不支持的扩展名被拒绝。
func TestUploadImage_DisallowedExtension(t *testing.T) {
	s, _ := setupTestService(t)
	chdirTemp(t)

	folder, _ := s.CreateFolder("Ext")

	_, err := s.UploadImage(folder.Slug, makeFileHeader(t, "doc.pdf", testutils.RedPNG()))
	serviceErr, ok := AsServiceError(err)
	if !ok || serviceErr.Code != ErrorCodeUnsupportedImageFormat {
		t.Fatalf("期望 UnsupportedImageFormat，实际为 %v", err)
	}
}

// 测试内容：验证同名上传生成带后缀的唯一 slug。
func TestUploadImage_SlugSuffix(t *testing.T) {
	s, _ := setupTestService(t)
	chdirTemp(t)

	folder, _ := s.CreateFolder("Dups")

	first, err := s.UploadImage(folder.Slug, makeFileHeader(t, "pic.png", testutils.RedPNG()))
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	second, err := s.UploadImage(folder.Slug, makeFileHeader(t, "pic.png", testutils.RedPNG()))
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}

	if first.Slug != "pic" || second.Slug != "pic-2" {
		t.Fatalf("期望 pic / pic-2，实际为 %q / %q", first.Slug, second.Slug)
	}
}

// 测试内容：验证目标文件夹不存在时返回 FolderNotFound。
func TestUploadImage_FolderNotFound(t *testing.T) {
	s, _ := setupTestService(t)
	chdirTemp(t)

	_, err := s.UploadImage("missing", makeFileHeader(t, "pic.png", testutils.RedPNG()))
	serviceErr, ok := AsServiceError(err)
	if !ok || serviceErr.Code != ErrorCodeFolderNotFound {
		t.Fatalf("期望 FolderNotFound，实际为 %v", err)
	}
}

// 测试内容：验证空文件夹列表返回空序列而非错误。
func TestListImages_Empty(t *testing.T) {
	s, _ := setupTestService(t)

	folder, _ := s.CreateFolder("Empty")
	images, err := s.ListImages(folder.Slug)
	if err != nil {
		t.Fatalf("期望成功，实际为 %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("期望空列表，实际为 %d", len(images))
	}
}

// 测试内容：验证图片按上传顺序返回。
func TestListImages_UploadOrder(t *testing.T) {
	s, _ := setupTestService(t)
	chdirTemp(t)

	folder, _ := s.CreateFolder("Ordered")
	for _, name := range []string{"c.png", "a.png", "b.png"} {
		if _, err := s.UploadImage(folder.Slug, makeFileHeader(t, name, testutils.RedPNG())); err != nil {
			t.Fatalf("上传 %q 失败: %v", name, err)
		}
	}

	images, err := s.ListImages(folder.Slug)
	if err != nil {
		t.Fatalf("获取列表失败: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("期望 3 张图片，实际为 %d", len(images))
	}
	if images[0].Name != "c" || images[1].Name != "a" || images[2].Name != "b" {
		t.Fatalf("期望上传顺序 c/a/b，实际为 %s/%s/%s",
			images[0].Name, images[1].Name, images[2].Name)
	}
}

// 测试内容：验证跨文件夹按 id 取图片返回 ImageNotFound。
func TestGetImage_CrossFolderNotFound(t *testing.T) {
	s, _ := setupTestService(t)
	chdirTemp(t)

	folderA, _ := s.CreateFolder("A")
	folderB, _ := s.CreateFolder("B")

	img, err := s.UploadImage(folderA.Slug, makeFileHeader(t, "owned.png", testutils.RedPNG()))
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}

	// 正确文件夹可以取到
	idStr := strconv.FormatUint(uint64(img.ID), 10)
	if _, err := s.GetImage(folderA.Slug, idStr); err != nil {
		t.Fatalf("期望取到图片，实际为 %v", err)
	}
	if _, err := s.GetImage(folderA.Slug, img.Slug); err != nil {
		t.Fatalf("期望按 slug 取到图片，实际为 %v", err)
	}

	// 其他文件夹同一 id 取不到
	_, err = s.GetImage(folderB.Slug, idStr)
	serviceErr, ok := AsServiceError(err)
	if !ok || serviceErr.Code != ErrorCodeImageNotFound {
		t.Fatalf("期望 ImageNotFound，实际为 %v", err)
	}
}
