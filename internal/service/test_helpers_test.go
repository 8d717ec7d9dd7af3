package service

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"image-hub-server/internal/repository"
	"image-hub-server/internal/testutils"

	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*AppService, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := NewAppService(repository.NewRepositories(
		repository.NewFolderRepository(gdb),
		repository.NewImageRepository(gdb),
	))
	return appService, gdb
}

// makeFileHeader 将字节内容包装为 multipart.FileHeader，模拟上传文件。
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image_file", filename)
	if err != nil {
		t.Fatalf("创建 form file 失败: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入 form file 失败: %v", err)
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("解析 multipart 失败: %v", err)
	}
	files := req.MultipartForm.File["image_file"]
	if len(files) != 1 {
		t.Fatalf("期望 1 个文件，实际为 %d", len(files))
	}
	return files[0]
}
