package handler

import (
	"bytes"
	"encoding/json"
	"html/template"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"image-hub-server/internal/repository"
	"image-hub-server/internal/service"
	"image-hub-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// detailPageTemplate 详情页测试模板，仅保留断言所需的字段。
const detailPageTemplate = `<!DOCTYPE html>
<html><body>
<h1>{{ .Name }}</h1>
<img src="{{ .URL }}" alt="{{ .Name }}">
<p>{{ .Width }} x {{ .Height }}</p>
<p>{{ .FormattedFileSize }}</p>
<p>{{ .ColorLabel }}</p>
<p>{{ .FormattedDate }} {{ .FormattedTime }}</p>
<p>{{ .FolderName }}</p>
</body></html>`

// newTestRouter 构建带内存数据库的测试路由。
// 上传会写入相对路径 uploads/imgs，因此先切换到临时目录。
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	tmp := t.TempDir()
	oldwd, _ := os.Getwd()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("切换目录失败: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })

	gdb := testutils.SetupDB(t)
	appService := service.NewAppService(repository.NewRepositories(
		repository.NewFolderRepository(gdb),
		repository.NewImageRepository(gdb),
	))

	h := NewHandler(appService)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("image_detail.html").Parse(detailPageTemplate)))

	// 与 router.InitRouter 相同的路径布局（不含中间件，独立测试）
	folders := r.Group("/api/folders")
	folders.GET("/", h.ListFolders)
	folders.POST("/", h.CreateFolder)
	folders.GET("/:identifier/", h.GetFolder)
	folders.GET("/:identifier/images/", h.ListImages)
	folders.POST("/:identifier/images/", h.UploadImage)
	folders.GET("/:identifier/images/:image_identifier/", h.GetImage)
	return r, gdb
}

// doJSON 发送 JSON 请求并返回响应记录器。
func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doUpload 通过 multipart 表单上传文件内容。
func doUpload(t *testing.T, r *gin.Engine, path, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("创建 form file 失败: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入 form file 失败: %v", err)
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// decodeBody 解析 JSON 响应体。
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("解析响应体失败: %v\n body: %s", err, w.Body.String())
	}
}

// createFolder 创建文件夹并返回响应体。
func createFolder(t *testing.T, r *gin.Engine, name string) map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/folders/", gin.H{"name": name})
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	decodeBody(t, w, &resp)
	return resp
}
