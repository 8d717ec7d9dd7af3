package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newBodyLimitRouter() *gin.Engine {
	r := gin.New()
	r.Use(BodyLimitMiddleware())
	echo := func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "FileTooLarge", "detail": "请求体过大"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}
	r.POST("/api/folders/", echo)
	r.POST("/api/folders/:identifier/images/", echo)
	return r
}

// 测试内容：验证普通接口请求体超过 2MB 时读取失败。
func TestBodyLimitMiddleware(t *testing.T) {
	r := newBodyLimitRouter()

	// 正常大小通过
	req := httptest.NewRequest(http.MethodPost, "/api/folders/", strings.NewReader(`{"name":"ok"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}

	// 超过 2MB 被截断
	big := bytes.Repeat([]byte("a"), 3*1024*1024)
	req = httptest.NewRequest(http.MethodPost, "/api/folders/", bytes.NewReader(big))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
}

// 测试内容：验证上传接口不受 2MB 通用限制约束。
func TestBodyLimitMiddleware_SkipsUploadPath(t *testing.T) {
	r := newBodyLimitRouter()

	big := bytes.Repeat([]byte("a"), 3*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/api/folders/demo/images/", bytes.NewReader(big))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望上传路径放行，实际为 %d", w.Code)
	}
}

// 测试内容：验证上传接口按 max_size_mb 拒绝超大请求。
func TestUploadBodyLimitMiddleware(t *testing.T) {
	reloadConfigYAML(t, `
upload:
  max_size_mb: 1
`)

	r := gin.New()
	r.POST("/upload", UploadBodyLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	// ContentLength 超过上限（1MB + 1MB 余量）直接拒绝
	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte("x")))
	req.ContentLength = 3 * 1024 * 1024
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "FileTooLarge") {
		t.Fatalf("期望错误码 FileTooLarge，实际为 %s", w.Body.String())
	}

	// 限制以内放行
	req = httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("small"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}
