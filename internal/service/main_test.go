package service

import (
	"os"
	"testing"

	"image-hub-server/internal/config"
	"image-hub-server/internal/testutils"
)

// 测试内容：为 service 包测试初始化配置环境并在结束时清理。
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "image-hub-service-config-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("IMAGE_HUB_SERVER_MODE", "debug"),
		testutils.SetEnv("IMAGE_HUB_UPLOAD_PATH", "uploads/imgs"),
		testutils.SetEnv("IMAGE_HUB_UPLOAD_URL_PREFIX", "/imgs/"),
		testutils.SetEnv("IMAGE_HUB_REDIS_ENABLED", "false"),
	}
	config.InitConfig(tmpDir)

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}
