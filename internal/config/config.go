package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/viper"
)

// 用于管理应用配置

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	// displayLoc 缓存展示时区，随配置一起原子更新
	displayLoc atomic.Pointer[time.Location]
	configMu   sync.Mutex // 仅用于写操作互斥
	configDir  = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Upload    UploadConfig    `mapstructure:"upload"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Redis     RedisConfig     `mapstructure:"redis"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	Timezone       string   `mapstructure:"timezone"`        // 展示用时区，如 Asia/Shanghai、UTC
	AllowedOrigins []string `mapstructure:"allowed_origins"` // 允许的跨域来源，空则不下发 CORS 头
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type UploadConfig struct {
	Path            string `mapstructure:"path"`             // storageRoot：上传文件落盘根目录
	URLPrefix       string `mapstructure:"url_prefix"`       // 上传文件的访问前缀
	MaxSizeMB       int    `mapstructure:"max_size_mb"`      // 单文件上传上限 (MB)
	AllowExtensions string `mapstructure:"allow_extensions"` // 允许的扩展名，逗号分隔
	CacheControl    string `mapstructure:"cache_control"`    // 静态资源 Cache-Control
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

// DisplayLocation 返回展示用时区；配置非法或未加载时退回 UTC。
func DisplayLocation() *time.Location {
	if loc := displayLoc.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	log.Println("✅ 配置加载成功")
}

// InitConfigWithoutWatch 与 InitConfig 行为一致，保留给测试场景使用。
func InitConfigWithoutWatch(customConfigDir string) {
	InitConfig(customConfigDir)
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timezone", "UTC")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/image_hub.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "image_hub")
	v.SetDefault("database.ssl", false)
	v.SetDefault("upload.path", "uploads/imgs")
	v.SetDefault("upload.url_prefix", "/imgs/")
	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("upload.allow_extensions", ".png,.jpg,.jpeg,.gif")
	v.SetDefault("upload.cache_control", "public, max-age=86400")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "image_hub")

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 IMAGE_HUB_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 IMAGE_HUB_SERVER_PORT
	v.SetEnvPrefix("IMAGE_HUB")

	// 允许自动查找环境变量
	v.AutomaticEnv()

	// 解决层级分隔符问题：将 key 中的 "." 替换为 "_"
	// 这样 server.port 才能匹配 SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	// 加写锁，防止并发重载时的竞争
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	// 将配置映射到结构体
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	// 展示时区校验：非法值退回 UTC，保证所有响应使用同一时区
	loc, err := time.LoadLocation(tempConfig.Server.Timezone)
	if err != nil {
		log.Printf("⚠️ 无法识别时区 %q，将使用 UTC", tempConfig.Server.Timezone)
		loc = time.UTC
	}
	displayLoc.Store(loc)

	// 原子替换全局配置
	appConfig.Store(&tempConfig)
	log.Println("✅ 配置已更新")
}
