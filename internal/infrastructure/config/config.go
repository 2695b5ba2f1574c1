package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Storage     StorageConfig   `mapstructure:"storage"`
	Learning    LearningConfig  `mapstructure:"learning"`
	Catalog     CatalogConfig   `mapstructure:"catalog"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// StorageConfig 鍵值儲存配置（訓練資料與自訂食材的持久化）
type StorageConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	KeyPrefix string        `mapstructure:"key_prefix"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LearningConfig 修正學習配置
type LearningConfig struct {
	// ReuseThreshold 直接重用舊修正的相似度門檻
	ReuseThreshold float64 `mapstructure:"reuse_threshold"`
	// SimilarThreshold 列出相似範例（轉換後套用）的較寬鬆門檻
	SimilarThreshold float64 `mapstructure:"similar_threshold"`
	// MaxExamples 訓練資料上限，超過後丟棄最舊的範例
	MaxExamples int `mapstructure:"max_examples"`
}

// CatalogConfig 食材目錄配置
type CatalogConfig struct {
	// PersistCustom 是否將 session 期間新增的自訂食材寫回儲存
	PersistCustom bool `mapstructure:"persist_custom"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件，不存在時走預設值
	_ = godotenv.Load()

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("storage.enabled", "STORAGE_ENABLED")
	viper.BindEnv("storage.addr", "STORAGE_ADDR")
	viper.BindEnv("storage.password", "STORAGE_PASSWORD")
	viper.BindEnv("learning.reuse_threshold", "LEARNING_REUSE_THRESHOLD")
	viper.BindEnv("learning.similar_threshold", "LEARNING_SIMILAR_THRESHOLD")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-ingest")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 儲存設定
	viper.SetDefault("storage.enabled", false)
	viper.SetDefault("storage.addr", "localhost:6379")
	viper.SetDefault("storage.db", 0)
	viper.SetDefault("storage.key_prefix", "recipe-ingest")
	viper.SetDefault("storage.timeout", "5s")

	// 修正學習設定
	viper.SetDefault("learning.reuse_threshold", 0.8)
	viper.SetDefault("learning.similar_threshold", 0.7)
	viper.SetDefault("learning.max_examples", 500)

	// 食材目錄設定
	viper.SetDefault("catalog.persist_custom", true)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 去重窗口預設
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證儲存設定
	if config.Storage.Enabled && config.Storage.Addr == "" {
		return fmt.Errorf("storage addr is required when storage is enabled")
	}

	// 驗證修正學習設定
	if config.Learning.ReuseThreshold <= 0 || config.Learning.ReuseThreshold > 1 {
		return fmt.Errorf("invalid learning reuse threshold")
	}
	if config.Learning.SimilarThreshold <= 0 || config.Learning.SimilarThreshold > config.Learning.ReuseThreshold {
		return fmt.Errorf("invalid learning similar threshold")
	}
	if config.Learning.MaxExamples <= 0 {
		return fmt.Errorf("invalid learning max examples")
	}

	return nil
}
