package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション設定
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	Gemini   GeminiConfig
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig データベース設定
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// AuthConfig 認証設定
type AuthConfig struct {
	JWTSecret      string
	TokenExpiry    time.Duration
	GoogleClientID string
	GuestUserID    uint // 未認証でお気に入り追加した場合に使うユーザーID
}

// CatalogConfig 上流ヒーローカタログAPI設定
type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

// GeminiConfig Gemini API設定
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Load 環境変数から設定をロード
func Load() (*Config, error) {
	// .env ファイルをロード (存在すれば)
	_ = godotenv.Load()

	// デフォルト値を設定
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(getEnvAsInt("SERVER_READ_TIMEOUT", 10)) * time.Second,
			WriteTimeout: time.Duration(getEnvAsInt("SERVER_WRITE_TIMEOUT", 10)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			Username: getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "legendsfan"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "your-secret-key"),
			TokenExpiry:    time.Duration(getEnvAsInt("TOKEN_EXPIRY", 24)) * time.Hour,
			GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
			GuestUserID:    uint(getEnvAsInt("GUEST_USER_ID", 1)),
		},
		Catalog: CatalogConfig{
			BaseURL: getEnv("HERO_API_BASE_URL", "https://api.dazelpro.com/mobile-legends"),
			Timeout: time.Duration(getEnvAsInt("HERO_API_TIMEOUT", 10)) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Timeout: time.Duration(getEnvAsInt("GEMINI_TIMEOUT", 30)) * time.Second,
		},
	}

	return config, nil
}

// getEnv 環境変数を取得、存在しない場合はデフォルト値を返す
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt 環境変数を整数として取得
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
