package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App    AppConfig
	Store  StoreConfig
	Sheets SheetsConfig
	Sync   SyncConfig
	Auth   AuthConfig
	JWT    JWTConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// StoreConfig cấu hình local JSON store (mỗi collection một file)
type StoreConfig struct {
	DataDir string // thư mục chứa menu.json, inventory.json, orders.json, coupons.json
}

// SheetsConfig cấu hình Google Sheets sync target
type SheetsConfig struct {
	APIBaseURL    string // override được trong test
	SpreadsheetID string // spreadsheet đã link với cửa hàng
}

type SyncConfig struct {
	Enabled  bool
	Interval time.Duration // chu kỳ sync tick
}

type AuthConfig struct {
	OfflineMode  bool          // chạy không cần Google account
	PollInterval time.Duration // chu kỳ kiểm tra token expiry
	ExpirySkew   time.Duration // coi token là expired sớm hơn thực tế

	// Bootstrap admin cho máy mới setup (users collection trống)
	BootstrapAdminUser string
	BootstrapAdminPIN  string
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  int // minutes
	RefreshTokenExpiry int // hours
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "CafePOS API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Store: StoreConfig{
			DataDir: getEnv("STORE_DATA_DIR", "./data"),
		},
		Sheets: SheetsConfig{
			APIBaseURL:    getEnv("SHEETS_API_BASE_URL", "https://sheets.googleapis.com/v4/spreadsheets"),
			SpreadsheetID: getEnv("SHEETS_SPREADSHEET_ID", ""),
		},
		Sync: SyncConfig{
			Enabled:  getEnvBool("SYNC_ENABLED", true),
			Interval: getEnvDuration("SYNC_INTERVAL", 5*time.Minute),
		},
		Auth: AuthConfig{
			OfflineMode:  getEnvBool("AUTH_OFFLINE_MODE", false),
			PollInterval: getEnvDuration("AUTH_POLL_INTERVAL", time.Minute),
			ExpirySkew:   getEnvDuration("AUTH_EXPIRY_SKEW", 5*time.Minute),

			BootstrapAdminUser: getEnv("AUTH_BOOTSTRAP_ADMIN_USER", "admin"),
			BootstrapAdminPIN:  getEnv("AUTH_BOOTSTRAP_ADMIN_PIN", "123456"),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry:  getEnvInt("JWT_ACCESS_EXPIRY", 15),  // 15 minutes
			RefreshTokenExpiry: getEnvInt("JWT_REFRESH_EXPIRY", 72), // 3 days
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	// Production environment phải có JWT secret
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if c.Store.DataDir == "" {
		return fmt.Errorf("STORE_DATA_DIR must not be empty")
	}

	// Sync bật mà chưa link spreadsheet → chỉ warn, không chặn startup
	// (cửa hàng có thể link spreadsheet sau, qua UI)
	if c.Sync.Enabled && c.Sheets.SpreadsheetID == "" {
		fmt.Println("WARNING: SHEETS_SPREADSHEET_ID not set - sheet sync will be skipped")
	}

	if c.Sync.Interval < 10*time.Second {
		return fmt.Errorf("SYNC_INTERVAL must be at least 10s")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
