package config

import (
	"os"
	"strconv"
	"time"
)

// Config 进程配置，启动时从环境变量读取一次
type Config struct {
	ServerPort string
	DatabaseDSN string

	JWTSecret string
	JWTTTL    time.Duration

	LogLevel  string
	LogFormat string

	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Load 从环境变量加载配置
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN",
			"host=localhost user=tenant_admin password=1234 dbname=tenant_admin port=5432 sslmode=disable"),

		JWTSecret: getEnv("JWT_SECRET", "tenant-admin-secret-key-change-in-production"),
		JWTTTL:    getDuration("JWT_TTL", 24*time.Hour),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		RateLimitMax:    getInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
