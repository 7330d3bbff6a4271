package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	APIPrefix   string
	DBDriver    string
	MySQLDSN    string
	SQLitePath  string
	DBLogLevel  string
	ResetDB     bool
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration
	BcryptCost  int
	LogLevel    string
	LogFile     string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		APIPrefix:   os.Getenv("API_PREFIX"),
		DBDriver:    getEnv("DB_DRIVER", "mysql"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/coursehub?charset=utf8mb4&parseTime=True&loc=Local"),
		SQLitePath:  getEnv("SQLITE_PATH", "coursehub.db"),
		DBLogLevel:  getEnv("DB_LOG_LEVEL", "warn"),
		ResetDB:     os.Getenv("RESET_DB") == "true",
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		CacheTTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
		BcryptCost:  getEnvInt("BCRYPT_COST", 10),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     os.Getenv("LOG_FILE"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
