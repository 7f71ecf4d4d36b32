package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string `validate:"required,numeric"`
	LogLevel  string `validate:"omitempty,oneof=trace debug info warn error"`
	LogFormat string `validate:"omitempty,oneof=json pretty"`

	// Empty means the built-in role taxonomy.
	TaxonomyFile   string `validate:"omitempty,file"`
	UploadDir      string `validate:"required"`
	MaxUploadBytes int64  `validate:"gt=0"`

	// Optional live job sources; both empty means synthetic postings only.
	DatabaseURL     string `validate:"omitempty,url"`
	JobBoardURL     string `validate:"omitempty,url"`
	JobBoardResults int    `validate:"gt=0,lte=50"`
	JobBoardTimeout time.Duration

	// Bearer-token protection is enabled when JWTSecret is set.
	JWTSecret string
	JWTIssuer string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		TaxonomyFile:    os.Getenv("TAXONOMY_FILE"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", 16<<20)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JobBoardURL:     os.Getenv("JOB_BOARD_URL"),
		JobBoardResults: getEnvInt("JOB_BOARD_RESULTS", 5),
		JobBoardTimeout: time.Duration(getEnvInt("JOB_BOARD_TIMEOUT_SECONDS", 15)) * time.Second,
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTIssuer:       os.Getenv("JWT_ISSUER"),
	}
}

var validate = validator.New()

// Validate checks value ranges and formats.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
