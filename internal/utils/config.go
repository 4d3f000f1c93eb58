package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`
	RateLimitMax     int    `yaml:"RATE_LIMIT_MAX"`
	LogLevel         string `yaml:"LOG_LEVEL"`
	LogFile          string `yaml:"LOG_FILE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Spoonacular recipe provider
	SpoonacularAPIKey  string `yaml:"SPOONACULAR_API_KEY"`
	SpoonacularBaseURL string `yaml:"SPOONACULAR_BASE_URL"`

	// DeepL translation provider
	DeepLAPIKey string `yaml:"DEEPL_API_KEY"`
	DeepLAPIURL string `yaml:"DEEPL_API_URL"`

	// Translation jobs
	TargetLang           string `yaml:"TARGET_LANG"`
	TranslationBatchSize int    `yaml:"TRANSLATION_BATCH_SIZE"`

	// Redis provider cache, disabled when REDIS_ADDR is empty
	RedisAddr       string `yaml:"REDIS_ADDR"`
	RedisPassword   string `yaml:"REDIS_PASSWORD"`
	RedisDB         int    `yaml:"REDIS_DB"`
	CacheTTLMinutes int    `yaml:"CACHE_TTL_MINUTES"`
}

// LoadConfig reads the YAML file at path, then lets environment variables
// (including a local .env file) override individual keys. A missing file
// is not an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	_ = godotenv.Load()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"APP_PORT":             &c.AppPort,
		"CORS_ALLOW_ORIGINS":   &c.CORSAllowOrigins,
		"LOG_LEVEL":            &c.LogLevel,
		"LOG_FILE":             &c.LogFile,
		"DB_USER":              &c.DBUser,
		"DB_NAME":              &c.DBName,
		"DB_PASSWORD":          &c.DBPassword,
		"DB_PORT":              &c.DBPort,
		"DB_HOST":              &c.DBHost,
		"DB_SSLMODE":           &c.DBSSLMode,
		"JWT_SECRET":           &c.JWTSecret,
		"SPOONACULAR_API_KEY":  &c.SpoonacularAPIKey,
		"SPOONACULAR_BASE_URL": &c.SpoonacularBaseURL,
		"DEEPL_API_KEY":        &c.DeepLAPIKey,
		"DEEPL_API_URL":        &c.DeepLAPIURL,
		"TARGET_LANG":          &c.TargetLang,
		"REDIS_ADDR":           &c.RedisAddr,
		"REDIS_PASSWORD":       &c.RedisPassword,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"RATE_LIMIT_MAX":         &c.RateLimitMax,
		"TRANSLATION_BATCH_SIZE": &c.TranslationBatchSize,
		"REDIS_DB":               &c.RedisDB,
		"CACHE_TTL_MINUTES":      &c.CacheTTLMinutes,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = n
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.CORSAllowOrigins == "" {
		c.CORSAllowOrigins = "*"
	}
	if c.RateLimitMax <= 0 {
		c.RateLimitMax = 100
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFile == "" {
		c.LogFile = "./logs/app.log"
	}
	if c.DBSSLMode == "" {
		c.DBSSLMode = "disable"
	}
	if c.TargetLang == "" {
		c.TargetLang = "es"
	}
	if c.TranslationBatchSize <= 0 {
		c.TranslationBatchSize = 20
	}
	if c.CacheTTLMinutes <= 0 {
		c.CacheTTLMinutes = 60
	}
}
