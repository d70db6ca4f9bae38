package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultSQLiteDSN  = "cup.sqlite3"
	defaultRulesPath  = "tournament.yaml"
	defaultServerPort = 8080
)

// Config хранит инфраструктурные параметры приложения и правила турнира.
type Config struct {
	DatabaseDriver     string
	DatabaseURL        string
	JWTSecretKey       string
	AdminPasswordHash  string
	ServerPort         int
	LogLevel           slog.Level
	CORSAllowedOrigins []string
	RulesPath          string
	R2                 *R2Config
	Rules              Rules
}

// R2Config is set only when every R2_* variable is present.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

// Load загружает конфигурацию из переменных окружения и файла правил.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	driver := getEnvOrDefault("DATABASE_DRIVER", "sqlite")
	switch driver {
	case "sqlite", "postgres", "pgx":
	default:
		return nil, fmt.Errorf("DATABASE_DRIVER must be one of sqlite, postgres, pgx, got %q", driver)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		if driver != "sqlite" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		dbURL = defaultSQLiteDSN
	}

	port := defaultServerPort
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
		}
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnvOrDefault("LOG_LEVEL", "INFO"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}

	r2, err := loadR2()
	if err != nil {
		return nil, err
	}

	rulesPath := os.Getenv("TOURNAMENT_CONFIG")
	rulesRequired := rulesPath != ""
	if rulesPath == "" {
		rulesPath = defaultRulesPath
	}
	rules, err := LoadRules(rulesPath, rulesRequired)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseDriver:     driver,
		DatabaseURL:        dbURL,
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		ServerPort:         port,
		LogLevel:           level,
		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		RulesPath:          rulesPath,
		R2:                 r2,
		Rules:              rules,
	}

	return cfg, nil
}

// ValidateServer checks the settings only the HTTP server needs.
func (c *Config) ValidateServer() error {
	var errs []error
	if c.JWTSecretKey == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY environment variable is not set"))
	}
	if c.AdminPasswordHash == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD_HASH environment variable is not set"))
	}
	return errors.Join(errs...)
}

func loadR2() (*R2Config, error) {
	r2 := R2Config{
		AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("R2_BUCKET_NAME"),
		PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}
	values := []string{r2.AccountID, r2.AccessKeyID, r2.SecretAccessKey, r2.BucketName, r2.PublicBaseURL}

	set := 0
	for _, v := range values {
		if v != "" {
			set++
		}
	}
	switch set {
	case 0:
		return nil, nil
	case len(values):
		return &r2, nil
	default:
		return nil, fmt.Errorf("incomplete R2 configuration: set all of R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_BUCKET_NAME, R2_PUBLIC_BASE_URL or none")
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
