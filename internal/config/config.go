package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	CompreFace CompreFaceConfig
	Store      StoreConfig
	Sheets     SheetsConfig
	Database   DatabaseConfig
	JWT        JWTConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

type CompreFaceConfig struct {
	URL       string
	APIKey    string
	Threshold float64
}

// StoreConfig selects the backing store for staff, zones, and the ledger.
type StoreConfig struct {
	Backend string // "sheets" or "postgres"
}

type SheetsConfig struct {
	ServiceAccountEmail string
	PrivateKey          string
	StaffSheetID        string
	AttendanceSheetID   string
	ZoneCacheTTL        time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds the reporting API token configuration
type JWTConfig struct {
	Secret string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS"),
		RequestTimeout: requestTimeout,
	}

	threshold, err := strconv.ParseFloat(getEnv("FACE_MATCH_THRESHOLD", "0.7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FACE_MATCH_THRESHOLD: %w", err)
	}

	config.CompreFace = CompreFaceConfig{
		URL:       getEnv("COMPREFACE_URL", ""),
		APIKey:    getEnv("COMPREFACE_API_KEY", ""),
		Threshold: threshold,
	}

	config.Store = StoreConfig{
		Backend: getEnv("STORE_BACKEND", "sheets"),
	}

	zoneCacheTTL, err := time.ParseDuration(getEnv("ZONE_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ZONE_CACHE_TTL: %w", err)
	}

	config.Sheets = SheetsConfig{
		ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		// Keys arrive from most secret stores with literal \n sequences.
		PrivateKey:        strings.ReplaceAll(getEnv("GOOGLE_PRIVATE_KEY", ""), `\n`, "\n"),
		StaffSheetID:      getEnv("STAFF_SHEET_ID", ""),
		AttendanceSheetID: getEnv("ATTENDANCE_SHEET_ID", ""),
		ZoneCacheTTL:      zoneCacheTTL,
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "tolon_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.CompreFace.URL == "" {
		return fmt.Errorf("COMPREFACE_URL is required")
	}
	if c.CompreFace.APIKey == "" {
		return fmt.Errorf("COMPREFACE_API_KEY is required")
	}
	if c.CompreFace.Threshold <= 0 || c.CompreFace.Threshold > 1 {
		return fmt.Errorf("FACE_MATCH_THRESHOLD must be in (0, 1]")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}

	switch c.Store.Backend {
	case "sheets":
		if c.Sheets.ServiceAccountEmail == "" {
			return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_EMAIL is required")
		}
		if c.Sheets.PrivateKey == "" {
			return fmt.Errorf("GOOGLE_PRIVATE_KEY is required")
		}
		if c.Sheets.StaffSheetID == "" {
			return fmt.Errorf("STAFF_SHEET_ID is required")
		}
		if c.Sheets.AttendanceSheetID == "" {
			return fmt.Errorf("ATTENDANCE_SHEET_ID is required")
		}
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return fmt.Errorf("unsupported STORE_BACKEND: %s", c.Store.Backend)
	}

	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
