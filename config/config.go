package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"notes-api/database"
)

type Config struct {
	Port         string
	Env          string
	DatabaseURL  string
	CORSOrigins  string
	LogLevel     string
	LogFile      string
	RateLimitMax int

	OTelEnabled  bool
	OTelEndpoint string
	ServiceName  string
}

var AppConfig *Config

// Load reads .env (when present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:         GetEnv("PORT", "8000"),
		Env:          GetEnv("ENV", "development"),
		DatabaseURL:  GetEnv("DATABASE_URL", database.DefaultDatabaseURL),
		CORSOrigins:  normalizeOrigins(GetEnv("CORS_ORIGINS", "*")),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		LogFile:      GetEnv("LOG_FILE", ""),
		RateLimitMax: GetEnvInt("RATE_LIMIT_MAX", 200),
		OTelEnabled:  GetEnvBool("OTEL_ENABLED", false),
		OTelEndpoint: GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		ServiceName:  GetEnv("OTEL_SERVICE_NAME", "notes-api"),
	}

	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func GetEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// normalizeOrigins trims the entries of a comma-separated origin list and
// drops empty ones. An empty result means "allow all".
func normalizeOrigins(raw string) string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return "*"
	}
	return strings.Join(origins, ",")
}
