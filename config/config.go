package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver   string // postgres or sqlite
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	SQLitePath string
	DBLogSQL   bool

	JWTKey            string
	SessionTTL        time.Duration
	ConsoleAdminTypes []string // empty allows every platform admin type

	PlatformApiURL       string // course platform API
	RateApiURL           string // currency rate API
	CountryApiURL        string // public country/currency list
	ExchangeApiURL       string // public exchange rates
	ExchangeBaseCurrency string

	HTTPTimeout            time.Duration
	MaxUploadMB            int
	AudioUploadConcurrency int
	DefaultPageLimit       int
	BuyCourseInfoID        int

	RateSyncSchedule string
	RateSyncMobile   string
	RateSyncPassword string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "coursedesk"),
		DBPort:     getEnv("DB_PORT", "5432"),
		SQLitePath: getEnv("SQLITE_PATH", "coursedesk.db"),
		DBLogSQL:   getEnv("DB_LOG_SQL", "false") == "true",

		JWTKey:            getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SessionTTL:        getEnvDuration("SESSION_TTL", 24*time.Hour),
		ConsoleAdminTypes: getEnvList("CONSOLE_ADMIN_TYPES"),

		PlatformApiURL:       getEnv("PLATFORM_API_URL", "https://course-selling-app.saveneed.com"),
		RateApiURL:           getEnv("RATE_API_URL", "https://api.t-coin.code-studio4.com"),
		CountryApiURL:        getEnv("COUNTRY_API_URL", "https://restcountries.com/v3.1"),
		ExchangeApiURL:       getEnv("EXCHANGE_API_URL", "https://open.er-api.com/v6"),
		ExchangeBaseCurrency: getEnv("EXCHANGE_BASE_CURRENCY", "BDT"),

		HTTPTimeout:            getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
		MaxUploadMB:            getEnvInt("MAX_UPLOAD_MB", 100),
		AudioUploadConcurrency: getEnvInt("AUDIO_UPLOAD_CONCURRENCY", 4),
		DefaultPageLimit:       getEnvInt("DEFAULT_PAGE_LIMIT", 10),
		BuyCourseInfoID:        getEnvInt("BUY_COURSE_INFO_ID", 1),

		RateSyncSchedule: getEnv("RATE_SYNC_SCHEDULE", ""),
		RateSyncMobile:   getEnv("RATE_SYNC_MOBILE", ""),
		RateSyncPassword: getEnv("RATE_SYNC_PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.MaxUploadMB < 1 {
		AppConfig.MaxUploadMB = 100
	}
	if AppConfig.RateSyncSchedule != "" && (AppConfig.RateSyncMobile == "" || AppConfig.RateSyncPassword == "") {
		log.Println("Warning: RATE_SYNC_SCHEDULE is set without RATE_SYNC_MOBILE/RATE_SYNC_PASSWORD. Rate sync stays disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
