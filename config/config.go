package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	HTTP       ServerConfig
	MySQL      MySQLConfig
	Log        LogConfig
	JWT        JWTConfig
	SSLCommerz SSLCommerzConfig
	Payments   PaymentsConfig
	Jobs       JobsConfig
}

type AppConfig struct {
	ServiceName string
	// PublicBaseURL is where the gateway reaches this service for
	// success/fail/cancel callbacks.
	PublicBaseURL string
	CORSOrigins   []string
}

type ServerConfig struct {
	Host string
	Port string
}

type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type JWTConfig struct {
	Secret       string
	Issuer       string
	TTL          time.Duration
	SecureCookie bool
}

type SSLCommerzConfig struct {
	StoreID         string
	StorePasswd     string
	BaseURL         string
	HTTPTimeout     time.Duration
	RetryAttempts   int
	VerifyCallbacks bool
}

type PaymentsConfig struct {
	Currency           string
	SuccessRedirectURL string
	FailureRedirectURL string
	CancelRedirectURL  string
	PendingTimeout     time.Duration
	JobBatchSize       int32
}

type JobsConfig struct {
	ExpirePendingInterval time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		return nil, errors.New("MYSQL_DSN environment variable is required")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	return &Config{
		App: AppConfig{
			ServiceName:   getEnv("APP_SERVICE_NAME", "hall-service"),
			PublicBaseURL: getEnv("APP_PUBLIC_BASE_URL", "http://localhost:8080"),
			CORSOrigins:   splitList(getEnv("APP_CORS_ORIGINS", "http://localhost:5173")),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		MySQL: MySQLConfig{
			DSN:             mysqlDSN,
			MaxOpenConns:    getIntEnv("MYSQL_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("MYSQL_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getMinutesEnv("MYSQL_CONN_MAX_LIFETIME_MINUTES", 30*time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		JWT: JWTConfig{
			Secret:       jwtSecret,
			Issuer:       getEnv("JWT_ISSUER", "hall-service"),
			TTL:          getHoursEnv("JWT_TTL_HOURS", 1000*time.Hour),
			SecureCookie: getBoolEnv("JWT_SECURE_COOKIE", false),
		},
		SSLCommerz: SSLCommerzConfig{
			StoreID:         getEnv("SSLCOMMERZ_STORE_ID", ""),
			StorePasswd:     getEnv("SSLCOMMERZ_STORE_PASSWD", ""),
			BaseURL:         getEnv("SSLCOMMERZ_BASE_URL", "https://sandbox.sslcommerz.com"),
			HTTPTimeout:     getSecondsEnv("SSLCOMMERZ_HTTP_TIMEOUT_SECONDS", 10*time.Second),
			RetryAttempts:   getIntEnv("SSLCOMMERZ_RETRY_ATTEMPTS", 3),
			VerifyCallbacks: getBoolEnv("SSLCOMMERZ_VERIFY_CALLBACKS", true),
		},
		Payments: PaymentsConfig{
			Currency:           getEnv("PAYMENTS_CURRENCY", "BDT"),
			SuccessRedirectURL: getEnv("PAYMENTS_REDIRECT_SUCCESS_URL", "http://localhost:5173/success"),
			FailureRedirectURL: getEnv("PAYMENTS_REDIRECT_FAILURE_URL", "http://localhost:5173/failure"),
			CancelRedirectURL:  getEnv("PAYMENTS_REDIRECT_CANCEL_URL", "http://localhost:5173/cancel"),
			PendingTimeout:     getMinutesEnv("PAYMENTS_PENDING_TIMEOUT_MINUTES", 60*time.Minute),
			JobBatchSize:       int32(getIntEnv("PAYMENTS_JOB_BATCH_SIZE", 100)),
		},
		Jobs: JobsConfig{
			ExpirePendingInterval: getMinutesEnv("PAYMENTS_EXPIRE_PENDING_INTERVAL_MINUTES", 5*time.Minute),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getMinutesEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

func getHoursEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if hours, err := strconv.Atoi(value); err == nil {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
