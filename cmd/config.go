package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort      = "8080"
	defaultSessionTTL    = 720 * time.Hour
	defaultCartRetention = 720 * time.Hour
	defaultOrderTopic    = "order.changed"
	defaultLogLevel      = "info"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	LineLoginChannelID string
	LineVerifyURL      string

	SessionSecret  string
	SessionTTL     time.Duration
	CookieSecure   bool
	LoginRateLimit float64

	KafkaHost              string
	KafkaOrderChangedTopic string

	OTLPTracesEndpoint string

	PendingOrderTTL time.Duration
	CartRetention   time.Duration

	AdminEmail    string
	AdminPassword string
}

// LoadConfig reads .env when present and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var errs []error
	cfg := Config{
		HTTPPort:               getEnv("HTTP_PORT", defaultHTTPPort),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		LogLevel:               getEnv("LOG_LEVEL", defaultLogLevel),
		LineLoginChannelID:     os.Getenv("LINE_LOGIN_CHANNEL_ID"),
		LineVerifyURL:          os.Getenv("LINE_VERIFY_URL"),
		SessionSecret:          os.Getenv("SESSION_SECRET"),
		SessionTTL:             durationEnv("SESSION_TTL", defaultSessionTTL, &errs),
		CookieSecure:           boolEnv("COOKIE_SECURE", false, &errs),
		LoginRateLimit:         floatEnv("LOGIN_RATE_LIMIT", 0, &errs),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", defaultOrderTopic),
		OTLPTracesEndpoint:     os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"),
		PendingOrderTTL:        durationEnv("PENDING_ORDER_TTL", 0, &errs),
		CartRetention:          durationEnv("CART_RETENTION", defaultCartRetention, &errs),
		AdminEmail:             os.Getenv("ADMIN_EMAIL"),
		AdminPassword:          os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required"))
	}
	if cfg.LineLoginChannelID == "" {
		errs = append(errs, errors.New("LINE_LOGIN_CHANNEL_ID is required"))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the libpq connection string shared by GORM and the migrator.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration, errs *[]error) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func boolEnv(key string, def bool, errs *[]error) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func floatEnv(key string, def float64, errs *[]error) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}
