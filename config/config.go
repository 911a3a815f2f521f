package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	DBDriver    string
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBLogLevel  string

	JWTSecret    string
	JWTTTL       time.Duration
	CookieSecure bool
	BcryptCost   int

	CORSOrigins []string

	RedisURL string
	CacheTTL time.Duration

	KafkaBrokers       []string
	KafkaBookingsTopic string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:   envOrDefault("APP_ENV", "dev"),
		Port:     envOrDefault("PORT", "8080"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),

		DBDriver:    strings.ToLower(envOrDefault("DB_DRIVER", DriverMySQL)),
		DatabaseURL: firstNonEmpty(os.Getenv("MYSQL_URL"), os.Getenv("DATABASE_URL")),
		DBUser:      envOrDefault("DB_USER", "root"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      envOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:      os.Getenv("DB_PORT"),
		DBName:      envOrDefault("DB_NAME", "hotel_booking"),
		DBLogLevel:  envOrDefault("DB_LOG_LEVEL", "warn"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTTTL:       envDuration("JWT_TTL", 30*time.Minute),
		CookieSecure: envBool("COOKIE_SECURE", false),
		BcryptCost:   envInt("BCRYPT_COST", 10),

		CORSOrigins: parseList(os.Getenv("CORS_ORIGINS"), []string{"*"}),

		RedisURL: strings.TrimSpace(os.Getenv("REDIS_URL")),
		CacheTTL: envDuration("CACHE_TTL", 10*time.Second),

		KafkaBrokers:       parseList(os.Getenv("KAFKA_BROKERS"), nil),
		KafkaBookingsTopic: envOrDefault("KAFKA_BOOKINGS_TOPIC", "bookings.created"),

		ReadTimeout:     envDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    envDuration("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:     envDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got: %s", cfg.Port))
	}
	switch cfg.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		problems = append(problems, fmt.Sprintf("DB_DRIVER must be one of mysql, postgres, sqlite, got: %s", cfg.DBDriver))
	}
	if len(cfg.JWTSecret) < 16 {
		problems = append(problems, "JWT_SECRET must be at least 16 characters")
	}
	if cfg.JWTTTL <= 0 {
		problems = append(problems, fmt.Sprintf("JWT_TTL must be positive, got: %s", cfg.JWTTTL))
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		problems = append(problems, fmt.Sprintf("BCRYPT_COST must be between 4 and 31, got: %d", cfg.BcryptCost))
	}
	if cfg.RedisURL != "" && cfg.CacheTTL <= 0 {
		problems = append(problems, fmt.Sprintf("CACHE_TTL must be positive, got: %s", cfg.CacheTTL))
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaBookingsTopic == "" {
		problems = append(problems, "KAFKA_BOOKINGS_TOPIC cannot be empty when KAFKA_BROKERS is set")
	}
	for name, d := range map[string]time.Duration{
		"READ_TIMEOUT":     cfg.ReadTimeout,
		"WRITE_TIMEOUT":    cfg.WriteTimeout,
		"IDLE_TIMEOUT":     cfg.IdleTimeout,
		"SHUTDOWN_TIMEOUT": cfg.ShutdownTimeout,
	} {
		if d <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got: %s", name, d))
		}
	}

	if len(problems) > 0 {
		msg := "configuration validation failed:\n"
		for i, p := range problems {
			msg += fmt.Sprintf("  %d. %s\n", i+1, p)
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func (cfg *Config) IsDev() bool {
	return cfg.AppEnv == "dev" || cfg.AppEnv == "local"
}

func (cfg *Config) LogConfiguration(log *slog.Logger) {
	log.Info("configuration loaded",
		"app_env", cfg.AppEnv,
		"port", cfg.Port,
		"db_driver", cfg.DBDriver,
		"database_url", redactURL(cfg.DatabaseURL),
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"jwt_ttl", cfg.JWTTTL,
		"cookie_secure", cfg.CookieSecure,
		"cors_origins", cfg.CORSOrigins,
		"cache_enabled", cfg.RedisURL != "",
		"cache_ttl", cfg.CacheTTL,
		"kafka_brokers", cfg.KafkaBrokers,
		"kafka_bookings_topic", cfg.KafkaBookingsTopic,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return "***"
	}
	return u.Redacted()
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func parseList(raw string, def []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
