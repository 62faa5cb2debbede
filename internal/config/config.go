package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	Log       LogConfig
	CORS      CORSConfig
	Admission AdmissionConfig
	Redis     RedisConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`

	// TrustedProxies lists the proxy IPs or CIDRs whose forwarding headers
	// are believed. Empty means client addresses come from the socket.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`

	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AdmissionConfig controls the ingestion rate limiter.
type AdmissionConfig struct {
	// Backend is "memory" or "redis".
	Backend string        `mapstructure:"backend"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// RedisConfig holds the connection settings for the redis admission backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Load reads configuration from environment variables with the AUTHENTIQA_
// prefix. A .env file in the working directory is loaded first when present;
// variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("AUTHENTIQA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.trusted_proxies", "")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "authentiqa")
	v.SetDefault("db.password", "authentiqa_secret")
	v.SetDefault("db.name", "authentiqa_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)
	v.SetDefault("db.conn_max_lifetime", "30m")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "8h")
	v.SetDefault("jwt.issuer", "authentiqa")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	// Admission defaults: 60 scan submissions per minute per client address
	v.SetDefault("admission.backend", "memory")
	v.SetDefault("admission.limit", 60)
	v.SetDefault("admission.window", "60s")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "AUTHENTIQA_SERVER_PORT",
		"server.read_timeout":    "AUTHENTIQA_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "AUTHENTIQA_SERVER_WRITE_TIMEOUT",
		"server.environment":     "AUTHENTIQA_SERVER_ENVIRONMENT",
		"server.trusted_proxies": "AUTHENTIQA_SERVER_TRUSTED_PROXIES",
		"db.host":                "AUTHENTIQA_DB_HOST",
		"db.port":                "AUTHENTIQA_DB_PORT",
		"db.user":                "AUTHENTIQA_DB_USER",
		"db.password":            "AUTHENTIQA_DB_PASSWORD",
		"db.name":                "AUTHENTIQA_DB_NAME",
		"db.sslmode":             "AUTHENTIQA_DB_SSLMODE",
		"db.max_open":            "AUTHENTIQA_DB_MAX_OPEN",
		"db.max_idle":            "AUTHENTIQA_DB_MAX_IDLE",
		"db.conn_max_lifetime":   "AUTHENTIQA_DB_CONN_MAX_LIFETIME",
		"jwt.secret":             "AUTHENTIQA_JWT_SECRET",
		"jwt.access_expiry":      "AUTHENTIQA_JWT_ACCESS_EXPIRY",
		"jwt.issuer":             "AUTHENTIQA_JWT_ISSUER",
		"log.level":              "AUTHENTIQA_LOG_LEVEL",
		"log.format":             "AUTHENTIQA_LOG_FORMAT",
		"cors.allowed_origins":   "AUTHENTIQA_CORS_ALLOWED_ORIGINS",
		"admission.backend":      "AUTHENTIQA_ADMISSION_BACKEND",
		"admission.limit":        "AUTHENTIQA_ADMISSION_LIMIT",
		"admission.window":       "AUTHENTIQA_ADMISSION_WINDOW",
		"redis.addr":             "AUTHENTIQA_REDIS_ADDR",
		"redis.password":         "AUTHENTIQA_REDIS_PASSWORD",
		"redis.db":               "AUTHENTIQA_REDIS_DB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if AUTHENTIQA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("AUTHENTIQA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),

		TrustedProxies: splitList(v.GetString("server.trusted_proxies")),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),

		ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{AllowedOrigins: splitList(v.GetString("cors.allowed_origins"))}

	cfg.Admission = AdmissionConfig{
		Backend: strings.ToLower(v.GetString("admission.backend")),
		Limit:   v.GetInt("admission.limit"),
		Window:  v.GetDuration("admission.window"),
	}
	switch cfg.Admission.Backend {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("config: unknown admission backend %q", cfg.Admission.Backend)
	}
	if cfg.Admission.Limit < 1 || cfg.Admission.Window <= 0 {
		return nil, fmt.Errorf("config: admission limit and window must be positive")
	}

	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}

	return cfg, nil
}

// splitList parses a comma-separated setting, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
