package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

const (
	ModeCLI  = "cli"
	ModeHTTP = "http"
)

type DatabaseConfig struct {
	DSN         string
	Name        string
	AutoMigrate bool
}

type LogConfig struct {
	Level  string
	Format string
}

// Config holds everything main needs to wire the application.
type Config struct {
	Mode        string
	Port        string
	CORSOrigins string
	RabbitMQURL string
	Database    DatabaseConfig
	Log         LogConfig
}

// Load reads the environment. A .env file, if any, must already be loaded by the caller.
func Load() (*Config, error) {
	dsn, dbName, err := resolveMySQLDSN()
	if err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}

	mode := strings.ToLower(envOrDefault("APP_MODE", ModeCLI))
	if mode != ModeCLI && mode != ModeHTTP {
		return nil, fmt.Errorf("APP_MODE must be %q or %q, got %q", ModeCLI, ModeHTTP, mode)
	}

	rabbitURL := envOrDefault("RABBITMQ_URL", "")
	if rabbitURL == "" {
		rabbitURL = envOrDefault("AMQP_URL", "")
	}

	return &Config{
		Mode:        mode,
		Port:        envOrDefault("PORT", "8080"),
		CORSOrigins: envOrDefault("CORS_ORIGINS", ""),
		RabbitMQURL: rabbitURL,
		Database: DatabaseConfig{
			DSN:         dsn,
			Name:        dbName,
			AutoMigrate: envBool("DB_AUTO_MIGRATE", false),
		},
		Log: LogConfig{
			Level:  strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(envOrDefault("LOG_FORMAT", "console")),
		},
	}, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envBool(key string, def bool) bool {
	switch strings.ToLower(envOrDefault(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func baseMySQLConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg
}

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	cfg := baseMySQLConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Addr = net.JoinHostPort(u.Hostname(), port)
	cfg.DBName = dbName

	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		switch key {
		case "parseTime":
			// always on; booking dates are scanned into time values
		case "loc":
			loc, err := time.LoadLocation(values[0])
			if err != nil {
				return "", "", fmt.Errorf("mysql url loc: %w", err)
			}
			cfg.Loc = loc
		default:
			cfg.Params[key] = values[0]
		}
	}
	return cfg.FormatDSN(), dbName, nil
}

func resolveMySQLDSN() (string, string, error) {
	raw := envOrDefault("MYSQL_URL", "")
	if raw == "" {
		raw = envOrDefault("DATABASE_URL", "")
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		parsed, err := mysql.ParseDSN(raw)
		if err != nil {
			return "", "", err
		}
		// booking_date is scanned into a time value
		parsed.ParseTime = true
		return parsed.FormatDSN(), parsed.DBName, nil
	}

	cfg := baseMySQLConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = os.Getenv("DB_PASS")
	cfg.Addr = net.JoinHostPort(envOrDefault("DB_HOST", "127.0.0.1"), envOrDefault("DB_PORT", "3306"))
	cfg.DBName = envOrDefault("DB_NAME", "hotel_db")
	return cfg.FormatDSN(), cfg.DBName, nil
}
