package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultEnvFile    = ".env"
	DefaultHTTPPort   = "8080"
	DefaultSQLiteDSN  = "file:restaurant.db?_foreign_keys=on"
	DefaultKafkaTopic = "restaurant.notifications"
)

type Config struct {
	HTTPPort   string
	DBDriver   string
	DBDSN      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaBrokers     []string
	KafkaTopic       string
	RabbitMQURL      string
	RabbitMQExchange string
	RedisAddr        string
	RedisPassword    string
	RedisChannel     string

	HeartbeatSchedule string
	BacklogSchedule   string
	LogLevel          string
}

// LoadConfig reads envFile into the process environment and builds the
// config from it. A missing default .env is not an error; a missing file
// that was asked for explicitly is.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if envFile != DefaultEnvFile || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}

	cfg := ConfigFromEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromEnv builds the config from getenv, applying defaults for
// unset keys.
func ConfigFromEnv(getenv func(string) string) Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	return Config{
		HTTPPort:   get("HTTP_PORT", DefaultHTTPPort),
		DBDriver:   get("DB_DRIVER", postgres.DriverPostgres),
		DBDSN:      get("DB_DSN", ""),
		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", ""),
		DBName:     get("DB_NAME", "restaurant"),
		DBSslMode:  get("DB_SSLMODE", "disable"),

		KafkaBrokers:     splitList(get("KAFKA_BROKERS", "")),
		KafkaTopic:       get("KAFKA_TOPIC", DefaultKafkaTopic),
		RabbitMQURL:      get("RABBITMQ_URL", ""),
		RabbitMQExchange: get("RABBITMQ_EXCHANGE", ""),
		RedisAddr:        get("REDIS_ADDR", ""),
		RedisPassword:    get("REDIS_PASSWORD", ""),
		RedisChannel:     get("REDIS_CHANNEL", ""),

		HeartbeatSchedule: get("HEARTBEAT_SCHEDULE", jobs.DefaultHeartbeatSchedule),
		BacklogSchedule:   get("BACKLOG_SCHEDULE", jobs.DefaultBacklogSchedule),
		LogLevel:          get("LOG_LEVEL", logrus.InfoLevel.String()),
	}
}

func (c Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case postgres.DriverPostgres, postgres.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER: unsupported driver %q", c.DBDriver))
	}

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT: %q is not a valid port", c.HTTPPort))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return errors.Join(errs...)
}

// DSN returns DB_DSN when set, otherwise a connection string assembled from
// the individual settings of the chosen driver.
func (c Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	if c.DBDriver == postgres.DriverSQLite {
		return DefaultSQLiteDSN
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) Schedules() jobs.Schedules {
	return jobs.Schedules{
		Heartbeat: c.HeartbeatSchedule,
		Backlog:   c.BacklogSchedule,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
