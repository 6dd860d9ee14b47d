package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения, переопределяющая путь к config.toml
const EnvConfigPath = "CONFIG_PATH"

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server           ServerConfig           `toml:"server"`
	Logs             LogsConfig             `toml:"logs"`
	Metrics          MetricsConfig          `toml:"metrics"`
	ReservationStore ReservationStoreConfig `toml:"reservation_store"`
	Database         DatabaseConfig         `toml:"database"`
	Redis            RedisConfig            `toml:"redis"`
	Kafka            KafkaConfig            `toml:"kafka"`
	Booking          BookingConfig          `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ReservationStoreConfig настройки клиента удаленного хранилища бронирований
type ReservationStoreConfig struct {
	URL            string `toml:"url"`
	Timeout        int    `toml:"timeout"`
	ReadRetries    int    `toml:"read_retries"`
	RetryBackoffMs int    `toml:"retry_backoff_ms"`
}

// DatabaseConfig база журнала команд
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Enabled            bool   `toml:"enabled"`
	Addr               string `toml:"addr"`
	Password           string `toml:"password"`
	DB                 int    `toml:"db"`
	EntityTTLSeconds   int    `toml:"entity_ttl_seconds"`
	InFlightTTLSeconds int    `toml:"inflight_ttl_seconds"`
}

type KafkaConfig struct {
	Enabled     bool     `toml:"enabled"`
	Brokers     []string `toml:"brokers"`
	EventsTopic string   `toml:"events_topic"`
}

// BookingConfig значения по умолчанию для новых бронирований и выездов
type BookingConfig struct {
	DefaultCurrency string `toml:"default_currency"`
	DefaultMaxPax   int    `toml:"default_max_pax"`
}

// Load читает конфигурацию из файла
// Если задана переменная CONFIG_PATH, она имеет приоритет над path
func Load(path string) (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "tour-booking-service"
	}

	if c.ReservationStore.Timeout == 0 {
		c.ReservationStore.Timeout = 10
	}
	if c.ReservationStore.ReadRetries == 0 {
		c.ReservationStore.ReadRetries = 3
	}
	if c.ReservationStore.RetryBackoffMs == 0 {
		c.ReservationStore.RetryBackoffMs = 200
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Redis.EntityTTLSeconds == 0 {
		c.Redis.EntityTTLSeconds = 300
	}
	if c.Redis.InFlightTTLSeconds == 0 {
		c.Redis.InFlightTTLSeconds = 30
	}

	if c.Kafka.EventsTopic == "" {
		c.Kafka.EventsTopic = "tour-reservation-events"
	}

	if c.Booking.DefaultCurrency == "" {
		c.Booking.DefaultCurrency = "COP"
	}
	if c.Booking.DefaultMaxPax == 0 {
		c.Booking.DefaultMaxPax = 20
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if strings.TrimSpace(c.ReservationStore.URL) == "" {
		return fmt.Errorf("%w: reservation_store.url is required", ErrInvalidConfig)
	}
	if c.ReservationStore.ReadRetries < 1 {
		return fmt.Errorf("%w: reservation_store.read_retries must be positive", ErrInvalidConfig)
	}
	if c.Database.Enabled && (c.Database.Host == "" || c.Database.Port <= 0) {
		return fmt.Errorf("%w: database.host and database.port are required", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required", ErrInvalidConfig)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("%w: kafka.brokers is required", ErrInvalidConfig)
	}
	switch c.Booking.DefaultCurrency {
	case "COP", "USD":
	default:
		return fmt.Errorf("%w: booking.default_currency %q is not supported", ErrInvalidConfig, c.Booking.DefaultCurrency)
	}
	if c.Booking.DefaultMaxPax < 1 {
		return fmt.Errorf("%w: booking.default_max_pax must be positive", ErrInvalidConfig)
	}
	return nil
}
