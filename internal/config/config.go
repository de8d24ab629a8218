package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageRemote   = "remote"
)

// ErrInvalidConfig возвращается, если конфигурация непригодна для запуска
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Venue     VenueConfig     `toml:"venue"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	RemoteLog RemoteLogConfig `toml:"remote_log"`
	Operator  OperatorConfig  `toml:"operator"`
	Reconcile ReconcileConfig `toml:"reconcile"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
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

// VenueConfig часовой пояс площадки и список квестов
type VenueConfig struct {
	Timezone string   `toml:"timezone"`
	Quests   []string `toml:"quests"`
}

// Location загружает часовой пояс площадки
func (v VenueConfig) Location() (*time.Location, error) {
	return time.LoadLocation(v.Timezone)
}

// StorageConfig выбор хранилища логов
type StorageConfig struct {
	Driver string `toml:"driver"`
}

type DatabaseConfig struct {
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
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// RemoteLogConfig внешний сервис лога (таймаут в секундах)
type RemoteLogConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// OperatorConfig вход оператора: bcrypt-хэш пароля и время жизни сессии в минутах
type OperatorConfig struct {
	PasswordHash      string `toml:"password_hash"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

func (o OperatorConfig) SessionTTL() time.Duration {
	return time.Duration(o.SessionTTLMinutes) * time.Minute
}

// ReconcileConfig период цикла обновления индекса для оператора
type ReconcileConfig struct {
	IntervalMs int `toml:"interval_ms"`
}

func (r ReconcileConfig) Interval() time.Duration {
	return time.Duration(r.IntervalMs) * time.Millisecond
}

// RateLimitConfig ограничение заявок посетителей на один IP
type RateLimitConfig struct {
	RequestsPerMinute int `toml:"requests_per_minute"`
	Burst             int `toml:"burst"`
	// TrustForwardedFor читать X-Forwarded-For (только за доверенным прокси)
	TrustForwardedFor bool `toml:"trust_forwarded_for"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует её
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация для локального запуска с хранилищем в памяти
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
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
		c.Metrics.ServiceName = "quest-booking"
	}
	if c.Venue.Timezone == "" {
		c.Venue.Timezone = "Europe/Moscow"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMemory
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "quests:"
	}
	if c.RemoteLog.Timeout == 0 {
		c.RemoteLog.Timeout = 5
	}
	if c.Operator.SessionTTLMinutes == 0 {
		c.Operator.SessionTTLMinutes = 12 * 60
	}
	if c.Reconcile.IntervalMs == 0 {
		c.Reconcile.IntervalMs = 2000
	}
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 3
	}
}

// Validate проверяет, что конфигурация пригодна для запуска
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if _, err := c.Venue.Location(); err != nil {
		return fmt.Errorf("%w: venue.timezone %q: %v", ErrInvalidConfig, c.Venue.Timezone, err)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	case StorageRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis storage", ErrInvalidConfig)
		}
	case StorageRemote:
		if c.RemoteLog.URL == "" {
			return fmt.Errorf("%w: remote_log.url is required for remote storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Reconcile.IntervalMs <= 0 {
		return fmt.Errorf("%w: reconcile.interval_ms must be positive", ErrInvalidConfig)
	}

	return nil
}
