package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Session  SessionConfig  `toml:"session"`
	Booking  BookingConfig  `toml:"booking"`
	Contact  ContactConfig  `toml:"contact"`
	Catalog  CatalogConfig  `toml:"catalog"`
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

// DatabaseConfig используется только при catalog.source = "postgres"
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig используется только при session.store = "redis"
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// SessionConfig параметры сессий посетителей
// Ключи cookie задаются в base64 (hash - 32 или 64 байта, block - 16/24/32 байта)
type SessionConfig struct {
	Store        string `toml:"store"`
	CookieName   string `toml:"cookie_name"`
	CookieSecure bool   `toml:"cookie_secure"`
	HashKey      string `toml:"hash_key"`
	BlockKey     string `toml:"block_key"`
	TTLMinutes   int    `toml:"ttl_minutes"`
}

// TTL время жизни состояния мастера бронирования
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

// Keys декодирует ключи cookie
func (s SessionConfig) Keys() (hashKey, blockKey []byte, err error) {
	hashKey, err = base64.StdEncoding.DecodeString(s.HashKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: session.hash_key: %v", ErrInvalidConfig, err)
	}
	blockKey, err = base64.StdEncoding.DecodeString(s.BlockKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: session.block_key: %v", ErrInvalidConfig, err)
	}
	return hashKey, blockKey, nil
}

// BookingConfig параметры мастера бронирования
type BookingConfig struct {
	ResetDelayMillis   int `toml:"reset_delay_ms"`
	RateLimitPerMinute int `toml:"rate_limit_per_minute"`
	RateLimitBurst     int `toml:"rate_limit_burst"`
}

// ResetDelay задержка перед сбросом мастера после успешной отправки
func (b BookingConfig) ResetDelay() time.Duration {
	return time.Duration(b.ResetDelayMillis) * time.Millisecond
}

// ContactConfig параметры ссылки для связи через мессенджер
type ContactConfig struct {
	WhatsAppBaseURL string `toml:"whatsapp_base_url"`
	WhatsAppPhone   string `toml:"whatsapp_phone"`
	Locale          string `toml:"locale"`
}

type CatalogConfig struct {
	Source string `toml:"source"`
}

// Load загружает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "hotelsite",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Session: SessionConfig{
			Store:      SessionStoreMemory,
			CookieName: "hotelsite_session",
			TTLMinutes: 60,
		},
		Booking: BookingConfig{
			ResetDelayMillis:   2000,
			RateLimitPerMinute: 120,
			RateLimitBurst:     20,
		},
		Contact: ContactConfig{
			WhatsAppBaseURL: "https://wa.me",
			WhatsAppPhone:   "525512345678",
			Locale:          "es-MX",
		},
		Catalog: CatalogConfig{
			Source: CatalogSourceStatic,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	switch c.Catalog.Source {
	case CatalogSourceStatic, CatalogSourcePostgres:
	default:
		return fmt.Errorf("%w: catalog.source must be %q or %q", ErrInvalidConfig, CatalogSourceStatic, CatalogSourcePostgres)
	}

	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("%w: session.store must be %q or %q", ErrInvalidConfig, SessionStoreMemory, SessionStoreRedis)
	}

	if c.Session.HashKey == "" || c.Session.BlockKey == "" {
		return fmt.Errorf("%w: session.hash_key and session.block_key are required", ErrInvalidConfig)
	}
	hashKey, blockKey, err := c.Session.Keys()
	if err != nil {
		return err
	}
	if len(hashKey) != 32 && len(hashKey) != 64 {
		return fmt.Errorf("%w: session.hash_key must decode to 32 or 64 bytes", ErrInvalidConfig)
	}
	if len(blockKey) != 16 && len(blockKey) != 24 && len(blockKey) != 32 {
		return fmt.Errorf("%w: session.block_key must decode to 16, 24 or 32 bytes", ErrInvalidConfig)
	}

	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("%w: session.ttl_minutes must be positive", ErrInvalidConfig)
	}

	if c.Booking.ResetDelayMillis < 0 {
		return fmt.Errorf("%w: booking.reset_delay_ms must not be negative", ErrInvalidConfig)
	}
	if c.Booking.RateLimitPerMinute <= 0 || c.Booking.RateLimitBurst <= 0 {
		return fmt.Errorf("%w: booking rate limit must be positive", ErrInvalidConfig)
	}

	if c.Contact.WhatsAppPhone == "" {
		return fmt.Errorf("%w: contact.whatsapp_phone is required", ErrInvalidConfig)
	}

	return nil
}
