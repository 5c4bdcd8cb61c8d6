package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Поддерживаемые хранилища сессий
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
	SessionStoreRedis    = "redis"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация дашборда
type Config struct {
	Server    ServerConfig    `toml:"server"`
	API       APIConfig       `toml:"api"`
	Session   SessionConfig   `toml:"session"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Display   DisplayConfig   `toml:"display"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// APIConfig удалённый API записи (receptionist backend)
type APIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type SessionConfig struct {
	Store        string `toml:"store"`
	CookieName   string `toml:"cookie_name"`
	TTLHours     int    `toml:"ttl_hours"`
	SecureCookie bool   `toml:"secure_cookie"`
	// CSRFKey 32 байта; пустое значение отключает CSRF-защиту форм
	CSRFKey string `toml:"csrf_key"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RateLimitConfig ограничение попыток входа/регистрации с одного IP
type RateLimitConfig struct {
	RequestsPerMinute int `toml:"requests_per_minute"`
	Burst             int `toml:"burst"`

	// TrustForwardedFor брать IP из X-Forwarded-For (только за доверенным прокси)
	TrustForwardedFor bool `toml:"trust_forwarded_for"`
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

// DisplayConfig параметры отображения
type DisplayConfig struct {
	// Timezone IANA-зона для дат и времени бронирований; "Local" берет зону процесса (TZ)
	Timezone string `toml:"timezone"`
}

// Location зона отображения дат
func (d DisplayConfig) Location() (*time.Location, error) {
	if d.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(d.Timezone)
}

// Load читает TOML-файл, затем накладывает переменные окружения
// .env подхватывается, если лежит рядом (удобно для локальной разработки)
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию; файл конфигурации перекрывает только заданные ключи
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		API: APIConfig{
			URL:     "http://localhost:5000/api",
			Timeout: 10,
		},
		Session: SessionConfig{
			Store:      SessionStoreMemory,
			CookieName: "receptionist_session",
			TTLHours:   24 * 7,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "dashboard",
			DBName:          "dashboard",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 20,
			Burst:             5,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "receptionist-dashboard",
		},
		Display: DisplayConfig{
			Timezone: "Local",
		},
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("%w: api.url is required", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	switch c.Session.Store {
	case SessionStoreMemory, SessionStorePostgres, SessionStoreRedis:
	default:
		return fmt.Errorf("%w: unknown session.store %q", ErrInvalidConfig, c.Session.Store)
	}
	if c.Session.CSRFKey != "" && len(c.Session.CSRFKey) != 32 {
		return fmt.Errorf("%w: session.csrf_key must be 32 bytes", ErrInvalidConfig)
	}
	if _, err := c.Display.Location(); err != nil {
		return fmt.Errorf("%w: display.timezone: %v", ErrInvalidConfig, err)
	}
	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}
	return nil
}

// applyEnv переопределяет секреты и адреса из окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DASHBOARD_API_URL"); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv("DASHBOARD_CSRF_KEY"); v != "" {
		cfg.Session.CSRFKey = v
	}
	if v := os.Getenv("DASHBOARD_SESSION_STORE"); v != "" {
		cfg.Session.Store = v
	}
	if v := os.Getenv("DASHBOARD_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DASHBOARD_TIMEZONE"); v != "" {
		cfg.Display.Timezone = v
	}
	if v := os.Getenv("DASHBOARD_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	// PORT выставляют облачные платформы
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}
