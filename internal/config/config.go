package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Auth         AuthConfig         `toml:"auth"`
	Business     BusinessConfig     `toml:"business"`
	Notification NotificationConfig `toml:"notification"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	AllowedOrigins  []string `toml:"allowed_origins"`
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

// URL строка подключения в формате postgres:// (для golang-migrate)
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr          string `toml:"addr"`
	Password      string `toml:"password"`
	DB            int    `toml:"db"`
	SessionPrefix string `toml:"session_prefix"`
	EventsChannel string `toml:"events_channel"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	Issuer          string `toml:"issuer"`
	SessionTTLHours int    `toml:"session_ttl_hours"`
}

// SessionTTL время жизни сессии администратора
func (a AuthConfig) SessionTTL() time.Duration {
	return time.Duration(a.SessionTTLHours) * time.Hour
}

type BusinessConfig struct {
	Timezone             string   `toml:"timezone"`
	ClosedWeekdays       []string `toml:"closed_weekdays"`
	AllowPeriodSpillover bool     `toml:"allow_period_spillover"`
	AdvanceBookingDays   int      `toml:"advance_booking_days"` // 0 = без ограничений
}

// Location часовой пояс заведения
func (b BusinessConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(b.Timezone)
}

// Weekdays разбирает closed_weekdays в time.Weekday
func (b BusinessConfig) Weekdays() ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(b.ClosedWeekdays))
	for _, name := range b.ClosedWeekdays {
		day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		days = append(days, day)
	}
	return days, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

type NotificationConfig struct {
	WhatsAppBaseURL string `toml:"whatsapp_base_url"`
	WhatsAppNumber  string `toml:"whatsapp_number"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerMinute float64 `toml:"requests_per_minute"`
	Burst             int     `toml:"burst"`
}

// Load читает конфигурацию из TOML файла, подгружает .env и применяет переменные окружения
func Load(path string) (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			AllowedOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:          "localhost:6379",
			SessionPrefix: "session:",
			EventsChannel: "sessions:events",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barber-booking",
		},
		Auth: AuthConfig{
			Issuer:          "barber-booking",
			SessionTTLHours: 24,
		},
		Business: BusinessConfig{
			ClosedWeekdays: []string{"sunday"},
		},
		Notification: NotificationConfig{
			WhatsAppBaseURL: "https://wa.me",
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 30,
			Burst:             5,
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("AUTH_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret is required (or AUTH_JWT_SECRET)")
	}
	if c.Auth.SessionTTLHours <= 0 {
		return errors.New("config: auth.session_ttl_hours must be positive")
	}
	if c.Notification.WhatsAppNumber == "" {
		return errors.New("config: notification.whatsapp_number is required")
	}
	if c.Business.AdvanceBookingDays < 0 {
		return errors.New("config: business.advance_booking_days must not be negative")
	}
	if _, err := c.Business.Location(); err != nil {
		return fmt.Errorf("config: invalid business.timezone: %w", err)
	}
	if _, err := c.Business.Weekdays(); err != nil {
		return fmt.Errorf("config: invalid business.closed_weekdays: %w", err)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("config: rate_limit requires positive requests_per_minute and burst")
	}
	return nil
}
