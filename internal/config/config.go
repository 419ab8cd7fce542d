package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Типы хранилища документов
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Tracing   TracingConfig   `toml:"tracing"`
	Backend   BackendConfig   `toml:"backend"`
	Gateway   GatewayConfig   `toml:"gateway"`
	Storage   StorageConfig   `toml:"storage"`
	S3        S3Config        `toml:"s3"`
	Export    ExportConfig    `toml:"export"`
	Database  DatabaseConfig  `toml:"database"`
	Workflow  WorkflowConfig  `toml:"workflow"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

type TracingConfig struct {
	Enabled      bool    `toml:"enabled"`
	OTLPEndpoint string  `toml:"otlp_endpoint"`
	SampleRatio  float64 `toml:"sample_ratio"`
}

// BackendConfig REST backend (система учета)
type BackendConfig struct {
	URL      string `toml:"url"`
	Protocol string `toml:"protocol"`
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Timeout  int    `toml:"timeout"` // секунды
}

// BaseURL адрес backend: явный url или protocol://host:port/api
func (b BackendConfig) BaseURL() string {
	if b.URL != "" {
		return b.URL
	}
	return fmt.Sprintf("%s://%s:%s/api", b.Protocol, b.Host, b.Port)
}

type GatewayConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// StorageConfig хранилище документов storage proxy
type StorageConfig struct {
	Type         string `toml:"type"`
	Path         string `toml:"path"`
	PublicPrefix string `toml:"public_prefix"`
	ProxyURL     string `toml:"proxy_url"` // куда exporter отправляет документы
	ProxyTimeout int    `toml:"proxy_timeout"`
}

// ResolveProxyURL адрес storage proxy; без явного proxy_url документы
// отправляются в этот же сервер
func (s StorageConfig) ResolveProxyURL(httpPort int) string {
	if s.ProxyURL != "" {
		return s.ProxyURL
	}
	return fmt.Sprintf("http://localhost:%d", httpPort)
}

type S3Config struct {
	Region          string `toml:"region"`
	Bucket          string `toml:"bucket"`
	Endpoint        string `toml:"endpoint"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
}

// HasCredentials заданы ли статические ключи
func (s S3Config) HasCredentials() bool {
	return s.AccessKeyID != "" && s.SecretAccessKey != ""
}

type ExportConfig struct {
	SaveToServer bool   `toml:"save_to_server"`
	DownloadsDir string `toml:"downloads_dir"`
}

// DatabaseConfig реестр экспортированных документов (опционально)
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type WorkflowConfig struct {
	LookupPolicy  string `toml:"lookup_policy"`
	SubmitTimeout int    `toml:"submit_timeout"` // секунды
	Timezone      string `toml:"timezone"`
}

// Location часовой пояс, в котором интерпретируется время записи
func (w WorkflowConfig) Location() (*time.Location, error) {
	if w.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(w.Timezone)
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию: значения по умолчанию, файл TOML (если есть),
// затем .env и переменные окружения
func Load(path string) (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.LookupEnv)
	cfg.Storage.ProxyURL = cfg.Storage.ResolveProxyURL(cfg.Server.HTTPPort)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics", ServiceName: "barber-booking"},
		Tracing: TracingConfig{SampleRatio: 1},
		Backend: BackendConfig{
			Protocol: "http",
			Host:     "localhost",
			Port:     "8080",
			Timeout:  10,
		},
		Gateway: GatewayConfig{Timeout: 10},
		Storage: StorageConfig{
			Type:         StorageLocal,
			Path:         "./uploads",
			PublicPrefix: "/uploads",
			ProxyTimeout: 15,
		},
		S3:     S3Config{Region: "us-east-1"},
		Export: ExportConfig{SaveToServer: true, DownloadsDir: "./downloads"},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Workflow:  WorkflowConfig{LookupPolicy: "proceed", SubmitTimeout: 30},
		RateLimit: RateLimitConfig{Enabled: true, RPS: 5, Burst: 10},
		CORS:      CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	switch c.Storage.Type {
	case StorageLocal:
	case StorageS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("%w: s3.bucket is required for storage type s3", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage type %q", ErrInvalidConfig, c.Storage.Type)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: storage.path is required", ErrInvalidConfig)
	}
	if c.Backend.Timeout <= 0 || c.Gateway.Timeout <= 0 || c.Storage.ProxyTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	}
	if c.Workflow.SubmitTimeout <= 0 {
		return fmt.Errorf("%w: workflow.submit_timeout must be positive", ErrInvalidConfig)
	}
	if _, err := c.Workflow.Location(); err != nil {
		return fmt.Errorf("%w: workflow.timezone: %v", ErrInvalidConfig, err)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	if c.Tracing.Enabled && c.Tracing.OTLPEndpoint == "" {
		return fmt.Errorf("%w: tracing.otlp_endpoint is required", ErrInvalidConfig)
	}
	return nil
}
