package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override the YAML file.
// Nested keys use a double underscore: AIRPORT_DATABASE__HOST -> database.host.
const EnvPrefix = "AIRPORT_"

type Config struct {
	HTTP     HTTPConfig     `yaml:"http" koanf:"http"`
	Database DatabaseConfig `yaml:"database" koanf:"database"`
	Redis    RedisConfig    `yaml:"redis" koanf:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka" koanf:"kafka"`
	Cache    CacheConfig    `yaml:"cache" koanf:"cache"`
	Log      LogConfig      `yaml:"log" koanf:"log"`
	Email    EmailConfig    `yaml:"email" koanf:"email"`
}

type HTTPConfig struct {
	Address             string `yaml:"address" koanf:"address" validate:"required"`
	SwaggerDir          string `yaml:"swagger_dir" koanf:"swagger_dir"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds" koanf:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds" koanf:"write_timeout_seconds"`

	// CORSAllowedOrigins enables CORS for the listed origins. Empty disables it.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" koanf:"cors_allowed_origins"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" koanf:"host" validate:"required"`
	Port     int    `yaml:"port" koanf:"port" validate:"required"`
	User     string `yaml:"user" koanf:"user" validate:"required"`
	Password string `yaml:"password" koanf:"password"`
	Name     string `yaml:"name" koanf:"name" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" koanf:"ssl_mode" validate:"required"`
	MaxConns int32  `yaml:"max_conns" koanf:"max_conns"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// RedisConfig is optional; an empty Addr disables caching.
type RedisConfig struct {
	Addr     string `yaml:"addr" koanf:"addr"`
	Password string `yaml:"password" koanf:"password"`
	DB       int    `yaml:"db" koanf:"db"`
}

// KafkaConfig is optional for the API; without brokers no events are published.
type KafkaConfig struct {
	Brokers     []string `yaml:"brokers" koanf:"brokers"`
	OrdersTopic string   `yaml:"orders_topic" koanf:"orders_topic"`
	GroupID     string   `yaml:"group_id" koanf:"group_id"`
}

type CacheConfig struct {
	FlightsTTLSeconds int `yaml:"flights_ttl_seconds" koanf:"flights_ttl_seconds"`
	TokensTTLSeconds  int `yaml:"tokens_ttl_seconds" koanf:"tokens_ttl_seconds"`
}

func (c CacheConfig) FlightsTTL() time.Duration {
	return time.Duration(c.FlightsTTLSeconds) * time.Second
}

func (c CacheConfig) TokensTTL() time.Duration {
	return time.Duration(c.TokensTTLSeconds) * time.Second
}

// EmailConfig selects the notification transport of the worker. Without a
// Resend API key notifications are only logged.
type EmailConfig struct {
	ResendAPIKey string `yaml:"resend_api_key" koanf:"resend_api_key"`
	From         string `yaml:"from" koanf:"from" validate:"omitempty,email"`
}

type LogConfig struct {
	Level  string `yaml:"level" koanf:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Pretty bool   `yaml:"pretty" koanf:"pretty"`
}

// LoadConfig reads the YAML file at path, applies AIRPORT_* environment
// overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return fmt.Errorf("failed to load env overrides: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to apply env overrides: %w", err)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.HTTP.ReadTimeoutSeconds == 0 {
		c.HTTP.ReadTimeoutSeconds = 10
	}
	if c.HTTP.WriteTimeoutSeconds == 0 {
		c.HTTP.WriteTimeoutSeconds = 10
	}
	if c.Kafka.OrdersTopic == "" {
		c.Kafka.OrdersTopic = "orders"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "airport-notifications"
	}
	if c.Cache.FlightsTTLSeconds == 0 {
		c.Cache.FlightsTTLSeconds = 60
	}
	if c.Cache.TokensTTLSeconds == 0 {
		c.Cache.TokensTTLSeconds = 300
	}
	if c.Email.From == "" {
		c.Email.From = "noreply@airport.local"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
