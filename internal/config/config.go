package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string         `mapstructure:"app_env"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Report   ReportConfig   `mapstructure:"report"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"`
	SSLMode    string `mapstructure:"sslmode"`
	MaxRetries int    `mapstructure:"max_retries"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type KafkaConfig struct {
	Broker             string        `mapstructure:"broker"`
	ConsumerGroup      string        `mapstructure:"consumer_group"`
	OutboxPollInterval time.Duration `mapstructure:"outbox_poll_interval"`
}

type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	TeacherSecretID string        `mapstructure:"teacher_secret_id"`
	TokenTTL        time.Duration `mapstructure:"token_ttl"`
}

type ReportConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// IsProduction reports whether cookies and similar settings should be hardened.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from the environment. Nested keys map to
// upper-case env names with underscores, e.g. db.host -> DB_HOST.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// legacy flat names kept for .env files written for the first release
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("kafka.broker", "KAFKA_BROKER")
	_ = v.BindEnv("kafka.outbox_poll_interval", "OUTBOX_POLL_INTERVAL")
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("auth.teacher_secret_id", "TEACHER_SECRET_ID")
	_ = v.BindEnv("report.cache_ttl", "REPORT_CACHE_TTL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")

	v.SetDefault("server.port", "5000")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "attendance")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_retries", 5)

	v.SetDefault("redis.addr", "localhost:6379")

	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.consumer_group", "go-attendance-audit")
	v.SetDefault("kafka.outbox_poll_interval", 3*time.Second)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.teacher_secret_id", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)

	v.SetDefault("report.cache_ttl", 5*time.Minute)
}
