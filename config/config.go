package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Collaborators CollaboratorsConfig `mapstructure:"collaborators"`
	Refunds       RefundsConfig       `mapstructure:"refunds"`
	Log           LogConfig           `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationsDir   string        `mapstructure:"migrations_dir"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type KafkaConfig struct {
	Brokers      string        `mapstructure:"brokers"`
	EventsTopic  string        `mapstructure:"events_topic"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// CollaboratorsConfig holds base URLs for the platform services the
// orchestrator depends on.
type CollaboratorsConfig struct {
	TransactionURL  string        `mapstructure:"transaction_url"`
	ComplianceURL   string        `mapstructure:"compliance_url"`
	ApprovalURL     string        `mapstructure:"approval_url"`
	ParameterURL    string        `mapstructure:"parameter_url"`
	NotificationURL string        `mapstructure:"notification_url"`
	GatewayURL      string        `mapstructure:"gateway_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

type RefundsConfig struct {
	// ApprovalThresholdParam is the parameter-hierarchy name resolved per
	// merchant to decide whether a refund needs human approval.
	ApprovalThresholdParam string        `mapstructure:"approval_threshold_param"`
	LeaseTTL               time.Duration `mapstructure:"lease_ttl"`
	NotifyChannel          string        `mapstructure:"notify_channel"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BRK_.
// Nested keys use underscore: BRK_DATABASE_HOST, BRK_KAFKA_BROKERS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "refunds")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.migrations_dir", "")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.brokers", "localhost:9092")
	v.SetDefault("kafka.events_topic", "refund-events")
	v.SetDefault("kafka.write_timeout", "10s")
	v.SetDefault("collaborators.transaction_url", "http://transactions-service:8080")
	v.SetDefault("collaborators.compliance_url", "http://compliance-service:8080")
	v.SetDefault("collaborators.approval_url", "http://approvals-service:8080")
	v.SetDefault("collaborators.parameter_url", "http://parameters-service:8080")
	v.SetDefault("collaborators.notification_url", "http://notifications-service:8080")
	v.SetDefault("collaborators.gateway_url", "http://gateway-service:8080")
	v.SetDefault("collaborators.timeout", "10s")
	v.SetDefault("refunds.approval_threshold_param", "refund.approval.threshold")
	v.SetDefault("refunds.lease_ttl", "2m")
	v.SetDefault("refunds.notify_channel", "email")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BRK_DATABASE_HOST -> database.host
	v.SetEnvPrefix("BRK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
