package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/memespace/market-engine/pkg/postgresql"
	"github.com/memespace/market-engine/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig         `envPrefix:"APP_"`
	Postgres postgresql.Config `envPrefix:"PG_"`
	Redis    redis.Config      `envPrefix:"REDIS_"`
	Kafka    KafkaConfig       `envPrefix:"KAFKA_"`
	Engine   EngineConfig      `envPrefix:"ENGINE_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"market-engine"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// KafkaConfig holds the configuration for the trade event publisher.
type KafkaConfig struct {
	Brokers []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"trade-events"`
}

// EngineConfig holds the market engine parameters.
type EngineConfig struct {
	InitialPrice       float64       `env:"INITIAL_PRICE" envDefault:"0.1"`
	InitialLiquidity   float64       `env:"INITIAL_LIQUIDITY" envDefault:"1000"`
	Fee                float64       `env:"FEE" envDefault:"0.003"`
	IssueCost          float64       `env:"ISSUE_COST" envDefault:"10"`
	SettlementInterval time.Duration `env:"SETTLEMENT_INTERVAL" envDefault:"60s"`
	LockTTL            time.Duration `env:"LOCK_TTL" envDefault:"30s"`
}

// Load loads the configuration from environment variables and .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad loads the configuration and panics when parsing fails.
func MustLoad() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	env.Must(cfg, env.Parse(cfg))
	return cfg
}
