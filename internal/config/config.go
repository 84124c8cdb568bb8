package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Mirror   MirrorConfig   `envPrefix:"MIRROR_"`
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
	Session  SessionConfig  `envPrefix:"SESSION_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:"0.0.0.0:8080"`
}

type DatabaseConfig struct {
	Hosts    []string `env:"HOSTS" envDefault:"localhost:27017"`
	Database string   `env:"DATABASE" envDefault:"saladkaro"`
	Username string   `env:"USERNAME"`
	Password string   `env:"PASSWORD"`
	AuthDB   string   `env:"AUTH_DB" envDefault:"admin"`
	Direct   bool     `env:"DIRECT" envDefault:"true"`
}

// MirrorConfig points the storefront session at the remote mirror API.
// Mirroring is best-effort; disabling it only stops the notifications.
type MirrorConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Enabled bool   `env:"ENABLED" envDefault:"true"`
}

type KafkaConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"storefront.orders"`
}

// SessionConfig locates the local snapshot directory for a storefront
// session. Relative paths resolve against the user's home directory.
type SessionConfig struct {
	DataDir string `env:"DATA_DIR" envDefault:".salad-karo"`
	User    string `env:"USER"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
