package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Storage  StorageConfig
	Database DatabaseConfig
	HTTP     HTTPConfig
	Mail     MailConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// StorageConfig выбирает, куда сохраняется база лиг
type StorageConfig struct {
	Backend    string `env:"LEAGUE_STORE" envDefault:"file"`
	Path       string `env:"LEAGUE_DB_PATH" envDefault:"leagues.json"`
	SQLitePath string `env:"LEAGUE_SQLITE_PATH" envDefault:"leagues.db"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"league"`
	Password string `env:"DB_PASSWORD" envDefault:"league"`
	DBName   string `env:"DB_NAME" envDefault:"leagues"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:"127.0.0.1:8080"`
}

// MailConfig - если SMTPHost пустой, письма только пишутся в лог
type MailConfig struct {
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	Sender       string `env:"MAIL_SENDER" envDefault:"league@localhost"`
}

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendPostgres, BackendSQLite:
	default:
		return fmt.Errorf("unknown LEAGUE_STORE %q", c.Storage.Backend)
	}
	if c.Storage.Backend == BackendFile && c.Storage.Path == "" {
		return fmt.Errorf("LEAGUE_DB_PATH is required for file storage")
	}
	return nil
}

// DSN - строка подключения к Postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}
