package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server Server `yaml:"server"`

	Database Database `yaml:"database"`

	JWT JWT `yaml:"jwt"`

	Log Log `yaml:"log"`
}

type Server struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"` // websocket origins; empty allows all
}

type JWT struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // In Hours
}

type Database struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Name           string `yaml:"name"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	ConnectRetries int    `yaml:"connect_retries"`
	MigrationsPath string `yaml:"migrations_path"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// URI is the connection string without a database path.
func (d Database) URI() string {
	return fmt.Sprintf("mongodb://%s:%d", d.Host, d.Port)
}

// Timeout bounds a single store operation.
func (d Database) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// Default returns the configuration used when the file leaves a field unset.
func Default() Config {
	return Config{
		Server: Server{Address: ":8080"},
		Database: Database{
			Host:           "localhost",
			Port:           27017,
			Name:           "restaurant_db",
			TimeoutSeconds: 5,
			ConnectRetries: 5,
			MigrationsPath: "migrations",
		},
		JWT: JWT{ExpiresIn: 24},
		Log: Log{Level: "info", Format: "json"},
	}
}

func Load() (*Config, error) {
	configPath := "configs/development.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	return LoadFile(configPath)
}

// LoadFile decodes the YAML file at path over the defaults and applies
// environment overrides.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required")
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("MONGO_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("MONGO_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid MONGO_PORT %q: %w", port, err)
		}
		cfg.Database.Port = p
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	return nil
}
