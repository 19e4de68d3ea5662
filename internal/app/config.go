package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

type Config struct {
	Server struct {
		Port string `toml:"port"`
	} `toml:"server"`

	// Auth holds presentation-level policy only. The account service itself
	// accepts any non-empty password; the minimum length is enforced at the
	// edge, mirroring the signup form of the desktop app.
	Auth struct {
		MinPasswordLength int `toml:"min_password_length"`
	} `toml:"auth"`

	Database struct {
		DSN           string `toml:"dsn"`
		MigrationsDir string `toml:"migrations_dir"`
	} `toml:"database"`

	Stats struct {
		GoodThreshold float64 `toml:"good_threshold"`
		WarnThreshold float64 `toml:"warn_threshold"`
	} `toml:"stats"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("Server port is not specified in config, use a value like :9999")
	}
	if config.Database.DSN == "" {
		return nil, fmt.Errorf("Database DSN is not specified in config, use a value like attendify.db")
	}

	if config.Auth.MinPasswordLength == 0 {
		config.Auth.MinPasswordLength = 4
	}
	if config.Stats.GoodThreshold == 0 {
		config.Stats.GoodThreshold = 75
	}
	if config.Stats.WarnThreshold == 0 {
		config.Stats.WarnThreshold = 60
	}

	logger.Debug.Printf("Loaded config: dsn=%s migrations=%s", config.Database.DSN, config.Database.MigrationsDir)

	return &config, nil
}
