package bot

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "barbot/core/config"
	coredatabase "barbot/core/database"
)

// AppConfig is the full bot configuration: the core section plus the
// database settings. An empty database host runs the bot on the in-memory
// stats repository.
type AppConfig struct {
	coreconfig.Config `yaml:",inline"`
	Database          coredatabase.Config `yaml:"database"`
}

// CoreConfig satisfies cmd.ConfigCarrier.
func (c *AppConfig) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// HasDatabase reports whether a Postgres connection is configured.
func (c *AppConfig) HasDatabase() bool {
	return c.Database.Host != ""
}

// LoadConfig reads the YAML file, applies environment overrides and
// validates the result.
func LoadConfig(path string) (*AppConfig, error) {
	var cfg AppConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if cfg.HasDatabase() {
		cfg.Database.ApplyDefaults()
	}
	return &cfg, nil
}
