package docstore

import (
	"fmt"
	"os"
)

// Config contains document container settings.
type Config struct {
	// PartitionKeyPath names the body field that supplies the partition value.
	// Default: "partition_key"
	PartitionKeyPath string `toml:"partition_key_path"`
}

// Env maps environment variable names for container configuration.
type Env struct {
	PartitionKeyPath string
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.PartitionKeyPath != "" {
		c.PartitionKeyPath = overlay.PartitionKeyPath
	}
}

func (c *Config) loadDefaults() {
	if c.PartitionKeyPath == "" {
		c.PartitionKeyPath = "partition_key"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.PartitionKeyPath != "" {
		if v := os.Getenv(env.PartitionKeyPath); v != "" {
			c.PartitionKeyPath = v
		}
	}
}

func (c *Config) validate() error {
	if c.PartitionKeyPath == "id" {
		return fmt.Errorf("partition_key_path cannot be the id field")
	}
	return nil
}
