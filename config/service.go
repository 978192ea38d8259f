package config

import (
	"slices"

	"github.com/kbukum/asyncit/logger"
	"github.com/kbukum/asyncit/validation"
)

var environments = []string{"development", "staging", "production"}

// ServiceConfig holds the fields every asyncit binary needs. Embed it with
// `mapstructure:",squash"` so its keys sit at the top of config.yml.
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetServiceConfig returns the base ServiceConfig. It is promoted through
// embedding.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults fills unset fields. Development turns on debug logging unless
// a level was configured.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the base fields.
func (c *ServiceConfig) Validate() error {
	v := validation.New().
		Required("name", c.Name).
		Custom(slices.Contains(environments, c.Environment), "environment",
			"must be one of: development, staging, production")
	v.Merge("logging", c.Logging.Validate())
	return v.Validate()
}
