package config

import (
	"strings"
	"time"

	"github.com/kbukum/asyncit/validation"
)

// Config is the configuration of the asyncit command.
type Config struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Demo    DemoConfig    `yaml:"demo" mapstructure:"demo"`
}

// TracingConfig controls OTLP export of drain spans and metrics.
// SampleRate is a pointer so an explicit 0 (sample nothing) survives defaults.
type TracingConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint        string        `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure        bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate      *float64      `yaml:"sample_rate" mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1"`
	MetricsInterval time.Duration `yaml:"metrics_interval" mapstructure:"metrics_interval" validate:"gte=0"`
}

// DemoConfig describes the pipeline the command runs: every item is checked
// against FailAbove, multiples of SkipMultipleOf are dropped, and the results
// are partitioned with Strategy.
type DemoConfig struct {
	Items          []int         `yaml:"items" mapstructure:"items" validate:"required,min=1"`
	FailAbove      int           `yaml:"fail_above" mapstructure:"fail_above" validate:"gte=0"`
	SkipMultipleOf int           `yaml:"skip_multiple_of" mapstructure:"skip_multiple_of" validate:"gte=0"`
	Strategy       string        `yaml:"strategy" mapstructure:"strategy" validate:"required,oneof=partition stop_on_first_error break_on_error"`
	Delay          time.Duration `yaml:"delay" mapstructure:"delay" validate:"gte=0"`
	FailOnError    bool          `yaml:"fail_on_error" mapstructure:"fail_on_error"`
}

// ApplyDefaults fills unset fields of every section.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "asyncit"
	}
	c.ServiceConfig.ApplyDefaults()
	c.Tracing.ApplyDefaults()
	c.Demo.ApplyDefaults()
}

// Validate checks every section, reporting all failures at once.
func (c *Config) Validate() error {
	v := validation.New()
	v.Merge("", c.ServiceConfig.Validate())
	v.Merge("", validation.Validate(c))
	return v.Validate()
}

func (c *TracingConfig) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == nil {
		rate := 1.0
		c.SampleRate = &rate
	}
	if c.MetricsInterval == 0 {
		c.MetricsInterval = 15 * time.Second
	}
}

// ApplyDefaults normalizes Strategy the way partition.ParseStrategy reads it
// and defaults it to partition.
func (c *DemoConfig) ApplyDefaults() {
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	if c.Strategy == "" {
		c.Strategy = "partition"
	}
}
