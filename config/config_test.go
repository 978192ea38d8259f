package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/asyncit/errors"
)

const sampleYAML = `
name: asyncit-test
environment: staging
logging:
  level: warn
  format: json
tracing:
  enabled: true
  endpoint: collector:4318
  sample_rate: 0.5
demo:
  items: [1, 2, 3, 4]
  fail_above: 3
  skip_multiple_of: 2
  strategy: stop_on_first_error
  delay: 5ms
  fail_on_error: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	var cfg Config
	if err := LoadConfig("asyncit", &cfg, WithConfigFile(writeConfig(t, sampleYAML)), WithEnvPrefix("ASYNCIT_TEST")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "asyncit-test" {
		t.Errorf("expected name 'asyncit-test', got %q", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("logging section not loaded: %+v", cfg.Logging)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.Endpoint != "collector:4318" || sampleRate(cfg.Tracing) != 0.5 {
		t.Errorf("tracing section not loaded: %+v", cfg.Tracing)
	}
	if want := []int{1, 2, 3, 4}; !slices.Equal(cfg.Demo.Items, want) {
		t.Errorf("items: got %v, want %v", cfg.Demo.Items, want)
	}
	if cfg.Demo.FailAbove != 3 || cfg.Demo.SkipMultipleOf != 2 {
		t.Errorf("demo thresholds not loaded: %+v", cfg.Demo)
	}
	if cfg.Demo.Strategy != "stop_on_first_error" {
		t.Errorf("strategy: got %q", cfg.Demo.Strategy)
	}
	if cfg.Demo.Delay != 5*time.Millisecond {
		t.Errorf("delay: got %v", cfg.Demo.Delay)
	}
	if !cfg.Demo.FailOnError {
		t.Error("expected fail_on_error=true")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("ASYNCIT_TEST_DEMO_STRATEGY", "partition")
	t.Setenv("ASYNCIT_TEST_DEMO_FAIL_ABOVE", "10")
	t.Setenv("ASYNCIT_TEST_LOGGING_LEVEL", "error")
	t.Setenv("DEMO_SKIP_MULTIPLE_OF", "7") // no prefix, must be ignored

	var cfg Config
	if err := LoadConfig("asyncit", &cfg, WithConfigFile(writeConfig(t, sampleYAML)), WithEnvPrefix("ASYNCIT_TEST")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Demo.Strategy != "partition" {
		t.Errorf("strategy: got %q, want partition", cfg.Demo.Strategy)
	}
	if cfg.Demo.FailAbove != 10 {
		t.Errorf("fail_above: got %d, want 10", cfg.Demo.FailAbove)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("logging.level: got %q, want error", cfg.Logging.Level)
	}
	if cfg.Demo.SkipMultipleOf != 2 {
		t.Errorf("unprefixed variable leaked into config: skip_multiple_of=%d", cfg.Demo.SkipMultipleOf)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("ASYNCIT_ENVFILE_DEMO_FAIL_ABOVE=42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("ASYNCIT_ENVFILE_DEMO_FAIL_ABOVE") })

	var cfg Config
	err := LoadConfig("asyncit", &cfg,
		WithConfigFile(writeConfig(t, sampleYAML)),
		WithEnvFile(envPath),
		WithEnvPrefix("ASYNCIT_ENVFILE"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Demo.FailAbove != 42 {
		t.Errorf("fail_above: got %d, want 42", cfg.Demo.FailAbove)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	var cfg Config
	err := LoadConfig("asyncit", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT for a missing explicit file, got %v", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	var cfg Config
	err := LoadConfig("asyncit", &cfg, WithConfigFile(writeConfig(t, "demo: [unclosed")))
	if !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestResolver_SearchesStandardLocations(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/asyncit/config.yml": true,
		"../.env":                  true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("asyncit", LoaderConfig{})
	if files.ConfigFile != "./cmd/asyncit/config.yml" {
		t.Errorf("config file: got %q", files.ConfigFile)
	}
	if files.EnvFile != "../.env" {
		t.Errorf("env file: got %q", files.EnvFile)
	}
}

func TestResolver_ExplicitPathsWin(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./config.yml": true}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("asyncit", LoaderConfig{ConfigFile: "custom.yml", EnvFile: "custom.env"})
	if files.ConfigFile != "custom.yml" || files.EnvFile != "custom.env" {
		t.Errorf("got %+v", files)
	}
}

func TestResolver_ServiceEnvFileFirst(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./.env":         true,
		"./.env.asyncit": true,
	}}
	files := (&Resolver{FileSystem: fs}).ResolveFiles("asyncit", LoaderConfig{})
	if files.EnvFile != "./.env.asyncit" {
		t.Errorf("got %q, want ./.env.asyncit", files.EnvFile)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool   { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	for _, opt := range []LoaderOption{
		WithFileSystem(fs),
		WithConfigFile("/path/to/config.yml"),
		WithEnvFile("/path/to/.env"),
		WithEnvPrefix("asyncit_"),
	} {
		opt(&lc)
	}
	if lc.FileSystem != fs {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("paths not set: %+v", lc)
	}
	if lc.EnvPrefix != "ASYNCIT" {
		t.Errorf("expected normalized prefix ASYNCIT, got %q", lc.EnvPrefix)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("DEMO_FAIL_ABOVE")
	for _, want := range []string{"demo_fail_above", "demo.fail.above", "demo.fail_above", "demo_fail.above"} {
		if !slices.Contains(got, want) {
			t.Errorf("missing variant %q in %v", want, got)
		}
	}
	if len(got) != 4 {
		t.Errorf("expected 4 distinct variants, got %v", got)
	}
	if got := envKeyVariants("NAME"); !slices.Equal(got, []string{"name"}) {
		t.Errorf("got %v", got)
	}
}

func validConfig() Config {
	cfg := Config{Demo: DemoConfig{Items: []int{1, 2, 3}}}
	cfg.ApplyDefaults()
	return cfg
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := validConfig()
	if cfg.Name != "asyncit" {
		t.Errorf("name: got %q", cfg.Name)
	}
	if cfg.Environment != "development" || !cfg.Debug {
		t.Errorf("expected development with debug, got %q debug=%v", cfg.Environment, cfg.Debug)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("development should default to debug logging, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.ServiceName != "asyncit" {
		t.Errorf("logging service name: got %q", cfg.Logging.ServiceName)
	}
	if cfg.Demo.Strategy != "partition" {
		t.Errorf("strategy: got %q", cfg.Demo.Strategy)
	}
	if cfg.Tracing.Endpoint != "localhost:4318" || sampleRate(cfg.Tracing) != 1.0 || cfg.Tracing.MetricsInterval != 15*time.Second {
		t.Errorf("tracing defaults: %+v", cfg.Tracing)
	}
}

func sampleRate(c TracingConfig) float64 {
	if c.SampleRate == nil {
		return -1
	}
	return *c.SampleRate
}

func TestConfig_ApplyDefaults_KeepsZeroSampleRate(t *testing.T) {
	const yaml = `
demo:
  items: [1]
tracing:
  sample_rate: 0
`
	var cfg Config
	if err := LoadConfig("asyncit", &cfg, WithConfigFile(writeConfig(t, yaml)), WithEnvPrefix("ASYNCIT_ZERO")); err != nil {
		t.Fatal(err)
	}
	cfg.ApplyDefaults()
	if got := sampleRate(cfg.Tracing); got != 0 {
		t.Errorf("explicit sample_rate 0 should survive defaults, got %v", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfig_ApplyDefaults_NormalizesStrategy(t *testing.T) {
	cfg := Config{Demo: DemoConfig{Items: []int{1}, Strategy: "  Stop_On_First_Error "}}
	cfg.ApplyDefaults()
	if cfg.Demo.Strategy != "stop_on_first_error" {
		t.Errorf("got %q, want stop_on_first_error", cfg.Demo.Strategy)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfig_ApplyDefaults_ProductionKeepsLevel(t *testing.T) {
	cfg := Config{ServiceConfig: ServiceConfig{Name: "svc", Environment: "production"}}
	cfg.ApplyDefaults()
	if cfg.Debug {
		t.Error("expected debug=false for production")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("got level %q, want info", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"no items", func(c *Config) { c.Demo.Items = nil }, "demo.items"},
		{"unknown strategy", func(c *Config) { c.Demo.Strategy = "fail_fast" }, "demo.strategy"},
		{"zero sample rate", func(c *Config) {
			rate := 0.0
			c.Tracing.SampleRate = &rate
		}, ""},
		{"negative skip", func(c *Config) { c.Demo.SkipMultipleOf = -1 }, "demo.skip_multiple_of"},
		{"sample rate above one", func(c *Config) {
			rate := 2.0
			c.Tracing.SampleRate = &rate
		}, "tracing.sample_rate"},
		{"tracing without endpoint", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Endpoint = ""
		}, "tracing.endpoint"},
		{"bad environment", func(c *Config) { c.Environment = "qa" }, "environment"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging"},
		{"missing name", func(c *Config) { c.Name = "" }, "name: is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("expected INVALID_INPUT, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}
