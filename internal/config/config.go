// Package config handles planproof configuration loading and validation.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Variants accepted by the planning API.
const (
	VariantNaive       = "v1_naive"
	VariantStructured  = "v2_structured"
	VariantAgentRepair = "v3_agentic_repair"
)

// Config is the root configuration structure for planproof.
type Config struct {
	// API settings for the planning service
	API APIConfig `yaml:"api" mapstructure:"api"`

	// Plan request defaults
	Plan PlanConfig `yaml:"plan" mapstructure:"plan"`

	// UI settings
	UI UIConfig `yaml:"ui" mapstructure:"ui"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// APIConfig describes how to reach the planning service.
type APIConfig struct {
	// BaseURL is the scheme and host of the planning service.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Endpoint is the plan generation path.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// Timeout bounds one request. Zero waits for the server indefinitely.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// SchemaCheck logs responses that deviate from the published shape.
	SchemaCheck bool `yaml:"schema_check" mapstructure:"schema_check"`
}

// PlanConfig holds defaults applied to empty form fields.
type PlanConfig struct {
	Timezone string `yaml:"timezone" mapstructure:"timezone"`
	Variant  string `yaml:"variant" mapstructure:"variant"`
}

// UIConfig contains dashboard settings.
type UIConfig struct {
	// Theme is the color theme (default, high-contrast).
	Theme string `yaml:"theme" mapstructure:"theme"`

	// MessageInterval is how often the loading message rotates.
	MessageInterval time.Duration `yaml:"message_interval" mapstructure:"message_interval"`

	// DisplayTimezone is the IANA zone used for task times. "Local" uses the
	// machine zone.
	DisplayTimezone string `yaml:"display_timezone" mapstructure:"display_timezone"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// File is an optional log file path. The interactive UI only logs when set.
	File string `yaml:"file" mapstructure:"file"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "http://localhost:8000",
			Endpoint:    "/api/plan",
			SchemaCheck: true,
		},
		Plan: PlanConfig{
			Timezone: "UTC",
			Variant:  VariantNaive,
		},
		UI: UIConfig{
			Theme:           "default",
			MessageInterval: 1800 * time.Millisecond,
			DisplayTimezone: "Local",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url scheme must be http or https, got %q", u.Scheme)
	}
	if !strings.HasPrefix(c.API.Endpoint, "/") {
		return fmt.Errorf("api.endpoint must start with /")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}

	switch c.Plan.Variant {
	case VariantNaive, VariantStructured, VariantAgentRepair:
	default:
		return fmt.Errorf("plan.variant must be one of %s, %s, %s", VariantNaive, VariantStructured, VariantAgentRepair)
	}
	if strings.TrimSpace(c.Plan.Timezone) == "" {
		return fmt.Errorf("plan.timezone is required")
	}

	switch c.UI.Theme {
	case "default", "high-contrast":
	default:
		return fmt.Errorf("ui.theme must be default or high-contrast")
	}
	if c.UI.MessageInterval < 100*time.Millisecond {
		return fmt.Errorf("ui.message_interval must be at least 100ms")
	}
	if _, err := c.DisplayLocation(); err != nil {
		return err
	}

	return nil
}

// DisplayLocation resolves UI.DisplayTimezone.
func (c *Config) DisplayLocation() (*time.Location, error) {
	name := strings.TrimSpace(c.UI.DisplayTimezone)
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("ui.display_timezone: %w", err)
	}
	return loc, nil
}

// PlanURL joins the base URL and endpoint.
func (c *Config) PlanURL() string {
	return strings.TrimRight(c.API.BaseURL, "/") + c.API.Endpoint
}
