package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultSalesPageSize is the page size used for sales history pagination
// when the config does not override it.
const DefaultSalesPageSize = 20

// Config is the parsed mapo.yml configuration.
type Config struct {
	// Version of the configuration format (e.g. "1.0").
	Version string `yaml:"version" jsonschema:"required,description=Configuration version (e.g. '1.0')"`

	// API configures the backend connection.
	API APIConfig `yaml:"api" jsonschema:"description=Backend connection settings"`

	// Sales configures sales history behavior.
	Sales SalesConfig `yaml:"sales,omitempty" jsonschema:"description=Sales history settings"`

	// Currency is the ISO 4217 code used when formatting totals (default COP).
	Currency string `yaml:"currency,omitempty" jsonschema:"description=Currency code used when formatting totals"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" jsonschema:"-"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	// BaseURL is the root of the MAPO backend, e.g. https://api.mapo.example.
	// Can be overridden with the MAPO_API_URL environment variable.
	BaseURL string `yaml:"base_url" jsonschema:"required,description=Root URL of the MAPO backend"`

	// TimeoutSeconds bounds each request round-trip (default 30).
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty" jsonschema:"description=Per-request timeout in seconds"`
}

// SalesConfig configures sales history behavior.
type SalesConfig struct {
	// PageSize is the limit used for offset pagination (default 20).
	PageSize int `yaml:"page_size,omitempty" jsonschema:"description=Page size for sales history pagination"`
}

// UnmarshalYAML decodes a config, splitting known fields from extension
// sections so tools built on top of the client can carry their own settings.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig struct {
		Version    string                 `yaml:"version"`
		API        APIConfig              `yaml:"api"`
		Sales      SalesConfig            `yaml:"sales,omitempty"`
		Currency   string                 `yaml:"currency,omitempty"`
		Extensions map[string]interface{} `yaml:",inline"`
	}

	var raw rawConfig
	if err := node.Decode(&raw); err != nil {
		return err
	}

	c.Version = raw.Version
	c.API = raw.API
	c.Sales = raw.Sales
	c.Currency = raw.Currency
	c.Extensions = raw.Extensions
	return nil
}

// SetDefaults fills unset fields with their defaults.
func (c *Config) SetDefaults() {
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = 30
	}
	if c.Sales.PageSize == 0 {
		c.Sales.PageSize = DefaultSalesPageSize
	}
	if c.Currency == "" {
		c.Currency = "COP"
	}
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded mapo.yml into the provided target struct. The target must be a
// pointer. This provides a type-safe way for extensions to access their
// custom configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct, keyed by yaml tags.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
