package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the base JSON Schema for the MAPO client
// configuration. It reflects the Config struct from types.go but excludes the
// 'Extensions' field, which stays free-form for tools layered on top.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Extension sections are validated by their owners, not here, so the
		// base schema keeps additional properties open.
		AllowAdditionalProperties: true,
		// Expand struct references instead of using $ref for a cleaner schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	type BaseConfig struct {
		Version  string      `yaml:"version" jsonschema:"required,description=Configuration version (e.g. '1.0')"`
		API      APIConfig   `yaml:"api" jsonschema:"required,description=Backend connection settings"`
		Sales    SalesConfig `yaml:"sales,omitempty" jsonschema:"description=Sales history settings"`
		Currency string      `yaml:"currency,omitempty" jsonschema:"description=Currency code used when formatting totals"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "MAPO Client Configuration"
	schema.Description = "Schema for mapo.yml properties."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
