package config

import (
	"github.com/MAPO-UPTC/mapo-cli/errors"
	"github.com/MAPO-UPTC/mapo-cli/schema"
	"gopkg.in/yaml.v3"
)

// SchemaValidator validates raw mapo.yml content against the embedded JSON
// Schema. Validation happens on the generic yaml document rather than the
// decoded Config struct so the schema sees the same keys the file declares.
type SchemaValidator struct {
	validator *schema.Validator
}

// NewSchemaValidator creates a new schema validator, loading the embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{validator: validator}, nil
}

// ValidateBytes validates raw yaml configuration data against the schema.
func (v *SchemaValidator) ValidateBytes(data []byte) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	if err := v.validator.Validate(doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "configuration failed schema validation")
	}
	return nil
}
