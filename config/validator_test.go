package config

import (
	"testing"

	"github.com/MAPO-UPTC/mapo-cli/errors"
)

func TestSchemaValidatorAcceptsValidConfig(t *testing.T) {
	v, err := NewSchemaValidator()
	if err != nil {
		t.Fatalf("Failed to create validator: %v", err)
	}

	err = v.ValidateBytes([]byte(`
version: "1.0"
api:
  base_url: https://api.mapo.example
  timeout_seconds: 15
sales:
  page_size: 50
currency: COP

logging:
  level: debug
`))
	if err != nil {
		t.Errorf("Expected valid config to pass, got: %v", err)
	}
}

func TestSchemaValidatorRejectsInvalidConfig(t *testing.T) {
	v, err := NewSchemaValidator()
	if err != nil {
		t.Fatalf("Failed to create validator: %v", err)
	}

	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing version",
			yaml: `
api:
  base_url: https://api.mapo.example
`,
		},
		{
			name: "missing base_url",
			yaml: `
version: "1.0"
api:
  timeout_seconds: 15
`,
		},
		{
			name: "wrong type for page_size",
			yaml: `
version: "1.0"
api:
  base_url: https://api.mapo.example
sales:
  page_size: many
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected validation to fail")
			}
			if errors.GetCode(err) != errors.ErrCodeConfigValidation {
				t.Errorf("Expected config validation code, got %v", errors.GetCode(err))
			}
		})
	}
}
