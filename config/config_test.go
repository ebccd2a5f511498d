package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MAPO-UPTC/mapo-cli/errors"
)

func TestLoadFromBytesDefaults(t *testing.T) {
	t.Setenv("MAPO_API_URL", "")
	t.Setenv("MAPO_CURRENCY", "")

	cfg, err := LoadFromBytes([]byte(`
version: "1.0"
api:
  base_url: https://api.mapo.example
`))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.API.BaseURL != "https://api.mapo.example" {
		t.Errorf("Expected base_url to survive, got %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.API.TimeoutSeconds)
	}
	if cfg.Sales.PageSize != DefaultSalesPageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultSalesPageSize, cfg.Sales.PageSize)
	}
	if cfg.Currency != "COP" {
		t.Errorf("Expected default currency COP, got %q", cfg.Currency)
	}
}

// TestExtensions verifies that custom top-level sections in mapo.yml are
// captured and can be decoded by their owners.
func TestExtensions(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
version: "1.0"
api:
  base_url: https://api.mapo.example

logging:
  level: debug
  to_file: true

tui:
  theme: terminal
`))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Extensions == nil {
		t.Fatal("Extensions map should not be nil")
	}
	if _, ok := cfg.Extensions["logging"]; !ok {
		t.Fatal("Expected 'logging' extension to be present")
	}
	if _, ok := cfg.Extensions["api"]; ok {
		t.Error("Known sections must not leak into Extensions")
	}

	type logCfg struct {
		Level  string `yaml:"level"`
		ToFile bool   `yaml:"to_file"`
	}
	var lc logCfg
	if err := cfg.UnmarshalExtension("logging", &lc); err != nil {
		t.Fatalf("Failed to unmarshal logging extension: %v", err)
	}
	if lc.Level != "debug" || !lc.ToFile {
		t.Errorf("Unexpected logging extension: %+v", lc)
	}

	// Missing keys are not an error; the target stays zero-valued.
	var missing logCfg
	if err := cfg.UnmarshalExtension("unknown", &missing); err != nil {
		t.Fatalf("UnmarshalExtension should not error for missing keys: %v", err)
	}
	if missing.Level != "" {
		t.Errorf("Expected zero value for missing extension, got %+v", missing)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("MAPO_API_URL", "")
	t.Setenv("MAPO_TEST_HOST", "pos.example.org")

	cfg, err := LoadFromBytes([]byte(`
version: "1.0"
api:
  base_url: https://${MAPO_TEST_HOST}
`))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.API.BaseURL != "https://pos.example.org" {
		t.Errorf("Expected env expansion, got %q", cfg.API.BaseURL)
	}

	// Unset variables are left as-is rather than replaced with "".
	cfg, err = LoadFromBytes([]byte(`
version: "1.0"
api:
  base_url: https://${MAPO_TEST_UNSET_HOST}
`))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.API.BaseURL != "https://${MAPO_TEST_UNSET_HOST}" {
		t.Errorf("Expected unset var untouched, got %q", cfg.API.BaseURL)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MAPO_API_URL", "https://override.example")
	t.Setenv("MAPO_CURRENCY", "USD")

	cfg, err := LoadFromBytes([]byte(`
version: "1.0"
api:
  base_url: https://file.example
currency: COP
`))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.API.BaseURL != "https://override.example" {
		t.Errorf("MAPO_API_URL should win over the file, got %q", cfg.API.BaseURL)
	}
	if cfg.Currency != "USD" {
		t.Errorf("MAPO_CURRENCY should win over the file, got %q", cfg.Currency)
	}
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(path, []byte("version: \"1.0\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfigFile(nested)
	if err != nil {
		t.Fatalf("Expected to find config: %v", err)
	}
	if found != path {
		t.Errorf("Expected %s, got %s", path, found)
	}

	if _, err := FindConfigFile(t.TempDir()); err == nil {
		t.Error("Expected an error when no config exists up the tree")
	}
}

func TestLoadFromLayering(t *testing.T) {
	// Point the user config dir at a temp location.
	globalDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", globalDir)
	t.Setenv("MAPO_API_URL", "")
	t.Setenv("MAPO_CURRENCY", "")

	if err := os.MkdirAll(filepath.Join(globalDir, "mapo"), 0o755); err != nil {
		t.Fatal(err)
	}
	globalCfg := []byte(`
version: "1.0"
api:
  base_url: https://global.example
  timeout_seconds: 10
currency: COP
`)
	if err := os.WriteFile(filepath.Join(globalDir, "mapo", ConfigFileName), globalCfg, 0o644); err != nil {
		t.Fatal(err)
	}

	project := t.TempDir()
	projectCfg := []byte(`
version: "1.0"
api:
  base_url: https://project.example
`)
	if err := os.WriteFile(filepath.Join(project, ConfigFileName), projectCfg, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(project)
	if err != nil {
		t.Fatalf("Failed to load layered config: %v", err)
	}

	if cfg.API.BaseURL != "https://project.example" {
		t.Errorf("Project config should override global base_url, got %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 10 {
		t.Errorf("Global timeout should survive when project is silent, got %d", cfg.API.TimeoutSeconds)
	}
	if cfg.Currency != "COP" {
		t.Errorf("Global currency should survive, got %q", cfg.Currency)
	}
}

func TestLoadFromBytesRejectsSchemaViolations(t *testing.T) {
	t.Setenv("MAPO_API_URL", "")

	// Missing the required api section and page_size has the wrong type.
	_, err := LoadFromBytes([]byte(`
version: "1.0"
sales:
  page_size: lots
`))
	if err == nil {
		t.Fatal("Expected a schema validation error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeConfigValidation {
		t.Errorf("Expected %s, got %s", errors.ErrCodeConfigValidation, code)
	}
}

func TestLoadFromRejectsInvalidProjectConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MAPO_API_URL", "")

	project := t.TempDir()
	bad := []byte(`
version: "1.0"
api:
  timeout_seconds: 10
`)
	if err := os.WriteFile(filepath.Join(project, ConfigFileName), bad, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(project)
	if err == nil {
		t.Fatal("Expected validation to reject a config without api.base_url")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeConfigValidation {
		t.Errorf("Expected %s, got %s", errors.ErrCodeConfigValidation, code)
	}
}
