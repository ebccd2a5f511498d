package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/MAPO-UPTC/mapo-cli/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-project configuration file name.
const ConfigFileName = "mapo.yml"

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a configuration file at an explicit path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration data, expanding ${ENV_VAR} references,
// validating against the embedded schema, and applying defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	if err := validateRaw([]byte(expanded)); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	applyEnvOverrides(&cfg)
	cfg.SetDefaults()
	return &cfg, nil
}

// LoadDefault finds and loads configuration with layered precedence:
//  1. Global config (<user config dir>/mapo/mapo.yml) - base layer
//  2. Project config (mapo.yml, searched upward from the working directory)
//  3. Environment (.env via godotenv, then MAPO_* variables) - overrides all
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads configuration with layered precedence starting from startDir.
func LoadFrom(startDir string) (*Config, error) {
	// .env values become visible to both ${VAR} expansion and MAPO_*
	// overrides. Missing .env files are fine.
	_ = godotenv.Load(filepath.Join(startDir, ".env"))

	var cfg *Config

	// 1. Global config is optional.
	if globalPath := globalConfigPath(); globalPath != "" {
		if data, err := os.ReadFile(globalPath); err == nil {
			expanded := expandEnvVars(string(data))
			var globalCfg Config
			if err := yaml.Unmarshal([]byte(expanded), &globalCfg); err == nil {
				cfg = &globalCfg
			}
		}
	}

	// 2. Project config overrides the global layer field by field.
	if projectPath, err := FindConfigFile(startDir); err == nil {
		data, err := os.ReadFile(projectPath)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
				WithDetail("path", projectPath)
		}
		expanded := expandEnvVars(string(data))
		if err := validateRaw([]byte(expanded)); err != nil {
			return nil, err
		}
		var projectCfg Config
		if err := yaml.Unmarshal([]byte(expanded), &projectCfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file").
				WithDetail("path", projectPath)
		}
		if cfg == nil {
			cfg = &projectCfg
		} else {
			merge(cfg, &projectCfg)
		}
	}

	if cfg == nil {
		cfg = &Config{}
	}

	// 3. Environment wins over both files.
	applyEnvOverrides(cfg)
	cfg.SetDefaults()
	return cfg, nil
}

// validateRaw checks expanded file content against the embedded schema
// before decoding, so typos and wrong types fail loudly instead of being
// half-applied. The optional global layer is not validated here: it may be
// partial by design and merges leniently.
func validateRaw(data []byte) error {
	validator, err := NewSchemaValidator()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create schema validator")
	}
	return validator.ValidateBytes(data)
}

// FindConfigFile walks up from startDir looking for mapo.yml.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ConfigNotFound(ConfigFileName)
		}
		dir = parent
	}
}

// globalConfigPath returns the OS user-level config path, or "".
func globalConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "mapo", ConfigFileName)
}

// merge overlays non-zero fields of src onto dst.
func merge(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}
	if src.API.BaseURL != "" {
		dst.API.BaseURL = src.API.BaseURL
	}
	if src.API.TimeoutSeconds != 0 {
		dst.API.TimeoutSeconds = src.API.TimeoutSeconds
	}
	if src.Sales.PageSize != 0 {
		dst.Sales.PageSize = src.Sales.PageSize
	}
	if src.Currency != "" {
		dst.Currency = src.Currency
	}
	for key, value := range src.Extensions {
		if dst.Extensions == nil {
			dst.Extensions = make(map[string]interface{})
		}
		dst.Extensions[key] = value
	}
}

// applyEnvOverrides layers MAPO_* environment variables over the config.
func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("MAPO_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	if currency := os.Getenv("MAPO_CURRENCY"); currency != "" {
		cfg.Currency = currency
	}
}

// expandEnvVars replaces ${VAR} references with environment values.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}
