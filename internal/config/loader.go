package config

import (
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR_NAME} patterns in strings.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} patterns with environment variable values.
// Unset variables are left unchanged.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

// expandSensitiveFields processes environment variable references in
// credential fields so passwords can be stored as ${ENV_VAR}.
func expandSensitiveFields(cfg *Config) {
	cfg.Database.Username = expandEnvVars(cfg.Database.Username)
	cfg.Database.Password = expandEnvVars(cfg.Database.Password)
}

// LoadDotenv reads a .env file into the process environment. This is an
// explicit bootstrap step invoked once at process start; a missing file is
// not an error.
func LoadDotenv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads the config file, applies environment overrides, and returns
// a merged Config. Missing files produce defaults only.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ConfigError{Message: "failed to parse config: " + err.Error()}
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	expandSensitiveFields(&cfg)
	return cfg, nil
}

// LoadRaw reads the config file into a generic map for path-based access.
func LoadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Message: "failed to parse config: " + err.Error()}
	}
	return raw, nil
}

// SaveRaw writes a generic map back to a YAML config file.
func SaveRaw(path string, raw map[string]any) error {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// applyDefaults fills zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultPort
	}
	if cfg.Database.Graph == "" {
		cfg.Database.Graph = "default_db"
	}
	if cfg.Browser.Port == 0 {
		cfg.Browser.Port = 5000
	}
	if cfg.Browser.Bind == "" {
		cfg.Browser.Bind = "all"
	}
	if cfg.Validator.ConfigPath == "" {
		cfg.Validator.ConfigPath = "opencode.jsonc"
	}
	if cfg.Validator.Root == "" {
		cfg.Validator.Root = "."
	}
	if cfg.History.Store == "" {
		cfg.History.Store = "sqlite"
	}
	if cfg.History.Limit == 0 {
		cfg.History.Limit = 200
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// applyEnvOverrides reads FALKORDB_* and GRAPHKIT_* environment variables
// and overrides config values. The FALKORDB_* names match what the rest of
// the Cognitive-Copilot tooling already uses.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FALKORDB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("FALKORDB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("FALKORDB_USER"); v != "" {
		cfg.Database.Username = v
	}
	if v := os.Getenv("FALKORDB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("FALKORDB_GRAPH"); v != "" {
		cfg.Database.Graph = v
	}
	if v := os.Getenv("GRAPHKIT_BROWSER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Browser.Port = port
		}
	}
	if v := os.Getenv("GRAPHKIT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
