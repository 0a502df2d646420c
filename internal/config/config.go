package config

import "fmt"

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// DefaultPort is the FalkorDB port used when nothing else is configured.
const DefaultPort = 6379

// Defaults returns a Config with sensible defaults applied.
func Defaults() Config {
	return Config{
		Database: DatabaseConfig{
			Host:  "localhost",
			Port:  DefaultPort,
			Graph: "default_db",
		},
		Browser: BrowserConfig{
			Port: 5000,
			Bind: "all",
		},
		Validator: ValidatorConfig{
			ConfigPath: "opencode.jsonc",
			Root:       ".",
		},
		History: HistoryConfig{
			Store: "sqlite",
			Limit: 200,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
