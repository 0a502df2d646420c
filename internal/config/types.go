package config

// Config is the root configuration for graphkit.
type Config struct {
	Database  DatabaseConfig  `yaml:"database,omitempty"`
	Browser   BrowserConfig   `yaml:"browser,omitempty"`
	Validator ValidatorConfig `yaml:"validator,omitempty"`
	History   HistoryConfig   `yaml:"history,omitempty"`
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
}

// DatabaseConfig holds the FalkorDB connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"` // supports ${ENV_VAR} references
	Graph    string `yaml:"graph,omitempty"`    // graph key to query
}

// BrowserConfig controls the query browser HTTP server.
type BrowserConfig struct {
	Port           int    `yaml:"port,omitempty"`
	Bind           string `yaml:"bind,omitempty"` // "all" | "loopback" | "custom"
	CustomBindHost string `yaml:"customBindHost,omitempty"`
}

// ValidatorConfig controls the opencode configuration validator.
type ValidatorConfig struct {
	ConfigPath string `yaml:"configPath,omitempty"` // path to opencode.jsonc
	Root       string `yaml:"root,omitempty"`       // base directory for file path checks
}

// HistoryConfig controls the browser's query history store.
type HistoryConfig struct {
	Store string `yaml:"store,omitempty"` // "sqlite" | "memory"
	Limit int    `yaml:"limit,omitempty"` // max entries returned per request
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
	File  string `yaml:"file,omitempty"`
}
