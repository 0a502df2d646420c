package config

import (
	"fmt"
	"slices"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Config for issues. Returns nil if valid.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.Database.Host == "" {
		issues = append(issues, ValidationIssue{
			Path:    "database.host",
			Message: "host is required",
		})
	}
	if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
		issues = append(issues, ValidationIssue{
			Path:    "database.port",
			Message: fmt.Sprintf("port must be 1-65535, got %d", cfg.Database.Port),
		})
	}
	if cfg.Database.Graph == "" {
		issues = append(issues, ValidationIssue{
			Path:    "database.graph",
			Message: "graph name is required",
		})
	}

	if cfg.Browser.Port < 1 || cfg.Browser.Port > 65535 {
		issues = append(issues, ValidationIssue{
			Path:    "browser.port",
			Message: fmt.Sprintf("port must be 1-65535, got %d", cfg.Browser.Port),
		})
	}

	validBinds := []string{"all", "loopback", "custom"}
	if cfg.Browser.Bind != "" && !slices.Contains(validBinds, cfg.Browser.Bind) {
		issues = append(issues, ValidationIssue{
			Path:    "browser.bind",
			Message: fmt.Sprintf("must be one of %v, got %q", validBinds, cfg.Browser.Bind),
		})
	}
	if cfg.Browser.Bind == "custom" && cfg.Browser.CustomBindHost == "" {
		issues = append(issues, ValidationIssue{
			Path:    "browser.customBindHost",
			Message: "required when bind is custom",
		})
	}

	validStores := []string{"sqlite", "memory"}
	if cfg.History.Store != "" && !slices.Contains(validStores, cfg.History.Store) {
		issues = append(issues, ValidationIssue{
			Path:    "history.store",
			Message: fmt.Sprintf("must be one of %v, got %q", validStores, cfg.History.Store),
		})
	}
	if cfg.History.Limit < 0 {
		issues = append(issues, ValidationIssue{
			Path:    "history.limit",
			Message: fmt.Sprintf("must not be negative, got %d", cfg.History.Limit),
		})
	}

	validLogLevels := []string{"silent", "fatal", "error", "warn", "info", "debug", "trace"}
	if cfg.Logging.Level != "" && !slices.Contains(validLogLevels, cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Logging.Level),
		})
	}

	return issues
}
