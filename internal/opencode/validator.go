package opencode

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
)

// Finding is one named check and its outcome.
type Finding struct {
	Name string
	OK   bool
}

// Report is the outcome of a validation run. Only Passed() affects the
// process exit code; the documentation findings are informational.
type Report struct {
	ConfigPath  string
	ConfigFound bool
	ParseError  string

	SchemaIssues []string // structural schema violations
	Sections     []Finding
	Servers      []Finding
	Agents       []Finding
	Commands     []Finding
	Paths        []Finding

	ServerCount  int
	AgentCount   int
	CommandCount int
	EnvCount     int

	Docs []Finding

	schemaOK bool
}

// Passed reports whether the schema check succeeded. The documentation
// check never influences this.
func (r *Report) Passed() bool {
	return r.schemaOK
}

// Validator checks an opencode.jsonc file against the expected layout.
type Validator struct {
	// ConfigPath is the opencode.jsonc location.
	ConfigPath string
	// Root is the base directory for file path checks.
	Root string
}

// Run performs the schema check and the documentation check and returns
// the combined report.
func (v *Validator) Run() *Report {
	report := v.checkConfig()
	v.checkDocs(report)
	return report
}

func (v *Validator) checkConfig() *Report {
	report := &Report{ConfigPath: v.ConfigPath}

	data, err := os.ReadFile(v.ConfigPath)
	if err != nil {
		return report
	}
	report.ConfigFound = true

	std, err := Standardize(data)
	if err != nil {
		report.ParseError = err.Error()
		return report
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(std, &raw); err != nil {
		report.ParseError = err.Error()
		return report
	}

	issues, err := checkSchema(std)
	if err != nil {
		report.ParseError = err.Error()
		return report
	}
	report.SchemaIssues = issues

	allSections := true
	for _, section := range requiredSections {
		_, ok := raw[section.Key]
		report.Sections = append(report.Sections, Finding{Name: section.Name, OK: ok})
		if !ok {
			allSections = false
		}
	}
	// Any missing section or shape violation fails the run; the named-entry
	// checks below are only reached on a structurally sound document.
	if !allSections || len(issues) > 0 {
		return report
	}

	var doc Document
	if err := json.Unmarshal(std, &doc); err != nil {
		report.ParseError = err.Error()
		return report
	}

	report.ServerCount = len(doc.MCPServers)
	for _, name := range expectedServers {
		_, ok := doc.MCPServers[name]
		report.Servers = append(report.Servers, Finding{Name: name, OK: ok})
	}

	report.AgentCount = len(doc.Agents)
	agentNames := make([]string, 0, len(doc.Agents))
	for _, a := range doc.Agents {
		agentNames = append(agentNames, a.Name)
	}
	for _, name := range expectedAgents {
		report.Agents = append(report.Agents, Finding{Name: name, OK: slices.Contains(agentNames, name)})
	}

	report.CommandCount = len(doc.Commands)
	for _, name := range expectedCommands {
		_, ok := doc.Commands[name]
		report.Commands = append(report.Commands, Finding{Name: name, OK: ok})
	}

	for _, rel := range expectedPaths {
		_, err := os.Stat(filepath.Join(v.Root, rel))
		report.Paths = append(report.Paths, Finding{Name: rel, OK: err == nil})
	}

	report.EnvCount = len(doc.Environment)
	report.schemaOK = true
	return report
}

// checkDocs verifies the documentation files exist. Purely informational.
func (v *Validator) checkDocs(report *Report) {
	for _, rel := range expectedDocs {
		_, err := os.Stat(filepath.Join(v.Root, rel))
		report.Docs = append(report.Docs, Finding{Name: rel, OK: err == nil})
	}
}
