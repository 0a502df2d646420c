// Package opencode validates the opencode.jsonc configuration that wires
// the Cognitive-Copilot tooling together: MCP servers, specialized agents,
// quick commands, and the file layout they reference.
package opencode

import "encoding/json"

// Document is the parsed opencode configuration. Sections the validator
// only counts are kept raw.
type Document struct {
	MCPServers   map[string]ServerSpec      `json:"mcpServers"`
	Agents       []Agent                    `json:"agents"`
	Instructions json.RawMessage            `json:"instructions"`
	Commands     map[string]json.RawMessage `json:"commands"`
	Environment  map[string]json.RawMessage `json:"environment"`
}

// ServerSpec describes one MCP server connection (stdio or HTTP).
type ServerSpec struct {
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
	URL     string            `json:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Agent is one specialized agent entry; only the name is checked.
type Agent struct {
	Name string `json:"name"`
}

// requiredSections maps section keys to display names, in check order.
var requiredSections = []struct {
	Key  string
	Name string
}{
	{"mcpServers", "MCP Servers"},
	{"agents", "Specialized Agents"},
	{"instructions", "Project Instructions"},
	{"commands", "Quick Commands"},
	{"environment", "Environment Variables"},
}

// expectedServers are the MCP servers the Cognitive-Copilot setup relies on.
var expectedServers = []string{
	"graphiti-memory",
	"sequential-thinking",
	"brave-search",
	"filesystem",
}

// expectedAgents are the specialized agent names that must be defined.
var expectedAgents = []string{
	"Graphiti Knowledge Engineer",
	"Research Assistant",
	"Full Stack Developer",
	"Documentation Specialist",
	"DevOps Engineer",
}

// expectedCommands are the quick commands the setup documentation refers to.
var expectedCommands = []string{
	"setup",
	"test",
	"lint",
	"format",
	"check",
	"start-mcp",
	"stop-mcp",
}

// expectedPaths are files and directories the configuration points at,
// relative to the validator root.
var expectedPaths = []string{
	"graphiti",
	"graphiti/mcp_server",
	"graphiti/mcp_server/graphiti_mcp_server.py",
	"graphiti/AGENTS.md",
	"graphiti/mcp_server/AGENTS.md",
	"graphiti/Makefile",
	"graphiti/pyproject.toml",
}

// expectedDocs are documentation files checked informationally; their
// absence never fails the run.
var expectedDocs = []string{
	"OPENCODE.md",
	"graphiti/README.md",
	"graphiti/AGENTS.md",
	"graphiti/mcp_server/AGENTS.md",
	"graphiti/mcp_server/README.md",
}
