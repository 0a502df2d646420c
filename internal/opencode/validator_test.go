package opencode

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `{
	// MCP server wiring for Cognitive-Copilot
	"mcpServers": {
		"graphiti-memory": {"command": "uv", "args": ["run", "graphiti_mcp_server.py"]},
		"sequential-thinking": {"command": "npx"},
		"brave-search": {"command": "npx", "env": {"BRAVE_API_KEY": "x"}},
		"filesystem": {"url": "http://localhost:3000/mcp"} // note the // in the URL
	},
	"agents": [
		{"name": "Graphiti Knowledge Engineer"},
		{"name": "Research Assistant"},
		{"name": "Full Stack Developer"},
		{"name": "Documentation Specialist"},
		{"name": "DevOps Engineer"}
	],
	"instructions": ["Read AGENTS.md first"],
	"commands": {
		"setup": "make setup",
		"test": "make test",
		"lint": "make lint",
		"format": "make format",
		"check": "make check",
		"start-mcp": "make start-mcp",
		"stop-mcp": "make stop-mcp"
	},
	"environment": {
		"FALKORDB_HOST": "localhost",
		"FALKORDB_PORT": "6379"
	}
}`

// writeFixture creates an opencode.jsonc plus the expected file layout
// under a temp root.
func writeFixture(t *testing.T, config string) *Validator {
	t.Helper()
	root := t.TempDir()

	for _, dir := range []string{"graphiti", "graphiti/mcp_server"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	for _, file := range []string{
		"graphiti/mcp_server/graphiti_mcp_server.py",
		"graphiti/AGENTS.md",
		"graphiti/mcp_server/AGENTS.md",
		"graphiti/Makefile",
		"graphiti/pyproject.toml",
		"OPENCODE.md",
		"graphiti/README.md",
		"graphiti/mcp_server/README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, file), []byte("x"), 0o644))
	}

	path := filepath.Join(root, "opencode.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	return &Validator{ConfigPath: path, Root: root}
}

func allOK(findings []Finding) bool {
	for _, f := range findings {
		if !f.OK {
			return false
		}
	}
	return len(findings) > 0
}

func TestRun_ValidConfig(t *testing.T) {
	v := writeFixture(t, validConfig)
	report := v.Run()

	assert.True(t, report.Passed())
	assert.True(t, report.ConfigFound)
	assert.Empty(t, report.ParseError)
	assert.Empty(t, report.SchemaIssues)
	assert.True(t, allOK(report.Sections))
	assert.True(t, allOK(report.Servers))
	assert.True(t, allOK(report.Agents))
	assert.True(t, allOK(report.Commands))
	assert.True(t, allOK(report.Paths))
	assert.True(t, allOK(report.Docs))
	assert.Equal(t, 4, report.ServerCount)
	assert.Equal(t, 5, report.AgentCount)
	assert.Equal(t, 7, report.CommandCount)
	assert.Equal(t, 2, report.EnvCount)
}

func TestRun_MissingSectionFails(t *testing.T) {
	for _, section := range []string{"mcpServers", "agents", "instructions", "commands", "environment"} {
		t.Run(section, func(t *testing.T) {
			var doc map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(mustStandardize(t, []byte(validConfig)), &doc))
			delete(doc, section)
			data, err := json.Marshal(doc)
			require.NoError(t, err)

			v := writeFixture(t, string(data))
			report := v.Run()
			assert.False(t, report.Passed(), "missing %s should fail", section)
		})
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	v := &Validator{ConfigPath: filepath.Join(t.TempDir(), "opencode.jsonc"), Root: t.TempDir()}
	report := v.Run()
	assert.False(t, report.Passed())
	assert.False(t, report.ConfigFound)
	// The documentation check still runs.
	assert.Len(t, report.Docs, 5)
}

func TestRun_InvalidSyntax(t *testing.T) {
	v := writeFixture(t, `{"mcpServers": {,}`)
	report := v.Run()
	assert.False(t, report.Passed())
	assert.NotEmpty(t, report.ParseError)
}

func TestRun_MissingNamedServerStillPasses(t *testing.T) {
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(mustStandardize(t, []byte(validConfig)), &doc))
	doc["mcpServers"] = json.RawMessage(`{"graphiti-memory": {}}`)
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	v := writeFixture(t, string(data))
	report := v.Run()

	// Missing named entries are reported but section presence alone gates
	// the overall result.
	assert.True(t, report.Passed())
	assert.False(t, allOK(report.Servers))
	assert.Equal(t, 1, report.ServerCount)
}

func TestRun_WrongSectionShapeFails(t *testing.T) {
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(mustStandardize(t, []byte(validConfig)), &doc))
	doc["agents"] = json.RawMessage(`{"not": "a list"}`)
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	v := writeFixture(t, string(data))
	report := v.Run()
	assert.False(t, report.Passed())
}

func TestRun_MissingDocsDoNotFail(t *testing.T) {
	v := writeFixture(t, validConfig)
	require.NoError(t, os.Remove(filepath.Join(v.Root, "OPENCODE.md")))

	report := v.Run()
	assert.True(t, report.Passed(), "documentation check must not affect the result")
	assert.False(t, allOK(report.Docs))
}

func TestRun_MissingPathReported(t *testing.T) {
	v := writeFixture(t, validConfig)
	require.NoError(t, os.Remove(filepath.Join(v.Root, "graphiti/Makefile")))

	report := v.Run()
	assert.True(t, report.Passed())
	assert.False(t, allOK(report.Paths))
}

func TestReport_Print(t *testing.T) {
	v := writeFixture(t, validConfig)
	report := v.Run()

	var buf bytes.Buffer
	report.Print(&buf)
	report.PrintDocs(&buf)

	out := buf.String()
	assert.Contains(t, out, "OK Found MCP Servers section")
	assert.Contains(t, out, "graphiti-memory")
	assert.Contains(t, out, "Configuration Summary")
	assert.Contains(t, out, "Documentation Validation")
}

func mustStandardize(t *testing.T, data []byte) []byte {
	t.Helper()
	out, err := Standardize(data)
	require.NoError(t, err)
	return out
}
