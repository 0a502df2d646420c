package opencode

import (
	"fmt"
	"io"
)

func mark(ok bool) string {
	if ok {
		return "OK"
	}
	return "MISSING"
}

// Print writes the report in the layout the shell wrappers around the
// validator expect: one line per check, then a summary.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "Validating OpenCode Configuration for Cognitive-Copilot")
	fmt.Fprintln(w, "============================================================")

	if !r.ConfigFound {
		fmt.Fprintf(w, "MISSING %s not found\n", r.ConfigPath)
		return
	}
	fmt.Fprintf(w, "OK Found %s\n", r.ConfigPath)

	if r.ParseError != "" {
		fmt.Fprintf(w, "FAIL %s\n", r.ParseError)
		return
	}
	fmt.Fprintln(w, "OK Configuration syntax is valid")

	for _, issue := range r.SchemaIssues {
		fmt.Fprintf(w, "FAIL schema: %s\n", issue)
	}

	for _, f := range r.Sections {
		if f.OK {
			fmt.Fprintf(w, "OK Found %s section\n", f.Name)
		} else {
			fmt.Fprintf(w, "MISSING %s section\n", f.Name)
		}
	}
	if !r.Passed() {
		return
	}

	fmt.Fprintf(w, "\nMCP Servers (%d configured):\n", r.ServerCount)
	for _, f := range r.Servers {
		fmt.Fprintf(w, "  %s %s\n", mark(f.OK), f.Name)
	}

	fmt.Fprintf(w, "\nSpecialized Agents (%d configured):\n", r.AgentCount)
	for _, f := range r.Agents {
		fmt.Fprintf(w, "  %s %s\n", mark(f.OK), f.Name)
	}

	fmt.Fprintln(w, "\nFile Path Validation:")
	for _, f := range r.Paths {
		fmt.Fprintf(w, "  %s %s\n", mark(f.OK), f.Name)
	}

	fmt.Fprintf(w, "\nQuick Commands (%d configured):\n", r.CommandCount)
	for _, f := range r.Commands {
		fmt.Fprintf(w, "  %s %s\n", mark(f.OK), f.Name)
	}

	fmt.Fprintln(w, "\nEnvironment Configuration:")
	fmt.Fprintf(w, "  OK %d environment variables configured\n", r.EnvCount)

	fmt.Fprintln(w, "\nConfiguration Summary:")
	fmt.Fprintf(w, "  - %d MCP servers configured\n", r.ServerCount)
	fmt.Fprintf(w, "  - %d specialized agents defined\n", r.AgentCount)
	fmt.Fprintf(w, "  - %d quick commands available\n", r.CommandCount)
	fmt.Fprintf(w, "  - %d environment variables\n", r.EnvCount)
}

// PrintDocs writes the documentation findings. These never affect the
// exit status.
func (r *Report) PrintDocs(w io.Writer) {
	fmt.Fprintln(w, "\nDocumentation Validation:")
	for _, f := range r.Docs {
		if f.OK {
			fmt.Fprintf(w, "  OK %s\n", f.Name)
		} else {
			fmt.Fprintf(w, "  MISSING %s (not found)\n", f.Name)
		}
	}
}
