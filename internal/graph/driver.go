// Package graph provides a small client for FalkorDB, the graph database
// the Cognitive-Copilot stack runs its knowledge graph on. FalkorDB speaks
// the Redis wire protocol; queries go through GRAPH.QUERY.
package graph

import (
	"context"
	"errors"
)

var (
	ErrNotConnected = errors.New("graph: driver is not connected")
	ErrEmptyQuery   = errors.New("graph: empty query")
)

// Driver is the minimal surface the browser and smoke test need from a
// graph database. Implementations must be safe to Close after a failed
// Connect.
type Driver interface {
	// Connect establishes the underlying connection and verifies it.
	Connect(ctx context.Context) error
	// Query executes a Cypher query with optional parameters.
	Query(ctx context.Context, query string, params map[string]any) (*Result, error)
	// Close releases the connection. Safe to call more than once.
	Close() error
}

// Result is one query's tabular output: ordered column headers and rows
// keyed by header. It is produced once per query and never cached.
type Result struct {
	Headers []string         `json:"headers"`
	Rows    []map[string]any `json:"data"`
}

// Count returns the number of result rows.
func (r *Result) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Empty returns a Result with no rows and no headers, as produced by
// write-only queries.
func Empty() *Result {
	return &Result{Headers: []string{}, Rows: []map[string]any{}}
}
