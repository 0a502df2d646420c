// Package smoke exercises a FalkorDB driver end to end: connect, count,
// create a test node, read it back, delete it, close.
package smoke

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cognitivecopilot/graphkit/internal/graph"
	"github.com/cognitivecopilot/graphkit/internal/logging"
)

const testNodeName = "FalkorDB_Test"

// Runner executes the smoke test steps in order, printing a checkpoint per
// step. The first failing step aborts the rest.
type Runner struct {
	driver graph.Driver
	out    io.Writer
	log    *logging.Logger
	now    func() time.Time
}

// New creates a runner writing checkpoints to out.
func New(driver graph.Driver, out io.Writer, log *logging.Logger) *Runner {
	return &Runner{
		driver: driver,
		out:    out,
		log:    log.Sub("smoke"),
		now:    time.Now,
	}
}

// Run performs the five smoke test steps. It returns the first error
// encountered; remaining steps are skipped. A test node created before a
// later step fails is left behind (matching the tooling this replaces).
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Testing FalkorDB Integration")
	fmt.Fprintln(r.out, "==================================================")

	fmt.Fprintln(r.out, "1. Testing FalkorDB connection...")
	if err := r.driver.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	fmt.Fprintln(r.out, "2. Running health check...")
	res, err := r.driver.Query(ctx, "MATCH (n) RETURN count(n) as node_count", nil)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	var count any = 0
	if res.Count() > 0 {
		count = res.Rows[0]["node_count"]
	}
	fmt.Fprintf(r.out, "   SUCCESS Connected! Current node count: %v\n", count)

	fmt.Fprintln(r.out, "3. Creating test node...")
	timestamp := r.now().UTC().Format(time.RFC3339)
	_, err = r.driver.Query(ctx,
		"CREATE (test:TestNode {name: $name, timestamp: $timestamp})",
		map[string]any{"name": testNodeName, "timestamp": timestamp},
	)
	if err != nil {
		return fmt.Errorf("creating test node: %w", err)
	}
	fmt.Fprintln(r.out, "   SUCCESS Test node created")

	fmt.Fprintln(r.out, "4. Querying test node...")
	res, err = r.driver.Query(ctx,
		"MATCH (test:TestNode {name: $name}) RETURN test.name, test.timestamp",
		map[string]any{"name": testNodeName},
	)
	if err != nil {
		return fmt.Errorf("querying test node: %w", err)
	}
	if res.Count() > 0 {
		fmt.Fprintf(r.out, "   SUCCESS Found test node: %v\n", res.Rows[0])
	}

	fmt.Fprintln(r.out, "5. Cleaning up test data...")
	if _, err := r.driver.Query(ctx, "MATCH (test:TestNode) DELETE test", nil); err != nil {
		return fmt.Errorf("cleaning up: %w", err)
	}
	fmt.Fprintln(r.out, "   SUCCESS Test data cleaned up")

	if err := r.driver.Close(); err != nil {
		return fmt.Errorf("closing driver: %w", err)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "All tests passed! FalkorDB is working correctly with Graphiti.")
	r.log.Info().Msg("smoke test passed")
	return nil
}
