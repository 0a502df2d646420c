package history

// migration represents a single schema migration.
type migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered list of all schema migrations.
var migrations = []migration{
	{
		Version: 1,
		Name:    "create queries",
		SQL: `
			CREATE TABLE queries (
				id           TEXT PRIMARY KEY,
				query        TEXT NOT NULL,
				status       TEXT NOT NULL,
				error        TEXT NOT NULL DEFAULT '',
				row_count    INTEGER NOT NULL DEFAULT 0,
				duration_ms  INTEGER NOT NULL DEFAULT 0,
				executed_at  TEXT NOT NULL DEFAULT (datetime('now'))
			);

			CREATE INDEX idx_queries_executed ON queries (executed_at DESC);
		`,
	},
}
