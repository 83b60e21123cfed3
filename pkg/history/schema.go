package history

// SchemaVersion is the current history database schema version.
const SchemaVersion = 1

// Schema creates the parse_history table and its supporting indexes.
const Schema = `
CREATE TABLE IF NOT EXISTS parse_history (
 id TEXT PRIMARY KEY,
 path TEXT NOT NULL,
 success BOOLEAN NOT NULL,
 duration_ms INTEGER NOT NULL,
 tokens INTEGER NOT NULL,
 nodes INTEGER NOT NULL,
 error_message TEXT,
 recorded_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS schema_version (
 version INTEGER PRIMARY KEY,
 applied_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_parse_history_recorded_at ON parse_history(recorded_at);
CREATE INDEX IF NOT EXISTS idx_parse_history_path ON parse_history(path);
CREATE INDEX IF NOT EXISTS idx_parse_history_success ON parse_history(success);
`

// InsertSchemaVersion records a schema version the first time it is applied.
const InsertSchemaVersion = `
INSERT INTO schema_version (version, applied_at)
VALUES (?, datetime('now'))
ON CONFLICT(version) DO NOTHING;
`

// GetSchemaVersion retrieves the highest applied schema version.
const GetSchemaVersion = `
SELECT version FROM schema_version ORDER BY version DESC LIMIT 1;
`
