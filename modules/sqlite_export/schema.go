package sqlite_export

// Kind values stored for non-metric fields; metric rows store model.Kind text.
const (
	kindParameter = "parameter"
	kindPath      = "path"
)

// schema is applied on every export; it is idempotent so one database can
// collect many runs.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	study      TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS record_values (
	run_id       TEXT    NOT NULL REFERENCES runs(id),
	record_index INTEGER NOT NULL,
	field        TEXT    NOT NULL,
	kind         TEXT    NOT NULL,
	value        TEXT,
	PRIMARY KEY (run_id, record_index, field)
);

CREATE INDEX IF NOT EXISTS record_values_field ON record_values (run_id, field);
`
