package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- One row per extract run, successful or not
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    page_url TEXT NOT NULL,
    host TEXT NOT NULL,
    output_file TEXT,
    status TEXT NOT NULL CHECK (status IN ('success', 'failed')),
    error_type TEXT,             -- fetch_error, extract_error
    error_message TEXT,

    total_characters INTEGER DEFAULT 0,
    total_lines INTEGER DEFAULT 0,
    categories TEXT,             -- comma separated, output order
    entry_count INTEGER DEFAULT 0,

    -- Page metadata
    title TEXT,
    site_name TEXT,
    language TEXT,               -- ISO-639-1
    language_confidence REAL,
    domain_type TEXT,

    content_hash TEXT,           -- sha256 of the written JSON
    extracted_at TEXT NOT NULL   -- RFC 3339
);

CREATE INDEX IF NOT EXISTS idx_runs_extracted_at ON runs(extracted_at);
CREATE INDEX IF NOT EXISTS idx_runs_host ON runs(host);
`
