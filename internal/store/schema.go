package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS line_items (
    table_name       TEXT NOT NULL,
    section          TEXT NOT NULL DEFAULT '',
    category         TEXT NOT NULL,
    budgeted         TEXT,
    actual_current   TEXT NOT NULL,
    actual_prior     TEXT,
    variance         TEXT,
    variance_pct     REAL,
    yoy_change       TEXT,
    yoy_pct          REAL,
    PRIMARY KEY (table_name, section, category)
);

CREATE TABLE IF NOT EXISTS findings (
    issue            TEXT PRIMARY KEY,
    amount           TEXT,
    amount_note      TEXT,
    description      TEXT NOT NULL,
    impact           TEXT NOT NULL,
    severity         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS compliance (
    requirement      TEXT PRIMARY KEY,
    status           TEXT NOT NULL,
    impact           TEXT NOT NULL,
    remediation      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS soe_transfers (
    entity           TEXT PRIMARY KEY,
    current_transfer TEXT NOT NULL,
    capital_transfer TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS summary (
    metric           TEXT PRIMARY KEY,
    value            TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_line_items_table ON line_items(table_name);
CREATE INDEX IF NOT EXISTS idx_findings_severity ON findings(severity);
`
