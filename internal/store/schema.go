package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id           INTEGER PRIMARY KEY,
    position     INTEGER NOT NULL,
    kind         TEXT NOT NULL,
    tx_date      TEXT NOT NULL,
    amount       REAL NOT NULL,
    category     TEXT NOT NULL,
    description  TEXT
);

CREATE TABLE IF NOT EXISTS budget_periods (
    id           INTEGER PRIMARY KEY,
    position     INTEGER NOT NULL,
    start_date   TEXT NOT NULL UNIQUE,
    end_date     TEXT NOT NULL,
    total        REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS budget_limits (
    period_id    INTEGER NOT NULL REFERENCES budget_periods(id) ON DELETE CASCADE,
    category     TEXT NOT NULL,
    limit_amount REAL NOT NULL,
    PRIMARY KEY (period_id, category)
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(tx_date);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
`
