package store

const schema = `
-- Collections of study items. Items are stored as a JSON document since
-- the core never queries inside them, only reads the list whole.
CREATE TABLE IF NOT EXISTS collections (
    id           TEXT PRIMARY KEY,
    title        TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    prompt_label TEXT NOT NULL DEFAULT '',
    match_label  TEXT NOT NULL DEFAULT '',
    items        TEXT NOT NULL DEFAULT '[]',
    is_built_in  INTEGER NOT NULL DEFAULT 0,
    created_at   INTEGER NOT NULL,
    updated_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_collections_builtin ON collections(is_built_in);
CREATE INDEX IF NOT EXISTS idx_collections_updated ON collections(updated_at);

-- Per (collection, item, direction) scheduling state. The id is the
-- composite key collection_id::item_id::direction.
CREATE TABLE IF NOT EXISTS review_cards (
    id               TEXT PRIMARY KEY,
    item_id          TEXT NOT NULL,
    collection_id    TEXT NOT NULL,
    direction        TEXT NOT NULL,
    ease_factor      REAL NOT NULL,
    interval_days    INTEGER NOT NULL DEFAULT 0,
    repetitions      INTEGER NOT NULL DEFAULT 0,
    next_review_date INTEGER NOT NULL DEFAULT 0,
    correct_count    INTEGER NOT NULL DEFAULT 0,
    incorrect_count  INTEGER NOT NULL DEFAULT 0,
    last_reviewed_at INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_cards_collection_direction ON review_cards(collection_id, direction);
CREATE INDEX IF NOT EXISTS idx_cards_next_review ON review_cards(next_review_date);

-- Completed quiz sessions, append-only. Per-item results are a JSON
-- document, never queried individually.
CREATE TABLE IF NOT EXISTS sessions (
    id              TEXT PRIMARY KEY,
    collection_id   TEXT NOT NULL,
    mode            TEXT NOT NULL,
    direction       TEXT NOT NULL,
    started_at      INTEGER NOT NULL,
    completed_at    INTEGER NOT NULL,
    total_cards     INTEGER NOT NULL,
    correct_count   INTEGER NOT NULL,
    incorrect_count INTEGER NOT NULL,
    item_results    TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_sessions_collection ON sessions(collection_id);
CREATE INDEX IF NOT EXISTS idx_sessions_completed ON sessions(completed_at);

-- Single settings record under a fixed key.
CREATE TABLE IF NOT EXISTS settings (
    id                TEXT PRIMARY KEY,
    new_cards_per_day INTEGER NOT NULL
);
`
