package db

import "database/sql"

// MigrateUp creates the finance schema. Statements are idempotent so the
// migration can run at every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    username      VARCHAR(50) NOT NULL UNIQUE,
    email         VARCHAR(254),
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS sources (
    id           BIGSERIAL PRIMARY KEY,
    user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name         VARCHAR(100) NOT NULL,
    year         INT NOT NULL,
    month        INT NOT NULL CHECK (month BETWEEN 1 AND 12),
    amount_cents BIGINT NOT NULL CHECK (amount_cents >= 0),
    status       VARCHAR(20) NOT NULL DEFAULT 'active'
                 CHECK (status IN ('active', 'inactive', 'archived')),
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS expenses (
    id           BIGSERIAL PRIMARY KEY,
    user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    description  VARCHAR(500) NOT NULL,
    category     VARCHAR(50) NOT NULL DEFAULT '',
    amount_cents BIGINT NOT NULL CHECK (amount_cents >= 0),
    year         INT NOT NULL,
    month        INT NOT NULL CHECK (month BETWEEN 1 AND 12),
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS manual_budgets (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    year       INT NOT NULL,
    month      INT NOT NULL CHECK (month BETWEEN 1 AND 12),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (user_id, year, month)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS manual_budget_items (
    id           BIGSERIAL PRIMARY KEY,
    budget_id    BIGINT NOT NULL REFERENCES manual_budgets(id) ON DELETE CASCADE,
    name         VARCHAR(100) NOT NULL,
    amount_cents BIGINT NOT NULL CHECK (amount_cents >= 0)
)`); err != nil {
		return err
	}

	// 月次一覧クエリ用インデックス
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_sources_user_month ON sources(user_id, year, month)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user_month ON expenses(user_id, year, month)`,
		`CREATE INDEX IF NOT EXISTS idx_budget_items_budget_id ON manual_budget_items(budget_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the finance schema, items first to respect foreign keys.
func MigrateDown(db *sql.DB) error {
	drops := []string{
		`DROP TABLE IF EXISTS manual_budget_items`,
		`DROP TABLE IF EXISTS manual_budgets`,
		`DROP TABLE IF EXISTS expenses`,
		`DROP TABLE IF EXISTS sources`,
		`DROP TABLE IF EXISTS users`,
	}
	for _, stmt := range drops {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
