package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the archive tables. Safe to call multiple times.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Portable across postgres and sqlite: TEXT/INTEGER columns only.
const schema = `
-- Member documents, written once at registration.
CREATE TABLE IF NOT EXISTS members (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    password TEXT NOT NULL,
    type INTEGER NOT NULL,
    firstname TEXT NOT NULL,
    lastname TEXT NOT NULL,
    nationality TEXT NOT NULL,
    gender INTEGER NOT NULL,
    phonenumber TEXT NOT NULL
);

-- Group documents, written once at creation.
CREATE TABLE IF NOT EXISTS groups (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    name TEXT NOT NULL,
    leader TEXT NOT NULL,
    members TEXT NOT NULL
);
`
