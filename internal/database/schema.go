package database

import (
	"context"
	"fmt"
)

// Table names.
const (
	tableFolders  = "noteful_folders"
	tableNotes    = "noteful_notes"
	tableUsers    = "blogful_users"
	tableExamples = "blogful_examples"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS noteful_folders (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS noteful_notes (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		content       TEXT NOT NULL DEFAULT '',
		folder_id     TEXT NOT NULL REFERENCES noteful_folders(id) ON DELETE CASCADE,
		date_modified DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_noteful_notes_folder ON noteful_notes(folder_id)`,
	`CREATE TABLE IF NOT EXISTS blogful_users (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		fullname     TEXT NOT NULL,
		username     TEXT NOT NULL UNIQUE,
		nickname     TEXT,
		date_created DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS blogful_examples (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		title          TEXT NOT NULL,
		content        TEXT NOT NULL,
		style          TEXT NOT NULL CHECK (style IN ('Listicle', 'How-to', 'News', 'Interview', 'Story')),
		date_published DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		author         INTEGER REFERENCES blogful_users(id) ON DELETE SET NULL
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS noteful_folders (
		id   UUID PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS noteful_notes (
		id            UUID PRIMARY KEY,
		name          TEXT NOT NULL,
		content       TEXT NOT NULL DEFAULT '',
		folder_id     UUID NOT NULL REFERENCES noteful_folders(id) ON DELETE CASCADE,
		date_modified TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_noteful_notes_folder ON noteful_notes(folder_id)`,
	`CREATE TABLE IF NOT EXISTS blogful_users (
		id           INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
		fullname     TEXT NOT NULL,
		username     TEXT NOT NULL UNIQUE,
		nickname     TEXT,
		date_created TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS blogful_examples (
		id             INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
		title          TEXT NOT NULL,
		content        TEXT NOT NULL,
		style          TEXT NOT NULL CHECK (style IN ('Listicle', 'How-to', 'News', 'Interview', 'Story')),
		date_published TIMESTAMPTZ NOT NULL DEFAULT now(),
		author         INTEGER REFERENCES blogful_users(id) ON DELETE SET NULL
	)`,
}

// applySchema creates missing tables. Existing tables are left as they are.
func (db *DB) applySchema(ctx context.Context) error {
	stmts := sqliteSchema
	if db.driver == DriverPostgres {
		stmts = postgresSchema
	}
	for _, stmt := range stmts {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("database: apply schema: %w", err)
		}
	}
	return nil
}
