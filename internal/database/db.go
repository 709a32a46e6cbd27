// Package database provides the relational store behind noteful: connection setup,
// schema bootstrap and one repository per table.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Options tunes the connection pool. Zero values keep the database/sql defaults.
type Options struct {
	MaxOpenConns int
	MaxIdleConns int
}

// DB wraps a sql.DB with a statement builder for its dialect.
type DB struct {
	conn    *sql.DB
	driver  string
	builder sq.StatementBuilderType
}

// Open opens the database, verifies the connection and applies the schema.
func Open(ctx context.Context, driver, dsn string, opts Options) (*DB, error) {
	var builder sq.StatementBuilderType
	switch driver {
	case DriverSQLite:
		dsn = sqliteDSN(dsn)
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	case DriverPostgres:
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", driver)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	db := &DB{conn: conn, driver: driver, builder: builder}
	if err := db.applySchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// sqliteDSN enables WAL, a busy timeout and foreign key enforcement.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
}

// Driver returns the driver name the handle was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}
