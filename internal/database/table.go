package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/starford/noteful/internal/apperr"
)

// QueryObserver receives the outcome of every statement a repository issues.
type QueryObserver interface {
	ObserveQuery(table, op string, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveQuery(string, string, time.Duration, error) {}

type rowScanner interface {
	Scan(dest ...any) error
}

// table issues single-statement queries against one table.
type table[T any] struct {
	db       *DB
	name     string
	columns  []string
	scan     func(rowScanner) (T, error)
	observer QueryObserver
}

func (t *table[T]) track(op string) func(error) {
	start := time.Now()
	return func(err error) {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, apperr.ErrNotFound) {
			err = nil
		}
		t.observer.ObserveQuery(t.name, op, time.Since(start), err)
	}
}

func (t *table[T]) wrap(op string, err error) error {
	return fmt.Errorf("database: %s: %s: %w", t.name, op, err)
}

func (t *table[T]) all(ctx context.Context) (out []T, err error) {
	query, args, err := t.db.builder.Select(t.columns...).From(t.name).ToSql()
	if err != nil {
		return nil, t.wrap("build select", err)
	}

	done := t.track("select")
	defer func() { done(err) }()

	rows, err := t.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, t.wrap("select", err)
	}
	defer rows.Close()

	out = []T{}
	for rows.Next() {
		row, err := t.scan(rows)
		if err != nil {
			return nil, t.wrap("scan", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, t.wrap("select", err)
	}
	return out, nil
}

func (t *table[T]) byID(ctx context.Context, id any) (row T, err error) {
	query, args, err := t.db.builder.Select(t.columns...).From(t.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return row, t.wrap("build select", err)
	}

	done := t.track("get")
	defer func() { done(err) }()

	row, err = t.scan(t.db.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return row, fmt.Errorf("database: %s: id %v: %w", t.name, id, apperr.ErrNotFound)
	}
	if err != nil {
		return row, t.wrap("get", err)
	}
	return row, nil
}

// insert stores values and scans the generated primary key into id.
func (t *table[T]) insert(ctx context.Context, values map[string]any, id any) (err error) {
	if err := t.checkColumns(values); err != nil {
		return err
	}
	query, args, err := t.db.builder.Insert(t.name).SetMap(values).Suffix("RETURNING id").ToSql()
	if err != nil {
		return t.wrap("build insert", err)
	}

	done := t.track("insert")
	defer func() { done(err) }()

	if err := t.db.conn.QueryRowContext(ctx, query, args...).Scan(id); err != nil {
		return t.wrap("insert", err)
	}
	return nil
}

func (t *table[T]) update(ctx context.Context, id any, fields Fields) (n int64, err error) {
	if len(fields) == 0 {
		return 0, nil
	}
	if err := t.checkColumns(fields); err != nil {
		return 0, err
	}
	query, args, err := t.db.builder.Update(t.name).SetMap(fields).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, t.wrap("build update", err)
	}

	done := t.track("update")
	defer func() { done(err) }()

	res, err := t.db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, t.wrap("update", err)
	}
	n, err = res.RowsAffected()
	if err != nil {
		return 0, t.wrap("update", err)
	}
	return n, nil
}

func (t *table[T]) delete(ctx context.Context, id any) (err error) {
	query, args, err := t.db.builder.Delete(t.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return t.wrap("build delete", err)
	}

	done := t.track("delete")
	defer func() { done(err) }()

	if _, err := t.db.conn.ExecContext(ctx, query, args...); err != nil {
		return t.wrap("delete", err)
	}
	return nil
}

// checkColumns rejects column names the table does not declare; squirrel
// writes map keys into the statement verbatim.
func (t *table[T]) checkColumns(values map[string]any) error {
	for col := range values {
		if !slices.Contains(t.columns, col) {
			return fmt.Errorf("database: %s: unknown column %q", t.name, col)
		}
	}
	return nil
}
