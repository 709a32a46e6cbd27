package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/models"
)

// Examples is the repository for blogful_examples.
type Examples struct {
	t table[models.Example]
}

// NewExamples creates an example repository.
func NewExamples(db *DB, observer QueryObserver) *Examples {
	return &Examples{t: table[models.Example]{
		db:       db,
		name:     tableExamples,
		columns:  []string{"id", "title", "content", "style", "date_published", "author"},
		scan:     scanExample,
		observer: orNop(observer),
	}}
}

func scanExample(s rowScanner) (models.Example, error) {
	var (
		e      models.Example
		author sql.NullInt64
	)
	if err := s.Scan(&e.ID, &e.Title, &e.Content, &e.Style, &e.DatePublished, &author); err != nil {
		return e, err
	}
	if author.Valid {
		e.Author = &author.Int64
	}
	return e, nil
}

func parseExampleID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	return n, err == nil && n > 0
}

// GetAll returns every example.
func (r *Examples) GetAll(ctx context.Context) ([]models.Example, error) {
	return r.t.all(ctx)
}

// GetByID returns the example with the given numeric id.
func (r *Examples) GetByID(ctx context.Context, id string) (models.Example, error) {
	n, ok := parseExampleID(id)
	if !ok {
		return models.Example{}, fmt.Errorf("database: %s: id %q: %w", tableExamples, id, apperr.ErrNotFound)
	}
	return r.t.byID(ctx, n)
}

// Insert stores e and returns the stored row with its generated id and
// date_published.
func (r *Examples) Insert(ctx context.Context, e models.Example) (models.Example, error) {
	values := map[string]any{
		"title":   e.Title,
		"content": e.Content,
		"style":   e.Style,
	}
	if e.ID > 0 {
		values["id"] = e.ID
	}
	if e.Author != nil {
		values["author"] = *e.Author
	}
	if !e.DatePublished.IsZero() {
		values["date_published"] = e.DatePublished.UTC()
	}
	var id int64
	if err := r.t.insert(ctx, values, &id); err != nil {
		return models.Example{}, err
	}
	return r.t.byID(ctx, id)
}

// Update sets the given columns and reports the number of affected rows.
func (r *Examples) Update(ctx context.Context, id string, fields Fields) (int64, error) {
	n, ok := parseExampleID(id)
	if !ok {
		return 0, nil
	}
	return r.t.update(ctx, n, fields)
}

// Delete removes the example.
func (r *Examples) Delete(ctx context.Context, id string) error {
	n, ok := parseExampleID(id)
	if !ok {
		return nil
	}
	return r.t.delete(ctx, n)
}
