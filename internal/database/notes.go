package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/models"
)

// Notes is the repository for noteful_notes.
type Notes struct {
	t table[models.Note]
}

// NewNotes creates a note repository.
func NewNotes(db *DB, observer QueryObserver) *Notes {
	return &Notes{t: table[models.Note]{
		db:       db,
		name:     tableNotes,
		columns:  []string{"id", "name", "content", "folder_id", "date_modified"},
		scan:     scanNote,
		observer: orNop(observer),
	}}
}

func scanNote(s rowScanner) (models.Note, error) {
	var n models.Note
	err := s.Scan(&n.ID, &n.Name, &n.Content, &n.FolderID, &n.DateModified)
	return n, err
}

// GetAll returns every note.
func (r *Notes) GetAll(ctx context.Context) ([]models.Note, error) {
	return r.t.all(ctx)
}

// GetByID returns the note with the given id.
func (r *Notes) GetByID(ctx context.Context, id string) (models.Note, error) {
	if !isUUID(id) {
		return models.Note{}, fmt.Errorf("database: %s: id %q: %w", tableNotes, id, apperr.ErrNotFound)
	}
	return r.t.byID(ctx, id)
}

// Insert stores n and returns the stored row. date_modified defaults to the
// insert time unless n carries one.
func (r *Notes) Insert(ctx context.Context, n models.Note) (models.Note, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	values := map[string]any{
		"id":        n.ID,
		"name":      n.Name,
		"content":   n.Content,
		"folder_id": n.FolderID,
	}
	if !n.DateModified.IsZero() {
		values["date_modified"] = n.DateModified.UTC()
	}
	var id string
	if err := r.t.insert(ctx, values, &id); err != nil {
		return models.Note{}, err
	}
	return r.t.byID(ctx, id)
}

// Update sets the given columns and reports the number of affected rows.
func (r *Notes) Update(ctx context.Context, id string, fields Fields) (int64, error) {
	if !isUUID(id) {
		return 0, nil
	}
	return r.t.update(ctx, id, fields)
}

// Delete removes the note.
func (r *Notes) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	return r.t.delete(ctx, id)
}
