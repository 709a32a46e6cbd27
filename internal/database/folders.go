package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/models"
)

// Folders is the repository for noteful_folders.
type Folders struct {
	t table[models.Folder]
}

// NewFolders creates a folder repository.
func NewFolders(db *DB, observer QueryObserver) *Folders {
	return &Folders{t: table[models.Folder]{
		db:       db,
		name:     tableFolders,
		columns:  []string{"id", "name"},
		scan:     scanFolder,
		observer: orNop(observer),
	}}
}

func scanFolder(s rowScanner) (models.Folder, error) {
	var f models.Folder
	err := s.Scan(&f.ID, &f.Name)
	return f, err
}

// GetAll returns every folder.
func (r *Folders) GetAll(ctx context.Context) ([]models.Folder, error) {
	return r.t.all(ctx)
}

// GetByID returns the folder with the given id.
func (r *Folders) GetByID(ctx context.Context, id string) (models.Folder, error) {
	if !isUUID(id) {
		return models.Folder{}, fmt.Errorf("database: %s: id %q: %w", tableFolders, id, apperr.ErrNotFound)
	}
	return r.t.byID(ctx, id)
}

// Insert stores f and returns the stored row. A new id is generated when f.ID is empty.
func (r *Folders) Insert(ctx context.Context, f models.Folder) (models.Folder, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	var id string
	if err := r.t.insert(ctx, map[string]any{"id": f.ID, "name": f.Name}, &id); err != nil {
		return models.Folder{}, err
	}
	return r.t.byID(ctx, id)
}

// Update sets the given columns and reports the number of affected rows.
func (r *Folders) Update(ctx context.Context, id string, fields Fields) (int64, error) {
	if !isUUID(id) {
		return 0, nil
	}
	return r.t.update(ctx, id, fields)
}

// Delete removes the folder and, through the foreign key, its notes.
func (r *Folders) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	return r.t.delete(ctx, id)
}
