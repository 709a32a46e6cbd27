package database

import (
	"context"

	"github.com/google/uuid"

	"github.com/starford/noteful/internal/models"
)

// Fields holds column values for a partial update, keyed by column name.
type Fields map[string]any

// Repository is the data access contract shared by every table-backed resource.
// GetByID returns an error wrapping apperr.ErrNotFound when no row matches.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Insert(ctx context.Context, row T) (T, error)
	Update(ctx context.Context, id string, fields Fields) (int64, error)
	Delete(ctx context.Context, id string) error
}

var (
	_ Repository[models.Folder]  = (*Folders)(nil)
	_ Repository[models.Note]    = (*Notes)(nil)
	_ Repository[models.Example] = (*Examples)(nil)
)

// Repositories groups the repositories of every resource.
type Repositories struct {
	Folders  Repository[models.Folder]
	Notes    Repository[models.Note]
	Examples Repository[models.Example]
}

// NewRepositories builds all repositories on db. observer may be nil.
func NewRepositories(db *DB, observer QueryObserver) Repositories {
	return Repositories{
		Folders:  NewFolders(db, observer),
		Notes:    NewNotes(db, observer),
		Examples: NewExamples(db, observer),
	}
}

func orNop(o QueryObserver) QueryObserver {
	if o == nil {
		return nopObserver{}
	}
	return o
}

// isUUID accepts only the canonical 36-character form; uuid.Parse also takes
// urn and braced forms that PostgreSQL rejects.
func isUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
