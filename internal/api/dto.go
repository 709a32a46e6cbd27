package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/noteful/internal/database"
	"github.com/starford/noteful/internal/models"
)

// Request schemas. Pointer fields distinguish an absent or null value from an
// empty one.

// CreateFolderRequest is the request body for POST /api/folders.
type CreateFolderRequest struct {
	Name *string `json:"name"`
}

// Validate implements validation.Validatable.
func (r CreateFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NotNil),
	)
}

func (CreateFolderRequest) requiredFields() []string { return []string{"name"} }

func (r CreateFolderRequest) toRow() models.Folder {
	return models.Folder{Name: deref(r.Name)}
}

// UpdateFolderRequest is the request body for PATCH /api/folders/{id}.
type UpdateFolderRequest struct {
	Name *string `json:"name"`
}

func (UpdateFolderRequest) updatableFields() []string { return []string{"name"} }

func (r UpdateFolderRequest) values() []any { return []any{r.Name} }

func (r UpdateFolderRequest) fields() database.Fields {
	f := database.Fields{}
	setIfPresent(f, "name", r.Name)
	return f
}

// CreateNoteRequest is the request body for POST /api/notes.
type CreateNoteRequest struct {
	Name     *string `json:"name"`
	Content  *string `json:"content"`
	FolderID *string `json:"folder_id"`
}

// Validate implements validation.Validatable.
func (r CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NotNil),
		validation.Field(&r.Content, validation.NotNil),
		validation.Field(&r.FolderID, validation.NotNil),
	)
}

func (CreateNoteRequest) requiredFields() []string { return []string{"name", "content", "folder_id"} }

func (r CreateNoteRequest) toRow() models.Note {
	return models.Note{
		Name:     deref(r.Name),
		Content:  deref(r.Content),
		FolderID: deref(r.FolderID),
	}
}

// UpdateNoteRequest is the request body for PATCH /api/notes/{id}.
type UpdateNoteRequest struct {
	Name     *string `json:"name"`
	Content  *string `json:"content"`
	FolderID *string `json:"folder_id"`
}

func (UpdateNoteRequest) updatableFields() []string { return []string{"name", "content", "folder_id"} }

func (r UpdateNoteRequest) values() []any { return []any{r.Name, r.Content, r.FolderID} }

func (r UpdateNoteRequest) fields() database.Fields {
	f := database.Fields{}
	setIfPresent(f, "name", r.Name)
	setIfPresent(f, "content", r.Content)
	setIfPresent(f, "folder_id", r.FolderID)
	return f
}

// CreateExampleRequest is the request body for POST /api/examples.
// Author is optional.
type CreateExampleRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Style   *string `json:"style"`
	Author  *int64  `json:"author"`
}

// Validate implements validation.Validatable.
func (r CreateExampleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NotNil),
		validation.Field(&r.Content, validation.NotNil),
		validation.Field(&r.Style, validation.NotNil),
	)
}

func (CreateExampleRequest) requiredFields() []string { return []string{"title", "content", "style"} }

func (r CreateExampleRequest) toRow() models.Example {
	return models.Example{
		Title:   deref(r.Title),
		Content: deref(r.Content),
		Style:   deref(r.Style),
		Author:  r.Author,
	}
}

// UpdateExampleRequest is the request body for PATCH /api/examples/{id}.
type UpdateExampleRequest struct {
	Title   *string `json:"title"`
	Style   *string `json:"style"`
	Content *string `json:"content"`
}

func (UpdateExampleRequest) updatableFields() []string { return []string{"title", "style", "content"} }

func (r UpdateExampleRequest) values() []any { return []any{r.Title, r.Style, r.Content} }

func (r UpdateExampleRequest) fields() database.Fields {
	f := database.Fields{}
	setIfPresent(f, "title", r.Title)
	setIfPresent(f, "style", r.Style)
	setIfPresent(f, "content", r.Content)
	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func setIfPresent(f database.Fields, column string, v *string) {
	if v != nil {
		f[column] = *v
	}
}
