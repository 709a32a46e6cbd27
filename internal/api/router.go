package api

import (
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/noteful/internal/database"
	"github.com/starford/noteful/internal/models"
	"github.com/starford/noteful/internal/serializer"
)

// NewRouter creates a chi router with the resource routes mounted:
// /folders and /notes always, /examples only when withExamples is set.
// A nil repository leaves its resource unmounted.
func NewRouter(repos database.Repositories, errs *ErrorHandler, withExamples bool) chi.Router {
	r := chi.NewRouter()

	if repos.Folders != nil {
		folders := &resource[models.Folder, CreateFolderRequest, UpdateFolderRequest]{
			label:     "Folder",
			repo:      repos.Folders,
			errs:      errs,
			idOf:      func(f models.Folder) string { return f.ID },
			serialize: func(f models.Folder) any { return serializer.SerializeFolder(f) },
		}
		r.Mount("/folders", folders.routes())
	}

	if repos.Notes != nil {
		notes := &resource[models.Note, CreateNoteRequest, UpdateNoteRequest]{
			label:     "Note",
			repo:      repos.Notes,
			errs:      errs,
			idOf:      func(n models.Note) string { return n.ID },
			serialize: func(n models.Note) any { return serializer.SerializeNote(n) },
		}
		r.Mount("/notes", notes.routes())
	}

	if withExamples && repos.Examples != nil {
		examples := &resource[models.Example, CreateExampleRequest, UpdateExampleRequest]{
			label:     "Example",
			repo:      repos.Examples,
			errs:      errs,
			idOf:      func(e models.Example) string { return strconv.FormatInt(e.ID, 10) },
			serialize: func(e models.Example) any { return serializer.SerializeExample(e) },
		}
		r.Mount("/examples", examples.routes())
	}

	return r
}
