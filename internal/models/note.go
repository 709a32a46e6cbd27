package models

import "time"

// Note is a row of noteful_notes.
type Note struct {
	ID           string
	Name         string
	Content      string
	FolderID     string
	DateModified time.Time
}
