// Package models defines the row types stored by noteful.
package models

// Folder is a row of noteful_folders.
type Folder struct {
	ID   string
	Name string
}
