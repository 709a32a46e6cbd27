// Package serializer maps stored rows to their public JSON shape. Free-text
// fields are sanitized so stored markup cannot execute in a client that
// renders the response as HTML.
package serializer

import (
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/starford/noteful/internal/models"
)

// bluemonday policies are safe for concurrent use once configured.
var policy = bluemonday.UGCPolicy()

var (
	tagPattern    = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*[^<>]*>`)
	markupOpening = regexp.MustCompile(`<([a-zA-Z/!?])`)
	tagEscaper    = strings.NewReplacer("<", "&lt;", ">", "&gt;")
)

// Text sanitizes a free-text value. Tags the policy accepts are kept with
// their unsafe attributes removed and any other tag is escaped so it renders
// as text. Outside tags only a '<' that could open markup is escaped.
func Text(s string) string {
	var b strings.Builder
	last := 0
	for _, loc := range tagPattern.FindAllStringIndex(s, -1) {
		b.WriteString(escapeText(s[last:loc[0]]))
		b.WriteString(sanitizeTag(s[loc[0]:loc[1]]))
		last = loc[1]
	}
	b.WriteString(escapeText(s[last:]))
	return b.String()
}

func escapeText(s string) string {
	return markupOpening.ReplaceAllString(s, "&lt;$1")
}

func sanitizeTag(tag string) string {
	if clean := policy.Sanitize(tag); clean != "" {
		return clean
	}
	return tagEscaper.Replace(tag)
}

// Folder is the public representation of a folder.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Note is the public representation of a note.
type Note struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	FolderID     string    `json:"folder_id"`
	DateModified time.Time `json:"date_modified"`
}

// Example is the public representation of an example post.
type Example struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Style         string    `json:"style"`
	DatePublished time.Time `json:"date_published"`
	Author        *int64    `json:"author"`
}

// SerializeFolder maps a folder row.
func SerializeFolder(f models.Folder) Folder {
	return Folder{
		ID:   f.ID,
		Name: Text(f.Name),
	}
}

// SerializeNote maps a note row.
func SerializeNote(n models.Note) Note {
	return Note{
		ID:           n.ID,
		Name:         Text(n.Name),
		Content:      Text(n.Content),
		FolderID:     n.FolderID,
		DateModified: n.DateModified,
	}
}

// SerializeExample maps an example row.
func SerializeExample(e models.Example) Example {
	return Example{
		ID:            e.ID,
		Title:         Text(e.Title),
		Content:       Text(e.Content),
		Style:         e.Style,
		DatePublished: e.DatePublished,
		Author:        e.Author,
	}
}

// Map applies fn to every row. The result is never nil so it encodes as [].
func Map[T, R any](rows []T, fn func(T) R) []R {
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}
