// Package testutil provides shared test helpers for setting up databases and fixtures.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/noteful/internal/database"
	"github.com/starford/noteful/internal/models"
)

// TestDB opens a SQLite database in a per-test temp directory and closes it on cleanup.
func TestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.DriverSQLite, filepath.Join(t.TempDir(), "noteful-test.db"), database.Options{})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// Folders returns the standard folder fixtures.
func Folders() []models.Folder {
	return []models.Folder{
		{ID: "b0715efe-ffaf-11e8-8eb2-f2801f1b9fd1", Name: "Important"},
		{ID: "b07161a6-ffaf-11e8-8eb2-f2801f1b9fd1", Name: "Super"},
		{ID: "b07162f0-ffaf-11e8-8eb2-f2801f1b9fd1", Name: "Spangley"},
	}
}

// Notes returns the standard note fixtures; they reference Folders.
func Notes() []models.Note {
	day := func(d int) time.Time { return time.Date(2019, 1, d, 23, 0, 0, 0, time.UTC) }
	return []models.Note{
		{ID: "cbc787a0-ffaf-11e8-8eb2-f2801f1b9fd1", Name: "Dogs", Content: "Corporis accusamus placeat quas non voluptas.", FolderID: "b0715efe-ffaf-11e8-8eb2-f2801f1b9fd1", DateModified: day(3)},
		{ID: "d26e0034-ffaf-11e8-8eb2-f2801f1b9fd1", Name: "Cats", Content: "Eos laudantium quia ab blanditiis temporibus necessitatibus.", FolderID: "b07161a6-ffaf-11e8-8eb2-f2801f1b9fd1", DateModified: day(15)},
		{ID: "d26e01a6-ffaf-11e8-8eb2-f2801f1b9fd1", Name: "Pigs", Content: "Occaecati dignissimos quam qui facere deserunt quia.", FolderID: "b07162f0-ffaf-11e8-8eb2-f2801f1b9fd1", DateModified: day(20)},
	}
}

// Examples returns the standard example fixtures without authors.
func Examples() []models.Example {
	published := time.Date(2029, 1, 22, 16, 28, 32, 0, time.UTC)
	return []models.Example{
		{ID: 1, Title: "First test post!", Style: models.StyleHowTo, Content: "Lorem ipsum dolor sit amet.", DatePublished: published},
		{ID: 2, Title: "Second test post!", Style: models.StyleNews, Content: "Consectetur adipisicing elit.", DatePublished: published},
		{ID: 3, Title: "Third test post!", Style: models.StyleListicle, Content: "Possimus, voluptate.", DatePublished: published},
		{ID: 4, Title: "Fourth test post!", Style: models.StyleStory, Content: "Earum molestiae accusamus.", DatePublished: published},
	}
}

// Seed inserts the given rows through repos, failing the test on error.
func Seed(t *testing.T, repos database.Repositories, folders []models.Folder, notes []models.Note, examples []models.Example) {
	t.Helper()
	ctx := context.Background()
	for _, f := range folders {
		if _, err := repos.Folders.Insert(ctx, f); err != nil {
			t.Fatalf("seed folder %s: %v", f.ID, err)
		}
	}
	for _, n := range notes {
		if _, err := repos.Notes.Insert(ctx, n); err != nil {
			t.Fatalf("seed note %s: %v", n.ID, err)
		}
	}
	for _, e := range examples {
		if _, err := repos.Examples.Insert(ctx, e); err != nil {
			t.Fatalf("seed example %d: %v", e.ID, err)
		}
	}
}
