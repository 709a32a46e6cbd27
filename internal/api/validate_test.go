package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  requiredSchema
		want []string
	}{
		{"complete note", CreateNoteRequest{Name: ptr("n"), Content: ptr("c"), FolderID: ptr("f")}, nil},
		{"empty strings count as present", CreateNoteRequest{Name: ptr(""), Content: ptr(""), FolderID: ptr("")}, nil},
		{"nothing", CreateNoteRequest{}, []string{"name", "content", "folder_id"}},
		{"declared order", CreateNoteRequest{Content: ptr("c")}, []string{"name", "folder_id"}},
		{"folder", CreateFolderRequest{}, []string{"name"}},
		{"example", CreateExampleRequest{Title: ptr("t")}, []string{"content", "style"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := missingFields(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmptyUpdate(t *testing.T) {
	assert.True(t, emptyUpdate(UpdateExampleRequest{}))
	assert.True(t, emptyUpdate(UpdateExampleRequest{Title: ptr("")}))
	assert.False(t, emptyUpdate(UpdateExampleRequest{Content: ptr("x")}))
	assert.False(t, emptyUpdate(UpdateNoteRequest{FolderID: ptr("x")}))
}

func TestUpdateFields_OnlySupplied(t *testing.T) {
	f := UpdateExampleRequest{Title: ptr("t"), Content: ptr("")}.fields()
	assert.Equal(t, map[string]any{"title": "t", "content": ""}, map[string]any(f))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Missing 'title' in request body", missingFieldMessage("title"))
	assert.Equal(t, "Request body must contain 'name'", emptyUpdateMessage([]string{"name"}))
	assert.Equal(t, "Request body must contain either 'a' or 'b'", emptyUpdateMessage([]string{"a", "b"}))
	assert.Equal(t, "Request body must contain either 'title', 'style' or 'content'",
		emptyUpdateMessage(UpdateExampleRequest{}.updatableFields()))
}
