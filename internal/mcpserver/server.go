// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes folder and note tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/noteful/internal/apperr"
	"github.com/starford/noteful/internal/database"
	"github.com/starford/noteful/internal/models"
	"github.com/starford/noteful/internal/serializer"
)

// Server wraps the MCP server with the noteful tools.
type Server struct {
	mcp     *server.MCPServer
	folders database.Repository[models.Folder]
	notes   database.Repository[models.Note]
}

// New creates a new MCP server with all tools registered.
func New(repos database.Repositories) *Server {
	s := &Server{folders: repos.Folders, notes: repos.Notes}

	s.mcp = server.NewMCPServer(
		"Noteful",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_folders",
		mcp.WithDescription("List all folders."),
	), s.listFolders)

	s.mcp.AddTool(mcp.NewTool("get_folder",
		mcp.WithDescription("Get a folder by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Folder id (uuid)")),
	), s.getFolder)

	s.mcp.AddTool(mcp.NewTool("create_folder",
		mcp.WithDescription("Create a folder."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Folder name")),
	), s.createFolder)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List all notes, or the notes of one folder."),
		mcp.WithString("folder_id", mcp.Description("Optional folder id to filter by")),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("get_note",
		mcp.WithDescription("Get a note by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Note id (uuid)")),
	), s.getNote)

	s.mcp.AddTool(mcp.NewTool("create_note",
		mcp.WithDescription("Create a note inside an existing folder."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Note name")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note content")),
		mcp.WithString("folder_id", mcp.Required(), mcp.Description("Id of the folder holding the note")),
	), s.createNote)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(out)), nil
}

func lookupError(kind, id string, err error) *mcp.CallToolResult {
	if errors.Is(err, apperr.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("%s not found: %s", kind, id))
	}
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) listFolders(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folders, err := s.folders.GetAll(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(serializer.Map(folders, serializer.SerializeFolder))
}

func (s *Server) getFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	folder, err := s.folders.GetByID(ctx, id)
	if err != nil {
		return lookupError("folder", id, err), nil
	}
	return jsonResult(serializer.SerializeFolder(folder))
}

func (s *Server) createFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	folder, err := s.folders.Insert(ctx, models.Folder{Name: name})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(serializer.SerializeFolder(folder))
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folderID := req.GetString("folder_id", "")

	notes, err := s.notes.GetAll(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if folderID != "" {
		filtered := notes[:0]
		for _, n := range notes {
			if n.FolderID == folderID {
				filtered = append(filtered, n)
			}
		}
		notes = filtered
	}
	return jsonResult(serializer.Map(notes, serializer.SerializeNote))
}

func (s *Server) getNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return lookupError("note", id, err), nil
	}
	return jsonResult(serializer.SerializeNote(note))
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	folderID, err := req.RequireString("folder_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := s.folders.GetByID(ctx, folderID); err != nil {
		return lookupError("folder", folderID, err), nil
	}

	note, err := s.notes.Insert(ctx, models.Note{Name: name, Content: content, FolderID: folderID})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(serializer.SerializeNote(note))
}
