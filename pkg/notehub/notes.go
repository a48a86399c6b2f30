package notehub

import (
	"context"
	"net/http"
	"strconv"

	"github.com/notehubapp/notehub-mcp/pkg/client"
	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

// NotesService wraps the /note endpoints with typed operations.
type NotesService struct {
	client             *client.Client
	defaultWorkspaceID string
}

// ListNotesOptions filters a note listing. A nil IsDeleted returns live
// and trashed notes alike.
type ListNotesOptions struct {
	WorkspaceID string
	GroupID     string
	IsDeleted   *bool
	Search      string
	Sort        string
}

// CreateNoteParams describes a new note.
type CreateNoteParams struct {
	Name        string  `json:"name"`
	Content     string  `json:"content"`
	WorkspaceID string  `json:"workspaceId"`
	GroupID     *string `json:"groupId,omitempty"`
}

// UpdateNoteParams carries a partial note update; nil fields are left
// untouched by the service.
type UpdateNoteParams struct {
	Name    *string `json:"name,omitempty"`
	Content *string `json:"content,omitempty"`
	GroupID *string `json:"groupId,omitempty"`
}

// List fetches every note matching opts across all pages.
func (s *NotesService) List(ctx context.Context, opts ListNotesOptions) ([]dto.Note, error) {
	workspaceID := orDefault(opts.WorkspaceID, s.defaultWorkspaceID)

	return client.FetchAll(ctx, client.DefaultPageSize,
		func(ctx context.Context, page, limit int) ([]dto.Note, *dto.Pagination, error) {
			query := client.Query{
				"workspaceId": workspaceID,
				"groupId":     opts.GroupID,
				"search":      opts.Search,
				"sort":        opts.Sort,
				"page":        strconv.Itoa(page),
				"limit":       strconv.Itoa(limit),
			}
			if opts.IsDeleted != nil {
				query["isDeleted"] = strconv.FormatBool(*opts.IsDeleted)
			}
			return client.Do[[]dto.Note](ctx, s.client, http.MethodGet, "/note", nil, query)
		})
}

// Get fetches a single note by id.
func (s *NotesService) Get(ctx context.Context, id string) (*dto.Note, error) {
	note, _, err := client.Do[dto.Note](ctx, s.client, http.MethodGet, "/note/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// FindByName looks a note up by exact name within a workspace. A miss is
// a soft result: (nil, nil), not an error.
func (s *NotesService) FindByName(ctx context.Context, workspaceID, name string) (*dto.Note, error) {
	notes, err := s.List(ctx, ListNotesOptions{WorkspaceID: workspaceID})
	if err != nil {
		return nil, err
	}

	for i := range notes {
		if notes[i].Name == name {
			return &notes[i], nil
		}
	}

	return nil, nil
}

// Create makes a new note.
func (s *NotesService) Create(ctx context.Context, params CreateNoteParams) (*dto.Note, error) {
	params.WorkspaceID = orDefault(params.WorkspaceID, s.defaultWorkspaceID)

	note, _, err := client.Do[dto.Note](ctx, s.client, http.MethodPost, "/note", params, nil)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Update applies a partial update to a note.
func (s *NotesService) Update(ctx context.Context, id string, params UpdateNoteParams) (*dto.Note, error) {
	note, _, err := client.Do[dto.Note](ctx, s.client, http.MethodPut, "/note/"+id, params, nil)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Delete soft-deletes a note; the record keeps its id and shows up in
// the trash view.
func (s *NotesService) Delete(ctx context.Context, id string) (*dto.Note, error) {
	note, _, err := client.Do[dto.Note](ctx, s.client, http.MethodDelete, "/note/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Append reads the note and writes it back with content added after a
// blank-line separator. Read-then-write: not atomic against a concurrent
// writer, the last update wins at the service.
func (s *NotesService) Append(ctx context.Context, id, content string) (*dto.Note, error) {
	note, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := appendContent(note.Content, content)
	return s.Update(ctx, id, UpdateNoteParams{Content: &merged})
}

// Recent returns the most recently updated notes, newest first.
func (s *NotesService) Recent(ctx context.Context, workspaceID string, limit int) ([]dto.Note, error) {
	if limit <= 0 {
		limit = 10
	}

	notes, _, err := client.Do[[]dto.Note](ctx, s.client, http.MethodGet, "/note", nil, client.Query{
		"workspaceId": orDefault(workspaceID, s.defaultWorkspaceID),
		"sort":        "updatedAt:desc",
		"page":        "1",
		"limit":       strconv.Itoa(limit),
	})
	return notes, err
}

// Search filters notes by text, newest first.
func (s *NotesService) Search(ctx context.Context, workspaceID, query string) ([]dto.Note, error) {
	return s.List(ctx, ListNotesOptions{
		WorkspaceID: workspaceID,
		Search:      query,
		Sort:        "updatedAt:desc",
	})
}

// Stats counts the workspace's notes by state from a full listing.
func (s *NotesService) Stats(ctx context.Context, workspaceID string) (*dto.NoteStats, error) {
	notes, err := s.List(ctx, ListNotesOptions{WorkspaceID: workspaceID})
	if err != nil {
		return nil, err
	}

	stats := &dto.NoteStats{Total: len(notes)}
	for _, note := range notes {
		if note.IsDeleted {
			stats.Deleted++
		} else {
			stats.Active++
		}
		if note.IsEncrypted {
			stats.Encrypted++
		}
	}

	return stats, nil
}

func appendContent(existing, addition string) string {
	if existing == "" {
		return addition
	}
	return existing + "\n\n" + addition
}
