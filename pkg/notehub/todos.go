package notehub

import (
	"context"
	"net/http"
	"strconv"

	"github.com/notehubapp/notehub-mcp/pkg/client"
	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

// TodosService wraps the /todo endpoints.
type TodosService struct {
	client *client.Client
}

// CreateTodoParams describes a new todo. LineNumber ties it to a line of
// the parent note's content.
type CreateTodoParams struct {
	NoteID     string `json:"noteId"`
	Text       string `json:"text"`
	LineNumber int    `json:"lineNumber"`
}

// UpdateTodoParams carries a partial todo update.
type UpdateTodoParams struct {
	Text       *string `json:"text,omitempty"`
	Completed  *bool   `json:"completed,omitempty"`
	LineNumber *int    `json:"lineNumber,omitempty"`
}

// BatchTodoResult is the per-item outcome of a bulk create. Exactly one
// of Todo and Error is set.
type BatchTodoResult struct {
	Todo  *dto.Todo `json:"todo,omitempty"`
	Error string    `json:"error,omitempty"`
}

// List fetches every todo of a note across all pages.
func (s *TodosService) List(ctx context.Context, noteID string) ([]dto.Todo, error) {
	return client.FetchAll(ctx, client.DefaultPageSize,
		func(ctx context.Context, page, limit int) ([]dto.Todo, *dto.Pagination, error) {
			return client.Do[[]dto.Todo](ctx, s.client, http.MethodGet, "/todo", nil, client.Query{
				"noteId": noteID,
				"page":   strconv.Itoa(page),
				"limit":  strconv.Itoa(limit),
			})
		})
}

// Get fetches a single todo by id.
func (s *TodosService) Get(ctx context.Context, id string) (*dto.Todo, error) {
	todo, _, err := client.Do[dto.Todo](ctx, s.client, http.MethodGet, "/todo/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// Create makes a new todo.
func (s *TodosService) Create(ctx context.Context, params CreateTodoParams) (*dto.Todo, error) {
	todo, _, err := client.Do[dto.Todo](ctx, s.client, http.MethodPost, "/todo", params, nil)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// CreateBatch creates one todo per text, sequentially, numbering lines
// from startLine. An individual failure is recorded in that item's
// result and the loop keeps going; it never aborts the batch.
func (s *TodosService) CreateBatch(ctx context.Context, noteID string, texts []string, startLine int) []BatchTodoResult {
	results := make([]BatchTodoResult, 0, len(texts))

	for i, text := range texts {
		todo, err := s.Create(ctx, CreateTodoParams{
			NoteID:     noteID,
			Text:       text,
			LineNumber: startLine + i,
		})
		if err != nil {
			results = append(results, BatchTodoResult{Error: err.Error()})
			continue
		}
		results = append(results, BatchTodoResult{Todo: todo})
	}

	return results
}

// Update applies a partial update to a todo.
func (s *TodosService) Update(ctx context.Context, id string, params UpdateTodoParams) (*dto.Todo, error) {
	todo, _, err := client.Do[dto.Todo](ctx, s.client, http.MethodPut, "/todo/"+id, params, nil)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// Toggle reads a todo and writes back the inverted completed flag. The
// service stamps completedAt. Read-then-write, so concurrent toggles
// race; the last write wins.
func (s *TodosService) Toggle(ctx context.Context, id string) (*dto.Todo, error) {
	todo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	inverted := !todo.Completed
	return s.Update(ctx, id, UpdateTodoParams{Completed: &inverted})
}

// Delete soft-deletes a todo.
func (s *TodosService) Delete(ctx context.Context, id string) (*dto.Todo, error) {
	todo, _, err := client.Do[dto.Todo](ctx, s.client, http.MethodDelete, "/todo/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}
