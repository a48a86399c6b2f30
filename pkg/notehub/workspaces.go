package notehub

import (
	"context"
	"net/http"
	"strconv"

	"github.com/notehubapp/notehub-mcp/pkg/client"
	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

// WorkspacesService wraps the /workspace endpoints. The service enforces
// the workspace invariants (at most two per user, exactly one default);
// this side only reads them.
type WorkspacesService struct {
	client *client.Client
}

// List fetches the user's workspaces.
func (s *WorkspacesService) List(ctx context.Context) ([]dto.Workspace, error) {
	return client.FetchAll(ctx, client.DefaultPageSize,
		func(ctx context.Context, page, limit int) ([]dto.Workspace, *dto.Pagination, error) {
			return client.Do[[]dto.Workspace](ctx, s.client, http.MethodGet, "/workspace", nil, client.Query{
				"page":  strconv.Itoa(page),
				"limit": strconv.Itoa(limit),
			})
		})
}

// Get fetches a single workspace by id.
func (s *WorkspacesService) Get(ctx context.Context, id string) (*dto.Workspace, error) {
	workspace, _, err := client.Do[dto.Workspace](ctx, s.client, http.MethodGet, "/workspace/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// Default returns the user's default workspace, or (nil, nil) when the
// listing has none — a soft miss, not an error.
func (s *WorkspacesService) Default(ctx context.Context) (*dto.Workspace, error) {
	workspaces, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range workspaces {
		if workspaces[i].IsDefault {
			return &workspaces[i], nil
		}
	}

	return nil, nil
}
