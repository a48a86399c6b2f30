package notehub

import (
	"context"
	"net/http"
	"strconv"

	"github.com/notehubapp/notehub-mcp/pkg/client"
	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

// rootParentValue is the wire sentinel for "no parent" in list filters.
const rootParentValue = "null"

// GroupsService exposes group CRUD plus the hierarchy operations. The
// remote service is the sole authority on cycle prevention and
// cross-workspace move rejection; this side only shapes requests and
// derives trees from snapshots.
type GroupsService struct {
	client             *client.Client
	defaultWorkspaceID string
}

type createGroupRequest struct {
	Name        string  `json:"name"`
	WorkspaceID string  `json:"workspaceId"`
	ParentID    *string `json:"parentId,omitempty"`
}

type renameGroupRequest struct {
	Name string `json:"name"`
}

// moveGroupRequest always serializes parentId so a move to root carries
// an explicit JSON null.
type moveGroupRequest struct {
	ParentID *string `json:"parentId"`
}

// List fetches every group in the workspace across all pages.
func (s *GroupsService) List(ctx context.Context, workspaceID string) ([]dto.Group, error) {
	workspaceID = orDefault(workspaceID, s.defaultWorkspaceID)

	return client.FetchAll(ctx, client.DefaultPageSize,
		func(ctx context.Context, page, limit int) ([]dto.Group, *dto.Pagination, error) {
			return client.Do[[]dto.Group](ctx, s.client, http.MethodGet, "/group", nil, client.Query{
				"workspaceId": workspaceID,
				"page":        strconv.Itoa(page),
				"limit":       strconv.Itoa(limit),
			})
		})
}

// ListChildren fetches the direct children of parentID; an empty
// parentID selects root-level groups.
func (s *GroupsService) ListChildren(ctx context.Context, workspaceID, parentID string) ([]dto.Group, error) {
	workspaceID = orDefault(workspaceID, s.defaultWorkspaceID)
	if parentID == "" {
		parentID = rootParentValue
	}

	return client.FetchAll(ctx, client.DefaultPageSize,
		func(ctx context.Context, page, limit int) ([]dto.Group, *dto.Pagination, error) {
			return client.Do[[]dto.Group](ctx, s.client, http.MethodGet, "/group", nil, client.Query{
				"workspaceId": workspaceID,
				"parentId":    parentID,
				"page":        strconv.Itoa(page),
				"limit":       strconv.Itoa(limit),
			})
		})
}

// Get fetches a single group by id.
func (s *GroupsService) Get(ctx context.Context, id string) (*dto.Group, error) {
	group, _, err := client.Do[dto.Group](ctx, s.client, http.MethodGet, "/group/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Create makes a new group under parentID (nil for root).
func (s *GroupsService) Create(ctx context.Context, name, workspaceID string, parentID *string) (*dto.Group, error) {
	body := createGroupRequest{
		Name:        name,
		WorkspaceID: orDefault(workspaceID, s.defaultWorkspaceID),
		ParentID:    parentID,
	}

	group, _, err := client.Do[dto.Group](ctx, s.client, http.MethodPost, "/group", body, nil)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Rename changes a group's name in place.
func (s *GroupsService) Rename(ctx context.Context, id, name string) (*dto.Group, error) {
	group, _, err := client.Do[dto.Group](ctx, s.client, http.MethodPut, "/group/"+id, renameGroupRequest{Name: name}, nil)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Move reparents a group. A nil newParentID moves it to root. No
// client-side hierarchy validation happens here.
func (s *GroupsService) Move(ctx context.Context, id string, newParentID *string) (*dto.Group, error) {
	group, _, err := client.Do[dto.Group](ctx, s.client, http.MethodPut, "/group/"+id, moveGroupRequest{ParentID: newParentID}, nil)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Delete removes a group and, by service-side cascade, its descendants.
// The returned count covers the group itself plus everything beneath it.
func (s *GroupsService) Delete(ctx context.Context, id string) (*dto.DeleteGroupResult, error) {
	result, _, err := client.Do[dto.DeleteGroupResult](ctx, s.client, http.MethodDelete, "/group/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Tree fetches the workspace's groups and builds a fresh forest.
func (s *GroupsService) Tree(ctx context.Context, workspaceID string) ([]*dto.GroupTreeNode, error) {
	groups, err := s.List(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return BuildTree(groups), nil
}

// Path resolves the root-first name chain for a group. An unknown id
// yields an empty path, not an error; the caller decides how to surface
// that.
func (s *GroupsService) Path(ctx context.Context, groupID, workspaceID string) ([]string, error) {
	groups, err := s.List(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return PathFor(groupID, groups), nil
}

// CreatePath materializes a chain of nested groups from root-first
// names, reusing an existing child on a case-sensitive exact name match
// and creating it otherwise. Strictly sequential: each step's group
// becomes the next step's parent. Calling it again with the same input
// reuses every group it made, so a failed invocation is retried from the
// start; groups created before the failure stay in place.
func (s *GroupsService) CreatePath(ctx context.Context, names []string, workspaceID string) ([]dto.Group, error) {
	workspaceID = orDefault(workspaceID, s.defaultWorkspaceID)

	result := make([]dto.Group, 0, len(names))
	var currentParent *string

	for _, name := range names {
		parentID := ""
		if currentParent != nil {
			parentID = *currentParent
		}

		siblings, err := s.ListChildren(ctx, workspaceID, parentID)
		if err != nil {
			return nil, err
		}

		var match *dto.Group
		for i := range siblings {
			if siblings[i].Name == name {
				match = &siblings[i]
				break
			}
		}

		if match == nil {
			created, err := s.Create(ctx, name, workspaceID, currentParent)
			if err != nil {
				return nil, err
			}
			match = created
		}

		result = append(result, *match)
		id := match.ID
		currentParent = &id
	}

	return result, nil
}
