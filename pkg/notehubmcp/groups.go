package notehubmcp

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mark3labs/mcp-go/mcp"
)

type listGroupsParams struct {
	WorkspaceID string `json:"workspaceId,omitempty"`
}

type groupIDParams struct {
	ID string `json:"id"`
}

func (p groupIDParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
	)
}

type groupPathParams struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspaceId,omitempty"`
}

func (p groupPathParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
	)
}

type childGroupsParams struct {
	ParentID    string `json:"parentId,omitempty"`
	WorkspaceID string `json:"workspaceId,omitempty"`
}

type createGroupParams struct {
	Name        string `json:"name"`
	WorkspaceID string `json:"workspaceId,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
}

func (p createGroupParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
	)
}

type renameGroupParams struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (p renameGroupParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
	)
}

type moveGroupParams struct {
	ID          string `json:"id"`
	NewParentID string `json:"newParentId,omitempty"`
}

func (p moveGroupParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
	)
}

type createGroupPathParams struct {
	Names       []string `json:"names"`
	WorkspaceID string   `json:"workspaceId,omitempty"`
}

func (p createGroupPathParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Names,
			validation.Required,
			validation.Length(1, 20),
			validation.Each(validation.Required, validation.Length(1, 255)),
		),
	)
}

func (ns *NoteHubServer) NewListGroupsTool() {
	tool := mcp.NewTool(
		"list_groups",
		mcp.WithDescription("List every group in a workspace as a flat list"),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to list (defaults to the configured workspace)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.ListGroups)
}

func (ns *NoteHubServer) ListGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params listGroupsParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}

	groups, err := ns.services.Groups.List(ctx, params.WorkspaceID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(groups)
}

func (ns *NoteHubServer) NewGetGroupTreeTool() {
	tool := mcp.NewTool(
		"get_group_tree",
		mcp.WithDescription("Get a workspace's groups as a nested tree with depth and ancestor names"),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to build the tree for (defaults to the configured workspace)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.GetGroupTree)
}

// GetGroupTree rebuilds the forest from a fresh snapshot on every call;
// there is no cached tree.
func (ns *NoteHubServer) GetGroupTree(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params listGroupsParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}

	tree, err := ns.services.Groups.Tree(ctx, params.WorkspaceID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(tree)
}

func (ns *NoteHubServer) NewGetGroupPathTool() {
	tool := mcp.NewTool(
		"get_group_path",
		mcp.WithDescription("Get the root-first chain of group names leading to a group. Returns an empty path for an unknown id"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Group id"),
		),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to search (defaults to the configured workspace)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.GetGroupPath)
}

func (ns *NoteHubServer) GetGroupPath(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params groupPathParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	path, err := ns.services.Groups.Path(ctx, params.ID, params.WorkspaceID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(path)
}

func (ns *NoteHubServer) NewGetChildGroupsTool() {
	tool := mcp.NewTool(
		"get_child_groups",
		mcp.WithDescription("List the direct children of a group, or root-level groups when no parent is given"),
		mcp.WithString("parentId",
			mcp.Description("Parent group id (omit for root-level groups)"),
		),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to list (defaults to the configured workspace)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.GetChildGroups)
}

func (ns *NoteHubServer) GetChildGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params childGroupsParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}

	groups, err := ns.services.Groups.ListChildren(ctx, params.WorkspaceID, params.ParentID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(groups)
}

func (ns *NoteHubServer) NewCreateGroupTool() {
	tool := mcp.NewTool(
		"create_group",
		mcp.WithDescription("Create a group, optionally nested under a parent group"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Group name"),
		),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to create in (defaults to the configured workspace)"),
		),
		mcp.WithString("parentId",
			mcp.Description("Parent group id (omit for a root group)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.CreateGroup)
}

func (ns *NoteHubServer) CreateGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params createGroupParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	var parentID *string
	if params.ParentID != "" {
		parentID = &params.ParentID
	}

	group, err := ns.services.Groups.Create(ctx, params.Name, params.WorkspaceID, parentID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(group)
}

func (ns *NoteHubServer) NewRenameGroupTool() {
	tool := mcp.NewTool(
		"rename_group",
		mcp.WithDescription("Rename a group in place"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Group id"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("New name"),
		),
	)

	ns.McpServer.AddTool(tool, ns.RenameGroup)
}

func (ns *NoteHubServer) RenameGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params renameGroupParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	group, err := ns.services.Groups.Rename(ctx, params.ID, params.Name)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(group)
}

func (ns *NoteHubServer) NewMoveGroupTool() {
	tool := mcp.NewTool(
		"move_group",
		mcp.WithDescription("Move a group under a new parent, or to the root when no parent is given. The service rejects moves that would create a cycle or cross workspaces"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Group id to move"),
		),
		mcp.WithString("newParentId",
			mcp.Description("Destination parent id (omit to move to root)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.MoveGroup)
}

func (ns *NoteHubServer) MoveGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params moveGroupParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	var newParent *string
	if params.NewParentID != "" {
		newParent = &params.NewParentID
	}

	group, err := ns.services.Groups.Move(ctx, params.ID, newParent)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(group)
}

func (ns *NoteHubServer) NewDeleteGroupTool() {
	tool := mcp.NewTool(
		"delete_group",
		mcp.WithDescription("Delete a group and every group nested beneath it. Returns the number of groups removed"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Group id"),
		),
	)

	ns.McpServer.AddTool(tool, ns.DeleteGroup)
}

func (ns *NoteHubServer) DeleteGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params groupIDParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	result, err := ns.services.Groups.Delete(ctx, params.ID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(result)
}

func (ns *NoteHubServer) NewCreateGroupPathTool() {
	tool := mcp.NewTool(
		"create_group_path",
		mcp.WithDescription("Materialize a chain of nested groups from root-first names, reusing groups that already exist. Safe to call repeatedly with the same path"),
		mcp.WithArray("names",
			mcp.Required(),
			mcp.Description("Group names from root to leaf, e.g. [\"Projects\", \"2026\", \"Q3\"]"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to create in (defaults to the configured workspace)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.CreateGroupPath)
}

func (ns *NoteHubServer) CreateGroupPath(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params createGroupPathParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	groups, err := ns.services.Groups.CreatePath(ctx, params.Names, params.WorkspaceID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(groups)
}
