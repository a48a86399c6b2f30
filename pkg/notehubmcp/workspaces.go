package notehubmcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (ns *NoteHubServer) NewListWorkspacesTool() {
	tool := mcp.NewTool(
		"list_workspaces",
		mcp.WithDescription("List the user's workspaces with their content counts"),
	)

	ns.McpServer.AddTool(tool, ns.ListWorkspaces)
}

func (ns *NoteHubServer) ListWorkspaces(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct{}
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}

	workspaces, err := ns.services.Workspaces.List(ctx)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(workspaces)
}

func (ns *NoteHubServer) NewGetDefaultWorkspaceTool() {
	tool := mcp.NewTool(
		"get_default_workspace",
		mcp.WithDescription("Get the user's default workspace. Returns null data when the listing has no default"),
	)

	ns.McpServer.AddTool(tool, ns.GetDefaultWorkspace)
}

func (ns *NoteHubServer) GetDefaultWorkspace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct{}
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}

	workspace, err := ns.services.Workspaces.Default(ctx)
	if err != nil {
		return ns.failureResult(req, err)
	}

	// A missing default is a soft miss: success with null data.
	return ns.successResult(workspace)
}
