// Package notehubmcp contains the MCP tool implementations that expose
// the NoteHub service to agents. It is the single boundary where
// failures become structured error results; nothing below it panics for
// expected failure modes and nothing above it sees a raw fault.
package notehubmcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/notehubapp/notehub-mcp/pkg/notehub"
)

const (
	serverName    = "notehub-mcp"
	serverVersion = "v1.0.0"
)

type NoteHubServer struct {
	McpServer *server.MCPServer
	services  *notehub.Services
	logger    *zap.Logger
}

func NewNoteHubServer(services *notehub.Services, logger *zap.Logger) *NoteHubServer {
	ns := &NoteHubServer{
		services: services,
		logger:   logger,
	}

	ns.McpServer = server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	ns.addTools()

	return ns
}

// addTools adds all the tools to the server

func (ns *NoteHubServer) addTools() {
	ns.NewListNotesTool()
	ns.NewGetNoteTool()
	ns.NewCreateNoteTool()
	ns.NewUpdateNoteTool()
	ns.NewDeleteNoteTool()
	ns.NewAppendToNoteTool()
	ns.NewSearchNotesTool()
	ns.NewGetRecentNotesTool()
	ns.NewGetNoteStatsTool()

	ns.NewListGroupsTool()
	ns.NewGetGroupTreeTool()
	ns.NewGetGroupPathTool()
	ns.NewGetChildGroupsTool()
	ns.NewCreateGroupTool()
	ns.NewRenameGroupTool()
	ns.NewMoveGroupTool()
	ns.NewDeleteGroupTool()
	ns.NewCreateGroupPathTool()

	ns.NewListTodosTool()
	ns.NewCreateTodoTool()
	ns.NewCreateTodosTool()
	ns.NewUpdateTodoTool()
	ns.NewToggleTodoTool()
	ns.NewDeleteTodoTool()

	ns.NewListWorkspacesTool()
	ns.NewGetDefaultWorkspaceTool()

	ns.NewGetDailyNoteTool()
	ns.NewGetWeeklyNoteTool()
	ns.NewAppendToDailyNoteTool()
	ns.NewAppendToWeeklyNoteTool()
}
