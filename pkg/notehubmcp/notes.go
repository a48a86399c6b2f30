package notehubmcp

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/notehubapp/notehub-mcp/pkg/notehub"
)

type listNotesParams struct {
	WorkspaceID string `json:"workspaceId,omitempty"`
	GroupID     string `json:"groupId,omitempty"`
	IsDeleted   *bool  `json:"isDeleted,omitempty"`
	Search      string `json:"search,omitempty"`
	Sort        string `json:"sort,omitempty"`
}

func (p listNotesParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Search, validation.Length(0, 500)),
		validation.Field(&p.Sort, validation.In(
			"updatedAt:desc", "updatedAt:asc",
			"createdAt:desc", "createdAt:asc",
			"name:asc", "name:desc",
		)),
	)
}

type getNoteParams struct {
	ID string `json:"id"`
}

func (p getNoteParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
	)
}

type createNoteParams struct {
	Name        string `json:"name"`
	Content     string `json:"content,omitempty"`
	WorkspaceID string `json:"workspaceId,omitempty"`
	GroupID     string `json:"groupId,omitempty"`
}

func (p createNoteParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
	)
}

type updateNoteParams struct {
	ID      string  `json:"id"`
	Name    *string `json:"name,omitempty"`
	Content *string `json:"content,omitempty"`
	GroupID *string `json:"groupId,omitempty"`
}

func (p updateNoteParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Length(1, 255)),
	)
}

type appendToNoteParams struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

func (p appendToNoteParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Content, validation.Required),
	)
}

type searchNotesParams struct {
	Query       string `json:"query"`
	WorkspaceID string `json:"workspaceId,omitempty"`
}

func (p searchNotesParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Query, validation.Required, validation.Length(1, 500)),
	)
}

type recentNotesParams struct {
	WorkspaceID string `json:"workspaceId,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}

func (p recentNotesParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Limit, validation.Min(0), validation.Max(100)),
	)
}

type noteStatsParams struct {
	WorkspaceID string `json:"workspaceId,omitempty"`
}

func (ns *NoteHubServer) NewListNotesTool() {
	tool := mcp.NewTool(
		"list_notes",
		mcp.WithDescription("List notes in a workspace, optionally filtered by group, deletion state, or text"),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to list (defaults to the configured workspace)"),
		),
		mcp.WithString("groupId",
			mcp.Description("Only notes inside this group"),
		),
		mcp.WithBoolean("isDeleted",
			mcp.DefaultBool(false),
			mcp.Description("Set true to list the trash view instead of live notes"),
		),
		mcp.WithString("search",
			mcp.Description("Text filter applied by the service"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort order, e.g. updatedAt:desc"),
		),
	)

	ns.McpServer.AddTool(tool, ns.ListNotes)
}

// ListNotes lists notes matching the given filters. The trash is a
// filtered view of the same store, selected with isDeleted=true.
func (ns *NoteHubServer) ListNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params listNotesParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	isDeleted := false
	if params.IsDeleted != nil {
		isDeleted = *params.IsDeleted
	}

	notes, err := ns.services.Notes.List(ctx, notehub.ListNotesOptions{
		WorkspaceID: params.WorkspaceID,
		GroupID:     params.GroupID,
		IsDeleted:   &isDeleted,
		Search:      params.Search,
		Sort:        params.Sort,
	})
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(notes)
}

func (ns *NoteHubServer) NewGetNoteTool() {
	tool := mcp.NewTool(
		"get_note",
		mcp.WithDescription("Get a single note with its full content"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note id"),
		),
	)

	ns.McpServer.AddTool(tool, ns.GetNote)
}

func (ns *NoteHubServer) GetNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params getNoteParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	note, err := ns.services.Notes.Get(ctx, params.ID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(note)
}

func (ns *NoteHubServer) NewCreateNoteTool() {
	tool := mcp.NewTool(
		"create_note",
		mcp.WithDescription("Create a new note"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Note name"),
		),
		mcp.WithString("content",
			mcp.Description("Initial markdown content"),
		),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to create in (defaults to the configured workspace)"),
		),
		mcp.WithString("groupId",
			mcp.Description("Group to place the note in"),
		),
	)

	ns.McpServer.AddTool(tool, ns.CreateNote)
}

func (ns *NoteHubServer) CreateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params createNoteParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	create := notehub.CreateNoteParams{
		Name:        params.Name,
		Content:     params.Content,
		WorkspaceID: params.WorkspaceID,
	}
	if params.GroupID != "" {
		create.GroupID = &params.GroupID
	}

	note, err := ns.services.Notes.Create(ctx, create)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(note)
}

func (ns *NoteHubServer) NewUpdateNoteTool() {
	tool := mcp.NewTool(
		"update_note",
		mcp.WithDescription("Update a note's name, content, or group"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note id"),
		),
		mcp.WithString("name",
			mcp.Description("New name"),
		),
		mcp.WithString("content",
			mcp.Description("Replacement content"),
		),
		mcp.WithString("groupId",
			mcp.Description("New group id"),
		),
	)

	ns.McpServer.AddTool(tool, ns.UpdateNote)
}

func (ns *NoteHubServer) UpdateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params updateNoteParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	note, err := ns.services.Notes.Update(ctx, params.ID, notehub.UpdateNoteParams{
		Name:    params.Name,
		Content: params.Content,
		GroupID: params.GroupID,
	})
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(note)
}

func (ns *NoteHubServer) NewDeleteNoteTool() {
	tool := mcp.NewTool(
		"delete_note",
		mcp.WithDescription("Move a note to the trash (soft delete; the note keeps its id)"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note id"),
		),
	)

	ns.McpServer.AddTool(tool, ns.DeleteNote)
}

func (ns *NoteHubServer) DeleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params getNoteParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	note, err := ns.services.Notes.Delete(ctx, params.ID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(note)
}

func (ns *NoteHubServer) NewAppendToNoteTool() {
	tool := mcp.NewTool(
		"append_to_note",
		mcp.WithDescription("Append content to the end of a note, separated by a blank line"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note id"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Content to append"),
		),
	)

	ns.McpServer.AddTool(tool, ns.AppendToNote)
}

func (ns *NoteHubServer) AppendToNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params appendToNoteParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	note, err := ns.services.Notes.Append(ctx, params.ID, params.Content)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(note)
}

func (ns *NoteHubServer) NewSearchNotesTool() {
	tool := mcp.NewTool(
		"search_notes",
		mcp.WithDescription("Find notes containing the given text, most recently updated first"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search text"),
		),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to search (defaults to the configured workspace)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.SearchNotes)
}

func (ns *NoteHubServer) SearchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params searchNotesParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	notes, err := ns.services.Notes.Search(ctx, params.WorkspaceID, params.Query)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(notes)
}

func (ns *NoteHubServer) NewGetRecentNotesTool() {
	tool := mcp.NewTool(
		"get_recent_notes",
		mcp.WithDescription("List the most recently updated notes, newest first"),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to list (defaults to the configured workspace)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum notes to return (default 10)"),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	ns.McpServer.AddTool(tool, ns.GetRecentNotes)
}

func (ns *NoteHubServer) GetRecentNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params recentNotesParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	notes, err := ns.services.Notes.Recent(ctx, params.WorkspaceID, params.Limit)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(notes)
}

func (ns *NoteHubServer) NewGetNoteStatsTool() {
	tool := mcp.NewTool(
		"get_note_stats",
		mcp.WithDescription("Count a workspace's notes by state (active, deleted, encrypted)"),
		mcp.WithString("workspaceId",
			mcp.Description("Workspace to summarize (defaults to the configured workspace)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.GetNoteStats)
}

func (ns *NoteHubServer) GetNoteStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params noteStatsParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}

	stats, err := ns.services.Notes.Stats(ctx, params.WorkspaceID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(stats)
}
