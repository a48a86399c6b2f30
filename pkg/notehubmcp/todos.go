package notehubmcp

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/notehubapp/notehub-mcp/pkg/notehub"
)

type listTodosParams struct {
	NoteID string `json:"noteId"`
}

func (p listTodosParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.NoteID, validation.Required),
	)
}

type createTodoParams struct {
	NoteID     string `json:"noteId"`
	Text       string `json:"text"`
	LineNumber int    `json:"lineNumber,omitempty"`
}

func (p createTodoParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.NoteID, validation.Required),
		validation.Field(&p.Text, validation.Required, validation.Length(1, 1000)),
		validation.Field(&p.LineNumber, validation.Min(0)),
	)
}

type createTodosParams struct {
	NoteID    string   `json:"noteId"`
	Texts     []string `json:"texts"`
	StartLine int      `json:"startLine,omitempty"`
}

func (p createTodosParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.NoteID, validation.Required),
		validation.Field(&p.Texts,
			validation.Required,
			validation.Length(1, 100),
			validation.Each(validation.Required, validation.Length(1, 1000)),
		),
		validation.Field(&p.StartLine, validation.Min(0)),
	)
}

type updateTodoParams struct {
	ID         string  `json:"id"`
	Text       *string `json:"text,omitempty"`
	Completed  *bool   `json:"completed,omitempty"`
	LineNumber *int    `json:"lineNumber,omitempty"`
}

func (p updateTodoParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Text, validation.Length(1, 1000)),
	)
}

type todoIDParams struct {
	ID string `json:"id"`
}

func (p todoIDParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
	)
}

func (ns *NoteHubServer) NewListTodosTool() {
	tool := mcp.NewTool(
		"list_todos",
		mcp.WithDescription("List the todos of a note"),
		mcp.WithString("noteId",
			mcp.Required(),
			mcp.Description("Parent note id"),
		),
	)

	ns.McpServer.AddTool(tool, ns.ListTodos)
}

func (ns *NoteHubServer) ListTodos(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params listTodosParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	todos, err := ns.services.Todos.List(ctx, params.NoteID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(todos)
}

func (ns *NoteHubServer) NewCreateTodoTool() {
	tool := mcp.NewTool(
		"create_todo",
		mcp.WithDescription("Create a todo on a note"),
		mcp.WithString("noteId",
			mcp.Required(),
			mcp.Description("Parent note id"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Todo text"),
		),
		mcp.WithNumber("lineNumber",
			mcp.Description("Line of the note's content this todo belongs to"),
			mcp.Min(0),
		),
	)

	ns.McpServer.AddTool(tool, ns.CreateTodo)
}

func (ns *NoteHubServer) CreateTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params createTodoParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	todo, err := ns.services.Todos.Create(ctx, notehub.CreateTodoParams{
		NoteID:     params.NoteID,
		Text:       params.Text,
		LineNumber: params.LineNumber,
	})
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(todo)
}

func (ns *NoteHubServer) NewCreateTodosTool() {
	tool := mcp.NewTool(
		"create_todos",
		mcp.WithDescription("Create several todos on a note in one call, numbering lines from startLine. Items that fail are reported individually; the rest are still created"),
		mcp.WithString("noteId",
			mcp.Required(),
			mcp.Description("Parent note id"),
		),
		mcp.WithArray("texts",
			mcp.Required(),
			mcp.Description("One entry per todo"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("startLine",
			mcp.Description("Line number of the first todo (default 0)"),
			mcp.Min(0),
		),
	)

	ns.McpServer.AddTool(tool, ns.CreateTodos)
}

func (ns *NoteHubServer) CreateTodos(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params createTodosParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	results := ns.services.Todos.CreateBatch(ctx, params.NoteID, params.Texts, params.StartLine)
	return ns.successResult(results)
}

func (ns *NoteHubServer) NewUpdateTodoTool() {
	tool := mcp.NewTool(
		"update_todo",
		mcp.WithDescription("Update a todo's text, completion state, or line number"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Todo id"),
		),
		mcp.WithString("text",
			mcp.Description("New text"),
		),
		mcp.WithBoolean("completed",
			mcp.Description("New completion state"),
		),
		mcp.WithNumber("lineNumber",
			mcp.Description("New line number"),
			mcp.Min(0),
		),
	)

	ns.McpServer.AddTool(tool, ns.UpdateTodo)
}

func (ns *NoteHubServer) UpdateTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params updateTodoParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	todo, err := ns.services.Todos.Update(ctx, params.ID, notehub.UpdateTodoParams{
		Text:       params.Text,
		Completed:  params.Completed,
		LineNumber: params.LineNumber,
	})
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(todo)
}

func (ns *NoteHubServer) NewToggleTodoTool() {
	tool := mcp.NewTool(
		"toggle_todo",
		mcp.WithDescription("Flip a todo between done and not done"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Todo id"),
		),
	)

	ns.McpServer.AddTool(tool, ns.ToggleTodo)
}

func (ns *NoteHubServer) ToggleTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params todoIDParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	todo, err := ns.services.Todos.Toggle(ctx, params.ID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(todo)
}

func (ns *NoteHubServer) NewDeleteTodoTool() {
	tool := mcp.NewTool(
		"delete_todo",
		mcp.WithDescription("Delete a todo (soft delete)"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Todo id"),
		),
	)

	ns.McpServer.AddTool(tool, ns.DeleteTodo)
}

func (ns *NoteHubServer) DeleteTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params todoIDParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	todo, err := ns.services.Todos.Delete(ctx, params.ID)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(todo)
}
