package notehubmcp

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mark3labs/mcp-go/mcp"
)

var dateRule = validation.Date("2006-01-02")

type dailyNoteParams struct {
	Date string `json:"date,omitempty"`
}

func (p dailyNoteParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Date, dateRule),
	)
}

type weeklyNoteParams struct {
	Week int `json:"week,omitempty"`
	Year int `json:"year,omitempty"`
}

func (p weeklyNoteParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Week, validation.Min(0), validation.Max(53)),
		validation.Field(&p.Year, validation.Min(0), validation.Max(9999)),
	)
}

type appendDailyParams struct {
	Date    string `json:"date,omitempty"`
	Content string `json:"content"`
}

func (p appendDailyParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Date, dateRule),
		validation.Field(&p.Content, validation.Required),
	)
}

type appendWeeklyParams struct {
	Week    int    `json:"week,omitempty"`
	Year    int    `json:"year,omitempty"`
	Content string `json:"content"`
}

func (p appendWeeklyParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Week, validation.Min(0), validation.Max(53)),
		validation.Field(&p.Year, validation.Min(0), validation.Max(9999)),
		validation.Field(&p.Content, validation.Required),
	)
}

func (ns *NoteHubServer) NewGetDailyNoteTool() {
	tool := mcp.NewTool(
		"get_daily_note",
		mcp.WithDescription("Get the daily note for a date. The service creates it on first access"),
		mcp.WithString("date",
			mcp.Description("Date as YYYY-MM-DD (defaults to today)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.GetDailyNote)
}

func (ns *NoteHubServer) GetDailyNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params dailyNoteParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	note, err := ns.services.Calendar.Daily(ctx, params.Date)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(note)
}

func (ns *NoteHubServer) NewGetWeeklyNoteTool() {
	tool := mcp.NewTool(
		"get_weekly_note",
		mcp.WithDescription("Get the weekly note for an ISO week. The service creates it on first access"),
		mcp.WithNumber("week",
			mcp.Description("ISO week number 1-53 (defaults to the current week)"),
			mcp.Min(1),
			mcp.Max(53),
		),
		mcp.WithNumber("year",
			mcp.Description("Year (defaults to the current year)"),
		),
	)

	ns.McpServer.AddTool(tool, ns.GetWeeklyNote)
}

func (ns *NoteHubServer) GetWeeklyNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params weeklyNoteParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	note, err := ns.services.Calendar.Weekly(ctx, params.Week, params.Year)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(note)
}

func (ns *NoteHubServer) NewAppendToDailyNoteTool() {
	tool := mcp.NewTool(
		"append_to_daily_note",
		mcp.WithDescription("Append content to the end of a daily note"),
		mcp.WithString("date",
			mcp.Description("Date as YYYY-MM-DD (defaults to today)"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Content to append"),
		),
	)

	ns.McpServer.AddTool(tool, ns.AppendToDailyNote)
}

func (ns *NoteHubServer) AppendToDailyNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params appendDailyParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	note, err := ns.services.Calendar.AppendDaily(ctx, params.Date, params.Content)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(note)
}

func (ns *NoteHubServer) NewAppendToWeeklyNoteTool() {
	tool := mcp.NewTool(
		"append_to_weekly_note",
		mcp.WithDescription("Append content to the end of a weekly note"),
		mcp.WithNumber("week",
			mcp.Description("ISO week number 1-53 (defaults to the current week)"),
			mcp.Min(1),
			mcp.Max(53),
		),
		mcp.WithNumber("year",
			mcp.Description("Year (defaults to the current year)"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Content to append"),
		),
	)

	ns.McpServer.AddTool(tool, ns.AppendToWeeklyNote)
}

func (ns *NoteHubServer) AppendToWeeklyNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params appendWeeklyParams
	if err := bindArguments(req, &params); err != nil {
		return ns.failureResult(req, err)
	}
	if err := params.Validate(); err != nil {
		return ns.failureResult(req, err)
	}

	note, err := ns.services.Calendar.AppendWeekly(ctx, params.Week, params.Year, params.Content)
	if err != nil {
		return ns.failureResult(req, err)
	}

	return ns.successResult(note)
}
