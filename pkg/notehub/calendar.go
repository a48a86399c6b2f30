package notehub

import (
	"context"
	"net/http"
	"strconv"

	"github.com/notehubapp/notehub-mcp/pkg/client"
	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

// CalendarService wraps the derived /daily and /weekly endpoints. Both
// resolve to ordinary notes the service creates on first access.
type CalendarService struct {
	client *client.Client
	notes  *NotesService
}

// Daily fetches the daily note for a YYYY-MM-DD date. An empty date lets
// the service pick today.
func (s *CalendarService) Daily(ctx context.Context, date string) (*dto.Note, error) {
	note, _, err := client.Do[dto.Note](ctx, s.client, http.MethodGet, "/daily", nil, client.Query{
		"date": date,
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Weekly fetches the weekly note for an ISO week and year. Zero values
// are omitted and the service picks the current week.
func (s *CalendarService) Weekly(ctx context.Context, week, year int) (*dto.Note, error) {
	query := client.Query{}
	if week > 0 {
		query["week"] = strconv.Itoa(week)
	}
	if year > 0 {
		query["year"] = strconv.Itoa(year)
	}

	note, _, err := client.Do[dto.Note](ctx, s.client, http.MethodGet, "/weekly", nil, query)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// AppendDaily adds content to the end of a daily note, separated by a
// blank line when the note already has content.
func (s *CalendarService) AppendDaily(ctx context.Context, date, content string) (*dto.Note, error) {
	note, err := s.Daily(ctx, date)
	if err != nil {
		return nil, err
	}

	merged := appendContent(note.Content, content)
	return s.notes.Update(ctx, note.ID, UpdateNoteParams{Content: &merged})
}

// AppendWeekly adds content to the end of a weekly note.
func (s *CalendarService) AppendWeekly(ctx context.Context, week, year int, content string) (*dto.Note, error) {
	note, err := s.Weekly(ctx, week, year)
	if err != nil {
		return nil, err
	}

	merged := appendContent(note.Content, content)
	return s.notes.Update(ctx, note.ID, UpdateNoteParams{Content: &merged})
}
