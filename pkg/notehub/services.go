// Package notehub layers typed resource facades and the group hierarchy
// engine over the raw NoteHub client. Every operation works from a fresh
// remote read; nothing is cached between calls.
package notehub

import (
	"github.com/notehubapp/notehub-mcp/pkg/client"
)

// Services bundles one facade per resource kind, all sharing a client
// and the optional default workspace.
type Services struct {
	Notes      *NotesService
	Groups     *GroupsService
	Todos      *TodosService
	Workspaces *WorkspacesService
	Calendar   *CalendarService
}

// NewServices wires the facades. defaultWorkspaceID may be empty; calls
// that need a workspace then require one explicitly.
func NewServices(c *client.Client, defaultWorkspaceID string) *Services {
	notes := &NotesService{client: c, defaultWorkspaceID: defaultWorkspaceID}

	return &Services{
		Notes:      notes,
		Groups:     &GroupsService{client: c, defaultWorkspaceID: defaultWorkspaceID},
		Todos:      &TodosService{client: c},
		Workspaces: &WorkspacesService{client: c},
		Calendar:   &CalendarService{client: c, notes: notes},
	}
}

func orDefault(workspaceID, fallback string) string {
	if workspaceID == "" {
		return fallback
	}
	return workspaceID
}
