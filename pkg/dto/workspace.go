package dto

// ContentCounts carries the per-resource totals the service reports on a
// workspace listing.
type ContentCounts struct {
	Notes  int `json:"notes"`
	Groups int `json:"groups"`
	Todos  int `json:"todos"`
}

// Workspace is the top-level isolation boundary for a user's content.
// The service enforces at most two per user, exactly one default, and the
// default workspace cannot be deleted.
type Workspace struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	UserID        string         `json:"userId"`
	IsDefault     bool           `json:"isDefault"`
	ContentCounts *ContentCounts `json:"contentCounts,omitempty"`
}
