package dto

import "time"

// Todo is a checkbox item tied to a line of its parent note's markdown
// content. LineNumber keeps the association for checkbox sync.
type Todo struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	NoteID      string     `json:"noteId"`
	LineNumber  int        `json:"lineNumber"`
	IsDeleted   bool       `json:"isDeleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
