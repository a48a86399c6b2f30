package dto

import "time"

// Note represents a note as stored by the NoteHub service. Deletion is
// soft: the record keeps its id and moves into the trash view.
type Note struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	WorkspaceID string     `json:"workspaceId"`
	GroupID     *string    `json:"groupId,omitempty"`
	IsDeleted   bool       `json:"isDeleted"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
	IsEncrypted bool       `json:"isEncrypted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NoteStats summarizes the notes of a workspace.
type NoteStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Deleted   int `json:"deleted"`
	Encrypted int `json:"encrypted"`
}
