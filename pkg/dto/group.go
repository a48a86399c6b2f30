package dto

import "time"

// Group is a folder-like container for notes. Groups form a forest per
// workspace via ParentID; a nil ParentID marks a root group.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	WorkspaceID string    `json:"workspaceId"`
	UserID      string    `json:"userId"`
	ParentID    *string   `json:"parentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GroupTreeNode is an ephemeral, derived view of a Group inside a built
// tree. It is recomputed on every tree build and never persisted.
type GroupTreeNode struct {
	Group
	Children      []*GroupTreeNode `json:"children"`
	Depth         int              `json:"depth"`
	AncestorNames []string         `json:"ancestorNames"`
}

// DeleteGroupResult reports the outcome of a cascade delete: the group
// itself plus every descendant removed by the service.
type DeleteGroupResult struct {
	DeletedCount int `json:"deletedCount"`
}
