// Package dto holds the wire types exchanged with the NoteHub service.
package dto

// Pagination is the metadata block list endpoints attach to a page of
// results. Some endpoints omit it entirely.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
