package models

import "time"

// NoteResponse represents a single note in API responses
type NoteResponse struct {
	NoteID      string    `json:"note_id"`
	NoteTitle   string    `json:"note_title"`
	NoteContent *string   `json:"note_content,omitempty"`
	UserID      string    `json:"user_id"`
	CreatedOn   time.Time `json:"created_on"`
	LastUpdate  time.Time `json:"last_update"`
}

// NoteMutationResponse acknowledges a create/update/delete operation
type NoteMutationResponse struct {
	Message string `json:"message"`
	NoteID  string `json:"note_id"`
}
