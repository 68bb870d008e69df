package models

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	NoteTitle   string  `json:"note_title" binding:"required"`
	NoteContent *string `json:"note_content,omitempty"`
}

// UpdateNoteRequest represents the request body for updating a note's content
type UpdateNoteRequest struct {
	NoteContent *string `json:"note_content"`
}
