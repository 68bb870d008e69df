package entities

import "time"

// Note represents a note entity in the database
type Note struct {
	ID        string    `json:"id"` // UUID
	Title     string    `json:"title"`
	Content   *string   `json:"content,omitempty"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
