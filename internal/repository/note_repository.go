package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"keepnotes-be/internal/entities"
)

// ErrNoteNotFound is returned when a note does not exist or is owned by
// someone else. The two cases are deliberately indistinguishable.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the interface for note database operations
type NoteRepository interface {
	Create(title string, content *string, userID string) (*entities.Note, error)
	GetByUserID(userID string) ([]*entities.Note, error)
	UpdateContent(noteID, userID string, content *string) (*entities.Note, error)
	Delete(noteID, userID string) error
}

type noteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create inserts a new note for the given user
func (r *noteRepository) Create(title string, content *string, userID string) (*entities.Note, error) {
	query := `
		INSERT INTO notes (id, title, content, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, content, user_id, created_at, updated_at
	`

	var note entities.Note
	err := r.db.QueryRow(query, uuid.NewString(), title, content, userID).Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.UserID,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &note, nil
}

// GetByUserID retrieves all notes belonging to a user, newest first
func (r *noteRepository) GetByUserID(userID string) ([]*entities.Note, error) {
	query := `
		SELECT id, title, content, user_id, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	defer rows.Close()

	var notes []*entities.Note
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.UserID,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

// UpdateContent updates a note's content, but only if the note belongs to
// the given user. Ownership is part of the WHERE clause, not a separate read.
func (r *noteRepository) UpdateContent(noteID, userID string, content *string) (*entities.Note, error) {
	query := `
		UPDATE notes
		SET content = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, title, content, user_id, created_at, updated_at
	`

	var note entities.Note
	err := r.db.QueryRow(query, noteID, userID, content).Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.UserID,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &note, nil
}

// Delete removes a note, but only if the note belongs to the given user
func (r *noteRepository) Delete(noteID, userID string) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
