package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"keepnotes-be/internal/cache"
	"keepnotes-be/internal/entities"
	"keepnotes-be/internal/models"
	"keepnotes-be/internal/repository"
)

// notesCacheTTL bounds staleness if an invalidation is ever missed
const notesCacheTTL = 5 * time.Minute

// NoteService defines the interface for note business logic
type NoteService interface {
	CreateNote(userID string, req *models.CreateNoteRequest) (*models.NoteMutationResponse, error)
	GetUserNotes(userID string) ([]*models.NoteResponse, error)
	UpdateNote(noteID, userID string, req *models.UpdateNoteRequest) (*models.NoteMutationResponse, error)
	DeleteNote(noteID, userID string) (*models.NoteMutationResponse, error)
}

type noteService struct {
	repo  repository.NoteRepository
	cache cache.Cache
	ctx   context.Context
}

// NewNoteService creates a new note service
func NewNoteService(repo repository.NoteRepository, cacheClient cache.Cache) NoteService {
	svc := &noteService{
		repo: repo,
		ctx:  context.Background(),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

func notesCacheKey(userID string) string {
	return fmt.Sprintf("notes:user:%s", userID)
}

// invalidateNotes drops the user's cached note list after a mutation.
// Cache failures are logged, never surfaced; the database already holds
// the truth.
func (s *noteService) invalidateNotes(userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(s.ctx, notesCacheKey(userID)); err != nil {
		log.Printf("Warning: failed to invalidate notes cache for user %s: %v", userID, err)
	}
}

// CreateNote creates a new note owned by the given user
func (s *noteService) CreateNote(userID string, req *models.CreateNoteRequest) (*models.NoteMutationResponse, error) {
	note, err := s.repo.Create(req.NoteTitle, req.NoteContent, userID)
	if err != nil {
		return nil, err
	}

	s.invalidateNotes(userID)

	return &models.NoteMutationResponse{
		Message: "Note created successfully",
		NoteID:  note.ID,
	}, nil
}

// GetUserNotes retrieves all notes belonging to the user, newest first.
// Results are served from Redis when possible.
func (s *noteService) GetUserNotes(userID string) ([]*models.NoteResponse, error) {
	if s.cache != nil {
		var cached []*models.NoteResponse
		if err := s.cache.GetJSON(s.ctx, notesCacheKey(userID), &cached); err == nil {
			return cached, nil
		}
	}

	notes, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, toNoteResponse(note))
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, notesCacheKey(userID), responses, notesCacheTTL); err != nil {
			log.Printf("Warning: failed to cache notes for user %s: %v", userID, err)
		}
	}

	return responses, nil
}

// UpdateNote updates the content of a note owned by the user
func (s *noteService) UpdateNote(noteID, userID string, req *models.UpdateNoteRequest) (*models.NoteMutationResponse, error) {
	note, err := s.repo.UpdateContent(noteID, userID, req.NoteContent)
	if err != nil {
		return nil, err
	}

	s.invalidateNotes(userID)

	return &models.NoteMutationResponse{
		Message: "Note updated successfully",
		NoteID:  note.ID,
	}, nil
}

// DeleteNote deletes a note owned by the user
func (s *noteService) DeleteNote(noteID, userID string) (*models.NoteMutationResponse, error) {
	if err := s.repo.Delete(noteID, userID); err != nil {
		return nil, err
	}

	s.invalidateNotes(userID)

	return &models.NoteMutationResponse{
		Message: "Note deleted successfully",
		NoteID:  noteID,
	}, nil
}

func toNoteResponse(note *entities.Note) *models.NoteResponse {
	return &models.NoteResponse{
		NoteID:      note.ID,
		NoteTitle:   note.Title,
		NoteContent: note.Content,
		UserID:      note.UserID,
		CreatedOn:   note.CreatedAt,
		LastUpdate:  note.UpdatedAt,
	}
}
