package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnotes-be/internal/cache"
	"keepnotes-be/internal/entities"
	"keepnotes-be/internal/models"
	"keepnotes-be/internal/repository"
)

type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[string]*entities.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*entities.Note)}
}

func (r *fakeNoteRepo) Create(title string, content *string, userID string) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	note := &entities.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.notes[note.ID] = note
	return note, nil
}

func (r *fakeNoteRepo) GetByUserID(userID string) ([]*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entities.Note
	for _, note := range r.notes {
		if note.UserID == userID {
			result = append(result, note)
		}
	}
	return result, nil
}

func (r *fakeNoteRepo) UpdateContent(noteID, userID string, content *string) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, exists := r.notes[noteID]
	if !exists || note.UserID != userID {
		return nil, repository.ErrNoteNotFound
	}
	note.Content = content
	note.UpdatedAt = time.Now()
	return note, nil
}

func (r *fakeNoteRepo) Delete(noteID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, exists := r.notes[noteID]
	if !exists || note.UserID != userID {
		return repository.ErrNoteNotFound
	}
	delete(r.notes, noteID)
	return nil
}

// fakeCache records sets and deletes so tests can observe invalidation
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, exists := c.entries[key]
	if !exists {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.entries[key]
	return exists
}

func strptr(s string) *string { return &s }

func TestCreateAndListNotes(t *testing.T) {
	t.Parallel()

	svc := NewNoteService(newFakeNoteRepo(), nil)

	created, err := svc.CreateNote("user-1", &models.CreateNoteRequest{
		NoteTitle:   "groceries",
		NoteContent: strptr("milk, eggs"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Note created successfully", created.Message)
	assert.NotEmpty(t, created.NoteID)

	notes, err := svc.GetUserNotes("user-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "groceries", notes[0].NoteTitle)
	assert.Equal(t, "milk, eggs", *notes[0].NoteContent)
	assert.Equal(t, "user-1", notes[0].UserID)
}

func TestGetUserNotes_OwnershipFiltered(t *testing.T) {
	t.Parallel()

	svc := NewNoteService(newFakeNoteRepo(), nil)

	_, err := svc.CreateNote("user-1", &models.CreateNoteRequest{NoteTitle: "mine"})
	require.NoError(t, err)
	_, err = svc.CreateNote("user-2", &models.CreateNoteRequest{NoteTitle: "theirs"})
	require.NoError(t, err)

	notes, err := svc.GetUserNotes("user-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "mine", notes[0].NoteTitle)
}

func TestUpdateNote_NotOwned(t *testing.T) {
	t.Parallel()

	svc := NewNoteService(newFakeNoteRepo(), nil)

	created, err := svc.CreateNote("user-1", &models.CreateNoteRequest{NoteTitle: "mine"})
	require.NoError(t, err)

	_, err = svc.UpdateNote(created.NoteID, "user-2", &models.UpdateNoteRequest{
		NoteContent: strptr("hijacked"),
	})
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)
}

func TestDeleteNote(t *testing.T) {
	t.Parallel()

	svc := NewNoteService(newFakeNoteRepo(), nil)

	created, err := svc.CreateNote("user-1", &models.CreateNoteRequest{NoteTitle: "temp"})
	require.NoError(t, err)

	resp, err := svc.DeleteNote(created.NoteID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, created.NoteID, resp.NoteID)

	// Deleting again reports not found
	_, err = svc.DeleteNote(created.NoteID, "user-1")
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)
}

func TestGetUserNotes_CacheInvalidation(t *testing.T) {
	t.Parallel()

	fc := newFakeCache()
	svc := NewNoteService(newFakeNoteRepo(), fc)

	_, err := svc.CreateNote("user-1", &models.CreateNoteRequest{NoteTitle: "first"})
	require.NoError(t, err)

	// First list populates the cache
	notes, err := svc.GetUserNotes("user-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.True(t, fc.has("notes:user:user-1"))

	// A mutation drops the cached list
	_, err = svc.CreateNote("user-1", &models.CreateNoteRequest{NoteTitle: "second"})
	require.NoError(t, err)
	assert.False(t, fc.has("notes:user:user-1"))

	notes, err = svc.GetUserNotes("user-1")
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}
