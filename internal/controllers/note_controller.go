package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"keepnotes-be/internal/middleware"
	"keepnotes-be/internal/models"
	"keepnotes-be/internal/repository"
	"keepnotes-be/internal/service"
)

type NoteController struct {
	noteService service.NoteService
}

func NewNoteController(noteService service.NoteService) *NoteController {
	return &NoteController{
		noteService: noteService,
	}
}

// CreateNote handles POST /api/v1/notes
func (nc *NoteController) CreateNote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
		return
	}

	var req models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := nc.noteService.CreateNote(user.ID, &req)
	if err != nil {
		log.Printf("ERROR: failed to create note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetNotes handles GET /api/v1/notes
func (nc *NoteController) GetNotes(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
		return
	}

	notes, err := nc.noteService.GetUserNotes(user.ID)
	if err != nil {
		log.Printf("ERROR: failed to fetch notes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notes"})
		return
	}

	c.JSON(http.StatusOK, notes)
}

// UpdateNote handles PUT /api/v1/notes/:noteID
func (nc *NoteController) UpdateNote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
		return
	}

	var req models.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := nc.noteService.UpdateNote(c.Param("noteID"), user.ID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found or not authorized"})
			return
		}
		log.Printf("ERROR: failed to update note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteNote handles DELETE /api/v1/notes/:noteID
func (nc *NoteController) DeleteNote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
		return
	}

	response, err := nc.noteService.DeleteNote(c.Param("noteID"), user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found or not authorized"})
			return
		}
		log.Printf("ERROR: failed to delete note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}

	c.JSON(http.StatusOK, response)
}
