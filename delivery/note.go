package delivery

import (
	"net/http"
	"strconv"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"github.com/amit-3245/Secure-Notes-API/middleware"
	"github.com/amit-3245/Secure-Notes-API/utils"
	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	noteUC domain.NoteUseCase
}

func NewNoteHandler(r *gin.Engine, noteUC domain.NoteUseCase, jwtManager *utils.JWTManager) {
	handler := &NoteHandler{noteUC: noteUC}

	notes := r.Group("/notes")
	notes.Use(middleware.Authorize(jwtManager))
	{
		notes.POST("", handler.Create)
		notes.GET("", handler.List)
		notes.GET("/:id", handler.Get)
		notes.PUT("/:id", handler.Update)
		notes.DELETE("/:id", handler.Delete)
	}
}

type NoteRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

func noteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid note id",
		})
		return 0, false
	}
	return uint(id), true
}

func (h *NoteHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	note, err := h.noteUC.CreateNote(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		status := statusForError(err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to create note",
			"error":   messageForError(err, status),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": note})
}

func (h *NoteHandler) List(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	notes, err := h.noteUC.GetNotes(c.Request.Context(), userID)
	if err != nil {
		status := statusForError(err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to fetch notes",
			"error":   messageForError(err, status),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": notes})
}

func (h *NoteHandler) Get(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)
	id, ok := noteID(c)
	if !ok {
		return
	}

	note, err := h.noteUC.GetNote(c.Request.Context(), userID, id)
	if err != nil {
		status := statusForError(err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to fetch note",
			"error":   messageForError(err, status),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": note})
}

func (h *NoteHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)
	id, ok := noteID(c)
	if !ok {
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	note, err := h.noteUC.UpdateNote(c.Request.Context(), userID, id, req.Title, req.Content)
	if err != nil {
		status := statusForError(err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to update note",
			"error":   messageForError(err, status),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": note})
}

func (h *NoteHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)
	id, ok := noteID(c)
	if !ok {
		return
	}

	if err := h.noteUC.DeleteNote(c.Request.Context(), userID, id); err != nil {
		status := statusForError(err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to delete note",
			"error":   messageForError(err, status),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "note deleted"})
}
