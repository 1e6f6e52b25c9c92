package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"attempt-service/internal/event"
	"attempt-service/internal/service"
)

type SavedQuizHandler struct {
	Service   *service.SavedQuizService
	Publisher *event.Publisher
}

func NewSavedQuizHandler(s *service.SavedQuizService, p *event.Publisher) *SavedQuizHandler {
	return &SavedQuizHandler{Service: s, Publisher: p}
}

type saveQuizRequest struct {
	AttemptID string `json:"attempt_id" binding:"required"`
	Notes     string `json:"notes"`
}

func (h *SavedQuizHandler) SaveQuiz(c *gin.Context) {
	var req saveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.Service.SaveQuiz(context.Background(), c.GetHeader("X-User-ID"), req.AttemptID, req.Notes)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	if h.Publisher != nil {
		h.Publisher.Publish(event.QuizSaved, gin.H{
			"user_id":    saved.UserID,
			"attempt_id": saved.AttemptID,
		})
	}

	c.JSON(http.StatusCreated, saved)
}

func (h *SavedQuizHandler) GetSavedQuizzes(c *gin.Context) {
	saved, err := h.Service.GetSavedQuizzes(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *SavedQuizHandler) DeleteSavedQuiz(c *gin.Context) {
	err := h.Service.DeleteSavedQuiz(context.Background(), c.Param("id"), c.GetHeader("X-User-ID"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Saved quiz deleted"})
}
