package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"attempt-service/internal/event"
	"attempt-service/internal/generation"
	"attempt-service/internal/models"
)

type GenerationHandler struct {
	Generator generation.ContentGenerator
	Publisher *event.Publisher
}

func NewGenerationHandler(g generation.ContentGenerator, p *event.Publisher) *GenerationHandler {
	return &GenerationHandler{Generator: g, Publisher: p}
}

func (h *GenerationHandler) GenerateQuiz(c *gin.Context) {
	if h.Generator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Quiz generation is not configured"})
		return
	}

	var req generation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyMedium
	}

	questions, err := h.Generator.GenerateQuestions(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.Publisher != nil {
		h.Publisher.Publish(event.QuizGenerated, gin.H{
			"user_id":       c.GetHeader("X-User-ID"),
			"difficulty":    req.Difficulty,
			"num_questions": len(questions),
		})
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
