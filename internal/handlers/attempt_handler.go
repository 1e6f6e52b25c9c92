package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"attempt-service/internal/event"
	"attempt-service/internal/models"
	"attempt-service/internal/service"
)

type AttemptHandler struct {
	Service   *service.AttemptService
	Publisher *event.Publisher
}

func NewAttemptHandler(s *service.AttemptService, p *event.Publisher) *AttemptHandler {
	return &AttemptHandler{Service: s, Publisher: p}
}

type submitAttemptRequest struct {
	AttemptID   string            `json:"attempt_id"`
	Questions   []models.Question `json:"questions"`
	UserAnswers []string          `json:"user_answers"`
	Difficulty  models.Difficulty `json:"difficulty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	var req submitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt := &models.QuizAttempt{
		ID:          req.AttemptID,
		UserID:      c.GetHeader("X-User-ID"),
		Questions:   req.Questions,
		UserAnswers: req.UserAnswers,
		Difficulty:  req.Difficulty,
		CreatedAt:   req.CreatedAt,
	}

	result, err := h.Service.CompleteAttempt(context.Background(), attempt)
	if err != nil {
		status := statusForError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if h.Publisher != nil {
		h.Publisher.Publish(event.AttemptCompleted, gin.H{
			"attempt_id": result.Attempt.ID,
			"user_id":    result.Attempt.UserID,
			"score":      result.Attempt.Score,
			"points":     result.Attempt.PointsEarned,
		})
		if result.LeveledUp {
			h.Publisher.Publish(event.UserLevelUp, gin.H{
				"user_id": result.Attempt.UserID,
				"level":   result.Points.Level,
			})
		}
	}

	c.JSON(http.StatusCreated, result)
}

func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.Service.GetAttempt(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempt)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyScored):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
