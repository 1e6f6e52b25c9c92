package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"attempt-service/internal/service"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

func (h *ProgressHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.Service.GetDashboard(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *ProgressHandler) GetAttempts(c *gin.Context) {
	attempts, err := h.Service.GetAttempts(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}

func (h *ProgressHandler) GetStreak(c *gin.Context) {
	streak, err := h.Service.GetStreak(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, streak)
}

func (h *ProgressHandler) GetPoints(c *gin.Context) {
	points, err := h.Service.GetPoints(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}
