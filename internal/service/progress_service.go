package service

import (
	"context"
	"fmt"

	"attempt-service/internal/models"
	"attempt-service/internal/repository"
)

// ProgressService aggregates a user's quiz history and gamification state for
// dashboard reads. Missing streak/points records come back as zero-value
// defaults; records are only created when an attempt is scored.
type ProgressService struct {
	Attempts *repository.AttemptRepository
	Streaks  *repository.StreakRepository
	Points   *repository.PointsRepository
	Users    *repository.UserRepository
	Saved    *repository.SavedQuizRepository
}

func NewProgressService(
	attempts *repository.AttemptRepository,
	streaks *repository.StreakRepository,
	points *repository.PointsRepository,
	users *repository.UserRepository,
	saved *repository.SavedQuizRepository,
) *ProgressService {
	return &ProgressService{
		Attempts: attempts,
		Streaks:  streaks,
		Points:   points,
		Users:    users,
		Saved:    saved,
	}
}

type Dashboard struct {
	User         *models.User         `json:"user"`
	QuizAttempts []models.QuizAttempt `json:"quiz_attempts"`
	Streak       *models.UserStreak   `json:"streak"`
	Points       *models.UserPoints   `json:"points"`
	SavedQuizzes []models.SavedQuiz   `json:"saved_quizzes"`
}

func (s *ProgressService) GetDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		if isNoDocuments(err) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, err
	}

	attempts, err := s.GetAttempts(ctx, userID)
	if err != nil {
		return nil, err
	}
	streak, err := s.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}
	points, err := s.GetPoints(ctx, userID)
	if err != nil {
		return nil, err
	}
	saved, err := s.Saved.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if saved == nil {
		saved = []models.SavedQuiz{}
	}
	return &Dashboard{
		User:         user,
		QuizAttempts: attempts,
		Streak:       streak,
		Points:       points,
		SavedQuizzes: saved,
	}, nil
}

func (s *ProgressService) GetAttempts(ctx context.Context, userID string) ([]models.QuizAttempt, error) {
	attempts, err := s.Attempts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if attempts == nil {
		attempts = []models.QuizAttempt{}
	}
	return attempts, nil
}

func (s *ProgressService) GetStreak(ctx context.Context, userID string) (*models.UserStreak, error) {
	streak, err := s.Streaks.FindByUser(ctx, userID)
	if err != nil {
		if isNoDocuments(err) {
			return &models.UserStreak{UserID: userID, StreakHistory: []models.StreakEntry{}}, nil
		}
		return nil, err
	}
	return streak, nil
}

func (s *ProgressService) GetPoints(ctx context.Context, userID string) (*models.UserPoints, error) {
	points, err := s.Points.FindByUser(ctx, userID)
	if err != nil {
		if isNoDocuments(err) {
			return &models.UserPoints{UserID: userID, Level: 1, PointsHistory: []models.PointsEntry{}}, nil
		}
		return nil, err
	}
	return points, nil
}
