package service

import (
	"context"
	"fmt"
	"time"

	"attempt-service/internal/models"
	"attempt-service/internal/repository"
)

type SavedQuizService struct {
	Saved    *repository.SavedQuizRepository
	Attempts *repository.AttemptRepository
}

func NewSavedQuizService(saved *repository.SavedQuizRepository, attempts *repository.AttemptRepository) *SavedQuizService {
	return &SavedQuizService{Saved: saved, Attempts: attempts}
}

// SaveQuiz bookmarks one of the user's own scored attempts with optional notes.
func (s *SavedQuizService) SaveQuiz(ctx context.Context, userID, attemptID, notes string) (*models.SavedQuiz, error) {
	attempt, err := s.Attempts.FindByID(ctx, attemptID)
	if err != nil {
		if isNoDocuments(err) {
			return nil, fmt.Errorf("%w: attempt %s", ErrNotFound, attemptID)
		}
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, fmt.Errorf("%w: attempt %s", ErrNotFound, attemptID)
	}

	saved := &models.SavedQuiz{
		UserID:    userID,
		AttemptID: attemptID,
		Notes:     notes,
		SavedAt:   time.Now(),
	}
	if err := s.Saved.Create(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *SavedQuizService) GetSavedQuizzes(ctx context.Context, userID string) ([]models.SavedQuiz, error) {
	saved, err := s.Saved.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = []models.SavedQuiz{}
	}
	return saved, nil
}

func (s *SavedQuizService) DeleteSavedQuiz(ctx context.Context, id, userID string) error {
	deleted, err := s.Saved.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: saved quiz %s", ErrNotFound, id)
	}
	return nil
}
