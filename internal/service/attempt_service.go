package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"attempt-service/internal/gamification"
	"attempt-service/internal/models"
	"attempt-service/internal/scoring"
)

// AttemptStore is the attempt persistence surface the orchestrator needs. It
// embeds scoring.PopulationSource so the ranking query stays swappable.
type AttemptStore interface {
	scoring.PopulationSource
	FindByID(ctx context.Context, id string) (*models.QuizAttempt, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Create(ctx context.Context, attempt *models.QuizAttempt) error
}

type StreakStore interface {
	GetOrCreate(ctx context.Context, userID string) (*models.UserStreak, error)
	Save(ctx context.Context, s *models.UserStreak) error
}

type PointsStore interface {
	GetOrCreate(ctx context.Context, userID string) (*models.UserPoints, error)
	Save(ctx context.Context, p *models.UserPoints) error
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// TxRunner runs fn inside one transactional boundary: either every write fn
// performed is committed, or none are.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// ScoreUpdater receives the user's fresh totals after a committed save,
// best-effort (a cache, not the system of record).
type ScoreUpdater interface {
	RecordScores(ctx context.Context, userID string, totalPoints, currentStreak int) error
}

// AttemptResult is the full outcome of one attempt save: the enriched attempt
// plus the gamification records it touched.
type AttemptResult struct {
	Attempt   *models.QuizAttempt `json:"attempt"`
	Streak    *models.UserStreak  `json:"streak"`
	Points    *models.UserPoints  `json:"points"`
	LeveledUp bool                `json:"leveled_up"`
}

type AttemptService struct {
	Attempts    AttemptStore
	Streaks     StreakStore
	Points      PointsStore
	Users       UserStore
	Tx          TxRunner
	Leaderboard ScoreUpdater

	locks userLocks
	now   func() time.Time
}

func NewAttemptService(attempts AttemptStore, streaks StreakStore, points PointsStore, users UserStore, tx TxRunner) *AttemptService {
	return &AttemptService{
		Attempts: attempts,
		Streaks:  streaks,
		Points:   points,
		Users:    users,
		Tx:       tx,
		now:      time.Now,
	}
}

// CompleteAttempt scores a finished attempt and persists all derived state:
// the attempt with its stats and rank, the user's points ledger and the
// user's streak. The three writes share one transaction, so a failure at any
// step leaves nothing applied and the caller retries the whole submission.
func (s *AttemptService) CompleteAttempt(ctx context.Context, attempt *models.QuizAttempt) (*AttemptResult, error) {
	if attempt.UserID == "" {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidInput)
	}
	if attempt.Completed() {
		return nil, ErrAlreadyScored
	}

	unlock := s.locks.lock(attempt.UserID)
	defer unlock()

	// Re-saving an attempt that was already scored would double-count points.
	if attempt.ID != "" {
		existing, err := s.Attempts.FindByID(ctx, attempt.ID)
		if err == nil && existing.Completed() {
			return nil, ErrAlreadyScored
		}
		if err != nil && !isNoDocuments(err) {
			return nil, err
		}
	}

	if _, err := s.Users.FindByID(ctx, attempt.UserID); err != nil {
		if isNoDocuments(err) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, attempt.UserID)
		}
		return nil, err
	}

	stats, err := scoring.ComputeStats(attempt.Questions, attempt.UserAnswers, attempt.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	// The population must include this attempt as if it were already stored;
	// a first-time user adds themselves to the distinct-user count.
	prior, err := s.Attempts.CountByUser(ctx, attempt.UserID)
	if err != nil {
		return nil, err
	}
	rank, err := scoring.ComputeRank(ctx, scoring.WithPendingAttempt(s.Attempts, prior == 0), stats.Score)
	if err != nil {
		return nil, err
	}

	now := s.now()
	attempt.Score = stats.Score
	attempt.Total = len(attempt.Questions)
	attempt.Accuracy = stats.Accuracy
	attempt.PointsEarned = stats.PointsEarned
	attempt.WeakTopics = stats.WeakTopics
	attempt.Rank = rank.Rank
	attempt.Percentile = rank.Percentile
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = now
	}
	attempt.CompletedAt = now

	result := &AttemptResult{Attempt: attempt}
	err = s.Tx.Run(ctx, func(ctx context.Context) error {
		// Reload inside the closure: the transaction may retry it, and every
		// run must start from the stored state.
		points, err := s.Points.GetOrCreate(ctx, attempt.UserID)
		if err != nil {
			return err
		}
		levelBefore := points.Level
		gamification.AddPoints(points, attempt.PointsEarned, attemptSource(attempt), now)
		if err := s.Points.Save(ctx, points); err != nil {
			return err
		}

		streak, err := s.Streaks.GetOrCreate(ctx, attempt.UserID)
		if err != nil {
			return err
		}
		gamification.AdvanceStreak(streak, now)
		if err := s.Streaks.Save(ctx, streak); err != nil {
			return err
		}

		if err := s.Attempts.Create(ctx, attempt); err != nil {
			return err
		}

		result.Points = points
		result.Streak = streak
		result.LeveledUp = points.Level > levelBefore
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Leaderboard != nil {
		if err := s.Leaderboard.RecordScores(ctx, attempt.UserID, result.Points.TotalPoints, result.Streak.CurrentStreak); err != nil {
			log.Printf("leaderboard update failed for user %s: %v", attempt.UserID, err)
		}
	}
	return result, nil
}

func (s *AttemptService) GetAttempt(ctx context.Context, id string) (*models.QuizAttempt, error) {
	attempt, err := s.Attempts.FindByID(ctx, id)
	if err != nil {
		if isNoDocuments(err) {
			return nil, fmt.Errorf("%w: attempt %s", ErrNotFound, id)
		}
		return nil, err
	}
	return attempt, nil
}

func attemptSource(a *models.QuizAttempt) string {
	return fmt.Sprintf("Quiz attempt (%s, %d questions)", a.Difficulty, len(a.Questions))
}
