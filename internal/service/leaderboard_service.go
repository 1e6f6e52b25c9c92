package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	LeaderboardPointsKey = "leaderboard:points"
	LeaderboardStreakKey = "leaderboard:streak"
)

type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Score  int64  `json:"score"`
	Rank   int64  `json:"rank"`
}

// LeaderboardService keeps Redis ZSet leaderboards for total points and
// current streak. Mongo stays the system of record; these are read caches.
type LeaderboardService struct {
	client *redis.Client
}

func NewLeaderboardService(client *redis.Client) *LeaderboardService {
	return &LeaderboardService{client: client}
}

// RecordScores implements ScoreUpdater.
func (s *LeaderboardService) RecordScores(ctx context.Context, userID string, totalPoints, currentStreak int) error {
	if err := s.client.ZAdd(ctx, LeaderboardPointsKey, redis.Z{
		Score:  float64(totalPoints),
		Member: userID,
	}).Err(); err != nil {
		return err
	}
	return s.client.ZAdd(ctx, LeaderboardStreakKey, redis.Z{
		Score:  float64(currentStreak),
		Member: userID,
	}).Err()
}

// TopPlayers returns the top N entries of the named board ("points" or "streak").
func (s *LeaderboardService) TopPlayers(ctx context.Context, board string, limit int64) ([]LeaderboardEntry, error) {
	key, err := boardKey(board)
	if err != nil {
		return nil, err
	}
	results, err := s.client.ZRevRangeWithScores(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, len(results))
	for i, res := range results {
		entries[i] = LeaderboardEntry{
			UserID: res.Member.(string),
			Score:  int64(res.Score),
			Rank:   int64(i) + 1,
		}
	}
	return entries, nil
}

// UserRank returns the user's 1-indexed rank and score on the named board.
// Rank 0 means the user is not on the board yet.
func (s *LeaderboardService) UserRank(ctx context.Context, board, userID string) (*LeaderboardEntry, error) {
	key, err := boardKey(board)
	if err != nil {
		return nil, err
	}
	rank, err := s.client.ZRevRank(ctx, key, userID).Result()
	if err == redis.Nil {
		return &LeaderboardEntry{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	score, err := s.client.ZScore(ctx, key, userID).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	return &LeaderboardEntry{
		UserID: userID,
		Score:  int64(score),
		Rank:   rank + 1,
	}, nil
}

func boardKey(board string) (string, error) {
	switch board {
	case "points":
		return LeaderboardPointsKey, nil
	case "streak":
		return LeaderboardStreakKey, nil
	default:
		return "", fmt.Errorf("%w: unknown leaderboard %q", ErrInvalidInput, board)
	}
}
