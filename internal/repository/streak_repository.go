package repository

import (
	"context"

	"attempt-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StreakRepository struct {
	Col *mongo.Collection
}

func NewStreakRepository(db *mongo.Database) *StreakRepository {
	return &StreakRepository{Col: db.Collection("user_streaks")}
}

// GetOrCreate loads the user's streak record, creating the zero-value record
// in the same atomic operation when none exists yet.
func (r *StreakRepository) GetOrCreate(ctx context.Context, userID string) (*models.UserStreak, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var streak models.UserStreak
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": bson.M{
			"_id":            primitive.NewObjectID().Hex(),
			"user_id":        userID,
			"current_streak": 0,
			"longest_streak": 0,
			"streak_history": bson.A{},
		}},
		opts,
	).Decode(&streak)
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (r *StreakRepository) Save(ctx context.Context, s *models.UserStreak) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": s.ID},
		bson.M{"$set": bson.M{
			"current_streak": s.CurrentStreak,
			"longest_streak": s.LongestStreak,
			"last_quiz_date": s.LastQuizDate,
			"streak_history": s.StreakHistory,
		}},
	)
	return err
}

func (r *StreakRepository) FindByUser(ctx context.Context, userID string) (*models.UserStreak, error) {
	var streak models.UserStreak
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&streak)
	if err != nil {
		return nil, err
	}
	return &streak, nil
}
