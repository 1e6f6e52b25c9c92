package repository

import (
	"context"

	"attempt-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PointsRepository struct {
	Col *mongo.Collection
}

func NewPointsRepository(db *mongo.Database) *PointsRepository {
	return &PointsRepository{Col: db.Collection("user_points")}
}

// GetOrCreate loads the user's points record, creating a level-1 record in the
// same atomic operation when none exists yet.
func (r *PointsRepository) GetOrCreate(ctx context.Context, userID string) (*models.UserPoints, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var points models.UserPoints
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": bson.M{
			"_id":            primitive.NewObjectID().Hex(),
			"user_id":        userID,
			"total_points":   0,
			"level":          1,
			"points_history": bson.A{},
		}},
		opts,
	).Decode(&points)
	if err != nil {
		return nil, err
	}
	return &points, nil
}

func (r *PointsRepository) Save(ctx context.Context, p *models.UserPoints) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": p.ID},
		bson.M{"$set": bson.M{
			"total_points":   p.TotalPoints,
			"level":          p.Level,
			"points_history": p.PointsHistory,
		}},
	)
	return err
}

func (r *PointsRepository) FindByUser(ctx context.Context, userID string) (*models.UserPoints, error) {
	var points models.UserPoints
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&points)
	if err != nil {
		return nil, err
	}
	return &points, nil
}
