package repository

import (
	"context"

	"attempt-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SavedQuizRepository struct {
	Col *mongo.Collection
}

func NewSavedQuizRepository(db *mongo.Database) *SavedQuizRepository {
	return &SavedQuizRepository{Col: db.Collection("saved_quizzes")}
}

func (r *SavedQuizRepository) Create(ctx context.Context, saved *models.SavedQuiz) error {
	if saved.ID == "" {
		saved.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, saved)
	return err
}

func (r *SavedQuizRepository) FindByUser(ctx context.Context, userID string) ([]models.SavedQuiz, error) {
	opts := options.Find().SetSort(bson.M{"saved_at": -1})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var saved []models.SavedQuiz
	for cur.Next(ctx) {
		var s models.SavedQuiz
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, cur.Err()
}

func (r *SavedQuizRepository) Delete(ctx context.Context, id, userID string) (int64, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
