package models

import "time"

type SavedQuiz struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	AttemptID string    `bson:"attempt_id" json:"attempt_id"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	SavedAt   time.Time `bson:"saved_at" json:"saved_at"`
}
