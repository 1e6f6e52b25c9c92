package models

import "time"

type PointsEntry struct {
	Date   time.Time `bson:"date" json:"date"`
	Points int       `bson:"points" json:"points"`
	Source string    `bson:"source" json:"source"`
	Total  int       `bson:"total" json:"total"`
	Level  int       `bson:"level" json:"level"`
}

type UserPoints struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	UserID        string        `bson:"user_id" json:"user_id"`
	TotalPoints   int           `bson:"total_points" json:"total_points"`
	Level         int           `bson:"level" json:"level"`
	PointsHistory []PointsEntry `bson:"points_history" json:"points_history"`
}
