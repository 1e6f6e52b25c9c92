package models

import "time"

type StreakEntry struct {
	Date   time.Time `bson:"date" json:"date"`
	Streak int       `bson:"streak" json:"streak"`
}

type UserStreak struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	UserID        string        `bson:"user_id" json:"user_id"`
	CurrentStreak int           `bson:"current_streak" json:"current_streak"`
	LongestStreak int           `bson:"longest_streak" json:"longest_streak"`
	LastQuizDate  time.Time     `bson:"last_quiz_date,omitempty" json:"last_quiz_date"`
	StreakHistory []StreakEntry `bson:"streak_history" json:"streak_history"`
}
