package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Question struct {
	Prompt        string   `bson:"prompt" json:"prompt"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer string   `bson:"correct_answer" json:"correct_answer"`
	Topic         string   `bson:"topic,omitempty" json:"topic,omitempty"`
}

type QuizAttempt struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	UserID       string     `bson:"user_id" json:"user_id"`
	Questions    []Question `bson:"questions" json:"questions"`
	UserAnswers  []string   `bson:"user_answers" json:"user_answers"`
	Score        int        `bson:"score" json:"score"`
	Total        int        `bson:"total" json:"total"`
	Difficulty   Difficulty `bson:"difficulty" json:"difficulty"`
	Accuracy     float64    `bson:"accuracy" json:"accuracy"`
	PointsEarned int        `bson:"points_earned" json:"points_earned"`
	WeakTopics   []string   `bson:"weak_topics" json:"weak_topics"`
	Rank         int        `bson:"rank" json:"rank"`
	Percentile   float64    `bson:"percentile" json:"percentile"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	CompletedAt  time.Time  `bson:"completed_at,omitempty" json:"completed_at"`
}

// Completed reports whether the attempt has already been scored and saved.
func (a *QuizAttempt) Completed() bool {
	return !a.CompletedAt.IsZero()
}
