package scoring

import (
	"errors"
	"math"
	"sort"

	"attempt-service/internal/models"
)

var (
	ErrInvalidDifficulty   = errors.New("invalid difficulty")
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
)

// DifficultyMultipliers defines point multipliers per difficulty level
var DifficultyMultipliers = map[models.Difficulty]int{
	models.DifficultyEasy:   1,
	models.DifficultyMedium: 2,
	models.DifficultyHard:   3,
}

// WeakTopicThreshold is the per-topic accuracy below which a topic counts as weak.
// Exactly 60% is not weak.
const WeakTopicThreshold = 60.0

const defaultTopic = "general"

type TopicScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

func (t TopicScore) Accuracy() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Total) * 100
}

type AttemptStats struct {
	Score        int                   `json:"score"`
	Accuracy     float64               `json:"accuracy"`
	PointsEarned int                   `json:"points_earned"`
	WeakTopics   []string              `json:"weak_topics"`
	TopicScores  map[string]TopicScore `json:"topic_scores"`
}

// ComputeStats scores a completed attempt. Answers are matched to questions by
// index; an empty answer never matches. Inputs are never mutated.
func ComputeStats(questions []models.Question, answers []string, difficulty models.Difficulty) (*AttemptStats, error) {
	multiplier, ok := DifficultyMultipliers[difficulty]
	if !ok {
		return nil, ErrInvalidDifficulty
	}
	if len(answers) != len(questions) {
		return nil, ErrAnswerCountMismatch
	}

	stats := &AttemptStats{
		WeakTopics:  []string{},
		TopicScores: make(map[string]TopicScore),
	}

	for i, q := range questions {
		topic := q.Topic
		if topic == "" {
			topic = defaultTopic
		}
		ts := stats.TopicScores[topic]
		ts.Total++

		correct := answers[i] != "" && answers[i] == q.CorrectAnswer
		if correct {
			ts.Correct++
			stats.Score++
		}
		stats.TopicScores[topic] = ts
	}

	if len(questions) > 0 {
		stats.Accuracy = float64(stats.Score) / float64(len(questions)) * 100
	}
	stats.PointsEarned = int(math.Floor(stats.Accuracy * float64(multiplier)))

	for topic, ts := range stats.TopicScores {
		if ts.Accuracy() < WeakTopicThreshold {
			stats.WeakTopics = append(stats.WeakTopics, topic)
		}
	}
	sort.Strings(stats.WeakTopics)

	return stats, nil
}
