package scoring

import (
	"testing"

	"attempt-service/internal/models"
)

func makeQuestions(topic string, answers ...string) []models.Question {
	questions := make([]models.Question, len(answers))
	for i, a := range answers {
		questions[i] = models.Question{Topic: topic, CorrectAnswer: a}
	}
	return questions
}

func TestComputeStats_AllCorrect(t *testing.T) {
	questions := makeQuestions("math", "4", "9", "16")
	stats, err := ComputeStats(questions, []string{"4", "9", "16"}, models.DifficultyEasy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.Score != 3 {
		t.Errorf("Expected score 3, got %d", stats.Score)
	}
	if stats.Accuracy != 100 {
		t.Errorf("Expected accuracy 100, got %f", stats.Accuracy)
	}
	if stats.PointsEarned != 100 {
		t.Errorf("Expected 100 points on easy, got %d", stats.PointsEarned)
	}
	if len(stats.WeakTopics) != 0 {
		t.Errorf("Expected no weak topics, got %v", stats.WeakTopics)
	}
}

func TestComputeStats_EmptyAttempt(t *testing.T) {
	stats, err := ComputeStats(nil, nil, models.DifficultyMedium)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.Accuracy != 0 {
		t.Errorf("Expected accuracy 0 for empty attempt, got %f", stats.Accuracy)
	}
	if stats.PointsEarned != 0 {
		t.Errorf("Expected 0 points for empty attempt, got %d", stats.PointsEarned)
	}
}

func TestComputeStats_DifficultyMultipliers(t *testing.T) {
	// 4/5 correct = 80% accuracy
	questions := makeQuestions("go", "a", "b", "c", "d", "e")
	answers := []string{"a", "b", "c", "d", "x"}

	cases := []struct {
		difficulty models.Difficulty
		points     int
	}{
		{models.DifficultyEasy, 80},
		{models.DifficultyMedium, 160},
		{models.DifficultyHard, 240},
	}
	for _, tc := range cases {
		stats, err := ComputeStats(questions, answers, tc.difficulty)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.difficulty, err)
		}
		if stats.PointsEarned != tc.points {
			t.Errorf("%s: expected %d points, got %d", tc.difficulty, tc.points, stats.PointsEarned)
		}
	}
}

func TestComputeStats_InvalidDifficulty(t *testing.T) {
	_, err := ComputeStats(makeQuestions("", "a"), []string{"a"}, "extreme")
	if err != ErrInvalidDifficulty {
		t.Errorf("Expected ErrInvalidDifficulty, got %v", err)
	}
}

func TestComputeStats_AnswerCountMismatch(t *testing.T) {
	_, err := ComputeStats(makeQuestions("", "a", "b"), []string{"a"}, models.DifficultyEasy)
	if err != ErrAnswerCountMismatch {
		t.Errorf("Expected ErrAnswerCountMismatch, got %v", err)
	}
}

func TestComputeStats_EmptyAnswerNeverMatches(t *testing.T) {
	// An unanswered question must not count even if the correct answer is empty.
	questions := []models.Question{{CorrectAnswer: ""}}
	stats, err := ComputeStats(questions, []string{""}, models.DifficultyEasy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.Score != 0 {
		t.Errorf("Expected empty answer not to match, got score %d", stats.Score)
	}
}

func TestComputeStats_WeakTopicBoundary(t *testing.T) {
	// history: 3/5 correct = 60%, not weak. geography: 2/5 = 40%, weak.
	var questions []models.Question
	var answers []string
	questions = append(questions, makeQuestions("history", "a", "a", "a", "a", "a")...)
	answers = append(answers, "a", "a", "a", "x", "x")
	questions = append(questions, makeQuestions("geography", "b", "b", "b", "b", "b")...)
	answers = append(answers, "b", "b", "x", "x", "x")

	stats, err := ComputeStats(questions, answers, models.DifficultyEasy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(stats.WeakTopics) != 1 || stats.WeakTopics[0] != "geography" {
		t.Errorf("Expected weak topics [geography], got %v", stats.WeakTopics)
	}
}

func TestComputeStats_DefaultTopic(t *testing.T) {
	questions := []models.Question{
		{CorrectAnswer: "a"},
		{CorrectAnswer: "b"},
	}
	stats, err := ComputeStats(questions, []string{"x", "x"}, models.DifficultyEasy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(stats.WeakTopics) != 1 || stats.WeakTopics[0] != "general" {
		t.Errorf("Expected untagged questions to group under general, got %v", stats.WeakTopics)
	}
}

func TestComputeStats_DoesNotMutateInputs(t *testing.T) {
	questions := makeQuestions("go", "a", "b")
	answers := []string{"a", "x"}
	if _, err := ComputeStats(questions, answers, models.DifficultyHard); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if questions[0].CorrectAnswer != "a" || questions[1].CorrectAnswer != "b" {
		t.Error("Questions were mutated")
	}
	if answers[0] != "a" || answers[1] != "x" {
		t.Error("Answers were mutated")
	}
}

func TestComputeStats_AccuracyBounds(t *testing.T) {
	scenarios := [][]string{
		{"a", "b", "c"},
		{"a", "x", "x"},
		{"x", "x", "x"},
	}
	for _, answers := range scenarios {
		stats, err := ComputeStats(makeQuestions("t", "a", "b", "c"), answers, models.DifficultyMedium)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if stats.Accuracy < 0 || stats.Accuracy > 100 {
			t.Errorf("Accuracy %f out of bounds for answers %v", stats.Accuracy, answers)
		}
	}
}
