package generation

import (
	"strings"
	"testing"

	"attempt-service/internal/models"
)

const wellFormed = `Q: What is the capital of France?
A. Berlin
B. Paris
C. Madrid
D. Rome
Answer: B
Q: Which planet is known as the Red Planet?
A. Earth
B. Venus
C. Mars
D. Jupiter
Answer: C
`

func TestParseQuestions_WellFormed(t *testing.T) {
	questions := ParseQuestions(wellFormed)
	if len(questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(questions))
	}

	first := questions[0]
	if first.Prompt != "What is the capital of France?" {
		t.Errorf("Unexpected prompt: %q", first.Prompt)
	}
	if len(first.Options) != 4 || first.Options[1] != "Paris" {
		t.Errorf("Unexpected options: %v", first.Options)
	}
	if first.CorrectAnswer != "Paris" {
		t.Errorf("Expected correct answer Paris, got %q", first.CorrectAnswer)
	}
	if questions[1].CorrectAnswer != "Mars" {
		t.Errorf("Expected correct answer Mars, got %q", questions[1].CorrectAnswer)
	}
}

func TestParseQuestions_MalformedBlockSkipped(t *testing.T) {
	text := `Q: Incomplete question
A. Only
B. Two lines
Q: What is 2+2?
A. 3
B. 4
C. 5
D. 6
Answer: B
`
	questions := ParseQuestions(text)
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question with the malformed block skipped, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != "4" {
		t.Errorf("Expected correct answer 4, got %q", questions[0].CorrectAnswer)
	}
}

func TestParseQuestions_OutOfRangeAnswerLetter(t *testing.T) {
	text := `Q: Pick one
A. One
B. Two
C. Three
D. Four
Answer: F
`
	questions := ParseQuestions(text)
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != "" {
		t.Errorf("Expected empty correct answer for out-of-range letter, got %q", questions[0].CorrectAnswer)
	}
}

func TestParseQuestions_LowercaseAnswerLetter(t *testing.T) {
	text := `Q: Pick one
A. One
B. Two
C. Three
D. Four
Answer: d
`
	questions := ParseQuestions(text)
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != "Four" {
		t.Errorf("Expected correct answer Four, got %q", questions[0].CorrectAnswer)
	}
}

func TestParseQuestions_EmptyInput(t *testing.T) {
	if questions := ParseQuestions(""); len(questions) != 0 {
		t.Errorf("Expected no questions for empty input, got %d", len(questions))
	}
	if questions := ParseQuestions("no blocks here"); len(questions) != 0 {
		t.Errorf("Expected no questions without Q blocks, got %d", len(questions))
	}
}

func TestBuildPrompt_ContainsFormatAndContent(t *testing.T) {
	prompt := BuildPrompt(Request{
		Content:      "The mitochondria is the powerhouse of the cell.",
		Difficulty:   models.DifficultyHard,
		NumQuestions: 3,
	})
	for _, want := range []string{"generate 3 hard multiple choice questions", "Answer: <correct_option_letter>", "mitochondria"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q", want)
		}
	}
}
