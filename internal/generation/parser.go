package generation

import (
	"strings"

	"attempt-service/internal/models"
)

// ParseQuestions extracts questions from a model response in the BuildPrompt
// block format. Malformed blocks are skipped; an answer letter that does not
// map onto the four options leaves the correct answer empty rather than
// guessing.
func ParseQuestions(text string) []models.Question {
	var questions []models.Question

	blocks := strings.Split(strings.TrimSpace(text), "Q")
	if len(blocks) < 2 {
		return questions
	}
	for _, block := range blocks[1:] {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 6 {
			continue
		}

		prompt := strings.Trim(strings.TrimSpace(lines[0]), ": ")
		if prompt == "" {
			continue
		}

		options := make([]string, 0, 4)
		for _, line := range lines[1:5] {
			line = strings.TrimSpace(line)
			// Drop the "A." / "B." marker.
			if len(line) > 2 {
				line = strings.TrimSpace(line[2:])
			} else {
				line = ""
			}
			options = append(options, line)
		}

		answerLine := strings.TrimSpace(lines[5])
		parts := strings.Split(answerLine, ":")
		letter := strings.ToUpper(strings.TrimSpace(parts[len(parts)-1]))

		correct := ""
		if len(letter) == 1 {
			idx := int(letter[0] - 'A')
			if idx >= 0 && idx < len(options) {
				correct = options[idx]
			}
		}

		questions = append(questions, models.Question{
			Prompt:        prompt,
			Options:       options,
			CorrectAnswer: correct,
		})
	}
	return questions
}
