package generation

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"attempt-service/internal/models"
)

// ContentGenerator produces quiz questions from raw study content. The
// scoring core never talks to the model; this boundary is constructed at
// process startup and injected where needed.
type ContentGenerator interface {
	GenerateQuestions(ctx context.Context, req Request) ([]models.Question, error)
}

type Request struct {
	Content      string            `json:"content"`
	Difficulty   models.Difficulty `json:"difficulty"`
	NumQuestions int               `json:"num_questions"`
}

const defaultModel = "gemini-1.5-flash"

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: defaultModel}, nil
}

func (g *GeminiClient) GenerateQuestions(ctx context.Context, req Request) ([]models.Question, error) {
	if req.NumQuestions <= 0 {
		req.NumQuestions = 5
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(BuildPrompt(req)), nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	text := result.Text()
	if text == "" {
		return nil, errors.New("no text content in model response")
	}
	questions := ParseQuestions(text)
	if len(questions) == 0 {
		return nil, errors.New("no questions parsed from model response")
	}
	return questions, nil
}

// BuildPrompt renders the fixed generation prompt. The answer format is load
// bearing: ParseQuestions expects exactly this block structure back.
func BuildPrompt(req Request) string {
	return fmt.Sprintf(`You're an AI quiz generator.
Based on the following content, generate %d %s multiple choice questions with 4 options.
Format strictly like:
Q: <question>
A. <option>
B. <option>
C. <option>
D. <option>
Answer: <correct_option_letter>

Text: %s
`, req.NumQuestions, req.Difficulty, req.Content)
}
