// Package quiz generates comprehension questions for finished books.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AssassinTK/readlog-ai-tracker/internal/library"
	openai "github.com/sashabaranov/go-openai"
)

// Question is one multiple-choice comprehension question. Answer indexes
// into Choices.
type Question struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Answer  int      `json:"answer"`
}

// Provider produces quiz questions for a record.
type Provider interface {
	Questions(ctx context.Context, record library.Record) ([]Question, error)
}

const systemPrompt = "You write short multiple-choice quizzes that help a reader " +
	"recall books they have finished. Respond with JSON only: an array of objects " +
	"with fields prompt, choices (four strings), and answer (index into choices)."

// OpenAI generates questions through the OpenAI chat-completion API.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI builds a provider for the given API key and model.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAI{client: openai.NewClient(apiKey), model: model}
}

// Questions asks the model for three questions about the record.
func (o *OpenAI) Questions(ctx context.Context, record library.Record) ([]Question, error) {
	prompt := fmt.Sprintf("Write 3 questions about %q", record.Title)
	if record.Author != "" {
		prompt += fmt.Sprintf(" by %s", record.Author)
	}
	if record.Notes != "" {
		prompt += fmt.Sprintf(". The reader's notes: %s", record.Notes)
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("quiz completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("quiz completion returned no choices")
	}
	questions, err := Parse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("quiz response: %w", err)
	}
	return questions, nil
}

// Parse decodes the model's JSON reply, tolerating markdown code fences.
func Parse(raw string) ([]Question, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}
	var questions []Question
	if err := json.Unmarshal([]byte(trimmed), &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions in reply")
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return nil, fmt.Errorf("question %d has no prompt", i)
		}
		if len(q.Choices) < 2 {
			return nil, fmt.Errorf("question %d has too few choices", i)
		}
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			return nil, fmt.Errorf("question %d answer index out of range", i)
		}
	}
	return questions, nil
}

// Static is the offline fallback used when no API key is configured. It
// produces recall prompts from the record itself so the quiz flow stays
// usable without the AI service.
type Static struct{}

// Questions builds deterministic recall questions for the record.
func (Static) Questions(_ context.Context, record library.Record) ([]Question, error) {
	author := record.Author
	if author == "" {
		author = "Unknown"
	}
	category := record.Category
	if category == "" {
		category = "Uncategorized"
	}
	return []Question{
		{
			Prompt:  fmt.Sprintf("Who wrote %q?", record.Title),
			Choices: []string{author, "Ursula K. Le Guin", "Haruki Murakami", "Octavia Butler"},
			Answer:  0,
		},
		{
			Prompt:  fmt.Sprintf("Which shelf holds %q?", record.Title),
			Choices: []string{category, "Poetry", "Travel", "Cooking"},
			Answer:  0,
		},
		{
			Prompt:  fmt.Sprintf("In one sentence, what stuck with you about %q?", record.Title),
			Choices: []string{"I remember it well", "I need to reread it"},
			Answer:  0,
		},
	}, nil
}
