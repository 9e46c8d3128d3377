package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical hydration coach.

You receive one day's computed hydration metrics for a single user: drink
totals, an evening-intake ratio, a nocturia (nighttime interruption) risk
bucket, and optionally a weather-driven extra-water recommendation. You must
base your comment only on the provided numbers.

Your goals:
- Summarize the day's hydration in plain, encouraging language.
- Mention timing (evening intake, afternoon caffeine) when it drove the risk bucket.
- Keep it to 2-3 sentences.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on drinking habits and timing.
- If the data is sparse, say so briefly.

You must respond as strict JSON with exactly this shape:

{
  "comment": "2-3 sentences about the day's hydration and what to adjust tomorrow."
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's hydration analysis for one day.

- "aggregate" contains the day's drink totals and category breakdown.
- "risk", when present, is the nocturia risk model output (evening ratio, score, bucket, caffeine/alcohol flags).
- "weather", when present, is the weather-driven extra-water recommendation.

JSON:

%s

Based on this data, respond in the required JSON format.`

// CommentContext is the metrics bundle handed to the model. Exactly one of
// Risk or Weather is set, matching the analysis kind.
type CommentContext struct {
	Date      string                      `json:"date"`
	Aggregate domain.DailyAggregate       `json:"aggregate"`
	Risk      *domain.HydrationRiskResult `json:"risk,omitempty"`
	Weather   *domain.WeatherAdviceResult `json:"weather,omitempty"`
}

// CommentLLM is the interface for generating analysis comments with an LLM.
type CommentLLM interface {
	// GenerateComment takes a metrics bundle and returns a short free-text comment.
	GenerateComment(ctx context.Context, commentCtx *CommentContext) (string, error)
}

// OpenAIClient implements CommentLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating comments.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// OverrideSystemPrompt swaps the built-in system prompt, e.g. for a prompt
// managed in Langfuse. Empty prompts are ignored.
func (c *OpenAIClient) OverrideSystemPrompt(prompt string) {
	if c == nil || prompt == "" {
		return
	}
	c.systemPrompt = prompt
}

// GenerateComment calls OpenAI to generate a hydration comment.
func (c *OpenAIClient) GenerateComment(ctx context.Context, commentCtx *CommentContext) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(commentCtx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output struct {
		Comment string `json:"comment"`
	}
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return output.Comment, nil
}
