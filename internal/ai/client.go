// Package ai is the boundary to the OpenAI chat-completion backend. It owns
// the request shape, the response decoding, and the error kinds the rest of
// the application branches on.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/yeskala/dayplan/internal/models"
	"github.com/yeskala/dayplan/internal/planner"
)

// Error kinds a caller can distinguish with errors.Is.
var (
	// ErrNotConfigured means no API key was provided.
	ErrNotConfigured = errors.New("openai api key is not configured")
	// ErrBadResponse means the model returned non-JSON or schema-violating content.
	ErrBadResponse = errors.New("model returned a malformed response")
	// ErrEmptySchedule means the response parsed but contained no usable blocks.
	ErrEmptySchedule = errors.New("model returned no schedule blocks")
)

// DefaultModel is used when the config does not name one.
const DefaultModel = openai.GPT4o

const temperature = 0.4

// Client calls the chat-completion API. Construct one per process and pass
// it where needed; it holds no mutable state beyond the HTTP client.
type Client struct {
	api   *openai.Client
	model string
}

// New builds a Client for the given API key and model name. An empty key is
// allowed here; GeneratePlan will fail with ErrNotConfigured.
func New(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	var api *openai.Client
	if apiKey != "" {
		api = openai.NewClient(apiKey)
	}
	return &Client{api: api, model: model}
}

// PlanResponse is a decoded and validated planning result.
type PlanResponse struct {
	Schedule  []models.ScheduleBlock
	CoachNote string
	Mood      *models.Mood
	Raw       string // raw JSON content, rendered for transparency
}

// GeneratePlan sends the composed prompt and decodes the strict-JSON reply.
// The schedule comes back already passed through planner.ValidateSchedule.
func (c *Client) GeneratePlan(ctx context.Context, prompt string) (*PlanResponse, error) {
	if c.api == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: planner.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in completion", ErrBadResponse)
	}

	content := resp.Choices[0].Message.Content
	plan, err := decodePlan(content)
	if err != nil {
		return nil, err
	}
	plan.Raw = content
	return plan, nil
}

// rawPlan mirrors the JSON contract the prompt pins the model to, with just
// enough slack to survive numbers arriving as strings or floats.
type rawPlan struct {
	Schedule  []rawBlock `json:"schedule"`
	Mood      *rawMood   `json:"mood"`
	CoachNote string     `json:"coach_note"`
}

type rawBlock struct {
	Task       string  `json:"task"`
	Type       string  `json:"type"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Importance flexInt `json:"importance"`
	Note       string  `json:"note"`
}

type rawMood struct {
	Label     string  `json:"label"`
	Intensity flexInt `json:"intensity"`
	Reasoning string  `json:"reasoning"`
}

// flexInt decodes 2, 2.0, and "2" alike. The prompt demands plain integers
// but the model does not always comply.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = flexInt(n)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", s)
	}
	*f = flexInt(v)
	return nil
}

func decodePlan(content string) (*PlanResponse, error) {
	var raw rawPlan
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	blocks := make([]models.ScheduleBlock, 0, len(raw.Schedule))
	for _, b := range raw.Schedule {
		blocks = append(blocks, models.ScheduleBlock{
			Task:       b.Task,
			Type:       b.Type,
			Start:      b.Start,
			End:        b.End,
			Importance: int(b.Importance),
			Note:       b.Note,
		})
	}

	blocks = planner.ValidateSchedule(blocks)
	if len(blocks) == 0 {
		return nil, ErrEmptySchedule
	}

	plan := &PlanResponse{
		Schedule:  blocks,
		CoachNote: raw.CoachNote,
	}
	if raw.Mood != nil {
		plan.Mood = &models.Mood{
			Label:     raw.Mood.Label,
			Intensity: int(raw.Mood.Intensity),
			Reasoning: raw.Mood.Reasoning,
		}
	}
	return plan, nil
}
