package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/moodlog-app/moodlog/pkg/entry"
)

const (
	defaultModel      = openai.ChatModelGPT3_5Turbo
	maxOutputTokens   = 1000
	outputTemperature = 0.7
)

// Client calls the external summarization collaborator. A failed or
// malformed call is terminal for that action; there are no retries.
type Client struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("analysis: missing api key")
	}
	c := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{client: &c, model: defaultModel}, nil
}

// Analyze builds the request for the recent window, calls the collaborator,
// and parses the structured response.
func (c *Client) Analyze(ctx context.Context, entries []*entry.Entry) (*Result, error) {
	req, err := BuildRequest(entries)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.Instructions),
			openai.UserMessage(req.Payload),
		},
		Temperature: openai.Float(outputTemperature),
		MaxTokens:   openai.Int(maxOutputTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}
	return ParseResponse(resp.Choices[0].Message.Content)
}
