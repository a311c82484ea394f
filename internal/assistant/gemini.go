// Package assistant wraps the Gemini chat used to answer countdown
// questions and to route event-search requests.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const disclaimerPrompt = "The user is asking about events: %q. Please provide a helpful response about these types of events. Do not claim to search any real database, but provide general information about such events and suggest the user to check official websites or enable the Ticketmaster API in settings for real event data."

// Assistant generates chat replies via the Gemini API.
type Assistant struct {
	client *genai.Client
	model  string
}

// New creates the assistant. The API key is required.
func New(ctx context.Context, apiKey, model string) (*Assistant, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Assistant{client: client, model: model}, nil
}

// Reply answers a chat message. When countdownContext is non-empty it is
// prefixed to the prompt so the model can reason over the user's
// countdowns; eventSearchFallback switches to a disclaimer prompt used
// when the user asked for an event search that is unavailable.
func (a *Assistant) Reply(ctx context.Context, message string, countdownContext json.RawMessage, eventSearchFallback bool) (string, error) {
	prompt := message
	switch {
	case eventSearchFallback:
		prompt = fmt.Sprintf(disclaimerPrompt, message)
	case len(countdownContext) > 0 && string(countdownContext) != "null" && string(countdownContext) != "[]":
		prompt = fmt.Sprintf("I have the following countdowns: %s. %s", countdownContext, message)
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}
