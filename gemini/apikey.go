package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// apiKeyModel talks to the Gemini API directly with an API key
type apiKeyModel struct {
	client *genai.Client
	name   string
}

func newAPIKeyModel(ctx context.Context, apiKey, modelName string) (*apiKeyModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &apiKeyModel{client: client, name: modelName}, nil
}

func (m *apiKeyModel) generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	model := m.client.GenerativeModel(m.name)
	if jsonMode {
		model.SetTemperature(0.2)
		model.ResponseMIMEType = "application/json"
	} else {
		model.SetTemperature(0.7)
		model.SetMaxOutputTokens(500)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return strings.Join(parts, ""), nil
}

func (m *apiKeyModel) close() error {
	return m.client.Close()
}
