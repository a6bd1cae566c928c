package gemini

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// vertexModel talks to Gemini through Vertex AI using application default credentials
type vertexModel struct {
	client *genai.Client
	name   string
}

func newVertexModel(ctx context.Context, projectID, location, modelName string) (*vertexModel, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}
	return &vertexModel{client: client, name: modelName}, nil
}

func (m *vertexModel) generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	model := m.client.GenerativeModel(m.name)
	model.SetTopP(0.8)
	if jsonMode {
		model.SetTemperature(0.2)
		model.SetMaxOutputTokens(2048)
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
	return extractVertexText(resp), nil
}

func (m *vertexModel) close() error {
	return m.client.Close()
}

func extractVertexText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
