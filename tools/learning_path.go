package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/internmatch/backend/learning"
	"github.com/internmatch/backend/models"
)

// LearningPathTool builds a remedial learning path for a profile
type LearningPathTool struct {
	service *learning.Service
}

// NewLearningPathTool creates a new learning path tool
func NewLearningPathTool(service *learning.Service) *LearningPathTool {
	return &LearningPathTool{service: service}
}

func (t *LearningPathTool) Name() string {
	return "generate_learning_path"
}

func (t *LearningPathTool) Description() string {
	return `Generate a stepwise learning path (skill, resource, description, duration, difficulty)
for a student profile, in the profile's language. Falls back to curated static plans
when the language model is unavailable.`
}

func (t *LearningPathTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"profile": profileSchema(),
		},
		"required": []string{"profile"},
	}
}

// LearningPathInput represents the input for learning path generation
type LearningPathInput struct {
	Profile models.UserProfile `json:"profile"`
}

func (t *LearningPathTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var pathInput LearningPathInput
	if err := json.Unmarshal(input, &pathInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if err := pathInput.Profile.Validate(); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid profile: %v", err))
	}

	return NewSuccessResult(t.service.OnNoMatches(ctx, &pathInput.Profile))
}
