package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/internmatch/backend/agent"
	"github.com/internmatch/backend/models"
	"github.com/internmatch/backend/storage"
)

// ScoreInternshipTool explains how one catalog internship scores against a profile
type ScoreInternshipTool struct {
	recommender *agent.Recommender
}

// NewScoreInternshipTool creates a new scoring tool
func NewScoreInternshipTool(recommender *agent.Recommender) *ScoreInternshipTool {
	return &ScoreInternshipTool{recommender: recommender}
}

func (t *ScoreInternshipTool) Name() string {
	return "score_internship"
}

func (t *ScoreInternshipTool) Description() string {
	return `Score one internship from the catalog against a student profile.
Returns the numeric score, category (best_fit, growth, alternative, no_match),
matching/missing/related skills, plain-language reasons and a per-factor breakdown.`
}

func (t *ScoreInternshipTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"profile": profileSchema(),
			"internshipId": map[string]interface{}{
				"type":        "string",
				"description": "Catalog id of the internship to score",
			},
		},
		"required": []string{"profile", "internshipId"},
	}
}

// ScoreInternshipInput represents the input for internship scoring
type ScoreInternshipInput struct {
	Profile      models.UserProfile `json:"profile"`
	InternshipID string             `json:"internshipId"`
}

func (t *ScoreInternshipTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var scoreInput ScoreInternshipInput
	if err := json.Unmarshal(input, &scoreInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if scoreInput.InternshipID == "" {
		return NewErrorResult("internshipId is required")
	}
	if err := scoreInput.Profile.Validate(); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid profile: %v", err))
	}

	rec, err := t.recommender.Score(&scoreInput.Profile, scoreInput.InternshipID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NewErrorResult(fmt.Sprintf("internship %s not found", scoreInput.InternshipID))
		}
		return NewErrorResult(fmt.Sprintf("scoring failed: %v", err))
	}

	return NewSuccessResult(rec)
}
