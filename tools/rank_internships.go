package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/internmatch/backend/agent"
	"github.com/internmatch/backend/models"
)

// RankInternshipsTool runs the full recommendation pipeline for a profile
type RankInternshipsTool struct {
	recommender *agent.Recommender
}

// NewRankInternshipsTool creates a new ranking tool
func NewRankInternshipsTool(recommender *agent.Recommender) *RankInternshipsTool {
	return &RankInternshipsTool{recommender: recommender}
}

func (t *RankInternshipsTool) Name() string {
	return "rank_internships"
}

func (t *RankInternshipsTool) Description() string {
	return `Rank the internship catalog against a student profile.
Returns {best_fit, growth, alternative} buckets of at most 10 entries each,
or {status: "no_matches", message, learning_path} when nothing fits.`
}

func (t *RankInternshipsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"profile": profileSchema(),
		},
		"required": []string{"profile"},
	}
}

// RankInternshipsInput represents the input for ranking
type RankInternshipsInput struct {
	Profile models.UserProfile `json:"profile"`
}

func (t *RankInternshipsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var rankInput RankInternshipsInput
	if err := json.Unmarshal(input, &rankInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if err := rankInput.Profile.Validate(); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid profile: %v", err))
	}

	result, err := t.recommender.Recommend(ctx, &rankInput.Profile)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("ranking failed: %v", err))
	}

	return NewSuccessResult(result.Body())
}
