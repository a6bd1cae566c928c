package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/internmatch/backend/matching"
)

// RelatedSkillsTool expands skills one hop through the skill adjacency graph
type RelatedSkillsTool struct {
	graph matching.SkillGraph
}

// NewRelatedSkillsTool creates a new related skills tool
func NewRelatedSkillsTool(graph matching.SkillGraph) *RelatedSkillsTool {
	return &RelatedSkillsTool{graph: graph}
}

func (t *RelatedSkillsTool) Name() string {
	return "related_skills"
}

func (t *RelatedSkillsTool) Description() string {
	return `List skills adjacent to the given skills in the skill graph (one hop).
Useful to explain which catalog skills earn partial credit for a student.`
}

func (t *RelatedSkillsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"skills": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Skills the student already has",
			},
		},
		"required": []string{"skills"},
	}
}

// RelatedSkillsInput represents the input for skill expansion
type RelatedSkillsInput struct {
	Skills []string `json:"skills"`
}

// RelatedSkillsOutput lists neighbors per input skill and their union
type RelatedSkillsOutput struct {
	Related   []string            `json:"related"`
	Neighbors map[string][]string `json:"neighbors"`
}

func (t *RelatedSkillsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var skillsInput RelatedSkillsInput
	if err := json.Unmarshal(input, &skillsInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if len(skillsInput.Skills) == 0 {
		return NewErrorResult("at least one skill is required")
	}

	neighbors := make(map[string][]string, len(skillsInput.Skills))
	for _, skill := range skillsInput.Skills {
		key := matching.NormalizeSkill(skill)
		if key == "" {
			continue
		}
		neighbors[key] = append([]string{}, t.graph.Neighbors(key)...)
	}

	return NewSuccessResult(RelatedSkillsOutput{
		Related:   t.graph.RelatedList(skillsInput.Skills),
		Neighbors: neighbors,
	})
}
