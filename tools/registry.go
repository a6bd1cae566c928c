package tools

import (
	"github.com/internmatch/backend/agent"
	"github.com/internmatch/backend/learning"
	"github.com/internmatch/backend/matching"
)

// NewInternshipRegistry registers every matching tool
func NewInternshipRegistry(recommender *agent.Recommender, graph matching.SkillGraph, learningService *learning.Service) *ToolRegistry {
	registry := NewToolRegistry()
	registry.Register(NewScoreInternshipTool(recommender))
	registry.Register(NewRankInternshipsTool(recommender))
	registry.Register(NewRelatedSkillsTool(graph))
	registry.Register(NewLearningPathTool(learningService))
	return registry
}
