package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internmatch/backend/agent"
	"github.com/internmatch/backend/learning"
	"github.com/internmatch/backend/matching"
	"github.com/internmatch/backend/models"
	"github.com/internmatch/backend/storage"
)

func newTestRegistry(t *testing.T) *ToolRegistry {
	t.Helper()
	catalog := storage.NewCatalog(&storage.StaticLoader{Items: []models.Internship{
		{ID: "1", Title: "Data Analyst Intern", Company: "Acme", Sector: "Technology", Skills: []string{"Python", "SQL"}, Stipend: "25000"},
		{ID: "2", Title: "Design Intern", Company: "Pixel", Sector: "Design", Skills: []string{"Figma"}},
	}})
	_, err := catalog.Reload(context.Background())
	require.NoError(t, err)

	graph := matching.DefaultGraph()
	ranker := matching.NewRanker(matching.NewScorer(graph, matching.BreakdownDisplay), 2)
	service := learning.NewService(nil, nil, 0)
	return NewInternshipRegistry(agent.NewRecommender(catalog, ranker, service), graph, service)
}

func execute(t *testing.T, registry *ToolRegistry, name, input string) ToolResult {
	t.Helper()
	tool, ok := registry.Get(name)
	require.True(t, ok, "tool %s not registered", name)

	raw, err := tool.Execute(context.Background(), json.RawMessage(input))
	require.NoError(t, err)

	var result ToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	return result
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := newTestRegistry(t)

	var names []string
	for _, tool := range registry.List() {
		names = append(names, tool.Name())
		assert.Equal(t, "object", tool.InputSchema()["type"])
		assert.NotEmpty(t, tool.Description())
	}
	assert.Equal(t, []string{"generate_learning_path", "rank_internships", "related_skills", "score_internship"}, names)
	assert.Len(t, registry.GetToolDefinitions(), 4)
}

func TestScoreInternshipTool(t *testing.T) {
	registry := newTestRegistry(t)

	result := execute(t, registry, "score_internship", `{"profile":{"sector":"Technology","skills":["python"]},"internshipId":"1"}`)
	require.True(t, result.Success, result.Error)

	var rec models.Recommendation
	require.NoError(t, json.Unmarshal(result.Data, &rec))
	assert.Equal(t, "1", rec.ID)
	assert.Positive(t, rec.Score)
	assert.Equal(t, []string{"python"}, rec.MatchingSkills)

	missing := execute(t, registry, "score_internship", `{"profile":{},"internshipId":"nope"}`)
	assert.False(t, missing.Success)
	assert.Contains(t, missing.Error, "not found")

	invalid := execute(t, registry, "score_internship", `{"profile":{"preferences":{"skills":9}},"internshipId":"1"}`)
	assert.False(t, invalid.Success)
	assert.Contains(t, invalid.Error, "invalid profile")
}

func TestRankInternshipsTool(t *testing.T) {
	registry := newTestRegistry(t)

	result := execute(t, registry, "rank_internships", `{"profile":{"skills":["Python"]}}`)
	require.True(t, result.Success, result.Error)
	var buckets models.Buckets
	require.NoError(t, json.Unmarshal(result.Data, &buckets))
	assert.Equal(t, 1, buckets.Total())

	noMatch := execute(t, registry, "rank_internships", `{"profile":{"skills":["nonexistent_skill_xyz"]}}`)
	require.True(t, noMatch.Success)
	var resp models.NoMatchResponse
	require.NoError(t, json.Unmarshal(noMatch.Data, &resp))
	assert.Equal(t, models.StatusNoMatches, resp.Status)
	assert.NotEmpty(t, resp.LearningPath)
}

func TestRelatedSkillsTool(t *testing.T) {
	registry := newTestRegistry(t)

	result := execute(t, registry, "related_skills", `{"skills":["Python"]}`)
	require.True(t, result.Success, result.Error)
	var out RelatedSkillsOutput
	require.NoError(t, json.Unmarshal(result.Data, &out))
	assert.NotEmpty(t, out.Related)
	assert.Equal(t, matching.DefaultGraph().Neighbors("python"), out.Neighbors["python"])

	empty := execute(t, registry, "related_skills", `{"skills":[]}`)
	assert.False(t, empty.Success)
}

func TestLearningPathTool(t *testing.T) {
	registry := newTestRegistry(t)

	result := execute(t, registry, "generate_learning_path", `{"profile":{"sector":"Finance"}}`)
	require.True(t, result.Success, result.Error)
	var resp models.NoMatchResponse
	require.NoError(t, json.Unmarshal(result.Data, &resp))
	assert.Equal(t, learning.MessageFallback, resp.Message)
	assert.Equal(t, "Financial Analysis & Modeling", resp.LearningPath[0].Skill)

	bad := execute(t, registry, "generate_learning_path", `not json`)
	assert.False(t, bad.Success)
}
