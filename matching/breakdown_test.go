package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internmatch/backend/models"
)

func TestBreakdown_DisplayMode(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)

	res := s.Score(pythonProfile(), djangoInternship(), models.DefaultWeights(), true)
	require.NotNil(t, res.ScoringBreakdown)
	b := res.ScoringBreakdown

	assert.Equal(t, models.BreakdownEntry{Points: 3, Details: "+3 for exact skill matches: python"}, b.SkillMatch)
	assert.Equal(t, models.BreakdownEntry{Points: 2, Details: "+2 for related skills: django"}, b.RelatedSkills)
	assert.Equal(t, models.BreakdownEntry{Points: 2, Details: "+2 for education match: B.Tech"}, b.Education)
	assert.Equal(t, models.BreakdownEntry{Points: 2, Details: "+2 for department match: CSE"}, b.Department)
	assert.Equal(t, models.BreakdownEntry{Points: 2, Details: "+2 for sector match: Technology"}, b.Sector)
	assert.Equal(t, models.BreakdownEntry{Points: 1, Details: "+1 for location match: Bangalore"}, b.Location)
	assert.Equal(t, models.BreakdownEntry{Points: 1, Details: "+1 for competitive stipend: ₹22000"}, b.Stipend)
	assert.Equal(t, models.BreakdownEntry{Points: 1, Details: "+1 for growth potential: Learn django"}, b.GrowthPotential)
}

func TestBreakdown_WeightedModeFollowsWeights(t *testing.T) {
	s := NewScorer(nil, BreakdownWeighted)
	w := ResolveWeights(map[string]int{"skills": 4, "education": 1, "location": 0, "stipend": 3})

	res := s.Score(pythonProfile(), djangoInternship(), w, false)
	b := res.ScoringBreakdown

	assert.Equal(t, 4, b.SkillMatch.Points)
	assert.Equal(t, 3, b.RelatedSkills.Points)
	assert.Equal(t, 1, b.Education.Points)
	assert.Equal(t, 0, b.Location.Points)
	assert.Equal(t, 3, b.Stipend.Points)

	total := b.SkillMatch.Points + b.RelatedSkills.Points + b.Education.Points + b.Department.Points +
		b.Sector.Points + b.Location.Points + b.Stipend.Points + b.GrowthPotential.Points
	assert.Equal(t, res.Score, total)
}

func TestBreakdown_EmptyFactors(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	p := &models.UserProfile{Education: "B.Tech", Department: "CSE", Sector: "Technology"}
	item := &models.Internship{Skills: []string{"a", "b", "c"}, Education: "B.Tech", Department: "CSE", Sector: "Technology"}

	b := s.Score(p, item, models.DefaultWeights(), false).ScoringBreakdown

	assert.Equal(t, "No exact skill matches", b.SkillMatch.Details)
	assert.Equal(t, "No related skills", b.RelatedSkills.Details)
	assert.Equal(t, "No location match", b.Location.Details)
	assert.Equal(t, "Standard stipend", b.Stipend.Details)
	assert.Equal(t, "No growth opportunity", b.GrowthPotential.Details)
}

func TestParseBreakdownMode(t *testing.T) {
	m, err := ParseBreakdownMode("")
	require.NoError(t, err)
	assert.Equal(t, BreakdownDisplay, m)

	m, err = ParseBreakdownMode(" Weighted ")
	require.NoError(t, err)
	assert.Equal(t, BreakdownWeighted, m)

	_, err = ParseBreakdownMode("fancy")
	assert.Error(t, err)
}
