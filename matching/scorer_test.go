package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internmatch/backend/models"
)

func boolPtr(b bool) *bool { return &b }

func pythonProfile() *models.UserProfile {
	return &models.UserProfile{
		Skills:     []string{"python"},
		Education:  "B.Tech",
		Department: "CSE",
		Sector:     "Technology",
		Location:   "Bangalore",
	}
}

func djangoInternship() *models.Internship {
	return &models.Internship{
		ID:         "int-1",
		Title:      "Backend Intern",
		Company:    "TechCorp",
		Skills:     []string{"python", "django"},
		Education:  "B.Tech",
		Department: "CSE",
		Sector:     "Technology",
		Location:   "Bangalore",
		Stipend:    "22000",
	}
}

func TestScore_PythonDjangoScenario(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)

	res := s.Score(pythonProfile(), djangoInternship(), models.DefaultWeights(), true)

	assert.Equal(t, []string{"python"}, res.MatchingSkills)
	assert.Equal(t, []string{"django"}, res.MissingSkills)
	assert.Contains(t, res.RelatedSkills, "django")
	// 3 skill + 2 related + 2 edu + 2 dept + 2 sector + 1 location + 1 stipend + 1 growth
	assert.Equal(t, 14, res.Score)
	// one missing skill with an exact match is an opportunity gap, which
	// outranks the partial-overlap best_fit row
	assert.Equal(t, models.CategoryGrowth, res.Category)
	assert.Contains(t, res.Reasons, "Growth potential: add django to qualify fully")
	assert.Contains(t, res.Narratives, "Growth potential: Learn django")
	assert.Contains(t, res.Reasons, "Competitive stipend: ₹22000")
}

func TestScore_GateRejectsSkillMismatch(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	p := &models.UserProfile{Skills: []string{"nonexistent_skill_xyz"}, Education: "BA", Sector: "Arts"}

	res := s.Score(p, djangoInternship(), models.DefaultWeights(), true)

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, models.CategoryNoMatch, res.Category)
	assert.Empty(t, res.Reasons)
	assert.Empty(t, res.Narratives)
	assert.Nil(t, res.ScoringBreakdown)
	assert.Equal(t, []string{"python", "django"}, res.MissingSkills)
}

func TestScore_GateAdmitsFullProfileAlignment(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	p := &models.UserProfile{Skills: []string{"cobol"}, Education: "b.tech", Department: "cse", Sector: "technology"}
	item := djangoInternship()
	item.Skills = []string{"go", "rust", "kubernetes"}
	item.Stipend = "1000"

	res := s.Score(p, item, models.DefaultWeights(), true)

	// 1 gate + 2 + 2 + 2, no location credit without skill signal
	assert.Equal(t, 7, res.Score)
	assert.Equal(t, models.CategoryAlternative, res.Category)
	assert.Equal(t, "Perfect education/department/sector match despite skill gap", res.Reasons[0])
	assert.NotContains(t, res.Reasons, "Location matches: Bangalore")
}

func TestScore_GateAdmittedItemWithGapIsGrowth(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	p := &models.UserProfile{Education: "B.Tech", Department: "CSE", Sector: "Technology"}

	res := s.Score(p, djangoInternship(), models.DefaultWeights(), true)

	assert.Equal(t, models.CategoryGrowth, res.Category)
	assert.Equal(t, 1+2+2+2+1+1, res.Score)
}

func TestScore_ZeroIffNoMatch(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	profiles := []*models.UserProfile{
		pythonProfile(),
		{Skills: []string{"javascript"}},
		{Skills: []string{"html"}, Preferences: map[string]int{"skills": 0, "education": 0, "department": 0, "sector": 0, "location": 0, "stipend": 0}},
		{Education: "B.Tech", Department: "CSE", Sector: "Technology"},
		{},
	}
	items := []*models.Internship{
		djangoInternship(),
		{Skills: []string{"React", "CSS"}, Stipend: "abc"},
		{Skills: []string{"javascript", "typescript", "node.js"}, Location: "Kochi", Sector: "Healthcare"},
		{},
	}

	for _, p := range profiles {
		w := ResolveWeights(p.Preferences)
		for _, item := range items {
			res := s.Score(p, item, w, false)
			assert.Equal(t, res.Score == 0, res.Category == models.CategoryNoMatch, "profile=%+v item=%+v", p, item)
		}
	}
}

func TestScore_SkillPartition(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	p := &models.UserProfile{Skills: []string{" Python ", "SQL", "python"}}
	item := &models.Internship{Skills: []string{"python", "Pandas", "SQL", "pandas", ""}}

	res := s.Score(p, item, models.DefaultWeights(), true)

	union := append(append([]string{}, res.MatchingSkills...), res.MissingSkills...)
	assert.ElementsMatch(t, []string{"python", "pandas", "sql"}, union)
	for _, m := range res.MatchingSkills {
		assert.NotContains(t, res.MissingSkills, m)
	}
}

func TestScore_AddingExactSkillNeverDecreasesScore(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	item := &models.Internship{
		Skills:   []string{"python", "sql", "docker", "react"},
		Sector:   "Technology",
		Location: "Pune",
		Stipend:  "18000",
	}
	p := &models.UserProfile{Sector: "Technology", Location: "Pune"}
	w := models.DefaultWeights()

	prev := s.Score(p, item, w, true).Score
	for _, skill := range item.Skills {
		p.Skills = append(p.Skills, skill)
		next := s.Score(p, item, w, true).Score
		assert.GreaterOrEqual(t, next, prev, "after adding %s", skill)
		prev = next
	}
}

func TestScore_BiasMitigationAddsTwo(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	p := &models.UserProfile{Skills: []string{"python"}}
	item := &models.Internship{Skills: []string{"python"}, Location: "Indore", Sector: "Agriculture"}

	on := s.Score(p, item, models.DefaultWeights(), true)
	off := s.Score(p, item, models.DefaultWeights(), false)

	assert.Equal(t, off.Score+2, on.Score)
	assert.Contains(t, on.Reasons, "Rural opportunity boost: Indore")
	assert.Contains(t, on.Reasons, "Diverse sector boost: Agriculture")
	assert.NotContains(t, off.Reasons, "Rural opportunity boost: Indore")
}

func TestScore_LocationNeedsSkillSignal(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	item := &models.Internship{Skills: []string{"python"}, Location: "Pune", Education: "BSc", Department: "Math", Sector: "Finance"}

	withSkill := s.Score(&models.UserProfile{Skills: []string{"python"}, Location: "pune"}, item, models.DefaultWeights(), false)
	assert.Contains(t, withSkill.Reasons, "Location matches: Pune")
	assert.Equal(t, 1, withSkill.ScoringBreakdown.Location.Points)

	aligned := &models.UserProfile{Location: "Pune", Education: "BSc", Department: "Math", Sector: "Finance"}
	withoutSkill := s.Score(aligned, item, models.DefaultWeights(), false)
	assert.NotContains(t, withoutSkill.Reasons, "Location matches: Pune")
	assert.Equal(t, 0, withoutSkill.ScoringBreakdown.Location.Points)
}

func TestScore_RelatedCreditCappedByExactCredit(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	p := &models.UserProfile{Skills: []string{"javascript"}, Sector: "Technology"}
	item := &models.Internship{Skills: []string{"html", "css", "react", "typescript"}, Sector: "Technology"}

	res := s.Score(p, item, models.DefaultWeights(), false)

	// no exact match: related credit is capped at zero, only the sector counts
	assert.Empty(t, res.MatchingSkills)
	assert.Len(t, res.RelatedSkills, 4)
	require.NotNil(t, res.ScoringBreakdown)
	assert.Equal(t, 0, res.ScoringBreakdown.RelatedSkills.Points)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, models.CategoryBestFit, res.Category)
}

func TestScore_StipendNarrativeTiers(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	p := &models.UserProfile{Skills: []string{"python"}}

	cases := []struct {
		stipend   models.FlexibleString
		narrative string
		bonus     bool
	}{
		{"30000", "High stipend: ₹30000", true},
		{"25000", "High stipend: ₹25000", true},
		{"20000", "Good stipend: ₹20000", true},
		{"15000", "Good stipend: ₹15000", false},
		{"not a number", "", false},
	}
	for _, tc := range cases {
		res := s.Score(p, &models.Internship{Skills: []string{"python"}, Stipend: tc.stipend}, models.DefaultWeights(), false)
		if tc.narrative != "" {
			assert.Contains(t, res.Narratives, tc.narrative)
		}
		assert.Equal(t, tc.bonus, res.ScoringBreakdown.Stipend.Points > 0, "stipend %s", tc.stipend)
	}
}

func TestScore_NarrativeSkillTiers(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	item := &models.Internship{Skills: []string{"go", "sql", "docker", "linux"}}

	res := s.Score(&models.UserProfile{Skills: []string{"go", "sql", "docker", "linux"}}, item, models.DefaultWeights(), false)
	require.NotEmpty(t, res.Narratives)
	assert.Equal(t, "Strong skill match: go, sql, docker", res.Narratives[0])

	res = s.Score(&models.UserProfile{Skills: []string{"go", "sql"}}, item, models.DefaultWeights(), false)
	assert.Equal(t, "Good skill match: go, sql", res.Narratives[0])

	res = s.Score(&models.UserProfile{Skills: []string{"go"}}, item, models.DefaultWeights(), false)
	assert.Equal(t, "Skill match: go", res.Narratives[0])
}

func TestScore_CustomWeights(t *testing.T) {
	s := NewScorer(nil, BreakdownDisplay)
	p := pythonProfile()
	p.Preferences = map[string]int{"skills": 4, "location": 0}

	res := s.Score(p, djangoInternship(), ResolveWeights(p.Preferences), true)

	// 4 skill + min(1*3,1*3) related + 2 + 2 + 2 + 0 location + 1 stipend + 1 growth
	assert.Equal(t, 15, res.Score)
	// display breakdown keeps the fixed multipliers
	assert.Equal(t, 3, res.ScoringBreakdown.SkillMatch.Points)
	assert.Equal(t, 2, res.ScoringBreakdown.RelatedSkills.Points)
	assert.Equal(t, 1, res.ScoringBreakdown.Location.Points)
}
