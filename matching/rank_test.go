package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internmatch/backend/models"
)

func newTestRanker(workers int) *Ranker {
	return NewRanker(NewScorer(nil, BreakdownDisplay), workers)
}

func TestRank_BucketsNeverExceedCap(t *testing.T) {
	catalog := make([]models.Internship, 0, 60)
	for i := 0; i < 20; i++ {
		catalog = append(catalog,
			models.Internship{ID: fmt.Sprintf("best-%d", i), Skills: []string{"go", "sql", "docker"}},
			models.Internship{ID: fmt.Sprintf("growth-%d", i), Skills: []string{"go", "kafka"}},
			models.Internship{ID: fmt.Sprintf("alt-%d", i), Skills: []string{"x", "y", "z"}, Education: "BSc", Department: "CS", Sector: "IT"},
		)
	}
	p := &models.UserProfile{Skills: []string{"go", "sql", "docker"}, Education: "BSc", Department: "CS", Sector: "IT"}

	buckets := newTestRanker(4).Rank(p, catalog)

	assert.Len(t, buckets.BestFit, MaxBucketSize)
	assert.Len(t, buckets.Growth, MaxBucketSize)
	assert.Len(t, buckets.Alternative, MaxBucketSize)
}

func TestRank_SortsByScoreThenMatchCountStable(t *testing.T) {
	catalog := []models.Internship{
		{ID: "low", Skills: []string{"python"}},
		{ID: "tie-a", Skills: []string{"python"}, Stipend: "20000"},
		{ID: "high", Skills: []string{"python", "sql", "go"}},
		{ID: "tie-b", Skills: []string{"python"}, Stipend: "21000"},
	}
	p := &models.UserProfile{Skills: []string{"python", "sql", "go"}}

	buckets := newTestRanker(3).RankWith(p, catalog, models.DefaultWeights(), false)

	ids := []string{}
	for _, r := range buckets.BestFit {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"high", "tie-a", "tie-b", "low"}, ids)
}

func TestRank_MatchCountBreaksScoreTies(t *testing.T) {
	// both score 6: one via two exact skills, one via one skill plus attributes
	catalog := []models.Internship{
		{ID: "one-skill", Skills: []string{"python"}, Education: "BSc", Department: "EE"},
		{ID: "two-skills", Skills: []string{"python", "sql"}},
	}
	p := &models.UserProfile{Skills: []string{"python", "sql"}, Education: "BSc", Department: "EE"}

	buckets := newTestRanker(2).RankWith(p, catalog, models.Weights{Skills: 3, Education: 1, Department: 2}, false)

	require.Len(t, buckets.BestFit, 2)
	assert.Equal(t, buckets.BestFit[0].Score, buckets.BestFit[1].Score)
	assert.Equal(t, "two-skills", buckets.BestFit[0].ID)
}

func TestRank_ConcurrencyDoesNotChangeOrder(t *testing.T) {
	catalog := make([]models.Internship, 0, 200)
	skills := [][]string{{"python"}, {"python", "django"}, {"javascript", "react"}, {"sql", "python", "pandas"}, {"html"}}
	locations := []string{"Pune", "Indore", "Kochi", "Delhi"}
	for i := 0; i < 200; i++ {
		catalog = append(catalog, models.Internship{
			ID:       fmt.Sprintf("int-%03d", i),
			Skills:   skills[i%len(skills)],
			Location: locations[i%len(locations)],
			Stipend:  models.FlexibleString(fmt.Sprint(10000 + (i%7)*3000)),
		})
	}
	p := &models.UserProfile{Skills: []string{"python", "javascript"}, Location: "Pune"}

	sequential := newTestRanker(1).Rank(p, catalog)
	for i := 0; i < 5; i++ {
		assert.Equal(t, sequential, newTestRanker(16).Rank(p, catalog))
	}
}

func TestRank_NoMatchesYieldsEmptyBuckets(t *testing.T) {
	catalog := []models.Internship{
		{ID: "a", Skills: []string{"python"}, Education: "B.Tech", Department: "CSE", Sector: "Technology"},
		{ID: "b", Skills: []string{"figma"}, Sector: "Design"},
	}
	p := &models.UserProfile{Skills: []string{"nonexistent_skill_xyz"}, Education: "BA", Department: "History", Sector: "Arts"}

	buckets := newTestRanker(0).Rank(p, catalog)

	assert.True(t, buckets.Empty())
	assert.Equal(t, 0, buckets.Total())
	assert.NotNil(t, buckets.BestFit)
	assert.NotNil(t, buckets.Alternative)
}

func TestRank_EmptyCatalog(t *testing.T) {
	buckets := newTestRanker(0).Rank(pythonProfile(), nil)
	assert.True(t, buckets.Empty())
}

func TestRank_TotalBoundedByPositiveScores(t *testing.T) {
	catalog := []models.Internship{
		*djangoInternship(),
		{ID: "x", Skills: []string{"python", "numpy", "pandas"}},
		{ID: "y", Skills: []string{"figma"}},
		{ID: "z", Skills: []string{"go"}, Education: "B.Tech", Department: "CSE", Sector: "Technology"},
	}
	p := pythonProfile()
	r := newTestRanker(0)

	positive := 0
	for i := range catalog {
		if r.Scorer().Score(p, &catalog[i], models.DefaultWeights(), true).Score > 0 {
			positive++
		}
	}
	buckets := r.Rank(p, catalog)
	assert.LessOrEqual(t, buckets.Total(), positive)
	assert.Equal(t, 3, positive)
}

func TestRank_BiasToggleFromProfile(t *testing.T) {
	catalog := []models.Internship{{ID: "rural", Skills: []string{"python"}, Location: "Jaipur", Sector: "Healthcare"}}
	on := &models.UserProfile{Skills: []string{"python"}}
	off := &models.UserProfile{Skills: []string{"python"}, BiasMitigation: boolPtr(false)}

	r := newTestRanker(0)
	withBias := r.Rank(on, catalog)
	withoutBias := r.Rank(off, catalog)

	require.Len(t, withBias.BestFit, 1)
	require.Len(t, withoutBias.BestFit, 1)
	assert.Equal(t, withoutBias.BestFit[0].Score+2, withBias.BestFit[0].Score)
}
