package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internmatch/backend/learning"
	"github.com/internmatch/backend/matching"
	"github.com/internmatch/backend/models"
	"github.com/internmatch/backend/storage"
)

type fixedCatalog struct {
	snap *storage.Snapshot
}

func (f fixedCatalog) Snapshot() *storage.Snapshot { return f.snap }

func newCatalog(items ...models.Internship) fixedCatalog {
	return fixedCatalog{snap: storage.NewSnapshot("test", items)}
}

func testInternships() []models.Internship {
	return []models.Internship{
		{ID: "1", Title: "Data Analyst Intern", Company: "Acme", Education: "B.Tech", Department: "CSE", Sector: "Technology", Location: "Bangalore", Skills: []string{"Python", "SQL", "Excel", "Tableau"}, Stipend: "25000"},
		{ID: "2", Title: "Marketing Intern", Company: "Brandly", Sector: "Marketing", Location: "Mumbai", Skills: []string{"Communication"}, Stipend: "8000"},
	}
}

func newRanker() *matching.Ranker {
	return matching.NewRanker(matching.NewScorer(matching.DefaultGraph(), matching.BreakdownDisplay), 2)
}

type stubGenerator struct {
	steps []models.LearningStep
	err   error
	calls int
}

func (s *stubGenerator) GenerateLearningPath(context.Context, *models.UserProfile) ([]models.LearningStep, error) {
	s.calls++
	return s.steps, s.err
}

func TestRecommend_ReturnsBuckets(t *testing.T) {
	gen := &stubGenerator{}
	rec := NewRecommender(newCatalog(testInternships()...), newRanker(), learning.NewService(gen, nil, time.Second))

	res, err := rec.Recommend(context.Background(), &models.UserProfile{
		Education: "B.Tech", Department: "CSE", Sector: "Technology", Skills: []string{"Python"},
	})

	require.NoError(t, err)
	require.NotNil(t, res.Buckets)
	assert.Nil(t, res.NoMatch)
	assert.Equal(t, 1, res.Buckets.Total())
	assert.Equal(t, 0, gen.calls, "fallback must not run when buckets are non-empty")
	assert.Same(t, res.Buckets, res.Body())
}

func TestRecommend_NoMatchesFallsBackToLearningPath(t *testing.T) {
	gen := &stubGenerator{err: errors.New("llm down")}
	rec := NewRecommender(newCatalog(testInternships()...), newRanker(), learning.NewService(gen, nil, time.Second))

	res, err := rec.Recommend(context.Background(), &models.UserProfile{Skills: []string{"nonexistent_skill_xyz"}})

	require.NoError(t, err)
	assert.Nil(t, res.Buckets)
	require.NotNil(t, res.NoMatch)
	assert.Equal(t, models.StatusNoMatches, res.NoMatch.Status)
	assert.NotEmpty(t, res.NoMatch.LearningPath)
	assert.Equal(t, 1, gen.calls)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	rec := NewRecommender(newCatalog(), newRanker(), nil)

	res, err := rec.Recommend(context.Background(), &models.UserProfile{Skills: []string{"Python"}})

	require.NoError(t, err)
	require.NotNil(t, res.NoMatch)
	assert.Equal(t, learning.MessageFallback, res.NoMatch.Message)
}

func TestRecommend_NilProfile(t *testing.T) {
	_, err := NewRecommender(newCatalog(), newRanker(), nil).Recommend(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingProfile)
}

func TestScore_SingleInternship(t *testing.T) {
	rec := NewRecommender(newCatalog(testInternships()...), newRanker(), nil)

	got, err := rec.Score(&models.UserProfile{Sector: "Technology", Skills: []string{"python"}}, "1")
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst Intern", got.Title)
	assert.Positive(t, got.Score)

	_, err = rec.Score(&models.UserProfile{}, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

type stubAnswerer struct {
	answer string
	err    error
}

func (s stubAnswerer) AnswerQuestion(context.Context, *models.Internship, string, string) (string, error) {
	return s.answer, s.err
}

func TestAsk(t *testing.T) {
	catalog := newCatalog(testInternships()...)

	tests := []struct {
		name     string
		answerer Answerer
		id       string
		language string
		want     string
		wantErr  error
	}{
		{name: "answer passes through", answerer: stubAnswerer{answer: "It is a data role."}, id: "1", want: "It is a data role."},
		{name: "model error uses summary", answerer: stubAnswerer{err: errors.New("timeout")}, id: "1",
			want: "This role focuses on Data Analyst Intern at Acme. Key skills: Python, SQL, Excel. Good match if your interests align."},
		{name: "summary without skills", answerer: stubAnswerer{err: errors.New("timeout")}, id: "2",
			want: "This role focuses on Marketing Intern at Brandly. Key skills: Communication. Good match if your interests align."},
		{name: "empty answer apologizes in hindi", answerer: stubAnswerer{answer: "  "}, id: "1", language: "hi",
			want: "क्षमा करें, इस समय उत्तर नहीं दे सका। कृपया अपना प्रश्न दोबारा पूछें।"},
		{name: "unknown language apologizes in english", answerer: stubAnswerer{}, id: "1", language: "zz",
			want: "Sorry, I could not generate a response right now. Please try rephrasing your question."},
		{name: "unknown internship", answerer: stubAnswerer{answer: "x"}, id: "missing", wantErr: ErrInternshipNotFound},
		{name: "no answerer", answerer: nil, id: "1", wantErr: ErrAssistantUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assistant := NewAssistant(catalog, tt.answerer, time.Second)
			got, err := assistant.Ask(context.Background(), tt.id, "What will I do?", tt.language)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
