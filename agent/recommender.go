package agent

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/internmatch/backend/learning"
	"github.com/internmatch/backend/matching"
	"github.com/internmatch/backend/models"
	"github.com/internmatch/backend/storage"
)

// ErrMissingProfile is returned when Recommend is called without a profile
var ErrMissingProfile = errors.New("profile is required")

// CatalogSource hands out the current immutable catalog snapshot
type CatalogSource interface {
	Snapshot() *storage.Snapshot
}

// Recommender ranks the catalog against a profile and falls back to a
// learning path when nothing matches
type Recommender struct {
	catalog  CatalogSource
	ranker   *matching.Ranker
	learning *learning.Service
}

// NewRecommender creates a recommender over the given catalog
func NewRecommender(catalog CatalogSource, ranker *matching.Ranker, learningService *learning.Service) *Recommender {
	if learningService == nil {
		learningService = learning.NewService(nil, nil, 0)
	}
	return &Recommender{
		catalog:  catalog,
		ranker:   ranker,
		learning: learningService,
	}
}

// Result carries either the ranked buckets or the no-match learning path
type Result struct {
	Buckets *models.Buckets
	NoMatch *models.NoMatchResponse
}

// Body returns the value to serialize as the response
func (r *Result) Body() interface{} {
	if r.NoMatch != nil {
		return r.NoMatch
	}
	return r.Buckets
}

// Recommend runs one ranking pass. The learning path is requested only
// after bucketing, and only when every bucket is empty.
func (r *Recommender) Recommend(ctx context.Context, profile *models.UserProfile) (*Result, error) {
	if profile == nil {
		return nil, ErrMissingProfile
	}

	start := time.Now()
	snapshot := r.catalog.Snapshot()
	buckets := r.ranker.Rank(profile, snapshot.Items())

	log.Printf("[Agent] Ranked %d internships in %v: best_fit=%d growth=%d alternative=%d",
		snapshot.Len(), time.Since(start), len(buckets.BestFit), len(buckets.Growth), len(buckets.Alternative))

	if !buckets.Empty() {
		return &Result{Buckets: &buckets}, nil
	}

	log.Printf("[Agent] No matches, building learning path")
	noMatch := r.learning.OnNoMatches(ctx, profile)
	return &Result{NoMatch: &noMatch}, nil
}

// Score explains how one internship scores against a profile
func (r *Recommender) Score(profile *models.UserProfile, internshipID string) (*models.Recommendation, error) {
	item, err := r.catalog.Snapshot().Get(internshipID)
	if err != nil {
		return nil, err
	}
	result := r.ranker.Scorer().Score(profile, &item, matching.ResolveWeights(profile.Preferences), profile.BiasMitigationEnabled())
	return &models.Recommendation{Internship: item, ScoreResult: result}, nil
}
