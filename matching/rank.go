package matching

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/internmatch/backend/models"
)

// MaxBucketSize caps every output bucket.
const MaxBucketSize = 10

// Ranker scores a catalog concurrently and groups the survivors into tiers.
type Ranker struct {
	scorer  *Scorer
	workers int
}

// NewRanker creates a ranker. workers <= 0 uses GOMAXPROCS.
func NewRanker(scorer *Scorer, workers int) *Ranker {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Ranker{scorer: scorer, workers: workers}
}

// Scorer returns the underlying scorer
func (r *Ranker) Scorer() *Scorer {
	return r.scorer
}

// Rank resolves weights and the bias flag from the profile and ranks catalog.
func (r *Ranker) Rank(p *models.UserProfile, catalog []models.Internship) models.Buckets {
	return r.RankWith(p, catalog, ResolveWeights(p.Preferences), p.BiasMitigationEnabled())
}

// RankWith scores every item, drops zero scores, orders survivors by score
// then exact-match count (stable otherwise) and splits them into buckets of
// at most MaxBucketSize entries.
func (r *Ranker) RankWith(p *models.UserProfile, catalog []models.Internship, w models.Weights, biasMitigation bool) models.Buckets {
	scored := r.scoreAll(p, catalog, w, biasMitigation)

	kept := make([]models.Recommendation, 0, len(scored))
	for _, rec := range scored {
		if rec.Score > 0 {
			kept = append(kept, rec)
		}
	}

	// Order is fixed here, after every score is known, so concurrent
	// completion order never leaks into the output.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return len(kept[i].MatchingSkills) > len(kept[j].MatchingSkills)
	})

	buckets := models.Buckets{
		BestFit:     []models.Recommendation{},
		Growth:      []models.Recommendation{},
		Alternative: []models.Recommendation{},
	}
	for _, rec := range kept {
		switch rec.Category {
		case models.CategoryBestFit:
			buckets.BestFit = appendCapped(buckets.BestFit, rec)
		case models.CategoryGrowth:
			buckets.Growth = appendCapped(buckets.Growth, rec)
		case models.CategoryAlternative:
			buckets.Alternative = appendCapped(buckets.Alternative, rec)
		}
	}
	return buckets
}

func (r *Ranker) scoreAll(p *models.UserProfile, catalog []models.Internship, w models.Weights, biasMitigation bool) []models.Recommendation {
	view := r.scorer.view(p)
	scored := make([]models.Recommendation, len(catalog))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i := range catalog {
		g.Go(func() error {
			scored[i] = models.Recommendation{
				Internship:  catalog[i],
				ScoreResult: r.scorer.score(view, &catalog[i], w, biasMitigation),
			}
			return nil
		})
	}
	_ = g.Wait()

	return scored
}

func appendCapped(bucket []models.Recommendation, rec models.Recommendation) []models.Recommendation {
	if len(bucket) >= MaxBucketSize {
		return bucket
	}
	return append(bucket, rec)
}
