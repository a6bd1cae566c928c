package models

// Category is the tier an internship lands in for a given profile.
type Category string

const (
	CategoryBestFit     Category = "best_fit"
	CategoryGrowth      Category = "growth"
	CategoryAlternative Category = "alternative"
	CategoryNoMatch     Category = "no_match"
)

// BreakdownEntry is one factor of the explainable score.
type BreakdownEntry struct {
	Points  int    `json:"points" example:"3"`
	Details string `json:"details" example:"+3 for exact skill matches: python"`
}

// ScoringBreakdown lists every factor shown to the student.
type ScoringBreakdown struct {
	SkillMatch      BreakdownEntry `json:"skillMatch"`
	RelatedSkills   BreakdownEntry `json:"relatedSkills"`
	Education       BreakdownEntry `json:"education"`
	Department      BreakdownEntry `json:"department"`
	Sector          BreakdownEntry `json:"sector"`
	Location        BreakdownEntry `json:"location"`
	Stipend         BreakdownEntry `json:"stipend"`
	GrowthPotential BreakdownEntry `json:"growthPotential"`
}

// ScoreResult is the outcome of scoring one internship against one profile.
type ScoreResult struct {
	Score            int               `json:"score" example:"14"`
	Reasons          []string          `json:"reasons"`
	Narratives       []string          `json:"narratives"`
	Category         Category          `json:"category" example:"growth"`
	MatchingSkills   []string          `json:"matchingSkills"`
	MissingSkills    []string          `json:"missingSkills"`
	RelatedSkills    []string          `json:"relatedSkills"`
	ScoringBreakdown *ScoringBreakdown `json:"scoringBreakdown,omitempty"`
}

// Recommendation is an Internship merged with its ScoreResult
type Recommendation struct {
	Internship
	ScoreResult
}

// Buckets is the ranked, tiered recommendation output.
// @Description Ranked recommendations grouped by tier
type Buckets struct {
	BestFit     []Recommendation `json:"best_fit"`
	Growth      []Recommendation `json:"growth"`
	Alternative []Recommendation `json:"alternative"`
}

// Empty reports whether no useful match exists (no best-fit and no growth).
func (b *Buckets) Empty() bool {
	return len(b.BestFit) == 0 && len(b.Growth) == 0
}

// Total returns the number of entries across all buckets
func (b *Buckets) Total() int {
	return len(b.BestFit) + len(b.Growth) + len(b.Alternative)
}
