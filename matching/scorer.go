package matching

import (
	"fmt"
	"strings"

	"github.com/internmatch/backend/models"
)

const (
	competitiveStipend = 20000
	highStipend        = 25000
	goodStipend        = 15000

	maxGapSkills    = 2
	maxNarrativeTop = 3
)

// Fixed bonus lists applied when bias mitigation is on.
var (
	ruralLocations = []string{"Coimbatore", "Indore", "Jaipur", "Bhubaneswar", "Kochi"}
	diverseSectors = []string{"Agriculture", "Healthcare", "Education"}
)

// Scorer computes explainable relevance scores. It is stateless and safe for
// concurrent use.
type Scorer struct {
	graph SkillGraph
	mode  BreakdownMode
}

// NewScorer creates a scorer over the given adjacency graph. A nil graph
// selects the default one.
func NewScorer(graph SkillGraph, mode BreakdownMode) *Scorer {
	if graph == nil {
		graph = DefaultGraph()
	}
	if mode == "" {
		mode = BreakdownDisplay
	}
	return &Scorer{graph: graph, mode: mode}
}

// Graph returns the adjacency graph used by the scorer
func (s *Scorer) Graph() SkillGraph {
	return s.graph
}

// profileView holds the per-profile values reused for every catalog item.
type profileView struct {
	profile    *models.UserProfile
	userSkills map[string]struct{}
	related    map[string]struct{}
}

func (s *Scorer) view(p *models.UserProfile) *profileView {
	skills := canonicalSkills(p.Skills)
	set := make(map[string]struct{}, len(skills))
	for _, sk := range skills {
		set[sk] = struct{}{}
	}
	return &profileView{
		profile:    p,
		userSkills: set,
		related:    s.graph.Related(p.Skills),
	}
}

// Score evaluates one internship against one profile.
func (s *Scorer) Score(p *models.UserProfile, item *models.Internship, w models.Weights, biasMitigation bool) models.ScoreResult {
	return s.score(s.view(p), item, w, biasMitigation)
}

func (s *Scorer) score(v *profileView, item *models.Internship, w models.Weights, biasMitigation bool) models.ScoreResult {
	p := v.profile
	itemSkills := canonicalSkills(item.Skills)

	matching := make([]string, 0, len(itemSkills))
	missing := make([]string, 0, len(itemSkills))
	related := make([]string, 0)
	for _, sk := range itemSkills {
		if _, ok := v.userSkills[sk]; ok {
			matching = append(matching, sk)
		} else {
			missing = append(missing, sk)
		}
		if _, ok := v.related[sk]; ok {
			related = append(related, sk)
		}
	}

	f := factors{
		matching:   matching,
		missing:    missing,
		related:    related,
		education:  sameAttribute(p.Education, item.Education),
		department: sameAttribute(p.Department, item.Department),
		sector:     sameAttribute(p.Sector, item.Sector),
		location:   sameAttribute(p.Location, item.Location),
		stipend:    item.Stipend.Int(),
	}

	result := models.ScoreResult{
		Reasons:        []string{},
		Narratives:     []string{},
		Category:       models.CategoryAlternative,
		MatchingSkills: matching,
		MissingSkills:  missing,
		RelatedSkills:  related,
	}

	// Gate: without any skill signal only a full profile alignment survives
	if !f.hasSkillSignal() {
		if !f.profileAligned() {
			result.Category = models.CategoryNoMatch
			return result
		}
		result.Score = 1
		result.Reasons = append(result.Reasons, "Perfect education/department/sector match despite skill gap")
	}

	score := result.Score
	reasons := result.Reasons

	if len(matching) > 0 {
		score += len(matching) * w.Skills
		reasons = append(reasons, "Skill match: "+strings.Join(matching, ", "))
	}
	if len(related) > 0 {
		score += relatedCredit(len(related), len(matching), relatedMultiplier(w.Skills))
		reasons = append(reasons, "Related skills: "+strings.Join(related, ", "))
	}

	if f.education {
		score += w.Education
		reasons = append(reasons, "Education matches: "+item.Education)
	}
	if f.department {
		score += w.Department
		reasons = append(reasons, "Department matches: "+item.Department)
	}
	if f.sector {
		score += w.Sector
		reasons = append(reasons, "Sector matches: "+item.Sector)
	}

	// Location only breaks ties between skill-relevant items
	if f.locationCounts() {
		score += w.Location
		reasons = append(reasons, "Location matches: "+item.Location)
	}

	if f.stipend >= competitiveStipend {
		score += w.Stipend
		reasons = append(reasons, fmt.Sprintf("Competitive stipend: ₹%d", f.stipend))
	}

	if biasMitigation {
		if containsFold(ruralLocations, item.Location) {
			score++
			reasons = append(reasons, "Rural opportunity boost: "+item.Location)
		}
		if containsFold(diverseSectors, item.Sector) {
			score++
			reasons = append(reasons, "Diverse sector boost: "+item.Sector)
		}
	}

	gap := f.opportunityGap()
	if gap {
		score++
		reasons = append(reasons, fmt.Sprintf("Growth potential: add %s to qualify fully", strings.Join(f.gapSkills(), ", ")))
	}

	result.Score = score
	result.Reasons = reasons
	result.Narratives = narratives(f, item)
	result.Category = classify(f.classifierInput(), models.CategoryAlternative)
	result.ScoringBreakdown = s.breakdown(f, item, w)

	// Zero-weight preferences can cancel every contribution; such items are
	// excluded like gate rejects.
	if result.Score <= 0 {
		return models.ScoreResult{
			Reasons:        []string{},
			Narratives:     []string{},
			Category:       models.CategoryNoMatch,
			MatchingSkills: matching,
			MissingSkills:  missing,
			RelatedSkills:  related,
		}
	}

	return result
}

func relatedMultiplier(skillWeight int) int {
	return max(1, skillWeight-1)
}

// relatedCredit caps related-skill credit by the exact-match credit.
func relatedCredit(related, matching, multiplier int) int {
	return min(related*multiplier, matching*multiplier)
}

// factors captures the per-item comparison outcome shared by scoring,
// narratives, classification and breakdown.
type factors struct {
	matching   []string
	missing    []string
	related    []string
	education  bool
	department bool
	sector     bool
	location   bool
	stipend    int
}

func (f factors) hasSkillSignal() bool {
	return len(f.matching) > 0 || len(f.related) > 0
}

func (f factors) profileAligned() bool {
	return f.education && f.department && f.sector
}

func (f factors) locationCounts() bool {
	return f.location && f.hasSkillSignal()
}

// opportunityGap: one or two skills short, with some contextual relevance.
func (f factors) opportunityGap() bool {
	n := len(f.missing)
	return n >= 1 && n <= maxGapSkills && (len(f.matching) >= 1 || f.sector || f.department)
}

func (f factors) gapSkills() []string {
	return firstN(f.missing, maxGapSkills)
}

func (f factors) classifierInput() classifierInput {
	return classifierInput{
		matching:       len(f.matching),
		related:        len(f.related),
		opportunityGap: f.opportunityGap(),
		profileAligned: f.profileAligned(),
	}
}

func narratives(f factors, item *models.Internship) []string {
	out := []string{}

	switch n := len(f.matching); {
	case n >= maxNarrativeTop:
		out = append(out, "Strong skill match: "+strings.Join(firstN(f.matching, maxNarrativeTop), ", "))
	case n == 2:
		out = append(out, "Good skill match: "+strings.Join(f.matching, ", "))
	case n == 1:
		out = append(out, "Skill match: "+f.matching[0])
	}

	if len(f.related) > 0 {
		out = append(out, "Related skills: "+strings.Join(firstN(f.related, 2), ", "))
	}
	if f.education {
		out = append(out, "Education match: "+item.Education)
	}
	if f.department {
		out = append(out, "Department match: "+item.Department)
	}
	if f.sector {
		out = append(out, "Sector match: "+item.Sector)
	}
	if f.locationCounts() {
		out = append(out, "Location match: "+item.Location)
	}

	switch {
	case f.stipend >= highStipend:
		out = append(out, fmt.Sprintf("High stipend: ₹%d", f.stipend))
	case f.stipend >= goodStipend:
		out = append(out, fmt.Sprintf("Good stipend: ₹%d", f.stipend))
	}

	if f.opportunityGap() {
		out = append(out, "Growth potential: Learn "+strings.Join(f.gapSkills(), ", "))
	}
	return out
}

func firstN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
