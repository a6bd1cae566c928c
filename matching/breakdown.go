package matching

import (
	"fmt"
	"strings"

	"github.com/internmatch/backend/models"
)

// BreakdownMode selects how breakdown points are computed.
type BreakdownMode string

const (
	// BreakdownDisplay reports fixed display multipliers (3 per exact skill,
	// 2 per related skill, 2/2/2/1/1/1 for the rest) regardless of weights.
	BreakdownDisplay BreakdownMode = "display"
	// BreakdownWeighted reports the contribution the weights actually made.
	BreakdownWeighted BreakdownMode = "weighted"
)

var displayWeights = models.Weights{
	Skills:     3,
	Education:  2,
	Department: 2,
	Sector:     2,
	Location:   1,
	Stipend:    1,
}

// ParseBreakdownMode validates a mode name.
func ParseBreakdownMode(s string) (BreakdownMode, error) {
	switch m := BreakdownMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", BreakdownDisplay:
		return BreakdownDisplay, nil
	case BreakdownWeighted:
		return BreakdownWeighted, nil
	default:
		return "", fmt.Errorf("unknown breakdown mode %q", s)
	}
}

func (s *Scorer) breakdown(f factors, item *models.Internship, w models.Weights) *models.ScoringBreakdown {
	skillPer, relatedPer := displayWeights.Skills, displayWeights.Skills-1
	shown := displayWeights
	if s.mode == BreakdownWeighted {
		skillPer, relatedPer = w.Skills, relatedMultiplier(w.Skills)
		shown = w
	}

	b := &models.ScoringBreakdown{}

	if n := len(f.matching); n > 0 {
		pts := n * skillPer
		b.SkillMatch = models.BreakdownEntry{Points: pts, Details: fmt.Sprintf("+%d for exact skill matches: %s", pts, strings.Join(f.matching, ", "))}
	} else {
		b.SkillMatch = models.BreakdownEntry{Details: "No exact skill matches"}
	}

	if len(f.related) > 0 {
		pts := relatedCredit(len(f.related), len(f.matching), relatedPer)
		b.RelatedSkills = models.BreakdownEntry{Points: pts, Details: fmt.Sprintf("+%d for related skills: %s", pts, strings.Join(firstN(f.related, 2), ", "))}
	} else {
		b.RelatedSkills = models.BreakdownEntry{Details: "No related skills"}
	}

	b.Education = attributeEntry(f.education, shown.Education, "education", item.Education)
	b.Department = attributeEntry(f.department, shown.Department, "department", item.Department)
	b.Sector = attributeEntry(f.sector, shown.Sector, "sector", item.Sector)
	b.Location = attributeEntry(f.locationCounts(), shown.Location, "location", item.Location)

	if f.stipend >= competitiveStipend {
		b.Stipend = models.BreakdownEntry{Points: shown.Stipend, Details: fmt.Sprintf("+%d for competitive stipend: ₹%d", shown.Stipend, f.stipend)}
	} else {
		b.Stipend = models.BreakdownEntry{Details: "Standard stipend"}
	}

	if f.opportunityGap() {
		b.GrowthPotential = models.BreakdownEntry{Points: 1, Details: "+1 for growth potential: Learn " + strings.Join(f.gapSkills(), ", ")}
	} else {
		b.GrowthPotential = models.BreakdownEntry{Details: "No growth opportunity"}
	}

	return b
}

func attributeEntry(matched bool, points int, label, value string) models.BreakdownEntry {
	if !matched {
		return models.BreakdownEntry{Details: "No " + label + " match"}
	}
	return models.BreakdownEntry{Points: points, Details: fmt.Sprintf("+%d for %s match: %s", points, label, value)}
}
