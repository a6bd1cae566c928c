package matching

import "github.com/internmatch/backend/models"

const (
	minWeight = 0
	maxWeight = 4
)

// ResolveWeights turns a preference map into scoring weights. Factors the
// map omits keep their default, values are clamped to [0,4] and unknown
// factor names are ignored.
func ResolveWeights(prefs map[string]int) models.Weights {
	w := models.DefaultWeights()
	if len(prefs) == 0 {
		return w
	}

	targets := map[string]*int{
		models.FactorSkills:     &w.Skills,
		models.FactorEducation:  &w.Education,
		models.FactorDepartment: &w.Department,
		models.FactorSector:     &w.Sector,
		models.FactorLocation:   &w.Location,
		models.FactorStipend:    &w.Stipend,
	}
	for factor, value := range prefs {
		if dst, ok := targets[NormalizeSkill(factor)]; ok {
			*dst = clamp(value, minWeight, maxWeight)
		}
	}
	return w
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
