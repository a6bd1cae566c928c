package matching

import "github.com/internmatch/backend/models"

type classifierInput struct {
	matching       int
	related        int
	opportunityGap bool
	profileAligned bool
}

// categoryRule is one row of the tier decision table
type categoryRule struct {
	name     string
	category models.Category
	applies  func(classifierInput) bool
}

// categoryRules is evaluated top to bottom; the first matching row wins.
var categoryRules = []categoryRule{
	{
		name:     "strong-skill-overlap",
		category: models.CategoryBestFit,
		applies: func(in classifierInput) bool {
			return in.matching >= 3 || (in.matching >= 2 && in.related >= 1)
		},
	},
	{
		name:     "growth-opportunity",
		category: models.CategoryGrowth,
		applies: func(in classifierInput) bool {
			return in.opportunityGap || (in.matching >= 1 && in.related >= 2)
		},
	},
	{
		name:     "partial-skill-overlap",
		category: models.CategoryBestFit,
		applies: func(in classifierInput) bool {
			return in.matching >= 1 || in.related >= 2
		},
	},
	{
		name:     "profile-aligned",
		category: models.CategoryAlternative,
		applies: func(in classifierInput) bool {
			return in.profileAligned
		},
	},
}

// classify returns the category of the first applicable rule, or fallback.
func classify(in classifierInput, fallback models.Category) models.Category {
	if rule, ok := matchRule(in); ok {
		return rule.category
	}
	return fallback
}

func matchRule(in classifierInput) (categoryRule, bool) {
	for _, rule := range categoryRules {
		if rule.applies(in) {
			return rule, true
		}
	}
	return categoryRule{}, false
}
