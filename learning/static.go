package learning

import (
	"strings"

	"github.com/internmatch/backend/models"
)

const maxStaticPlans = 3

// plan is a hand-authored course recommendation
type plan struct {
	title       string
	description string
	duration    string
	difficulty  string
	keySkill    string
	resources   []string
}

// sectorPlans groups plans by the sector family they serve. A plan is
// skipped when the student already lists its key skill.
type sectorPlans struct {
	name    string
	applies func(sector, education string) bool
	plans   []plan
}

var staticCatalog = []sectorPlans{
	{
		name: "technology",
		applies: func(sector, education string) bool {
			return strings.Contains(sector, "tech") || strings.Contains(sector, "software") || strings.Contains(education, "tech")
		},
		plans: []plan{
			{
				title:       "Python Programming Fundamentals",
				description: "Learn Python basics to qualify for most tech internships",
				duration:    "4-6 weeks",
				difficulty:  "Beginner",
				keySkill:    "python",
				resources:   []string{"Python.org tutorial", "Codecademy Python course", "FreeCodeCamp Python"},
			},
			{
				title:       "JavaScript & Web Development",
				description: "Master JavaScript for frontend and backend development",
				duration:    "6-8 weeks",
				difficulty:  "Intermediate",
				keySkill:    "javascript",
				resources:   []string{"MDN Web Docs", "JavaScript.info", "React documentation"},
			},
			{
				title:       "SQL & Database Management",
				description: "Learn SQL for data analysis and backend development",
				duration:    "3-4 weeks",
				difficulty:  "Beginner",
				keySkill:    "sql",
				resources:   []string{"W3Schools SQL", "SQLBolt", "Khan Academy SQL"},
			},
		},
	},
	{
		name: "business",
		applies: func(sector, _ string) bool {
			return strings.Contains(sector, "marketing") || strings.Contains(sector, "business")
		},
		plans: []plan{
			{
				title:       "Digital Marketing Fundamentals",
				description: "Learn digital marketing strategies and tools",
				duration:    "4-5 weeks",
				difficulty:  "Beginner",
				keySkill:    "digital marketing",
				resources:   []string{"Google Digital Marketing Course", "HubSpot Academy", "Coursera Digital Marketing"},
			},
			{
				title:       "Excel & Data Analysis",
				description: "Master Excel for business analysis and reporting",
				duration:    "3-4 weeks",
				difficulty:  "Beginner",
				keySkill:    "excel",
				resources:   []string{"Microsoft Excel Help", "ExcelJet", "Chandoo.org"},
			},
		},
	},
	{
		name: "finance",
		applies: func(sector, _ string) bool {
			return strings.Contains(sector, "financ")
		},
		plans: []plan{
			{
				title:       "Financial Analysis & Modeling",
				description: "Learn financial analysis techniques and Excel modeling",
				duration:    "5-6 weeks",
				difficulty:  "Intermediate",
				keySkill:    "financial analysis",
				resources:   []string{"CFI Financial Modeling", "Wall Street Prep", "Investopedia"},
			},
		},
	},
	{
		name: "design",
		applies: func(sector, _ string) bool {
			return strings.Contains(sector, "design")
		},
		plans: []plan{
			{
				title:       "UI/UX Design with Figma",
				description: "Learn design principles and Figma for UI/UX work",
				duration:    "4-5 weeks",
				difficulty:  "Beginner",
				keySkill:    "figma",
				resources:   []string{"Figma Academy", "Design+Code", "UX Mastery"},
			},
		},
	},
	{
		name:    "general",
		applies: func(string, string) bool { return true },
		plans: []plan{
			{
				title:       "Project Management Fundamentals",
				description: "Learn project management principles and tools",
				duration:    "3-4 weeks",
				difficulty:  "Beginner",
				keySkill:    "project management",
				resources:   []string{"PMI Learning", "Coursera Project Management", "Asana Academy"},
			},
		},
	},
}

var defaultPath = []models.LearningStep{
	{
		Step:        1,
		Skill:       "Core Skills Development",
		Resource:    "Online learning platforms (Coursera, Udemy, edX)",
		Description: "Build foundational skills relevant to your field of study",
		Duration:    "4-6 weeks",
		Difficulty:  "Beginner",
	},
	{
		Step:        2,
		Skill:       "Practical Projects",
		Resource:    "Create portfolio projects",
		Description: "Apply what you learn in small projects you can show to recruiters",
		Duration:    "3-4 weeks",
		Difficulty:  "Intermediate",
	},
	{
		Step:        3,
		Skill:       "Professional Networking",
		Resource:    "LinkedIn Learning - Professional Development",
		Description: "Connect with professionals and learn how internships are found in your sector",
		Duration:    "2-3 weeks",
		Difficulty:  "Beginner",
	},
}

// StaticLearningPath picks hand-authored plans by substring matching on the
// profile's sector and education. It never returns an empty path.
func StaticLearningPath(p *models.UserProfile) []models.LearningStep {
	sector := strings.ToLower(strings.TrimSpace(p.Sector))
	education := strings.ToLower(strings.TrimSpace(p.Education))

	has := make(map[string]bool, len(p.Skills))
	for _, s := range p.Skills {
		has[strings.ToLower(strings.TrimSpace(s))] = true
	}

	var picked []plan
	for _, group := range staticCatalog {
		if !group.applies(sector, education) {
			continue
		}
		for _, pl := range group.plans {
			if !has[pl.keySkill] {
				picked = append(picked, pl)
			}
		}
	}

	if len(picked) == 0 {
		return DefaultLearningPath()
	}
	if len(picked) > maxStaticPlans {
		picked = picked[:maxStaticPlans]
	}

	steps := make([]models.LearningStep, 0, len(picked))
	for i, pl := range picked {
		resource := "Online course"
		if len(pl.resources) > 0 {
			resource = pl.resources[0]
		}
		steps = append(steps, models.LearningStep{
			Step:        i + 1,
			Skill:       pl.title,
			Resource:    resource,
			Description: pl.description,
			Duration:    pl.duration,
			Difficulty:  pl.difficulty,
		})
	}
	return steps
}

// DefaultLearningPath returns a copy of the generic three-step plan
func DefaultLearningPath() []models.LearningStep {
	out := make([]models.LearningStep, len(defaultPath))
	copy(out, defaultPath)
	return out
}
