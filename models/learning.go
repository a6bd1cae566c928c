package models

// StatusNoMatches marks a recommendation response that carries a learning path
const StatusNoMatches = "no_matches"

// LearningStep is one step of a remedial learning path.
// @Description One learning path step
type LearningStep struct {
	Step        int    `json:"step" example:"1"`
	Skill       string `json:"skill" example:"Python Programming Fundamentals"`
	Resource    string `json:"resource" example:"Python.org tutorial"`
	Description string `json:"description" example:"Learn Python basics to qualify for most tech internships"`
	Duration    string `json:"duration" example:"4-6 weeks"`
	Difficulty  string `json:"difficulty" example:"Beginner"`
}

// NoMatchResponse is returned instead of buckets when nothing fits.
// @Description Learning path returned when no internship matches
type NoMatchResponse struct {
	Status       string         `json:"status" example:"no_matches"`
	Message      string         `json:"message" example:"No direct internship matches found. Here are some learning suggestions."`
	LearningPath []LearningStep `json:"learning_path"`
}
