package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Scoring factor names accepted in UserProfile.Preferences.
const (
	FactorSkills     = "skills"
	FactorEducation  = "education"
	FactorDepartment = "department"
	FactorSector     = "sector"
	FactorLocation   = "location"
	FactorStipend    = "stipend"
)

// UserProfile is the student profile submitted with a recommendation request.
// @Description Student profile used for matching
type UserProfile struct {
	Education  string              `json:"education" example:"B.Tech"`
	Department string              `json:"department" example:"CSE"`
	Sector     string              `json:"sector" example:"Technology"`
	Location   string              `json:"location" example:"Bangalore"`
	Skills     FlexibleStringSlice `json:"skills" swaggertype:"array,string"`
	Interests  FlexibleStringSlice `json:"interests,omitempty" swaggertype:"array,string"`
	Language   string              `json:"language,omitempty" validate:"omitempty,max=8" example:"en"`

	// Preferences maps a factor name to a weight in [0,4]
	Preferences    map[string]int `json:"preferences,omitempty" validate:"omitempty,dive,min=0,max=4"`
	BiasMitigation *bool          `json:"biasMitigation,omitempty" example:"true"`
}

// BiasMitigationEnabled reports the bias flag, defaulting to true.
func (p *UserProfile) BiasMitigationEnabled() bool {
	if p.BiasMitigation == nil {
		return true
	}
	return *p.BiasMitigation
}

// Validate checks the profile's declared constraints (language code length,
// preference weights within [0,4]).
func (p *UserProfile) Validate() error {
	return validate.Struct(p)
}

// Weights are the per-factor multipliers applied by the scorer.
type Weights struct {
	Skills     int `json:"skills"`
	Education  int `json:"education"`
	Department int `json:"department"`
	Sector     int `json:"sector"`
	Location   int `json:"location"`
	Stipend    int `json:"stipend"`
}

// DefaultWeights returns the weights used when a profile carries no preferences.
func DefaultWeights() Weights {
	return Weights{
		Skills:     3,
		Education:  2,
		Department: 2,
		Sector:     2,
		Location:   1,
		Stipend:    1,
	}
}

// languageNames maps UI language codes to the names used in generator prompts
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"kn": "Kannada",
	"ml": "Malayalam",
	"bn": "Bengali",
	"gu": "Gujarati",
	"mr": "Marathi",
	"pa": "Punjabi",
	"or": "Odia",
	"as": "Assamese",
	"ur": "Urdu",
}

// LanguageName resolves a language code, falling back to English.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}
