package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"github.com/internmatch/backend/models"
)

type learningPathKeyInput struct {
	Education  string   `json:"education"`
	Department string   `json:"department"`
	Sector     string   `json:"sector"`
	Location   string   `json:"location"`
	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
	Language   string   `json:"language"`
}

func normalizeKeyValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeKeyList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = normalizeKeyValue(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// LearningPathKey hashes the profile fields that shape a generated learning path
func LearningPathKey(profile *models.UserProfile) string {
	language := normalizeKeyValue(profile.Language)
	if language == "" {
		language = "en"
	}

	in := learningPathKeyInput{
		Education:  normalizeKeyValue(profile.Education),
		Department: normalizeKeyValue(profile.Department),
		Sector:     normalizeKeyValue(profile.Sector),
		Location:   normalizeKeyValue(profile.Location),
		Skills:     normalizeKeyList(profile.Skills),
		Interests:  normalizeKeyList(profile.Interests),
		Language:   language,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "learning:path:" + hex.EncodeToString(sum[:])
}
