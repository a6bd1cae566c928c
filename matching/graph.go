package matching

import "sort"

// SkillGraph maps a canonical skill to the canonical skills considered
// adjacent to it. Entries are literal adjacency lists: neither symmetric
// nor transitive.
type SkillGraph map[string][]string

var defaultGraph = SkillGraph{
	"html":             {"css", "javascript"},
	"css":              {"html", "javascript"},
	"javascript":       {"html", "css", "react", "node.js", "typescript"},
	"react":            {"javascript", "redux", "node.js"},
	"node.js":          {"javascript", "express", "mongodb"},
	"express":          {"node.js", "javascript"},
	"mongodb":          {"node.js", "express", "sql"},
	"sql":              {"databases", "mysql", "postgresql"},
	"python":           {"pandas", "numpy", "machine learning", "flask", "django"},
	"machine learning": {"python", "data science", "deep learning"},
	"data science":     {"python", "pandas", "numpy", "machine learning"},
	"deep learning":    {"python", "pytorch", "tensorflow"},
	"django":           {"python"},
	"flask":            {"python"},
	"pandas":           {"python", "data science"},
	"numpy":            {"python", "data science"},
	"typescript":       {"javascript"},
}

// DefaultGraph returns the built-in skill adjacency graph. Callers must not
// modify it.
func DefaultGraph() SkillGraph {
	return defaultGraph
}

// Neighbors returns the adjacency list for one skill (normalized first).
func (g SkillGraph) Neighbors(skill string) []string {
	return g[NormalizeSkill(skill)]
}

// Related expands skills by exactly one hop: the union of each skill's
// adjacency list. The input skills themselves are not included unless
// another skill lists them.
func (g SkillGraph) Related(skills []string) map[string]struct{} {
	related := make(map[string]struct{})
	for _, s := range skills {
		for _, r := range g[NormalizeSkill(s)] {
			related[r] = struct{}{}
		}
	}
	return related
}

// RelatedList is Related as a sorted slice.
func (g SkillGraph) RelatedList(skills []string) []string {
	set := g.Related(skills)
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
