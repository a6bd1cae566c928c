package matching

import "strings"

// NormalizeSkill canonicalizes a skill string: trimmed and lowercased.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// canonicalSkills normalizes skills, dropping empties and duplicates while
// keeping first-seen order.
func canonicalSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		c := NormalizeSkill(s)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// sameAttribute compares free-text profile attributes case-insensitively.
// Two empty values never match.
func sameAttribute(a, b string) bool {
	a = NormalizeSkill(a)
	return a != "" && a == NormalizeSkill(b)
}

func containsFold(list []string, value string) bool {
	value = NormalizeSkill(value)
	if value == "" {
		return false
	}
	for _, v := range list {
		if NormalizeSkill(v) == value {
			return true
		}
	}
	return false
}
