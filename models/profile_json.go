package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// UnmarshalJSON coerces malformed profile fields instead of failing: scalars
// of the wrong type become empty, numbers become their text, unparseable
// preference weights are dropped. Only a body that is not a JSON object is
// an error.
func (p *UserProfile) UnmarshalJSON(data []byte) error {
	var raw struct {
		Education      json.RawMessage     `json:"education"`
		Department     json.RawMessage     `json:"department"`
		Sector         json.RawMessage     `json:"sector"`
		Location       json.RawMessage     `json:"location"`
		Skills         FlexibleStringSlice `json:"skills"`
		Interests      FlexibleStringSlice `json:"interests"`
		Language       json.RawMessage     `json:"language"`
		Preferences    json.RawMessage     `json:"preferences"`
		BiasMitigation json.RawMessage     `json:"biasMitigation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = UserProfile{
		Education:      looseString(raw.Education),
		Department:     looseString(raw.Department),
		Sector:         looseString(raw.Sector),
		Location:       looseString(raw.Location),
		Skills:         raw.Skills,
		Interests:      raw.Interests,
		Language:       looseString(raw.Language),
		Preferences:    loosePreferences(raw.Preferences),
		BiasMitigation: looseBool(raw.BiasMitigation),
	}
	if p.Skills == nil {
		p.Skills = FlexibleStringSlice{}
	}
	return nil
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func loosePreferences(raw json.RawMessage) map[string]int {
	if len(raw) == 0 || !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return nil
	}
	var values map[string]json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	prefs := make(map[string]int, len(values))
	for key, v := range values {
		var f float64
		if err := json.Unmarshal(v, &f); err == nil && !math.IsNaN(f) {
			prefs[key] = int(f)
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(looseString(v))); err == nil {
			prefs[key] = n
		}
	}
	return prefs
}

func looseBool(raw json.RawMessage) *bool {
	if len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return &b
	}
	if parsed, err := strconv.ParseBool(strings.TrimSpace(looseString(raw))); err == nil {
		return &parsed
	}
	return nil
}
