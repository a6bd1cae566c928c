package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFlexibleStringSlice(t *testing.T) {
	cases := map[string][]string{
		`["Python","SQL"]`: {"Python", "SQL"},
		`"Python, SQL ,"`:  {"Python", "SQL"},
		`42`:               {},
		`{"a":1}`:          {},
		`""`:               {},
	}
	for input, want := range cases {
		var got FlexibleStringSlice
		require.NoError(t, json.Unmarshal([]byte(input), &got), input)
		assert.Equal(t, want, []string(got), input)
	}

	var fromYAML FlexibleStringSlice
	require.NoError(t, yaml.Unmarshal([]byte(`Excel, Tally`), &fromYAML))
	assert.Equal(t, []string{"Excel", "Tally"}, []string(fromYAML))
}

func TestFlexibleString_Int(t *testing.T) {
	cases := map[FlexibleString]int{
		"25000":       25000,
		" 15000 ":     15000,
		"15000/month": 15000,
		"unpaid":      0,
		"":            0,
		"-5":          -5,
	}
	for input, want := range cases {
		assert.Equal(t, want, input.Int(), string(input))
	}

	var fromNumber FlexibleString
	require.NoError(t, json.Unmarshal([]byte(`20000`), &fromNumber))
	assert.Equal(t, FlexibleString("20000"), fromNumber)
}

func TestUserProfile_CoercesMalformedFields(t *testing.T) {
	var p UserProfile
	err := json.Unmarshal([]byte(`{
		"education": 12,
		"department": {"name":"CSE"},
		"sector": null,
		"location": "Pune",
		"skills": "Python, SQL",
		"preferences": {"skills": "4", "location": 0, "stipend": "high"},
		"biasMitigation": "false"
	}`), &p)

	require.NoError(t, err)
	assert.Equal(t, "12", p.Education)
	assert.Equal(t, "", p.Department)
	assert.Equal(t, "", p.Sector)
	assert.Equal(t, "Pune", p.Location)
	assert.Equal(t, []string{"Python", "SQL"}, []string(p.Skills))
	assert.Equal(t, map[string]int{"skills": 4, "location": 0}, p.Preferences)
	require.NotNil(t, p.BiasMitigation)
	assert.False(t, p.BiasMitigationEnabled())
}

func TestUserProfile_Defaults(t *testing.T) {
	var p UserProfile
	require.NoError(t, json.Unmarshal([]byte(`{"biasMitigation": null}`), &p))

	assert.NotNil(t, p.Skills)
	assert.Nil(t, p.BiasMitigation)
	assert.True(t, p.BiasMitigationEnabled())

	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &p))
}

func TestUserProfile_Validate(t *testing.T) {
	assert.NoError(t, (&UserProfile{Preferences: map[string]int{"skills": 4}}).Validate())
	assert.Error(t, (&UserProfile{Preferences: map[string]int{"skills": 5}}).Validate())
	assert.Error(t, (&UserProfile{Language: "english-uk-long"}).Validate())
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Hindi", LanguageName("hi"))
	assert.Equal(t, "Urdu", LanguageName("ur"))
	assert.Equal(t, "English", LanguageName(""))
	assert.Equal(t, "English", LanguageName("fr"))
}

func TestBuckets(t *testing.T) {
	b := Buckets{BestFit: []Recommendation{}, Growth: []Recommendation{}, Alternative: []Recommendation{}}
	assert.True(t, b.Empty())

	b.Growth = append(b.Growth, Recommendation{})
	assert.False(t, b.Empty())
	assert.Equal(t, 1, b.Total())

	out, err := json.Marshal(b)
	require.NoError(t, err)
	var decoded map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.NotNil(t, decoded["best_fit"])
	assert.Empty(t, decoded["best_fit"])
	require.Len(t, decoded["growth"], 1)
	assert.Contains(t, decoded["growth"][0], "score")
	assert.Contains(t, decoded["growth"][0], "title")
	assert.NotContains(t, decoded["growth"][0], "scoringBreakdown")
}
