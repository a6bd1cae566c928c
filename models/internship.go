package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FlexibleStringSlice can unmarshal from either a string or []string.
// A plain string is split on commas.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = splitList(str)
		return nil
	}

	// Anything else (numbers, objects, null) degrades to empty
	*f = []string{}
	return nil
}

func (f *FlexibleStringSlice) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var arr []string
		if err := value.Decode(&arr); err != nil {
			return err
		}
		*f = arr
	case yaml.ScalarNode:
		*f = splitList(value.Value)
	default:
		*f = []string{}
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// FlexibleString accepts a JSON string or number and keeps its textual form.
// Catalog stipends arrive both ways.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = FlexibleString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexibleString(num.String())
		return nil
	}

	*f = ""
	return nil
}

func (f *FlexibleString) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag != "!!null" {
		*f = FlexibleString(value.Value)
		return nil
	}
	*f = ""
	return nil
}

// Int parses the value as an integer, returning 0 when it is not numeric.
// Leading digits are honoured ("15000/month" parses as 15000).
func (f FlexibleString) Int() int {
	s := strings.TrimSpace(string(f))
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || (end == 0 && (s[0] == '-' || s[0] == '+'))) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Internship is one catalog posting. It is read-only once loaded.
// @Description Internship catalog entry
type Internship struct {
	ID          string              `json:"id" yaml:"id" example:"int-001"`
	Title       string              `json:"title" yaml:"title" example:"Software Development Intern"`
	Company     string              `json:"company" yaml:"company" example:"TechCorp"`
	Education   string              `json:"education" yaml:"education" example:"B.Tech"`
	Department  string              `json:"department" yaml:"department" example:"CSE"`
	Sector      string              `json:"sector" yaml:"sector" example:"Technology"`
	Location    string              `json:"location" yaml:"location" example:"Bangalore"`
	Skills      FlexibleStringSlice `json:"skills" yaml:"skills" swaggertype:"array,string"`
	Stipend     FlexibleString      `json:"stipend" yaml:"stipend" swaggertype:"string" example:"25000"`
	Duration    string              `json:"duration" yaml:"duration" example:"6 months"`
	Description string              `json:"description,omitempty" yaml:"description"`
}
