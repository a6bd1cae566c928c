package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLearningPath_Valid(t *testing.T) {
	raw := `{"learning_path":[
		{"step":1,"skill":"Python","resource":"Python.org","description":"Basics","duration":"2 weeks","difficulty":"Beginner"},
		{"step":2,"skill":"Django","resource":"djangoproject.com","description":"Web apps"}
	]}`

	steps, err := DecodeLearningPath(raw)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "Python", steps[0].Skill)
	assert.Equal(t, "Beginner", steps[0].Difficulty)
	assert.Equal(t, "", steps[1].Duration)
}

func TestDecodeLearningPath_RejectsOtherShapes(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"not json":       "Step 1: learn python",
		"bare array":     `[{"step":1,"skill":"Python","resource":"x","description":"y"}]`,
		"wrong key":      `{"steps":[{"step":1,"skill":"Python","resource":"x","description":"y"}]}`,
		"no steps":       `{"learning_path":[]}`,
		"missing skill":  `{"learning_path":[{"step":1,"resource":"x","description":"y"}]}`,
		"string step":    `{"learning_path":[{"step":"1","skill":"Python","resource":"x","description":"y"}]}`,
		"blank resource": `{"learning_path":[{"step":1,"skill":"Python","resource":"","description":"y"}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeLearningPath(raw)
			assert.ErrorIs(t, err, ErrInvalidLearningPath)
		})
	}
}
