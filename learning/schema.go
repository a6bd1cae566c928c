package learning

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/internmatch/backend/models"
)

// ErrInvalidLearningPath is returned when generated output breaks the contract.
var ErrInvalidLearningPath = errors.New("invalid learning path")

const learningPathSchema = `{
  "type": "object",
  "required": ["learning_path"],
  "properties": {
    "learning_path": {
      "type": "array",
      "minItems": 1,
      "maxItems": 10,
      "items": {
        "type": "object",
        "required": ["step", "skill", "resource", "description"],
        "properties": {
          "step": {"type": "integer", "minimum": 1},
          "skill": {"type": "string", "minLength": 1},
          "resource": {"type": "string", "minLength": 1},
          "description": {"type": "string", "minLength": 1},
          "duration": {"type": "string"},
          "difficulty": {"type": "string"}
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(learningPathSchema)

type learningPathDocument struct {
	LearningPath []models.LearningStep `json:"learning_path"`
}

// DecodeLearningPath validates generated JSON against the learning path
// contract and decodes it. Anything that does not conform is rejected with
// ErrInvalidLearningPath; no alternate shapes are attempted.
func DecodeLearningPath(raw string) ([]models.LearningStep, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidLearningPath)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLearningPath, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidLearningPath, strings.Join(msgs, "; "))
	}

	var doc learningPathDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLearningPath, err)
	}
	return doc.LearningPath, nil
}
