package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/internmatch/backend/models"
)

// FileLoader reads the catalog from a JSON or YAML file
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for a local catalog file
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Name() string { return "file:" + l.path }

func (l *FileLoader) Load(ctx context.Context) ([]models.Internship, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return DecodeCatalog(data, filepath.Ext(l.path))
}

// DecodeCatalog parses a catalog document. YAML is chosen by extension,
// anything else is parsed as JSON. Both a bare list and an object with an
// "internships" list are accepted.
func DecodeCatalog(data []byte, ext string) ([]models.Internship, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) ([]models.Internship, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var doc struct {
			Internships []models.Internship `json:"internships"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
		return doc.Internships, nil
	}

	var items []models.Internship
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return items, nil
}

func decodeYAML(data []byte) ([]models.Internship, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	var items []models.Internship
	node := root.Content[0]
	if node.Kind == yaml.MappingNode {
		var doc struct {
			Internships []models.Internship `yaml:"internships"`
		}
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
		return doc.Internships, nil
	}
	if err := node.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	return items, nil
}
