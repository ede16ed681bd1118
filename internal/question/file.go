package question

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a question collection from a .json, .yaml or .yml file.
func LoadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		qs, err := UnmarshalQuestionsYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return qs, nil
	default:
		qs, err := UnmarshalQuestions(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return qs, nil
	}
}

// UnmarshalQuestionsYAML mirrors UnmarshalQuestions for YAML documents: a
// top-level sequence or a mapping with a "questions" sequence.
func UnmarshalQuestionsYAML(data []byte) ([]Question, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Question{}, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == yaml.MappingNode {
		var envelope struct {
			Questions yaml.Node `yaml:"questions"`
		}
		if err := root.Decode(&envelope); err != nil {
			return nil, err
		}
		root = &envelope.Questions
	}
	if root.Kind == 0 {
		return []Question{}, nil
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list of questions", root.Line)
	}

	out := make([]Question, 0, len(root.Content))
	for i, item := range root.Content {
		var probe typeProbe
		if err := item.Decode(&probe); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		q, err := newVariant(probe.Type)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		if err := item.Decode(q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		out = append(out, q)
	}
	return out, nil
}
