package document

import (
	"fmt"

	"github.com/mr-shifu/sss-lib/core/errs"
	"gopkg.in/yaml.v3"
)

func yamlEntries(data []byte) (map[string]entryDecoder, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping")
	}

	m := root.Content[0]
	entries := make(map[string]entryDecoder, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: expected a scalar entry name", key.Line)
		}
		if _, ok := entries[key.Value]; ok {
			return nil, errs.WithKey(errs.DuplicateX, key.Value, fmt.Sprintf("line %d: entry appears more than once", key.Line))
		}
		entries[key.Value] = func(v interface{}) error {
			return value.Decode(v)
		}
	}
	return entries, nil
}

func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", node.Line)
	}
	*s = scalar(node.Value)
	return nil
}

func marshalYAML(doc map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(doc)
}
