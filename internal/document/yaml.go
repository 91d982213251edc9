package document

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

// maxYAMLDepth bounds alias expansion so a self-referencing anchor cannot
// recurse forever.
const maxYAMLDepth = 1000

// decodeYAML reads the first document of a YAML stream from r. Mapping
// order is preserved; aliases are expanded in place.
func decodeYAML(r io.Reader) (doccmp.Value, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return doccmp.Value{}, fmt.Errorf("empty document")
		}
		return doccmp.Value{}, err
	}
	return yamlValue(&root, 0)
}

func yamlValue(n *yaml.Node, depth int) (doccmp.Value, error) {
	if depth > maxYAMLDepth {
		return doccmp.Value{}, fmt.Errorf("line %d: nesting exceeds %d levels", n.Line, maxYAMLDepth)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return doccmp.Null(), nil
		}
		return yamlValue(n.Content[0], depth+1)
	case yaml.AliasNode:
		if n.Alias == nil {
			return doccmp.Value{}, fmt.Errorf("line %d: unresolved alias %q", n.Line, n.Value)
		}
		return yamlValue(n.Alias, depth+1)
	case yaml.MappingNode:
		return yamlMapping(n, depth)
	case yaml.SequenceNode:
		items := make([]doccmp.Value, 0, len(n.Content))
		for i, child := range n.Content {
			v, err := yamlValue(child, depth+1)
			if err != nil {
				return doccmp.Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, v)
		}
		return doccmp.ArrayOf(items...), nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	default:
		return doccmp.Value{}, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}

func yamlMapping(n *yaml.Node, depth int) (doccmp.Value, error) {
	if len(n.Content)%2 != 0 {
		return doccmp.Value{}, fmt.Errorf("line %d: malformed mapping", n.Line)
	}

	keys := make([]*yaml.Node, 0, len(n.Content)/2)
	explicit := make(map[string]bool, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
			keyNode = keyNode.Alias
		}
		if keyNode.Kind != yaml.ScalarNode {
			return doccmp.Value{}, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}
		if !isMergeKey(keyNode) {
			explicit[keyNode.Value] = true
		}
		keys = append(keys, keyNode)
	}

	obj := doccmp.NewObject()
	for i, keyNode := range keys {
		valueNode := n.Content[2*i+1]
		if isMergeKey(keyNode) {
			if err := yamlMerge(obj, valueNode, explicit, depth); err != nil {
				return doccmp.Value{}, err
			}
			continue
		}
		v, err := yamlValue(valueNode, depth+1)
		if err != nil {
			return doccmp.Value{}, fmt.Errorf("%s: %w", keyNode.Value, err)
		}
		obj.Set(keyNode.Value, v)
	}
	return doccmp.ObjectOf(obj), nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && n.ShortTag() == "!!merge"
}

// yamlMerge copies the entries of a merged mapping, or of each mapping in a
// merged sequence, into obj. Keys set explicitly in the enclosing mapping and
// keys merged earlier take precedence.
func yamlMerge(obj *doccmp.Object, n *yaml.Node, explicit map[string]bool, depth int) error {
	if depth > maxYAMLDepth {
		return fmt.Errorf("line %d: nesting exceeds %d levels", n.Line, maxYAMLDepth)
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	var sources []*yaml.Node
	switch n.Kind {
	case yaml.MappingNode:
		sources = []*yaml.Node{n}
	case yaml.SequenceNode:
		for _, item := range n.Content {
			if item.Kind == yaml.AliasNode && item.Alias != nil {
				item = item.Alias
			}
			sources = append(sources, item)
		}
	default:
		return fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", n.Line)
	}

	for _, src := range sources {
		if src.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", src.Line)
		}
		v, err := yamlMapping(src, depth+1)
		if err != nil {
			return err
		}
		merged, _ := v.AsObject()
		for _, key := range merged.Keys() {
			if explicit[key] || obj.Has(key) {
				continue
			}
			field, _ := merged.Get(key)
			obj.Set(key, field)
		}
	}
	return nil
}

func yamlScalar(n *yaml.Node) (doccmp.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return doccmp.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return doccmp.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return doccmp.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return doccmp.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return doccmp.Number(f), nil
	default:
		return doccmp.String(n.Value), nil
	}
}
