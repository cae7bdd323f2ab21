package runtime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned by Decode when the input holds no document.
var ErrEmptyDocument = errors.New("empty document")

// Decode parses a YAML or JSON document into the value model, keeping the
// key order of every mapping as written.
func Decode(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	return FromYAML(&doc)
}

// FromYAML converts a parsed YAML node tree into the value model. An
// anchor that contains an alias to itself is an error.
func FromYAML(node *yaml.Node) (any, error) {
	d := &yamlDecoder{active: make(map[*yaml.Node]bool)}
	return d.value(node)
}

// yamlDecoder tracks the anchored nodes on the current decoding path.
type yamlDecoder struct {
	active map[*yaml.Node]bool
}

func (d *yamlDecoder) value(node *yaml.Node) (any, error) {
	if node.Anchor != "" {
		d.active[node] = true
		defer delete(d.active, node)
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return d.value(node.Content[0])
	case yaml.AliasNode:
		return d.alias(node)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := d.value(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		return d.mapping(node)
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	}
	return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", node.Line, node.Kind)
}

func (d *yamlDecoder) alias(node *yaml.Node) (any, error) {
	target := node.Alias
	if target == nil {
		return nil, fmt.Errorf("line %d: unknown anchor %q", node.Line, node.Value)
	}
	if d.active[target] {
		return nil, fmt.Errorf("line %d: anchor %q contains itself", node.Line, node.Value)
	}
	return d.value(target)
}

func (d *yamlDecoder) mapping(node *yaml.Node) (*Object, error) {
	obj := &Object{Fields: make(map[string]any, len(node.Content)/2)}
	var merges []*Object
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
			merged, err := d.mergeSources(valNode)
			if err != nil {
				return nil, err
			}
			merges = append(merges, merged...)
			continue
		}
		key, err := d.value(keyNode)
		if err != nil {
			return nil, err
		}
		val, err := d.value(valNode)
		if err != nil {
			return nil, err
		}
		obj.Set(ToPropertyKey(key), val)
	}
	// Merged keys never override explicit ones and come after them.
	for _, m := range merges {
		for _, k := range m.Keys {
			if !obj.HasOwnProperty(k) {
				obj.Set(k, m.Fields[k])
			}
		}
	}
	return obj, nil
}

func (d *yamlDecoder) mergeSources(node *yaml.Node) ([]*Object, error) {
	v, err := d.value(node)
	if err != nil {
		return nil, err
	}
	switch src := v.(type) {
	case *Object:
		return []*Object{src}, nil
	case []any:
		out := make([]*Object, 0, len(src))
		for _, e := range src {
			obj, ok := e.(*Object)
			if !ok {
				return nil, fmt.Errorf("line %d: merge value must be a mapping", node.Line)
			}
			out = append(out, obj)
		}
		return out, nil
	}
	return nil, fmt.Errorf("line %d: merge value must be a mapping", node.Line)
}

func scalarFromYAML(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			var u uint64
			if uerr := node.Decode(&u); uerr != nil {
				return nil, fmt.Errorf("line %d: %w", node.Line, err)
			}
			return float64(u), nil
		}
		return float64(i), nil
	case "!!float":
		return parseYAMLFloat(node)
	}
	return node.Value, nil
}

func parseYAMLFloat(node *yaml.Node) (float64, error) {
	switch strings.ToLower(node.Value) {
	case ".nan":
		return math.NaN(), nil
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(node.Value, "_", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid float %q: %w", node.Line, node.Value, err)
	}
	return f, nil
}
