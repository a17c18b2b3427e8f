package config

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// maxDecodedNodes bounds alias expansion while converting a document.
const maxDecodedNodes = 1 << 20

// decodeDocument parses data into a top-level Mapping. An empty or null
// document yields an empty Mapping.
func decodeDocument(path string, data []byte) (*Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return NewMapping(), nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return NewMapping(), nil
	}
	root = resolveAlias(root)
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return NewMapping(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{
			Path: path,
			Line: root.Line,
			Err:  fmt.Errorf("top-level document is a %s, expected a mapping", nodeKindName(root)),
		}
	}

	d := &nodeDecoder{}
	v, err := d.decode(root)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
			return nil, perr
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	m, _ := v.AsMapping()
	return m, nil
}

type nodeDecoder struct {
	count int
}

func (d *nodeDecoder) decode(n *yaml.Node) (Value, error) {
	d.count++
	if d.count > maxDecodedNodes {
		return Value{}, &ParseError{Line: n.Line, Err: errors.New("document expands to too many nodes")}
	}

	switch n.Kind {
	case yaml.AliasNode:
		return d.decode(resolveAlias(n))
	case yaml.ScalarNode:
		return decodeScalar(n)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.decode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return SequenceValue(items...), nil
	case yaml.MappingNode:
		m, err := d.decodeMapping(n)
		if err != nil {
			return Value{}, err
		}
		return MappingValue(m), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NullValue(), nil
		}
		return d.decode(n.Content[0])
	default:
		return Value{}, &ParseError{Line: n.Line, Err: fmt.Errorf("unsupported node kind %d", n.Kind)}
	}
}

func (d *nodeDecoder) decodeMapping(n *yaml.Node) (*Mapping, error) {
	m := NewMapping()
	var merges []*yaml.Node

	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.Kind == yaml.ScalarNode && kn.ShortTag() == "!!merge" {
			merges = append(merges, vn)
			continue
		}

		key, err := mappingKey(kn)
		if err != nil {
			return nil, err
		}
		if m.Has(key) {
			return nil, &ParseError{Line: kn.Line, Err: fmt.Errorf("duplicate key %q", key)}
		}
		v, err := d.decode(vn)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}

	// Merged entries never override keys set explicitly or by an earlier merge.
	for _, mn := range merges {
		mn = resolveAlias(mn)
		var sources []*yaml.Node
		switch mn.Kind {
		case yaml.MappingNode:
			sources = []*yaml.Node{mn}
		case yaml.SequenceNode:
			for _, c := range mn.Content {
				sources = append(sources, resolveAlias(c))
			}
		default:
			return nil, &ParseError{Line: mn.Line, Err: errors.New("merge key value must be a mapping or sequence of mappings")}
		}
		for _, src := range sources {
			if src.Kind != yaml.MappingNode {
				return nil, &ParseError{Line: src.Line, Err: errors.New("merge key value must be a mapping or sequence of mappings")}
			}
			merged, err := d.decodeMapping(src)
			if err != nil {
				return nil, err
			}
			for _, k := range merged.keys {
				if !m.Has(k) {
					m.Set(k, merged.values[k])
				}
			}
		}
	}

	return m, nil
}

func mappingKey(kn *yaml.Node) (string, error) {
	kn = resolveAlias(kn)
	if kn.Kind != yaml.ScalarNode {
		return "", &ParseError{Line: kn.Line, Err: fmt.Errorf("mapping key must be a scalar, got %s", nodeKindName(kn))}
	}
	return kn.Value, nil
}

func decodeScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return NullValue(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, &ParseError{Line: n.Line, Err: err}
		}
		return BoolValue(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Out of int64 range; keep the literal.
			return StringValue(n.Value), nil
		}
		return IntValue(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, &ParseError{Line: n.Line, Err: err}
		}
		return FloatValue(f), nil
	default:
		return StringValue(n.Value), nil
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func nodeKindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}

// encodeDocument serializes m as a block-style YAML mapping, keeping key order.
func encodeDocument(m *Mapping) ([]byte, error) {
	node, err := mappingNode(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func mappingNode(m *Mapping) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.Keys() {
		kn := &yaml.Node{}
		if err := kn.Encode(k); err != nil {
			return nil, fmt.Errorf("encode key %q: %w", k, err)
		}
		v, _ := m.Get(k)
		vn, err := valueNode(v)
		if err != nil {
			return nil, fmt.Errorf("encode value of %q: %w", k, err)
		}
		n.Content = append(n.Content, kn, vn)
	}
	return n, nil
}

func valueNode(v Value) (*yaml.Node, error) {
	switch v.Kind() {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case KindMapping:
		return mappingNode(v.m)
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.seq {
			c, err := valueNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v.Interface()); err != nil {
			return nil, err
		}
		return n, nil
	}
}

// MarshalYAML lets Values be embedded in structures encoded with yaml.v3.
func (v Value) MarshalYAML() (any, error) {
	return valueNode(v)
}

// MarshalYAML encodes m as an ordered YAML mapping.
func (m *Mapping) MarshalYAML() (any, error) {
	return mappingNode(m)
}
