// Package codec decodes JSON and YAML documents into optics values and
// encodes them back.
//
// Decoded documents use the optics value model: mappings with string keys
// become map[string]any, sequences []any. YAML mappings with non-string keys
// become ordered associative containers and !!set mappings set containers,
// both in document order.
package codec

import (
	"bytes"
	"encoding/json"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/values"
)

// Format names a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf picks the format from a file extension, defaulting to JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Codec provides encoding/decoding operations.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte) (any, error)
}

// For returns the codec for f.
func For(f Format) Codec {
	if f == YAML {
		return NewYAMLCodec()
	}
	return NewJSONCodec()
}

// JSONCodec encodes/decodes using JSON.
type JSONCodec struct {
	Pretty bool
	Indent string
}

// NewJSONCodec creates a new JSON codec with default options.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// WithPretty enables pretty printing.
func (c *JSONCodec) WithPretty() *JSONCodec {
	c.Pretty = true
	return c
}

// Encode encodes a document to JSON. Associative containers become objects
// keyed by their keys' names and set containers become arrays.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	doc := plain(v)
	var (
		data []byte
		err  error
	)
	if c.Pretty {
		data, err = json.MarshalIndent(doc, "", c.Indent)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, errors.Codec(string(JSON), err)
	}
	return data, nil
}

// Decode decodes a JSON document.
func (c *JSONCodec) Decode(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Codec(string(JSON), err)
	}
	return doc, nil
}

func plain(v any) any {
	switch x := v.(type) {
	case values.Map:
		out := make(map[string]any, x.Len())
		for k, val := range x.All() {
			out[values.Name(k)] = plain(val)
		}
		return out
	case values.Set:
		out := make([]any, 0, x.Size())
		for item := range x.All() {
			out = append(out, plain(item))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = plain(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = plain(val)
		}
		return out
	}
	return v
}

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

// WithIndent sets the indentation level.
func (c *YAMLCodec) WithIndent(indent int) *YAMLCodec {
	c.Indent = indent
	return c
}

// Encode encodes a document to YAML, keeping container order.
func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, errors.Codec(string(YAML), err)
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(c.Indent)
	if err := encoder.Encode(node); err != nil {
		return nil, errors.Codec(string(YAML), err)
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Codec(string(YAML), err)
	}
	return buf.Bytes(), nil
}

// Decode decodes a YAML document. An empty document decodes to nil.
func (c *YAMLCodec) Decode(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Codec(string(YAML), err)
	}
	if root.Kind == 0 {
		return nil, nil
	}
	doc, err := fromNode(&root)
	if err != nil {
		return nil, errors.Codec(string(YAML), err)
	}
	return doc, nil
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, len(n.Content))
		for i, item := range n.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case yaml.MappingNode:
		return fromMapping(n)
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func fromMapping(n *yaml.Node) (any, error) {
	type entry struct{ key, value any }
	entries := make([]entry, 0, len(n.Content)/2)
	stringKeys := true
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, err := fromNode(n.Content[i])
		if err != nil {
			return nil, err
		}
		v, err := fromNode(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		if _, ok := k.(string); !ok {
			stringKeys = false
		}
		entries = append(entries, entry{k, v})
	}

	switch {
	case n.Tag == "!!set":
		set := values.NewSet()
		for _, e := range entries {
			if !values.Hashable(e.key) {
				return nil, errors.InvalidKey(e.key)
			}
			set.Add(e.key)
		}
		return set, nil
	case stringKeys:
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			out[e.key.(string)] = e.value
		}
		return out, nil
	}
	m := values.NewMap()
	for _, e := range entries {
		if !values.Hashable(e.key) {
			return nil, errors.InvalidKey(e.key)
		}
		m.Set(e.key, e.value)
	}
	return m, nil
}

func toNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case values.Map:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, val := range x.All() {
			if err := appendPair(n, k, val); err != nil {
				return nil, err
			}
		}
		return n, nil
	case values.Set:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!set"}
		for item := range x.All() {
			if err := appendPair(n, item, nil); err != nil {
				return nil, err
			}
		}
		return n, nil
	case map[string]any:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if err := appendPair(n, k, x[k]); err != nil {
				return nil, err
			}
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range x {
			child, err := toNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

func appendPair(n *yaml.Node, k, v any) error {
	kn, err := toNode(k)
	if err != nil {
		return err
	}
	vn, err := toNode(v)
	if err != nil {
		return err
	}
	n.Content = append(n.Content, kn, vn)
	return nil
}

// Decode decodes data in format f.
func Decode(data []byte, f Format) (any, error) {
	return For(f).Decode(data)
}

// Encode encodes v in format f.
func Encode(v any, f Format) ([]byte, error) {
	return For(f).Encode(v)
}
