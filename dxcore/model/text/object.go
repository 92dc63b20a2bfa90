/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package text

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Object is an insertion-ordered JSON object, the value tree the encoder
// builds before serialization. Keys keep the position of their first Set.
//
// Values are nil (null), strings, booleans, Go numbers, nested *Object and
// Array values, or anything implementing json.Marshaler.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores v under key. An existing key keeps its position.
func (o *Object) Set(key string, v any) *Object {
	if c, ok := v.(Char); ok {
		v = c.String()
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON writes the object compactly with HTML characters left
// unescaped.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.encode(&buf, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the compact JSON form.
func (o *Object) String() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return "Object{invalid: " + err.Error() + "}"
	}
	return string(b)
}

// MarshalYAML renders the object as a YAML mapping with the same key order.
func (o *Object) MarshalYAML() (any, error) {
	return o.yamlNode()
}

func (o *Object) encode(buf *bytes.Buffer, escapeHTML bool) error {
	if o == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, k, escapeHTML); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeValue(buf, o.values[k], escapeHTML); err != nil {
			return fmt.Errorf("dxtext: key %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func (o *Object) yamlNode() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range o.keys {
		v, err := yamlValue(o.values[k])
		if err != nil {
			return nil, fmt.Errorf("dxtext: key %q: %w", k, err)
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, v)
	}
	return n, nil
}

// Array is an ordered JSON array holding the same value kinds as Object.
type Array []any

// MarshalJSON writes the array compactly with HTML characters left
// unescaped.
func (a Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.encode(&buf, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalYAML renders the array as a YAML sequence.
func (a Array) MarshalYAML() (any, error) {
	return a.yamlNode()
}

func (a Array) encode(buf *bytes.Buffer, escapeHTML bool) error {
	if a == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, v, escapeHTML); err != nil {
			return fmt.Errorf("dxtext: index %d: %w", i, err)
		}
	}
	buf.WriteByte(']')
	return nil
}

func (a Array) yamlNode() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i, v := range a {
		item, err := yamlValue(v)
		if err != nil {
			return nil, fmt.Errorf("dxtext: index %d: %w", i, err)
		}
		n.Content = append(n.Content, item)
	}
	return n, nil
}

func writeValue(buf *bytes.Buffer, v any, escapeHTML bool) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case *Object:
		return x.encode(buf, escapeHTML)
	case Array:
		return x.encode(buf, escapeHTML)
	case Char:
		v = x.String()
	case json.Marshaler:
		b, err := x.MarshalJSON()
		if err != nil {
			return err
		}
		// Compact rewrites dst instead of appending to it.
		var scratch bytes.Buffer
		if err := json.Compact(&scratch, b); err != nil {
			return err
		}
		buf.Write(scratch.Bytes())
		return nil
	}

	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(escapeHTML)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(scratch.Bytes(), []byte("\n")))
	return nil
}

func yamlValue(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case *Object:
		if x == nil {
			return yamlValue(nil)
		}
		return x.yamlNode()
	case Array:
		return x.yamlNode()
	case Char:
		v = x.String()
	case json.Marshaler:
		b, err := x.MarshalJSON()
		if err != nil {
			return nil, err
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		if len(doc.Content) == 0 {
			return yamlValue(nil)
		}
		return doc.Content[0], nil
	}

	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}
