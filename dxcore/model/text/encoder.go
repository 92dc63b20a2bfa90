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
	"math"
	"reflect"

	"dirpx.dev/dxtext/dxcore/errors"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Encoder converts node trees into canonical JSON documents.
//
// Keys are written in a fixed order: the content key ("text", "translate"
// or "keybind"), "with", "extra", the set style fields in StyleFields order,
// then "clickEvent" and "hoverEvent". Unset style fields and absent bindings
// are omitted. Children are encoded independently; no style is merged into
// them.
//
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	policy     PayloadPolicy
	prefix     string
	indent     string
	escapeHTML bool
	logger     zerolog.Logger
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithPayloadPolicy selects how bindings without a payload are written.
// The default is OmitPayload.
func WithPayloadPolicy(p PayloadPolicy) Option {
	return func(e *Encoder) {
		e.policy = p
	}
}

// WithIndent makes Marshal and MarshalString indent their output like
// json.Indent. Encode is unaffected.
func WithIndent(prefix, indent string) Option {
	return func(e *Encoder) {
		e.prefix, e.indent = prefix, indent
	}
}

// WithEscapeHTML makes the encoder escape '<', '>' and '&' in strings.
// Chat text is not HTML, so the default leaves them literal.
func WithEscapeHTML(escape bool) Option {
	return func(e *Encoder) {
		e.escapeHTML = escape
	}
}

// WithLogger sets the logger receiving debug events for every encoded tree
// and every failure. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Encoder) {
		e.logger = logger
	}
}

// NewEncoder returns an encoder configured by opts.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		policy: OmitPayload,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEncoder = NewEncoder()

// Policy returns the payload policy of the encoder.
func (e *Encoder) Policy() PayloadPolicy {
	return e.policy
}

// Encode builds the JSON object for the tree rooted at n.
//
// It fails with *errors.UnsupportedContentTypeError when a plain value or a
// translation argument has no JSON representation, and with
// *errors.CyclicStructureError when a binding mutated after attachment makes
// a node its own ancestor.
func (e *Encoder) Encode(n *Node) (*Object, error) {
	if n == nil {
		return nil, &errors.InvalidArgumentError{Type: "Encoder", Reason: "node must not be nil"}
	}
	st := e.newState()
	obj, err := st.node(n)
	if err != nil {
		e.logger.Debug().Err(err).Str("root", n.Type().String()).Msg("text node encoding failed")
		return nil, err
	}
	e.logger.Debug().Int("nodes", st.nodes).Str("root", n.Type().String()).Msg("encoded text node")
	return obj, nil
}

// EncodeEvent builds the JSON object for a single binding.
func (e *Encoder) EncodeEvent(ev Event) (*Object, error) {
	if isNilEvent(ev) {
		return nil, &errors.InvalidArgumentError{Type: "Encoder", Reason: "event must not be nil"}
	}
	return ev.encode(e.newState())
}

// Marshal encodes n and serializes the result.
func (e *Encoder) Marshal(n *Node) ([]byte, error) {
	obj, err := e.Encode(n)
	if err != nil {
		return nil, err
	}
	return e.serialize(obj)
}

// MarshalString is Marshal returning a string.
func (e *Encoder) MarshalString(n *Node) (string, error) {
	b, err := e.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeAll persuades every non-nil value into a node and encodes the
// resulting nodes as an array. It returns a nil Array when no value remains.
func (e *Encoder) EncodeAll(values ...any) (Array, error) {
	nodes := PersuadeAll(values...)
	if len(nodes) == 0 {
		return nil, nil
	}
	arr := make(Array, 0, len(nodes))
	for _, n := range nodes {
		obj, err := e.Encode(n)
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
	return arr, nil
}

// MarshalAll is EncodeAll followed by serialization. An empty result is
// written as JSON null.
func (e *Encoder) MarshalAll(values ...any) ([]byte, error) {
	arr, err := e.EncodeAll(values...)
	if err != nil {
		return nil, err
	}
	return e.serialize(arr)
}

func (e *Encoder) serialize(v interface {
	encode(*bytes.Buffer, bool) error
}) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf, e.escapeHTML); err != nil {
		return nil, err
	}
	if e.prefix == "" && e.indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), e.prefix, e.indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Encode encodes n with the default encoder.
func Encode(n *Node) (*Object, error) { return defaultEncoder.Encode(n) }

// Marshal serializes n with the default encoder.
func Marshal(n *Node) ([]byte, error) { return defaultEncoder.Marshal(n) }

// MarshalString serializes n with the default encoder.
func MarshalString(n *Node) (string, error) { return defaultEncoder.MarshalString(n) }

// EncodeAll encodes values with the default encoder; see Encoder.EncodeAll.
func EncodeAll(values ...any) (Array, error) { return defaultEncoder.EncodeAll(values...) }

// MarshalAll serializes values with the default encoder; see
// Encoder.MarshalAll.
func MarshalAll(values ...any) ([]byte, error) { return defaultEncoder.MarshalAll(values...) }

// encodeState carries the path of nodes being encoded so that a cycle
// introduced behind a node's back is reported instead of overflowing the
// stack.
type encodeState struct {
	enc   *Encoder
	path  map[*Node]struct{}
	nodes int
}

func (e *Encoder) newState() *encodeState {
	return &encodeState{enc: e, path: make(map[*Node]struct{})}
}

func (st *encodeState) node(n *Node) (*Object, error) {
	if _, ok := st.path[n]; ok {
		return nil, &errors.CyclicStructureError{Type: "TextNode", Reason: "node is its own ancestor"}
	}
	st.path[n] = struct{}{}
	defer delete(st.path, n)
	st.nodes++

	obj := NewObject()
	switch c := n.contentOrEmpty().(type) {
	case PlainContent:
		v, err := st.value("PlainContent", c.Value)
		if err != nil {
			return nil, err
		}
		obj.Set(Plain.String(), v)
	case TranslateContent:
		obj.Set(Translate.String(), c.Key)
		if len(c.With) > 0 {
			with := make(Array, 0, len(c.With))
			for _, a := range c.With {
				v, err := st.value("TranslateContent", a)
				if err != nil {
					return nil, err
				}
				with = append(with, v)
			}
			obj.Set("with", with)
		}
	case KeybindContent:
		obj.Set(Keybind.String(), c.Keybind)
	}

	if len(n.children) > 0 {
		extra := make(Array, 0, len(n.children))
		for _, child := range n.children {
			v, err := st.node(child)
			if err != nil {
				return nil, err
			}
			extra = append(extra, v)
		}
		obj.Set("extra", extra)
	}

	for _, f := range StyleFields {
		if v, ok := n.style.Value(f); ok {
			obj.Set(f.String(), v)
		}
	}

	for _, ev := range n.Events() {
		v, err := ev.encode(st)
		if err != nil {
			return nil, err
		}
		obj.Set(ev.Kind().Key(), v)
	}
	return obj, nil
}

// value converts a plain value or translation argument into an Object leaf.
func (st *encodeState) value(owner string, v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case *Node:
		if x == nil {
			return "", nil
		}
		return st.node(x)
	case *Object, Array, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return v, nil
	case Char:
		return x.String(), nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return nil, nonFinite(owner, x)
		}
		return v, nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, nonFinite(owner, x)
		}
		return v, nil
	case json.Marshaler:
		return v, nil
	}
	return st.namedScalar(owner, v)
}

// namedScalar accepts defined types whose underlying kind is a scalar, such
// as `type Count int`, and returns the value as its predeclared type.
func (st *encodeState) namedScalar(owner string, v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Float32:
		return st.value(owner, float32(rv.Float()))
	case reflect.Float64:
		return st.value(owner, rv.Float())
	default:
		return nil, errors.NewUnsupportedContentTypeError(owner, v)
	}
}

func nonFinite(owner string, v any) error {
	return &errors.UnsupportedContentTypeError{Type: owner, GoType: fmt.Sprintf("%T(%v)", v, v)}
}
