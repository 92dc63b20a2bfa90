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
	"fmt"

	"dirpx.dev/dxtext/dxcore/errors"
)

// ContentType is the discriminant of a node's content. It decides which key
// carries the content in the encoded document and is fixed when the node is
// constructed.
type ContentType int

const (
	// Plain content carries a literal value under the "text" key.
	Plain ContentType = iota

	// Translate content carries a translation key under the "translate" key
	// and its substitution arguments under "with".
	Translate

	// Keybind content carries a control-binding identifier (for example
	// "key.jump") under the "keybind" key. The client substitutes the key the
	// player has bound to it.
	Keybind
)

// String returns the wire key of the content type: "text", "translate" or
// "keybind". Values outside the defined constants render as "unknown".
func (t ContentType) String() string {
	switch t {
	case Plain:
		return "text"
	case Translate:
		return "translate"
	case Keybind:
		return "keybind"
	default:
		return "unknown"
	}
}

// ParseContentType converts a wire key back into a ContentType. "plain" is
// accepted as an alias of "text".
func ParseContentType(str string) (ContentType, error) {
	switch str {
	case "text", "plain":
		return Plain, nil
	case "translate":
		return Translate, nil
	case "keybind":
		return Keybind, nil
	default:
		return Plain, &errors.ParseError{Type: "ContentType", Value: str}
	}
}

// Valid reports whether the ContentType is one of the defined constants.
func (t ContentType) Valid() bool {
	return t >= Plain && t <= Keybind
}

// MarshalText implements encoding.TextMarshaler for ContentType.
func (t ContentType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "ContentType", Value: int(t)}
	}
	return []byte(t.String()), nil
}

// Content is the payload of a text node. It is a closed sum type: the only
// implementations are PlainContent, TranslateContent and KeybindContent.
type Content interface {
	// Type returns the discriminant of the variant.
	Type() ContentType

	// String returns the content's string form: the plain value formatted
	// with fmt.Sprint, the translation key, or the keybind identifier.
	String() string

	isContent()
}

// Char is a single character content value. Go runes are plain int32s and
// would encode as numbers; wrapping one in Char makes it encode as a
// one-character JSON string.
type Char rune

// String returns the character as a string.
func (c Char) String() string {
	return string(rune(c))
}

// PlainContent wraps a literal value. Value may be any supported scalar
// (bool, Char, any Go integer or float kind, string), an already-structured
// JSON value (anything implementing json.Marshaler, such as json.RawMessage
// or an encoded *Object), an Array, or a nested *Node.
//
// Support is checked when the node is encoded, not when the value is stored.
type PlainContent struct {
	Value any
}

// Type returns Plain.
func (PlainContent) Type() ContentType { return Plain }

// String returns the value formatted with fmt.Sprint. Nested nodes render as
// their own content string.
func (c PlainContent) String() string {
	return stringOf(c.Value)
}

func (PlainContent) isContent() {}

// TranslateContent wraps a translation key and its ordered substitution
// arguments. Arguments follow the same rules as PlainContent values; a
// *Node argument is encoded as a full component.
type TranslateContent struct {
	Key  string
	With []any
}

// Type returns Translate.
func (TranslateContent) Type() ContentType { return Translate }

// String returns the translation key.
func (c TranslateContent) String() string {
	return c.Key
}

func (TranslateContent) isContent() {}

// KeybindContent wraps a control-binding identifier such as "key.inventory".
type KeybindContent struct {
	Keybind string
}

// Type returns Keybind.
func (KeybindContent) Type() ContentType { return Keybind }

// String returns the keybind identifier.
func (c KeybindContent) String() string {
	return c.Keybind
}

func (KeybindContent) isContent() {}

// validateContent checks the structural constraints a content value must
// satisfy before it is stored on a node.
func validateContent(c Content) error {
	switch v := c.(type) {
	case nil:
		return &errors.InvalidArgumentError{Type: "TextNode", Field: "Content", Reason: "must not be nil"}
	case KeybindContent:
		if v.Keybind == "" {
			return &errors.InvalidArgumentError{Type: "KeybindContent", Field: "Keybind", Reason: "must not be empty"}
		}
	case *PlainContent, *TranslateContent, *KeybindContent:
		return &errors.InvalidArgumentError{
			Type:   "TextNode",
			Field:  "Content",
			Reason: "must be passed by value",
			Value:  fmt.Sprintf("%T", c),
		}
	}
	return nil
}

// cloneContent copies the argument slice of translate content so the copy
// can be mutated independently. Nested nodes are deep-copied.
func cloneContent(c Content) Content {
	switch v := c.(type) {
	case PlainContent:
		if n, ok := v.Value.(*Node); ok {
			return PlainContent{Value: n.Clone()}
		}
		return v
	case TranslateContent:
		return TranslateContent{Key: v.Key, With: cloneArgs(v.With)}
	default:
		return c
	}
}

func cloneArgs(args []any) []any {
	if args == nil {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		if n, ok := a.(*Node); ok {
			out[i] = n.Clone()
			continue
		}
		out[i] = a
	}
	return out
}

// stringOf renders a content value or argument for display and for
// JoinContents.
func stringOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case *Node:
		if x == nil {
			return ""
		}
		return x.ContentString()
	case Char:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
