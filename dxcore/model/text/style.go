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
	"dirpx.dev/dxtext/dxcore/errors"
)

// StyleField identifies one attribute of a Style. The declaration order is
// the order in which set attributes appear in encoded documents.
type StyleField int

const (
	FieldColor StyleField = iota
	FieldFont
	FieldBold
	FieldItalic
	FieldUnderlined
	FieldStrikethrough
	FieldObfuscated
	FieldInsertion
)

// StyleFields lists every StyleField in encoding order.
var StyleFields = []StyleField{
	FieldColor,
	FieldFont,
	FieldBold,
	FieldItalic,
	FieldUnderlined,
	FieldStrikethrough,
	FieldObfuscated,
	FieldInsertion,
}

// String returns the wire key of the field ("color", "font", "bold", ...).
func (f StyleField) String() string {
	switch f {
	case FieldColor:
		return "color"
	case FieldFont:
		return "font"
	case FieldBold:
		return "bold"
	case FieldItalic:
		return "italic"
	case FieldUnderlined:
		return "underlined"
	case FieldStrikethrough:
		return "strikethrough"
	case FieldObfuscated:
		return "obfuscated"
	case FieldInsertion:
		return "insertion"
	default:
		return "unknown"
	}
}

// Style is the flat set of optional visual and interactive attributes of a
// text node.
//
// Every field is tri-state: a nil pointer means "unset" and is omitted from
// the encoded document, which tells the client to inherit the value from the
// parent component or use its own default. Setting a boolean to false is not
// the same as leaving it unset: an explicit false overrides an inherited
// true.
//
// The zero Style has every field unset.
type Style struct {
	// Color is a named colour ("gold") or a "#rrggbb" hex colour.
	Color *string

	// Font is a namespaced font identifier such as "minecraft:uniform".
	Font *string

	Bold          *bool
	Italic        *bool
	Underlined    *bool
	Strikethrough *bool
	Obfuscated    *bool

	// Insertion is inserted into the chat input when the text is
	// shift-clicked.
	Insertion *string
}

// SetColor sets the colour to a named or hex colour string. No validation is
// performed; the client ignores colours it does not know.
func (s *Style) SetColor(color string) *Style {
	s.Color = &color
	return s
}

// SetColorRGB sets the colour to the "#rrggbb" form of a 24-bit value. The
// output always has six lowercase hex digits: 0x00ff00 becomes "#00ff00".
func (s *Style) SetColorRGB(rgb int) *Style {
	return s.SetColor(HexColor(rgb))
}

// SetColorFormat sets the colour to the name of a symbolic format code.
// It fails with *errors.InvalidArgumentError if f is a decoration code
// (bold, italic, reset, ...) rather than a colour; the style is left
// untouched in that case.
func (s *Style) SetColorFormat(f Format) error {
	if !f.IsColor() {
		return &errors.InvalidArgumentError{
			Type:   "Style",
			Field:  "Color",
			Reason: "format code is not a color",
			Value:  f.String(),
		}
	}
	s.SetColor(f.String())
	return nil
}

// SetFont sets the font identifier.
func (s *Style) SetFont(font string) *Style {
	s.Font = &font
	return s
}

// SetBold sets the bold flag.
func (s *Style) SetBold(v bool) *Style {
	s.Bold = &v
	return s
}

// SetItalic sets the italic flag.
func (s *Style) SetItalic(v bool) *Style {
	s.Italic = &v
	return s
}

// SetUnderlined sets the underlined flag.
func (s *Style) SetUnderlined(v bool) *Style {
	s.Underlined = &v
	return s
}

// SetStrikethrough sets the strikethrough flag.
func (s *Style) SetStrikethrough(v bool) *Style {
	s.Strikethrough = &v
	return s
}

// SetObfuscated sets the obfuscated flag.
func (s *Style) SetObfuscated(v bool) *Style {
	s.Obfuscated = &v
	return s
}

// SetInsertion sets the shift-click insertion text.
func (s *Style) SetInsertion(insertion string) *Style {
	s.Insertion = &insertion
	return s
}

// Clear returns the given fields to "unset". With no arguments every field
// is cleared.
func (s *Style) Clear(fields ...StyleField) *Style {
	if len(fields) == 0 {
		*s = Style{}
		return s
	}
	for _, f := range fields {
		switch f {
		case FieldColor:
			s.Color = nil
		case FieldFont:
			s.Font = nil
		case FieldBold:
			s.Bold = nil
		case FieldItalic:
			s.Italic = nil
		case FieldUnderlined:
			s.Underlined = nil
		case FieldStrikethrough:
			s.Strikethrough = nil
		case FieldObfuscated:
			s.Obfuscated = nil
		case FieldInsertion:
			s.Insertion = nil
		}
	}
	return s
}

// Value returns the explicitly set value of a field (a string or a bool) and
// whether it is set.
func (s Style) Value(f StyleField) (any, bool) {
	switch f {
	case FieldColor:
		return deref(s.Color)
	case FieldFont:
		return deref(s.Font)
	case FieldBold:
		return deref(s.Bold)
	case FieldItalic:
		return deref(s.Italic)
	case FieldUnderlined:
		return deref(s.Underlined)
	case FieldStrikethrough:
		return deref(s.Strikethrough)
	case FieldObfuscated:
		return deref(s.Obfuscated)
	case FieldInsertion:
		return deref(s.Insertion)
	default:
		return nil, false
	}
}

// IsSet reports whether a field has an explicit value.
func (s Style) IsSet(f StyleField) bool {
	_, ok := s.Value(f)
	return ok
}

// IsZero reports whether every field is unset.
func (s Style) IsZero() bool {
	for _, f := range StyleFields {
		if s.IsSet(f) {
			return false
		}
	}
	return true
}

// Equal reports whether both styles set the same fields to the same values.
func (s Style) Equal(other Style) bool {
	for _, f := range StyleFields {
		a, aok := s.Value(f)
		b, bok := other.Value(f)
		if aok != bok || a != b {
			return false
		}
	}
	return true
}

// Inherit returns a copy of s in which every unset field takes the value of
// the same field in parent. This is how the client resolves the effective
// style of a child component; the encoder never applies it.
func (s Style) Inherit(parent Style) Style {
	out := s.clone()
	if out.Color == nil && parent.Color != nil {
		out.Color = ptr(*parent.Color)
	}
	if out.Font == nil && parent.Font != nil {
		out.Font = ptr(*parent.Font)
	}
	if out.Bold == nil && parent.Bold != nil {
		out.Bold = ptr(*parent.Bold)
	}
	if out.Italic == nil && parent.Italic != nil {
		out.Italic = ptr(*parent.Italic)
	}
	if out.Underlined == nil && parent.Underlined != nil {
		out.Underlined = ptr(*parent.Underlined)
	}
	if out.Strikethrough == nil && parent.Strikethrough != nil {
		out.Strikethrough = ptr(*parent.Strikethrough)
	}
	if out.Obfuscated == nil && parent.Obfuscated != nil {
		out.Obfuscated = ptr(*parent.Obfuscated)
	}
	if out.Insertion == nil && parent.Insertion != nil {
		out.Insertion = ptr(*parent.Insertion)
	}
	return out
}

// DisplayColor returns the colour, or DefaultColor when unset.
func (s Style) DisplayColor() string { return stringOr(s.Color, DefaultColor) }

// DisplayFont returns the font, or DefaultFont when unset.
func (s Style) DisplayFont() string { return stringOr(s.Font, DefaultFont) }

// IsBold returns the bold flag, or false when unset.
func (s Style) IsBold() bool { return boolOr(s.Bold, false) }

// IsItalic returns the italic flag, or false when unset.
func (s Style) IsItalic() bool { return boolOr(s.Italic, false) }

// IsUnderlined returns the underlined flag, or false when unset.
func (s Style) IsUnderlined() bool { return boolOr(s.Underlined, false) }

// IsStrikethrough returns the strikethrough flag, or false when unset.
func (s Style) IsStrikethrough() bool { return boolOr(s.Strikethrough, false) }

// IsObfuscated returns the obfuscated flag, or false when unset.
func (s Style) IsObfuscated() bool { return boolOr(s.Obfuscated, false) }

// DisplayInsertion returns the insertion text, or DefaultInsertion when
// unset.
func (s Style) DisplayInsertion() string { return stringOr(s.Insertion, DefaultInsertion) }

// clone copies every set field into fresh storage so the copy shares no
// pointers with s.
func (s Style) clone() Style {
	var out Style
	if s.Color != nil {
		out.Color = ptr(*s.Color)
	}
	if s.Font != nil {
		out.Font = ptr(*s.Font)
	}
	if s.Bold != nil {
		out.Bold = ptr(*s.Bold)
	}
	if s.Italic != nil {
		out.Italic = ptr(*s.Italic)
	}
	if s.Underlined != nil {
		out.Underlined = ptr(*s.Underlined)
	}
	if s.Strikethrough != nil {
		out.Strikethrough = ptr(*s.Strikethrough)
	}
	if s.Obfuscated != nil {
		out.Obfuscated = ptr(*s.Obfuscated)
	}
	if s.Insertion != nil {
		out.Insertion = ptr(*s.Insertion)
	}
	return out
}

func deref[T any](p *T) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}
