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
	"strconv"
	"strings"

	"dirpx.dev/dxtext/dxcore/errors"
)

// Format is a symbolic legacy formatting code, the sixteen named colours
// followed by the decoration codes and reset. Only the colours may be used
// as a node colour; see IsColor.
type Format int

const (
	Black Format = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
	Magic
	Bold
	Strikethrough
	Underline
	Italic
	Reset
)

type formatInfo struct {
	name string
	code byte
	rgb  int
}

var formats = [...]formatInfo{
	Black:         {"black", '0', 0x000000},
	DarkBlue:      {"dark_blue", '1', 0x0000aa},
	DarkGreen:     {"dark_green", '2', 0x00aa00},
	DarkAqua:      {"dark_aqua", '3', 0x00aaaa},
	DarkRed:       {"dark_red", '4', 0xaa0000},
	DarkPurple:    {"dark_purple", '5', 0xaa00aa},
	Gold:          {"gold", '6', 0xffaa00},
	Gray:          {"gray", '7', 0xaaaaaa},
	DarkGray:      {"dark_gray", '8', 0x555555},
	Blue:          {"blue", '9', 0x5555ff},
	Green:         {"green", 'a', 0x55ff55},
	Aqua:          {"aqua", 'b', 0x55ffff},
	Red:           {"red", 'c', 0xff5555},
	LightPurple:   {"light_purple", 'd', 0xff55ff},
	Yellow:        {"yellow", 'e', 0xffff55},
	White:         {"white", 'f', 0xffffff},
	Magic:         {"magic", 'k', -1},
	Bold:          {"bold", 'l', -1},
	Strikethrough: {"strikethrough", 'm', -1},
	Underline:     {"underline", 'n', -1},
	Italic:        {"italic", 'o', -1},
	Reset:         {"reset", 'r', -1},
}

// String returns the lowercase name of the format code (for example
// "dark_aqua" or "bold"), which for colours is also the wire colour name.
func (f Format) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return formats[f].name
}

// Code returns the single-character legacy code ('0'-'9', 'a'-'f', 'k'-'o',
// 'r'), or 0 for invalid values.
func (f Format) Code() byte {
	if !f.Valid() {
		return 0
	}
	return formats[f].code
}

// Valid reports whether f is one of the defined constants.
func (f Format) Valid() bool {
	return f >= Black && f <= Reset
}

// IsColor reports whether f is one of the sixteen named colours.
func (f Format) IsColor() bool {
	return f >= Black && f <= White
}

// RGB returns the 24-bit colour of a named colour, or -1 for decoration
// codes and invalid values.
func (f Format) RGB() int {
	if !f.IsColor() {
		return -1
	}
	return formats[f].rgb
}

// ParseFormat resolves a format name ("gold", "DARK_RED", "dark-red") or a
// legacy code with or without its '§' or '&' prefix ("c", "§c", "&c").
func ParseFormat(str string) (Format, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(str, "§"), "&")
	if len(s) == 1 {
		code := strings.ToLower(s)[0]
		for i := range formats {
			if formats[i].code == code {
				return Format(i), nil
			}
		}
	}
	name := strings.ReplaceAll(strings.ToLower(s), "-", "_")
	for i := range formats {
		if formats[i].name == name {
			return Format(i), nil
		}
	}
	return Reset, &errors.ParseError{Type: "Format", Value: str}
}

// IsNamedColor reports whether name is one of the sixteen wire colour names.
// The comparison is exact: wire colour names are lowercase.
func IsNamedColor(name string) bool {
	for i := Black; i <= White; i++ {
		if formats[i].name == name {
			return true
		}
	}
	return false
}

// HexColor formats a 24-bit colour as "#rrggbb". Bits above the low 24 are
// discarded.
func HexColor(rgb int) string {
	return fmt.Sprintf("#%06x", rgb&0xffffff)
}

// ParseHexColor parses "#rrggbb" (case-insensitive) into a 24-bit colour.
func ParseHexColor(str string) (int, bool) {
	if len(str) != 7 || str[0] != '#' {
		return 0, false
	}
	v, err := strconv.ParseUint(str[1:], 16, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// ColorRGB resolves a wire colour value, either a named colour or a hex
// colour, to its 24-bit value.
func ColorRGB(color string) (int, bool) {
	if rgb, ok := ParseHexColor(color); ok {
		return rgb, true
	}
	for i := Black; i <= White; i++ {
		if formats[i].name == color {
			return formats[i].rgb, true
		}
	}
	return 0, false
}
