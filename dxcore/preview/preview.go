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

// Package preview renders text node trees for a terminal.
//
// Rendering follows the client's inheritance rule: every style field a child
// leaves unset takes its parent's value. Colours and decorations are mapped
// to ANSI escapes; fonts, insertions and event bindings have no terminal
// equivalent and are ignored. Translations are filled locally with
// text.TranslateContent.Format, so the output is a preview and not what a
// client would display.
package preview

import (
	"strings"

	"dirpx.dev/dxtext/dxcore/errors"
	"dirpx.dev/dxtext/dxcore/model/text"
	"github.com/fatih/color"
)

// Mode selects when ANSI escapes are written.
type Mode int

const (
	// Auto writes escapes unless color.NoColor is set, which fatih/color
	// does when stdout is not a terminal or NO_COLOR is present.
	Auto Mode = iota

	// Always writes escapes regardless of the terminal.
	Always

	// Never writes plain text.
	Never
)

// String returns "auto", "always" or "never".
func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "unknown"
	}
}

// ParseMode converts "auto", "always" or "never" into a Mode.
func ParseMode(str string) (Mode, error) {
	switch strings.ToLower(str) {
	case "auto", "":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	default:
		return Auto, &errors.ParseError{Type: "PreviewMode", Value: str}
	}
}

// Option configures Render.
type Option func(*renderer)

// WithMode sets the colour mode. The default is Auto.
func WithMode(m Mode) Option {
	return func(r *renderer) {
		r.mode = m
	}
}

// WithBase sets the style the root node inherits from, for example the
// chat's default colour.
func WithBase(s text.Style) Option {
	return func(r *renderer) {
		r.base = s
	}
}

type renderer struct {
	mode Mode
	base text.Style
	sb   strings.Builder
}

// Render flattens the tree rooted at n into a single line of terminal text.
// A nil node renders as the empty string.
func Render(n *text.Node, opts ...Option) string {
	if n == nil {
		return ""
	}
	r := &renderer{}
	for _, opt := range opts {
		opt(r)
	}
	r.node(n, r.base, make(map[*text.Node]bool))
	return r.sb.String()
}

func (r *renderer) node(n *text.Node, parent text.Style, visiting map[*text.Node]bool) {
	if visiting[n] {
		return
	}
	visiting[n] = true
	defer delete(visiting, n)

	style := n.Style().Inherit(parent)
	r.write(content(n), style)
	for _, child := range n.Children() {
		r.node(child, style, visiting)
	}
}

func content(n *text.Node) string {
	switch c := n.Content().(type) {
	case text.TranslateContent:
		with := make([]any, len(c.With))
		for i, a := range c.With {
			if arg, ok := a.(*text.Node); ok && arg != nil {
				with[i] = arg.PlainText()
				continue
			}
			with[i] = a
		}
		return text.TranslateContent{Key: c.Key, With: with}.Format()
	case text.PlainContent:
		if inner, ok := c.Value.(*text.Node); ok && inner != nil {
			return inner.PlainText()
		}
		return c.String()
	default:
		return c.String()
	}
}

func (r *renderer) write(s string, style text.Style) {
	if s == "" {
		return
	}
	c := r.color(style)
	if c == nil {
		r.sb.WriteString(s)
		return
	}
	r.sb.WriteString(c.Sprint(s))
}

// color returns nil when nothing needs to be written around the text.
func (r *renderer) color(style text.Style) *color.Color {
	if r.mode == Never {
		return nil
	}

	var c *color.Color
	add := func(attrs ...color.Attribute) {
		if c == nil {
			c = color.New()
		}
		c.Add(attrs...)
	}

	if style.Color != nil {
		if attr, ok := namedColors[*style.Color]; ok {
			add(attr)
		} else if rgb, ok := text.ParseHexColor(*style.Color); ok {
			c = color.RGB(rgb>>16&0xff, rgb>>8&0xff, rgb&0xff)
		}
	}
	if style.IsBold() {
		add(color.Bold)
	}
	if style.IsItalic() {
		add(color.Italic)
	}
	if style.IsUnderlined() {
		add(color.Underline)
	}
	if style.IsStrikethrough() {
		add(color.CrossedOut)
	}
	if style.IsObfuscated() {
		add(color.BlinkSlow)
	}

	if c != nil && r.mode == Always {
		c.EnableColor()
	}
	return c
}

var namedColors = map[string]color.Attribute{
	text.Black.String():       color.FgBlack,
	text.DarkBlue.String():    color.FgBlue,
	text.DarkGreen.String():   color.FgGreen,
	text.DarkAqua.String():    color.FgCyan,
	text.DarkRed.String():     color.FgRed,
	text.DarkPurple.String():  color.FgMagenta,
	text.Gold.String():        color.FgYellow,
	text.Gray.String():        color.FgWhite,
	text.DarkGray.String():    color.FgHiBlack,
	text.Blue.String():        color.FgHiBlue,
	text.Green.String():       color.FgHiGreen,
	text.Aqua.String():        color.FgHiCyan,
	text.Red.String():         color.FgHiRed,
	text.LightPurple.String(): color.FgHiMagenta,
	text.Yellow.String():      color.FgHiYellow,
	text.White.String():       color.FgHiWhite,
}
