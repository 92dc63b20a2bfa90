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

// Package text implements the rich-text component model and its canonical
// JSON encoder.
//
// A document is a tree of *Node values. Every node carries exactly one
// Content variant (plain value, translation key with arguments, or keybind
// identifier), an optional Style, at most one event binding per EventKind
// and an ordered list of children encoded under "extra":
//
//	greeting := text.NewTranslated("%s joined the game", "Whirvis")
//	_ = greeting.SetColorFormat(text.Yellow)
//
//	name := text.NewPlain("[rules]").SetBold(true)
//	_ = name.SetEvent(text.RunCommand("/rules"))
//	_ = name.SetEvent(text.ShowText("Click to read the rules"))
//	_ = greeting.AddChildren(name)
//
//	doc, err := text.Marshal(greeting)
//
// # Invariants
//
// The tree is strictly owned and acyclic. Every mutation that links one node
// below another checks that the receiver is not reachable from the incoming
// value and fails with *errors.CyclicStructureError otherwise. Mutators
// validate their input before touching the receiver: an error always means
// that nothing was committed.
//
// Unset style fields and absent events are omitted from the encoded document.
// Display defaults (DefaultColor, DefaultFont, ...) are only applied by the
// display accessors and never reach the encoder. Style inheritance is a
// client-side rendering concept; the encoder writes every node as it is.
//
// # Equality
//
// Two nodes are equal if and only if their canonical JSON documents are
// equal. Equal and Hash are therefore proportional to the size of the tree.
//
// # Concurrency
//
// Nodes are not safe for concurrent mutation. Encoding an unmutated tree from
// several goroutines is safe, and an *Encoder is immutable after
// construction.
package text

import (
	"fmt"
	"strings"

	"dirpx.dev/dxtext/dxcore/errors"
	"dirpx.dev/dxtext/dxcore/model"
	"github.com/cespare/xxhash/v2"
)

// Node is one run of styled text together with its event bindings and its
// children.
//
// The zero Node is an empty plain node and is ready to use.
type Node struct {
	content  Content
	style    Style
	events   map[EventKind]Event
	children []*Node
}

// Compile-time check that Node implements model.Model interface.
var _ model.Model = (*Node)(nil)

// NewPlain returns a plain node for value. See PlainContent for the value
// types the encoder accepts; a nil value encodes as the empty string.
func NewPlain(value any) *Node {
	return &Node{content: PlainContent{Value: value}}
}

// NewTranslated returns a translate node for key with the given
// substitution arguments.
func NewTranslated(key string, with ...any) *Node {
	return &Node{content: TranslateContent{Key: key, With: append([]any(nil), with...)}}
}

// NewKeybind returns a keybind node for id, for example "key.jump". An empty
// id fails with *errors.InvalidArgumentError.
func NewKeybind(id string) (*Node, error) {
	c := KeybindContent{Keybind: id}
	if err := validateContent(c); err != nil {
		return nil, err
	}
	return &Node{content: c}, nil
}

// Type returns the content discriminant fixed at construction.
func (n *Node) Type() ContentType {
	return n.contentOrEmpty().Type()
}

// Content returns the node's content. The argument slice of translate
// content is a copy; nested nodes are shared.
func (n *Node) Content() Content {
	c := n.contentOrEmpty()
	if t, ok := c.(TranslateContent); ok {
		t.With = append([]any(nil), t.With...)
		return t
	}
	return c
}

// SetContent replaces the content. c MUST have the same discriminant as the
// node and MUST NOT contain the node itself.
func (n *Node) SetContent(c Content) error {
	if err := validateContent(c); err != nil {
		return err
	}
	if c.Type() != n.Type() {
		return &errors.InvalidArgumentError{
			Type:   "TextNode",
			Field:  "Content",
			Reason: fmt.Sprintf("content type is fixed to %s, got %s", n.Type(), c.Type()),
		}
	}
	switch v := c.(type) {
	case PlainContent:
		if err := n.checkLink("plain value", v.Value); err != nil {
			return err
		}
	case TranslateContent:
		if err := n.checkLink("translation argument", v.With...); err != nil {
			return err
		}
		v.With = append([]any(nil), v.With...)
		c = v
	}
	n.content = c
	return nil
}

// SetValue replaces the value of a plain node.
func (n *Node) SetValue(value any) error {
	return n.SetContent(PlainContent{Value: value})
}

// SetTranslation replaces the translation key of a translate node and keeps
// its arguments.
func (n *Node) SetTranslation(key string) error {
	t, ok := n.contentOrEmpty().(TranslateContent)
	if !ok {
		return n.notTranslate("Key")
	}
	n.content = TranslateContent{Key: key, With: t.With}
	return nil
}

// SetWith replaces the substitution arguments of a translate node.
func (n *Node) SetWith(with ...any) error {
	t, ok := n.contentOrEmpty().(TranslateContent)
	if !ok {
		return n.notTranslate("With")
	}
	return n.SetContent(TranslateContent{Key: t.Key, With: with})
}

func (n *Node) notTranslate(field string) error {
	return &errors.InvalidArgumentError{
		Type:   "TextNode",
		Field:  field,
		Reason: "node content type is " + n.Type().String() + ", not translate",
	}
}

func (n *Node) contentOrEmpty() Content {
	if n.content == nil {
		return PlainContent{}
	}
	return n.content
}

// ContentString returns the string form of the node's own content: the
// plain value, the translation key or the keybind identifier. Children are
// not included.
func (n *Node) ContentString() string {
	return n.contentOrEmpty().String()
}

// PlainText returns a local, unstyled preview of the whole tree: the node's
// content followed by its children's. Translation keys are treated as
// format strings and filled from their arguments; see
// TranslateContent.Format.
func (n *Node) PlainText() string {
	var sb strings.Builder
	n.writePlain(&sb, make(map[*Node]bool))
	return sb.String()
}

func (n *Node) writePlain(sb *strings.Builder, visiting map[*Node]bool) {
	if visiting[n] {
		return
	}
	visiting[n] = true
	defer delete(visiting, n)

	switch c := n.contentOrEmpty().(type) {
	case TranslateContent:
		sb.WriteString(c.format(func(v any) string { return plainOf(v, visiting) }))
	case PlainContent:
		sb.WriteString(plainOf(c.Value, visiting))
	default:
		sb.WriteString(c.String())
	}
	for _, child := range n.children {
		child.writePlain(sb, visiting)
	}
}

func plainOf(v any, visiting map[*Node]bool) string {
	if child, ok := v.(*Node); ok && child != nil {
		var sb strings.Builder
		child.writePlain(&sb, visiting)
		return sb.String()
	}
	return stringOf(v)
}

// Style returns a copy of the node's style.
func (n *Node) Style() Style {
	return n.style.clone()
}

// SetStyle replaces the whole style with a copy of s.
func (n *Node) SetStyle(s Style) *Node {
	n.style = s.clone()
	return n
}

// ClearStyle unsets the given style fields, or every field when none are
// given.
func (n *Node) ClearStyle(fields ...StyleField) *Node {
	n.style.Clear(fields...)
	return n
}

// SetColor sets a named or hex colour.
func (n *Node) SetColor(color string) *Node {
	n.style.SetColor(color)
	return n
}

// SetColorRGB sets the colour to the "#rrggbb" form of rgb.
func (n *Node) SetColorRGB(rgb int) *Node {
	n.style.SetColorRGB(rgb)
	return n
}

// SetColorFormat sets the colour to a named colour format code. Decoration
// codes fail with *errors.InvalidArgumentError.
func (n *Node) SetColorFormat(f Format) error {
	return n.style.SetColorFormat(f)
}

// SetFont sets the font identifier.
func (n *Node) SetFont(font string) *Node {
	n.style.SetFont(font)
	return n
}

// SetBold sets the bold flag.
func (n *Node) SetBold(v bool) *Node {
	n.style.SetBold(v)
	return n
}

// SetItalic sets the italic flag.
func (n *Node) SetItalic(v bool) *Node {
	n.style.SetItalic(v)
	return n
}

// SetUnderlined sets the underlined flag.
func (n *Node) SetUnderlined(v bool) *Node {
	n.style.SetUnderlined(v)
	return n
}

// SetStrikethrough sets the strikethrough flag.
func (n *Node) SetStrikethrough(v bool) *Node {
	n.style.SetStrikethrough(v)
	return n
}

// SetObfuscated sets the obfuscated flag.
func (n *Node) SetObfuscated(v bool) *Node {
	n.style.SetObfuscated(v)
	return n
}

// SetInsertion sets the shift-click insertion text.
func (n *Node) SetInsertion(insertion string) *Node {
	n.style.SetInsertion(insertion)
	return n
}

// AddChildren appends nodes to the children in order. Every candidate is
// checked before any is appended: a nil node fails with
// *errors.InvalidArgumentError, and a node that is the receiver or from
// which the receiver is reachable fails with *errors.CyclicStructureError.
//
// Ownership is not tracked: appending the same node twice, or a node that
// already belongs to another tree, is not detected.
func (n *Node) AddChildren(nodes ...*Node) error {
	for i, c := range nodes {
		if c == nil {
			return &errors.InvalidArgumentError{
				Type:   "TextNode",
				Field:  "Children",
				Reason: fmt.Sprintf("child %d is nil", i),
			}
		}
		if c.reaches(n) {
			return &errors.CyclicStructureError{
				Type:   "TextNode",
				Reason: fmt.Sprintf("child %d contains its parent", i),
			}
		}
	}
	n.children = append(n.children, nodes...)
	return nil
}

// RemoveChildren removes every child identical to one of nodes. Nodes that
// are not children are ignored.
func (n *Node) RemoveChildren(nodes ...*Node) *Node {
	if len(nodes) == 0 || len(n.children) == 0 {
		return n
	}
	drop := make(map[*Node]struct{}, len(nodes))
	for _, c := range nodes {
		drop[c] = struct{}{}
	}
	kept := n.children[:0]
	for _, c := range n.children {
		if _, ok := drop[c]; !ok {
			kept = append(kept, c)
		}
	}
	clear(n.children[len(kept):])
	n.children = kept
	return n
}

// ClearChildren removes every child.
func (n *Node) ClearChildren() *Node {
	n.children = nil
	return n
}

// Children returns a copy of the child list. The nodes are shared.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	return append([]*Node(nil), n.children...)
}

// SetEvent attaches e, replacing any binding of the same kind. A nil binding
// fails with *errors.InvalidArgumentError and a binding whose text contains
// the node fails with *errors.CyclicStructureError.
func (n *Node) SetEvent(e Event) error {
	if isNilEvent(e) {
		return &errors.InvalidArgumentError{Type: "TextNode", Field: "Events", Reason: "event must not be nil"}
	}
	if !e.Kind().Valid() {
		return &errors.InvalidArgumentError{Type: "TextNode", Field: "Events", Reason: "unknown event kind"}
	}
	if e.walk(func(t *Node) bool { return t.reaches(n) }) {
		return &errors.CyclicStructureError{
			Type:   "TextNode",
			Reason: e.Kind().Key() + " contents contain the node",
		}
	}
	if n.events == nil {
		n.events = make(map[EventKind]Event, len(EventKinds))
	}
	n.events[e.Kind()] = e
	return nil
}

// RemoveEvent detaches the binding of the given kind, if any.
func (n *Node) RemoveEvent(kind EventKind) *Node {
	delete(n.events, kind)
	return n
}

// Event returns the binding of the given kind.
func (n *Node) Event(kind EventKind) (Event, bool) {
	e, ok := n.events[kind]
	return e, ok
}

// HasEvent reports whether a binding of the given kind is attached.
func (n *Node) HasEvent(kind EventKind) bool {
	_, ok := n.events[kind]
	return ok
}

// Events returns the attached bindings in encoding order.
func (n *Node) Events() []Event {
	var out []Event
	for _, k := range EventKinds {
		if e, ok := n.events[k]; ok {
			out = append(out, e)
		}
	}
	return out
}

// ClickEvent returns the attached click binding, or nil.
func (n *Node) ClickEvent() *ClickEvent {
	e, _ := n.events[Click].(*ClickEvent)
	return e
}

// HoverEvent returns the attached hover binding, or nil.
func (n *Node) HoverEvent() *HoverEvent {
	e, _ := n.events[Hover].(*HoverEvent)
	return e
}

// checkLink fails if any of values is a node from which n is reachable.
func (n *Node) checkLink(where string, values ...any) error {
	for _, v := range values {
		if c, ok := v.(*Node); ok && c != nil && c.reaches(n) {
			return &errors.CyclicStructureError{
				Type:   "TextNode",
				Reason: where + " contains the node",
			}
		}
	}
	return nil
}

// reaches reports whether target is n or is reachable from n through
// content values, translation arguments, children or hover texts.
func (n *Node) reaches(target *Node) bool {
	return n.walk(target, make(map[*Node]struct{}))
}

func (n *Node) walk(target *Node, seen map[*Node]struct{}) bool {
	if n == nil {
		return false
	}
	if n == target {
		return true
	}
	if _, ok := seen[n]; ok {
		return false
	}
	seen[n] = struct{}{}

	visit := func(c *Node) bool { return c.walk(target, seen) }

	switch c := n.contentOrEmpty().(type) {
	case PlainContent:
		if v, ok := c.Value.(*Node); ok && visit(v) {
			return true
		}
	case TranslateContent:
		for _, a := range c.With {
			if v, ok := a.(*Node); ok && visit(v) {
				return true
			}
		}
	}
	for _, child := range n.children {
		if visit(child) {
			return true
		}
	}
	for _, e := range n.events {
		if e.walk(visit) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the tree rooted at n: content arguments,
// children, bindings and tooltips are all copied.
func (n *Node) Clone() *Node {
	c := &Node{
		content: cloneContent(n.contentOrEmpty()),
		style:   n.style.clone(),
	}
	if n.content == nil {
		c.content = nil
	}
	if len(n.events) > 0 {
		c.events = make(map[EventKind]Event, len(n.events))
		for k, e := range n.events {
			c.events[k] = e.cloneEvent()
		}
	}
	if n.children != nil {
		c.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			c.children[i] = child.Clone()
		}
	}
	return c
}

// Equal reports whether n and other encode to the same canonical document.
// Nodes that fail to encode are never equal, not even to themselves.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return model.Equal(n, other)
}

// Hash returns the 64-bit xxhash of the canonical document. Equal nodes have
// equal hashes. A node that fails to encode hashes to 0.
func (n *Node) Hash() uint64 {
	s, err := defaultEncoder.MarshalString(n)
	if err != nil {
		return 0
	}
	return xxhash.Sum64String(s)
}

// Validate reports whether the node encodes. It returns the error the
// encoder would return.
func (n *Node) Validate() error {
	_, err := defaultEncoder.Encode(n)
	return err
}

// TypeName returns "TextNode".
func (n *Node) TypeName() string {
	return "TextNode"
}

// IsZero reports whether the node is an empty plain node with no style, no
// bindings and no children.
func (n *Node) IsZero() bool {
	if n == nil {
		return true
	}
	if n.Type() != Plain || n.ContentString() != "" {
		return false
	}
	return n.style.IsZero() && len(n.events) == 0 && len(n.children) == 0
}

// Redacted summarizes the structure of the tree without any text, command,
// URL or tooltip payload.
func (n *Node) Redacted() string {
	var parts []string
	parts = append(parts, "type="+n.Type().String())
	if t, ok := n.contentOrEmpty().(TranslateContent); ok && len(t.With) > 0 {
		parts = append(parts, fmt.Sprintf("with=%d", len(t.With)))
	}
	var fields []string
	for _, f := range StyleFields {
		if n.style.IsSet(f) {
			fields = append(fields, f.String())
		}
	}
	if len(fields) > 0 {
		parts = append(parts, "style=["+strings.Join(fields, ",")+"]")
	}
	for _, e := range n.Events() {
		parts = append(parts, e.Redacted())
	}
	if len(n.children) > 0 {
		parts = append(parts, fmt.Sprintf("extra=%d", len(n.children)))
	}
	return "TextNode{" + strings.Join(parts, ", ") + "}"
}

// String returns the canonical JSON document.
func (n *Node) String() string {
	s, err := defaultEncoder.MarshalString(n)
	if err != nil {
		return "TextNode{invalid: " + err.Error() + "}"
	}
	return s
}

// MarshalJSON encodes the node with the default encoder.
func (n *Node) MarshalJSON() ([]byte, error) {
	return defaultEncoder.Marshal(n)
}

// MarshalYAML renders the canonical document as an ordered YAML mapping.
func (n *Node) MarshalYAML() (any, error) {
	obj, err := defaultEncoder.Encode(n)
	if err != nil {
		return nil, err
	}
	return obj.yamlNode()
}
