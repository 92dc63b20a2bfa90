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
	"dirpx.dev/dxtext/dxcore/model"
)

// HoverEvent is the binding that shows a tooltip while the pointer is over
// the text. The tooltip is either one or more text nodes (show_text), an
// item (show_item) or an entity (show_entity).
//
// The payload is encoded under "contents". A show_text binding holding
// exactly one node inlines that node's object; two or more nodes are
// encoded as an array.
type HoverEvent struct {
	action Action
	texts  []*Node
	item   *ItemTooltip
	entity *EntityTooltip
}

// Compile-time check that HoverEvent implements model.Model interface.
var _ model.Model = (*HoverEvent)(nil)

// NewHoverEvent returns a hover binding with no action and no payload.
func NewHoverEvent() *HoverEvent {
	return &HoverEvent{}
}

// ShowText returns a show_text binding for values; see HoverEvent.Show.
func ShowText(values ...any) *HoverEvent {
	return NewHoverEvent().Show(values...)
}

// Show sets the action to show_text and replaces the payload with values
// persuaded into nodes. Nil values are dropped. Show never fails.
//
// A single *ItemTooltip or *EntityTooltip argument is shown as that tooltip,
// as if passed to ShowItem or ShowEntity.
func (h *HoverEvent) Show(values ...any) *HoverEvent {
	if len(values) == 1 {
		switch v := values[0].(type) {
		case *ItemTooltip:
			return h.ShowItem(v)
		case *EntityTooltip:
			return h.ShowEntity(v)
		}
	}
	h.clearPayload()
	h.action = ActionShowText
	h.texts = PersuadeAll(values...)
	return h
}

// ShowItem sets the action to show_item with item as the payload. A nil item
// leaves the payload unset.
func (h *HoverEvent) ShowItem(item *ItemTooltip) *HoverEvent {
	h.clearPayload()
	h.action = ActionShowItem
	h.item = item
	return h
}

// ShowEntity sets the action to show_entity with entity as the payload. A
// nil entity leaves the payload unset.
func (h *HoverEvent) ShowEntity(entity *EntityTooltip) *HoverEvent {
	h.clearPayload()
	h.action = ActionShowEntity
	h.entity = entity
	return h
}

// Kind returns Hover.
func (h *HoverEvent) Kind() EventKind { return Hover }

// Action returns the action tag, or "" when unset.
func (h *HoverEvent) Action() Action { return h.action }

// SetAction sets the action. The empty action unsets it. Any other action
// outside the hover whitelist fails with *errors.UnsupportedActionError and
// leaves the binding unchanged. Switching to a different action clears the
// payload.
func (h *HoverEvent) SetAction(a Action) error {
	if a != "" && !Hover.Supports(a) {
		return &errors.UnsupportedActionError{Kind: Hover.Key(), Action: string(a)}
	}
	if a != h.action {
		h.clearPayload()
	}
	h.action = a
	return nil
}

// Texts returns a copy of the show_text node list. The nodes themselves are
// shared.
func (h *HoverEvent) Texts() []*Node {
	if len(h.texts) == 0 {
		return nil
	}
	return append([]*Node(nil), h.texts...)
}

// Item returns the show_item payload, or nil.
func (h *HoverEvent) Item() *ItemTooltip { return h.item }

// Entity returns the show_entity payload, or nil.
func (h *HoverEvent) Entity() *EntityTooltip { return h.entity }

// HasValue reports whether a payload is set.
func (h *HoverEvent) HasValue() bool {
	return len(h.texts) > 0 || h.item != nil || h.entity != nil
}

// ClearValue removes the payload and keeps the action.
func (h *HoverEvent) ClearValue() *HoverEvent {
	h.clearPayload()
	return h
}

func (h *HoverEvent) clearPayload() {
	h.texts, h.item, h.entity = nil, nil, nil
}

func (h *HoverEvent) encode(st *encodeState) (*Object, error) {
	var contents any
	switch {
	case len(h.texts) == 1:
		obj, err := st.node(h.texts[0])
		if err != nil {
			return nil, err
		}
		contents = obj
	case len(h.texts) > 1:
		arr := make(Array, 0, len(h.texts))
		for _, t := range h.texts {
			obj, err := st.node(t)
			if err != nil {
				return nil, err
			}
			arr = append(arr, obj)
		}
		contents = arr
	case h.item != nil:
		contents = h.item.object()
	case h.entity != nil:
		contents = h.entity.object()
	}
	return encodeEnvelope(st, h.action, "contents", contents, h.HasValue()), nil
}

func (h *HoverEvent) walk(visit func(*Node) bool) bool {
	for _, t := range h.texts {
		if visit(t) {
			return true
		}
	}
	return false
}

func (h *HoverEvent) cloneEvent() Event { return h.Clone() }

// Clone returns a deep copy of the binding, including its text nodes and
// tooltips.
func (h *HoverEvent) Clone() *HoverEvent {
	c := &HoverEvent{action: h.action}
	if h.texts != nil {
		c.texts = make([]*Node, len(h.texts))
		for i, t := range h.texts {
			c.texts[i] = t.Clone()
		}
	}
	if h.item != nil {
		c.item = h.item.Clone()
	}
	if h.entity != nil {
		c.entity = h.entity.Clone()
	}
	return c
}

// Validate reports whether the binding encodes: every text node MUST
// validate and the binding MUST NOT contain itself through its texts.
func (h *HoverEvent) Validate() error {
	_, err := defaultEncoder.EncodeEvent(h)
	return err
}

// TypeName returns "HoverEvent".
func (h *HoverEvent) TypeName() string {
	return "HoverEvent"
}

// IsZero reports whether neither action nor payload is set.
func (h *HoverEvent) IsZero() bool {
	return h == nil || (h.action == "" && !h.HasValue())
}

// Redacted returns the action and the payload shape without any text.
func (h *HoverEvent) Redacted() string {
	var contents string
	switch {
	case len(h.texts) > 0:
		contents = fmt.Sprintf("texts=%d", len(h.texts))
	case h.item != nil:
		contents = "item=" + h.item.DisplayID()
	case h.entity != nil:
		contents = "entity=" + h.entity.DisplayType()
	default:
		contents = "contents=<unset>"
	}
	return fmt.Sprintf("HoverEvent{action=%s, %s}", orUnset(string(h.action)), contents)
}

// String returns the canonical JSON of the binding.
func (h *HoverEvent) String() string {
	return eventString(h)
}

// Equal reports whether both bindings encode identically.
func (h *HoverEvent) Equal(other *HoverEvent) bool {
	return eventsEqual(h, other)
}

// MarshalJSON encodes the binding with the default encoder.
func (h *HoverEvent) MarshalJSON() ([]byte, error) {
	return marshalEvent(h)
}

// MarshalYAML renders the binding as an ordered YAML mapping.
func (h *HoverEvent) MarshalYAML() (any, error) {
	return yamlEvent(h)
}
