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
	"strings"

	"dirpx.dev/dxtext/dxcore/errors"
	"dirpx.dev/dxtext/dxcore/model"
)

// EventKind names the interaction an event binding reacts to. A node holds at
// most one binding per kind.
type EventKind int

const (
	// Click bindings fire when the player clicks the text.
	Click EventKind = iota

	// Hover bindings show a tooltip while the pointer is over the text.
	Hover
)

// EventKinds lists every EventKind in encoding order.
var EventKinds = []EventKind{Click, Hover}

// String returns "click" or "hover". Values outside the defined constants
// render as "unknown".
func (k EventKind) String() string {
	switch k {
	case Click:
		return "click"
	case Hover:
		return "hover"
	default:
		return "unknown"
	}
}

// Key returns the document key the binding is encoded under: "clickEvent"
// or "hoverEvent".
func (k EventKind) Key() string {
	switch k {
	case Click:
		return "clickEvent"
	case Hover:
		return "hoverEvent"
	default:
		return ""
	}
}

// ParseEventKind accepts the short name ("click") or the document key
// ("clickEvent") of a kind, case-insensitively.
func ParseEventKind(str string) (EventKind, error) {
	switch strings.ToLower(str) {
	case "click", "clickevent":
		return Click, nil
	case "hover", "hoverevent":
		return Hover, nil
	default:
		return Click, &errors.ParseError{Type: "EventKind", Value: str}
	}
}

// Valid reports whether k is one of the defined constants.
func (k EventKind) Valid() bool {
	return k == Click || k == Hover
}

// Actions returns the whitelist of actions a binding of this kind accepts.
func (k EventKind) Actions() []Action {
	switch k {
	case Click:
		return []Action{ActionOpenURL, ActionRunCommand, ActionSuggestCommand, ActionChangePage, ActionCopyToClipboard}
	case Hover:
		return []Action{ActionShowText, ActionShowItem, ActionShowEntity}
	default:
		return nil
	}
}

// Supports reports whether a is in the whitelist of k.
func (k EventKind) Supports(a Action) bool {
	for _, candidate := range k.Actions() {
		if candidate == a {
			return true
		}
	}
	return false
}

// Action is the wire tag of an event binding's behaviour.
type Action string

// Click actions.
const (
	ActionOpenURL         Action = "open_url"
	ActionRunCommand      Action = "run_command"
	ActionSuggestCommand  Action = "suggest_command"
	ActionChangePage      Action = "change_page"
	ActionCopyToClipboard Action = "copy_to_clipboard"
)

// Hover actions.
const (
	ActionShowText   Action = "show_text"
	ActionShowItem   Action = "show_item"
	ActionShowEntity Action = "show_entity"
)

// String returns the wire tag.
func (a Action) String() string {
	return string(a)
}

// Kind returns the kind whose whitelist contains a.
func (a Action) Kind() (EventKind, bool) {
	for _, k := range EventKinds {
		if k.Supports(a) {
			return k, true
		}
	}
	return Click, false
}

// Valid reports whether a belongs to the whitelist of any kind.
func (a Action) Valid() bool {
	_, ok := a.Kind()
	return ok
}

// ParseAction normalizes str ("OPEN_URL", "open-url") into a known Action.
func ParseAction(str string) (Action, error) {
	a := Action(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(str)), "-", "_"))
	if !a.Valid() {
		return "", &errors.ParseError{Type: "Action", Value: str}
	}
	return a, nil
}

// Event is an interaction binding attachable to a Node. It is a closed sum
// type implemented by *ClickEvent and *HoverEvent.
//
// Bindings are mutable after attachment. A node checks the binding for
// cycles when it is attached; the encoder repeats the check while walking
// the tree, so a binding mutated afterwards to contain its own owner fails
// to encode with *errors.CyclicStructureError instead of recursing forever.
type Event interface {
	model.Model

	// Kind returns the binding kind.
	Kind() EventKind

	// Action returns the action tag, or "" when none has been set.
	Action() Action

	encode(st *encodeState) (*Object, error)
	walk(visit func(*Node) bool) bool
	cloneEvent() Event
}

// isNilEvent reports whether e is nil or a typed nil pointer.
func isNilEvent(e Event) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *ClickEvent:
		return v == nil
	case *HoverEvent:
		return v == nil
	default:
		return false
	}
}

// encodeEnvelope writes the {action, <payloadKey>} pair shared by both
// binding kinds, applying the encoder's payload policy to absent parts.
func encodeEnvelope(st *encodeState, action Action, payloadKey string, payload any, hasPayload bool) *Object {
	obj := NewObject()
	if action != "" {
		obj.Set("action", string(action))
	} else if st.enc.policy == NullPayload {
		obj.Set("action", nil)
	}
	if hasPayload {
		obj.Set(payloadKey, payload)
	} else if st.enc.policy == NullPayload {
		obj.Set(payloadKey, nil)
	}
	return obj
}
