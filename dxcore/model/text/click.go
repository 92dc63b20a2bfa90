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
	"net/url"

	"dirpx.dev/dxtext/dxcore/errors"
	"dirpx.dev/dxtext/dxcore/model"
	"gopkg.in/yaml.v3"
)

// clickPayload is the type of value a click action expects.
type clickPayload int

const (
	payloadNone clickPayload = iota
	payloadText
	payloadURL
	payloadPage
)

func (p clickPayload) String() string {
	switch p {
	case payloadText:
		return "text"
	case payloadURL:
		return "URL"
	case payloadPage:
		return "page"
	default:
		return "no"
	}
}

func expectedClickPayload(a Action) clickPayload {
	switch a {
	case ActionOpenURL:
		return payloadURL
	case ActionRunCommand, ActionSuggestCommand, ActionCopyToClipboard:
		return payloadText
	case ActionChangePage:
		return payloadPage
	default:
		return payloadNone
	}
}

// ClickEvent is the binding that fires when the player clicks the text.
//
// The payload is typed by the action: open_url carries an absolute URL,
// change_page a non-negative page number, and the command and clipboard
// actions carry a string. Payload setters reject values the current action
// does not expect, and changing the action to one that expects a different
// payload type clears the payload.
//
// A ClickEvent whose payload was never assigned still encodes; see
// PayloadPolicy.
type ClickEvent struct {
	action  Action
	payload clickPayload
	text    string
	url     *url.URL
	page    int
}

// Compile-time check that ClickEvent implements model.Model interface.
var _ model.Model = (*ClickEvent)(nil)

// NewClickEvent returns a click binding with no action and no payload.
func NewClickEvent() *ClickEvent {
	return &ClickEvent{}
}

// OpenURL returns a binding that opens raw in the player's browser. raw MUST
// be an absolute URL.
func OpenURL(raw string) (*ClickEvent, error) {
	e := &ClickEvent{action: ActionOpenURL}
	if err := e.SetURL(raw); err != nil {
		return nil, err
	}
	return e, nil
}

// RunCommand returns a binding that makes the player send command.
func RunCommand(command string) *ClickEvent {
	return &ClickEvent{action: ActionRunCommand, payload: payloadText, text: command}
}

// SuggestCommand returns a binding that places command in the chat input.
func SuggestCommand(command string) *ClickEvent {
	return &ClickEvent{action: ActionSuggestCommand, payload: payloadText, text: command}
}

// ChangePage returns a binding that turns a book to page.
func ChangePage(page int) (*ClickEvent, error) {
	e := &ClickEvent{action: ActionChangePage}
	if err := e.SetPage(page); err != nil {
		return nil, err
	}
	return e, nil
}

// CopyToClipboard returns a binding that copies text to the clipboard.
func CopyToClipboard(text string) *ClickEvent {
	return &ClickEvent{action: ActionCopyToClipboard, payload: payloadText, text: text}
}

// Kind returns Click.
func (e *ClickEvent) Kind() EventKind { return Click }

// Action returns the action tag, or "" when unset.
func (e *ClickEvent) Action() Action { return e.action }

// SetAction sets the action. The empty action unsets it. Any other action
// outside the click whitelist fails with *errors.UnsupportedActionError and
// leaves the binding unchanged.
func (e *ClickEvent) SetAction(a Action) error {
	if a != "" && !Click.Supports(a) {
		return &errors.UnsupportedActionError{Kind: Click.Key(), Action: string(a)}
	}
	if expectedClickPayload(a) != e.payload {
		e.ClearValue()
	}
	e.action = a
	return nil
}

// SetText sets the string payload of a command or clipboard action.
func (e *ClickEvent) SetText(text string) error {
	if err := e.expect(payloadText); err != nil {
		return err
	}
	e.ClearValue()
	e.payload, e.text = payloadText, text
	return nil
}

// SetURL parses raw and sets it as the payload of an open_url action. raw
// MUST parse as an absolute URL.
func (e *ClickEvent) SetURL(raw string) error {
	if err := e.expect(payloadURL); err != nil {
		return err
	}
	u, err := url.Parse(raw)
	if err != nil {
		return &errors.InvalidArgumentError{Type: "ClickEvent", Field: "URL", Reason: err.Error(), Value: raw}
	}
	if !u.IsAbs() {
		return &errors.InvalidArgumentError{Type: "ClickEvent", Field: "URL", Reason: "must be an absolute URL", Value: raw}
	}
	e.ClearValue()
	e.payload, e.url = payloadURL, u
	return nil
}

// SetPage sets the page number of a change_page action. Negative pages are
// rejected.
func (e *ClickEvent) SetPage(page int) error {
	if err := e.expect(payloadPage); err != nil {
		return err
	}
	if page < 0 {
		return &errors.InvalidArgumentError{Type: "ClickEvent", Field: "Page", Reason: "must not be negative", Value: page}
	}
	e.ClearValue()
	e.payload, e.page = payloadPage, page
	return nil
}

// ClearValue removes the payload and keeps the action.
func (e *ClickEvent) ClearValue() *ClickEvent {
	e.payload, e.text, e.url, e.page = payloadNone, "", nil, 0
	return e
}

// HasValue reports whether a payload is set.
func (e *ClickEvent) HasValue() bool {
	return e.payload != payloadNone
}

// Text returns the string payload.
func (e *ClickEvent) Text() (string, bool) {
	return e.text, e.payload == payloadText
}

// URL returns a copy of the URL payload.
func (e *ClickEvent) URL() (*url.URL, bool) {
	if e.payload != payloadURL {
		return nil, false
	}
	u := *e.url
	return &u, true
}

// Page returns the page payload.
func (e *ClickEvent) Page() (int, bool) {
	return e.page, e.payload == payloadPage
}

func (e *ClickEvent) expect(p clickPayload) error {
	if want := expectedClickPayload(e.action); want != p {
		action := string(e.action)
		if action == "" {
			action = "unset"
		}
		return &errors.InvalidArgumentError{
			Type:   "ClickEvent",
			Field:  "Value",
			Reason: fmt.Sprintf("action %s takes %s value, not %s", action, want, p),
		}
	}
	return nil
}

func (e *ClickEvent) value() any {
	switch e.payload {
	case payloadText:
		return e.text
	case payloadURL:
		return e.url.String()
	case payloadPage:
		return e.page
	default:
		return nil
	}
}

func (e *ClickEvent) encode(st *encodeState) (*Object, error) {
	return encodeEnvelope(st, e.action, "value", e.value(), e.HasValue()), nil
}

func (e *ClickEvent) walk(func(*Node) bool) bool { return false }

func (e *ClickEvent) cloneEvent() Event { return e.Clone() }

// Clone returns an independent copy of the binding.
func (e *ClickEvent) Clone() *ClickEvent {
	c := *e
	if e.url != nil {
		u := *e.url
		c.url = &u
	}
	return &c
}

// Validate always succeeds: every reachable click binding state encodes.
func (e *ClickEvent) Validate() error {
	return nil
}

// TypeName returns "ClickEvent".
func (e *ClickEvent) TypeName() string {
	return "ClickEvent"
}

// IsZero reports whether neither action nor payload is set.
func (e *ClickEvent) IsZero() bool {
	return e == nil || (e.action == "" && e.payload == payloadNone)
}

// Redacted returns the action without the payload. Commands and URLs may
// carry tokens.
func (e *ClickEvent) Redacted() string {
	return fmt.Sprintf("ClickEvent{action=%s, value=%s}", orUnset(string(e.action)), redactedPresence(e.HasValue()))
}

// String returns the canonical JSON of the binding.
func (e *ClickEvent) String() string {
	return eventString(e)
}

// Equal reports whether both bindings encode identically.
func (e *ClickEvent) Equal(other *ClickEvent) bool {
	return eventsEqual(e, other)
}

// MarshalJSON encodes the binding with the default encoder.
func (e *ClickEvent) MarshalJSON() ([]byte, error) {
	return marshalEvent(e)
}

// MarshalYAML renders the binding as an ordered YAML mapping.
func (e *ClickEvent) MarshalYAML() (any, error) {
	return yamlEvent(e)
}

func orUnset(s string) string {
	if s == "" {
		return "<unset>"
	}
	return s
}

func redactedPresence(set bool) string {
	if set {
		return "<redacted>"
	}
	return "<unset>"
}

func eventString(e Event) string {
	obj, err := defaultEncoder.EncodeEvent(e)
	if err != nil {
		return e.TypeName() + "{invalid: " + err.Error() + "}"
	}
	return obj.String()
}

func eventsEqual(a, b Event) bool {
	if isNilEvent(a) || isNilEvent(b) {
		return isNilEvent(a) && isNilEvent(b)
	}
	ja, errA := defaultEncoder.EncodeEvent(a)
	jb, errB := defaultEncoder.EncodeEvent(b)
	if errA != nil || errB != nil {
		return false
	}
	return ja.String() == jb.String()
}

func marshalEvent(e Event) ([]byte, error) {
	obj, err := defaultEncoder.EncodeEvent(e)
	if err != nil {
		return nil, err
	}
	return obj.MarshalJSON()
}

func yamlEvent(e Event) (*yaml.Node, error) {
	obj, err := defaultEncoder.EncodeEvent(e)
	if err != nil {
		return nil, err
	}
	return obj.yamlNode()
}
