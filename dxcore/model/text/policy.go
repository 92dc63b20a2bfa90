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
	"dirpx.dev/dxtext/dxcore/model"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// PayloadPolicy controls how the encoder renders an event binding whose
// action is set but whose payload was never assigned.
//
// Historical producers of the wire format disagree here: some omit the
// payload key entirely, others emit it with a JSON null. The client accepts
// both. PayloadPolicy makes the choice explicit and configurable. The same
// policy applies to a binding whose action was never set.
type PayloadPolicy int

const (
	// OmitPayload leaves the payload key out of the binding object.
	//
	// Example:
	//   NewClickEvent() + SetAction(ActionOpenURL)
	//   -> {"action":"open_url"}
	OmitPayload PayloadPolicy = iota

	// NullPayload emits the payload key with a JSON null value.
	//
	// Example:
	//   NewClickEvent() + SetAction(ActionOpenURL)
	//   -> {"action":"open_url","value":null}
	NullPayload
)

// Compile-time check that PayloadPolicy implements model.Model interface.
var _ model.Model = (*PayloadPolicy)(nil)

// String constants for PayloadPolicy values used in configuration files,
// CLI flags and logs. Changing any of these strings is a breaking change for
// configurations that rely on them.
const (
	OmitPayloadStr = "omit"
	NullPayloadStr = "null"
)

// String returns the canonical string representation of the PayloadPolicy.
// Values outside the defined constants render as "unknown".
func (p PayloadPolicy) String() string {
	switch p {
	case OmitPayload:
		return OmitPayloadStr
	case NullPayload:
		return NullPayloadStr
	default:
		return "unknown"
	}
}

// ParsePayloadPolicy converts a textual representation into a PayloadPolicy.
//
// Accepted inputs:
//
//	"omit", "Omit", "OMIT", "omit-payload", "omit_payload" -> OmitPayload
//	"null", "Null", "NULL", "null-payload", "null_payload" -> NullPayload
//
// Any other input yields a *ParseError and the returned value MUST NOT be
// used.
func ParsePayloadPolicy(str string) (PayloadPolicy, error) {
	switch str {
	case OmitPayloadStr, "Omit", "OMIT", "omit-payload", "omit_payload":
		return OmitPayload, nil
	case NullPayloadStr, "Null", "NULL", "null-payload", "null_payload":
		return NullPayload, nil
	default:
		return OmitPayload, &errors.ParseError{Type: "PayloadPolicy", Value: str}
	}
}

// Valid reports whether the PayloadPolicy value is one of the defined
// constants.
func (p PayloadPolicy) Valid() bool {
	return p == OmitPayload || p == NullPayload
}

// MarshalJSON implements json.Marshaler for PayloadPolicy.
//
// A valid policy is serialized as its canonical string. An invalid value
// yields a *MarshalError and no output.
func (p PayloadPolicy) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "PayloadPolicy", Value: int(p)}
	}
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for PayloadPolicy.
//
// Both the string form ("omit", "null" and the variants accepted by
// ParsePayloadPolicy) and the numeric form (0, 1) are accepted.
func (p *PayloadPolicy) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "PayloadPolicy", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "PayloadPolicy", Data: data, Reason: err.Error()}
		}
		parsed, err := ParsePayloadPolicy(str)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "PayloadPolicy", Data: data, Reason: err.Error()}
	}
	if !PayloadPolicy(i).Valid() {
		return &errors.UnmarshalError{Type: "PayloadPolicy", Data: data, Reason: "invalid numeric value"}
	}
	*p = PayloadPolicy(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler for PayloadPolicy.
func (p PayloadPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "PayloadPolicy", Value: int(p)}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for PayloadPolicy using
// ParsePayloadPolicy as the single source of truth.
func (p *PayloadPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParsePayloadPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// TypeName returns "PayloadPolicy".
func (p PayloadPolicy) TypeName() string {
	return "PayloadPolicy"
}

// Redacted returns the same string representation as String(). Policies
// carry no sensitive information.
func (p PayloadPolicy) Redacted() string {
	return p.String()
}

// IsZero reports whether the PayloadPolicy is OmitPayload, the default.
func (p PayloadPolicy) IsZero() bool {
	return p == OmitPayload
}

// Validate returns a *MarshalError if the value is outside the defined
// constants, and nil otherwise.
func (p PayloadPolicy) Validate() error {
	if !p.Valid() {
		return &errors.MarshalError{Type: "PayloadPolicy", Value: int(p)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for PayloadPolicy.
func (p PayloadPolicy) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "PayloadPolicy", Value: int(p)}
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for PayloadPolicy.
func (p *PayloadPolicy) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "PayloadPolicy", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePayloadPolicy(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
