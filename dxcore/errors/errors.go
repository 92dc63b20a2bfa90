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

// Package errors provides the error types surfaced by the dxtext text
// component model, its encoder and its supporting packages.
//
// The errors in this package are simple value carriers with stable message
// formats. They are designed to be:
//
//   - easy to construct at the exact point where a constraint is violated,
//   - easy to recognize via errors.As or type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// Every error is raised synchronously by the offending call. Mutators of the
// text model validate their input before touching the receiver, so an error
// always means that nothing was committed.
//
// # Error Types
//
//   - InvalidArgumentError
//     Returned when a setter or constructor receives malformed input, for
//     example a format code that is not a colour, a negative page number or
//     a malformed UUID string.
//
//   - UnsupportedActionError
//     Returned when an event binding is given an action outside the
//     whitelist of its kind (for example "show_text" on a click binding).
//
//   - CyclicStructureError
//     Returned when an operation would make a text node its own ancestor.
//
//   - UnsupportedContentTypeError
//     Returned by the encoder when a plain or translate content value has a
//     Go type that has no JSON representation in the wire format.
//
//   - ParseError, MarshalError, UnmarshalError
//     Returned when parsing, marshaling or unmarshaling enum-like values
//     (content types, event kinds, actions, payload policies) fails.
//
//   - ValidationError
//     Returned when validation of a model or configuration type fails.
//
// # Usage
//
//	var cyc *errors.CyclicStructureError
//	if err := parent.AddChildren(child); stderrors.As(err, &cyc) {
//	    // the child already contains parent
//	}
package errors

import (
	"fmt"
	"strconv"
)

// InvalidArgumentError is returned when a setter or constructor receives a
// value it cannot accept.
//
// Type identifies the logical type being mutated (for example, "ClickEvent"),
// Field optionally names the attribute being set, Reason explains what is
// wrong, and Value optionally carries the rejected input.
//
// # Example
//
//	func (e *ClickEvent) SetPage(page int) error {
//	    if page < 0 {
//	        return &errors.InvalidArgumentError{
//	            Type:   "ClickEvent",
//	            Field:  "Page",
//	            Reason: "must not be negative",
//	            Value:  page,
//	        }
//	    }
//	    ...
//	}
type InvalidArgumentError struct {
	// Type is the logical name of the type receiving the argument.
	Type string

	// Field is the name of the attribute being set.
	// May be empty if the error applies to the whole call.
	Field string

	// Reason is a short, human-readable explanation of the rejection.
	Reason string

	// Value optionally contains the rejected input.
	Value any
}

// Error implements the error interface for InvalidArgumentError.
//
// The error message format is:
//
//	"dxtext: invalid argument for {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxtext: invalid argument for {Type}: {Reason}" (when Field is empty)
func (e *InvalidArgumentError) Error() string {
	if e.Field != "" {
		return "dxtext: invalid argument for " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxtext: invalid argument for " + e.Type + ": " + e.Reason
}

// UnsupportedActionError is returned when an event binding is asked to carry
// an action that its kind does not support.
//
// Kind is the wire name of the binding kind ("clickEvent" or "hoverEvent")
// and Action is the rejected action tag exactly as supplied.
type UnsupportedActionError struct {
	// Kind is the binding kind that rejected the action.
	Kind string

	// Action is the rejected action tag.
	Action string
}

// Error implements the error interface for UnsupportedActionError.
//
// The error message format is:
//
//	"dxtext: unsupported {Kind} action: {Action}"
func (e *UnsupportedActionError) Error() string {
	return "dxtext: unsupported " + e.Kind + " action: " + strconv.Quote(e.Action)
}

// CyclicStructureError is returned when an operation would make a node
// reachable from itself.
//
// Text trees are strictly owned, acyclic compositions. Every mutation that
// links one node below another (appending children, attaching translation
// arguments, attaching hover text) checks that the receiver is not already
// reachable from the incoming nodes. The encoder raises the same error as a
// backstop if it ever re-enters a node on the current path.
type CyclicStructureError struct {
	// Type is the logical name of the type whose structure would become
	// cyclic (for example, "TextNode").
	Type string

	// Reason describes where the cycle would have been introduced.
	Reason string
}

// Error implements the error interface for CyclicStructureError.
//
// The error message format is:
//
//	"dxtext: cyclic {Type}: {Reason}"
func (e *CyclicStructureError) Error() string {
	return "dxtext: cyclic " + e.Type + ": " + e.Reason
}

// UnsupportedContentTypeError is returned by the encoder when a content
// value or translation argument has no JSON representation.
//
// Content values are stored untyped until serialization, so this is the only
// error the encoder raises for well-formed trees. Type is the logical owner
// ("PlainContent" or "TranslateContent") and GoType is the dynamic Go type of
// the offending value as printed by %T.
type UnsupportedContentTypeError struct {
	// Type is the logical name of the content variant holding the value.
	Type string

	// GoType is the dynamic type of the rejected value.
	GoType string
}

// Error implements the error interface for UnsupportedContentTypeError.
//
// The error message format is:
//
//	"dxtext: unsupported {Type} value type: {GoType}"
func (e *UnsupportedContentTypeError) Error() string {
	return "dxtext: unsupported " + e.Type + " value type: " + e.GoType
}

// NewUnsupportedContentTypeError builds an UnsupportedContentTypeError for
// the dynamic type of v.
func NewUnsupportedContentTypeError(typ string, v any) *UnsupportedContentTypeError {
	return &UnsupportedContentTypeError{Type: typ, GoType: fmt.Sprintf("%T", v)}
}

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Action",
// "PayloadPolicy"), and Value contains the exact string that could not be
// interpreted.
//
// # Example
//
//	func ParsePayloadPolicy(s string) (PayloadPolicy, error) {
//	    switch s {
//	    case "omit":
//	        return OmitPayload, nil
//	    case "null":
//	        return NullPayload, nil
//	    default:
//	        // "dxtext: invalid PayloadPolicy value: <value>"
//	        return OmitPayload, &errors.ParseError{Type: "PayloadPolicy", Value: s}
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxtext: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxtext: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// This error is a guardrail: it prevents invalid enum-like values from being
// silently emitted into JSON or YAML. In most cases a MarshalError indicates a
// programming error such as a numeric cast that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxtext: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxtext: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// The text model itself is encode-only; this error is raised by the enum-like
// configuration types (PayloadPolicy and friends) when they are loaded from
// JSON or YAML configuration.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxtext: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message.
func (e *UnmarshalError) Error() string {
	return "dxtext: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "TextNode", "Config"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation, and Value
// optionally contains the problematic value.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxtext: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxtext: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxtext: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxtext: invalid " + e.Type + ": " + e.Reason
}
