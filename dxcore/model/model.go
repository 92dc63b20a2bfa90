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

// Package model defines the contracts that every dxtext domain type MUST
// implement to ensure consistency and predictable behavior across the text
// component model, its encoder and the tooling built on top of it.
//
// Every domain type representing part of a text document (text nodes, event
// bindings, tooltips) SHOULD implement the Model interface or its constituent
// parts (Validatable, Encodable, Loggable, Identifiable, ZeroCheckable). These
// interfaces establish a common contract for validation, encoding, logging and
// identity that enables the generic helpers in this package.
//
// The text model is a one-way builder: documents are assembled in memory and
// encoded to the client wire format. There is deliberately no decoding half
// of the contract. Encodable therefore covers json.Marshaler and
// yaml.Marshaler only.
//
// Unless explicitly documented otherwise, implementations are not safe for
// concurrent mutation. Encoding an otherwise unmutated value from several
// goroutines is safe. Callers MUST synchronize concurrent writes.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON, ToYAML
// and Equal.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxtext domain types. Any type implementing Model gains support for
// validation, encoding to JSON and YAML, safe logging, type identification,
// and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable checks
// that the value can be encoded; Encodable produces the canonical JSON and a
// YAML rendering of the same document; Loggable offers both safe (redacted)
// and full string representations; Identifiable supplies a canonical type
// name; and ZeroCheckable detects empty instances.
//
// Example implementation:
//
//	type Tooltip struct {
//	    ID string
//	}
//
//	func (t Tooltip) Validate() error {
//	    if t.ID == "" {
//	        return errors.New("id required")
//	    }
//	    return nil
//	}
//
//	func (t Tooltip) TypeName() string { return "Tooltip" }
//	func (t Tooltip) IsZero() bool { return t.ID == "" }
//	func (t Tooltip) Redacted() string { return "Tooltip{...}" }
//	func (t Tooltip) String() string { return "Tooltip{ID:" + t.ID + "}" }
//	// ... MarshalJSON, MarshalYAML
//
//	var _ Model = (*Tooltip)(nil)  // Compile-time check
type Model interface {
	Validatable
	Encodable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// For text documents, validity means "can be encoded": every content value
// has a JSON representation, every event binding carries a payload that
// matches its action, and no node is reachable from itself. Validate MUST
// return nil if and only if encoding the value would succeed.
//
// Validate MUST be fast, deterministic and free of side effects. It MUST NOT
// mutate the receiver, MUST NOT log, and MUST NOT perform I/O. When
// validation fails, the returned error MUST describe what is invalid in a way
// that helps callers fix the problem.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for encoding. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	Validate() error
}

// Encodable defines the one-way serialization contract of the text model.
//
// MarshalJSON MUST produce the canonical wire representation of the value.
// MarshalYAML MUST produce a rendering of the same document (same keys, same
// order) suitable for human inspection and configuration dumps.
type Encodable interface {
	json.Marshaler
	yaml.Marshaler
}

// Loggable defines the contract for types that can be safely rendered in
// logs.
//
// Chat components routinely carry commands, URLs and clipboard payloads that
// MAY contain tokens or personal data. Redacted MUST summarize the structure
// of a value without exposing such payloads; String MAY expose everything.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production. This method MUST NOT mutate the receiver and MUST be safe
	// to call concurrently.
	Redacted() string

	// String returns a full representation of the instance. For text nodes
	// this is the canonical JSON document. It MUST NOT be used for production
	// logging; use Redacted instead.
	String() string
}

// Identifiable defines the contract for types that expose a canonical name.
type Identifiable interface {
	// TypeName returns the canonical name of this model type. The name MUST
	// be constant for the type, unique within dxtext, in CamelCase, and
	// without a package prefix.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report emptiness.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	IsZero() bool
}

// Comparable defines the contract for types with a custom notion of
// equality.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type. This method MUST NOT mutate either operand.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can produce deep copies of
// themselves.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance. The returned instance has
	// the same value but shares no mutable references with the original.
	Clone() T
}
