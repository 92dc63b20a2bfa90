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

package model

import (
	"fmt"

	"dirpx.dev/rxmerr"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, rather than stopping at the first one.
//
// When a model fails validation, the error is wrapped with the model's
// position in the slice (zero-indexed) and its type name obtained from
// TypeName. All failures are aggregated with an rxmerr.Collector into a
// single error. If every model is valid, or the slice is empty, ValidateAll
// returns nil.
//
// Example usage before encoding a batch of chat lines:
//
//	if err := ValidateAll(lines); err != nil {
//	    log.Error().Err(err).Msg("refusing to send invalid lines")
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models for which
// IsZero returns false.
//
// The returned slice is always a new allocation and never shares backing
// storage with the input. If the input is empty or nil, or all models are
// zero, FilterZero returns an empty non-nil slice.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails.
//
// Callers MUST only use MustValidate where an invalid model is a programming
// error: test setup, package-level message templates, or command-line tools
// where a fatal error should terminate execution.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns Redacted when unsafe is false and String when unsafe is
// true. It gives logging call sites a single, auditable switch.
//
//	log.Info().Str("text", SafeString(node, false)).Msg("sending")  // Redacted()
//	log.Debug().Str("text", SafeString(node, true)).Msg("payload")  // String() (UNSAFE)
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating it.
//
// If validation fails, ToJSON returns an error wrapping the failure with the
// model's type name and nothing is marshaled. Otherwise the model's
// MarshalJSON produces the output.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating it.
//
// If validation fails, ToYAML returns an error wrapping the failure with the
// model's type name. Otherwise the model's MarshalYAML produces the document
// that yaml.Marshal renders.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// Equal compares two models for equality by serializing both to JSON and
// comparing the results byte-for-byte.
//
// This is the equality the text model is built around: two nodes are equal
// if and only if their canonical documents are equal. The cost is
// proportional to the size of both values. If either model fails to marshal,
// Equal returns false.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
