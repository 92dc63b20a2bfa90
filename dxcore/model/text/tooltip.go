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
	"github.com/google/uuid"
)

// ItemTooltip describes the item shown by a show_item hover binding.
//
// Every field is optional and only set fields are encoded. The client shows
// DefaultItemID with DefaultItemCount when the fields are absent.
type ItemTooltip struct {
	id    *string
	count *int
	tag   *string
}

// Compile-time check that ItemTooltip implements model.Model interface.
var _ model.Model = (*ItemTooltip)(nil)

// NewItemTooltip returns a tooltip for the namespaced item id (for example
// "minecraft:diamond_sword"). An empty id leaves the field unset.
func NewItemTooltip(id string) *ItemTooltip {
	t := &ItemTooltip{}
	if id != "" {
		t.SetID(id)
	}
	return t
}

// SetID sets the namespaced item id.
func (t *ItemTooltip) SetID(id string) *ItemTooltip {
	t.id = &id
	return t
}

// SetCount sets the stack size. Negative counts are rejected.
func (t *ItemTooltip) SetCount(count int) error {
	if count < 0 {
		return &errors.InvalidArgumentError{Type: "ItemTooltip", Field: "Count", Reason: "must not be negative", Value: count}
	}
	t.count = &count
	return nil
}

// SetTag sets the opaque item tag, an SNBT string passed through verbatim.
func (t *ItemTooltip) SetTag(tag string) *ItemTooltip {
	t.tag = &tag
	return t
}

// ClearCount unsets the stack size.
func (t *ItemTooltip) ClearCount() *ItemTooltip {
	t.count = nil
	return t
}

// ClearTag unsets the item tag.
func (t *ItemTooltip) ClearTag() *ItemTooltip {
	t.tag = nil
	return t
}

// DisplayID returns the item id, or DefaultItemID when unset.
func (t *ItemTooltip) DisplayID() string { return stringOr(t.id, DefaultItemID) }

// DisplayCount returns the stack size, or DefaultItemCount when unset.
func (t *ItemTooltip) DisplayCount() int {
	if t.count == nil {
		return DefaultItemCount
	}
	return *t.count
}

// Tag returns the item tag.
func (t *ItemTooltip) Tag() (string, bool) {
	if t.tag == nil {
		return "", false
	}
	return *t.tag, true
}

func (t *ItemTooltip) object() *Object {
	obj := NewObject()
	if t.id != nil {
		obj.Set("id", *t.id)
	}
	if t.count != nil {
		obj.Set("count", *t.count)
	}
	if t.tag != nil {
		obj.Set("tag", *t.tag)
	}
	return obj
}

// Clone returns an independent copy of the tooltip.
func (t *ItemTooltip) Clone() *ItemTooltip {
	c := &ItemTooltip{}
	if t.id != nil {
		c.id = ptr(*t.id)
	}
	if t.count != nil {
		c.count = ptr(*t.count)
	}
	if t.tag != nil {
		c.tag = ptr(*t.tag)
	}
	return c
}

// Validate always succeeds; the setters reject invalid input.
func (t *ItemTooltip) Validate() error { return nil }

// TypeName returns "ItemTooltip".
func (t *ItemTooltip) TypeName() string { return "ItemTooltip" }

// IsZero reports whether no field is set.
func (t *ItemTooltip) IsZero() bool {
	return t == nil || (t.id == nil && t.count == nil && t.tag == nil)
}

// Redacted returns the id and count. The tag is withheld.
func (t *ItemTooltip) Redacted() string {
	return fmt.Sprintf("ItemTooltip{id=%s, count=%d, tag=%s}", t.DisplayID(), t.DisplayCount(), redactedPresence(t.tag != nil))
}

// String returns the JSON form of the tooltip.
func (t *ItemTooltip) String() string { return t.object().String() }

// Equal reports whether both tooltips set the same fields to the same
// values.
func (t *ItemTooltip) Equal(other *ItemTooltip) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.String() == other.String()
}

// MarshalJSON implements json.Marshaler.
func (t *ItemTooltip) MarshalJSON() ([]byte, error) { return t.object().MarshalJSON() }

// MarshalYAML implements yaml.Marshaler.
func (t *ItemTooltip) MarshalYAML() (any, error) { return t.object().yamlNode() }

// EntityTooltip describes the entity shown by a show_entity hover binding:
// an optional display name, an optional namespaced entity type and the
// entity's UUID.
type EntityTooltip struct {
	name *string
	typ  *string
	id   uuid.UUID
}

// Compile-time check that EntityTooltip implements model.Model interface.
var _ model.Model = (*EntityTooltip)(nil)

// NewEntityTooltip returns a tooltip for the entity with the given id.
func NewEntityTooltip(id uuid.UUID) *EntityTooltip {
	return &EntityTooltip{id: id}
}

// ParseEntityTooltip parses id in any form accepted by uuid.Parse and
// returns a tooltip for it. A malformed id fails with
// *errors.InvalidArgumentError.
func ParseEntityTooltip(id string) (*EntityTooltip, error) {
	t := &EntityTooltip{}
	if err := t.SetIDString(id); err != nil {
		return nil, err
	}
	return t, nil
}

// SetName sets the display name.
func (t *EntityTooltip) SetName(name string) *EntityTooltip {
	t.name = &name
	return t
}

// SetType sets the namespaced entity type, for example "minecraft:zombie".
func (t *EntityTooltip) SetType(typ string) *EntityTooltip {
	t.typ = &typ
	return t
}

// SetID sets the entity UUID.
func (t *EntityTooltip) SetID(id uuid.UUID) *EntityTooltip {
	t.id = id
	return t
}

// SetIDString parses and sets the entity UUID. On error the tooltip is left
// unchanged.
func (t *EntityTooltip) SetIDString(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return &errors.InvalidArgumentError{Type: "EntityTooltip", Field: "ID", Reason: err.Error(), Value: id}
	}
	t.id = parsed
	return nil
}

// Name returns the display name.
func (t *EntityTooltip) Name() (string, bool) {
	if t.name == nil {
		return "", false
	}
	return *t.name, true
}

// DisplayType returns the entity type, or DefaultEntityType when unset.
func (t *EntityTooltip) DisplayType() string { return stringOr(t.typ, DefaultEntityType) }

// ID returns the entity UUID.
func (t *EntityTooltip) ID() uuid.UUID { return t.id }

func (t *EntityTooltip) object() *Object {
	obj := NewObject()
	if t.name != nil {
		obj.Set("name", *t.name)
	}
	if t.typ != nil {
		obj.Set("type", *t.typ)
	}
	obj.Set("id", t.id.String())
	return obj
}

// Clone returns an independent copy of the tooltip.
func (t *EntityTooltip) Clone() *EntityTooltip {
	c := &EntityTooltip{id: t.id}
	if t.name != nil {
		c.name = ptr(*t.name)
	}
	if t.typ != nil {
		c.typ = ptr(*t.typ)
	}
	return c
}

// Validate always succeeds; the id is always encodable.
func (t *EntityTooltip) Validate() error { return nil }

// TypeName returns "EntityTooltip".
func (t *EntityTooltip) TypeName() string { return "EntityTooltip" }

// IsZero reports whether no name or type is set and the id is uuid.Nil.
func (t *EntityTooltip) IsZero() bool {
	return t == nil || (t.name == nil && t.typ == nil && t.id == uuid.Nil)
}

// Redacted returns the entity type. Name and id are withheld.
func (t *EntityTooltip) Redacted() string {
	return fmt.Sprintf("EntityTooltip{type=%s, name=%s, id=<redacted>}", t.DisplayType(), redactedPresence(t.name != nil))
}

// String returns the JSON form of the tooltip.
func (t *EntityTooltip) String() string { return t.object().String() }

// Equal reports whether both tooltips encode identically.
func (t *EntityTooltip) Equal(other *EntityTooltip) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.String() == other.String()
}

// MarshalJSON implements json.Marshaler.
func (t *EntityTooltip) MarshalJSON() ([]byte, error) { return t.object().MarshalJSON() }

// MarshalYAML implements yaml.Marshaler.
func (t *EntityTooltip) MarshalYAML() (any, error) { return t.object().yamlNode() }
