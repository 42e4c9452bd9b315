// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hypermedia

import (
	"reflect"
	"strings"

	"rivaas.dev/hypermedia/internal/inflect"
)

// RelProvider derives relation names for payload types. Media-type renderers
// use it to name embedded resources.
type RelProvider interface {
	// ItemRel returns the relation for a single payload value.
	ItemRel(payload any) LinkRelation

	// CollectionRel returns the relation for a collection of the payload.
	CollectionRel(payload any) LinkRelation
}

// Relatable lets a payload type override relation derivation entirely.
type Relatable interface {
	// ItemRelation returns the relation for a single value of the type.
	ItemRelation() LinkRelation

	// CollectionRelation returns the relation for a collection of the type.
	CollectionRelation() LinkRelation
}

// DefaultRelProvider derives relation names from Go type names.
//
// For a payload of type User the item relation is "user" and the collection
// relation is "users". Derivation order:
//
//  1. The payload implements [Relatable].
//  2. The payload struct carries a `rel:"item,collection"` tag on a field
//     named Rel (conventionally an embedded marker field).
//  3. The type name, uncapitalized and pluralized for collections.
//
// Overrides for individual types can be registered with
// [DefaultRelProvider.Override].
//
// The zero value is ready to use. Override must not be called concurrently
// with derivation.
type DefaultRelProvider struct {
	overrides map[reflect.Type]relPair
}

type relPair struct {
	item       LinkRelation
	collection LinkRelation
}

// NewRelProvider creates a [DefaultRelProvider].
func NewRelProvider() *DefaultRelProvider {
	return &DefaultRelProvider{}
}

// Override registers fixed relations for the type of the given payload.
//
// Example:
//
//	provider.Override(Order{}, "ex:order", "ex:orders")
func (p *DefaultRelProvider) Override(payload any, item, collection LinkRelation) *DefaultRelProvider {
	if p.overrides == nil {
		p.overrides = make(map[reflect.Type]relPair)
	}
	p.overrides[baseType(payload)] = relPair{item: item, collection: collection}

	return p
}

// ItemRel returns the relation for a single payload value.
func (p *DefaultRelProvider) ItemRel(payload any) LinkRelation {
	if r, ok := payload.(Relatable); ok {
		return r.ItemRelation()
	}
	if pair, ok := p.overrides[baseType(payload)]; ok && pair.item != "" {
		return pair.item
	}
	if item, _, ok := tagRelations(payload); ok && item != "" {
		return item
	}

	return LinkRelation(inflect.Uncapitalize(typeName(payload)))
}

// CollectionRel returns the relation for a collection of the payload.
func (p *DefaultRelProvider) CollectionRel(payload any) LinkRelation {
	if r, ok := payload.(Relatable); ok {
		return r.CollectionRelation()
	}
	if pair, ok := p.overrides[baseType(payload)]; ok && pair.collection != "" {
		return pair.collection
	}
	if _, collection, ok := tagRelations(payload); ok && collection != "" {
		return collection
	}

	return LinkRelation(inflect.Pluralize(inflect.Uncapitalize(typeName(payload))))
}

// tagRelations reads a `rel:"item,collection"` tag from a field named Rel.
func tagRelations(payload any) (item, collection LinkRelation, ok bool) {
	t := baseType(payload)
	if t == nil || t.Kind() != reflect.Struct {
		return "", "", false
	}
	f, found := t.FieldByName("Rel")
	if !found {
		return "", "", false
	}
	tag, found := f.Tag.Lookup("rel")
	if !found || tag == "" {
		return "", "", false
	}

	if i := strings.IndexByte(tag, ','); i >= 0 {
		return LinkRelation(tag[:i]), LinkRelation(tag[i+1:]), true
	}

	return LinkRelation(tag), "", true
}

// baseType unwraps pointers, slices and arrays down to the element type.
func baseType(payload any) reflect.Type {
	t := reflect.TypeOf(payload)
	for t != nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return t
		}
	}

	return t
}

// typeName returns the unqualified type name of the payload, or "resource"
// for unnamed types.
func typeName(payload any) string {
	t := baseType(payload)
	if t == nil || t.Name() == "" {
		return "resource"
	}

	return t.Name()
}
