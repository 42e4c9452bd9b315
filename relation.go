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

import "strings"

// LinkRelation names the semantic role of a link relative to its containing
// resource. Values are either relations from the IANA link relation registry
// (see the Rel* constants) or custom relations, optionally abbreviated to
// curie form ("prefix:name") by a [CurieProvider].
//
// A valid relation is never empty. Use [ParseRelation] to validate
// externally supplied values.
type LinkRelation string

// IANA-registered link relations commonly used by hypermedia APIs.
// The registry lives at https://www.iana.org/assignments/link-relations/.
const (
	// RelSelf identifies the resource itself.
	RelSelf LinkRelation = "self"

	// RelFirst points to the first page of a paginated collection.
	RelFirst LinkRelation = "first"

	// RelPrev points to the previous page of a paginated collection.
	RelPrev LinkRelation = "prev"

	// RelNext points to the next page of a paginated collection.
	RelNext LinkRelation = "next"

	// RelLast points to the last page of a paginated collection.
	RelLast LinkRelation = "last"

	// RelItem points from a collection to one of its members.
	RelItem LinkRelation = "item"

	// RelCollection points from a member to the collection containing it.
	RelCollection LinkRelation = "collection"

	// RelSearch points to a resource that can be used to search this
	// resource and its related resources.
	RelSearch LinkRelation = "search"

	// RelEdit points to a resource that can be used to edit this one.
	RelEdit LinkRelation = "edit"

	// RelEditForm points to a form that can be used to edit this resource.
	RelEditForm LinkRelation = "edit-form"

	// RelCreateForm points to a form that can be used to append a member to
	// the collection.
	RelCreateForm LinkRelation = "create-form"

	// RelAbout points to a resource that describes the context.
	RelAbout LinkRelation = "about"

	// RelAlternate points to a substitute representation of this resource.
	RelAlternate LinkRelation = "alternate"

	// RelCanonical points to the preferred version of this resource.
	RelCanonical LinkRelation = "canonical"

	// RelDescribedBy points to a resource describing this one.
	RelDescribedBy LinkRelation = "describedby"

	// RelRelated points to a related resource.
	RelRelated LinkRelation = "related"

	// RelUp points to a parent resource in a hierarchy.
	RelUp LinkRelation = "up"

	// RelIndex points to an index for this resource.
	RelIndex LinkRelation = "index"

	// RelCuries documents curie prefixes used by the containing document.
	// HAL-specific rather than IANA-registered, but treated as reserved.
	RelCuries LinkRelation = "curies"
)

// ianaRelations is the set of relations this package treats as registered.
// Registered relations are never abbreviated by a CurieProvider.
var ianaRelations = map[LinkRelation]struct{}{
	RelSelf: {}, RelFirst: {}, RelPrev: {}, RelNext: {}, RelLast: {},
	RelItem: {}, RelCollection: {}, RelSearch: {}, RelEdit: {},
	RelEditForm: {}, RelCreateForm: {}, RelAbout: {}, RelAlternate: {},
	RelCanonical: {}, RelDescribedBy: {}, RelRelated: {}, RelUp: {},
	RelIndex: {}, RelCuries: {},
}

// ParseRelation validates and returns a [LinkRelation].
//
// Leading and trailing whitespace is trimmed. Returns [ErrRelationEmpty] if
// the trimmed value is empty.
//
// Example:
//
//	rel, err := hypermedia.ParseRelation("ex:orders")
func ParseRelation(s string) (LinkRelation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrRelationEmpty
	}

	return LinkRelation(s), nil
}

// String returns the relation name.
func (r LinkRelation) String() string {
	return string(r)
}

// IsRegistered reports whether the relation is treated as IANA-registered.
//
// Registered relations keep their short name in rendered documents and are
// never rewritten to curie form.
func (r LinkRelation) IsRegistered() bool {
	_, ok := ianaRelations[r]
	return ok
}

// IsCuried reports whether the relation is already in curie form
// ("prefix:name").
func (r LinkRelation) IsCuried() bool {
	return strings.Contains(string(r), ":")
}
