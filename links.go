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
	"fmt"
	"slices"
)

// Links is an ordered collection of links.
//
// The collection is copy-on-write: Add and Merge return new collections and
// never mutate the receiver, so links are immutable once attached to a
// resource. Insertion order is preserved through rendering.
type Links []Link

// MergePolicy controls how Merge treats links whose relation already exists
// in the receiver.
type MergePolicy int

const (
	// MergeSkip keeps the existing link and drops the incoming one.
	MergeSkip MergePolicy = iota

	// MergeAppend keeps both links; the rel renders as an array.
	MergeAppend

	// MergeReplace drops existing links with the same rel before appending.
	MergeReplace
)

// NewLinks creates a collection from the given links.
func NewLinks(links ...Link) Links {
	return slices.Clone(links)
}

// Find returns the first link with the given relation.
func (ls Links) Find(rel LinkRelation) (Link, bool) {
	for _, l := range ls {
		if l.Rel == rel {
			return l, true
		}
	}

	return Link{}, false
}

// FindRequired returns the first link with the given relation, or an error
// wrapping [ErrLinkNotFound] naming the relation.
func (ls Links) FindRequired(rel LinkRelation) (Link, error) {
	l, ok := ls.Find(rel)
	if !ok {
		return Link{}, fmt.Errorf("%w: rel %q", ErrLinkNotFound, rel)
	}

	return l, nil
}

// FilterByRel returns all links with the given relation, preserving order.
func (ls Links) FilterByRel(rel LinkRelation) Links {
	var out Links
	for _, l := range ls {
		if l.Rel == rel {
			out = append(out, l)
		}
	}

	return out
}

// Has reports whether a link with the given relation exists.
func (ls Links) Has(rel LinkRelation) bool {
	_, ok := ls.Find(rel)
	return ok
}

// Rels returns the distinct relations in order of first appearance.
func (ls Links) Rels() []LinkRelation {
	var out []LinkRelation
	for _, l := range ls {
		if !slices.Contains(out, l.Rel) {
			out = append(out, l.Rel)
		}
	}

	return out
}

// Add returns a new collection with the given links appended.
//
// A "self" link is special-cased: at most one self link exists per
// collection, so adding one replaces any existing self link in place.
func (ls Links) Add(links ...Link) Links {
	out := slices.Clone(ls)
	for _, l := range links {
		if l.Rel == RelSelf {
			if i := slices.IndexFunc(out, func(e Link) bool { return e.Rel == RelSelf }); i >= 0 {
				out[i] = l
				continue
			}
		}
		out = append(out, l)
	}

	return out
}

// Merge returns a new collection combining the receiver with other under the
// given policy.
//
// A "self" link always replaces the existing one regardless of policy; the
// at-most-one-self invariant holds across merges just as it does for Add.
// Under [MergeReplace] the existing links of a relation are removed once and
// the incoming group is appended whole, so repeated incoming rels survive.
func (ls Links) Merge(other Links, policy MergePolicy) Links {
	out := slices.Clone(ls)
	replaced := make(map[LinkRelation]bool)
	for _, l := range other {
		if l.Rel == RelSelf {
			out = out.Add(l)
			continue
		}
		switch policy {
		case MergeSkip:
			if ls.Has(l.Rel) {
				continue
			}
			out = append(out, l)
		case MergeReplace:
			if !replaced[l.Rel] {
				out = slices.DeleteFunc(out, func(e Link) bool { return e.Rel == l.Rel })
				replaced[l.Rel] = true
			}
			out = append(out, l)
		default: // MergeAppend
			out = append(out, l)
		}
	}

	return out
}

// Validate checks every link in the collection.
func (ls Links) Validate() error {
	for i, l := range ls {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("hypermedia: link[%d]: %w", i, err)
		}
	}

	return nil
}
