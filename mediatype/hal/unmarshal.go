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

package hal

import (
	"bytes"
	"encoding/json"
	"fmt"

	"rivaas.dev/hypermedia"
)

// halDocument is the parse-side shape of a HAL document.
type halDocument struct {
	Links    map[string]json.RawMessage `json:"_links"`
	Embedded map[string]json.RawMessage `json:"_embedded"`
	Page     *hypermedia.PageMetadata   `json:"page"`
}

// ParseLinks extracts the _links of a raw HAL document.
//
// The order of relations in the returned collection is unspecified (JSON
// objects are unordered); multiple links under one relation keep their
// array order. A document without _links yields an empty collection.
func ParseLinks(doc []byte) (hypermedia.Links, error) {
	var d halDocument
	if err := json.Unmarshal(doc, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}

	var links hypermedia.Links
	for rel, raw := range d.Links {
		parsed, err := parseLinkValue(hypermedia.LinkRelation(rel), raw)
		if err != nil {
			return nil, err
		}
		links = append(links, parsed...)
	}

	return links, nil
}

// parseLinkValue parses a single _links value: a link object or an array of
// link objects.
func parseLinkValue(rel hypermedia.LinkRelation, raw json.RawMessage) (hypermedia.Links, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []hypermedia.Link
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("hal: parsing links for rel %q: %w", rel, err)
		}
		out := make(hypermedia.Links, len(list))
		for i, l := range list {
			out[i] = l.WithRel(rel)
		}

		return out, nil
	}

	var l hypermedia.Link
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("hal: parsing link for rel %q: %w", rel, err)
	}

	return hypermedia.Links{l.WithRel(rel)}, nil
}

// UnmarshalEntity parses a HAL document into an entity of the given payload
// type. Payload fields are read from the document root; _links populate the
// entity's link collection.
func UnmarshalEntity[T any](r *Renderer, doc []byte) (*hypermedia.Entity[T], error) {
	var content T
	if err := json.Unmarshal(doc, &content); err != nil {
		return nil, fmt.Errorf("hal: parsing payload: %w", err)
	}

	links, err := ParseLinks(doc)
	if err != nil {
		return nil, err
	}

	entity := hypermedia.NewEntity(content)
	entity.AddLinks(links...)

	return entity, nil
}

// UnmarshalCollection parses a HAL document into a collection of the given
// payload type.
//
// The _embedded entry is located by the collection relation derived for T
// (curie-shortened when a provider is configured). When the document has
// exactly one _embedded entry it is used regardless of its key. Returns
// [ErrEmbeddedNotFound] when no entry matches; a document without _embedded
// yields an empty collection.
func UnmarshalCollection[T any](r *Renderer, doc []byte) (*hypermedia.Collection[T], error) {
	var d halDocument
	if err := json.Unmarshal(doc, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}

	items, err := embeddedItems[T](r, d)
	if err != nil {
		return nil, err
	}

	links, err := ParseLinks(doc)
	if err != nil {
		return nil, err
	}

	collection := hypermedia.NewCollection(items)
	collection.AddLinks(links...)

	return collection, nil
}

// UnmarshalPage parses a HAL document into a page of the given payload
// type, including the "page" metadata block.
func UnmarshalPage[T any](r *Renderer, doc []byte) (*hypermedia.Page[T], error) {
	var d halDocument
	if err := json.Unmarshal(doc, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}

	items, err := embeddedItems[T](r, d)
	if err != nil {
		return nil, err
	}

	var meta hypermedia.PageMetadata
	if d.Page != nil {
		meta = *d.Page
	}

	links, err := ParseLinks(doc)
	if err != nil {
		return nil, err
	}

	page := hypermedia.NewPage(items, meta)
	page.AddLinks(links...)

	return page, nil
}

// embeddedItems locates and parses the _embedded members for payload type T.
func embeddedItems[T any](r *Renderer, d halDocument) ([]*hypermedia.Entity[T], error) {
	if len(d.Embedded) == 0 {
		return nil, nil
	}

	var zero T
	rel := r.relProvider.CollectionRel(zero)
	if r.curies != nil {
		rel = r.curies.Shorten(rel)
	}

	raw, ok := d.Embedded[string(rel)]
	if !ok && len(d.Embedded) == 1 {
		for _, v := range d.Embedded {
			raw = v
			ok = true
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: rel %q", ErrEmbeddedNotFound, rel)
	}

	var members []json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		// A single embedded object is tolerated on parse.
		members = []json.RawMessage{raw}
	}

	items := make([]*hypermedia.Entity[T], 0, len(members))
	for _, m := range members {
		item, err := UnmarshalEntity[T](r, m)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Discoverer finds links in raw HAL documents by relation. It implements
// the link discovery contract of the traversal client.
type Discoverer struct{}

// FindLink returns the first link with the given relation in the document.
// Returns an error wrapping [hypermedia.ErrLinkNotFound] when absent.
func (Discoverer) FindLink(doc []byte, rel hypermedia.LinkRelation) (hypermedia.Link, error) {
	links, err := ParseLinks(doc)
	if err != nil {
		return hypermedia.Link{}, err
	}

	return links.FindRequired(rel)
}
