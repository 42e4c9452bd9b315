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

import "fmt"

// Resource is the renderer-facing view of a representation model. All
// models in this package satisfy it through their embedded [Model].
type Resource interface {
	Links() Links
	Affordances() []Affordance
}

// PayloadCarrier is satisfied by [Entity]: a resource wrapping a single
// payload whose fields render inline.
type PayloadCarrier interface {
	Resource
	Payload() any
}

// ElementsCarrier is satisfied by [Collection] and [Page]: a resource whose
// members render as embedded resources.
type ElementsCarrier interface {
	Resource
	Elements() []Resource
}

// PageCarrier is satisfied by [Page]: an ElementsCarrier with pagination
// metadata.
type PageCarrier interface {
	ElementsCarrier
	PageInfo() PageMetadata
}

// Model is the base representation model: a link collection plus the
// affordances describing the actions available on the resource.
//
// Model is embedded by [Entity], [Collection] and [Page]. AddLinks and
// AddAffordances mutate the receiver (models are builders until handed to a
// renderer); the links themselves are immutable values.
type Model struct {
	links       Links
	affordances []Affordance
}

// Links returns the attached links.
func (m *Model) Links() Links {
	return m.links
}

// Affordances returns the attached affordances.
func (m *Model) Affordances() []Affordance {
	return m.affordances
}

// AddLinks attaches links to the model. A "self" link replaces any existing
// one; see [Links.Add].
func (m *Model) AddLinks(links ...Link) {
	m.links = m.links.Add(links...)
}

// AddAffordances attaches affordances to the model.
func (m *Model) AddAffordances(affordances ...Affordance) {
	m.affordances = append(m.affordances, affordances...)
}

// SelfLink returns the model's self link.
func (m *Model) SelfLink() (Link, error) {
	return m.links.FindRequired(RelSelf)
}

// Entity wraps a single payload with hypermedia links.
type Entity[T any] struct {
	Model

	// Content is the wrapped payload. Its fields render inline in HAL
	// documents, next to _links.
	Content T
}

// NewEntity wraps a payload and attaches the given links.
//
// Example:
//
//	user := hypermedia.NewEntity(User{ID: 42},
//	    hypermedia.NewSelfLink("/users/42"),
//	)
func NewEntity[T any](content T, links ...Link) *Entity[T] {
	e := &Entity[T]{Content: content}
	e.AddLinks(links...)

	return e
}

// Payload returns the wrapped content for renderers.
func (e *Entity[T]) Payload() any {
	return e.Content
}

// Collection wraps a list of entities with collection-level links.
type Collection[T any] struct {
	Model

	// Items are the member resources, each carrying its own links.
	Items []*Entity[T]
}

// NewCollection wraps entities and attaches the given collection links.
func NewCollection[T any](items []*Entity[T], links ...Link) *Collection[T] {
	c := &Collection[T]{Items: items}
	c.AddLinks(links...)

	return c
}

// Elements returns the member resources for renderers.
func (c *Collection[T]) Elements() []Resource {
	out := make([]Resource, len(c.Items))
	for i, item := range c.Items {
		out[i] = item
	}

	return out
}

// PageMetadata describes the position of a page within a paginated
// collection. Numbers are zero-based.
type PageMetadata struct {
	// Size is the requested page size.
	Size int `json:"size"`

	// Number is the zero-based page index.
	Number int `json:"number"`

	// TotalElements is the total number of elements across all pages.
	TotalElements int64 `json:"totalElements"`

	// TotalPages is the total number of pages.
	TotalPages int `json:"totalPages"`
}

// Page is a [Collection] with pagination metadata and navigation links.
type Page[T any] struct {
	Collection[T]

	// Metadata describes the page position.
	Metadata PageMetadata
}

// PageInfo returns the pagination metadata for renderers.
func (p *Page[T]) PageInfo() PageMetadata {
	return p.Metadata
}

// NewPage wraps entities with pagination metadata.
//
// TotalPages is derived from TotalElements and Size when left zero.
func NewPage[T any](items []*Entity[T], meta PageMetadata, links ...Link) *Page[T] {
	if meta.TotalPages == 0 && meta.Size > 0 {
		meta.TotalPages = int((meta.TotalElements + int64(meta.Size) - 1) / int64(meta.Size))
	}
	p := &Page[T]{Collection: Collection[T]{Items: items}, Metadata: meta}
	p.AddLinks(links...)

	return p
}

// AddNavigationLinks attaches self/first/prev/next/last links derived from a
// templated base link. The template must expose "page" and "size" variables:
//
//	base := hypermedia.NewLink("/users{?page,size}", hypermedia.RelSelf)
//	page.AddNavigationLinks(base)
//
// Prev and next are only attached when the respective page exists.
func (p *Page[T]) AddNavigationLinks(base Link) error {
	if !base.Templated {
		return fmt.Errorf("hypermedia: page navigation requires a templated link, got %q", base.Href)
	}

	expand := func(rel LinkRelation, page int) Link {
		return base.Expand(Values{"page": page, "size": p.Metadata.Size}).WithRel(rel)
	}

	p.AddLinks(expand(RelSelf, p.Metadata.Number))
	if p.Metadata.TotalPages > 0 {
		p.AddLinks(
			expand(RelFirst, 0),
			expand(RelLast, p.Metadata.TotalPages-1),
		)
	}
	if p.Metadata.Number > 0 {
		p.AddLinks(expand(RelPrev, p.Metadata.Number-1))
	}
	if p.Metadata.Number < p.Metadata.TotalPages-1 {
		p.AddLinks(expand(RelNext, p.Metadata.Number+1))
	}

	return nil
}
