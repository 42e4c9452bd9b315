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
	"fmt"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"rivaas.dev/hypermedia"
	"rivaas.dev/hypermedia/internal/halschema"
)

// MediaType is the HAL media type.
const MediaType = "application/hal+json"

// Renderer renders resource models as HAL documents and parses them back.
//
// Create instances with [New] or [MustNew]. A Renderer is immutable after
// creation and safe for concurrent use.
type Renderer struct {
	curies       *hypermedia.CurieProvider
	relProvider  hypermedia.RelProvider
	forcedArrays map[hypermedia.LinkRelation]bool
	embedNaming  func(payload any) hypermedia.LinkRelation
	validate     bool
	schema       *jsonschema.Schema
}

// Option configures a [Renderer] using the functional options pattern.
// Options are applied in order, with later options potentially overriding
// earlier ones.
type Option func(*Renderer)

// New creates a HAL [Renderer] with the given options.
//
// Example:
//
//	renderer, err := hal.New(
//	    hal.WithCuries(hypermedia.MustNewCurieProvider("ex", "https://example.com/rels/{rel}")),
//	    hal.WithForcedArrays(hypermedia.RelItem),
//	)
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		relProvider:  hypermedia.NewRelProvider(),
		forcedArrays: map[hypermedia.LinkRelation]bool{hypermedia.RelCuries: true},
	}

	for _, opt := range opts {
		opt(r)
	}

	// Forced rels are matched against rendered keys, which are curie-
	// shortened; register the shortened form of each forced rel as well.
	if r.curies != nil {
		shortened := make([]hypermedia.LinkRelation, 0, len(r.forcedArrays))
		for rel := range r.forcedArrays {
			shortened = append(shortened, r.curies.Shorten(rel))
		}
		for _, rel := range shortened {
			r.forcedArrays[rel] = true
		}
	}

	if r.validate {
		schema, err := compileHALSchema()
		if err != nil {
			return nil, fmt.Errorf("hal: compiling HAL schema: %w", err)
		}
		r.schema = schema
	}

	return r, nil
}

// MustNew creates a HAL [Renderer] and panics if configuration fails.
func MustNew(opts ...Option) *Renderer {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// WithCuries configures curie abbreviation for custom relations.
//
// The provider's "curies" link is added to documents that use at least one
// curied relation.
func WithCuries(provider *hypermedia.CurieProvider) Option {
	return func(r *Renderer) {
		r.curies = provider
	}
}

// WithRelProvider overrides relation derivation for embedded resources.
//
// Default: [hypermedia.NewRelProvider].
func WithRelProvider(provider hypermedia.RelProvider) Option {
	return func(r *Renderer) {
		if provider != nil {
			r.relProvider = provider
		}
	}
}

// WithForcedArrays pins the given relations to array rendering even when a
// single link is present, so clients get a stable document shape.
//
// The "curies" relation is always rendered as an array.
func WithForcedArrays(rels ...hypermedia.LinkRelation) Option {
	return func(r *Renderer) {
		for _, rel := range rels {
			r.forcedArrays[rel] = true
		}
	}
}

// WithSingleLinkPreferred renders a lone link under a relation as a single
// object, clearing any previously forced array relations. This is the default
// shape; the option exists to undo [WithForcedArrays] on a shared option set.
//
// The "curies" relation always renders as an array.
func WithSingleLinkPreferred() Option {
	return func(r *Renderer) {
		r.forcedArrays = map[hypermedia.LinkRelation]bool{hypermedia.RelCuries: true}
	}
}

// WithEmbeddedNaming overrides the property name used for embedded
// collections. The function receives a member payload and returns the
// relation to key the _embedded entry with.
func WithEmbeddedNaming(fn func(payload any) hypermedia.LinkRelation) Option {
	return func(r *Renderer) {
		r.embedNaming = fn
	}
}

// WithValidation enables JSON Schema validation of rendered documents.
//
// When enabled, Marshal validates its output against the embedded HAL
// schema and returns [ErrDocumentInvalid] on failure. Useful in development
// and CI to catch rendering bugs early.
//
// Default: false
func WithValidation(enabled bool) Option {
	return func(r *Renderer) {
		r.validate = enabled
	}
}

// Write renders the resource and writes it as an HTTP response with the
// HAL content type.
func (r *Renderer) Write(w http.ResponseWriter, status int, resource hypermedia.Resource) error {
	doc, err := r.Marshal(resource)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", MediaType)
	w.WriteHeader(status)
	_, err = w.Write(doc)

	return err
}

// embeddedRel returns the _embedded key for a member payload.
func (r *Renderer) embeddedRel(payload any) hypermedia.LinkRelation {
	if r.embedNaming != nil {
		return r.embedNaming(payload)
	}
	rel := r.relProvider.CollectionRel(payload)
	if r.curies != nil {
		rel = r.curies.Shorten(rel)
	}

	return rel
}

// compileHALSchema compiles the embedded HAL JSON Schema.
func compileHALSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(halschema.HAL))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("hal.schema.json", doc); err != nil {
		return nil, err
	}

	return compiler.Compile("hal.schema.json")
}
