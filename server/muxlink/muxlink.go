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

// Package muxlink builds hypermedia links from gorilla/mux named routes.
//
// Named routes are the routing-layer source of truth for URIs: handlers
// never concatenate paths, they point at a route name and let the builder
// resolve it.
//
//	r := mux.NewRouter()
//	r.HandleFunc("/users", listUsers).Methods(http.MethodGet).Name("users")
//	r.HandleFunc("/users/{id}", getUser).Methods(http.MethodGet).Name("user")
//
//	builder := muxlink.MustNew(r, muxlink.WithBaseURL("https://api.example.com"))
//	self, err := builder.LinkTo("user", "id", "42")
//	// -> https://api.example.com/users/42
//
// [Builder.TemplateFor] turns a route into a templated link by converting
// mux placeholders (including regexp-constrained ones) to RFC 6570
// expressions, optionally appending query variables:
//
//	search, err := builder.TemplateFor("users", "page", "size")
//	// -> https://api.example.com/users{?page,size}  (templated)
package muxlink

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"rivaas.dev/hypermedia"
)

// Builder resolves gorilla/mux named routes to hypermedia links.
//
// Create instances with [New] or [MustNew]. A Builder is immutable after
// creation and safe for concurrent use once the underlying router is no
// longer being mutated.
type Builder struct {
	router         *mux.Router
	baseURL        string
	trustForwarded bool
	relProvider    hypermedia.RelProvider
}

// Option configures a [Builder] using the functional options pattern.
type Option func(*Builder)

// New creates a link [Builder] for the given router.
//
// Returns [ErrNilRouter] if router is nil.
func New(router *mux.Router, opts ...Option) (*Builder, error) {
	if router == nil {
		return nil, ErrNilRouter
	}

	b := &Builder{
		router:      router,
		relProvider: hypermedia.NewRelProvider(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// MustNew creates a link [Builder] and panics on error.
func MustNew(router *mux.Router, opts ...Option) *Builder {
	b, err := New(router, opts...)
	if err != nil {
		panic(err)
	}

	return b
}

// WithBaseURL prefixes resolved hrefs with a fixed scheme://host base.
// Without a base, hrefs are server-relative paths.
func WithBaseURL(base string) Option {
	return func(b *Builder) {
		b.baseURL = strings.TrimSuffix(base, "/")
	}
}

// WithForwardedHeaders makes [Builder.SelfFromRequest] honor the
// X-Forwarded-Proto and X-Forwarded-Host headers. Only enable behind a
// trusted reverse proxy.
func WithForwardedHeaders(enabled bool) Option {
	return func(b *Builder) {
		b.trustForwarded = enabled
	}
}

// WithRelProvider overrides relation derivation for [Builder.LinkForItem].
func WithRelProvider(provider hypermedia.RelProvider) Option {
	return func(b *Builder) {
		if provider != nil {
			b.relProvider = provider
		}
	}
}

// LinkTo resolves a named route to a concrete link with the "self"
// relation. Pairs alternate parameter names and values, exactly as
// mux.Route.URLPath expects.
//
// Returns [ErrRouteNotFound] for unknown names; parameter errors from mux
// (missing or pattern-mismatched variables) are wrapped.
func (b *Builder) LinkTo(name string, pairs ...string) (hypermedia.Link, error) {
	route := b.router.Get(name)
	if route == nil {
		return hypermedia.Link{}, fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}

	u, err := route.URLPath(pairs...)
	if err != nil {
		return hypermedia.Link{}, fmt.Errorf("muxlink: resolving route %q: %w", name, err)
	}

	return hypermedia.NewSelfLink(b.baseURL + u.Path), nil
}

// LinkForItem resolves a named route like [Builder.LinkTo] and assigns the
// item relation derived for the payload type, so callers can link to
// members of other resources:
//
//	link, err := builder.LinkForItem("user", Order{}, "id", "42")
//	// rel "order", href /users/42
func (b *Builder) LinkForItem(name string, payload any, pairs ...string) (hypermedia.Link, error) {
	l, err := b.LinkTo(name, pairs...)
	if err != nil {
		return hypermedia.Link{}, err
	}

	return l.WithRel(b.relProvider.ItemRel(payload)), nil
}

// TemplateFor resolves a named route to a templated link. Mux placeholders
// become RFC 6570 path expressions and the given query variables are
// appended as a query expression. The link keeps the "self" relation.
func (b *Builder) TemplateFor(name string, queryVars ...string) (hypermedia.Link, error) {
	route := b.router.Get(name)
	if route == nil {
		return hypermedia.Link{}, fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}

	pattern, err := route.GetPathTemplate()
	if err != nil {
		return hypermedia.Link{}, fmt.Errorf("muxlink: route %q has no path template: %w", name, err)
	}

	href := b.baseURL + normalizePattern(pattern)
	if len(queryVars) > 0 {
		href += "{?" + strings.Join(queryVars, ",") + "}"
	}

	l := hypermedia.NewSelfLink(href)
	l.Templated = true

	return l, nil
}

// SelfFromRequest builds the self link of the resource being served.
//
// The href combines the request URI with the configured base, falling back
// to the request host (and, when enabled, forwarded headers).
func (b *Builder) SelfFromRequest(r *http.Request) hypermedia.Link {
	base := b.baseURL
	if base == "" {
		base = hypermedia.BaseURIFromRequest(r, b.trustForwarded)
	}

	return hypermedia.NewSelfLink(base + r.URL.EscapedPath())
}

// PageLinks builds the navigation links (self, first, prev, next, last) for
// a page of a named collection route. The route's template gets "page" and
// "size" query variables.
func (b *Builder) PageLinks(name string, meta hypermedia.PageMetadata) (hypermedia.Links, error) {
	base, err := b.TemplateFor(name, "page", "size")
	if err != nil {
		return nil, err
	}

	expand := func(rel hypermedia.LinkRelation, page int) hypermedia.Link {
		return base.Expand(hypermedia.Values{"page": page, "size": meta.Size}).WithRel(rel)
	}

	links := hypermedia.NewLinks(expand(hypermedia.RelSelf, meta.Number))
	if meta.TotalPages > 0 {
		links = links.Add(
			expand(hypermedia.RelFirst, 0),
			expand(hypermedia.RelLast, meta.TotalPages-1),
		)
	}
	if meta.Number > 0 {
		links = links.Add(expand(hypermedia.RelPrev, meta.Number-1))
	}
	if meta.Number < meta.TotalPages-1 {
		links = links.Add(expand(hypermedia.RelNext, meta.Number+1))
	}

	return links, nil
}

// normalizePattern converts a mux path template to RFC 6570 form by
// stripping regexp constraints: /users/{id:[0-9]+} -> /users/{id}.
func normalizePattern(pattern string) string {
	var b strings.Builder
	depth := 0
	nameDone := false

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '{':
			depth++
			if depth == 1 {
				nameDone = false
				b.WriteByte(c)
			}
		case c == '}':
			depth--
			if depth == 0 {
				b.WriteByte(c)
			}
		case depth >= 1 && c == ':' && !nameDone:
			// Constraint separator: skip the regexp that follows.
			nameDone = true
		case depth == 0 || (depth == 1 && !nameDone):
			b.WriteByte(c)
		}
	}

	return b.String()
}
