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

// Package chilink builds hypermedia links from chi route patterns.
//
// chi has no named routes, so links are addressed by the route pattern
// itself. The builder walks the route tree once at construction and rejects
// patterns that are not actually mounted, which catches drifting link
// construction at startup rather than in production responses:
//
//	r := chi.NewRouter()
//	r.Get("/users", listUsers)
//	r.Get("/users/{id}", getUser)
//
//	builder := chilink.MustNew(r, chilink.WithBaseURL("https://api.example.com"))
//	link, err := builder.LinkTo("/users/{id}", hypermedia.Values{"id": 42})
//	// -> https://api.example.com/users/42
package chilink

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"rivaas.dev/hypermedia"
)

// Builder resolves chi route patterns to hypermedia links.
//
// Create instances with [New] or [MustNew] after all routes are mounted.
// A Builder is immutable after creation and safe for concurrent use.
type Builder struct {
	patterns       map[string]struct{}
	baseURL        string
	trustForwarded bool
}

// Option configures a [Builder] using the functional options pattern.
type Option func(*Builder)

// New creates a link [Builder] from a mounted chi route tree.
//
// The route tree is walked once to collect the known patterns; mutations to
// the router after New are not observed. Returns [ErrNilRouter] if routes
// is nil.
func New(routes chi.Routes, opts ...Option) (*Builder, error) {
	if routes == nil {
		return nil, ErrNilRouter
	}

	b := &Builder{patterns: make(map[string]struct{})}
	for _, opt := range opts {
		opt(b)
	}

	err := chi.Walk(routes, func(_ string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		b.patterns[normalizeRoute(route)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("chilink: walking route tree: %w", err)
	}

	return b, nil
}

// MustNew creates a link [Builder] and panics on error.
func MustNew(routes chi.Routes, opts ...Option) *Builder {
	b, err := New(routes, opts...)
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

// LinkTo resolves a route pattern to a concrete link with the "self"
// relation, filling {param} segments from vars.
//
// Returns [ErrPatternUnknown] for patterns not present in the route tree
// and [ErrMissingVar] when a path parameter is unbound.
func (b *Builder) LinkTo(pattern string, vars hypermedia.Values) (hypermedia.Link, error) {
	if _, ok := b.patterns[normalizeRoute(pattern)]; !ok {
		return hypermedia.Link{}, fmt.Errorf("%w: %q", ErrPatternUnknown, pattern)
	}

	tmpl, err := hypermedia.ParseTemplate(patternTemplate(pattern))
	if err != nil {
		return hypermedia.Link{}, fmt.Errorf("chilink: pattern %q: %w", pattern, err)
	}
	for _, name := range tmpl.VarNames() {
		if _, ok := vars[name]; !ok {
			return hypermedia.Link{}, fmt.Errorf("%w: %q in pattern %q", ErrMissingVar, name, pattern)
		}
	}

	return hypermedia.NewSelfLink(b.baseURL + tmpl.Expand(vars)), nil
}

// TemplateFor resolves a route pattern to a templated link. chi
// placeholders become RFC 6570 path expressions and the given query
// variables are appended as a query expression.
func (b *Builder) TemplateFor(pattern string, queryVars ...string) (hypermedia.Link, error) {
	if _, ok := b.patterns[normalizeRoute(pattern)]; !ok {
		return hypermedia.Link{}, fmt.Errorf("%w: %q", ErrPatternUnknown, pattern)
	}

	href := b.baseURL + patternTemplate(pattern)
	if len(queryVars) > 0 {
		href += "{?" + strings.Join(queryVars, ",") + "}"
	}

	l := hypermedia.NewSelfLink(href)
	l.Templated = true

	return l, nil
}

// SelfFromRequest builds the self link of the resource being served.
func (b *Builder) SelfFromRequest(r *http.Request) hypermedia.Link {
	base := b.baseURL
	if base == "" {
		base = hypermedia.BaseURIFromRequest(r, b.trustForwarded)
	}

	return hypermedia.NewSelfLink(base + r.URL.EscapedPath())
}

// PageLinks builds the navigation links (self, first, prev, next, last)
// for a page served under a collection route pattern.
func (b *Builder) PageLinks(pattern string, meta hypermedia.PageMetadata) (hypermedia.Links, error) {
	base, err := b.TemplateFor(pattern, "page", "size")
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

// patternTemplate converts a chi route pattern to RFC 6570 form: regexp
// constraints are stripped ({id:[0-9]+} -> {id}) and a trailing wildcard
// becomes a reserved-expansion variable (/* -> {+rest}).
func patternTemplate(pattern string) string {
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
			nameDone = true
		case depth == 0 || (depth == 1 && !nameDone):
			b.WriteByte(c)
		}
	}

	out := b.String()
	if strings.HasSuffix(out, "/*") {
		out = strings.TrimSuffix(out, "*") + "{+rest}"
	}

	return out
}

// normalizeRoute canonicalizes a pattern for the known-pattern lookup. chi
// reports subrouter mounts with doubled slashes and wildcard tails.
func normalizeRoute(route string) string {
	route = strings.ReplaceAll(route, "//", "/")
	route = strings.TrimSuffix(route, "/*")
	if route != "/" {
		route = strings.TrimSuffix(route, "/")
	}
	if route == "" {
		route = "/"
	}

	return route
}
