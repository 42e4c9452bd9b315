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

package chilink

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/hypermedia"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()

	noop := func(http.ResponseWriter, *http.Request) {}

	r := chi.NewRouter()
	r.Get("/users", noop)
	r.Get("/users/{id}", noop)
	r.Get("/users/{id:[0-9]+}/orders/{number}", noop)
	r.Route("/admin", func(r chi.Router) {
		r.Get("/reports", noop)
	})
	r.Get("/files/*", noop)

	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil routes", func(t *testing.T) {
		t.Parallel()
		_, err := New(nil)
		require.ErrorIs(t, err, ErrNilRouter)
	})

	t.Run("MustNew panics on nil routes", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { MustNew(nil) })
	})
}

func TestBuilder_LinkTo(t *testing.T) {
	t.Parallel()

	builder := MustNew(newRouter(t), WithBaseURL("https://api.example.com"))

	t.Run("resolves a mounted pattern", func(t *testing.T) {
		t.Parallel()
		l, err := builder.LinkTo("/users/{id}", hypermedia.Values{"id": 42})
		require.NoError(t, err)
		assert.Equal(t, hypermedia.RelSelf, l.Rel)
		assert.Equal(t, "https://api.example.com/users/42", l.Href)
	})

	t.Run("strips regexp constraints", func(t *testing.T) {
		t.Parallel()
		l, err := builder.LinkTo("/users/{id:[0-9]+}/orders/{number}", hypermedia.Values{
			"id": 42, "number": "A1",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/users/42/orders/A1", l.Href)
	})

	t.Run("subrouter patterns are known", func(t *testing.T) {
		t.Parallel()
		l, err := builder.LinkTo("/admin/reports", nil)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/admin/reports", l.Href)
	})

	t.Run("unmounted pattern", func(t *testing.T) {
		t.Parallel()
		_, err := builder.LinkTo("/groups/{id}", hypermedia.Values{"id": 1})
		require.ErrorIs(t, err, ErrPatternUnknown)
	})

	t.Run("unbound path variable", func(t *testing.T) {
		t.Parallel()
		_, err := builder.LinkTo("/users/{id}", nil)
		require.ErrorIs(t, err, ErrMissingVar)
	})
}

func TestBuilder_TemplateFor(t *testing.T) {
	t.Parallel()

	builder := MustNew(newRouter(t))

	t.Run("path placeholders become template expressions", func(t *testing.T) {
		t.Parallel()
		l, err := builder.TemplateFor("/users/{id}")
		require.NoError(t, err)
		assert.True(t, l.Templated)
		assert.Equal(t, "/users/{id}", l.Href)
	})

	t.Run("query variables are appended", func(t *testing.T) {
		t.Parallel()
		l, err := builder.TemplateFor("/users", "page", "size")
		require.NoError(t, err)
		assert.Equal(t, "/users{?page,size}", l.Href)
	})

	t.Run("wildcard tail becomes reserved expansion", func(t *testing.T) {
		t.Parallel()
		l, err := builder.TemplateFor("/files/*")
		require.NoError(t, err)
		assert.Equal(t, "/files/{+rest}", l.Href)

		expanded := l.Expand(hypermedia.Values{"rest": "docs/readme.txt"})
		assert.Equal(t, "/files/docs/readme.txt", expanded.Href)
	})

	t.Run("unmounted pattern", func(t *testing.T) {
		t.Parallel()
		_, err := builder.TemplateFor("/groups")
		require.ErrorIs(t, err, ErrPatternUnknown)
	})
}

func TestBuilder_SelfFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("uses the request host", func(t *testing.T) {
		t.Parallel()
		builder := MustNew(newRouter(t))
		req := httptest.NewRequest(http.MethodGet, "http://api.internal/users/42", nil)

		l := builder.SelfFromRequest(req)
		assert.Equal(t, "http://api.internal/users/42", l.Href)
	})

	t.Run("forwarded headers when trusted", func(t *testing.T) {
		t.Parallel()
		builder := MustNew(newRouter(t), WithForwardedHeaders(true))
		req := httptest.NewRequest(http.MethodGet, "http://api.internal/users/42", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		req.Header.Set("X-Forwarded-Host", "api.example.com")

		l := builder.SelfFromRequest(req)
		assert.Equal(t, "https://api.example.com/users/42", l.Href)
	})
}

func TestBuilder_PageLinks(t *testing.T) {
	t.Parallel()

	builder := MustNew(newRouter(t))

	t.Run("first page", func(t *testing.T) {
		t.Parallel()
		links, err := builder.PageLinks("/users", hypermedia.PageMetadata{
			Size: 10, Number: 0, TotalElements: 30, TotalPages: 3,
		})
		require.NoError(t, err)

		assert.False(t, links.Has(hypermedia.RelPrev))
		next, err := links.FindRequired(hypermedia.RelNext)
		require.NoError(t, err)
		assert.Equal(t, "/users?page=1&size=10", next.Href)
	})

	t.Run("unmounted pattern", func(t *testing.T) {
		t.Parallel()
		_, err := builder.PageLinks("/groups", hypermedia.PageMetadata{})
		require.ErrorIs(t, err, ErrPatternUnknown)
	})
}
