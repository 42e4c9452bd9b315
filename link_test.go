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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLink(t *testing.T) {
	t.Parallel()

	t.Run("concrete href", func(t *testing.T) {
		t.Parallel()
		l := NewLink("/users/42", RelSelf)
		assert.Equal(t, RelSelf, l.Rel)
		assert.Equal(t, "/users/42", l.Href)
		assert.False(t, l.Templated)
	})

	t.Run("templated href detected automatically", func(t *testing.T) {
		t.Parallel()
		l := NewLink("/users{/id}", RelItem)
		assert.True(t, l.Templated)
		assert.Equal(t, []string{"id"}, l.VarNames())
	})

	t.Run("self constructor", func(t *testing.T) {
		t.Parallel()
		l := NewSelfLink("/users")
		assert.Equal(t, RelSelf, l.Rel)
	})
}

func TestLink_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		link    Link
		wantErr error
	}{
		{name: "valid", link: NewLink("/x", RelSelf), wantErr: nil},
		{name: "empty rel", link: Link{Href: "/x"}, wantErr: ErrRelationEmpty},
		{name: "empty href", link: Link{Rel: RelSelf}, wantErr: ErrHrefEmpty},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.link.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLink_With_Immutability(t *testing.T) {
	t.Parallel()

	original := NewLink("/users/42", RelSelf)
	modified := original.
		WithRel(RelItem).
		WithTitle("A user").
		WithType("application/hal+json").
		WithName("primary").
		WithProfile("https://example.com/profiles/user").
		WithDeprecation("https://example.com/deprecations/user").
		WithHrefLang("en")

	// The original is untouched.
	assert.Equal(t, RelSelf, original.Rel)
	assert.Empty(t, original.Title)
	assert.Empty(t, original.Type)

	assert.Equal(t, RelItem, modified.Rel)
	assert.Equal(t, "A user", modified.Title)
	assert.Equal(t, "application/hal+json", modified.Type)
	assert.Equal(t, "primary", modified.Name)
	assert.Equal(t, "en", modified.HrefLang)
}

func TestLink_Expand(t *testing.T) {
	t.Parallel()

	t.Run("templated link expands to concrete link", func(t *testing.T) {
		t.Parallel()
		l := NewLink("/users{/id}{?expand}", RelSelf)
		require.True(t, l.Templated)

		expanded := l.Expand(Values{"id": 42, "expand": "profile"})
		assert.Equal(t, "/users/42?expand=profile", expanded.Href)
		assert.False(t, expanded.Templated)

		// Source link is unchanged.
		assert.True(t, l.Templated)
		assert.Equal(t, "/users{/id}{?expand}", l.Href)
	})

	t.Run("non-templated link is returned unchanged", func(t *testing.T) {
		t.Parallel()
		l := NewLink("/users/42", RelSelf)
		assert.Equal(t, l, l.Expand(Values{"id": "99"}))
	})
}
