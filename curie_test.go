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

func TestNewCurieProvider(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		p, err := NewCurieProvider("ex", "https://api.example.com/rels/{rel}")
		require.NoError(t, err)
		assert.Equal(t, "ex", p.Prefix())
	})

	t.Run("empty prefix", func(t *testing.T) {
		t.Parallel()
		_, err := NewCurieProvider("", "https://api.example.com/rels/{rel}")
		require.ErrorIs(t, err, ErrCuriePrefixEmpty)
	})

	t.Run("template without rel variable", func(t *testing.T) {
		t.Parallel()
		_, err := NewCurieProvider("ex", "https://api.example.com/rels/{name}")
		require.ErrorIs(t, err, ErrCurieTemplateRel)
	})

	t.Run("invalid template", func(t *testing.T) {
		t.Parallel()
		_, err := NewCurieProvider("ex", "https://api.example.com/rels/{rel")
		require.ErrorIs(t, err, ErrTemplateUnclosed)
	})
}

func TestCurieProvider_Shorten(t *testing.T) {
	t.Parallel()

	p := MustNewCurieProvider("ex", "https://api.example.com/rels/{rel}")

	tests := []struct {
		name string
		rel  LinkRelation
		want LinkRelation
	}{
		{name: "custom relation is prefixed", rel: "orders", want: "ex:orders"},
		{name: "registered relation untouched", rel: RelSelf, want: RelSelf},
		{name: "already curied untouched", rel: "other:orders", want: "other:orders"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.Shorten(tt.rel))
			assert.Equal(t, tt.rel != tt.want, p.Shortens(tt.rel))
		})
	}

	t.Run("nil provider is a no-op", func(t *testing.T) {
		t.Parallel()
		var nilProvider *CurieProvider
		assert.Equal(t, LinkRelation("orders"), nilProvider.Shorten("orders"))
		assert.Empty(t, nilProvider.Prefix())
	})
}

func TestCurieProvider_CurieLink(t *testing.T) {
	t.Parallel()

	p := MustNewCurieProvider("ex", "https://api.example.com/rels/{rel}")
	l := p.CurieLink()

	assert.Equal(t, RelCuries, l.Rel)
	assert.Equal(t, "https://api.example.com/rels/{rel}", l.Href)
	assert.Equal(t, "ex", l.Name)
	assert.True(t, l.Templated)
}

func TestMustNewCurieProvider_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustNewCurieProvider("", "https://api.example.com/rels/{rel}")
	})
}
