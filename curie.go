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

// CurieProvider abbreviates custom link relations to compact, prefixed form
// and contributes the "curies" link documenting the prefix.
//
// Registered (IANA) relations and relations already in curie form are left
// untouched; only bare custom relations are rewritten:
//
//	provider, err := hypermedia.NewCurieProvider("ex", "https://api.example.com/rels/{rel}")
//	provider.Shorten("orders")  // -> "ex:orders"
//	provider.Shorten("self")    // -> "self"
//
// Create instances with [NewCurieProvider]; the zero value disables
// abbreviation.
type CurieProvider struct {
	prefix   string
	template *URITemplate
}

// NewCurieProvider creates a curie provider from a prefix and a relation
// documentation template. The template must contain a {rel} variable.
//
// Returns [ErrCuriePrefixEmpty] or [ErrCurieTemplateRel] on invalid input.
func NewCurieProvider(prefix, template string) (*CurieProvider, error) {
	if prefix == "" {
		return nil, ErrCuriePrefixEmpty
	}
	t, err := ParseTemplate(template)
	if err != nil {
		return nil, err
	}
	found := false
	for _, v := range t.VarNames() {
		if v == "rel" {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrCurieTemplateRel
	}

	return &CurieProvider{prefix: prefix, template: t}, nil
}

// MustNewCurieProvider creates a curie provider and panics on error.
func MustNewCurieProvider(prefix, template string) *CurieProvider {
	p, err := NewCurieProvider(prefix, template)
	if err != nil {
		panic(err)
	}

	return p
}

// Prefix returns the curie prefix.
func (p *CurieProvider) Prefix() string {
	if p == nil {
		return ""
	}

	return p.prefix
}

// Shorten rewrites a custom relation to curie form. Registered relations and
// relations that already carry a prefix are returned unchanged.
func (p *CurieProvider) Shorten(rel LinkRelation) LinkRelation {
	if p == nil || p.prefix == "" {
		return rel
	}
	if rel.IsRegistered() || rel.IsCuried() {
		return rel
	}

	return LinkRelation(p.prefix + ":" + string(rel))
}

// Shortens reports whether the given relation would be rewritten.
func (p *CurieProvider) Shortens(rel LinkRelation) bool {
	return p.Shorten(rel) != rel
}

// CurieLink returns the templated "curies" link documenting the prefix.
func (p *CurieProvider) CurieLink() Link {
	l := NewLink(p.template.String(), RelCuries).WithName(p.prefix)
	l.Templated = true

	return l
}
