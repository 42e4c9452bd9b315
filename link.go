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

// Link is an immutable hypermedia link: a target href paired with the
// relation describing its role, plus the optional attributes defined by the
// HAL link object.
//
// Links are plain values. The With* methods return modified copies; a link
// attached to a resource never changes.
type Link struct {
	// Rel names the semantic role of the link.
	Rel LinkRelation `json:"-"`

	// Href is the link target: a concrete URI, or a URI template when
	// Templated is true.
	Href string `json:"href"`

	// Templated marks Href as an RFC 6570 URI template.
	Templated bool `json:"templated,omitempty"`

	// Type hints the media type expected when dereferencing the target.
	Type string `json:"type,omitempty"`

	// Name is a secondary key for selecting between links sharing a rel.
	Name string `json:"name,omitempty"`

	// Title labels the link for human display.
	Title string `json:"title,omitempty"`

	// Profile is a URI hinting at the profile of the target representation.
	Profile string `json:"profile,omitempty"`

	// Deprecation is a URL documenting the deprecation of the link.
	Deprecation string `json:"deprecation,omitempty"`

	// HrefLang indicates the language of the target representation.
	HrefLang string `json:"hreflang,omitempty"`
}

// NewLink creates a link with the given href and relation.
//
// If href contains RFC 6570 template expressions the link is marked
// templated automatically:
//
//	hypermedia.NewLink("/users{/id}", hypermedia.RelItem)  // Templated: true
//	hypermedia.NewLink("/users/42", hypermedia.RelSelf)    // Templated: false
func NewLink(href string, rel LinkRelation) Link {
	templated := false
	if t, err := ParseTemplate(href); err == nil {
		templated = t.IsTemplated()
	}

	return Link{Rel: rel, Href: href, Templated: templated}
}

// NewSelfLink creates a link with the "self" relation.
func NewSelfLink(href string) Link {
	return NewLink(href, RelSelf)
}

// Validate checks the link invariants: a non-empty relation and a non-empty
// href.
func (l Link) Validate() error {
	if l.Rel == "" {
		return ErrRelationEmpty
	}
	if l.Href == "" {
		return ErrHrefEmpty
	}

	return nil
}

// WithRel returns a copy of the link with the given relation.
func (l Link) WithRel(rel LinkRelation) Link {
	l.Rel = rel
	return l
}

// WithType returns a copy with the media type hint set.
func (l Link) WithType(mediaType string) Link {
	l.Type = mediaType
	return l
}

// WithName returns a copy with the secondary name key set.
func (l Link) WithName(name string) Link {
	l.Name = name
	return l
}

// WithTitle returns a copy with the display title set.
func (l Link) WithTitle(title string) Link {
	l.Title = title
	return l
}

// WithProfile returns a copy with the profile URI set.
func (l Link) WithProfile(profile string) Link {
	l.Profile = profile
	return l
}

// WithDeprecation returns a copy with the deprecation URL set.
func (l Link) WithDeprecation(url string) Link {
	l.Deprecation = url
	return l
}

// WithHrefLang returns a copy with the target language set.
func (l Link) WithHrefLang(lang string) Link {
	l.HrefLang = lang
	return l
}

// VarNames returns the template variable names of a templated link, or nil
// for a concrete link.
func (l Link) VarNames() []string {
	if !l.Templated {
		return nil
	}
	t, err := ParseTemplate(l.Href)
	if err != nil {
		return nil
	}

	return t.VarNames()
}

// Expand resolves a templated link against the given values and returns a
// concrete copy. Expanding a non-templated link returns the link unchanged.
func (l Link) Expand(values Values) Link {
	if !l.Templated {
		return l
	}
	t, err := ParseTemplate(l.Href)
	if err != nil {
		return l
	}

	l.Href = t.Expand(values)
	l.Templated = false

	return l
}
