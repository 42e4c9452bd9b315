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

// Package halforms renders HAL-FORMS (application/prs.hal-forms+json)
// documents: HAL representations extended with a _templates property that
// describes the actions available on the resource.
//
// Templates are derived from the affordances attached to a resource model:
//
//	user := hypermedia.NewEntity(u, hypermedia.NewSelfLink("/users/42"))
//	user.AddAffordances(
//	    hypermedia.MustAffordance("updateUser", http.MethodPut, "", UpdateUserInput{}),
//	)
//	doc, err := halforms.MustNew().Marshal(user)
//
// Per the HAL-FORMS media type, the first affordance renders under the
// reserved "default" key; further affordances keep their own names.
package halforms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"rivaas.dev/hypermedia"
	"rivaas.dev/hypermedia/mediatype/hal"
)

// MediaType is the HAL-FORMS media type.
const MediaType = "application/prs.hal-forms+json"

// Renderer renders resource models as HAL-FORMS documents. It extends the
// HAL renderer and accepts the same options.
//
// Create instances with [New] or [MustNew]; a Renderer is immutable after
// creation and safe for concurrent use.
type Renderer struct {
	hal *hal.Renderer
}

// New creates a HAL-FORMS [Renderer]. Options configure the underlying HAL
// rendering (curies, relation derivation, forced arrays, validation).
func New(opts ...hal.Option) (*Renderer, error) {
	h, err := hal.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Renderer{hal: h}, nil
}

// MustNew creates a HAL-FORMS [Renderer] and panics if configuration fails.
func MustNew(opts ...hal.Option) *Renderer {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// template is the wire form of one _templates entry.
type template struct {
	Title       string     `json:"title,omitempty"`
	Method      string     `json:"method"`
	ContentType string     `json:"contentType,omitempty"`
	Target      string     `json:"target,omitempty"`
	Properties  []property `json:"properties"`
}

// property is the wire form of one template property.
type property struct {
	Name     string `json:"name"`
	Prompt   string `json:"prompt,omitempty"`
	Required bool   `json:"required,omitempty"`
	ReadOnly bool   `json:"readOnly,omitempty"`
	Regex    string `json:"regex,omitempty"`
	Value    string `json:"value,omitempty"`
}

// Marshal renders a resource model as a HAL-FORMS document.
//
// The HAL rendering is produced first and _templates is appended from the
// resource's affordances. A resource without affordances renders as plain
// HAL, which is valid HAL-FORMS.
func (r *Renderer) Marshal(resource hypermedia.Resource) ([]byte, error) {
	doc, err := r.hal.Marshal(resource)
	if err != nil {
		return nil, err
	}

	affordances := resource.Affordances()
	if len(affordances) == 0 {
		return doc, nil
	}

	templatesJSON, err := renderTemplates(affordances)
	if err != nil {
		return nil, err
	}

	// Splice _templates into the rendered object.
	var buf bytes.Buffer
	buf.Write(doc[:len(doc)-1])
	if !bytes.Equal(doc, []byte("{}")) {
		buf.WriteByte(',')
	}
	buf.WriteString(`"_templates":`)
	buf.Write(templatesJSON)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Write renders the resource and writes it as an HTTP response with the
// HAL-FORMS content type.
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

// renderTemplates renders the _templates object, first affordance under the
// reserved "default" key.
func renderTemplates(affordances []hypermedia.Affordance) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, a := range affordances {
		if i > 0 {
			buf.WriteByte(',')
		}

		name := a.Name
		if i == 0 {
			name = "default"
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}

		t := template{
			Title:      a.Name,
			Method:     a.Method,
			Target:     a.Target,
			Properties: []property{},
		}
		if a.InputType != nil {
			t.ContentType = "application/json"
		}
		for _, p := range a.Properties {
			t.Properties = append(t.Properties, property{
				Name:     p.Name,
				Prompt:   p.Prompt,
				Required: p.Required,
				ReadOnly: p.ReadOnly,
				Regex:    p.Regex,
				Value:    p.Value,
			})
		}

		value, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("halforms: marshaling template %q: %w", a.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
