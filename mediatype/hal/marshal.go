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
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"rivaas.dev/hypermedia"
)

// Marshal renders a resource model as a HAL document.
//
// Entity payload fields render inline next to _links; collection and page
// members render under _embedded; page metadata renders under "page".
// Link insertion order is preserved.
func (r *Renderer) Marshal(resource hypermedia.Resource) ([]byte, error) {
	if resource == nil {
		return nil, ErrNilResource
	}

	doc, err := r.render(resource)
	if err != nil {
		return nil, err
	}

	if r.schema != nil {
		inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
		}
		if err := r.schema.Validate(inst); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
		}
	}

	return doc, nil
}

// embeddedGroup is one _embedded entry: a relation key and its rendered
// member documents.
type embeddedGroup struct {
	rel  hypermedia.LinkRelation
	docs []json.RawMessage
}

func (r *Renderer) render(resource hypermedia.Resource) ([]byte, error) {
	links := resource.Links()
	usedCurie := false

	// Render embedded members first: their relation keys decide whether the
	// curies link is needed at this level.
	var groups []embeddedGroup
	if ec, ok := resource.(hypermedia.ElementsCarrier); ok {
		for _, element := range ec.Elements() {
			doc, err := r.render(element)
			if err != nil {
				return nil, err
			}

			rel := hypermedia.RelItem
			if pc, ok := element.(hypermedia.PayloadCarrier); ok {
				base := r.relProvider.CollectionRel(pc.Payload())
				if r.curies != nil && r.curies.Shortens(base) {
					usedCurie = true
				}
				rel = r.embeddedRel(pc.Payload())
			}

			idx := -1
			for i := range groups {
				if groups[i].rel == rel {
					idx = i
					break
				}
			}
			if idx < 0 {
				groups = append(groups, embeddedGroup{rel: rel})
				idx = len(groups) - 1
			}
			groups[idx].docs = append(groups[idx].docs, doc)
		}
	}

	if r.curies != nil {
		for _, l := range links {
			if r.curies.Shortens(l.Rel) {
				usedCurie = true
				break
			}
		}
	}
	if usedCurie {
		links = links.Add(r.curies.CurieLink())
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	needComma := false
	field := func(name string, value []byte) {
		if needComma {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(name)
		buf.WriteString(`":`)
		buf.Write(value)
		needComma = true
	}

	if len(links) > 0 {
		linksJSON, err := r.renderLinks(links)
		if err != nil {
			return nil, err
		}
		field("_links", linksJSON)
	}

	if len(groups) > 0 {
		embeddedJSON, err := renderEmbedded(groups)
		if err != nil {
			return nil, err
		}
		field("_embedded", embeddedJSON)
	}

	if pc, ok := resource.(hypermedia.PageCarrier); ok {
		pageJSON, err := json.Marshal(pc.PageInfo())
		if err != nil {
			return nil, err
		}
		field("page", pageJSON)
	}

	if pc, ok := resource.(hypermedia.PayloadCarrier); ok {
		payloadJSON, err := json.Marshal(pc.Payload())
		if err != nil {
			return nil, fmt.Errorf("hal: marshaling payload: %w", err)
		}
		switch {
		case bytes.Equal(payloadJSON, []byte("null")):
			// Nothing to inline.
		case payloadJSON[0] == '{':
			if inner := payloadJSON[1 : len(payloadJSON)-1]; len(bytes.TrimSpace(inner)) > 0 {
				if needComma {
					buf.WriteByte(',')
				}
				buf.Write(inner)
				needComma = true
			}
		default:
			// Non-object payloads (scalars, arrays) cannot be spliced into
			// the enclosing object; render them under a "value" property.
			field("value", payloadJSON)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// renderLinks renders a link collection as the _links object, grouping by
// relation in order of first appearance. Single links render as objects,
// repeated and forced relations as arrays.
func (r *Renderer) renderLinks(links hypermedia.Links) ([]byte, error) {
	shortened := make(hypermedia.Links, len(links))
	for i, l := range links {
		rel := l.Rel
		if r.curies != nil {
			rel = r.curies.Shorten(rel)
		}
		shortened[i] = l.WithRel(rel)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rel := range shortened.Rels() {
		if i > 0 {
			buf.WriteByte(',')
		}
		group := shortened.FilterByRel(rel)

		key, err := json.Marshal(string(rel))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		asArray := len(group) > 1 || r.forcedArrays[rel]
		if asArray {
			buf.WriteByte('[')
		}
		for j, l := range group {
			if j > 0 {
				buf.WriteByte(',')
			}
			obj, err := json.Marshal(l)
			if err != nil {
				return nil, err
			}
			buf.Write(obj)
		}
		if asArray {
			buf.WriteByte(']')
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// renderEmbedded renders the _embedded object from pre-rendered groups.
// Embedded entries always render as arrays: collection members have no
// single-object form a client could rely on.
func renderEmbedded(groups []embeddedGroup) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(g.rel))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":[")
		for j, doc := range g.docs {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.Write(doc)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
