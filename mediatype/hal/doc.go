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

// Package hal renders and parses HAL (application/hal+json) resource
// representations.
//
// HAL documents inline the payload fields of an entity and attach hypermedia
// under two reserved properties: _links (link objects keyed by relation) and
// _embedded (nested resources keyed by relation).
//
// # Rendering
//
//	renderer := hal.MustNew()
//	user := hypermedia.NewEntity(User{ID: 42, Name: "Grace"},
//	    hypermedia.NewSelfLink("/users/42"),
//	)
//	doc, err := renderer.Marshal(user)
//	// {"_links":{"self":{"href":"/users/42"}},"id":42,"name":"Grace"}
//
// Collections and pages render their members under _embedded, keyed by the
// collection relation derived from the member type:
//
//	users := hypermedia.NewCollection(items, hypermedia.NewSelfLink("/users"))
//	doc, err := renderer.Marshal(users)
//	// {"_links":{...},"_embedded":{"users":[...]}}
//
// # Link Rendering Rules
//
// A relation with a single link renders as an object; a relation with
// multiple links renders as an array. [WithForcedArrays] pins specific
// relations to array form so clients can rely on a stable shape.
//
// # Curies
//
// When a [hypermedia.CurieProvider] is configured, custom relations are
// abbreviated to curie form and the "curies" template link is added to
// _links, but only in documents that actually use a curied relation.
//
// # Validation
//
// [WithValidation] checks every rendered document against the embedded HAL
// JSON Schema, mirroring the meta-schema validation of generated OpenAPI
// specs. Intended for development and tests; adds ~1ms per document.
//
// # Parsing
//
// Parsing is payload-type driven via the package-level generic functions:
//
//	entity, err := hal.UnmarshalEntity[User](renderer, doc)
//	page, err := hal.UnmarshalPage[User](renderer, doc)
//
// [ParseLinks] extracts just the _links of a raw document, which is what
// link-following clients need.
package hal
