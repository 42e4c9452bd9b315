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

// Package hypermedia provides hypermedia ("HATEOAS") link construction and
// resource representation helpers for HTTP APIs.
//
// The package is transport-agnostic: it models links, link relations, URI
// templates, and resource wrappers, and leaves request dispatch to the host
// router. Media-type rendering (HAL, HAL-FORMS) lives in the mediatype
// subpackages, and host-router link builders (gorilla/mux, chi) live under
// server.
//
// # Links and Relations
//
// A [Link] is an immutable value object pairing a target href with a
// [LinkRelation] describing its semantic role:
//
//	link := hypermedia.NewLink("/users/42", hypermedia.RelSelf)
//	link = link.WithTitle("Current user")
//
// Links are collected on resources via [Links]. The collection preserves
// insertion order and is copy-on-write; attached links never change:
//
//	links := hypermedia.NewLinks(
//	    hypermedia.NewLink("/users/42", hypermedia.RelSelf),
//	    hypermedia.NewLink("/users", hypermedia.RelCollection),
//	)
//	self, err := links.FindRequired(hypermedia.RelSelf)
//
// # Resource Models
//
// Payloads are wrapped in representation models that carry links alongside
// the domain data:
//
//	user := hypermedia.NewEntity(User{ID: 42, Name: "Grace"},
//	    hypermedia.NewLink("/users/42", hypermedia.RelSelf),
//	)
//
// [Collection] wraps a slice of entities and [Page] adds pagination metadata
// plus first/prev/next/last navigation links.
//
// # URI Templates
//
// [URITemplate] implements the RFC 6570 expression subset needed for
// hypermedia APIs (levels 1-3): simple, reserved, fragment, path-segment and
// query expansion:
//
//	tmpl := hypermedia.MustParseTemplate("/users{/id}{?expand}")
//	href := tmpl.Expand(hypermedia.Values{"id": "42", "expand": "profile"})
//	// -> /users/42?expand=profile
//
// # Relation Derivation
//
// [DefaultRelProvider] derives relation names from Go type names the same way
// handlers name their payloads: a User payload yields "user" for a single
// item and "users" for a collection. Types can override derivation by
// implementing [Relatable] or with a `rel:"..."` struct tag.
//
// # Curies
//
// Custom relations can be abbreviated with a [CurieProvider], which shortens
// relation names to prefixed form (e.g. "ex:orders") and contributes the
// "curies" template link that documents them.
package hypermedia
