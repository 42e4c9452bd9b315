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

package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"rivaas.dev/hypermedia"
)

// Response is the terminal document of a traversal: the raw body plus the
// links parsed from it.
type Response struct {
	// StatusCode is the HTTP status of the final hop.
	StatusCode int

	// Header holds the response headers of the final hop.
	Header http.Header

	// Body is the raw response body.
	Body []byte

	url   string
	links hypermedia.Links
}

// URL returns the resolved URL the response was fetched from.
func (r *Response) URL() string {
	return r.url
}

// Links returns the links parsed from the document. Empty for non-HAL
// responses.
func (r *Response) Links() hypermedia.Links {
	return r.links
}

// Link returns the first link with the given relation.
func (r *Response) Link(rel hypermedia.LinkRelation) (hypermedia.Link, bool) {
	return r.links.Find(rel)
}

// RequireLink returns the first link with the given relation, or an error
// wrapping [hypermedia.ErrLinkNotFound].
func (r *Response) RequireLink(rel hypermedia.LinkRelation) (hypermedia.Link, error) {
	return r.links.FindRequired(rel)
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("client: decoding %s: %w", r.url, err)
	}

	return nil
}
