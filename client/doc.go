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

// Package client follows hypermedia links from an API entry point.
//
// Instead of hardcoding URIs, a hypermedia client knows one entry URL and
// navigates by relation, hop by hop:
//
//	c, err := client.New("https://api.example.com")
//	if err != nil {
//	    return err
//	}
//
//	resp, err := c.Follow(ctx,
//	    client.Rel("users"),
//	    client.RelWith("search", hypermedia.Values{"name": "grace"}),
//	)
//	if err != nil {
//	    return err
//	}
//
//	var result SearchResult
//	err = resp.Decode(&result)
//
// Each hop fetches the current document, locates the link with the hop's
// relation, expands it when templated, and moves on. The terminal response
// keeps its parsed links so navigation can continue from it.
//
// Link discovery defaults to HAL (_links) and is pluggable via
// [WithDiscoverer]. Transport is plain net/http instrumented with
// otelhttp; the package itself implements no transport semantics.
package client
