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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/hypermedia"
	"rivaas.dev/hypermedia/mediatype/hal"
)

// tracerName identifies this instrumentation scope.
const tracerName = "rivaas.dev/hypermedia/client"

// LinkDiscoverer locates links in raw response documents by relation.
// [hal.Discoverer] is the default implementation.
type LinkDiscoverer interface {
	FindLink(doc []byte, rel hypermedia.LinkRelation) (hypermedia.Link, error)
}

// Hop is one navigation step: a relation to follow and the values used to
// expand the link when it is templated.
type Hop struct {
	Rel  hypermedia.LinkRelation
	Vars hypermedia.Values
}

// Rel builds a plain hop.
func Rel(rel hypermedia.LinkRelation) Hop {
	return Hop{Rel: rel}
}

// RelWith builds a hop with template expansion values.
func RelWith(rel hypermedia.LinkRelation, vars hypermedia.Values) Hop {
	return Hop{Rel: rel, Vars: vars}
}

// Client navigates an API by following links from a fixed entry URL.
//
// Create instances with [New] or [MustNew]. A Client is immutable after
// creation and safe for concurrent use.
type Client struct {
	entry      *url.URL
	http       *http.Client
	headers    http.Header
	logger     *slog.Logger
	discoverer LinkDiscoverer
	tracer     trace.Tracer
	tracing    bool
}

// New creates a [Client] for the given entry URL.
//
// Returns [ErrEntryURLInvalid] unless the URL is absolute.
func New(entryURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(entryURL)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("%w: %q", ErrEntryURLInvalid, entryURL)
	}

	c := &Client{
		entry:      u,
		headers:    http.Header{"Accept": []string{hal.MediaType + ", application/json"}},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		discoverer: hal.Discoverer{},
		tracing:    true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{Transport: defaultTransport(c.tracing)}
	}
	if c.tracing {
		c.tracer = otel.Tracer(tracerName)
	}

	return c, nil
}

// MustNew creates a [Client] and panics on error.
func MustNew(entryURL string, opts ...Option) *Client {
	c, err := New(entryURL, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Follow navigates from the entry URL through the given hops and returns
// the terminal response. With no hops it returns the entry document.
//
// At each hop the current document is searched for the hop's relation; a
// missing relation yields [ErrRelNotFound] naming the relation and the
// document URL. Any response with status >= 400 aborts with [ErrHTTPStatus].
func (c *Client) Follow(ctx context.Context, hops ...Hop) (*Response, error) {
	current := c.entry
	resp, err := c.get(ctx, current, "")
	if err != nil {
		return nil, err
	}

	for _, hop := range hops {
		link, err := c.discoverer.FindLink(resp.Body, hop.Rel)
		if err != nil {
			if errors.Is(err, hypermedia.ErrLinkNotFound) {
				return nil, fmt.Errorf("%w: rel %q at %s (%w)", ErrRelNotFound, hop.Rel, current, err)
			}

			return nil, fmt.Errorf("client: at %s: %w", current, err)
		}
		link = link.Expand(hop.Vars)

		ref, err := url.Parse(link.Href)
		if err != nil {
			return nil, fmt.Errorf("client: invalid href %q for rel %q: %w", link.Href, hop.Rel, err)
		}
		current = current.ResolveReference(ref)

		resp, err = c.get(ctx, current, hop.Rel)
		if err != nil {
			return nil, err
		}
	}

	return resp, nil
}

// get fetches one document.
func (c *Client) get(ctx context.Context, u *url.URL, rel hypermedia.LinkRelation) (*Response, error) {
	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, "hypermedia.follow",
			trace.WithAttributes(
				attribute.String("hypermedia.rel", string(rel)),
				attribute.String("url.full", u.String()),
			))
		defer span.End()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("client: building request for %s: %w", u, err)
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	c.logger.DebugContext(ctx, "following link", "rel", string(rel), "url", u.String())

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: fetching %s: %w", u, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: reading %s: %w", u, err)
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %d fetching %s", ErrHTTPStatus, httpResp.StatusCode, u)
	}

	links, err := hal.ParseLinks(body)
	if err != nil {
		// Non-HAL terminal documents are still useful; navigation from
		// them will fail with a discovery error instead.
		links = nil
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
		url:        u.String(),
		links:      links,
	}, nil
}
