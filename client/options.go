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
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Option configures a [Client] using the functional options pattern.
// Options are applied in order, with later options potentially overriding
// earlier ones.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The caller owns the
// transport configuration, including instrumentation.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger enables debug logging of each hop. The default logger
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHeader adds a header sent with every request, e.g. authorization:
//
//	client.WithHeader("Authorization", "Bearer "+token)
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Add(key, value)
	}
}

// WithTracing enables or disables OpenTelemetry tracing: a span per hop
// plus otelhttp transport instrumentation on the default HTTP client.
//
// Default: true
func WithTracing(enabled bool) Option {
	return func(c *Client) {
		c.tracing = enabled
	}
}

// WithDiscoverer replaces link discovery. The default discoverer reads HAL
// _links.
func WithDiscoverer(d LinkDiscoverer) Option {
	return func(c *Client) {
		if d != nil {
			c.discoverer = d
		}
	}
}

// defaultTransport builds the transport for the default HTTP client.
func defaultTransport(tracing bool) http.RoundTripper {
	if !tracing {
		return http.DefaultTransport
	}

	return otelhttp.NewTransport(http.DefaultTransport)
}
