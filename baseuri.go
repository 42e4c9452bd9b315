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

import (
	"net/http"
	"strings"
)

// BaseURIFromRequest derives the scheme://host base URI of the server as
// seen by the client.
//
// When trustForwarded is true, the X-Forwarded-Proto and X-Forwarded-Host
// headers set by reverse proxies take precedence over the request's own
// scheme and host. Only enable it behind a proxy that sanitizes these
// headers.
func BaseURIFromRequest(r *http.Request, trustForwarded bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if trustForwarded {
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = firstForwarded(proto)
		}
		if fh := r.Header.Get("X-Forwarded-Host"); fh != "" {
			host = firstForwarded(fh)
		}
	}

	if host == "" {
		return ""
	}

	return scheme + "://" + host
}

// firstForwarded returns the first element of a comma-separated forwarded
// header value, covering chained proxies.
func firstForwarded(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}

	return strings.TrimSpace(v)
}
