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

import "errors"

var (
	// ErrEntryURLInvalid indicates the entry URL is empty or not absolute.
	ErrEntryURLInvalid = errors.New("client: entry URL must be absolute")

	// ErrRelNotFound indicates the current document carries no link with the
	// hop's relation. Errors returned by Follow also match
	// [hypermedia.ErrLinkNotFound].
	ErrRelNotFound = errors.New("client: relation not found")

	// ErrHTTPStatus indicates a hop responded with a 4xx or 5xx status.
	ErrHTTPStatus = errors.New("client: unexpected HTTP status")
)
