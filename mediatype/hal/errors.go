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

import "errors"

// Rendering errors (returned by Marshal and Write)
var (
	// ErrNilResource indicates Marshal was called with a nil resource.
	ErrNilResource = errors.New("hal: resource must not be nil")

	// ErrDocumentInvalid indicates a rendered document failed HAL JSON
	// Schema validation. Only returned when WithValidation is enabled.
	ErrDocumentInvalid = errors.New("hal: rendered document failed schema validation")
)

// Parsing errors (returned by the Unmarshal functions and ParseLinks)
var (
	// ErrNotObject indicates the document is not a JSON object.
	ErrNotObject = errors.New("hal: document is not a JSON object")

	// ErrEmbeddedNotFound indicates no _embedded entry matches the
	// expected collection relation.
	ErrEmbeddedNotFound = errors.New("hal: embedded resource not found")
)
