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

package chilink

import "errors"

var (
	// ErrNilRouter indicates New was called without a route tree.
	ErrNilRouter = errors.New("chilink: routes must not be nil")

	// ErrPatternUnknown indicates the pattern is not mounted in the tree.
	ErrPatternUnknown = errors.New("chilink: route pattern unknown")

	// ErrMissingVar indicates a path parameter was left unbound.
	ErrMissingVar = errors.New("chilink: missing path variable")
)
