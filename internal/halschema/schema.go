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

// Package halschema embeds the JSON Schema used to validate rendered HAL
// documents.
package halschema

import _ "embed"

// HAL contains the JSON Schema for HAL resource representations.
//
// The schema models the structural rules of the HAL draft
// (https://datatracker.ietf.org/doc/html/draft-kelly-json-hal): reserved
// _links and _embedded properties, link objects keyed by relation, and
// recursive embedded resources.
//
//go:embed hal.schema.json
var HAL []byte
