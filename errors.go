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

import "errors"

// Link and relation errors
var (
	// ErrLinkNotFound indicates no link with the requested relation exists.
	ErrLinkNotFound = errors.New("hypermedia: link not found")

	// ErrRelationEmpty indicates a relation name was empty or whitespace.
	ErrRelationEmpty = errors.New("hypermedia: relation must not be empty")

	// ErrHrefEmpty indicates a link was created without a target href.
	ErrHrefEmpty = errors.New("hypermedia: href must not be empty")
)

// URI template errors (returned by ParseTemplate and Expand)
var (
	// ErrTemplateUnclosed indicates an expression was opened with '{' but never closed.
	ErrTemplateUnclosed = errors.New("hypermedia: unclosed template expression")

	// ErrTemplateEmptyExpression indicates an expression contains no variable names.
	ErrTemplateEmptyExpression = errors.New("hypermedia: empty template expression")

	// ErrTemplateInvalidOperator indicates an unsupported expression operator.
	ErrTemplateInvalidOperator = errors.New("hypermedia: unsupported template operator")
)

// Curie errors (returned by NewCurieProvider)
var (
	// ErrCuriePrefixEmpty indicates the curie prefix was empty.
	ErrCuriePrefixEmpty = errors.New("hypermedia: curie prefix must not be empty")

	// ErrCurieTemplateRel indicates the curie template is missing the {rel} variable.
	ErrCurieTemplateRel = errors.New("hypermedia: curie template must contain a {rel} variable")
)

// Affordance errors
var (
	// ErrAffordanceNameEmpty indicates an affordance was created without a name.
	ErrAffordanceNameEmpty = errors.New("hypermedia: affordance name must not be empty")

	// ErrAffordanceInputKind indicates the affordance input is not a struct type.
	ErrAffordanceInputKind = errors.New("hypermedia: affordance input must be a struct")
)
