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
	"testing"

	"github.com/stretchr/testify/assert"
)

type relUser struct {
	Name string
}

type relCategory struct {
	Label string
}

type relTaggedOrder struct {
	Rel    struct{} `rel:"ex:order,ex:orders"`
	Number string
}

type relInvoice struct {
	Total int
}

func (relInvoice) ItemRelation() LinkRelation       { return "billing:invoice" }
func (relInvoice) CollectionRelation() LinkRelation { return "billing:invoices" }

func TestDefaultRelProvider_Derivation(t *testing.T) {
	t.Parallel()

	p := NewRelProvider()

	tests := []struct {
		name           string
		payload        any
		wantItem       LinkRelation
		wantCollection LinkRelation
	}{
		{
			name:           "type name uncapitalized and pluralized",
			payload:        relUser{},
			wantItem:       "relUser",
			wantCollection: "relUsers",
		},
		{
			name:           "pointer payloads are unwrapped",
			payload:        &relUser{},
			wantItem:       "relUser",
			wantCollection: "relUsers",
		},
		{
			name:           "slice payloads derive from the element type",
			payload:        []relUser{},
			wantItem:       "relUser",
			wantCollection: "relUsers",
		},
		{
			name:           "irregular plural",
			payload:        relCategory{},
			wantItem:       "relCategory",
			wantCollection: "relCategories",
		},
		{
			name:           "rel tag wins over the type name",
			payload:        relTaggedOrder{},
			wantItem:       "ex:order",
			wantCollection: "ex:orders",
		},
		{
			name:           "Relatable wins over everything",
			payload:        relInvoice{},
			wantItem:       "billing:invoice",
			wantCollection: "billing:invoices",
		},
		{
			name:           "unnamed type falls back to resource",
			payload:        struct{ X int }{},
			wantItem:       "resource",
			wantCollection: "resources",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantItem, p.ItemRel(tt.payload))
			assert.Equal(t, tt.wantCollection, p.CollectionRel(tt.payload))
		})
	}
}

func TestDefaultRelProvider_Override(t *testing.T) {
	t.Parallel()

	p := NewRelProvider().Override(relUser{}, "acct:user", "acct:users")

	assert.Equal(t, LinkRelation("acct:user"), p.ItemRel(relUser{}))
	assert.Equal(t, LinkRelation("acct:users"), p.CollectionRel(relUser{}))

	// Override applies regardless of pointer or slice wrapping.
	assert.Equal(t, LinkRelation("acct:user"), p.ItemRel(&relUser{}))
	assert.Equal(t, LinkRelation("acct:users"), p.CollectionRel([]relUser{}))

	// Other types keep derivation.
	assert.Equal(t, LinkRelation("relCategory"), p.ItemRel(relCategory{}))
}
