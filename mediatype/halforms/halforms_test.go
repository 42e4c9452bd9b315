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

package halforms

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/hypermedia"
	"rivaas.dev/hypermedia/mediatype/hal"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type updateUserInput struct {
	Name  string `json:"name" validate:"required" doc:"Full name"`
	Email string `json:"email" regex:"^[^@]+@[^@]+$"`
}

func TestRenderer_Marshal(t *testing.T) {
	t.Parallel()

	renderer := MustNew()

	t.Run("affordances render under _templates", func(t *testing.T) {
		t.Parallel()
		entity := hypermedia.NewEntity(user{ID: 42, Name: "Ada"},
			hypermedia.NewSelfLink("/users/42"),
		)
		entity.AddAffordances(
			hypermedia.MustAffordance("updateUser", http.MethodPut, "/users/42", updateUserInput{}),
			hypermedia.MustAffordance("deleteUser", http.MethodDelete, "/users/42", nil),
		)

		doc, err := renderer.Marshal(entity)
		require.NoError(t, err)

		ja := jsonassert.New(t)
		ja.Assertf(string(doc), `{
			"_links": {"self": {"href": "/users/42"}},
			"id": 42,
			"name": "Ada",
			"_templates": {
				"default": {
					"title": "updateUser",
					"method": "PUT",
					"contentType": "application/json",
					"target": "/users/42",
					"properties": [
						{"name": "name", "prompt": "Full name", "required": true},
						{"name": "email", "regex": "^[^@]+@[^@]+$"}
					]
				},
				"deleteUser": {
					"title": "deleteUser",
					"method": "DELETE",
					"target": "/users/42",
					"properties": []
				}
			}
		}`)
	})

	t.Run("pre-filled input values render on properties", func(t *testing.T) {
		t.Parallel()
		entity := hypermedia.NewEntity(user{ID: 42, Name: "Ada"},
			hypermedia.NewSelfLink("/users/42"),
		)
		entity.AddAffordances(
			hypermedia.MustAffordance("updateUser", http.MethodPut, "/users/42", updateUserInput{
				Name: "Ada",
			}),
		)

		doc, err := renderer.Marshal(entity)
		require.NoError(t, err)

		ja := jsonassert.New(t)
		ja.Assertf(string(doc), `{
			"_links": "<<PRESENCE>>",
			"id": 42,
			"name": "Ada",
			"_templates": {
				"default": {
					"title": "updateUser",
					"method": "PUT",
					"contentType": "application/json",
					"target": "/users/42",
					"properties": [
						{"name": "name", "prompt": "Full name", "required": true, "value": "Ada"},
						{"name": "email", "regex": "^[^@]+@[^@]+$"}
					]
				}
			}
		}`)
	})

	t.Run("resource without affordances renders plain HAL", func(t *testing.T) {
		t.Parallel()
		entity := hypermedia.NewEntity(user{ID: 1}, hypermedia.NewSelfLink("/users/1"))

		doc, err := renderer.Marshal(entity)
		require.NoError(t, err)
		assert.NotContains(t, string(doc), "_templates")
	})

	t.Run("hal options apply to the underlying rendering", func(t *testing.T) {
		t.Parallel()
		curied := MustNew(hal.WithCuries(
			hypermedia.MustNewCurieProvider("ex", "https://example.com/rels/{rel}"),
		))
		entity := hypermedia.NewEntity(user{ID: 1},
			hypermedia.NewSelfLink("/users/1"),
			hypermedia.NewLink("/users/1/orders", "orders"),
		)

		doc, err := curied.Marshal(entity)
		require.NoError(t, err)
		assert.Contains(t, string(doc), `"ex:orders"`)
	})

	t.Run("nil resource", func(t *testing.T) {
		t.Parallel()
		_, err := renderer.Marshal(nil)
		require.ErrorIs(t, err, hal.ErrNilResource)
	})
}

func TestRenderer_Write(t *testing.T) {
	t.Parallel()

	renderer := MustNew()
	entity := hypermedia.NewEntity(user{ID: 42, Name: "Ada"},
		hypermedia.NewSelfLink("/users/42"),
	)
	entity.AddAffordances(
		hypermedia.MustAffordance("updateUser", http.MethodPut, "/users/42", updateUserInput{}),
	)

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.Write(rec, http.StatusOK, entity))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MediaType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"_templates"`)
}
