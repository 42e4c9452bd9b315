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

package hypermedia_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"rivaas.dev/hypermedia"
	"rivaas.dev/hypermedia/client"
	"rivaas.dev/hypermedia/mediatype/hal"
	"rivaas.dev/hypermedia/mediatype/halforms"
	"rivaas.dev/hypermedia/server/muxlink"
)

type apiUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type updateUser struct {
	Name string `json:"name" validate:"required" doc:"Full name"`
}

var _ = Describe("Hypermedia Integration", Label("integration"), func() {
	var (
		server   *httptest.Server
		users    []apiUser
		renderer *hal.Renderer
		forms    *halforms.Renderer
	)

	BeforeEach(func() {
		users = []apiUser{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Grace"}}
		renderer = hal.MustNew()
		forms = halforms.MustNew()

		router := mux.NewRouter()
		builder := muxlink.MustNew(router)

		router.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
			root := hypermedia.NewEntity(struct{}{}, hypermedia.NewSelfLink("/"))
			usersTemplate, err := builder.TemplateFor("users", "page", "size")
			Expect(err).NotTo(HaveOccurred())
			root.AddLinks(usersTemplate.WithRel("users"))

			Expect(renderer.Write(w, http.StatusOK, root)).To(Succeed())
		}).Methods(http.MethodGet).Name("root")

		router.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
			items := make([]*hypermedia.Entity[apiUser], 0, len(users))
			for _, u := range users {
				self, err := builder.LinkTo("user", "id", strconv.Itoa(u.ID))
				Expect(err).NotTo(HaveOccurred())
				items = append(items, hypermedia.NewEntity(u, self))
			}

			page := hypermedia.NewPage(items, hypermedia.PageMetadata{
				Size: 20, Number: 0, TotalElements: int64(len(users)),
			})
			navigation, err := builder.PageLinks("users", page.Metadata)
			Expect(err).NotTo(HaveOccurred())
			page.AddLinks(navigation...)

			Expect(renderer.Write(w, http.StatusOK, page)).To(Succeed())
		}).Methods(http.MethodGet).Name("users")

		router.HandleFunc("/users/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.Atoi(mux.Vars(r)["id"])
			Expect(err).NotTo(HaveOccurred())

			for _, u := range users {
				if u.ID != id {
					continue
				}
				entity := hypermedia.NewEntity(u,
					builder.SelfFromRequest(r),
					hypermedia.NewLink("/users", hypermedia.RelCollection),
				)
				entity.AddAffordances(
					hypermedia.MustAffordance("updateUser", http.MethodPut, r.URL.Path, updateUser{}),
				)

				Expect(forms.Write(w, http.StatusOK, entity)).To(Succeed())
				return
			}
			http.NotFound(w, r)
		}).Methods(http.MethodGet).Name("user")

		server = httptest.NewServer(router)
		DeferCleanup(server.Close)
	})

	Describe("End-to-end traversal", func() {
		It("should navigate from the root to a member resource", func(ctx SpecContext) {
			c := client.MustNew(server.URL, client.WithTracing(false))

			resp, err := c.Follow(ctx,
				client.RelWith("users", hypermedia.Values{"page": 0, "size": 20}),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			page, err := hal.UnmarshalPage[apiUser](renderer, resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(HaveLen(2))
			Expect(page.Metadata.TotalElements).To(BeEquivalentTo(2))

			self, err := page.Items[0].SelfLink()
			Expect(err).NotTo(HaveOccurred())
			Expect(self.Href).To(Equal("/users/1"))
		})

		It("should serve HAL-FORMS templates on member resources", func() {
			resp, err := http.Get(server.URL + "/users/1")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(func() { _ = resp.Body.Close() })

			Expect(resp.Header.Get("Content-Type")).To(Equal(halforms.MediaType))

			var doc struct {
				Name      string `json:"name"`
				Templates map[string]struct {
					Method     string `json:"method"`
					Properties []struct {
						Name     string `json:"name"`
						Required bool   `json:"required"`
					} `json:"properties"`
				} `json:"_templates"`
			}
			Expect(json.NewDecoder(resp.Body).Decode(&doc)).To(Succeed())
			Expect(doc.Name).To(Equal("Ada"))
			Expect(doc.Templates).To(HaveKey("default"))
			Expect(doc.Templates["default"].Method).To(Equal(http.MethodPut))
			Expect(doc.Templates["default"].Properties).To(HaveLen(1))
			Expect(doc.Templates["default"].Properties[0].Name).To(Equal("name"))
			Expect(doc.Templates["default"].Properties[0].Required).To(BeTrue())
		})

		It("should render validated documents under schema validation", func() {
			validated := hal.MustNew(hal.WithValidation(true))

			entity := hypermedia.NewEntity(apiUser{ID: 1, Name: "Ada"},
				hypermedia.NewSelfLink("/users/1"),
			)
			doc, err := validated.Marshal(entity)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(doc)).To(ContainSubstring(`"_links"`))
		})

		It("should fail traversal on a missing relation", func(ctx SpecContext) {
			c := client.MustNew(server.URL, client.WithTracing(false))

			_, err := c.Follow(ctx, client.Rel("orders"))
			Expect(err).To(MatchError(hypermedia.ErrLinkNotFound))
			Expect(err.Error()).To(ContainSubstring(fmt.Sprintf("at %s", server.URL)))
		})
	})
})

func TestHypermediaIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hypermedia Integration Suite")
}
