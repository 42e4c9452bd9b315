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
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"rivaas.dev/hypermedia/internal/inflect"
)

// Affordance describes an action that can be performed on a resource: the
// HTTP method, the target URI and the shape of the expected input. Media
// types with form support (HAL-FORMS) render affordances as templates.
type Affordance struct {
	// Name identifies the affordance within the resource.
	Name string

	// Method is the HTTP method of the action.
	Method string

	// Target is the URI the action is submitted to. Empty means the
	// resource's self link.
	Target string

	// InputType is the Go type describing the expected request body.
	InputType reflect.Type

	// Properties describe the input fields, derived from struct tags.
	Properties []AffordanceProperty
}

// AffordanceProperty describes one input field of an affordance.
//
// Properties are derived by reflection from the input struct:
//
//   - the json tag supplies the wire name (fields tagged "-" are skipped)
//   - validate:"required" (or a required:"true" tag) marks it required
//   - a regex tag supplies a validation pattern
//   - readonly:"true" marks it read-only
//   - the doc tag supplies the human prompt
//   - a non-zero field value on the input instance pre-fills Value
type AffordanceProperty struct {
	Name     string
	Required bool
	ReadOnly bool
	Regex    string
	Prompt   string
	Value    string
}

// NewAffordance creates an affordance with an explicit name.
//
// The input may be nil for body-less actions (e.g. DELETE). Returns
// [ErrAffordanceNameEmpty] or [ErrAffordanceInputKind] on invalid input.
//
// Example:
//
//	aff, err := hypermedia.NewAffordance("updateUser", http.MethodPut, "/users/42", UpdateUserInput{})
func NewAffordance(name, method, target string, input any) (Affordance, error) {
	if strings.TrimSpace(name) == "" {
		return Affordance{}, ErrAffordanceNameEmpty
	}

	a := Affordance{
		Name:   name,
		Method: strings.ToUpper(method),
		Target: target,
	}
	if input == nil {
		return a, nil
	}

	v := reflect.ValueOf(input)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v = reflect.New(v.Type().Elem()).Elem()
			continue
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return Affordance{}, fmt.Errorf("%w: %s", ErrAffordanceInputKind, v.Kind())
	}

	a.InputType = v.Type()
	a.Properties = introspectProperties(v)

	return a, nil
}

// AffordanceFor creates an affordance whose name is derived from the method
// and target, mirroring semantic operation naming:
//
//   - POST /users        -> createUser
//   - PUT /users/42      -> replaceUser
//   - DELETE /users/42   -> deleteUser
func AffordanceFor(method, target string, input any) (Affordance, error) {
	return NewAffordance(affordanceName(method, target), method, target, input)
}

// MustAffordance creates an affordance and panics on error. Intended for
// inputs known at compile time.
func MustAffordance(name, method, target string, input any) Affordance {
	a, err := NewAffordance(name, method, target, input)
	if err != nil {
		panic(err)
	}

	return a
}

// introspectProperties derives affordance properties from the fields of an
// input struct value. Field values of the instance pre-fill Value.
func introspectProperties(v reflect.Value) []AffordanceProperty {
	var props []AffordanceProperty

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			props = append(props, introspectProperties(v.Field(i))...)
			continue
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}

		p := AffordanceProperty{
			Name:   name,
			Regex:  f.Tag.Get("regex"),
			Prompt: f.Tag.Get("doc"),
		}
		if v := f.Tag.Get("validate"); v != "" {
			for _, rule := range strings.Split(v, ",") {
				if rule == "required" {
					p.Required = true
					break
				}
			}
		}
		if f.Tag.Get("required") == "true" {
			p.Required = true
		}
		if f.Tag.Get("readonly") == "true" {
			p.ReadOnly = true
		}
		if fv := v.Field(i); isScalarKind(fv.Kind()) && !fv.IsZero() {
			p.Value = fmt.Sprint(fv.Interface())
		}

		props = append(props, p)
	}

	return props
}

// affordanceName builds a semantic name from HTTP method and target path,
// e.g. POST /users -> createUser.
func affordanceName(method, target string) string {
	verb := methodVerb(method)

	segments := strings.Split(strings.Trim(target, "/"), "/")
	var parts []string
	for _, seg := range segments {
		if seg == "" || strings.ContainsAny(seg, "{:") || isNumeric(seg) {
			// Path parameters and identifiers do not contribute to the name.
			continue
		}
		parts = append(parts, inflect.Capitalize(inflect.Singularize(seg)))
	}
	if len(parts) == 0 {
		return verb
	}

	return verb + strings.Join(parts, "")
}

// isScalarKind reports whether a field kind has a meaningful single-string
// form for pre-filled property values.
func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// methodVerb converts an HTTP method to its semantic verb.
func methodVerb(method string) string {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return "get"
	case http.MethodPost:
		return "create"
	case http.MethodPut:
		return "replace"
	case http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	default:
		return strings.ToLower(method)
	}
}
