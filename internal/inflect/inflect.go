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

// Package inflect provides the small English inflection helpers used for
// relation name derivation.
package inflect

import "strings"

// irregulars maps irregular singular nouns to their plural forms.
var irregulars = map[string]string{
	"person":   "people",
	"child":    "children",
	"foot":     "feet",
	"tooth":    "teeth",
	"goose":    "geese",
	"man":      "men",
	"woman":    "women",
	"mouse":    "mice",
	"datum":    "data",
	"medium":   "media",
	"index":    "indices",
	"matrix":   "matrices",
	"vertex":   "vertices",
	"analysis": "analyses",
	"basis":    "bases",
	"status":   "statuses",
}

// uncountables are nouns with identical singular and plural forms.
var uncountables = map[string]struct{}{
	"equipment":   {},
	"information": {},
	"money":       {},
	"news":        {},
	"series":      {},
	"species":     {},
	"software":    {},
	"metadata":    {},
}

// Pluralize returns the plural form of a singular English noun.
//
// Case of the first letter is preserved for irregular nouns; suffix rules
// operate on the word as given.
func Pluralize(word string) string {
	if word == "" {
		return word
	}

	lower := strings.ToLower(word)
	if _, ok := uncountables[lower]; ok {
		return word
	}
	if plural, ok := irregulars[lower]; ok {
		return matchCase(word, plural)
	}

	switch {
	case strings.HasSuffix(lower, "y") && len(word) > 1 && !isVowel(lower[len(lower)-2]):
		return word[:len(word)-1] + "ies" // category -> categories
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"), strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "sh"):
		return word + "es" // box -> boxes, match -> matches
	case strings.HasSuffix(lower, "f"):
		return word[:len(word)-1] + "ves" // shelf -> shelves
	case strings.HasSuffix(lower, "fe"):
		return word[:len(word)-2] + "ves" // knife -> knives
	default:
		return word + "s"
	}
}

// Singularize returns the singular form of a plural English noun.
func Singularize(word string) string {
	if word == "" {
		return word
	}

	lower := strings.ToLower(word)
	if _, ok := uncountables[lower]; ok {
		return word
	}
	for singular, plural := range irregulars {
		if lower == plural {
			return matchCase(word, singular)
		}
	}

	switch {
	case strings.HasSuffix(lower, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y" // cities -> city
	case strings.HasSuffix(lower, "ves") && len(word) > 3:
		return word[:len(word)-3] + "f" // shelves -> shelf
	case strings.HasSuffix(lower, "ches"), strings.HasSuffix(lower, "shes"),
		strings.HasSuffix(lower, "xes"), strings.HasSuffix(lower, "zes"),
		strings.HasSuffix(lower, "ses"):
		return word[:len(word)-2] // boxes -> box, classes -> class
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		return word[:len(word)-1] // users -> user
	default:
		return word
	}
}

// Capitalize upper-cases the first letter of a word.
func Capitalize(word string) string {
	if word == "" {
		return word
	}

	return strings.ToUpper(word[:1]) + word[1:]
}

// Uncapitalize lower-cases the first letter of a word.
func Uncapitalize(word string) string {
	if word == "" {
		return word
	}

	return strings.ToLower(word[:1]) + word[1:]
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}

	return false
}

// matchCase copies the capitalization of the first letter of src onto word.
func matchCase(src, word string) string {
	if src == "" || word == "" {
		return word
	}
	if src[0] >= 'A' && src[0] <= 'Z' {
		return Capitalize(word)
	}

	return word
}
