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
	"slices"
	"strconv"
	"strings"
)

// Values supplies variable bindings for template expansion.
//
// Supported value types are string, fmt.Stringer, integers, floats and bool;
// other types are formatted with fmt.Sprint.
type Values map[string]any

// URITemplate is a parsed RFC 6570 URI template.
//
// The supported expression subset covers levels 1-3 of the RFC: simple
// expansion {var}, reserved expansion {+var}, fragment expansion {#var},
// label expansion {.var}, path segment expansion {/var}, query expansion
// {?var} and query continuation {&var}, each with multi-variable lists.
// Level 4 modifiers (explode, prefix) are not supported.
//
// Templates are immutable after parsing and safe for concurrent use.
type URITemplate struct {
	raw      string
	parts    []templatePart
	varNames []string
}

// templatePart is either a literal (op == 0 and vars == nil) or an
// expression with an operator byte and its variable list.
type templatePart struct {
	literal string
	op      byte
	vars    []string
}

// templateOperators maps expression operators to their prefix and separator.
var templateOperators = map[byte]struct {
	first         string
	sep           string
	named         bool
	allowReserved bool
}{
	opSimple:   {first: "", sep: ",", named: false, allowReserved: false},
	opReserved: {first: "", sep: ",", named: false, allowReserved: true},
	opFragment: {first: "#", sep: ",", named: false, allowReserved: true},
	opLabel:    {first: ".", sep: ".", named: false, allowReserved: false},
	opPath:     {first: "/", sep: "/", named: false, allowReserved: false},
	opQuery:    {first: "?", sep: "&", named: true, allowReserved: false},
	opContinue: {first: "&", sep: "&", named: true, allowReserved: false},
}

const (
	opSimple   byte = 0
	opReserved byte = '+'
	opFragment byte = '#'
	opLabel    byte = '.'
	opPath     byte = '/'
	opQuery    byte = '?'
	opContinue byte = '&'
)

// ParseTemplate parses an RFC 6570 URI template.
//
// Returns [ErrTemplateUnclosed] for an unterminated expression,
// [ErrTemplateEmptyExpression] for "{}" and [ErrTemplateInvalidOperator] for
// operators outside the supported subset.
//
// Example:
//
//	tmpl, err := hypermedia.ParseTemplate("/users{/id}{?expand}")
func ParseTemplate(raw string) (*URITemplate, error) {
	t := &URITemplate{raw: raw}

	for len(raw) > 0 {
		open := strings.IndexByte(raw, '{')
		if open < 0 {
			t.parts = append(t.parts, templatePart{literal: raw})
			break
		}
		if open > 0 {
			t.parts = append(t.parts, templatePart{literal: raw[:open]})
		}
		raw = raw[open+1:]

		closing := strings.IndexByte(raw, '}')
		if closing < 0 {
			return nil, fmt.Errorf("%w: %q", ErrTemplateUnclosed, t.raw)
		}
		expr := raw[:closing]
		raw = raw[closing+1:]

		if expr == "" {
			return nil, fmt.Errorf("%w: %q", ErrTemplateEmptyExpression, t.raw)
		}

		op := opSimple
		switch expr[0] {
		case '+', '#', '.', '/', '?', '&':
			op = expr[0]
			expr = expr[1:]
		case '=', ',', '!', '@', '|', ';':
			// Reserved by the RFC for future extension.
			return nil, fmt.Errorf("%w: %q in %q", ErrTemplateInvalidOperator, string(expr[0]), t.raw)
		}
		if expr == "" {
			return nil, fmt.Errorf("%w: %q", ErrTemplateEmptyExpression, t.raw)
		}

		vars := strings.Split(expr, ",")
		for i, v := range vars {
			vars[i] = strings.TrimSpace(v)
			if vars[i] == "" {
				return nil, fmt.Errorf("%w: %q", ErrTemplateEmptyExpression, t.raw)
			}
		}

		t.parts = append(t.parts, templatePart{op: op, vars: vars})
		for _, v := range vars {
			if !slices.Contains(t.varNames, v) {
				t.varNames = append(t.varNames, v)
			}
		}
	}

	return t, nil
}

// MustParseTemplate parses a URI template and panics on error.
//
// Intended for templates known at compile time:
//
//	var userTemplate = hypermedia.MustParseTemplate("/users{/id}")
func MustParseTemplate(raw string) *URITemplate {
	t, err := ParseTemplate(raw)
	if err != nil {
		panic(err)
	}

	return t
}

// AppendTemplate appends a template expression to a concrete URI.
//
// This is how query and fragment expressions are composed onto hrefs that
// were resolved by a link builder:
//
//	tmpl, err := hypermedia.AppendTemplate("/users", "{?page,size}")
//	// -> /users{?page,size}
func AppendTemplate(uri, expression string) (*URITemplate, error) {
	return ParseTemplate(uri + expression)
}

// IsTemplated reports whether the template contains any expression.
func (t *URITemplate) IsTemplated() bool {
	return len(t.varNames) > 0
}

// VarNames returns the variable names in order of first appearance.
func (t *URITemplate) VarNames() []string {
	out := make([]string, len(t.varNames))
	copy(out, t.varNames)

	return out
}

// String returns the raw template.
func (t *URITemplate) String() string {
	return t.raw
}

// Expand resolves the template with the given values.
//
// Unbound variables are dropped: their value contributes nothing, and
// expressions whose variables are all unbound expand to the empty string.
func (t *URITemplate) Expand(values Values) string {
	return t.expand(values, false)
}

// ExpandPartial resolves the bound variables and keeps the remaining ones in
// template form, so the result is itself a valid template.
//
//	hypermedia.MustParseTemplate("/users{/id}{?expand}").
//	    ExpandPartial(hypermedia.Values{"id": 42})
//	// -> /users/42{?expand}
//
// Partially bound query expressions continue as {&...}; label and path
// expressions split on their separator. Simple, reserved and fragment
// expressions cannot be split without corrupting the separator, so a
// partially bound one is kept whole in template form.
func (t *URITemplate) ExpandPartial(values Values) string {
	return t.expand(values, true)
}

func (t *URITemplate) expand(values Values, partial bool) string {
	var b strings.Builder

	for _, p := range t.parts {
		if p.vars == nil {
			b.WriteString(p.literal)
			continue
		}

		op := templateOperators[p.op]
		var expanded []string
		var unbound []string
		for _, name := range p.vars {
			v, ok := values[name]
			if !ok || v == nil {
				unbound = append(unbound, name)
				continue
			}
			s := valueString(v)
			if op.named {
				expanded = append(expanded, name+"="+escapeValue(s, op.allowReserved))
			} else {
				expanded = append(expanded, escapeValue(s, op.allowReserved))
			}
		}

		if partial && len(unbound) > 0 {
			// Splitting an expression is only sound when expanding the
			// remainder on its own reproduces the separator: label and path
			// (prefix equals separator) and query (continuation operator).
			// Simple, reserved and fragment expressions with mixed bindings
			// are kept whole so the result stays a correct template.
			if len(expanded) > 0 && !splittable(p.op) {
				b.WriteString(expressionString(p))
				continue
			}
			if len(expanded) > 0 {
				b.WriteString(op.first)
				b.WriteString(strings.Join(expanded, op.sep))
			}
			b.WriteByte('{')
			if len(expanded) > 0 && p.op == opQuery {
				b.WriteByte(opContinue)
			} else if p.op != opSimple {
				b.WriteByte(p.op)
			}
			b.WriteString(strings.Join(unbound, ","))
			b.WriteByte('}')
			continue
		}

		if len(expanded) > 0 {
			b.WriteString(op.first)
			b.WriteString(strings.Join(expanded, op.sep))
		}
	}

	return b.String()
}

// splittable reports whether an expression with this operator can be divided
// into an expanded part and a template remainder.
func splittable(op byte) bool {
	switch op {
	case opLabel, opPath, opQuery, opContinue:
		return true
	default:
		return false
	}
}

// expressionString reconstructs the source form of an expression part.
func expressionString(p templatePart) string {
	var b strings.Builder
	b.WriteByte('{')
	if p.op != opSimple {
		b.WriteByte(p.op)
	}
	b.WriteString(strings.Join(p.vars, ","))
	b.WriteByte('}')

	return b.String()
}

// valueString formats a template value.
func valueString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// escapeValue percent-encodes a value for expansion. When allowReserved is
// true (reserved and fragment expansion), reserved URI characters and
// existing percent-escapes pass through unmodified.
func escapeValue(s string, allowReserved bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c):
			b.WriteByte(c)
		case allowReserved && isReserved(c):
			b.WriteByte(c)
		case allowReserved && c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteString(s[i : i+3])
			i += 2
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func isReserved(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}

	return false
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
