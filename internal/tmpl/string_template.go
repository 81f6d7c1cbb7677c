// Package tmpl splits template strings into literal text and ${name}
// placeholders.
package tmpl

import (
	"fmt"
	"strings"
)

// Fragment is either a run of literal text or the contents of one ${...}
// placeholder.
type Fragment struct {
	value      string
	isVariable bool
}

// Value returns the literal text or the placeholder contents.
func (f *Fragment) Value() string { return f.value }

// IsVariable reports whether the fragment came from a placeholder.
func (f *Fragment) IsVariable() bool { return f.isVariable }

// Template is a parsed template string.
type Template struct {
	value     string
	fragments []*Fragment
}

// Value returns the original input.
func (t *Template) Value() string { return t.value }

// Fragments returns the parsed fragments in order.
func (t *Template) Fragments() []*Fragment { return t.fragments }

// Variables returns the placeholder contents in order of appearance.
func (t *Template) Variables() []string {
	var names []string
	for _, f := range t.fragments {
		if f.isVariable {
			names = append(names, f.value)
		}
	}
	return names
}

// Parse splits s on ${...} placeholders. A "$" not followed by "{" is
// literal text. An unterminated placeholder is an error.
func Parse(s string) (*Template, error) {
	t := &Template{value: s}
	rest := s
	for rest != "" {
		start := strings.Index(rest, "${")
		if start < 0 {
			t.fragments = append(t.fragments, &Fragment{value: rest})
			break
		}
		if start > 0 {
			t.fragments = append(t.fragments, &Fragment{value: rest[:start]})
		}
		rest = rest[start+2:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, fmt.Errorf("missing '}' in template: %s", s)
		}
		t.fragments = append(t.fragments, &Fragment{value: rest[:end], isVariable: true})
		rest = rest[end+1:]
	}
	return t, nil
}
