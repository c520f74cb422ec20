// Package match implements the `...`-wildcard address matcher: each
// template is a fully anchored pattern where the literal substring "..."
// stands for "zero or more arbitrary characters" and every other
// character matches literally.
package match

import (
	"regexp"
	"strings"
)

const wildcard = "..."

// Template compiles a single address template into an anchored matcher.
type Template struct {
	raw string
	re  *regexp.Regexp
}

// Compile turns a template string into a Template ready to match addresses.
func Compile(pattern string) (*Template, error) {
	parts := strings.Split(pattern, wildcard)
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = regexp.QuoteMeta(p)
	}
	anchored := "^" + strings.Join(quoted, ".*") + "$"
	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, err
	}
	return &Template{raw: pattern, re: re}, nil
}

// Match reports whether addr satisfies the template.
func (t *Template) Match(addr string) bool {
	return t.re.MatchString(addr)
}

// String returns the original template text.
func (t *Template) String() string {
	return t.raw
}

// CompileAll compiles every pattern, returning the first compile error.
func CompileAll(patterns []string) ([]*Template, error) {
	out := make([]*Template, 0, len(patterns))
	for _, p := range patterns {
		tmpl, err := Compile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, tmpl)
	}
	return out, nil
}

// AnyMatch reports whether addr satisfies at least one of templates.
func AnyMatch(templates []*Template, addr string) bool {
	for _, t := range templates {
		if t.Match(addr) {
			return true
		}
	}
	return false
}
