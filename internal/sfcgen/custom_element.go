package sfcgen

import (
	"fmt"
	"regexp"
)

// CustomElementPolicy decides which non-intrinsic tags are native custom
// elements rather than components. It is fixed once per compile.
// Implementations: NoCustomElements, ExactCustomElement, PatternCustomElement.
type CustomElementPolicy interface {
	matches(tag string) bool
}

// NoCustomElements treats every unknown tag as a component.
type NoCustomElements struct{}

// ExactCustomElement matches exactly one tag name.
type ExactCustomElement string

// PatternCustomElement matches tags containing a match of a regular expression.
type PatternCustomElement struct {
	re *regexp.Regexp
}

// NewPatternCustomElement compiles expr into a PatternCustomElement policy.
func NewPatternCustomElement(expr string) (PatternCustomElement, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return PatternCustomElement{}, fmt.Errorf("invalid custom element pattern %q: %w", expr, err)
	}
	return PatternCustomElement{re: re}, nil
}

// MustPatternCustomElement is like NewPatternCustomElement but panics on an invalid pattern.
func MustPatternCustomElement(expr string) PatternCustomElement {
	p, err := NewPatternCustomElement(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (NoCustomElements) matches(string) bool { return false }

func (e ExactCustomElement) matches(tag string) bool { return tag == string(e) }

func (p PatternCustomElement) matches(tag string) bool {
	return p.re != nil && p.re.MatchString(tag)
}

// String returns the pattern source.
func (p PatternCustomElement) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// IsComponent reports whether tag refers to a user component: it is neither an
// intrinsic tag nor matched by the custom element policy.
func IsComponent(policy CustomElementPolicy, tag string) bool {
	if IsHTMLTag(tag) {
		return false
	}
	if policy != nil && policy.matches(tag) {
		return false
	}
	return true
}
