package sfcgen

import "testing"

func TestIsHTMLTag(t *testing.T) {
	type tc struct {
		tag  string
		want bool
	}

	tests := map[string]tc{
		"div":              {tag: "div", want: true},
		"button":           {tag: "button", want: true},
		"template":         {tag: "template", want: true},
		"svg root":         {tag: "svg", want: true},
		"camel svg":        {tag: "clipPath", want: true},
		"capitalized div":  {tag: "Div", want: false},
		"component":        {tag: "CustomComponent", want: false},
		"custom element":   {tag: "my-element", want: false},
		"lowercased svg":   {tag: "clippath", want: false},
		"empty":            {tag: "", want: false},
		"non-html keyword": {tag: "frameset2", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IsHTMLTag(tt.tag); got != tt.want {
				t.Errorf("IsHTMLTag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestIsComponent(t *testing.T) {
	type tc struct {
		policy CustomElementPolicy
		tag    string
		want   bool
	}

	tests := map[string]tc{
		"intrinsic tag": {
			policy: NoCustomElements{},
			tag:    "div",
			want:   false,
		},
		"unknown tag without policy": {
			policy: NoCustomElements{},
			tag:    "custom-button",
			want:   true,
		},
		"nil policy": {
			policy: nil,
			tag:    "MyButton",
			want:   true,
		},
		"exact match": {
			policy: ExactCustomElement("my-el"),
			tag:    "my-el",
			want:   false,
		},
		"exact mismatch": {
			policy: ExactCustomElement("my-el"),
			tag:    "my-el2",
			want:   true,
		},
		"pattern match": {
			policy: MustPatternCustomElement("custom-"),
			tag:    "custom-button",
			want:   false,
		},
		"pattern is case sensitive": {
			policy: MustPatternCustomElement("custom-"),
			tag:    "CustomComponent",
			want:   true,
		},
		"intrinsic tag wins over pattern": {
			policy: MustPatternCustomElement("d"),
			tag:    "div",
			want:   false,
		},
		"anchored pattern": {
			policy: MustPatternCustomElement("^ion-"),
			tag:    "my-ion-button",
			want:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IsComponent(tt.policy, tt.tag); got != tt.want {
				t.Errorf("IsComponent(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestNewPatternCustomElement_Invalid(t *testing.T) {
	if _, err := NewPatternCustomElement("("); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	p, err := NewPatternCustomElement("^x-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.String() != "^x-" {
		t.Errorf("String() = %q, want %q", p.String(), "^x-")
	}
}
