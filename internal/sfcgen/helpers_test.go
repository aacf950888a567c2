package sfcgen

import (
	"strings"
	"testing"
)

func el(tag string, attrs []HTMLAttribute, children ...Node) *ElementNode {
	return &ElementNode{
		StartingTag: StartingTag{TagName: tag, Attributes: attrs},
		Children:    children,
		Position:    Position{Line: 1, Column: 1},
	}
}

func attrs(list ...HTMLAttribute) []HTMLAttribute { return list }

func text(s string) *TextNode { return &TextNode{Text: s} }

func interp(s string) *DynamicExpression { return &DynamicExpression{Expr: s} }

func comment(s string) *CommentNode { return &CommentNode{Text: s} }

func reg(name, value string) *RegularAttribute {
	return &RegularAttribute{Name: name, Value: value, HasValue: true}
}

func flag(name string) *RegularAttribute { return &RegularAttribute{Name: name} }

func dir(name, arg, value string, modifiers ...string) *DirectiveAttribute {
	return &DirectiveAttribute{Name: name, Argument: arg, Value: value, Modifiers: modifiers, RawName: "v-" + name}
}

func template(children ...Node) *ElementNode { return el("template", nil, children...) }

func script(content string, list ...HTMLAttribute) *ElementNode {
	return el("script", list, text(content))
}

func mustCompile(t *testing.T, blocks []Node, opts Options) string {
	t.Helper()
	out, err := Compile(blocks, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func assertNotContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if strings.Contains(out, want) {
			t.Errorf("output should not contain %q:\n%s", want, out)
		}
	}
}
