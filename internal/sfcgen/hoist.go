package sfcgen

import "fmt"

// canBeHoisted reports whether node is fully static: a non-component element
// without directives whose children are all static, or plain text.
// Interpolations and comments are never static.
//
//	<div class="a"><span>text</span></div>  => true
//	<button :disabled="off">text</button>   => false
//	<span>{{ text }}</span>                 => false
func (g *generator) canBeHoisted(node Node) bool {
	switch n := node.(type) {
	case *ElementNode:
		if IsComponent(g.opts.CustomElement, n.StartingTag.TagName) {
			return false
		}
		for _, attr := range n.StartingTag.Attributes {
			if _, ok := attr.(*DirectiveAttribute); ok {
				return false
			}
		}
		for _, child := range n.Children {
			if !g.canBeHoisted(child) {
				return false
			}
		}
		return true
	case *TextNode:
		return true
	case *DynamicExpression, *CommentNode:
		return false
	}
	return false
}

// registerHoist records expr as the next module-level constant and returns
// its identifier. Identifiers count from 1 within one compilation.
func (g *generator) registerHoist(expr string) string {
	id := fmt.Sprintf("_hoisted_%d", len(g.hoists)+1)
	g.hoists = append(g.hoists, fmt.Sprintf("const %s = /*#__PURE__*/ %s", id, expr))
	return id
}
