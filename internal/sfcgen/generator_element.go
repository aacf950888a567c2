package sfcgen

import (
	"strings"

	"github.com/grindlemire/go-sfc/internal/jsexpr"
)

// renderElement renders an element as a vnode creation call. At the root
// the block variants are used so the call can follow _openBlock().
func (g *generator) renderElement(elem *ElementNode, root bool) (string, error) {
	tag := &elem.StartingTag
	if IsComponent(g.opts.CustomElement, tag.TagName) {
		return g.renderComponent(elem, root)
	}

	create := "createElementVNode"
	if root {
		create = "createElementBlock"
	}
	fn := g.helper(create)

	if tag.TagName == "pre" {
		g.inPre++
		defer func() { g.inPre-- }()
	}

	props, err := g.renderProps(elem, false)
	if err != nil {
		return "", err
	}
	children, err := g.renderChildren(elem.Children)
	if err != nil {
		return "", err
	}
	return call(fn, jsString(tag.TagName), props, children), nil
}

// renderComponent renders a component call. Its children become slot
// functions instead of a child array.
func (g *generator) renderComponent(elem *ElementNode, root bool) (string, error) {
	create := "createVNode"
	if root {
		create = "createBlock"
	}
	ref := g.component(elem.StartingTag.TagName)
	fn := g.helper(create)

	props, err := g.renderProps(elem, true)
	if err != nil {
		return "", err
	}
	slots, err := g.renderSlots(elem)
	if err != nil {
		return "", err
	}
	return call(fn, ref, props, slots), nil
}

// call formats fn(tag, props, children), dropping trailing empty arguments.
func call(fn, tag, props, children string) string {
	args := []string{tag}
	switch {
	case children != "":
		if props == "" {
			props = "null"
		}
		args = append(args, props, children)
	case props != "":
		args = append(args, props)
	}
	return fn + "(" + strings.Join(args, ", ") + ")"
}

// renderChildren renders a child array, or "" when nothing is rendered.
// Static element children are hoisted unless already inside a hoisted
// subtree.
func (g *generator) renderChildren(children []Node) (string, error) {
	g.indent++
	var items []string
	for _, child := range children {
		item, err := g.renderChild(child)
		if err != nil {
			g.indent--
			return "", err
		}
		if item != "" {
			items = append(items, item)
		}
	}
	g.indent--

	if len(items) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("[\n")
	for i, item := range items {
		sb.WriteString(g.pad(g.indent + 1))
		sb.WriteString(item)
		if i < len(items)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(g.pad(g.indent))
	sb.WriteByte(']')
	return sb.String(), nil
}

func (g *generator) renderChild(node Node) (string, error) {
	switch n := node.(type) {
	case *ElementNode:
		if !g.inHoist && g.canBeHoisted(n) {
			return g.hoistElement(n)
		}
		return g.renderElement(n, false)

	case *TextNode:
		text := g.text(n.Text)
		if text == "" {
			return "", nil
		}
		return g.helper("createTextVNode") + "(" + jsString(text) + ")", nil

	case *DynamicExpression:
		expr, err := g.rewrite(n.Expr, n.Position)
		if err != nil {
			return "", err
		}
		return g.helper("createTextVNode") + "(" + g.helper("toDisplayString") + "(" + expr + "), 1 /* TEXT */)", nil

	case *CommentNode:
		return g.helper("createCommentVNode") + "(" + jsString(n.Text) + ")", nil
	}
	return "", nil
}

// hoistElement renders a static subtree once at module level and returns
// the identifier that replaces it.
func (g *generator) hoistElement(elem *ElementNode) (string, error) {
	savedIndent, savedPre := g.indent, g.inPre
	g.indent, g.inHoist = 0, true
	expr, err := g.renderElement(elem, false)
	g.indent, g.inPre, g.inHoist = savedIndent, savedPre, false
	if err != nil {
		return "", err
	}
	return g.registerHoist(expr), nil
}

// text applies the whitespace mode to template text. An empty result means
// the node is dropped.
func (g *generator) text(s string) string {
	if g.opts.Whitespace == WhitespacePreserve || g.inPre > 0 {
		return s
	}
	if strings.TrimSpace(s) == "" {
		if strings.ContainsAny(s, "\n\r") {
			return ""
		}
		return " "
	}
	return condense(s)
}

// condense collapses every run of whitespace into a single space.
func condense(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !space {
				sb.WriteByte(' ')
			}
			space = true
		default:
			sb.WriteRune(r)
			space = false
		}
	}
	return sb.String()
}

// renderSlots renders the children of a component as a slots object.
// A v-slot on the component itself scopes all children to that slot;
// otherwise <template v-slot:name> children become named slots and the
// rest the default slot.
func (g *generator) renderSlots(elem *ElementNode) (string, error) {
	type slot struct {
		name     *DirectiveAttribute // nil for the implicit default slot
		children []Node
	}

	var slots []slot
	if dir := slotDirective(&elem.StartingTag); dir != nil {
		slots = append(slots, slot{name: dir, children: elem.Children})
	} else {
		var rest []Node
		var named []slot
		for _, child := range elem.Children {
			if tmpl, ok := child.(*ElementNode); ok && tmpl.StartingTag.TagName == "template" {
				if dir := slotDirective(&tmpl.StartingTag); dir != nil {
					named = append(named, slot{name: dir, children: tmpl.Children})
					continue
				}
			}
			rest = append(rest, child)
		}
		if hasContent(rest) {
			slots = append(slots, slot{children: rest})
		}
		slots = append(slots, named...)
	}
	if len(slots) == 0 {
		return "", nil
	}

	g.indent++
	var entries []string
	for _, s := range slots {
		entry, err := g.renderSlot(s.name, s.children, elem.Position)
		if err != nil {
			g.indent--
			return "", err
		}
		entries = append(entries, entry)
	}
	entries = append(entries, "_: 1 /* STABLE */")
	g.indent--

	var sb strings.Builder
	sb.WriteString("{\n")
	for i, entry := range entries {
		sb.WriteString(g.pad(g.indent + 1))
		sb.WriteString(entry)
		if i < len(entries)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(g.pad(g.indent))
	sb.WriteByte('}')
	return sb.String(), nil
}

// renderSlot renders one "name: _withCtx((params) => [...])" entry.
func (g *generator) renderSlot(dir *DirectiveAttribute, children []Node, pos Position) (string, error) {
	key := "default"
	params := ""
	if dir != nil {
		params = strings.TrimSpace(dir.Value)
		switch {
		case dir.DynamicArgument:
			expr, err := g.rewrite(dir.Argument, pos)
			if err != nil {
				return "", err
			}
			key = "[" + expr + "]"
		case dir.Argument != "":
			key = objectKey(dir.Argument)
		}
	}

	if params != "" {
		names, err := jsexpr.ParamNames(params)
		if err != nil {
			return "", g.exprError(err, pos)
		}
		restore := g.withLocals(names)
		defer restore()
	}

	body, err := g.renderChildren(children)
	if err != nil {
		return "", err
	}
	if body == "" {
		body = "[]"
	}
	return key + ": " + g.helper("withCtx") + "((" + params + ") => " + body + ")", nil
}

func slotDirective(tag *StartingTag) *DirectiveAttribute {
	for _, attr := range tag.Attributes {
		if dir, ok := attr.(*DirectiveAttribute); ok && dir.Name == "slot" {
			return dir
		}
	}
	return nil
}

func hasContent(nodes []Node) bool {
	for _, n := range nodes {
		switch n := n.(type) {
		case *TextNode:
			if strings.TrimSpace(n.Text) != "" {
				return true
			}
		case *CommentNode:
		default:
			return true
		}
	}
	return false
}

// withLocals makes names resolve to slot parameters until restore is called.
func (g *generator) withLocals(names []string) (restore func()) {
	saved := g.qualifier
	locals := make(map[string]bool, len(names))
	for _, name := range names {
		locals[name] = true
	}
	g.qualifier = scopedQualifier{Qualifier: saved, locals: locals}
	return func() { g.qualifier = saved }
}

// scopedQualifier leaves names bound by an enclosing slot untouched.
type scopedQualifier struct {
	jsexpr.Qualifier
	locals map[string]bool
}

func (q scopedQualifier) Qualify(name string, memberBase bool) string {
	if q.locals[name] {
		return ""
	}
	return q.Qualifier.Qualify(name, memberBase)
}
