package sfcgen

import (
	"errors"
	"strings"

	"github.com/grindlemire/go-sfc/internal/jsexpr"
)

// indentUnit is one level of indentation in generated code.
const indentUnit = "  "

// generator holds the state of a single compilation. It is created by
// Compile and discarded when Compile returns.
type generator struct {
	opts      Options
	qualifier jsexpr.Qualifier
	indent    int

	// runtime helpers in first-use order
	helpers   []string
	helperSet map[string]bool

	// component tags in first-use order, mapped to their local identifier
	components    []string
	componentVars map[string]string

	hoists []string

	inHoist bool
	inPre   int
}

func newGenerator(opts Options) *generator {
	return &generator{
		opts:          opts.withDefaults(),
		helperSet:     make(map[string]bool),
		componentVars: make(map[string]string),
	}
}

// Compile turns the top-level blocks of a component file into a JavaScript
// module. It fails with an *Error whose Kind tells the caller what went
// wrong; no partial output is returned.
func Compile(blocks []Node, opts Options) (string, error) {
	desc, err := classify(blocks, opts.StrictBlocks)
	if err != nil {
		return "", err
	}

	g := newGenerator(opts)

	script, bindings, err := g.mergeScripts(desc.LegacyScript, desc.SetupScript)
	if err != nil {
		return "", err
	}
	if g.opts.Scope == ScopeMembers {
		g.qualifier = jsexpr.MemberQualifier{}
	} else {
		g.qualifier = jsexpr.BindingQualifier{Bindings: bindings}
	}

	var out strings.Builder
	out.WriteString(script)
	out.WriteString("\n")

	if desc.Template != nil {
		tmpl, err := g.compileTemplate(desc.Template)
		if err != nil {
			return "", err
		}
		out.WriteString("\n")
		out.WriteString(tmpl)
		out.WriteString("\n__sfc__.render = render\n")
	}
	out.WriteString("export default __sfc__\n")
	return out.String(), nil
}

// compileTemplate renders the children of the <template> block and wraps
// the result in the render function, preceded by helper imports and
// hoisted constants.
func (g *generator) compileTemplate(template *ElementNode) (string, error) {
	g.indent++
	expr, err := g.renderRoot(template)
	g.indent--
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, name := range g.helpers {
		sb.WriteString("import { ")
		sb.WriteString(name)
		sb.WriteString(" as _")
		sb.WriteString(name)
		sb.WriteString(" } from ")
		sb.WriteString(jsString(g.opts.Runtime))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, hoist := range g.hoists {
		sb.WriteString(hoist)
		sb.WriteString("\n")
	}
	if len(g.hoists) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("function render(_ctx, _cache, $props, $setup, $data, $options) {\n")
	for _, tag := range g.components {
		sb.WriteString(indentUnit)
		sb.WriteString("const ")
		sb.WriteString(g.componentVars[tag])
		sb.WriteString(" = _resolveComponent(")
		sb.WriteString(jsString(tag))
		sb.WriteString(")\n")
	}
	if len(g.components) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(indentUnit)
	sb.WriteString("return ")
	sb.WriteString(expr)
	sb.WriteString("\n}")
	return sb.String(), nil
}

// renderRoot renders the template content as a block. A single element
// root becomes that element's block; anything else is wrapped in a
// fragment.
func (g *generator) renderRoot(template *ElementNode) (string, error) {
	var roots []Node
	for _, child := range template.Children {
		switch n := child.(type) {
		case *ElementNode, *DynamicExpression:
			roots = append(roots, n)
		case *TextNode:
			if strings.TrimSpace(n.Text) != "" {
				roots = append(roots, n)
			}
		}
	}
	if len(roots) == 0 {
		return "", NewErrorWithHint(EmptyTemplate, template.Position,
			"template has no content to render", "add an element or an interpolation to the <template> block")
	}

	open := g.helper("openBlock") + "(), "
	if elem, ok := roots[0].(*ElementNode); ok && len(roots) == 1 {
		call, err := g.renderElement(elem, true)
		if err != nil {
			return "", err
		}
		return "(" + open + call + ")", nil
	}

	fragment := g.helper("Fragment")
	block := g.helper("createElementBlock")
	children, err := g.renderChildren(roots)
	if err != nil {
		return "", err
	}
	return "(" + open + block + "(" + fragment + ", null, " + children + ", 64 /* STABLE_FRAGMENT */))", nil
}

// helper marks a runtime helper as used and returns its local name.
func (g *generator) helper(name string) string {
	if !g.helperSet[name] {
		g.helperSet[name] = true
		g.helpers = append(g.helpers, name)
	}
	return "_" + name
}

// component returns the local identifier for a component tag, registering
// it on first use.
func (g *generator) component(tag string) string {
	if v, ok := g.componentVars[tag]; ok {
		return v
	}
	g.helper("resolveComponent")
	v := "_component_" + identifierFor(tag)
	g.componentVars[tag] = v
	g.components = append(g.components, tag)
	return v
}

func (g *generator) pad(level int) string {
	return strings.Repeat(indentUnit, level)
}

// rewrite parses and qualifies a template expression.
func (g *generator) rewrite(text string, pos Position) (string, error) {
	e, err := jsexpr.Parse(text)
	if err != nil {
		return "", g.exprError(err, pos)
	}
	return jsexpr.Rewrite(e, g.qualifier), nil
}

func (g *generator) exprError(err error, pos Position) error {
	var serr *jsexpr.SyntaxError
	if errors.As(err, &serr) {
		return NewErrorWithHint(InvalidExpression, pos, serr.Error(), "check the expression syntax")
	}
	return NewError(InvalidExpression, pos, err.Error())
}

// identifierFor maps a tag name to a valid identifier suffix.
func identifierFor(tag string) string {
	var sb strings.Builder
	for i, r := range tag {
		switch {
		case r == '_' || r == '$',
			r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9' && i > 0:
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// jsString quotes s as a double-quoted JavaScript string literal.
func jsString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\u2028':
			sb.WriteString(`\u2028`)
		case '\u2029':
			sb.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				sb.WriteString(`\x`)
				sb.WriteByte("0123456789abcdef"[r>>4])
				sb.WriteByte("0123456789abcdef"[r&0xf])
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// isIdentifier reports whether s can be used as an unquoted object key.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
