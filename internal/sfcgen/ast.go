package sfcgen

import (
	"fmt"
	"strings"
)

// Position represents a source code location for error reporting.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Node is the interface implemented by all markup nodes.
// The set of implementations is closed: *ElementNode, *TextNode,
// *DynamicExpression and *CommentNode.
type Node interface {
	node()         // marker method to ensure type safety
	Pos() Position // returns the source position of the node
}

// ElementKind records how the children of an element were tokenized.
// The compiler preserves it but does not interpret it.
type ElementKind int

const (
	KindNormal ElementKind = iota
	KindVoid
	KindRawText // <script>, <style>
	KindRCData  // <textarea>, <title>
	KindTemplate
)

func (k ElementKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindVoid:
		return "void"
	case KindRawText:
		return "raw-text"
	case KindRCData:
		return "rcdata"
	case KindTemplate:
		return "template"
	}
	return fmt.Sprintf("ElementKind(%d)", int(k))
}

// StartingTag is the opening tag of an element.
type StartingTag struct {
	TagName       string
	Attributes    []HTMLAttribute // source order
	IsSelfClosing bool
	Kind          ElementKind
}

// Attr returns the value of the first regular attribute named name.
// Directives are never matched.
func (t *StartingTag) Attr(name string) (string, bool) {
	for _, attr := range t.Attributes {
		if reg, ok := attr.(*RegularAttribute); ok && reg.Name == name {
			return reg.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether a regular attribute named name is present.
func (t *StartingTag) HasAttr(name string) bool {
	_, ok := t.Attr(name)
	return ok
}

// ElementNode is an element with its children in source order.
type ElementNode struct {
	StartingTag StartingTag
	Children    []Node
	Position    Position
}

// TextNode is literal text between tags.
type TextNode struct {
	Text     string
	Position Position
}

// DynamicExpression is the raw text of an interpolation, without delimiters.
type DynamicExpression struct {
	Expr     string
	Position Position
}

// CommentNode is the body of a markup comment, without delimiters.
type CommentNode struct {
	Text     string
	Position Position
}

func (e *ElementNode) node()         {}
func (e *ElementNode) Pos() Position { return e.Position }

func (t *TextNode) node()         {}
func (t *TextNode) Pos() Position { return t.Position }

func (d *DynamicExpression) node()         {}
func (d *DynamicExpression) Pos() Position { return d.Position }

func (c *CommentNode) node()         {}
func (c *CommentNode) Pos() Position { return c.Position }

// HTMLAttribute is the interface implemented by attributes.
// The set of implementations is closed: *RegularAttribute and *DirectiveAttribute.
type HTMLAttribute interface {
	attribute()
}

// RegularAttribute is a static name="value" pair.
// HasValue is false for boolean attributes such as <script setup>.
type RegularAttribute struct {
	Name     string
	Value    string
	HasValue bool
}

// DirectiveAttribute is a dynamic binding such as :disabled="x", @click="go"
// or v-model="text".
type DirectiveAttribute struct {
	Name            string   // "bind", "on", "model", "slot", ...
	Argument        string   // "disabled" in :disabled, empty when absent
	DynamicArgument bool     // true for :[key]
	Modifiers       []string // "stop", "prevent", ...
	Value           string   // raw expression text
	RawName         string   // attribute name as written in source
}

func (a *RegularAttribute) attribute()   {}
func (a *DirectiveAttribute) attribute() {}

// String returns the directive in its long form, e.g. v-on:click.stop.
func (a *DirectiveAttribute) String() string {
	var sb strings.Builder
	sb.WriteString("v-")
	sb.WriteString(a.Name)
	if a.Argument != "" {
		sb.WriteByte(':')
		if a.DynamicArgument {
			sb.WriteString("[" + a.Argument + "]")
		} else {
			sb.WriteString(a.Argument)
		}
	}
	for _, m := range a.Modifiers {
		sb.WriteByte('.')
		sb.WriteString(m)
	}
	return sb.String()
}
