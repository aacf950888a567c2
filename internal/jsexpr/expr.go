// Package jsexpr parses the JavaScript embedded in component files and
// rewrites free identifiers so they resolve against the render context.
package jsexpr

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// SyntaxError reports an expression the JavaScript front end rejected.
// Line and Column are relative to the expression text.
type SyntaxError struct {
	Source  string
	Message string
	Line    int
	Column  int
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid expression %q: %s at %d:%d", e.Source, e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("invalid expression %q: %s", e.Source, e.Message)
}

// Expr is a parsed template expression. It is either a single expression
// or, for event handlers, a list of statements.
type Expr struct {
	src   string
	group *js.GroupExpr
	stmts []js.IStmt
}

// Parse parses text as a single JavaScript expression.
func Parse(text string) (*Expr, error) {
	group, err := parseGroup(text)
	if err != nil {
		return nil, err
	}
	return &Expr{src: text, group: group}, nil
}

// ParseHandler parses an event handler. The text is tried as an expression
// first and then as a statement list, so "count++; save()" is accepted.
func ParseHandler(text string) (*Expr, error) {
	group, err := parseGroup(text)
	if err == nil {
		return &Expr{src: text, group: group}, nil
	}
	ast, serr := js.Parse(parse.NewInputString(text), js.Options{})
	if serr != nil {
		// the expression error usually points closer to the mistake
		return nil, err
	}
	var stmts []js.IStmt
	for _, stmt := range ast.List {
		switch stmt.(type) {
		case *js.ImportStmt, *js.ExportStmt:
			return nil, &SyntaxError{Source: text, Message: "import and export are not allowed in a handler"}
		case *js.EmptyStmt, *js.Comment:
			continue
		}
		stmts = append(stmts, stmt)
	}
	if len(stmts) == 0 {
		return nil, &SyntaxError{Source: text, Message: "empty handler"}
	}
	return &Expr{src: text, stmts: stmts}, nil
}

// parseGroup wraps text in parentheses so that object literals and comma
// lists parse as expressions. The closing parenthesis goes on its own line
// so a trailing line comment cannot swallow it.
func parseGroup(text string) (*js.GroupExpr, error) {
	ast, err := js.Parse(parse.NewInputString("("+text+"\n)"), js.Options{})
	if err != nil {
		return nil, syntaxError(text, err)
	}
	if len(ast.List) == 1 {
		if stmt, ok := ast.List[0].(*js.ExprStmt); ok {
			if group, ok := stmt.Value.(*js.GroupExpr); ok {
				return group, nil
			}
		}
	}
	return nil, &SyntaxError{Source: text, Message: "expected a single expression"}
}

func syntaxError(text string, err error) error {
	var perr *parse.Error
	if !errors.As(err, &perr) {
		return &SyntaxError{Source: text, Message: err.Error()}
	}
	line, col := perr.Line, perr.Column
	if line == 1 && col > 1 {
		col-- // opening parenthesis
	}
	return &SyntaxError{Source: text, Message: perr.Message, Line: line, Column: col}
}

// Source returns the text the expression was parsed from.
func (e *Expr) Source() string { return e.src }

// IsStatement reports whether the expression was parsed as a statement list.
func (e *Expr) IsStatement() bool { return e.group == nil }

// IsPath reports whether the expression is an identifier or a member chain
// such as a.b or a[0].c.
func (e *Expr) IsPath() bool {
	if e.group == nil {
		return false
	}
	x := e.group.X
	for {
		switch n := x.(type) {
		case *js.Var:
			return true
		case *js.DotExpr:
			if n.Optional {
				return false
			}
			x = n.X
		case *js.IndexExpr:
			if n.Optional {
				return false
			}
			x = n.X
		default:
			return false
		}
	}
}

// IsFunction reports whether the expression is an arrow function or a
// function expression.
func (e *Expr) IsFunction() bool {
	if e.group == nil {
		return false
	}
	switch e.group.X.(type) {
	case *js.ArrowFunc, *js.FuncDecl:
		return true
	}
	return false
}

// String serializes the current state of the tree. Arrow functions that
// only return an expression print with an expression body at any depth.
func (e *Expr) String() string {
	f := &flattener{}
	defer f.restore()

	var buf bytes.Buffer
	if e.group != nil {
		f.wrap(&e.group.X)
		js.Walk(f, e.group.X)
		e.group.X.JS(&buf)
		return buf.String()
	}
	for i, stmt := range e.stmts {
		js.Walk(f, stmt)
		if i > 0 {
			buf.WriteByte(' ')
		}
		stmt.JS(&buf)
		if _, ok := stmt.(*js.VarDecl); ok {
			buf.WriteByte(';')
		}
	}
	return buf.String()
}

// Rewrite qualifies the free identifiers of e using q and returns the
// serialized result. The tree is modified in place; qualified bases are
// marked declared so a second rewrite leaves them alone.
func Rewrite(e *Expr, q Qualifier) string {
	r := &rewriter{q: q}
	if e.group != nil {
		// the group itself is the parent of a bare top-level identifier
		js.Walk(r, e.group)
	} else {
		for _, stmt := range e.stmts {
			js.Walk(r, stmt)
		}
	}
	return e.String()
}

// RewriteString parses text as an expression and rewrites it.
func RewriteString(text string, q Qualifier) (string, error) {
	e, err := Parse(text)
	if err != nil {
		return "", err
	}
	return Rewrite(e, q), nil
}

type rewriter struct {
	q Qualifier
}

// Enter implements js.IVisitor. Member bases are handled on the member
// node itself; bare identifiers are replaced through the field of their
// parent that holds them.
func (r *rewriter) Enter(n js.INode) js.IVisitor {
	switch n := n.(type) {
	case *js.DotExpr:
		if name, ok := freeName(n.X); ok {
			if obj := r.q.Qualify(name, true); obj != "" {
				n.X = member(obj, name)
			}
			return nil
		}
	case *js.IndexExpr:
		if name, ok := freeName(n.X); ok {
			if obj := r.q.Qualify(name, true); obj != "" {
				n.X = member(obj, name)
				if !r.q.QualifyIndexKeys() {
					return nil
				}
			}
		}
		n.Y = r.bare(n.Y)
	case *js.ExprStmt:
		n.Value = r.bare(n.Value)
	case *js.ReturnStmt:
		n.Value = r.bare(n.Value)
	case *js.IfStmt:
		n.Cond = r.bare(n.Cond)
	case *js.GroupExpr:
		n.X = r.bare(n.X)
	case *js.CallExpr:
		n.X = r.bare(n.X)
	case *js.NewExpr:
		n.X = r.bare(n.X)
	case *js.Arg:
		n.Value = r.bare(n.Value)
	case *js.UnaryExpr:
		n.X = r.bare(n.X)
	case *js.BinaryExpr:
		n.X = r.bare(n.X)
		n.Y = r.bare(n.Y)
	case *js.CondExpr:
		n.Cond = r.bare(n.Cond)
		n.X = r.bare(n.X)
		n.Y = r.bare(n.Y)
	case *js.CommaExpr:
		for i := range n.List {
			n.List[i] = r.bare(n.List[i])
		}
	case *js.Element:
		n.Value = r.bare(n.Value)
	case *js.Property:
		if n.Init == nil {
			n.Value = r.bare(n.Value)
		}
	case *js.PropertyName:
		n.Computed = r.bare(n.Computed)
	case *js.TemplateExpr:
		n.Tag = r.bare(n.Tag)
	case *js.TemplatePart:
		n.Expr = r.bare(n.Expr)
	case *js.BindingElement:
		n.Default = r.bare(n.Default)
	}
	return r
}

// Exit implements js.IVisitor.
func (r *rewriter) Exit(js.INode) {}

func (r *rewriter) bare(e js.IExpr) js.IExpr {
	name, ok := freeName(e)
	if !ok {
		return e
	}
	if obj := r.q.Qualify(name, false); obj != "" {
		return member(obj, name)
	}
	return e
}

// freeName returns the name of e if it is an identifier not declared
// inside the expression itself.
func freeName(e js.IExpr) (string, bool) {
	v, ok := e.(*js.Var)
	if !ok || v == nil {
		return "", false
	}
	for v.Link != nil {
		v = v.Link
	}
	if v.Decl != js.NoDecl {
		return "", false
	}
	return string(v.Data), true
}

// member builds obj.name. The object is marked as declared so the walk
// never qualifies it again.
func member(obj, name string) *js.DotExpr {
	return &js.DotExpr{
		X: &js.Var{Data: []byte(obj), Decl: js.ArgumentDecl},
		Y: &js.LiteralExpr{TokenType: js.IdentifierToken, Data: []byte(name)},
	}
}
