package jsexpr

import (
	"io"

	"github.com/tdewolff/parse/v2/js"
)

// arrowExpr prints an arrow function whose body is a single return as
// params => value, where the printer would write a multi-line block.
type arrowExpr struct {
	js.IExpr
	fn  *js.ArrowFunc
	ret *js.ReturnStmt
}

func (a *arrowExpr) JS(w io.Writer) {
	if a.fn.Async {
		io.WriteString(w, "async ")
	}
	a.fn.Params.JS(w)
	io.WriteString(w, " => ")
	if _, ok := a.ret.Value.(*js.ObjectExpr); ok {
		io.WriteString(w, "(")
		a.ret.Value.JS(w)
		io.WriteString(w, ")")
		return
	}
	a.ret.Value.JS(w)
}

// flattener swaps arrow functions for arrowExpr in place before printing.
// restore puts the original nodes back so the tree stays walkable.
type flattener struct {
	slots []slot
}

type slot struct {
	at   *js.IExpr
	orig js.IExpr
}

func (f *flattener) wrap(at *js.IExpr) {
	fn, ok := (*at).(*js.ArrowFunc)
	if !ok || len(fn.Body.List) != 1 {
		return
	}
	ret, ok := fn.Body.List[0].(*js.ReturnStmt)
	if !ok || ret.Value == nil {
		return
	}
	f.slots = append(f.slots, slot{at: at, orig: fn})
	*at = &arrowExpr{IExpr: fn, fn: fn, ret: ret}
}

func (f *flattener) restore() {
	for i := len(f.slots) - 1; i >= 0; i-- {
		*f.slots[i].at = f.slots[i].orig
	}
	f.slots = nil
}

// Enter implements js.IVisitor.
func (f *flattener) Enter(n js.INode) js.IVisitor {
	switch n := n.(type) {
	case *arrowExpr:
		js.Walk(f, n.fn)
		return nil
	case *js.ExprStmt:
		f.wrap(&n.Value)
	case *js.ReturnStmt:
		f.wrap(&n.Value)
	case *js.GroupExpr:
		f.wrap(&n.X)
	case *js.Arg:
		f.wrap(&n.Value)
	case *js.Element:
		f.wrap(&n.Value)
	case *js.Property:
		f.wrap(&n.Value)
	case *js.BinaryExpr:
		f.wrap(&n.X)
		f.wrap(&n.Y)
	case *js.CondExpr:
		f.wrap(&n.X)
		f.wrap(&n.Y)
	case *js.CommaExpr:
		for i := range n.List {
			f.wrap(&n.List[i])
		}
	case *js.BindingElement:
		f.wrap(&n.Default)
	}
	return f
}

// Exit implements js.IVisitor.
func (f *flattener) Exit(js.INode) {}
