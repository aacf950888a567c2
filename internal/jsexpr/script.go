package jsexpr

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// SetupScript is a <script setup> block split for code generation.
type SetupScript struct {
	Imports  []string // import statements, hoisted to module level
	Body     string   // remaining statements, placed inside setup()
	Bindings []string // top-level names in declaration order
}

// ScriptError reports a script block the JavaScript front end rejected.
type ScriptError struct {
	Message string
	Line    int
	Column  int
}

func (e *ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d", e.Message, e.Line, e.Column)
	}
	return e.Message
}

// AnalyzeSetup splits a setup script into imports, body and bindings.
// For lang "ts" a script the JavaScript parser rejects is split line by
// line instead, which recognizes single-line imports and top-level
// declarations only.
func AnalyzeSetup(src, lang string) (*SetupScript, error) {
	ast, err := js.Parse(parse.NewInputString(src), js.Options{})
	if err != nil {
		if lang == "ts" {
			return analyzeSetupLines(src), nil
		}
		return nil, scriptError(err)
	}

	s := &SetupScript{}
	seen := map[string]bool{}
	bind := func(name []byte) {
		if len(name) == 0 || seen[string(name)] {
			return
		}
		seen[string(name)] = true
		s.Bindings = append(s.Bindings, string(name))
	}

	var body []string
	for _, stmt := range ast.List {
		switch n := stmt.(type) {
		case *js.ImportStmt:
			s.Imports = append(s.Imports, stmtJS(n))
			if n.Default != nil {
				bind(n.Default)
			}
			for _, alias := range n.List {
				bind(alias.Binding)
			}
			continue
		case *js.ExportStmt:
			return nil, &ScriptError{Message: "<script setup> cannot contain export statements"}
		case *js.VarDecl:
			for _, item := range n.List {
				bindingNames(item.Binding, bind)
			}
		case *js.FuncDecl:
			if n.Name != nil {
				bind(n.Name.Data)
			}
		case *js.ClassDecl:
			if n.Name != nil {
				bind(n.Name.Data)
			}
		}
		body = append(body, stmtJS(stmt))
	}
	s.Body = strings.Join(body, "\n")
	return s, nil
}

// bindingNames reports every identifier a binding pattern declares.
func bindingNames(b js.IBinding, fn func([]byte)) {
	switch n := b.(type) {
	case *js.Var:
		fn(n.Data)
	case *js.BindingArray:
		for _, item := range n.List {
			bindingNames(item.Binding, fn)
		}
		bindingNames(n.Rest, fn)
	case *js.BindingObject:
		for _, item := range n.List {
			bindingNames(item.Value.Binding, fn)
		}
		if n.Rest != nil {
			fn(n.Rest.Data)
		}
	}
}

func stmtJS(stmt js.IStmt) string {
	var buf bytes.Buffer
	stmt.JS(&buf)
	if _, ok := stmt.(*js.VarDecl); ok {
		buf.WriteByte(';')
	}
	return buf.String()
}

func scriptError(err error) error {
	if perr, ok := err.(*parse.Error); ok {
		return &ScriptError{Message: perr.Message, Line: perr.Line, Column: perr.Column}
	}
	return &ScriptError{Message: err.Error()}
}

var (
	importLine  = regexp.MustCompile(`^import\s+(?:type\s+)?(.*?)\s*from\s*['"][^'"]+['"];?\s*$`)
	declLine    = regexp.MustCompile(`^(?:export\s+)?(?:declare\s+)?(?:const|let|var|class|enum|(?:async\s+)?function\*?)\s+([A-Za-z_$][\w$]*)`)
	importNames = regexp.MustCompile(`[A-Za-z_$][\w$]*`)
)

func analyzeSetupLines(src string) *SetupScript {
	s := &SetupScript{}
	seen := map[string]bool{}
	bind := func(name string) {
		if !seen[name] {
			seen[name] = true
			s.Bindings = append(s.Bindings, name)
		}
	}

	var body []string
	for _, line := range strings.Split(src, "\n") {
		if m := importLine.FindStringSubmatch(line); m != nil {
			s.Imports = append(s.Imports, strings.TrimSpace(line))
			if !strings.HasPrefix(line, "import type") {
				for _, name := range importClauseNames(m[1]) {
					bind(name)
				}
			}
			continue
		}
		if m := declLine.FindStringSubmatch(line); m != nil {
			bind(m[1])
		}
		body = append(body, line)
	}
	s.Body = strings.TrimSpace(strings.Join(body, "\n"))
	return s
}

// importClauseNames returns the local names of an import clause such as
// "a, { b as c, type d }" or "* as ns".
func importClauseNames(clause string) []string {
	var names []string
	for _, part := range strings.Split(strings.NewReplacer("{", ",", "}", ",").Replace(clause), ",") {
		fields := importNames.FindAllString(part, -1)
		if len(fields) == 0 || fields[0] == "type" {
			continue
		}
		names = append(names, fields[len(fields)-1])
	}
	return names
}

// AnalyzeOptions reads the names an options object exposes: props, data()
// keys, computed, methods and inject. The object is found in
// "export default {...}" or "export default defineComponent({...})".
// Scripts the parser rejects expose nothing.
func AnalyzeOptions(src string) Bindings {
	bindings := Bindings{}
	ast, err := js.Parse(parse.NewInputString(src), js.Options{})
	if err != nil {
		return bindings
	}
	obj := defaultExportObject(ast)
	if obj == nil {
		return bindings
	}
	for _, prop := range obj.List {
		key, ok := propertyKey(prop)
		if !ok {
			continue
		}
		switch key {
		case "props":
			addKeys(bindings, prop.Value, BindingProps)
		case "data":
			if ret := returnedObject(prop.Value); ret != nil {
				addKeys(bindings, ret, BindingData)
			}
		case "computed", "methods", "inject":
			addKeys(bindings, prop.Value, BindingOptions)
		}
	}
	return bindings
}

func defaultExportObject(ast *js.AST) *js.ObjectExpr {
	for _, stmt := range ast.List {
		export, ok := stmt.(*js.ExportStmt)
		if !ok || !export.Default {
			continue
		}
		switch decl := export.Decl.(type) {
		case *js.ObjectExpr:
			return decl
		case *js.CallExpr:
			if len(decl.Args.List) > 0 {
				if obj, ok := decl.Args.List[0].Value.(*js.ObjectExpr); ok {
					return obj
				}
			}
		}
	}
	return nil
}

func propertyKey(prop js.Property) (string, bool) {
	if prop.Spread {
		return "", false
	}
	if prop.Name != nil {
		return literalKey(*prop.Name)
	}
	if method, ok := prop.Value.(*js.MethodDecl); ok {
		return literalKey(method.Name.PropertyName)
	}
	return "", false
}

func literalKey(name js.PropertyName) (string, bool) {
	if name.IsComputed() {
		return "", false
	}
	data := string(name.Literal.Data)
	if name.Literal.TokenType == js.StringToken {
		if s, err := strconv.Unquote(`"` + data[1:len(data)-1] + `"`); err == nil {
			return s, true
		}
		return data[1 : len(data)-1], true
	}
	return data, true
}

// addKeys records the keys of an object literal or the string elements of
// an array literal.
func addKeys(b Bindings, e js.IExpr, typ BindingType) {
	switch n := e.(type) {
	case *js.ObjectExpr:
		for _, prop := range n.List {
			if key, ok := propertyKey(prop); ok {
				b[key] = typ
			}
		}
	case *js.ArrayExpr:
		for _, el := range n.List {
			lit, ok := el.Value.(*js.LiteralExpr)
			if !ok || lit.TokenType != js.StringToken || len(lit.Data) < 2 {
				continue
			}
			b[string(lit.Data[1:len(lit.Data)-1])] = typ
		}
	}
}

// returnedObject finds the object literal a data function returns.
func returnedObject(e js.IExpr) js.IExpr {
	var body *js.BlockStmt
	switch fn := e.(type) {
	case *js.MethodDecl:
		body = &fn.Body
	case *js.FuncDecl:
		body = &fn.Body
	case *js.ArrowFunc:
		body = &fn.Body
	default:
		return nil
	}
	for _, stmt := range body.List {
		ret, ok := stmt.(*js.ReturnStmt)
		if !ok {
			continue
		}
		x := ret.Value
		for {
			group, ok := x.(*js.GroupExpr)
			if !ok {
				break
			}
			x = group.X
		}
		if obj, ok := x.(*js.ObjectExpr); ok {
			return obj
		}
	}
	return nil
}

// FindExportDefault locates the "export default" keywords of a script.
// It returns the byte range covering both keywords. Strings, comments and
// template literals are skipped by the lexer.
func FindExportDefault(src string) (start, end int, ok bool) {
	l := js.NewLexer(parse.NewInputString(src))
	offset := 0
	exportAt := -1
	prev := js.ErrorToken
	for {
		tt, data := l.Next()
		if tt == js.ErrorToken {
			return 0, 0, false
		}
		if (tt == js.DivToken || tt == js.DivEqToken) && regexpAllowed(prev) {
			// RegExp rereads from the slash
			if rt, re := l.RegExp(); rt == js.RegExpToken {
				tt, data = rt, re
			}
		}
		switch tt {
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			offset += len(data)
			continue
		case js.ExportToken:
			exportAt = offset
		case js.DefaultToken:
			if prev == js.ExportToken && exportAt >= 0 {
				return exportAt, offset + len(data), true
			}
		}
		offset += len(data)
		prev = tt
	}
}

// regexpAllowed reports whether a slash after prev starts a regular
// expression rather than a division.
func regexpAllowed(prev js.TokenType) bool {
	switch {
	case prev == js.ErrorToken:
		return true
	case js.IsIdentifier(prev), js.IsNumeric(prev):
		return false
	}
	switch prev {
	case js.StringToken, js.CloseParenToken, js.CloseBracketToken, js.CloseBraceToken,
		js.TemplateToken, js.TemplateEndToken, js.RegExpToken, js.ThisToken,
		js.TrueToken, js.FalseToken, js.NullToken:
		return false
	}
	return true
}

// ParamNames parses text as a function parameter list, such as the value
// of a scoped slot, and returns the names it binds.
func ParamNames(text string) ([]string, error) {
	ast, err := js.Parse(parse.NewInputString("("+text+"\n) => 0"), js.Options{})
	if err != nil {
		return nil, syntaxError(text, err)
	}
	var fn *js.ArrowFunc
	if len(ast.List) == 1 {
		if stmt, ok := ast.List[0].(*js.ExprStmt); ok {
			fn, _ = stmt.Value.(*js.ArrowFunc)
		}
	}
	if fn == nil {
		return nil, &SyntaxError{Source: text, Message: "expected a parameter list"}
	}

	var names []string
	add := func(name []byte) { names = append(names, string(name)) }
	for _, param := range fn.Params.List {
		bindingNames(param.Binding, add)
	}
	bindingNames(fn.Params.Rest, add)
	return names, nil
}
