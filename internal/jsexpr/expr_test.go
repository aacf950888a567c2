package jsexpr

import (
	"errors"
	"testing"
)

func TestRewrite_MemberQualifier(t *testing.T) {
	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"bare identifier untouched": {
			input: "a",
			want:  "a",
		},
		"member base qualified": {
			input: "a.b",
			want:  "_ctx.a.b",
		},
		"chain qualified once": {
			input: "a.b.c",
			want:  "_ctx.a.b.c",
		},
		"call on member": {
			input: "user.name.trim()",
			want:  "_ctx.user.name.trim()",
		},
		"argument member": {
			input: "format(item.price)",
			want:  "format(_ctx.item.price)",
		},
		"globals are not special": {
			input: "Math.max(a.b, 1)",
			want:  "_ctx.Math.max(_ctx.a.b, 1)",
		},
		"index base qualified key untouched": {
			input: "list[i].label",
			want:  "_ctx.list[i].label",
		},
		"qualified index base ends the chain": {
			input: "a[b.c]",
			want:  "_ctx.a[b.c]",
		},
		"index key visited when base is a chain": {
			input: "foo.bar.baz[test.keks]",
			want:  "_ctx.foo.bar.baz[_ctx.test.keks]",
		},
		"event parameter untouched": {
			input: "save($event.target.value)",
			want:  "save($event.target.value)",
		},
		"arrow parameter is bound": {
			input: "x => x.y",
			want:  "(x) => x.y",
		},
		"arrow body free member": {
			input: "(x) => cfg.scale * x",
			want:  "(x) => _ctx.cfg.scale * x",
		},
		"binary both sides": {
			input: "'Hello ' + user.first",
			want:  "'Hello ' + _ctx.user.first",
		},
		"conditional": {
			input: "ok ? a.x : b.y",
			want:  "ok ? _ctx.a.x : _ctx.b.y",
		},
		"optional chaining": {
			input: "user?.name",
			want:  "_ctx.user?.name",
		},
		"object literal": {
			input: "{ id: item.id, active }",
			want:  "{id: _ctx.item.id, active}",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := RewriteString(tt.input, MemberQualifier{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRewrite_MemberQualifierObject(t *testing.T) {
	got, err := RewriteString("a.b", MemberQualifier{Object: "this"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "this.a.b" {
		t.Errorf("got %q, want %q", got, "this.a.b")
	}
}

func TestRewrite_BindingQualifier(t *testing.T) {
	q := BindingQualifier{Bindings: Bindings{
		"count":  BindingSetup,
		"title":  BindingProps,
		"msg":    BindingData,
		"double": BindingOptions,
	}}

	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"setup binding": {
			input: "count + 1",
			want:  "$setup.count + 1",
		},
		"prop member base": {
			input: "title.toUpperCase()",
			want:  "$props.title.toUpperCase()",
		},
		"data binding": {
			input: "msg",
			want:  "$data.msg",
		},
		"options binding": {
			input: "double",
			want:  "$options.double",
		},
		"unknown goes to ctx": {
			input: "other",
			want:  "_ctx.other",
		},
		"globals untouched": {
			input: "Math.round(count)",
			want:  "Math.round($setup.count)",
		},
		"event untouched": {
			input: "$event.target.value",
			want:  "$event.target.value",
		},
		"shorthand property expanded": {
			input: "{ msg }",
			want:  "{msg: $data.msg}",
		},
		"computed key": {
			input: "{ [msg]: true }",
			want:  "{[$data.msg]: true}",
		},
		"index key qualified": {
			input: "rows[count]",
			want:  "_ctx.rows[$setup.count]",
		},
		"index key member qualified": {
			input: "rows[msg.id]",
			want:  "_ctx.rows[$data.msg.id]",
		},
		"template literal": {
			input: "`n=${count}`",
			want:  "`n=${$setup.count}`",
		},
		"unary": {
			input: "!msg",
			want:  "!$data.msg",
		},
		"array": {
			input: "[title, 1]",
			want:  "[$props.title, 1]",
		},
		"assignment": {
			input: "msg = 'x'",
			want:  "$data.msg = 'x'",
		},
		"arrow parameter shadows binding": {
			input: "(count) => count",
			want:  "(count) => count",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := RewriteString(tt.input, q)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRewrite_NestedArrowKeepsParameters(t *testing.T) {
	got, err := RewriteString("items.map(i => i.name)", BindingQualifier{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "_ctx.items.map((i) => i.name)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRewrite_NestedArrowExpressionBody(t *testing.T) {
	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"argument": {
			input: "items.map(i => i.x)",
			want:  "_ctx.items.map((i) => i.x)",
		},
		"arrow inside arrow": {
			input: "rows.filter(r => r.tags.some(t => t == sel.id))",
			want:  "_ctx.rows.filter((r) => r.tags.some((t) => t == _ctx.sel.id))",
		},
		"curried": {
			input: "a => b => a + b",
			want:  "(a) => (b) => a + b",
		},
		"object literal body": {
			input: "list.map(x => ({ id: x }))",
			want:  "_ctx.list.map((x) => ({id: x}))",
		},
		"single return block": {
			input: "list.map(x => { return x })",
			want:  "_ctx.list.map((x) => x)",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := RewriteString(tt.input, MemberQualifier{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpr_StringLeavesTreeWalkable(t *testing.T) {
	e, err := Parse("items.map(i => i.x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := e.String(), "items.map((i) => i.x)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	want := "_ctx.items.map((i) => i.x)"
	if got := Rewrite(e, MemberQualifier{}); got != want {
		t.Errorf("Rewrite after String = %q, want %q", got, want)
	}
	if got := e.String(); got != want {
		t.Errorf("second String() = %q, want %q", got, want)
	}
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		input string
	}

	tests := map[string]tc{
		"dangling operator": {input: "a +"},
		"escaping group":    {input: "a) + (b"},
		"empty":             {input: ""},
		"statement":         {input: "if (a) b"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if serr.Source != tt.input {
				t.Errorf("Source = %q, want %q", serr.Source, tt.input)
			}
		})
	}
}

func TestParse_TrailingLineComment(t *testing.T) {
	got, err := RewriteString("a.b // note", MemberQualifier{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "_ctx.a.b" {
		t.Errorf("got %q", got)
	}
}

func TestParseHandler(t *testing.T) {
	type tc struct {
		input         string
		want          string
		wantStatement bool
		wantPath      bool
		wantFunction  bool
	}

	tests := map[string]tc{
		"method path": {
			input:    "save",
			want:     "_ctx.save",
			wantPath: true,
		},
		"member path": {
			input:    "form.submit",
			want:     "_ctx.form.submit",
			wantPath: true,
		},
		"inline call": {
			input: "save(item)",
			want:  "_ctx.save(_ctx.item)",
		},
		"arrow": {
			input:        "() => save()",
			want:         "() => _ctx.save()",
			wantFunction: true,
		},
		"increment": {
			input: "count++",
			want:  "_ctx.count++",
		},
		"statements": {
			input:         "count++; save()",
			want:          "_ctx.count++; _ctx.save();",
			wantStatement: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, err := ParseHandler(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.IsStatement() != tt.wantStatement {
				t.Errorf("IsStatement() = %v, want %v", e.IsStatement(), tt.wantStatement)
			}
			if e.IsPath() != tt.wantPath {
				t.Errorf("IsPath() = %v, want %v", e.IsPath(), tt.wantPath)
			}
			if e.IsFunction() != tt.wantFunction {
				t.Errorf("IsFunction() = %v, want %v", e.IsFunction(), tt.wantFunction)
			}
			if got := Rewrite(e, BindingQualifier{}); got != tt.want {
				t.Errorf("Rewrite() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseHandler_RejectsImport(t *testing.T) {
	_, err := ParseHandler("import x from 'y'")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
