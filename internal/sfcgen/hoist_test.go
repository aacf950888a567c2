package sfcgen

import "testing"

func TestCanBeHoisted(t *testing.T) {
	type tc struct {
		policy CustomElementPolicy
		node   Node
		want   bool
	}

	tests := map[string]tc{
		"static subtree": {
			node: el("div", attrs(reg("class", "a")), el("span", nil, text("text"))),
			want: true,
		},
		"plain text": {
			node: text("hello"),
			want: true,
		},
		"directive": {
			node: el("button", attrs(dir("bind", "disabled", "isDisabled")), text("text")),
			want: false,
		},
		"interpolation child": {
			node: el("span", nil, interp("text")),
			want: false,
		},
		"nested dynamic child": {
			node: el("ul", nil, el("li", nil, el("b", nil, interp("x")))),
			want: false,
		},
		"comment": {
			node: comment(" note "),
			want: false,
		},
		"comment child": {
			node: el("div", nil, comment(" note ")),
			want: false,
		},
		"component": {
			node: el("MyButton", nil, text("go")),
			want: false,
		},
		"static custom element": {
			policy: ExactCustomElement("my-el"),
			node:   el("my-el", attrs(reg("size", "2")), el("span", nil, text("x"))),
			want:   true,
		},
		"component child": {
			node: el("div", nil, el("Icon", nil)),
			want: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := newGenerator(Options{CustomElement: tt.policy})
			if got := g.canBeHoisted(tt.node); got != tt.want {
				t.Errorf("canBeHoisted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegisterHoist(t *testing.T) {
	g := newGenerator(Options{})

	first := g.registerHoist(`_createElementVNode("p")`)
	second := g.registerHoist(`_createElementVNode("p")`)

	if first != "_hoisted_1" || second != "_hoisted_2" {
		t.Fatalf("ids = %q, %q, want _hoisted_1, _hoisted_2", first, second)
	}
	want := `const _hoisted_2 = /*#__PURE__*/ _createElementVNode("p")`
	if g.hoists[1] != want {
		t.Errorf("hoist = %q, want %q", g.hoists[1], want)
	}

	if id := newGenerator(Options{}).registerHoist("x"); id != "_hoisted_1" {
		t.Errorf("new generator starts at %q, want _hoisted_1", id)
	}
}
