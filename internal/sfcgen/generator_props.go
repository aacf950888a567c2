package sfcgen

import (
	"strings"

	"github.com/grindlemire/go-sfc/internal/jsexpr"
)

// renderProps renders the attribute list as an object literal in source
// order, or "" when there is nothing to pass.
func (g *generator) renderProps(elem *ElementNode, component bool) (string, error) {
	var entries []string
	for _, attr := range elem.StartingTag.Attributes {
		switch a := attr.(type) {
		case *RegularAttribute:
			entries = append(entries, objectKey(a.Name)+": "+jsString(a.Value))
		case *DirectiveAttribute:
			lowered, err := g.renderDirective(a, elem, component)
			if err != nil {
				return "", err
			}
			entries = append(entries, lowered...)
		}
	}
	if len(entries) == 0 {
		return "", nil
	}
	return "{ " + strings.Join(entries, ", ") + " }", nil
}

// renderDirective lowers one directive into zero or more object entries.
func (g *generator) renderDirective(dir *DirectiveAttribute, elem *ElementNode, component bool) ([]string, error) {
	pos := elem.Position
	switch dir.Name {
	case "slot":
		return nil, nil

	case "bind":
		value, err := g.rewriteValue(dir, pos)
		if err != nil {
			return nil, err
		}
		if dir.Argument == "" {
			return []string{"..." + value}, nil
		}
		key, err := g.directiveKey(dir, pos, func(arg string) string {
			if hasModifier(dir, "camel") {
				return camelize(arg)
			}
			return arg
		})
		if err != nil {
			return nil, err
		}
		return []string{key + ": " + value}, nil

	case "on":
		return g.renderHandler(dir, pos)

	case "model":
		return g.renderModel(dir, elem, component)
	}

	// any other directive is passed through under its long name
	value := "true"
	if strings.TrimSpace(dir.Value) != "" {
		var err error
		if value, err = g.rewrite(dir.Value, pos); err != nil {
			return nil, err
		}
	}
	name := "v-" + dir.Name
	if dir.Argument != "" && !dir.DynamicArgument {
		name += ":" + dir.Argument
	}
	return []string{jsString(name) + ": " + value}, nil
}

func (g *generator) rewriteValue(dir *DirectiveAttribute, pos Position) (string, error) {
	if strings.TrimSpace(dir.Value) == "" {
		return "", NewErrorf(InvalidExpression, pos, "%s requires a value", dir.RawName)
	}
	return g.rewrite(dir.Value, pos)
}

// directiveKey returns the object key for a directive argument. Dynamic
// arguments become computed keys.
func (g *generator) directiveKey(dir *DirectiveAttribute, pos Position, static func(string) string) (string, error) {
	if dir.DynamicArgument {
		expr, err := g.rewrite(dir.Argument, pos)
		if err != nil {
			return "", err
		}
		return "[" + expr + "]", nil
	}
	return objectKey(static(dir.Argument)), nil
}

// event option modifiers are encoded in the handler key
var eventOptionModifiers = map[string]bool{"once": true, "capture": true, "passive": true}

// modifiers handled by withModifiers; anything else is a key filter
var systemModifiers = map[string]bool{
	"stop": true, "prevent": true, "self": true,
	"ctrl": true, "shift": true, "alt": true, "meta": true, "exact": true,
	"left": true, "middle": true, "right": true,
}

// renderHandler lowers v-on. Paths and functions are passed as the handler
// directly; inline code is wrapped in a function of $event.
func (g *generator) renderHandler(dir *DirectiveAttribute, pos Position) ([]string, error) {
	if strings.TrimSpace(dir.Value) == "" {
		return nil, NewErrorf(InvalidExpression, pos, "%s requires a handler", dir.RawName)
	}
	e, err := jsexpr.ParseHandler(dir.Value)
	if err != nil {
		return nil, g.exprError(err, pos)
	}
	inline := !e.IsPath() && !e.IsFunction()
	code := jsexpr.Rewrite(e, g.qualifier)

	if dir.Argument == "" {
		return []string{"..." + g.helper("toHandlers") + "(" + code + ")"}, nil
	}

	handler := code
	switch {
	case e.IsStatement():
		handler = "$event => { " + code + " }"
	case inline:
		handler = "$event => (" + code + ")"
	}

	var system, keys, options []string
	for _, m := range dir.Modifiers {
		switch {
		case eventOptionModifiers[m]:
			options = append(options, m)
		case systemModifiers[m]:
			system = append(system, m)
		default:
			keys = append(keys, m)
		}
	}
	if len(system) > 0 {
		handler = g.helper("withModifiers") + "(" + handler + ", " + stringArray(system) + ")"
	}
	if len(keys) > 0 {
		handler = g.helper("withKeys") + "(" + handler + ", " + stringArray(keys) + ")"
	}

	var key string
	if dir.DynamicArgument {
		arg, err := g.rewrite(dir.Argument, pos)
		if err != nil {
			return nil, err
		}
		key = "[" + g.helper("toHandlerKey") + "(" + arg + ")]"
	} else {
		name := "on" + capitalize(camelize(dir.Argument))
		for _, o := range options {
			name += capitalize(o)
		}
		key = objectKey(name)
	}
	return []string{key + ": " + handler}, nil
}

// renderModel lowers v-model into a value prop and an update handler.
// Components use the modelValue protocol; elements bind value and listen
// for input.
func (g *generator) renderModel(dir *DirectiveAttribute, elem *ElementNode, component bool) ([]string, error) {
	pos := elem.Position
	value, err := g.rewriteValue(dir, pos)
	if err != nil {
		return nil, err
	}
	if component {
		prop := "modelValue"
		if dir.Argument != "" {
			prop = camelize(dir.Argument)
		}
		return []string{
			objectKey(prop) + ": " + value,
			objectKey("onUpdate:"+prop) + ": $event => ((" + value + ") = $event)",
		}, nil
	}

	prop, event, source := "value", "onInput", "$event.target.value"
	if typ, _ := elem.StartingTag.Attr("type"); typ == "checkbox" || typ == "radio" {
		prop, event, source = "checked", "onChange", "$event.target.checked"
	} else if elem.StartingTag.TagName == "select" {
		event = "onChange"
	}
	if hasModifier(dir, "lazy") {
		event = "onChange"
	}
	if hasModifier(dir, "number") {
		source = "Number(" + source + ")"
	} else if hasModifier(dir, "trim") {
		source = source + ".trim()"
	}
	return []string{
		prop + ": " + value,
		event + ": $event => ((" + value + ") = " + source + ")",
	}, nil
}

func hasModifier(dir *DirectiveAttribute, name string) bool {
	for _, m := range dir.Modifiers {
		if m == name {
			return true
		}
	}
	return false
}

// objectKey quotes name unless it is a valid identifier.
func objectKey(name string) string {
	if isIdentifier(name) {
		return name
	}
	return jsString(name)
}

func stringArray(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = jsString(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// camelize turns kebab-case into camelCase: "update-value" => "updateValue".
func camelize(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	var sb strings.Builder
	upper := false
	for _, r := range s {
		if r == '-' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		sb.WriteRune(r)
	}
	return sb.String()
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}
