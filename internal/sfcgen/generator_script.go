package sfcgen

import (
	"strings"

	"github.com/grindlemire/go-sfc/internal/jsexpr"
)

// mergeScripts produces the declaration of __sfc__, the component object
// the render function is attached to. The legacy script supplies the
// object; the setup script becomes its setup() function. It also returns
// the bindings both scripts expose to the template.
func (g *generator) mergeScripts(legacy, setup *Script) (string, jsexpr.Bindings, error) {
	bindings := jsexpr.Bindings{}

	var setupFn string
	var imports []string
	if setup != nil {
		analyzed, err := jsexpr.AnalyzeSetup(setup.Content, setup.Lang)
		if err != nil {
			return "", nil, NewErrorWithHint(InvalidExpression, setup.Pos,
				"invalid <script setup>: "+err.Error(), "imports and declarations must be valid JavaScript")
		}
		for _, name := range analyzed.Bindings {
			bindings[name] = jsexpr.BindingSetup
		}
		imports = analyzed.Imports
		setupFn = setupFunction(analyzed)
	}

	var sb strings.Builder
	switch {
	case legacy == nil && setup == nil:
		sb.WriteString("const __sfc__ = {}")

	case setup == nil:
		bindings.Merge(jsexpr.AnalyzeOptions(legacy.Content))
		sb.WriteString(spliceDefault(legacy.Content, "__sfc__"))

	case legacy == nil:
		writeLines(&sb, imports)
		sb.WriteString("const __sfc__ = {\n")
		sb.WriteString(setupFn)
		sb.WriteString("\n}")

	default:
		bindings.Merge(jsexpr.AnalyzeOptions(legacy.Content))
		sb.WriteString(spliceDefault(legacy.Content, "__default__"))
		sb.WriteString("\n\n")
		writeLines(&sb, imports)
		sb.WriteString("const __sfc__ = /*#__PURE__*/Object.assign(__default__, {\n")
		sb.WriteString(setupFn)
		sb.WriteString("\n})")
	}
	return sb.String(), bindings, nil
}

// spliceDefault replaces "export default" in a legacy script with a
// declaration of name. A script without a default export is kept and
// followed by an empty object.
func spliceDefault(src, name string) string {
	src = strings.TrimSpace(src)
	start, end, ok := jsexpr.FindExportDefault(src)
	if !ok {
		return src + "\nconst " + name + " = {}"
	}
	return src[:start] + "const " + name + " =" + src[end:]
}

// setupFunction renders the setup() member that runs the setup script body
// and returns its bindings.
func setupFunction(s *jsexpr.SetupScript) string {
	var sb strings.Builder
	sb.WriteString(indentUnit + "setup(__props, { expose: __expose }) {\n")
	sb.WriteString(indentUnit + indentUnit + "__expose();\n")
	for _, line := range strings.Split(s.Body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sb.WriteString(indentUnit + indentUnit)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if len(s.Bindings) == 0 {
		sb.WriteString(indentUnit + indentUnit + "return {}\n")
	} else {
		sb.WriteString(indentUnit + indentUnit + "return { ")
		sb.WriteString(strings.Join(s.Bindings, ", "))
		sb.WriteString(" }\n")
	}
	sb.WriteString(indentUnit + "}")
	return sb.String()
}

func writeLines(sb *strings.Builder, lines []string) {
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
