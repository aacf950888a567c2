package jsexpr

// CtxObject is the render context parameter every unclassified identifier
// is read from.
const CtxObject = "_ctx"

// Qualifier decides which object a free identifier is read from. It
// returns the object name, or "" to leave the identifier alone.
// memberBase is true when the identifier is the base of a member access
// such as foo in foo.bar or foo[0].
type Qualifier interface {
	Qualify(name string, memberBase bool) string
	// QualifyIndexKeys reports whether the key of a[key] is still
	// rewritten once the base a has been qualified.
	QualifyIndexKeys() bool
}

// MemberQualifier qualifies member bases only: foo.bar becomes
// _ctx.foo.bar while a bare foo is left unchanged. Globals are not
// special-cased, so Math.max becomes _ctx.Math.max. A qualified chain is
// final: in a[b.c] only a is qualified. $event is the handler parameter
// and is never qualified.
type MemberQualifier struct {
	Object string // defaults to CtxObject
}

// Qualify implements Qualifier.
func (q MemberQualifier) Qualify(name string, memberBase bool) string {
	if !memberBase || name == "$event" {
		return ""
	}
	if q.Object == "" {
		return CtxObject
	}
	return q.Object
}

// QualifyIndexKeys implements Qualifier.
func (MemberQualifier) QualifyIndexKeys() bool { return false }

// BindingType is where the component exposes a name to the render function.
type BindingType int

const (
	BindingUnknown BindingType = iota
	BindingSetup               // top-level binding of <script setup>
	BindingProps               // declared prop
	BindingData                // key returned by data()
	BindingOptions             // computed, methods and inject keys
)

func (b BindingType) String() string {
	switch b {
	case BindingSetup:
		return "setup"
	case BindingProps:
		return "props"
	case BindingData:
		return "data"
	case BindingOptions:
		return "options"
	}
	return "unknown"
}

// Object returns the render function parameter that holds bindings of
// this type.
func (b BindingType) Object() string {
	switch b {
	case BindingSetup:
		return "$setup"
	case BindingProps:
		return "$props"
	case BindingData:
		return "$data"
	case BindingOptions:
		return "$options"
	}
	return CtxObject
}

// Bindings maps top-level names to their binding type.
type Bindings map[string]BindingType

// Merge copies other into b. Existing entries win, so setup bindings
// added first shadow option keys of the same name.
func (b Bindings) Merge(other Bindings) {
	for name, typ := range other {
		if _, ok := b[name]; !ok {
			b[name] = typ
		}
	}
}

// BindingQualifier qualifies every free identifier, bare or member base,
// by its binding type. Unknown names go to _ctx. JavaScript globals and
// $event are left untouched.
type BindingQualifier struct {
	Bindings Bindings
}

// Qualify implements Qualifier.
func (q BindingQualifier) Qualify(name string, _ bool) string {
	if name == "$event" || IsGlobal(name) {
		return ""
	}
	return q.Bindings[name].Object()
}

// QualifyIndexKeys implements Qualifier. Keys are expressions of their own
// and resolve like any other identifier.
func (BindingQualifier) QualifyIndexKeys() bool { return true }

var globals = map[string]bool{
	"Infinity": true, "undefined": true, "NaN": true,
	"isFinite": true, "isNaN": true, "parseFloat": true, "parseInt": true,
	"decodeURI": true, "decodeURIComponent": true,
	"encodeURI": true, "encodeURIComponent": true,
	"Math": true, "Number": true, "Date": true, "Array": true, "Object": true,
	"Boolean": true, "String": true, "RegExp": true, "Map": true, "Set": true,
	"JSON": true, "Intl": true, "BigInt": true, "console": true, "Error": true,
	"Symbol": true,
}

// IsGlobal reports whether name is a JavaScript global that templates
// may use directly.
func IsGlobal(name string) bool {
	return globals[name]
}
