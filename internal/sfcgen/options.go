package sfcgen

// ScopeMode selects how free identifiers in template expressions are
// qualified.
type ScopeMode int

const (
	// ScopeBindings qualifies every free identifier by where the component
	// declares it: $setup, $props, $data, $options, or _ctx.
	ScopeBindings ScopeMode = iota
	// ScopeMembers only qualifies member bases against _ctx and leaves bare
	// identifiers alone.
	ScopeMembers
)

func (m ScopeMode) String() string {
	if m == ScopeMembers {
		return "members"
	}
	return "bindings"
}

// WhitespaceMode controls how template text is emitted.
type WhitespaceMode int

const (
	// WhitespaceCondense drops whitespace-only text that spans lines and
	// collapses runs of whitespace to one space. Text inside <pre> is kept.
	WhitespaceCondense WhitespaceMode = iota
	// WhitespacePreserve emits text exactly as written.
	WhitespacePreserve
)

func (m WhitespaceMode) String() string {
	if m == WhitespacePreserve {
		return "preserve"
	}
	return "condense"
}

// DefaultRuntime is the module render helpers are imported from.
const DefaultRuntime = "vue"

// Options configures one compilation. The zero value is usable.
type Options struct {
	// CustomElement decides which unknown tags are native custom elements.
	// Nil means NoCustomElements.
	CustomElement CustomElementPolicy

	// Runtime is the module the render helpers are imported from.
	Runtime string

	Scope      ScopeMode
	Whitespace WhitespaceMode

	// StrictBlocks rejects repeated <template> or <script> blocks.
	StrictBlocks bool
}

func (o Options) withDefaults() Options {
	if o.CustomElement == nil {
		o.CustomElement = NoCustomElements{}
	}
	if o.Runtime == "" {
		o.Runtime = DefaultRuntime
	}
	return o
}
