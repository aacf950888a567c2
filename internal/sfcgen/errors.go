package sfcgen

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a compilation failure. Callers branch on it.
type ErrorKind int

const (
	// UnsupportedLanguage: a template or script lang attribute is not in the allowed set.
	UnsupportedLanguage ErrorKind = iota + 1
	// MalformedScript: a script block has children but the first one is not text.
	MalformedScript
	// NoContent: neither a template nor a script block was found.
	NoContent
	// EmptyTemplate: the template block produced no renderable root.
	EmptyTemplate
	// InvalidExpression: the expression front end rejected an embedded expression or script.
	InvalidExpression
	// DuplicateBlock: a block appeared twice while StrictBlocks is enabled.
	DuplicateBlock
	// ParseError: the markup parser rejected the source text.
	ParseError
)

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedLanguage:
		return "unsupported language"
	case MalformedScript:
		return "malformed script"
	case NoContent:
		return "no content"
	case EmptyTemplate:
		return "empty template"
	case InvalidExpression:
		return "invalid expression"
	case DuplicateBlock:
		return "duplicate block"
	case ParseError:
		return "parse error"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors for use with errors.Is.
var (
	ErrUnsupportedLanguage = &Error{Kind: UnsupportedLanguage}
	ErrMalformedScript     = &Error{Kind: MalformedScript}
	ErrNoContent           = &Error{Kind: NoContent}
	ErrEmptyTemplate       = &Error{Kind: EmptyTemplate}
	ErrInvalidExpression   = &Error{Kind: InvalidExpression}
	ErrDuplicateBlock      = &Error{Kind: DuplicateBlock}
	ErrParse               = &Error{Kind: ParseError}
)

// Error represents a compilation error with kind, source location and optional hint.
type Error struct {
	Kind    ErrorKind
	Pos     Position
	Message string
	Hint    string // optional suggestion for fixing the error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Pos.Line > 0 {
		sb.WriteString(e.Pos.String())
		sb.WriteString(": ")
	}
	sb.WriteString("error: ")
	if e.Message != "" {
		sb.WriteString(e.Message)
	} else {
		sb.WriteString(e.Kind.String())
	}
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewError creates a new Error with the given kind, position and message.
func NewError(kind ErrorKind, pos Position, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

// NewErrorf creates a new Error with a formatted message.
func NewErrorf(kind ErrorKind, pos Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// NewErrorWithHint creates a new Error with a hint for fixing the error.
func NewErrorWithHint(kind ErrorKind, pos Position, message, hint string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message, Hint: hint}
}

// ErrorList collects errors from several compilations, e.g. one per file.
type ErrorList struct {
	errors []error
}

// NewErrorList creates an empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends an error to the list. Nil errors are ignored.
func (el *ErrorList) Add(err error) {
	if err != nil {
		el.errors = append(el.errors, err)
	}
}

// Len returns the number of errors.
func (el *ErrorList) Len() int {
	return len(el.errors)
}

// HasErrors returns true if there are any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.errors) > 0
}

// Errors returns a copy of the error slice.
func (el *ErrorList) Errors() []error {
	result := make([]error, len(el.errors))
	copy(result, el.errors)
	return result
}

// Err returns nil if the list is empty, otherwise the list itself.
func (el *ErrorList) Err() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// Error implements the error interface, one error per line.
func (el *ErrorList) Error() string {
	lines := make([]string, len(el.errors))
	for i, err := range el.errors {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (el *ErrorList) Unwrap() []error {
	return el.errors
}
