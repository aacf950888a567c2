package sfcparse

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/grindlemire/go-sfc/internal/sfcgen"
)

// scanTag reads the tag name and attributes from the raw text of a start
// tag, keeping their case.
func scanTag(raw string) (string, []sfcgen.HTMLAttribute) {
	s := &scanner{src: raw, i: 1}
	name := s.name()

	var attrs []sfcgen.HTMLAttribute
	for {
		s.skip(func(c byte) bool { return isSpace(c) || c == '/' })
		if s.done() || s.peek() == '>' {
			break
		}
		attrName := s.name()
		if attrName == "" {
			// stray character such as a lone '='
			s.i++
			continue
		}
		s.skip(isSpace)
		if s.done() || s.peek() != '=' {
			attrs = append(attrs, attribute(attrName, "", false))
			continue
		}
		s.i++
		s.skip(isSpace)
		attrs = append(attrs, attribute(attrName, html.UnescapeString(s.value()), true))
	}
	return name, attrs
}

type scanner struct {
	src string
	i   int
}

func (s *scanner) done() bool { return s.i >= len(s.src) }

func (s *scanner) peek() byte { return s.src[s.i] }

func (s *scanner) skip(fn func(byte) bool) {
	for !s.done() && fn(s.peek()) {
		s.i++
	}
}

// name reads up to whitespace, '/', '>' or '='.
func (s *scanner) name() string {
	start := s.i
	s.skip(func(c byte) bool { return !isSpace(c) && c != '/' && c != '>' && c != '=' })
	return s.src[start:s.i]
}

func (s *scanner) value() string {
	if s.done() {
		return ""
	}
	if q := s.peek(); q == '"' || q == '\'' {
		s.i++
		start := s.i
		s.skip(func(c byte) bool { return c != q })
		v := s.src[start:s.i]
		if !s.done() {
			s.i++
		}
		return v
	}
	start := s.i
	s.skip(func(c byte) bool { return !isSpace(c) && c != '>' })
	return s.src[start:s.i]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// attribute decodes directive syntax:
//
//	v-on:click.stop  => on, "click", [stop]
//	:title           => bind, "title"
//	.value           => bind, "value", [prop]
//	@[event]         => on, dynamic "event"
//	#item            => slot, "item"
//
// Anything else is a regular attribute.
func attribute(name, value string, hasValue bool) sfcgen.HTMLAttribute {
	var dir *sfcgen.DirectiveAttribute
	switch {
	case strings.HasPrefix(name, "v-") && len(name) > 2:
		body := name[2:]
		i := strings.IndexAny(body, ":.")
		switch {
		case i < 0:
			dir = &sfcgen.DirectiveAttribute{Name: body}
		case body[i] == ':':
			dir = &sfcgen.DirectiveAttribute{Name: body[:i]}
			dir.Argument, dir.DynamicArgument, dir.Modifiers = splitArgument(body[i+1:])
		default:
			dir = &sfcgen.DirectiveAttribute{Name: body[:i], Modifiers: splitModifiers(body[i:])}
		}
	case len(name) > 1 && name[0] == ':':
		dir = directive("bind", name[1:])
	case len(name) > 1 && name[0] == '.':
		dir = directive("bind", name[1:])
		dir.Modifiers = append(dir.Modifiers, "prop")
	case len(name) > 1 && name[0] == '@':
		dir = directive("on", name[1:])
	case len(name) > 1 && name[0] == '#':
		dir = directive("slot", name[1:])
	default:
		return &sfcgen.RegularAttribute{Name: name, Value: value, HasValue: hasValue}
	}
	dir.Value = value
	dir.RawName = name
	return dir
}

func directive(name, rest string) *sfcgen.DirectiveAttribute {
	d := &sfcgen.DirectiveAttribute{Name: name}
	d.Argument, d.DynamicArgument, d.Modifiers = splitArgument(rest)
	return d
}

// splitArgument splits "arg.mod1.mod2" or "[expr].mod".
func splitArgument(s string) (arg string, dynamic bool, modifiers []string) {
	if strings.HasPrefix(s, "[") {
		depth := 0
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					return s[1:i], true, splitModifiers(s[i+1:])
				}
			}
		}
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], false, splitModifiers(s[i:])
	}
	return s, false, nil
}

func splitModifiers(s string) []string {
	var mods []string
	for _, m := range strings.Split(s, ".") {
		if m != "" {
			mods = append(mods, m)
		}
	}
	return mods
}
