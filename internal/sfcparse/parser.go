package sfcparse

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/grindlemire/go-sfc/internal/log"
	"github.com/grindlemire/go-sfc/internal/sfcgen"
)

// Parse parses src into its top-level nodes. filename is only used in
// error positions.
func Parse(filename, src string) ([]sfcgen.Node, error) {
	p := newParser(filename, src)
	nodes, err := p.parse()
	if err != nil {
		return nil, err
	}
	log.Parse("%s: %d top-level nodes", filename, len(nodes))
	return nodes, nil
}

type parser struct {
	filename string
	z        *html.Tokenizer
	lines    []int // byte offset of each line start
	offset   int   // byte offset of the next token

	stack []*sfcgen.ElementNode // open elements
	roots []sfcgen.Node
}

func newParser(filename, src string) *parser {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &parser{
		filename: filename,
		z:        html.NewTokenizer(strings.NewReader(src)),
		lines:    lines,
	}
}

func (p *parser) parse() ([]sfcgen.Node, error) {
	for {
		tt := p.z.Next()
		raw := string(p.z.Raw())
		start := p.offset
		p.offset += len(raw)

		switch tt {
		case html.ErrorToken:
			if err := p.z.Err(); err != io.EOF {
				return nil, sfcgen.NewError(sfcgen.ParseError, p.pos(start), err.Error())
			}
			if len(p.stack) > 0 {
				open := p.stack[len(p.stack)-1]
				name := open.StartingTag.TagName
				return nil, sfcgen.NewErrorWithHint(sfcgen.ParseError, open.Position,
					fmt.Sprintf("element <%s> is never closed", name), "add </"+name+">")
			}
			return p.roots, nil

		case html.TextToken:
			p.text(raw, start)

		case html.CommentToken:
			p.append(&sfcgen.CommentNode{Text: string(p.z.Text()), Position: p.pos(start)})

		case html.StartTagToken, html.SelfClosingTagToken:
			p.startTag(raw, start, tt == html.SelfClosingTagToken)

		case html.EndTagToken:
			if err := p.endTag(raw, start); err != nil {
				return nil, err
			}
		}
	}
}

func (p *parser) startTag(raw string, start int, selfClosing bool) {
	name, attrs := scanTag(raw)
	kind := elementKind(name)
	elem := &sfcgen.ElementNode{
		StartingTag: sfcgen.StartingTag{
			TagName:       name,
			Attributes:    attrs,
			IsSelfClosing: selfClosing,
			Kind:          kind,
		},
		Position: p.pos(start),
	}
	p.append(elem)
	if selfClosing || kind == sfcgen.KindVoid {
		return
	}
	p.stack = append(p.stack, elem)
}

func (p *parser) endTag(raw string, start int) error {
	name := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(raw, "</"), ">"))
	if len(p.stack) == 0 {
		if elementKind(name) == sfcgen.KindVoid {
			return nil
		}
		return sfcgen.NewErrorf(sfcgen.ParseError, p.pos(start), "unexpected closing tag </%s>", name)
	}
	open := p.stack[len(p.stack)-1]
	if open.StartingTag.TagName != name {
		if elementKind(name) == sfcgen.KindVoid {
			return nil
		}
		return sfcgen.NewErrorWithHint(sfcgen.ParseError, p.pos(start),
			fmt.Sprintf("closing tag </%s> does not match <%s>", name, open.StartingTag.TagName),
			"<"+open.StartingTag.TagName+"> was opened at "+open.Position.String())
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

// text appends literal text and interpolations. Content of <script> and
// <style> is kept verbatim.
func (p *parser) text(raw string, start int) {
	if n := len(p.stack); n > 0 && p.stack[n-1].StartingTag.Kind == sfcgen.KindRawText {
		p.append(&sfcgen.TextNode{Text: raw, Position: p.pos(start)})
		return
	}
	for {
		open := strings.Index(raw, "{{")
		if open < 0 {
			break
		}
		end := strings.Index(raw[open+2:], "}}")
		if end < 0 {
			break
		}
		if open > 0 {
			p.append(&sfcgen.TextNode{Text: html.UnescapeString(raw[:open]), Position: p.pos(start)})
		}
		p.append(&sfcgen.DynamicExpression{
			Expr:     html.UnescapeString(raw[open+2 : open+2+end]),
			Position: p.pos(start + open + 2),
		})
		consumed := open + 2 + end + 2
		raw, start = raw[consumed:], start+consumed
	}
	if raw != "" {
		p.append(&sfcgen.TextNode{Text: html.UnescapeString(raw), Position: p.pos(start)})
	}
}

func (p *parser) append(node sfcgen.Node) {
	if n := len(p.stack); n > 0 {
		parent := p.stack[n-1]
		parent.Children = append(parent.Children, node)
		return
	}
	p.roots = append(p.roots, node)
}

// pos converts a byte offset into a 1-based line and column.
func (p *parser) pos(offset int) sfcgen.Position {
	line := sort.Search(len(p.lines), func(i int) bool { return p.lines[i] > offset }) - 1
	return sfcgen.Position{
		File:   p.filename,
		Line:   line + 1,
		Column: offset - p.lines[line] + 1,
	}
}

// elementKind classifies a tag by how its content is tokenized. The
// lookup is case-sensitive so <Input> stays a normal element.
func elementKind(name string) sfcgen.ElementKind {
	switch atom.Lookup([]byte(name)) {
	case atom.Script, atom.Style:
		return sfcgen.KindRawText
	case atom.Textarea, atom.Title:
		return sfcgen.KindRCData
	case atom.Template:
		return sfcgen.KindTemplate
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Link, atom.Meta, atom.Param, atom.Source, atom.Track, atom.Wbr:
		return sfcgen.KindVoid
	}
	return sfcgen.KindNormal
}
