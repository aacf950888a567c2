package sfcgen

import "golang.org/x/net/html/atom"

// htmlTags is the set of HTML element names recognized by the runtime.
// atom.Lookup is case-sensitive, so "Div" is not an HTML tag.
var htmlTags = map[atom.Atom]bool{
	atom.Html: true, atom.Body: true, atom.Base: true, atom.Head: true,
	atom.Link: true, atom.Meta: true, atom.Style: true, atom.Title: true,
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Footer: true,
	atom.Header: true, atom.Hgroup: true, atom.H1: true, atom.H2: true,
	atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Nav: true, atom.Section: true, atom.Search: true, atom.Div: true,
	atom.Dd: true, atom.Dl: true, atom.Dt: true, atom.Figcaption: true,
	atom.Figure: true, atom.Picture: true, atom.Hr: true, atom.Img: true,
	atom.Li: true, atom.Main: true, atom.Ol: true, atom.P: true,
	atom.Pre: true, atom.Ul: true, atom.A: true, atom.B: true,
	atom.Abbr: true, atom.Bdi: true, atom.Bdo: true, atom.Br: true,
	atom.Cite: true, atom.Code: true, atom.Data: true, atom.Dfn: true,
	atom.Em: true, atom.I: true, atom.Kbd: true, atom.Mark: true,
	atom.Q: true, atom.Rp: true, atom.Rt: true, atom.Ruby: true,
	atom.S: true, atom.Samp: true, atom.Small: true, atom.Span: true,
	atom.Strong: true, atom.Sub: true, atom.Sup: true, atom.Time: true,
	atom.U: true, atom.Var: true, atom.Wbr: true, atom.Area: true,
	atom.Audio: true, atom.Map: true, atom.Track: true, atom.Video: true,
	atom.Embed: true, atom.Object: true, atom.Param: true, atom.Source: true,
	atom.Canvas: true, atom.Script: true, atom.Noscript: true, atom.Del: true,
	atom.Ins: true, atom.Caption: true, atom.Col: true, atom.Colgroup: true,
	atom.Table: true, atom.Thead: true, atom.Tbody: true, atom.Tfoot: true,
	atom.Td: true, atom.Th: true, atom.Tr: true, atom.Button: true,
	atom.Datalist: true, atom.Fieldset: true, atom.Form: true, atom.Input: true,
	atom.Label: true, atom.Legend: true, atom.Meter: true, atom.Optgroup: true,
	atom.Option: true, atom.Output: true, atom.Progress: true, atom.Select: true,
	atom.Textarea: true, atom.Details: true, atom.Dialog: true, atom.Menu: true,
	atom.Summary: true, atom.Template: true, atom.Blockquote: true, atom.Iframe: true,
}

// svgTags holds SVG element names. Most are camel-cased and have no atom.
var svgTags = map[string]bool{
	"svg": true, "animate": true, "animateMotion": true, "animateTransform": true,
	"circle": true, "clipPath": true, "color-profile": true, "defs": true,
	"desc": true, "discard": true, "ellipse": true, "feBlend": true,
	"feColorMatrix": true, "feComponentTransfer": true, "feComposite": true,
	"feConvolveMatrix": true, "feDiffuseLighting": true, "feDisplacementMap": true,
	"feDistantLight": true, "feDropShadow": true, "feFlood": true, "feFuncA": true,
	"feFuncB": true, "feFuncG": true, "feFuncR": true, "feGaussianBlur": true,
	"feImage": true, "feMerge": true, "feMergeNode": true, "feMorphology": true,
	"feOffset": true, "fePointLight": true, "feSpecularLighting": true,
	"feSpotLight": true, "feTile": true, "feTurbulence": true, "filter": true,
	"foreignObject": true, "g": true, "hatch": true, "hatchpath": true,
	"image": true, "line": true, "linearGradient": true, "marker": true,
	"mask": true, "mesh": true, "meshgradient": true, "meshpatch": true,
	"meshrow": true, "metadata": true, "mpath": true, "path": true,
	"pattern": true, "polygon": true, "polyline": true, "radialGradient": true,
	"rect": true, "set": true, "solidcolor": true, "stop": true,
	"switch": true, "symbol": true, "text": true, "textPath": true,
	"tspan": true, "use": true, "view": true,
}

// IsHTMLTag reports whether name is a markup tag natively recognized by the
// runtime (HTML or SVG). The test is exact and case-sensitive.
func IsHTMLTag(name string) bool {
	if a := atom.Lookup([]byte(name)); a != 0 && htmlTags[a] {
		return true
	}
	return svgTags[name]
}
