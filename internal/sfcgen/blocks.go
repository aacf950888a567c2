package sfcgen

// Script is the text content of a <script> block.
type Script struct {
	Content string
	Lang    string // "js" or "ts"
	Pos     Position
}

// Descriptor holds the blocks selected from a component source file.
// Any field may be nil, but not all of them.
type Descriptor struct {
	Template     *ElementNode
	LegacyScript *Script
	SetupScript  *Script
}

// Classify scans the top-level blocks and extracts the template, the setup
// script and the legacy script. A repeated block replaces the earlier one.
func Classify(blocks []Node) (*Descriptor, error) {
	return classify(blocks, false)
}

// ClassifyStrict is like Classify but rejects repeated blocks with
// ErrDuplicateBlock instead of keeping the last one.
func ClassifyStrict(blocks []Node) (*Descriptor, error) {
	return classify(blocks, true)
}

func classify(blocks []Node, strict bool) (*Descriptor, error) {
	desc := &Descriptor{}

	for _, block := range blocks {
		elem, ok := block.(*ElementNode)
		if !ok {
			continue
		}
		tag := &elem.StartingTag
		lang, hasLang := tag.Attr("lang")

		switch tag.TagName {
		case "template":
			if hasLang && lang != "html" {
				return nil, NewErrorWithHint(UnsupportedLanguage, elem.Position,
					"unsupported template language "+quoteLang(lang),
					"compile the template to HTML before passing it to this compiler")
			}
			if strict && desc.Template != nil {
				return nil, NewError(DuplicateBlock, elem.Position, "a component can only contain one <template> block")
			}
			desc.Template = elem

		case "script":
			if len(elem.Children) == 0 {
				continue
			}
			if hasLang && lang != "js" && lang != "ts" {
				return nil, NewErrorWithHint(UnsupportedLanguage, elem.Position,
					"unsupported script language "+quoteLang(lang),
					`use lang="js" or lang="ts"`)
			}
			text, ok := elem.Children[0].(*TextNode)
			if !ok {
				return nil, NewError(MalformedScript, elem.Children[0].Pos(), "script content must be text")
			}
			if !hasLang {
				lang = "js"
			}
			script := &Script{Content: text.Text, Lang: lang, Pos: text.Position}

			if tag.HasAttr("setup") {
				if strict && desc.SetupScript != nil {
					return nil, NewError(DuplicateBlock, elem.Position, "a component can only contain one <script setup> block")
				}
				desc.SetupScript = script
			} else {
				if strict && desc.LegacyScript != nil {
					return nil, NewError(DuplicateBlock, elem.Position, "a component can only contain one <script> block")
				}
				desc.LegacyScript = script
			}
		}
	}

	if desc.Template == nil && desc.LegacyScript == nil && desc.SetupScript == nil {
		return nil, NewErrorWithHint(NoContent, Position{}, "no <template> or <script> block found",
			"a component needs at least one of them")
	}
	return desc, nil
}

func quoteLang(lang string) string {
	return `"` + lang + `"`
}
