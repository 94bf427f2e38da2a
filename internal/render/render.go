// Package render turns view documents into HTML.
package render

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	md_html "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const extensions = parser.Tables | parser.FencedCode | parser.Autolink | parser.Strikethrough |
	parser.SpaceHeadings | parser.HeadingIDs | parser.BackslashLineBreak | parser.DefinitionLists |
	parser.AutoHeadingIDs | parser.Footnotes | parser.OrderedListStart | parser.Attributes |
	parser.NonBlockingSpace

// Markdown renders md to HTML. Raw HTML in the document is kept, so view
// documents can carry their own forms.
func Markdown(md []byte) []byte {
	md = markdown.NormalizeNewlines(md)

	opts := md_html.RendererOptions{
		Flags: md_html.CommonFlags | md_html.HrefTargetBlank | md_html.FootnoteReturnLinks,
	}

	doc := parser.NewWithExtensions(extensions).Parse(md)
	return markdown.Render(doc, md_html.NewRenderer(opts))
}

// Headings returns the text of every level-one heading in md, in order.
func Headings(md []byte) []string {
	doc := parser.NewWithExtensions(extensions).Parse(markdown.NormalizeNewlines(md))

	var out []string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		h, ok := node.(*ast.Heading)
		if !ok || !entering || h.Level != 1 {
			return ast.GoToNext
		}
		var text []byte
		ast.WalkFunc(h, func(n ast.Node, entering bool) ast.WalkStatus {
			if leaf := n.AsLeaf(); leaf != nil && entering {
				text = append(text, leaf.Literal...)
			}
			return ast.GoToNext
		})
		out = append(out, string(text))
		return ast.SkipChildren
	})
	return out
}
