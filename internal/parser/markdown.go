package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// FlattenMarkdown walks the markdown AST and returns the prose: text of
// headings, paragraphs, and list items, with code blocks and raw HTML
// dropped entirely.
func FlattenMarkdown(content []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(content))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				sb.Write(node.Segment.Value(content))
				if node.SoftLineBreak() || node.HardLineBreak() {
					sb.WriteByte('\n')
				}
			}
		case *ast.Paragraph, *ast.Heading, *ast.ListItem:
			if !entering {
				sb.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(sb.String())
}
