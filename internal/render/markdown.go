package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// markdownToLines flattens Markdown notes into plain text lines for the
// cover notes block. Headings become their own line; block content keeps
// its order. Inline markup is dropped, only the text survives.
func markdownToLines(src string) []string {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}

	md := goldmark.New()
	reader := text.NewReader([]byte(src))
	doc := md.Parser().Parse(reader)

	var lines []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if t := string(node.Text([]byte(src))); t != "" {
				lines = append(lines, t)
			}
		case *ast.List:
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				if t := blockText(item, []byte(src)); t != "" {
					lines = append(lines, "- "+t)
				}
			}
		default:
			if t := blockText(n, []byte(src)); t != "" {
				lines = append(lines, t)
			}
		}
	}
	return lines
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.ChildCount() > 0 {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte(' ')
				}
			} else {
				buf.WriteString(blockText(c, src))
				buf.WriteByte(' ')
			}
		}
	} else if n.Type() == ast.TypeBlock {
		// Leaf blocks without inline children, e.g. code blocks.
		segs := n.Lines()
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			buf.Write(seg.Value(src))
			buf.WriteByte(' ')
		}
	}
	return strings.TrimSpace(strings.Join(strings.Fields(buf.String()), " "))
}
