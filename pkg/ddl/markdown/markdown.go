// Package markdown finds DDL snippets in fenced code blocks of Markdown
// documents.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Languages are the fence info strings that mark a DDL block.
var Languages = []string{"ddl", "mdddl"}

// Snippet is the content of one fenced DDL block.
type Snippet struct {
	Line int // 1-based line of the first content line in the Markdown source
	Code string
}

// Snippets returns the DDL blocks of source in document order.
func Snippets(source []byte) []Snippet {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	var out []Snippet
	gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		block, ok := n.(*gmast.FencedCodeBlock)
		if !ok {
			return gmast.WalkContinue, nil
		}
		if !isDDL(string(block.Language(source))) {
			return gmast.WalkSkipChildren, nil
		}

		lines := block.Lines()
		if lines.Len() == 0 {
			return gmast.WalkSkipChildren, nil
		}
		var buf strings.Builder
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(source))
		}
		out = append(out, Snippet{
			Line: bytes.Count(source[:lines.At(0).Start], []byte("\n")) + 1,
			Code: buf.String(),
		})
		return gmast.WalkSkipChildren, nil
	})
	return out
}

func isDDL(lang string) bool {
	for _, l := range Languages {
		if strings.EqualFold(lang, l) {
			return true
		}
	}
	return false
}
