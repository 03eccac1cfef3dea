package parser

import (
	"log/slog"
	"strings"

	"github.com/sambeau/ddl/pkg/ddl/dom"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

// parseElements parses the content of a section, cell, header, footer,
// text frame or footnote up to its closing brace. The opening brace is the
// current token. Prose becomes implicit paragraphs, separated by empty
// lines. Header and footer keywords are accepted only when sec is set.
func (p *Parser) parseElements(elems *dom.DocumentElements, sec *dom.Section) error {
	inner := p.depth()
	for {
		if p.isParagraphContent() {
			closed, err := p.parseImplicitParagraph(elems.AddParagraph(), inner)
			if err != nil || closed {
				return err
			}
			continue
		}

		sym, err := p.readCode()
		if err == nil {
			if sym == lexer.BraceRight {
				return nil
			}
			err = p.parseElement(sym, elems, sec)
		}
		if err = p.catch(inner, err); err != nil {
			return err
		}
		if p.depth() < inner {
			return nil
		}
	}
}

// isParagraphContent decides, without consuming input, whether the next
// content of a block is prose or a block element.
func (p *Parser) isParagraphContent() bool {
	if !p.l.MoveToParagraphContent() {
		return false
	}
	if p.l.IsTextEscape() {
		return true
	}
	switch p.l.Char() {
	case '\\':
		return p.l.PeekKeyword().IsInline()
	case '}':
		return false
	}
	return true
}

// parseImplicitParagraph parses prose directly inside a block at depth
// inner. It reports whether the block's closing brace was consumed.
func (p *Parser) parseImplicitParagraph(para *dom.Paragraph, inner int) (bool, error) {
	p.log(slog.LevelDebug, "parsing paragraph", slog.Int("line", p.l.Line()))

	if _, err := p.parseFormattedText(para.Elements, true); err != nil {
		if err = p.catch(inner, err); err != nil {
			return false, err
		}
		return p.skipParagraph(inner)
	}
	return p.depth() < inner, nil
}

// skipParagraph consumes the rest of a failed implicit paragraph, up to the
// next empty line or the closing brace of its block.
func (p *Parser) skipParagraph(inner int) (bool, error) {
	for {
		switch {
		case p.depth() < inner:
			return true, nil
		case p.depth() > inner:
			if _, err := p.skipToken(); err != nil {
				return false, err
			}
		default:
			sym, err := p.readText(true)
			if err != nil {
				if isFatal(err) {
					return false, err
				}
				continue
			}
			if sym == lexer.EmptyLine {
				return false, nil
			}
		}
	}
}

func (p *Parser) parseElement(sym lexer.Symbol, elems *dom.DocumentElements, sec *dom.Section) error {
	switch sym {
	case lexer.Paragraph:
		return p.parseParagraph(elems.AddParagraph())
	case lexer.Table:
		return p.parseTable(elems.AddTable())
	case lexer.Image:
		return p.parseImage(elems.AddImage(""), false)
	case lexer.TextFrame:
		return p.parseTextFrame(elems.AddTextFrame())
	case lexer.Barcode:
		return p.parseBarcode(elems)
	case lexer.Chart:
		return p.parseChart(elems)
	case lexer.PageBreak:
		elems.AddPageBreak()
		return nil
	}
	if sec != nil && isHeaderFooter(sym) {
		return p.parseHeaderFooter(sym, sec)
	}
	if !sym.IsKeyword() {
		return p.unexpected()
	}
	p.report(p.unexpected())
	return p.skipElementGroups()
}

// parseParagraph parses "\paragraph[attributes]{text}".
func (p *Parser) parseParagraph(para *dom.Paragraph) error {
	start := p.depth()
	return p.catch(start, p.paragraphBody(para))
}

func (p *Parser) paragraphBody(para *dom.Paragraph) error {
	if err := p.parseOptionalAttributes(para, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	p.markText()
	_, err := p.parseFormattedText(para.Elements, false)
	return err
}

// parseFormattedText reads prose and inline constructs into elems. A root
// paragraph ends at an empty line or its block's closing brace; any other
// run ends at its own closing brace. It returns the terminating symbol.
func (p *Parser) parseFormattedText(elems *dom.ParagraphElements, root bool) (lexer.Symbol, error) {
	for {
		sym, err := p.readText(root)
		if err != nil {
			return sym, err
		}

		switch sym {
		case lexer.Text:
			elems.AddText(p.l.StringValue())
		case lexer.Blank:
			addSpace(elems)
		case lexer.EmptyLine:
			if root {
				return sym, nil
			}
			addSpace(elems)
		case lexer.BraceRight:
			return sym, nil
		default:
			if !sym.IsKeyword() {
				return sym, p.unexpected()
			}
			if err := p.parseInline(sym, elems); err != nil {
				return sym, err
			}
		}
	}
}

// addSpace appends a word separator unless the text already ends in one.
func addSpace(elems *dom.ParagraphElements) {
	if n := len(elems.Items); n > 0 {
		if t, ok := elems.Items[n-1].(*dom.Text); ok && strings.HasSuffix(t.Content, " ") {
			return
		}
	}
	elems.AddText(" ")
}

// parseTextFrame parses "\textframe[attributes]{content}".
func (p *Parser) parseTextFrame(tf *dom.TextFrame) error {
	start := p.depth()
	return p.catch(start, p.textFrameBody(tf))
}

func (p *Parser) textFrameBody(tf *dom.TextFrame) error {
	if err := p.parseOptionalAttributes(tf, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	p.markText()
	return p.parseElements(tf.Elements, nil)
}
