package parser

import (
	"log/slog"

	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

// ParseDocument parses a \document construct into doc, creating a new
// document when doc is nil.
//
// The returned error is non-nil only when the input could not be parsed as
// a document at all, ran out before the document was complete, or has
// content after it. Errors inside the document are recovered and recorded
// in Diagnostics; the document is returned in every case.
func (p *Parser) ParseDocument(doc *dom.Document) (*dom.Document, error) {
	if doc == nil {
		doc = dom.NewDocument()
	}
	if doc.Styles == nil {
		doc.Styles = dom.NewStyles()
	}
	if doc.Sections == nil {
		doc.Sections = &dom.Sections{}
	}
	p.styles = doc.Styles

	sym, err := p.readCode()
	if err != nil {
		return doc, p.top(err)
	}
	if sym != lexer.Document {
		return doc, p.top(p.expected(lexer.Document))
	}
	if err := p.parseDocument(doc); err != nil {
		return doc, err
	}
	return doc, p.expectEnd("document")
}

// ParseDocumentObject parses exactly one top-level construct: a document,
// styles, section, table, text frame or paragraph.
func (p *Parser) ParseDocumentObject() (dom.DocumentObject, error) {
	sym, err := p.readCode()
	if err != nil {
		return nil, p.top(err)
	}

	var (
		obj       dom.DocumentObject
		construct = sym.String()
	)
	switch sym {
	case lexer.Document:
		doc := dom.NewDocument()
		p.styles = doc.Styles
		obj, err = doc, p.parseDocument(doc)
	case lexer.Styles:
		if p.styles == nil {
			p.styles = dom.NewStyles()
		}
		obj, err = p.styles, p.parseStyles(p.styles)
	case lexer.Section:
		sec := dom.NewSection()
		obj, err = sec, p.parseSection(sec)
	case lexer.Table:
		t := dom.NewTable()
		obj, err = t, p.parseTable(t)
	case lexer.TextFrame:
		tf := dom.NewTextFrame()
		obj, err = tf, p.parseTextFrame(tf)
	case lexer.Paragraph:
		para := dom.NewParagraph()
		obj, err = para, p.parseParagraph(para)
	default:
		return nil, p.top(p.unexpected())
	}
	if err != nil {
		return obj, err
	}
	return obj, p.expectEnd(construct)
}

func (p *Parser) parseDocument(doc *dom.Document) error {
	start := p.depth()
	return p.catch(start, p.documentBody(doc))
}

func (p *Parser) documentBody(doc *dom.Document) error {
	p.log(slog.LevelDebug, "parsing document")

	if err := p.parseOptionalAttributes(doc, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	return p.parseBlock(lexer.BraceRight, func(sym lexer.Symbol) error {
		switch sym {
		case lexer.Styles:
			return p.parseStyles(doc.Styles)
		case lexer.Section:
			return p.parseSection(doc.Sections.AddSection())
		}
		return p.unexpected()
	})
}

// Styles

func (p *Parser) parseStyles(styles *dom.Styles) error {
	start := p.depth()
	return p.catch(start, p.stylesBody(styles))
}

func (p *Parser) stylesBody(styles *dom.Styles) error {
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	return p.parseBlock(lexer.BraceRight, func(sym lexer.Symbol) error {
		if sym != lexer.Identifier {
			return p.unexpected()
		}
		return p.parseStyleDefinition(styles)
	})
}

// parseStyleDefinition parses "Name [: Base] { attributes }".
func (p *Parser) parseStyleDefinition(styles *dom.Styles) error {
	start := p.depth()
	return p.catch(start, p.styleDefinition(styles))
}

func (p *Parser) styleDefinition(styles *dom.Styles) error {
	name := p.l.StringValue()
	base := ""

	sym, err := p.readCode()
	if err != nil {
		return err
	}
	if sym == lexer.Colon {
		if err := p.expect(lexer.Identifier); err != nil {
			return err
		}
		base = p.l.StringValue()
		if styles.Get(base) == nil {
			p.warn(perrors.WarnUndefinedBaseStyle, map[string]any{"Style": name, "Base": base})
			base = dom.StyleInvalid
		}
		if sym, err = p.readCode(); err != nil {
			return err
		}
	}
	if sym != lexer.BraceLeft {
		return p.expected(lexer.BraceLeft)
	}

	p.log(slog.LevelDebug, "parsing style", slog.String("style", name), slog.String("base", base))
	return p.parseAttributeBlock(styles.AddStyle(name, base))
}

// Sections

func (p *Parser) parseSection(sec *dom.Section) error {
	start := p.depth()
	return p.catch(start, p.sectionBody(sec))
}

func (p *Parser) sectionBody(sec *dom.Section) error {
	p.log(slog.LevelDebug, "parsing section", slog.Int("line", p.l.Token().Line))

	if err := p.parseOptionalAttributes(sec, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	p.markText()
	return p.parseElements(sec.Elements, sec)
}

func isHeaderFooter(sym lexer.Symbol) bool {
	switch sym {
	case lexer.Header, lexer.PrimaryHeader, lexer.FirstPageHeader, lexer.EvenPageHeader,
		lexer.Footer, lexer.PrimaryFooter, lexer.FirstPageFooter, lexer.EvenPageFooter:
		return true
	}
	return false
}

// parseHeaderFooter parses a header or footer of sec. The unqualified
// keywords set all three variants to independent copies.
func (p *Parser) parseHeaderFooter(sym lexer.Symbol, sec *dom.Section) error {
	start := p.depth()
	return p.catch(start, p.headerFooterBody(sym, sec))
}

func (p *Parser) headerFooterBody(sym lexer.Symbol, sec *dom.Section) error {
	hf := dom.NewHeaderFooter()
	if err := p.parseOptionalAttributes(hf, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	p.markText()
	if err := p.parseElements(hf.Elements, nil); err != nil {
		return err
	}

	target := sec.Headers
	switch sym {
	case lexer.Footer, lexer.PrimaryFooter, lexer.FirstPageFooter, lexer.EvenPageFooter:
		target = sec.Footers
	}

	switch sym {
	case lexer.Header, lexer.Footer:
		target.Primary = hf
		target.FirstPage = dom.Clone(hf)
		target.EvenPage = dom.Clone(hf)
	case lexer.PrimaryHeader, lexer.PrimaryFooter:
		target.Primary = hf
	case lexer.FirstPageHeader, lexer.FirstPageFooter:
		target.FirstPage = hf
	case lexer.EvenPageHeader, lexer.EvenPageFooter:
		target.EvenPage = hf
	}
	return nil
}
