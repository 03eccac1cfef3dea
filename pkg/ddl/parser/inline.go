package parser

import (
	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

// parseInline parses the inline construct introduced by keyword sym in
// paragraph text.
func (p *Parser) parseInline(sym lexer.Symbol, elems *dom.ParagraphElements) error {
	switch sym {
	case lexer.Bold:
		return p.parseFormatted(elems, &dom.Font{Bold: true})
	case lexer.Italic:
		return p.parseFormatted(elems, &dom.Font{Italic: true})
	case lexer.Underline:
		return p.parseFormatted(elems, &dom.Font{Underline: dom.UnderlineSingle})
	case lexer.Font:
		return p.parseFont(elems)
	case lexer.FontSize:
		return p.parseFontSize(elems)
	case lexer.FontColor:
		return p.parseFontColor(elems)
	case lexer.Field:
		return p.parseField(elems)
	case lexer.SymbolName:
		return p.parseSymbol(elems)
	case lexer.Chr:
		if err := p.expect(lexer.ParenLeft); err != nil {
			return err
		}
		return p.parseCharCode(elems)
	case lexer.Character:
		return p.parseCharCode(elems)
	case lexer.Tab:
		return p.parseRepeatable(elems, dom.SymbolTab)
	case lexer.LineBreak:
		return p.parseRepeatable(elems, dom.SymbolLineBreak)
	case lexer.Space:
		return p.parseRepeatable(elems, dom.SymbolBlank)
	case lexer.NoSpace:
		return nil
	case lexer.SoftHyphen:
		elems.AddChar(0x00AD)
		return nil
	case lexer.Footnote:
		return p.parseFootnote(elems.AddFootnote())
	case lexer.Hyperlink:
		return p.parseHyperlink(elems.AddHyperlink())
	case lexer.Image:
		return p.parseImage(elems.AddImage(""), true)
	}
	return p.newError(perrors.ErrUnexpectedKeywordInParagraph, map[string]any{"Keyword": sym.String()})
}

// parseFormatted parses "{text}" into a formatted run with font.
func (p *Parser) parseFormatted(elems *dom.ParagraphElements, font *dom.Font) error {
	ft := elems.AddFormattedText()
	ft.Font = font
	return p.parseInlineText(ft.Elements)
}

// parseInlineText parses "{text}" following an inline keyword.
func (p *Parser) parseInlineText(elems *dom.ParagraphElements) error {
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	p.markText()
	_, err := p.parseFormattedText(elems, false)
	return err
}

// parseFont parses "\font[attributes]{text}".
func (p *Parser) parseFont(elems *dom.ParagraphElements) error {
	ft := elems.AddFormattedText()
	ft.Font = &dom.Font{}
	if err := p.parseOptionalAttributes(ft.Font, false); err != nil {
		return err
	}
	return p.parseInlineText(ft.Elements)
}

// parseFontSize parses "\fontsize(size){text}".
func (p *Parser) parseFontSize(elems *dom.ParagraphElements) error {
	if err := p.expect(lexer.ParenLeft); err != nil {
		return err
	}
	if _, err := p.readCode(); err != nil {
		return err
	}
	desc, _ := dom.Describe(&dom.Font{}, "Size")
	size, err := p.unitValue(desc)
	if err != nil {
		return err
	}
	if err := p.expect(lexer.ParenRight); err != nil {
		return err
	}
	return p.parseFormatted(elems, &dom.Font{Size: size})
}

// parseFontColor parses "\fontcolor(color){text}".
func (p *Parser) parseFontColor(elems *dom.ParagraphElements) error {
	if err := p.expect(lexer.ParenLeft); err != nil {
		return err
	}
	if _, err := p.readCode(); err != nil {
		return err
	}
	c, err := p.parseColor("Color")
	if err != nil {
		return err
	}
	if err := p.expect(lexer.ParenRight); err != nil {
		return err
	}
	return p.parseFormatted(elems, &dom.Font{Color: c})
}

// parseField parses "\field(Type)[attributes]".
func (p *Parser) parseField(elems *dom.ParagraphElements) error {
	if err := p.expect(lexer.ParenLeft); err != nil {
		return err
	}
	if err := p.expect(lexer.Identifier); err != nil {
		return err
	}
	name := p.l.StringValue()
	t, ok := dom.ParseFieldType(name)
	if !ok {
		return p.newError(perrors.ErrUnknownFieldType, map[string]any{"Name": name}).
			WithSuggestion(name, dom.FieldTypeNames())
	}
	if err := p.expect(lexer.ParenRight); err != nil {
		return err
	}
	return p.parseOptionalAttributes(elems.AddField(t), true)
}

// parseSymbol parses "\symbol(Name)".
func (p *Parser) parseSymbol(elems *dom.ParagraphElements) error {
	if err := p.expect(lexer.ParenLeft); err != nil {
		return err
	}
	if err := p.expect(lexer.Identifier); err != nil {
		return err
	}
	name := p.l.StringValue()
	sym, ok := dom.ParseSymbolName(name)
	if !ok || sym == dom.SymbolChar {
		return p.newError(perrors.ErrUnknownSymbolName, map[string]any{"Name": name}).
			WithSuggestion(name, dom.SymbolNames())
	}
	if err := p.expect(lexer.ParenRight); err != nil {
		return err
	}
	elems.AddCharacter(sym, 1)
	return nil
}

// parseCharCode parses "code)" after "\chr(" or "\(".
func (p *Parser) parseCharCode(elems *dom.ParagraphElements) error {
	if _, err := p.readCode(); err != nil {
		return err
	}
	code, err := p.charCode()
	if err != nil {
		return err
	}
	if err := p.expect(lexer.ParenRight); err != nil {
		return err
	}
	elems.AddChar(code)
	return nil
}

func (p *Parser) charCode() (int, error) {
	tok := p.l.Token()
	switch tok.Symbol {
	case lexer.IntegerLiteral, lexer.HexIntegerLiteral:
	default:
		return 0, p.expected(lexer.IntegerLiteral)
	}
	v, err := p.l.IntValue()
	if err != nil {
		return 0, p.newError(perrors.ErrInvalidLiteral, map[string]any{"Kind": "integer", "Literal": tok.Literal})
	}
	if v < 0 || v > 0x10FFFF {
		return 0, p.newError(perrors.ErrValueOutOfRange, map[string]any{"Value": tok.Literal, "Min": 0, "Max": "0x10FFFF"})
	}
	return int(v), nil
}

// parseRepeatable parses \tab, \linebreak or \space with an optional
// directly adjacent "(count)".
func (p *Parser) parseRepeatable(elems *dom.ParagraphElements, sym dom.SymbolName) error {
	count := 1
	if p.l.PeekPunctuator(0) == lexer.ParenLeft {
		if _, err := p.readCode(); err != nil {
			return err
		}
		if _, err := p.readCode(); err != nil {
			return err
		}
		n, err := p.charCode()
		if err != nil {
			return err
		}
		if err := p.expect(lexer.ParenRight); err != nil {
			return err
		}
		count = n
	}
	elems.AddCharacter(sym, count)
	return nil
}

// parseFootnote parses "\footnote[attributes]{content}".
func (p *Parser) parseFootnote(fn *dom.Footnote) error {
	start := p.depth()
	return p.catch(start, p.footnoteBody(fn))
}

func (p *Parser) footnoteBody(fn *dom.Footnote) error {
	if err := p.parseOptionalAttributes(fn, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	p.markText()
	return p.parseElements(fn.Elements, nil)
}

// parseHyperlink parses "\hyperlink[attributes]{text}".
func (p *Parser) parseHyperlink(h *dom.Hyperlink) error {
	if err := p.parseOptionalAttributes(h, false); err != nil {
		return err
	}
	return p.parseInlineText(h.Elements)
}
