package parser

import (
	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

// parseImage parses `\image("file")[attributes]` into img. Inline images
// only take a directly adjacent attribute list.
func (p *Parser) parseImage(img *dom.Image, inline bool) error {
	start := p.depth()
	return p.catch(start, p.imageBody(img, inline))
}

func (p *Parser) imageBody(img *dom.Image, inline bool) error {
	if err := p.expect(lexer.ParenLeft); err != nil {
		return err
	}
	if err := p.expect(lexer.StringLiteral); err != nil {
		return err
	}
	img.Name = p.l.StringValue()
	if err := p.expect(lexer.ParenRight); err != nil {
		return err
	}
	return p.parseOptionalAttributes(img, inline)
}

// parseBarcode parses `\barcode(Type[, "code"])[attributes]`.
func (p *Parser) parseBarcode(elems *dom.DocumentElements) error {
	start := p.depth()
	return p.catch(start, p.barcodeBody(elems))
}

func (p *Parser) barcodeBody(elems *dom.DocumentElements) error {
	if err := p.expect(lexer.ParenLeft); err != nil {
		return err
	}
	if err := p.expect(lexer.Identifier); err != nil {
		return err
	}
	name := p.l.StringValue()
	t, ok := dom.ParseBarcodeType(name)
	if !ok {
		return p.newError(perrors.ErrInvalidEnumValue, map[string]any{
			"Value": name,
			"Enum":  t.EnumName(),
		}).WithSuggestion(name, t.EnumMembers())
	}

	code := ""
	sym, err := p.readCode()
	if err != nil {
		return err
	}
	if sym == lexer.Comma {
		if err := p.expect(lexer.StringLiteral); err != nil {
			return err
		}
		code = p.l.StringValue()
		if sym, err = p.readCode(); err != nil {
			return err
		}
	}
	if sym != lexer.ParenRight {
		return p.expected(lexer.ParenRight)
	}

	return p.parseOptionalAttributes(elems.AddBarcode(t, code), false)
}
