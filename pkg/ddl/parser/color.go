package parser

import (
	"strconv"

	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

// parseColor reads a color value starting at the current token:
//
//	RGB(r, g, b)          components 0..255
//	CMYK([a,] c, m, y, k) components 0..100
//	GRAY(g)               0 is white, 100 is black
//	Name                  a predefined color
//	0xAARRGGBB            a raw color value
func (p *Parser) parseColor(name string) (dom.Color, error) {
	tok := p.l.Token()
	switch tok.Symbol {
	case lexer.IntegerLiteral, lexer.HexIntegerLiteral:
		v, err := p.l.UintValue()
		if err != nil {
			return 0, p.invalidLiteral(tok, "color")
		}
		return dom.Color(v), nil

	case lexer.StringLiteral:
		return 0, p.newError(perrors.ErrColorModelNotSupported, map[string]any{"Model": "string"})

	case lexer.Identifier:
		if p.l.PeekSymbol() == lexer.ParenLeft {
			return p.colorFunction(tok.Value)
		}
		c, ok := dom.LookupColor(tok.Value)
		if !ok {
			return 0, p.newError(perrors.ErrUnknownColor, map[string]any{"Name": tok.Value}).
				WithSuggestion(tok.Value, dom.ColorNames())
		}
		return c, nil
	}

	return 0, p.newError(perrors.ErrInvalidValueType, map[string]any{
		"Got":  describe(tok),
		"Kind": dom.KindColor.String(),
		"Name": name,
	})
}

type colorArg struct {
	tok     lexer.Token
	value   float64
	integer bool
}

// colorFunction parses the arguments of a color model call. All arguments
// are read before any is checked.
func (p *Parser) colorFunction(model string) (dom.Color, error) {
	args, err := p.colorArgs()
	if err != nil {
		return 0, err
	}

	switch dom.FoldName(model) {
	case "rgb":
		if err := p.checkArgs(args, 3, 3, 0, 255, true); err != nil {
			return 0, err
		}
		return dom.RGB(uint8(args[0].value), uint8(args[1].value), uint8(args[2].value)), nil

	case "cmyk":
		if err := p.checkArgs(args, 4, 5, 0, 100, false); err != nil {
			return 0, err
		}
		if len(args) == 4 {
			return dom.CMYK(100, args[0].value, args[1].value, args[2].value, args[3].value), nil
		}
		return dom.CMYK(args[0].value, args[1].value, args[2].value, args[3].value, args[4].value), nil

	case "gray":
		if err := p.checkArgs(args, 1, 1, 0, 100, false); err != nil {
			return 0, err
		}
		return dom.Gray(args[0].value), nil
	}

	return 0, p.newError(perrors.ErrColorModelNotSupported, map[string]any{"Model": model})
}

// colorArgs reads "(number, ...)" with the identifier before it current.
func (p *Parser) colorArgs() ([]colorArg, error) {
	if err := p.expect(lexer.ParenLeft); err != nil {
		return nil, err
	}

	var args []colorArg
	for {
		sym, err := p.readCode()
		if err != nil {
			return nil, err
		}
		if sym == lexer.ParenRight && len(args) == 0 {
			return args, nil
		}

		neg, err := p.sign()
		if err != nil {
			return nil, err
		}
		tok := p.l.Token()
		if !tok.Symbol.IsNumber() {
			return nil, p.unexpected()
		}
		v, err := p.l.RealValue()
		if err != nil {
			return nil, p.invalidLiteral(tok, "number")
		}
		if neg {
			v = -v
		}
		args = append(args, colorArg{tok: tok, value: v, integer: tok.Symbol != lexer.RealLiteral})

		sym, err = p.readCode()
		if err != nil {
			return nil, err
		}
		if sym == lexer.ParenRight {
			return args, nil
		}
		if sym != lexer.Comma {
			return nil, p.expected(lexer.Comma)
		}
	}
}

// checkArgs validates the argument count and range. The closing
// parenthesis is current.
func (p *Parser) checkArgs(args []colorArg, minArgs, maxArgs int, lo, hi float64, integer bool) error {
	switch {
	case len(args) < minArgs:
		return p.expected(lexer.Comma)
	case len(args) > maxArgs:
		return p.errorAt(args[maxArgs].tok, perrors.ErrUnexpectedSymbol, map[string]any{"Symbol": args[maxArgs].tok.Literal})
	}
	for _, a := range args {
		if integer && !a.integer {
			return p.invalidLiteral(a.tok, "integer")
		}
		if a.value < lo || a.value > hi {
			return p.errorAt(a.tok, perrors.ErrValueOutOfRange, map[string]any{
				"Value": strconv.FormatFloat(a.value, 'g', -1, 64),
				"Min":   lo,
				"Max":   hi,
			})
		}
	}
	return nil
}
