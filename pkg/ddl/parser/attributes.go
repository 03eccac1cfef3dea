package parser

import (
	"log/slog"
	"strings"

	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

// parseAttributes parses "[statement*]" into obj. The opening bracket is
// the current token.
func (p *Parser) parseAttributes(obj dom.DocumentObject) error {
	return p.parseBlock(lexer.BracketRight, func(sym lexer.Symbol) error {
		if sym != lexer.Identifier {
			return p.unexpected()
		}
		return p.parseAttributeStatement(obj)
	})
}

// parseAttributeBlock parses "{statement*}" into obj. The opening brace is
// the current token.
func (p *Parser) parseAttributeBlock(obj dom.DocumentObject) error {
	return p.parseBlock(lexer.BraceRight, func(sym lexer.Symbol) error {
		if sym != lexer.Identifier {
			return p.unexpected()
		}
		return p.parseAttributeStatement(obj)
	})
}

// parseAttributeStatement parses one "path op value" or "path {...}"
// statement whose first identifier is current.
func (p *Parser) parseAttributeStatement(obj dom.DocumentObject) error {
	start := p.depth()
	return p.catchStatement(start, p.attributeStatement(obj))
}

func (p *Parser) attributeStatement(obj dom.DocumentObject) error {
	target, desc, err := p.resolvePath(obj)
	if err != nil {
		return err
	}

	sym, err := p.readCode()
	if err != nil {
		return err
	}
	switch sym {
	case lexer.Assign:
		return p.assignValue(target, desc)
	case lexer.BraceLeft:
		if desc.Kind != dom.KindNestedObject {
			return p.notAnObject(target, desc)
		}
		child, err := dom.CreateValue(target, desc.Name)
		if err != nil {
			return p.notAnObject(target, desc)
		}
		return p.parseAttributeBlock(child)
	case lexer.PlusAssign, lexer.MinusAssign:
		return p.assignDelta(target, desc, sym)
	}
	return p.expected(lexer.Assign)
}

// resolvePath walks "name(.name)*" from obj, creating intermediate objects
// on demand. It returns the object owning the final name and its
// descriptor.
func (p *Parser) resolvePath(obj dom.DocumentObject) (dom.DocumentObject, *dom.ValueDescriptor, error) {
	for {
		desc, err := p.lookup(obj)
		if err != nil {
			return nil, nil, err
		}
		if p.l.PeekSymbol() != lexer.Dot {
			return obj, desc, nil
		}
		if desc.Kind != dom.KindNestedObject {
			return nil, nil, p.notAnObject(obj, desc)
		}
		child, err := dom.CreateValue(obj, desc.Name)
		if err != nil {
			return nil, nil, p.notAnObject(obj, desc)
		}
		obj = child

		if _, err := p.readCode(); err != nil {
			return nil, nil, err
		}
		if err := p.expect(lexer.Identifier); err != nil {
			return nil, nil, err
		}
	}
}

func (p *Parser) lookup(obj dom.DocumentObject) (*dom.ValueDescriptor, error) {
	name := p.l.StringValue()
	if strings.HasPrefix(name, "_") {
		return nil, p.newError(perrors.ErrInaccessibleAttribute, map[string]any{"Name": name})
	}
	desc, ok := dom.Describe(obj, name)
	if !ok {
		return nil, p.newError(perrors.ErrUnknownAttribute, map[string]any{
			"Name": name,
			"Type": dom.TypeName(obj),
		}).WithSuggestion(name, dom.Names(obj))
	}
	return desc, nil
}

func (p *Parser) notAnObject(obj dom.DocumentObject, desc *dom.ValueDescriptor) error {
	return p.newError(perrors.ErrNotAnObject, map[string]any{
		"Name": desc.Name,
		"Type": dom.TypeName(obj),
	})
}

// assignValue parses the value after "=" and stores it.
func (p *Parser) assignValue(obj dom.DocumentObject, desc *dom.ValueDescriptor) error {
	sym, err := p.readCode()
	if err != nil {
		return err
	}
	if sym == lexer.Null {
		return p.assignNull(obj, desc)
	}
	if desc.Kind == dom.KindNestedObject {
		d := p.newError(perrors.ErrObjectAssignment, map[string]any{"Name": desc.Name})
		if err := p.skipValueRest(); err != nil {
			return err
		}
		return d
	}

	tok := p.l.Token()
	v, err := p.parseValue(desc)
	if err != nil {
		return err
	}
	if err := dom.SetValue(obj, desc.Name, v); err != nil {
		return p.errorAt(tok, perrors.ErrInvalidValueType, map[string]any{
			"Got":  describe(tok),
			"Kind": desc.Kind.String(),
			"Name": desc.Name,
		})
	}
	return nil
}

// assignNull handles "name = null". Only borders and shading can be
// removed, and tab stops cleared.
func (p *Parser) assignNull(obj dom.DocumentObject, desc *dom.ValueDescriptor) error {
	if desc.Kind == dom.KindNestedObject {
		switch desc.Type.Elem().Name() {
		case "Border", "Borders", "Shading":
			return dom.SetValue(obj, desc.Name, nil)
		case "TabStops":
			child, err := dom.CreateValue(obj, desc.Name)
			if err != nil {
				return err
			}
			child.(*dom.TabStops).ClearAll()
			return nil
		}
	}
	return p.newError(perrors.ErrNullNotSupported, map[string]any{"Name": desc.Name})
}

// assignDelta handles "TabStops += position", "TabStops += {...}" and
// "TabStops -= position" on a paragraph format.
func (p *Parser) assignDelta(obj dom.DocumentObject, desc *dom.ValueDescriptor, op lexer.Symbol) error {
	format, ok := obj.(*dom.ParagraphFormat)
	if !ok || desc.Name != "TabStops" {
		d := p.newError(perrors.ErrDeltaNotAllowed, map[string]any{
			"Operator": op.String(),
			"Name":     desc.Name,
		})
		if _, err := p.skipToken(); err != nil {
			return err
		}
		if err := p.skipValueRest(); err != nil {
			return err
		}
		return d
	}
	if format.TabStops == nil {
		format.TabStops = &dom.TabStops{}
	}

	sym, err := p.readCode()
	if err != nil {
		return err
	}
	if op == lexer.PlusAssign && sym == lexer.BraceLeft {
		stop := &dom.TabStop{}
		if err := p.parseAttributeBlock(stop); err != nil {
			return err
		}
		format.TabStops.Add(stop)
		return nil
	}

	posDesc, _ := dom.Describe(&dom.TabStop{}, "Position")
	pos, err := p.unitValue(posDesc)
	if err != nil {
		return err
	}
	if op == lexer.PlusAssign {
		format.TabStops.AddTabStop(pos)
		return nil
	}
	if !format.TabStops.RemoveTabStop(pos) {
		p.log(slog.LevelDebug, "no tab stop to remove", slog.String("position", pos.String()))
	}
	return nil
}

// Values

// parseValue reads the value starting at the current token according to
// the target's kind.
func (p *Parser) parseValue(desc *dom.ValueDescriptor) (any, error) {
	switch desc.Kind {
	case dom.KindString:
		return p.stringValue(desc)
	case dom.KindInteger:
		return p.integerValue(desc)
	case dom.KindReal:
		return p.realValue(desc)
	case dom.KindUnit:
		return p.unitValue(desc)
	case dom.KindBool:
		switch p.l.Symbol() {
		case lexer.True:
			return true, nil
		case lexer.False:
			return false, nil
		}
	case dom.KindEnum:
		return p.enumValue(desc)
	case dom.KindColor:
		return p.parseColor(desc.Name)
	case dom.KindStruct:
		return p.structValue(desc)
	}
	return nil, p.invalidValue(desc)
}

func (p *Parser) invalidValue(desc *dom.ValueDescriptor) error {
	return p.newError(perrors.ErrInvalidValueType, map[string]any{
		"Got":  describe(p.l.Token()),
		"Kind": desc.Kind.String(),
		"Name": desc.Name,
	})
}

func (p *Parser) invalidLiteral(tok lexer.Token, kind string) error {
	return p.errorAt(tok, perrors.ErrInvalidLiteral, map[string]any{"Kind": kind, "Literal": tok.Literal})
}

func (p *Parser) stringValue(desc *dom.ValueDescriptor) (any, error) {
	if p.l.Symbol() != lexer.StringLiteral {
		return nil, p.invalidValue(desc)
	}
	s := p.l.StringValue()
	if desc.StyleRef {
		s = p.checkStyle(s)
	}
	return s, nil
}

// checkStyle substitutes the invalid style for a name that is not defined.
func (p *Parser) checkStyle(name string) string {
	if p.styles == nil || p.styles.Get(name) != nil {
		return name
	}
	p.warn(perrors.WarnUndefinedStyle, map[string]any{"Style": name})
	return dom.StyleInvalid
}

// sign consumes a leading minus and reports whether there was one.
func (p *Parser) sign() (bool, error) {
	if p.l.Symbol() != lexer.Minus {
		return false, nil
	}
	if _, err := p.readCode(); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Parser) integerValue(desc *dom.ValueDescriptor) (any, error) {
	neg, err := p.sign()
	if err != nil {
		return nil, err
	}
	tok := p.l.Token()
	switch tok.Symbol {
	case lexer.IntegerLiteral, lexer.HexIntegerLiteral, lexer.StringLiteral:
	default:
		return nil, p.invalidValue(desc)
	}
	v, err := p.l.IntValue()
	if err != nil {
		return nil, p.invalidLiteral(tok, "integer")
	}
	if neg {
		v = -v
	}
	return v, nil
}

func (p *Parser) realValue(desc *dom.ValueDescriptor) (any, error) {
	neg, err := p.sign()
	if err != nil {
		return nil, err
	}
	tok := p.l.Token()
	switch tok.Symbol {
	case lexer.RealLiteral, lexer.IntegerLiteral, lexer.HexIntegerLiteral, lexer.StringLiteral:
	default:
		return nil, p.invalidValue(desc)
	}
	v, err := p.l.RealValue()
	if err != nil {
		return nil, p.invalidLiteral(tok, "real")
	}
	if neg {
		v = -v
	}
	return v, nil
}

func (p *Parser) unitValue(desc *dom.ValueDescriptor) (dom.Unit, error) {
	neg, err := p.sign()
	if err != nil {
		return dom.Unit{}, err
	}
	tok := p.l.Token()
	var literal string
	switch tok.Symbol {
	case lexer.RealLiteral, lexer.IntegerLiteral:
		literal = tok.Literal
	case lexer.StringLiteral:
		literal = tok.Value
	default:
		return dom.Unit{}, p.invalidValue(desc)
	}
	u, err := dom.ParseUnit(literal)
	if err != nil {
		return dom.Unit{}, p.invalidLiteral(tok, "unit")
	}
	if neg {
		u = u.Neg()
	}
	return u, nil
}

func (p *Parser) enumValue(desc *dom.ValueDescriptor) (any, error) {
	if p.l.Symbol() != lexer.Identifier {
		return nil, p.invalidValue(desc)
	}
	name := p.l.StringValue()
	v, ok := desc.ParseEnum(name)
	if !ok {
		return nil, p.newError(perrors.ErrInvalidEnumValue, map[string]any{
			"Value": name,
			"Enum":  desc.EnumName(),
		}).WithSuggestion(name, desc.EnumMembers())
	}
	return v, nil
}

func (p *Parser) structValue(desc *dom.ValueDescriptor) (any, error) {
	neg, err := p.sign()
	if err != nil {
		return nil, err
	}
	tok := p.l.Token()
	var literal string
	switch {
	case tok.Symbol == lexer.StringLiteral:
		literal = tok.Value
	case tok.Symbol.IsLiteral():
		literal = tok.Literal
	default:
		return nil, p.invalidValue(desc)
	}
	if neg {
		literal = "-" + literal
	}
	v, err := desc.ParseStruct(literal)
	if err != nil {
		return nil, p.invalidLiteral(tok, desc.Kind.String())
	}
	return v, nil
}
