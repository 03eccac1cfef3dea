package parser

import (
	"log/slog"

	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

// parseChart parses `\chart(Type)[attributes]{ part* }`. The parts are
// text areas, the plot area, axes, series and x values.
func (p *Parser) parseChart(elems *dom.DocumentElements) error {
	start := p.depth()
	return p.catch(start, p.chartBody(elems))
}

func (p *Parser) chartBody(elems *dom.DocumentElements) error {
	if err := p.expect(lexer.ParenLeft); err != nil {
		return err
	}
	if err := p.expect(lexer.Identifier); err != nil {
		return err
	}
	name := p.l.StringValue()
	t, ok := dom.ParseChartType(name)
	if !ok {
		return p.newError(perrors.ErrUnknownChartType, map[string]any{"Name": name}).
			WithSuggestion(name, t.EnumMembers())
	}
	if err := p.expect(lexer.ParenRight); err != nil {
		return err
	}

	p.log(slog.LevelDebug, "parsing chart", slog.String("type", t.String()))
	chart := elems.AddChart(t)
	if err := p.parseOptionalAttributes(chart, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	return p.parseBlock(lexer.BraceRight, func(sym lexer.Symbol) error {
		switch sym {
		case lexer.HeaderArea, lexer.FooterArea, lexer.TopArea,
			lexer.BottomArea, lexer.LeftArea, lexer.RightArea:
			return p.parseTextArea(textArea(chart, sym))
		case lexer.PlotArea:
			if chart.PlotArea == nil {
				chart.PlotArea = &dom.PlotArea{}
			}
			return p.parseChartPart(chart.PlotArea)
		case lexer.XAxis, lexer.YAxis, lexer.ZAxis:
			return p.parseChartPart(axis(chart, sym))
		case lexer.Series:
			return p.parseSeries(chart.SeriesCollection.AddSeries())
		case lexer.XValues:
			return p.parseXValues(chart.XValues.AddXSeries())
		}
		return p.unexpected()
	})
}

func textArea(chart *dom.Chart, sym lexer.Symbol) *dom.TextArea {
	var slot **dom.TextArea
	switch sym {
	case lexer.HeaderArea:
		slot = &chart.HeaderArea
	case lexer.FooterArea:
		slot = &chart.FooterArea
	case lexer.TopArea:
		slot = &chart.TopArea
	case lexer.BottomArea:
		slot = &chart.BottomArea
	case lexer.LeftArea:
		slot = &chart.LeftArea
	default:
		slot = &chart.RightArea
	}
	if *slot == nil {
		*slot = dom.NewTextArea()
	}
	return *slot
}

func axis(chart *dom.Chart, sym lexer.Symbol) *dom.Axis {
	var slot **dom.Axis
	switch sym {
	case lexer.XAxis:
		slot = &chart.XAxis
	case lexer.YAxis:
		slot = &chart.YAxis
	default:
		slot = &chart.ZAxis
	}
	if *slot == nil {
		*slot = &dom.Axis{}
	}
	return *slot
}

// parseChartPart parses the attributes of the plot area or an axis. Their
// bodies are skipped.
func (p *Parser) parseChartPart(obj dom.DocumentObject) error {
	start := p.depth()
	return p.catch(start, p.chartPartBody(obj))
}

func (p *Parser) chartPartBody(obj dom.DocumentObject) error {
	if err := p.parseOptionalAttributes(obj, false); err != nil {
		return err
	}
	if p.l.PeekSymbol() != lexer.BraceLeft {
		return nil
	}
	if _, err := p.readCode(); err != nil {
		return err
	}
	return p.skipConstruct()
}

// parseTextArea parses a chart area holding a legend, paragraphs, tables
// or images. Other content is skipped.
func (p *Parser) parseTextArea(area *dom.TextArea) error {
	start := p.depth()
	return p.catch(start, p.textAreaBody(area))
}

func (p *Parser) textAreaBody(area *dom.TextArea) error {
	if err := p.parseOptionalAttributes(area, false); err != nil {
		return err
	}
	if p.l.PeekSymbol() != lexer.BraceLeft {
		return nil
	}
	if _, err := p.readCode(); err != nil {
		return err
	}
	return p.parseBlock(lexer.BraceRight, func(sym lexer.Symbol) error {
		switch sym {
		case lexer.Legend:
			if area.Legend == nil {
				area.Legend = &dom.Legend{}
			}
			return p.parseChartPart(area.Legend)
		case lexer.Paragraph:
			return p.parseParagraph(area.Elements.AddParagraph())
		case lexer.Table:
			return p.parseTable(area.Elements.AddTable())
		case lexer.Image:
			return p.parseImage(area.Elements.AddImage(""), false)
		}
		p.log(slog.LevelDebug, "skipping chart area content", slog.String("symbol", sym.String()))
		return p.skipConstruct()
	})
}

// parseSeries parses `\series[attributes]{ value (, value)* }`, where a
// value is a number, null or `\point[attributes]{number}`.
func (p *Parser) parseSeries(s *dom.Series) error {
	start := p.depth()
	return p.catch(start, p.seriesBody(s))
}

func (p *Parser) seriesBody(s *dom.Series) error {
	if err := p.parseOptionalAttributes(s, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	return p.parseList(func() error {
		switch p.l.Symbol() {
		case lexer.Null:
			s.AddBlank()
			return nil
		case lexer.Point:
			return p.parsePoint(s.Add(0))
		}
		v, err := p.number()
		if err != nil {
			return err
		}
		s.Add(v)
		return nil
	})
}

func (p *Parser) parsePoint(pt *dom.Point) error {
	start := p.depth()
	return p.catch(start, p.pointBody(pt))
}

func (p *Parser) pointBody(pt *dom.Point) error {
	if err := p.parseOptionalAttributes(pt, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	if _, err := p.readCode(); err != nil {
		return err
	}
	v, err := p.number()
	if err != nil {
		return err
	}
	pt.Value = v
	return p.expect(lexer.BraceRight)
}

// parseXValues parses `\xvalues{ value (, value)* }` where a value is a
// string, a number or null.
func (p *Parser) parseXValues(xs *dom.XSeries) error {
	start := p.depth()
	return p.catch(start, p.xValuesBody(xs))
}

func (p *Parser) xValuesBody(xs *dom.XSeries) error {
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	return p.parseList(func() error {
		tok := p.l.Token()
		switch {
		case tok.Symbol == lexer.Null:
			xs.AddBlank()
		case tok.Symbol == lexer.StringLiteral:
			xs.Add(tok.Value)
		case tok.Symbol.IsNumber():
			xs.Add(tok.Literal)
		default:
			return p.unexpected()
		}
		return nil
	})
}

// parseList reads comma-separated values up to the closing brace; the
// opening brace is current. item parses one value starting at the current
// token. A comma must separate consecutive values.
func (p *Parser) parseList(item func() error) error {
	first := true
	for {
		sym, err := p.readCode()
		if err != nil {
			return err
		}
		if sym == lexer.BraceRight {
			return nil
		}
		if first {
			if sym == lexer.Comma {
				return p.unexpected()
			}
		} else {
			if sym != lexer.Comma {
				return p.newError(perrors.ErrMissingComma, map[string]any{"Got": describe(p.l.Token())})
			}
			if _, err := p.readCode(); err != nil {
				return err
			}
		}
		first = false
		if err := item(); err != nil {
			return err
		}
	}
}

// number reads an optionally negated numeric literal starting at the
// current token.
func (p *Parser) number() (float64, error) {
	neg, err := p.sign()
	if err != nil {
		return 0, err
	}
	tok := p.l.Token()
	if !tok.Symbol.IsNumber() {
		return 0, p.unexpected()
	}
	v, err := p.l.RealValue()
	if err != nil {
		return 0, p.invalidLiteral(tok, "real")
	}
	if neg {
		v = -v
	}
	return v, nil
}
