package parser

import (
	"log/slog"

	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

// parseTable parses
//
//	\table[attributes]{
//	  \columns[attributes]{ \column[attributes]{}* }
//	  \rows[attributes]{ \row[attributes]{ \cell[attributes]{content}* }* }
//	}
func (p *Parser) parseTable(t *dom.Table) error {
	start := p.depth()
	return p.catch(start, p.tableBody(t))
}

func (p *Parser) tableBody(t *dom.Table) error {
	p.log(slog.LevelDebug, "parsing table", slog.Int("line", p.l.Token().Line))

	if err := p.parseOptionalAttributes(t, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	if err := p.expect(lexer.Columns); err != nil {
		return err
	}
	if err := p.parseColumns(t); err != nil {
		return err
	}
	if err := p.expect(lexer.Rows); err != nil {
		return err
	}
	if err := p.parseRows(t); err != nil {
		return err
	}
	return p.expect(lexer.BraceRight)
}

func (p *Parser) parseColumns(t *dom.Table) error {
	start := p.depth()
	return p.catch(start, p.columnsBody(t))
}

func (p *Parser) columnsBody(t *dom.Table) error {
	if err := p.parseOptionalAttributes(t.Columns, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	return p.parseBlock(lexer.BraceRight, func(sym lexer.Symbol) error {
		if sym != lexer.Column {
			return p.unexpected()
		}
		return p.parseColumn(t.AddColumn())
	})
}

func (p *Parser) parseColumn(c *dom.Column) error {
	start := p.depth()
	return p.catch(start, p.columnBody(c))
}

func (p *Parser) columnBody(c *dom.Column) error {
	if err := p.parseOptionalAttributes(c, false); err != nil {
		return err
	}
	if p.l.PeekSymbol() != lexer.BraceLeft {
		return nil
	}
	if _, err := p.readCode(); err != nil {
		return err
	}
	return p.expect(lexer.BraceRight)
}

func (p *Parser) parseRows(t *dom.Table) error {
	start := p.depth()
	return p.catch(start, p.rowsBody(t))
}

func (p *Parser) rowsBody(t *dom.Table) error {
	if err := p.parseOptionalAttributes(t.Rows, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}
	return p.parseBlock(lexer.BraceRight, func(sym lexer.Symbol) error {
		if sym != lexer.Row {
			return p.unexpected()
		}
		return p.parseRow(t.AddRow())
	})
}

func (p *Parser) parseRow(r *dom.Row) error {
	start := p.depth()
	return p.catch(start, p.rowBody(r))
}

// rowBody fills the row's cells in order. A row has exactly one cell per
// column.
func (p *Parser) rowBody(r *dom.Row) error {
	if err := p.parseOptionalAttributes(r, false); err != nil {
		return err
	}
	if err := p.expect(lexer.BraceLeft); err != nil {
		return err
	}

	index := 0
	return p.parseBlock(lexer.BraceRight, func(sym lexer.Symbol) error {
		if sym != lexer.Cell {
			return p.unexpected()
		}
		cell := r.Cells.At(index)
		index++
		if cell == nil {
			p.diags.Add(p.newError(perrors.ErrTooManyCells, map[string]any{"Count": r.Cells.Count()}))
			cell = &dom.Cell{Elements: &dom.DocumentElements{}}
		}
		return p.parseCell(cell)
	})
}

func (p *Parser) parseCell(c *dom.Cell) error {
	start := p.depth()
	return p.catch(start, p.cellBody(c))
}

func (p *Parser) cellBody(c *dom.Cell) error {
	if err := p.parseOptionalAttributes(c, false); err != nil {
		return err
	}
	if p.l.PeekSymbol() != lexer.BraceLeft {
		return nil
	}
	if _, err := p.readCode(); err != nil {
		return err
	}
	p.markText()
	return p.parseElements(c.Elements, nil)
}
