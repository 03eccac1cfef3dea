package dom

// Table is a grid of cells defined by its columns and rows.
type Table struct {
	node
	Style         StyleName
	Format        *ParagraphFormat
	Borders       *Borders
	Shading       *Shading
	TopPadding    Unit
	BottomPadding Unit
	LeftPadding   Unit
	RightPadding  Unit
	KeepTogether  bool

	Columns *Columns `ddl:"-"`
	Rows    *Rows    `ddl:"-"`
}

// NewTable returns a table without columns or rows.
func NewTable() *Table {
	return &Table{Columns: &Columns{}, Rows: &Rows{}}
}

// AddColumn appends a column.
func (t *Table) AddColumn() *Column {
	c := &Column{Index: len(t.Columns.Items)}
	t.Columns.Items = append(t.Columns.Items, c)
	return c
}

// AddRow appends a row with one empty cell per column.
func (t *Table) AddRow() *Row {
	r := &Row{Index: len(t.Rows.Items), Cells: &Cells{}}
	for i := range t.Columns.Items {
		r.Cells.Items = append(r.Cells.Items, &Cell{Column: i, Elements: &DocumentElements{}})
	}
	t.Rows.Items = append(t.Rows.Items, r)
	return r
}

// Cell returns the cell at row, column or nil.
func (t *Table) Cell(row, column int) *Cell {
	if row < 0 || row >= len(t.Rows.Items) {
		return nil
	}
	return t.Rows.Items[row].Cells.At(column)
}

// Columns is the column list of a table.
type Columns struct {
	node
	Width Unit
	Items []*Column `ddl:"-"`
}

// Count returns the number of columns.
func (c *Columns) Count() int { return len(c.Items) }

// Column describes the width and default format of a table column.
type Column struct {
	node
	Index         int `ddl:"-"`
	Width         Unit
	Style         StyleName
	Format        *ParagraphFormat
	Borders       *Borders
	Shading       *Shading
	LeftPadding   Unit
	RightPadding  Unit
	KeepWith      int
	HeadingFormat bool
}

// Rows is the row list of a table.
type Rows struct {
	node
	Alignment         RowAlignment
	LeftIndent        Unit
	Height            Unit
	HeightRule        RowHeightRule
	VerticalAlignment VerticalAlignment
	Items             []*Row `ddl:"-"`
}

// Count returns the number of rows.
func (r *Rows) Count() int { return len(r.Items) }

// Row is one table row.
type Row struct {
	node
	Index             int `ddl:"-"`
	Height            Unit
	HeightRule        RowHeightRule
	HeadingFormat     bool
	Style             StyleName
	Format            *ParagraphFormat
	Borders           *Borders
	Shading           *Shading
	VerticalAlignment VerticalAlignment
	TopPadding        Unit
	BottomPadding     Unit
	KeepWith          int
	Cells             *Cells `ddl:"-"`
}

// Cells is the fixed cell list of a row.
type Cells struct {
	node
	Items []*Cell `ddl:"-"`
}

// At returns the cell at index or nil.
func (c *Cells) At(index int) *Cell {
	if index < 0 || index >= len(c.Items) {
		return nil
	}
	return c.Items[index]
}

// Count returns the number of cells.
func (c *Cells) Count() int { return len(c.Items) }

// Cell is one table cell holding block content.
type Cell struct {
	node
	Column            int `ddl:"-"`
	Style             StyleName
	Format            *ParagraphFormat
	Borders           *Borders
	Shading           *Shading
	VerticalAlignment VerticalAlignment
	MergeRight        int
	MergeDown         int
	Elements          *DocumentElements `ddl:"-"`
}
