package dom

// PageSetup holds page size and margins.
type PageSetup struct {
	node
	Orientation                    Orientation
	PageFormat                     PageFormat
	PageWidth                      Unit
	PageHeight                     Unit
	TopMargin                      Unit
	BottomMargin                   Unit
	LeftMargin                     Unit
	RightMargin                    Unit
	HeaderDistance                 Unit
	FooterDistance                 Unit
	MirrorMargins                  bool
	DifferentFirstPageHeaderFooter bool
	OddAndEvenPagesHeaderFooter    bool
	SectionStart                   BreakType
	StartingNumber                 int
}

// Section is a run of pages sharing a page setup and headers.
type Section struct {
	node
	PageSetup *PageSetup
	Comment   string

	Headers  *HeadersFooters   `ddl:"-"`
	Footers  *HeadersFooters   `ddl:"-"`
	Elements *DocumentElements `ddl:"-"`
}

// NewSection returns an empty section.
func NewSection() *Section {
	return &Section{
		Headers:  &HeadersFooters{},
		Footers:  &HeadersFooters{},
		Elements: &DocumentElements{},
	}
}

// HeadersFooters holds the three header (or footer) variants of a section.
type HeadersFooters struct {
	node
	Primary   *HeaderFooter
	FirstPage *HeaderFooter
	EvenPage  *HeaderFooter
}

// HeaderFooter is the content of a page header or footer.
type HeaderFooter struct {
	node
	Style    StyleName
	Format   *ParagraphFormat
	Elements *DocumentElements `ddl:"-"`
}

// NewHeaderFooter returns an empty header or footer.
func NewHeaderFooter() *HeaderFooter {
	return &HeaderFooter{Elements: &DocumentElements{}}
}

// DocumentElements is the ordered block content of a section, cell,
// header, footer, text frame or footnote.
type DocumentElements struct {
	node
	Items []DocumentObject `ddl:"-"`
}

// Add appends obj.
func (e *DocumentElements) Add(obj DocumentObject) {
	e.Items = append(e.Items, obj)
}

// AddParagraph appends a new empty paragraph.
func (e *DocumentElements) AddParagraph() *Paragraph {
	p := NewParagraph()
	e.Add(p)
	return p
}

// AddTable appends a new empty table.
func (e *DocumentElements) AddTable() *Table {
	t := NewTable()
	e.Add(t)
	return t
}

// AddImage appends an image referring to name.
func (e *DocumentElements) AddImage(name string) *Image {
	img := &Image{Name: name}
	e.Add(img)
	return img
}

// AddTextFrame appends a new empty text frame.
func (e *DocumentElements) AddTextFrame() *TextFrame {
	tf := NewTextFrame()
	e.Add(tf)
	return tf
}

// AddBarcode appends a barcode.
func (e *DocumentElements) AddBarcode(t BarcodeType, code string) *Barcode {
	b := &Barcode{Type: t, Code: code}
	e.Add(b)
	return b
}

// AddChart appends a chart of the given type.
func (e *DocumentElements) AddChart(t ChartType) *Chart {
	c := NewChart(t)
	e.Add(c)
	return c
}

// AddPageBreak appends a page break.
func (e *DocumentElements) AddPageBreak() *PageBreak {
	pb := &PageBreak{}
	e.Add(pb)
	return pb
}

// Count returns the number of elements.
func (e *DocumentElements) Count() int { return len(e.Items) }
