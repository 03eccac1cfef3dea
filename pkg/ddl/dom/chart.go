package dom

// Chart is a business chart with its areas, axes and data.
type Chart struct {
	node
	Type            ChartType `ddl:"-"`
	Width           Unit
	Height          Unit
	Left            ShapePosition
	Top             ShapePosition
	Style           StyleName
	Format          *ParagraphFormat
	LineFormat      *LineFormat
	FillFormat      *FillFormat
	DisplayBlanksAs BlankType
	PivotChart      bool
	HasDataLabel    bool
	DataLabel       *DataLabel

	HeaderArea *TextArea
	FooterArea *TextArea
	TopArea    *TextArea
	BottomArea *TextArea
	LeftArea   *TextArea
	RightArea  *TextArea
	PlotArea   *PlotArea
	XAxis      *Axis
	YAxis      *Axis
	ZAxis      *Axis

	SeriesCollection *SeriesCollection `ddl:"-"`
	XValues          *XValues          `ddl:"-"`
}

// NewChart returns an empty chart of type t.
func NewChart(t ChartType) *Chart {
	return &Chart{
		Type:             t,
		SeriesCollection: &SeriesCollection{},
		XValues:          &XValues{},
	}
}

// TextArea is a chart area that holds text, tables, images or a legend.
type TextArea struct {
	node
	Style             StyleName
	Format            *ParagraphFormat
	LineFormat        *LineFormat
	FillFormat        *FillFormat
	Width             Unit
	Height            Unit
	LeftPadding       Unit
	RightPadding      Unit
	TopPadding        Unit
	BottomPadding     Unit
	VerticalAlignment VerticalAlignment

	Legend   *Legend           `ddl:"-"`
	Elements *DocumentElements `ddl:"-"`
}

// NewTextArea returns an empty chart text area.
func NewTextArea() *TextArea {
	return &TextArea{Elements: &DocumentElements{}}
}

// PlotArea is the area the series are drawn in.
type PlotArea struct {
	node
	LineFormat    *LineFormat
	FillFormat    *FillFormat
	LeftPadding   Unit
	RightPadding  Unit
	TopPadding    Unit
	BottomPadding Unit
}

// Legend lists the series of a chart.
type Legend struct {
	node
	Style      StyleName
	Format     *ParagraphFormat
	LineFormat *LineFormat
}

// Axis is an x, y or z axis of a chart.
type Axis struct {
	node
	Title             *AxisTitle
	MinimumScale      float64
	MaximumScale      float64
	MajorTick         float64
	MinorTick         float64
	MajorTickMark     TickMarkType
	MinorTickMark     TickMarkType
	TickLabels        *TickLabels
	LineFormat        *LineFormat
	MajorGridlines    *Gridlines
	MinorGridlines    *Gridlines
	HasMajorGridlines bool
	HasMinorGridlines bool
}

// AxisTitle is the caption of an axis.
type AxisTitle struct {
	node
	Caption           string
	Style             StyleName
	Font              *Font
	Orientation       float64
	Alignment         ParagraphAlignment
	VerticalAlignment VerticalAlignment
}

// TickLabels formats the labels of an axis.
type TickLabels struct {
	node
	Style  StyleName
	Format string
	Font   *Font
}

// Gridlines formats the grid of an axis.
type Gridlines struct {
	node
	LineFormat *LineFormat
}

// DataLabel formats the value labels of a chart or series.
type DataLabel struct {
	node
	Style    StyleName
	Font     *Font
	Format   string
	Position DataLabelPosition
	Type     DataLabelType
}

// SeriesCollection is the ordered list of a chart's series.
type SeriesCollection struct {
	node
	Items []*Series `ddl:"-"`
}

// AddSeries appends a new empty series.
func (s *SeriesCollection) AddSeries() *Series {
	series := &Series{}
	s.Items = append(s.Items, series)
	return series
}

// Count returns the number of series.
func (s *SeriesCollection) Count() int { return len(s.Items) }

// Series is one data series. A nil entry in Points is a blank value.
type Series struct {
	node
	Name                  string
	ChartType             ChartType
	MarkerStyle           MarkerStyle
	MarkerSize            Unit
	MarkerForegroundColor Color
	MarkerBackgroundColor Color
	HasDataLabel          bool
	DataLabel             *DataLabel
	LineFormat            *LineFormat
	FillFormat            *FillFormat

	Points []*Point `ddl:"-"`
}

// Add appends a point with value v.
func (s *Series) Add(v float64) *Point {
	p := &Point{Value: v}
	s.Points = append(s.Points, p)
	return p
}

// AddBlank appends a blank value.
func (s *Series) AddBlank() {
	s.Points = append(s.Points, nil)
}

// Point is one value of a series.
type Point struct {
	node
	Value      float64
	LineFormat *LineFormat
	FillFormat *FillFormat
}

// XValues holds the category labels of a chart.
type XValues struct {
	node
	Items []*XSeries `ddl:"-"`
}

// AddXSeries appends a new empty category series.
func (x *XValues) AddXSeries() *XSeries {
	xs := &XSeries{}
	x.Items = append(x.Items, xs)
	return xs
}

// XValue is one category label; Blank marks a null entry.
type XValue struct {
	Value string
	Blank bool
}

// XSeries is one list of category labels.
type XSeries struct {
	node
	Values []XValue `ddl:"-"`
}

// Add appends a category label.
func (x *XSeries) Add(v string) {
	x.Values = append(x.Values, XValue{Value: v})
}

// AddBlank appends a blank category.
func (x *XSeries) AddBlank() {
	x.Values = append(x.Values, XValue{Blank: true})
}
