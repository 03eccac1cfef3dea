package dom

import "fmt"

func memberName(i int, members []string, enum string) string {
	if i >= 0 && i < len(members) {
		return members[i]
	}
	return fmt.Sprintf("%s(%d)", enum, i)
}

// ParagraphAlignment

type ParagraphAlignment int

const (
	AlignLeft ParagraphAlignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

var paragraphAlignments = []string{"Left", "Center", "Right", "Justify"}

func (ParagraphAlignment) EnumName() string      { return "ParagraphAlignment" }
func (ParagraphAlignment) EnumMembers() []string { return paragraphAlignments }
func (a ParagraphAlignment) String() string      { return memberName(int(a), paragraphAlignments, a.EnumName()) }

// OutlineLevel

type OutlineLevel int

var outlineLevels = []string{"BodyText", "Level1", "Level2", "Level3", "Level4", "Level5", "Level6", "Level7", "Level8", "Level9"}

func (OutlineLevel) EnumName() string      { return "OutlineLevel" }
func (OutlineLevel) EnumMembers() []string { return outlineLevels }
func (o OutlineLevel) String() string      { return memberName(int(o), outlineLevels, o.EnumName()) }

// LineSpacingRule

type LineSpacingRule int

var lineSpacingRules = []string{"Single", "OnePtFive", "Double", "AtLeast", "Exactly", "Multiple"}

func (LineSpacingRule) EnumName() string      { return "LineSpacingRule" }
func (LineSpacingRule) EnumMembers() []string { return lineSpacingRules }
func (r LineSpacingRule) String() string      { return memberName(int(r), lineSpacingRules, r.EnumName()) }

// TabAlignment

type TabAlignment int

var tabAlignments = []string{"Left", "Center", "Right", "Decimal"}

func (TabAlignment) EnumName() string      { return "TabAlignment" }
func (TabAlignment) EnumMembers() []string { return tabAlignments }
func (a TabAlignment) String() string      { return memberName(int(a), tabAlignments, a.EnumName()) }

// TabLeader

type TabLeader int

var tabLeaders = []string{"Spaces", "Dots", "Dashes", "Lines", "Heavy", "MiddleDot"}

func (TabLeader) EnumName() string      { return "TabLeader" }
func (TabLeader) EnumMembers() []string { return tabLeaders }
func (l TabLeader) String() string      { return memberName(int(l), tabLeaders, l.EnumName()) }

// Underline

type Underline int

const (
	UnderlineNone Underline = iota
	UnderlineSingle
)

var underlines = []string{"None", "Single", "Words", "Double", "Dotted", "Dash", "DotDash", "DotDotDash"}

func (Underline) EnumName() string      { return "Underline" }
func (Underline) EnumMembers() []string { return underlines }
func (u Underline) String() string      { return memberName(int(u), underlines, u.EnumName()) }

// BorderStyle

type BorderStyle int

var borderStyles = []string{"None", "Single", "Dot", "DashLargeGap", "DashSmallGap", "DashDot", "DashDotDot"}

func (BorderStyle) EnumName() string      { return "BorderStyle" }
func (BorderStyle) EnumMembers() []string { return borderStyles }
func (s BorderStyle) String() string      { return memberName(int(s), borderStyles, s.EnumName()) }

// DashStyle

type DashStyle int

var dashStyles = []string{"Solid", "Dash", "SquareDot", "DashDot", "LongDash", "LongDashDot", "LongDashDotDot"}

func (DashStyle) EnumName() string      { return "DashStyle" }
func (DashStyle) EnumMembers() []string { return dashStyles }
func (s DashStyle) String() string      { return memberName(int(s), dashStyles, s.EnumName()) }

// Orientation

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

var orientations = []string{"Portrait", "Landscape"}

func (Orientation) EnumName() string      { return "Orientation" }
func (Orientation) EnumMembers() []string { return orientations }
func (o Orientation) String() string      { return memberName(int(o), orientations, o.EnumName()) }

// PageFormat

type PageFormat int

var pageFormats = []string{"A4", "A0", "A1", "A2", "A3", "A5", "A6", "B5", "Letter", "Legal", "Ledger", "P11x17"}

func (PageFormat) EnumName() string      { return "PageFormat" }
func (PageFormat) EnumMembers() []string { return pageFormats }
func (f PageFormat) String() string      { return memberName(int(f), pageFormats, f.EnumName()) }

// BreakType

type BreakType int

var breakTypes = []string{"BreakNextPage", "BreakEvenPage", "BreakOddPage"}

func (BreakType) EnumName() string      { return "BreakType" }
func (BreakType) EnumMembers() []string { return breakTypes }
func (b BreakType) String() string      { return memberName(int(b), breakTypes, b.EnumName()) }

// VerticalAlignment

type VerticalAlignment int

var verticalAlignments = []string{"Top", "Center", "Bottom"}

func (VerticalAlignment) EnumName() string      { return "VerticalAlignment" }
func (VerticalAlignment) EnumMembers() []string { return verticalAlignments }
func (a VerticalAlignment) String() string      { return memberName(int(a), verticalAlignments, a.EnumName()) }

// RowHeightRule

type RowHeightRule int

var rowHeightRules = []string{"AtLeast", "Auto", "Exactly"}

func (RowHeightRule) EnumName() string      { return "RowHeightRule" }
func (RowHeightRule) EnumMembers() []string { return rowHeightRules }
func (r RowHeightRule) String() string      { return memberName(int(r), rowHeightRules, r.EnumName()) }

// RowAlignment

type RowAlignment int

var rowAlignments = []string{"Left", "Center", "Right"}

func (RowAlignment) EnumName() string      { return "RowAlignment" }
func (RowAlignment) EnumMembers() []string { return rowAlignments }
func (a RowAlignment) String() string      { return memberName(int(a), rowAlignments, a.EnumName()) }

// WrapStyle

type WrapStyle int

var wrapStyles = []string{"TopBottom", "None", "Through"}

func (WrapStyle) EnumName() string      { return "WrapStyle" }
func (WrapStyle) EnumMembers() []string { return wrapStyles }
func (s WrapStyle) String() string      { return memberName(int(s), wrapStyles, s.EnumName()) }

// RelativeHorizontal

type RelativeHorizontal int

var relativeHorizontals = []string{"Character", "Column", "Margin", "Page"}

func (RelativeHorizontal) EnumName() string      { return "RelativeHorizontal" }
func (RelativeHorizontal) EnumMembers() []string { return relativeHorizontals }
func (r RelativeHorizontal) String() string      { return memberName(int(r), relativeHorizontals, r.EnumName()) }

// RelativeVertical

type RelativeVertical int

var relativeVerticals = []string{"Line", "Margin", "Page", "Paragraph"}

func (RelativeVertical) EnumName() string      { return "RelativeVertical" }
func (RelativeVertical) EnumMembers() []string { return relativeVerticals }
func (r RelativeVertical) String() string      { return memberName(int(r), relativeVerticals, r.EnumName()) }

// TextOrientation

type TextOrientation int

var textOrientations = []string{"Horizontal", "Upward", "Downward", "Vertical", "VerticalFarEast", "HorizontalRotatedFarEast"}

func (TextOrientation) EnumName() string      { return "TextOrientation" }
func (TextOrientation) EnumMembers() []string { return textOrientations }
func (o TextOrientation) String() string      { return memberName(int(o), textOrientations, o.EnumName()) }

// ChartType

type ChartType int

const (
	ChartLine ChartType = iota
	ChartColumn2D
	ChartColumnStacked2D
	ChartArea2D
	ChartBar2D
	ChartBarStacked2D
	ChartPie2D
	ChartPieExploded2D
)

var chartTypes = []string{"Line", "Column2D", "ColumnStacked2D", "Area2D", "Bar2D", "BarStacked2D", "Pie2D", "PieExploded2D"}

func (ChartType) EnumName() string      { return "ChartType" }
func (ChartType) EnumMembers() []string { return chartTypes }
func (t ChartType) String() string      { return memberName(int(t), chartTypes, t.EnumName()) }

// ParseChartType matches a chart type name, ignoring case.
func ParseChartType(name string) (ChartType, bool) {
	return parseMember[ChartType](name, chartTypes)
}

// TickMarkType

type TickMarkType int

var tickMarkTypes = []string{"None", "Inside", "Outside", "Cross"}

func (TickMarkType) EnumName() string      { return "TickMarkType" }
func (TickMarkType) EnumMembers() []string { return tickMarkTypes }
func (t TickMarkType) String() string      { return memberName(int(t), tickMarkTypes, t.EnumName()) }

// DataLabelPosition

type DataLabelPosition int

var dataLabelPositions = []string{"Center", "InsideBase", "InsideEnd", "OutsideEnd"}

func (DataLabelPosition) EnumName() string      { return "DataLabelPosition" }
func (DataLabelPosition) EnumMembers() []string { return dataLabelPositions }
func (p DataLabelPosition) String() string      { return memberName(int(p), dataLabelPositions, p.EnumName()) }

// DataLabelType

type DataLabelType int

var dataLabelTypes = []string{"None", "Percent", "Value"}

func (DataLabelType) EnumName() string      { return "DataLabelType" }
func (DataLabelType) EnumMembers() []string { return dataLabelTypes }
func (t DataLabelType) String() string      { return memberName(int(t), dataLabelTypes, t.EnumName()) }

// MarkerStyle

type MarkerStyle int

var markerStyles = []string{"None", "Circle", "Dash", "Diamond", "Dot", "Plus", "Square", "Star", "Triangle", "X"}

func (MarkerStyle) EnumName() string      { return "MarkerStyle" }
func (MarkerStyle) EnumMembers() []string { return markerStyles }
func (s MarkerStyle) String() string      { return memberName(int(s), markerStyles, s.EnumName()) }

// BlankType

type BlankType int

var blankTypes = []string{"NotPlotted", "Interpolated", "Zero"}

func (BlankType) EnumName() string      { return "BlankType" }
func (BlankType) EnumMembers() []string { return blankTypes }
func (t BlankType) String() string      { return memberName(int(t), blankTypes, t.EnumName()) }

// BarcodeType

type BarcodeType int

var barcodeTypes = []string{"Barcode25i", "Barcode39", "Barcode128", "Ean13"}

func (BarcodeType) EnumName() string      { return "BarcodeType" }
func (BarcodeType) EnumMembers() []string { return barcodeTypes }
func (t BarcodeType) String() string      { return memberName(int(t), barcodeTypes, t.EnumName()) }

// ParseBarcodeType matches a barcode type name, ignoring case.
func ParseBarcodeType(name string) (BarcodeType, bool) {
	return parseMember[BarcodeType](name, barcodeTypes)
}

// HyperlinkType

type HyperlinkType int

var hyperlinkTypes = []string{"Local", "Web", "File"}

func (HyperlinkType) EnumName() string      { return "HyperlinkType" }
func (HyperlinkType) EnumMembers() []string { return hyperlinkTypes }
func (t HyperlinkType) String() string      { return memberName(int(t), hyperlinkTypes, t.EnumName()) }

// FieldType

type FieldType int

const (
	FieldPage FieldType = iota
	FieldNumPages
	FieldSectionPages
	FieldSection
	FieldDate
	FieldBookmark
	FieldPageRef
	FieldInfo
)

var fieldTypes = []string{"Page", "NumPages", "SectionPages", "Section", "Date", "Bookmark", "PageRef", "Info"}

func (FieldType) EnumName() string      { return "FieldType" }
func (FieldType) EnumMembers() []string { return fieldTypes }
func (t FieldType) String() string      { return memberName(int(t), fieldTypes, t.EnumName()) }

// ParseFieldType matches a field type name, ignoring case.
func ParseFieldType(name string) (FieldType, bool) {
	return parseMember[FieldType](name, fieldTypes)
}

// FieldTypeNames returns the field type names.
func FieldTypeNames() []string { return fieldTypes }

// SymbolName

type SymbolName int

const (
	SymbolBlank SymbolName = iota
	SymbolEm
	SymbolEn
	SymbolEmQuarter
	SymbolEm4
	SymbolTab
	SymbolLineBreak
	SymbolParaBreak
	SymbolEuro
	SymbolCopyright
	SymbolTrademark
	SymbolRegisteredTrademark
	SymbolBullet
	SymbolNot
	SymbolEmDash
	SymbolEnDash
	SymbolNonBreakableBlank
	SymbolHardBlank
	SymbolChar // a character given by its code
)

var symbolNames = []string{
	"Blank", "Em", "En", "EmQuarter", "Em4", "Tab", "LineBreak", "ParaBreak", "Euro",
	"Copyright", "Trademark", "RegisteredTrademark", "Bullet", "Not", "EmDash", "EnDash",
	"NonBreakableBlank", "HardBlank", "Char",
}

func (SymbolName) EnumName() string      { return "SymbolName" }
func (SymbolName) EnumMembers() []string { return symbolNames }
func (s SymbolName) String() string      { return memberName(int(s), symbolNames, s.EnumName()) }

// ParseSymbolName matches a symbol name, ignoring case.
func ParseSymbolName(name string) (SymbolName, bool) {
	return parseMember[SymbolName](name, symbolNames)
}

// SymbolNames returns the symbol names.
func SymbolNames() []string { return symbolNames }

// ShapeAlignment

type ShapeAlignment int

const (
	AlignOffset ShapeAlignment = iota
	ShapeLeft
	ShapeRight
	ShapeCenter
	ShapeTop
	ShapeBottom
	ShapeInside
	ShapeOutside
)

var shapeAlignments = []string{"Offset", "Left", "Right", "Center", "Top", "Bottom", "Inside", "Outside"}

func (ShapeAlignment) EnumName() string      { return "ShapeAlignment" }
func (ShapeAlignment) EnumMembers() []string { return shapeAlignments }
func (a ShapeAlignment) String() string      { return memberName(int(a), shapeAlignments, a.EnumName()) }

// StyleType

type StyleType int

const (
	ParagraphStyle StyleType = iota
	CharacterStyle
)

var styleTypes = []string{"Paragraph", "Character"}

func (StyleType) EnumName() string      { return "StyleType" }
func (StyleType) EnumMembers() []string { return styleTypes }
func (t StyleType) String() string      { return memberName(int(t), styleTypes, t.EnumName()) }

func parseMember[T ~int](name string, members []string) (T, bool) {
	folded := FoldName(name)
	for i, m := range members {
		if FoldName(m) == folded {
			return T(i), true
		}
	}
	return 0, false
}
