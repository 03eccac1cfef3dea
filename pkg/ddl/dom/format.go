package dom

// ParagraphFormat holds paragraph-level formatting.
type ParagraphFormat struct {
	node
	Alignment       ParagraphAlignment
	Font            *Font
	LeftIndent      Unit
	RightIndent     Unit
	FirstLineIndent Unit
	SpaceBefore     Unit
	SpaceAfter      Unit
	LineSpacing     Unit
	LineSpacingRule LineSpacingRule
	OutlineLevel    OutlineLevel
	KeepTogether    bool
	KeepWithNext    bool
	PageBreakBefore bool
	WidowControl    bool
	Borders         *Borders
	Shading         *Shading
	TabStops        *TabStops
}

// Font holds character formatting.
type Font struct {
	node
	Name        string
	Size        Unit
	Bold        bool
	Italic      bool
	Underline   Underline
	Color       Color
	Superscript bool
	Subscript   bool
}

// TabStop is a single tab position.
type TabStop struct {
	node
	Position  Unit
	Alignment TabAlignment
	Leader    TabLeader
}

// TabStops is the ordered set of tab positions of a paragraph format.
type TabStops struct {
	node
	Items       []*TabStop `ddl:"-"`
	TabsCleared bool       `ddl:"-"`
}

// AddTabStop appends a tab stop at pos.
func (t *TabStops) AddTabStop(pos Unit) *TabStop {
	ts := &TabStop{Position: pos}
	t.Items = append(t.Items, ts)
	return ts
}

// Add appends ts.
func (t *TabStops) Add(ts *TabStop) {
	t.Items = append(t.Items, ts)
}

// RemoveTabStop removes the tab stop at pos and reports whether one existed.
func (t *TabStops) RemoveTabStop(pos Unit) bool {
	for i, ts := range t.Items {
		if ts.Position.Equal(pos) {
			t.Items = append(t.Items[:i:i], t.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ClearAll removes all tab stops, including inherited ones.
func (t *TabStops) ClearAll() {
	t.Items = nil
	t.TabsCleared = true
}

// Count returns the number of tab stops.
func (t *TabStops) Count() int { return len(t.Items) }

// Border is one edge of a Borders set.
type Border struct {
	node
	Visible bool
	Style   BorderStyle
	Width   Unit
	Color   Color
}

// Borders describes the frame around a paragraph, cell or shape.
type Borders struct {
	node
	Top          *Border
	Bottom       *Border
	Left         *Border
	Right        *Border
	DiagonalDown *Border
	DiagonalUp   *Border
	Visible      bool
	Style        BorderStyle
	Width        Unit
	Color        Color
	Distance     Unit
}

// Shading is a background fill.
type Shading struct {
	node
	Visible bool
	Color   Color
}

// LineFormat describes the outline of a shape.
type LineFormat struct {
	node
	Visible   bool
	Width     Unit
	Color     Color
	DashStyle DashStyle
}

// FillFormat describes the fill of a shape.
type FillFormat struct {
	node
	Visible bool
	Color   Color
}

// WrapFormat describes how text flows around a shape.
type WrapFormat struct {
	node
	Style          WrapStyle
	DistanceTop    Unit
	DistanceBottom Unit
	DistanceLeft   Unit
	DistanceRight  Unit
}

// PictureFormat describes the cropping of an image.
type PictureFormat struct {
	node
	CropLeft   Unit
	CropRight  Unit
	CropTop    Unit
	CropBottom Unit
}
