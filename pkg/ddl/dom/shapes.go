package dom

import "fmt"

// ShapePosition is the Left or Top coordinate of a shape: either a named
// alignment or an offset.
type ShapePosition struct {
	Position ShapeAlignment
	Offset   Unit
}

// ParseToken reads an alignment name ("Center") or a length ("2cm").
func (p *ShapePosition) ParseToken(literal string) error {
	if a, ok := parseMember[ShapeAlignment](literal, shapeAlignments); ok && a != AlignOffset {
		*p = ShapePosition{Position: a}
		return nil
	}
	u, err := ParseUnit(literal)
	if err != nil {
		return fmt.Errorf("invalid shape position %q", literal)
	}
	*p = ShapePosition{Position: AlignOffset, Offset: u}
	return nil
}

func (p ShapePosition) String() string {
	if p.Position == AlignOffset {
		return p.Offset.String()
	}
	return p.Position.String()
}

// Image is a picture placed inline or as a block.
type Image struct {
	node
	Name               string
	Width              Unit
	Height             Unit
	ScaleWidth         float64
	ScaleHeight        float64
	LockAspectRatio    bool
	Resolution         float64
	Left               ShapePosition
	Top                ShapePosition
	RelativeHorizontal RelativeHorizontal
	RelativeVertical   RelativeVertical
	WrapFormat         *WrapFormat
	LineFormat         *LineFormat
	PictureFormat      *PictureFormat
}

// TextFrame is a positioned box holding block content.
type TextFrame struct {
	node
	Width              Unit
	Height             Unit
	Left               ShapePosition
	Top                ShapePosition
	RelativeHorizontal RelativeHorizontal
	RelativeVertical   RelativeVertical
	Orientation        TextOrientation
	MarginLeft         Unit
	MarginRight        Unit
	MarginTop          Unit
	MarginBottom       Unit
	WrapFormat         *WrapFormat
	LineFormat         *LineFormat
	FillFormat         *FillFormat
	Elements           *DocumentElements `ddl:"-"`
}

// NewTextFrame returns an empty text frame.
func NewTextFrame() *TextFrame {
	return &TextFrame{Elements: &DocumentElements{}}
}

// Barcode is a barcode shape.
type Barcode struct {
	node
	Type        BarcodeType `ddl:"-"`
	Code        string
	Width       Unit
	Height      Unit
	Left        ShapePosition
	Top         ShapePosition
	Orientation TextOrientation
	Text        bool
	BearerBars  bool
	LineRatio   float64
	LineFormat  *LineFormat
}
