package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_Kinds(t *testing.T) {
	p := NewParagraph()
	f := &Font{}
	img := &Image{}

	tests := []struct {
		obj  DocumentObject
		name string
		kind ValueKind
	}{
		{p, "Style", KindString},
		{p, "format", KindNestedObject},
		{f, "Size", KindUnit},
		{f, "BOLD", KindBool},
		{f, "Underline", KindEnum},
		{f, "Color", KindColor},
		{f, "Name", KindString},
		{img, "Left", KindStruct},
		{img, "ScaleWidth", KindReal},
		{&Column{}, "KeepWith", KindInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Describe(tt.obj, tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.kind, d.Kind)
		})
	}

	d, _ := Describe(p, "style")
	assert.True(t, d.StyleRef)
	assert.Equal(t, "Style", d.Name)
}

func TestDescribe_HiddenFields(t *testing.T) {
	_, ok := Describe(NewParagraph(), "Elements")
	assert.False(t, ok)
	_, ok = Describe(NewDocument(), "Sections")
	assert.False(t, ok)
	_, ok = Describe(&Field{}, "Type")
	assert.False(t, ok)
	_, ok = Describe(&Font{}, "NoSuchThing")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	names := Names(&Shading{})
	assert.Equal(t, []string{"Visible", "Color"}, names)
}

func TestSetGetValue(t *testing.T) {
	f := &Font{}

	require.NoError(t, SetValue(f, "size", FromPoint(10)))
	require.NoError(t, SetValue(f, "Bold", true))
	require.NoError(t, SetValue(f, "Color", RGB(255, 0, 0)))
	require.NoError(t, SetValue(f, "Underline", 1))

	assert.Equal(t, FromPoint(10), f.Size)
	assert.True(t, f.Bold)
	assert.Equal(t, Color(0xFFFF0000), f.Color)
	assert.Equal(t, UnderlineSingle, f.Underline)

	v, ok := GetValue(f, "Size")
	require.True(t, ok)
	assert.Equal(t, FromPoint(10), v)

	err := SetValue(f, "Bold", "yes")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	err = SetValue(f, "Missing", 1)
	assert.ErrorIs(t, err, ErrUnknownValue)

	require.NoError(t, SetValue(f, "Bold", nil))
	assert.False(t, f.Bold)
}

func TestCreateValue(t *testing.T) {
	p := NewParagraph()

	_, ok := GetValue(p, "Format")
	assert.False(t, ok, "unset nested object")

	obj, err := CreateValue(p, "Format")
	require.NoError(t, err)
	format, ok := obj.(*ParagraphFormat)
	require.True(t, ok)
	assert.Same(t, p.Format, format)

	again, err := CreateValue(p, "format")
	require.NoError(t, err)
	assert.Same(t, format, again)

	_, err = CreateValue(p, "Style")
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestParseEnum(t *testing.T) {
	d, ok := Describe(&ParagraphFormat{}, "Alignment")
	require.True(t, ok)
	assert.Equal(t, "ParagraphAlignment", d.EnumName())

	v, ok := d.ParseEnum("justify")
	require.True(t, ok)
	assert.Equal(t, AlignJustify, v)

	_, ok = d.ParseEnum("Sideways")
	assert.False(t, ok)
}

func TestShapePosition_ParseToken(t *testing.T) {
	d, ok := Describe(&Image{}, "Top")
	require.True(t, ok)

	tv, ok := d.NewStruct()
	require.True(t, ok)
	require.NoError(t, tv.ParseToken("center"))
	assert.Equal(t, ShapePosition{Position: ShapeCenter}, *tv.(*ShapePosition))

	require.NoError(t, tv.ParseToken("2cm"))
	assert.Equal(t, ShapePosition{Offset: FromCentimeter(2)}, *tv.(*ShapePosition))

	assert.Error(t, tv.ParseToken("sideways"))
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected Unit
		err      bool
	}{
		{"2cm", FromCentimeter(2), false},
		{"10", FromPoint(10), false},
		{"1.5 in", FromInch(1.5), false},
		{"-3MM", FromMillimeter(-3), false},
		{"2pc", Unit{Value: 2, Type: UnitPica}, false},
		{"cm", Unit{}, true},
		{"2km", Unit{}, true},
		{"", Unit{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, err := ParseUnit(tt.input)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u)
		})
	}
}

func TestUnit_Points(t *testing.T) {
	assert.InDelta(t, 72.0, FromInch(1).Points(), 1e-9)
	assert.InDelta(t, 28.3464566929, FromCentimeter(1).Points(), 1e-6)
	assert.True(t, FromCentimeter(2.54).Equal(FromInch(1)))
	assert.Equal(t, "2cm", FromCentimeter(2).String())
}

func TestColors(t *testing.T) {
	assert.Equal(t, Color(0xFFFF0080), RGB(255, 0, 128))
	assert.Equal(t, Color(0xFFFFFFFF), Gray(0))
	assert.Equal(t, Color(0xFF000000), Gray(100))
	assert.Equal(t, Color(0xFFFFFFFF), CMYK(100, 0, 0, 0, 0))
	assert.Equal(t, Color(0xFF000000), CMYK(100, 0, 0, 0, 100))
	assert.Equal(t, Color(0x80FF0000), CMYK(50, 0, 100, 100, 0))

	c, ok := LookupColor("cornflowerblue")
	require.True(t, ok)
	assert.Equal(t, Color(0xFF6495ED), c)
	assert.Equal(t, "CornflowerBlue", c.String())

	_, ok = LookupColor("Bleu")
	assert.False(t, ok)

	assert.Equal(t, uint8(0xFF), c.A())
	assert.Equal(t, uint8(0x64), c.R())
	assert.Equal(t, uint8(0x95), c.G())
	assert.Equal(t, uint8(0xED), c.B())
	assert.Equal(t, "0x12345678", Color(0x12345678).String())
	assert.IsIncreasing(t, ColorNames())
}
