package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

func parseDocument(t *testing.T, src string) (*dom.Document, *perrors.Diagnostics) {
	t.Helper()
	p := New(lexer.New(src))
	doc, err := p.ParseDocument(nil)
	require.NoError(t, err)
	return doc, p.Diagnostics()
}

func parseObject(t *testing.T, src string) (dom.DocumentObject, *perrors.Diagnostics) {
	t.Helper()
	p := New(lexer.New(src))
	obj, err := p.ParseDocumentObject()
	require.NoError(t, err)
	return obj, p.Diagnostics()
}

func parseSection(t *testing.T, src string) (*dom.Section, *perrors.Diagnostics) {
	t.Helper()
	obj, diags := parseObject(t, src)
	sec, ok := obj.(*dom.Section)
	require.True(t, ok, "expected *dom.Section, got %T", obj)
	return sec, diags
}

func parseParagraph(t *testing.T, src string) (*dom.Paragraph, *perrors.Diagnostics) {
	t.Helper()
	obj, diags := parseObject(t, src)
	para, ok := obj.(*dom.Paragraph)
	require.True(t, ok, "expected *dom.Paragraph, got %T", obj)
	return para, diags
}

func codes(diags *perrors.Diagnostics) []perrors.Code {
	var out []perrors.Code
	for _, d := range diags.All() {
		out = append(out, d.Code)
	}
	return out
}

func TestSection_ParagraphOrElement(t *testing.T) {
	t.Run("prose becomes a paragraph", func(t *testing.T) {
		sec, diags := parseSection(t, `\section{ Hello }`)
		assert.Zero(t, diags.Len())
		require.Equal(t, 1, sec.Elements.Count())
		para, ok := sec.Elements.Items[0].(*dom.Paragraph)
		require.True(t, ok)
		assert.Equal(t, "Hello", para.Text())
	})

	t.Run("block image is a direct element", func(t *testing.T) {
		sec, diags := parseSection(t, `\section{ \image("x.png") }`)
		assert.Zero(t, diags.Len())
		require.Equal(t, 1, sec.Elements.Count())
		img, ok := sec.Elements.Items[0].(*dom.Image)
		require.True(t, ok)
		assert.Equal(t, "x.png", img.Name)
	})

	t.Run("image inside an explicit paragraph", func(t *testing.T) {
		sec, diags := parseSection(t, `\section{ \paragraph{ \image("x.png") } }`)
		assert.Zero(t, diags.Len())
		require.Equal(t, 1, sec.Elements.Count())
		para, ok := sec.Elements.Items[0].(*dom.Paragraph)
		require.True(t, ok)
		require.Equal(t, 1, para.Elements.Count())
		img, ok := para.Elements.Items[0].(*dom.Image)
		require.True(t, ok)
		assert.Equal(t, "x.png", img.Name)
	})

	t.Run("inline keyword starts a paragraph", func(t *testing.T) {
		sec, diags := parseSection(t, `\section{ \bold{Hi} there }`)
		assert.Zero(t, diags.Len())
		require.Equal(t, 1, sec.Elements.Count())
		para, ok := sec.Elements.Items[0].(*dom.Paragraph)
		require.True(t, ok)
		assert.Equal(t, "Hi there", para.Text())
	})
}

func TestSection_ImplicitParagraphs(t *testing.T) {
	src := "\\section{\n  First line\n  continues\n\n  Second\n}"
	sec, diags := parseSection(t, src)
	assert.Zero(t, diags.Len())

	require.Equal(t, 2, sec.Elements.Count())
	assert.Equal(t, "First line continues", sec.Elements.Items[0].(*dom.Paragraph).Text())
	assert.Equal(t, "Second", sec.Elements.Items[1].(*dom.Paragraph).Text())
}

func TestSection_Attributes(t *testing.T) {
	sec, diags := parseSection(t, `\section[PageSetup.Orientation = Landscape PageSetup.TopMargin = 2cm]{}`)
	assert.Zero(t, diags.Len())
	require.NotNil(t, sec.PageSetup)
	assert.Equal(t, dom.Landscape, sec.PageSetup.Orientation)
	assert.Equal(t, dom.FromCentimeter(2), sec.PageSetup.TopMargin)
	assert.Zero(t, sec.Elements.Count())
}

func TestParagraph_Inline(t *testing.T) {
	para, diags := parseParagraph(t, `\paragraph{Hello \bold{big} world\tab\field(Page) \symbol(Euro)\chr(65)\(66)\-end}`)
	assert.Zero(t, diags.Len(), diags.String())

	require.Equal(t, 11, para.Elements.Count())
	assert.Equal(t, "Hello big world\t €AB\u00adend", para.Text())

	ft, ok := para.Elements.Items[1].(*dom.FormattedText)
	require.True(t, ok)
	require.NotNil(t, ft.Font)
	assert.True(t, ft.Font.Bold)

	field, ok := para.Elements.Items[4].(*dom.Field)
	require.True(t, ok)
	assert.Equal(t, dom.FieldPage, field.Type)

	euro, ok := para.Elements.Items[6].(*dom.Character)
	require.True(t, ok)
	assert.Equal(t, dom.SymbolEuro, euro.Symbol)
}

func TestParagraph_Fonts(t *testing.T) {
	para, diags := parseParagraph(t, `\paragraph{\font[Name = "Arial" Size = 12]{x} \fontsize(14pt){y} \fontcolor(Blue){z}}`)
	assert.Zero(t, diags.Len(), diags.String())

	var fonts []*dom.Font
	for _, item := range para.Elements.Items {
		if ft, ok := item.(*dom.FormattedText); ok {
			fonts = append(fonts, ft.Font)
		}
	}
	require.Len(t, fonts, 3)
	assert.Equal(t, "Arial", fonts[0].Name)
	assert.Equal(t, dom.FromPoint(12), fonts[0].Size)
	assert.Equal(t, dom.FromPoint(14), fonts[1].Size)
	assert.Equal(t, dom.Color(0xFF0000FF), fonts[2].Color)
	assert.Equal(t, "x y z", para.Text())
}

func TestParagraph_FootnoteAndHyperlink(t *testing.T) {
	para, diags := parseParagraph(t, `\paragraph{Text\footnote{Note} \hyperlink[Name = "http://x" Type = Web]{link}}`)
	assert.Zero(t, diags.Len(), diags.String())

	require.Equal(t, 4, para.Elements.Count())
	fn, ok := para.Elements.Items[1].(*dom.Footnote)
	require.True(t, ok)
	require.Equal(t, 1, fn.Elements.Count())
	assert.Equal(t, "Note", fn.Elements.Items[0].(*dom.Paragraph).Text())

	link, ok := para.Elements.Items[3].(*dom.Hyperlink)
	require.True(t, ok)
	assert.Equal(t, "http://x", link.Name)
	assert.Equal(t, "Web", link.Type.String())
	assert.Equal(t, "link", link.Elements.Text())
}

func TestParagraph_InlineErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  perrors.Code
	}{
		{"block keyword in text", `\paragraph{a \table b}`, perrors.ErrUnexpectedKeywordInParagraph},
		{"unknown field type", `\paragraph{\field(Pages)}`, perrors.ErrUnknownFieldType},
		{"unknown symbol", `\paragraph{\symbol(Yen)}`, perrors.ErrUnknownSymbolName},
		{"missing brace", `\paragraph{\bold x}`, perrors.ErrSymbolExpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(lexer.New(tt.input))
			_, err := p.ParseDocumentObject()
			require.NoError(t, err)
			diags := p.Diagnostics()
			require.GreaterOrEqual(t, diags.ErrorCount(), 1)
			assert.Equal(t, tt.code, diags.All()[0].Code, diags.String())
		})
	}
}

func TestField_Suggestion(t *testing.T) {
	_, diags := parseParagraph(t, `\paragraph{\field(Pages)}`)
	require.Equal(t, 1, diags.ErrorCount())
	assert.Contains(t, diags.All()[0].Hints, "Did you mean `Page`?")
}

func TestAttributes_Values(t *testing.T) {
	para, diags := parseParagraph(t, `\paragraph[
		Style = "Heading1"
		Format.Alignment = Justify
		Format.FirstLineIndent = -1cm
		Format.KeepTogether = true
		Format.Font { Name = "Times" Size = 10.5 }
		Format.Shading.Color = 0xFF112233
	]{x}`)
	assert.Zero(t, diags.Len(), diags.String())

	assert.Equal(t, dom.StyleName("Heading1"), para.Style)
	require.NotNil(t, para.Format)
	assert.Equal(t, dom.AlignJustify, para.Format.Alignment)
	assert.Equal(t, dom.FromCentimeter(-1), para.Format.FirstLineIndent)
	assert.True(t, para.Format.KeepTogether)
	require.NotNil(t, para.Format.Font)
	assert.Equal(t, "Times", para.Format.Font.Name)
	assert.Equal(t, dom.FromPoint(10.5), para.Format.Font.Size)
	require.NotNil(t, para.Format.Shading)
	assert.Equal(t, dom.Color(0xFF112233), para.Format.Shading.Color)
}

func TestAttributes_Errors(t *testing.T) {
	tests := []struct {
		name  string
		attrs string
		code  perrors.Code
	}{
		{"unknown attribute", `Styel = "Normal"`, perrors.ErrUnknownAttribute},
		{"not an object", `Style.Name = "x"`, perrors.ErrNotAnObject},
		{"inaccessible", `_Style = "x"`, perrors.ErrInaccessibleAttribute},
		{"invalid enum", `Format.Alignment = Sideways`, perrors.ErrInvalidEnumValue},
		{"wrong value type", `Format.KeepTogether = "yes"`, perrors.ErrInvalidValueType},
		{"null on string", `Style = null`, perrors.ErrNullNotSupported},
		{"delta on unit", `Format.LeftIndent += 1cm`, perrors.ErrDeltaNotAllowed},
		{"object assignment", `Format = 3`, perrors.ErrObjectAssignment},
		{"bad unit", `Format.LeftIndent = 2km`, perrors.ErrInvalidLiteral},
		{"missing operator", `Style "x"`, perrors.ErrSymbolExpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			para, diags := parseParagraph(t, `\paragraph[`+tt.attrs+`]{x}`)
			require.Equal(t, 1, diags.ErrorCount(), diags.String())
			assert.Equal(t, tt.code, diags.Errors()[0].Code)
			assert.Equal(t, "x", para.Text(), "the paragraph after the attributes is parsed")
		})
	}
}

func TestAttributes_UnknownSuggestion(t *testing.T) {
	_, diags := parseParagraph(t, `\paragraph[Styel = "Normal"]{x}`)
	require.Equal(t, 1, diags.Len())
	assert.Contains(t, diags.All()[0].Hints, "Did you mean `Style`?")
}

func TestAttributes_Null(t *testing.T) {
	para, diags := parseParagraph(t, `\paragraph[
		Format.Borders.Visible = true
		Format.Borders = null
		Format.TabStops += 1cm
		Format.TabStops = null
	]{x}`)
	assert.Zero(t, diags.Len(), diags.String())
	require.NotNil(t, para.Format)
	assert.Nil(t, para.Format.Borders)
	require.NotNil(t, para.Format.TabStops)
	assert.Zero(t, para.Format.TabStops.Count())
	assert.True(t, para.Format.TabStops.TabsCleared)
}

func TestAttributes_TabStopDelta(t *testing.T) {
	para, diags := parseParagraph(t, `\paragraph[
		Format.TabStops += 1cm
		Format.TabStops += 2cm
		Format.TabStops -= 2cm
		Format.TabStops -= 5cm
		Format.TabStops += { Position = 3cm Alignment = Right }
	]{x}`)
	assert.Zero(t, diags.Len(), diags.String())

	require.NotNil(t, para.Format)
	stops := para.Format.TabStops
	require.NotNil(t, stops)
	require.Equal(t, 2, stops.Count())
	assert.Equal(t, dom.FromCentimeter(1), stops.Items[0].Position)
	assert.Equal(t, dom.FromCentimeter(3), stops.Items[1].Position)
	assert.Equal(t, "Right", stops.Items[1].Alignment.String())
}

func TestColors(t *testing.T) {
	tests := []struct {
		input    string
		expected dom.Color
	}{
		{"RGB(255,0,128)", 0xFFFF0080},
		{"rgb(0x10, 0x20, 0x30)", 0xFF102030},
		{"GRAY(0)", 0xFFFFFFFF},
		{"GRAY(100)", 0xFF000000},
		{"CMYK(0,0,0,100)", 0xFF000000},
		{"CMYK(50,0,100,100,0)", 0x80FF0000},
		{"Red", 0xFFFF0000},
		{"cornflowerblue", 0xFF6495ED},
		{"0xFF00FF00", 0xFF00FF00},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			para, diags := parseParagraph(t, `\paragraph[Format.Font.Color = `+tt.input+`]{x}`)
			require.Zero(t, diags.Len(), diags.String())
			assert.Equal(t, tt.expected, para.Format.Font.Color)
		})
	}
}

func TestColors_Errors(t *testing.T) {
	tests := []struct {
		input string
		code  perrors.Code
	}{
		{"RGB(256,0,0)", perrors.ErrValueOutOfRange},
		{"RGB(-1,0,0)", perrors.ErrValueOutOfRange},
		{"RGB(1.5,0,0)", perrors.ErrInvalidLiteral},
		{"RGB(1,2)", perrors.ErrSymbolExpected},
		{"CMYK(0,0,0,101)", perrors.ErrValueOutOfRange},
		{"HSB(1,2,3)", perrors.ErrColorModelNotSupported},
		{"Lab(1,2,3)", perrors.ErrColorModelNotSupported},
		{`"red"`, perrors.ErrColorModelNotSupported},
		{"Bleu", perrors.ErrUnknownColor},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			para, diags := parseParagraph(t, `\paragraph[Format.Font.Color = `+tt.input+`]{x}`)
			require.Equal(t, 1, diags.ErrorCount(), diags.String())
			assert.Equal(t, tt.code, diags.Errors()[0].Code)
			assert.Equal(t, "x", para.Text())
		})
	}
}

func TestColors_RangeErrorPosition(t *testing.T) {
	_, diags := parseParagraph(t, `\paragraph[Format.Font.Color = RGB(0,256,0)]{x}`)
	require.Equal(t, 1, diags.Len())
	d := diags.All()[0]
	assert.Equal(t, 1, d.Line)
	assert.Equal(t, 38, d.Column)
	assert.Equal(t, "256", d.Data["Value"])
}

func TestStyles(t *testing.T) {
	doc, diags := parseDocument(t, `\document{
		\styles{
			Heading1 { Font.Size = 16 Font.Bold = true }
			Quote : Normal { ParagraphFormat.LeftIndent = 1cm }
			Emphasis : DefaultParagraphFont { Font.Italic = true }
		}
	}`)
	assert.Zero(t, diags.Len(), diags.String())

	h1 := doc.Styles.Get("Heading1")
	require.NotNil(t, h1)
	require.NotNil(t, h1.Font)
	assert.Equal(t, dom.FromPoint(16), h1.Font.Size)
	assert.True(t, h1.Font.Bold)

	quote := doc.Styles.Get("Quote")
	require.NotNil(t, quote)
	assert.Equal(t, dom.StyleNormal, quote.BaseStyle)
	assert.Equal(t, dom.FromCentimeter(1), quote.ParagraphFormat.LeftIndent)

	assert.Equal(t, dom.CharacterStyle, doc.Styles.Get("Emphasis").Type)
}

func TestStyles_UndefinedBase(t *testing.T) {
	doc, diags := parseDocument(t, `\document{ \styles{ Foo: NoSuchBase {} } }`)

	foo := doc.Styles.Get("Foo")
	require.NotNil(t, foo)
	assert.Equal(t, dom.StyleInvalid, foo.BaseStyle)
	assert.Equal(t, 1, diags.WarningCount())
	assert.Equal(t, 0, diags.ErrorCount())
	assert.Equal(t, perrors.WarnUndefinedBaseStyle, diags.Warnings()[0].Code)
}

func TestStyles_UndefinedReference(t *testing.T) {
	doc, diags := parseDocument(t, `\document{ \section{
		\paragraph[Style = "Missing"]{a}
		\paragraph[Style = "heading2"]{b}
	} }`)

	require.Equal(t, 1, diags.WarningCount())
	assert.Equal(t, perrors.WarnUndefinedStyle, diags.Warnings()[0].Code)
	assert.Zero(t, diags.ErrorCount())

	elems := doc.Sections.Items[0].Elements
	require.Equal(t, 2, elems.Count())
	assert.Equal(t, dom.StyleName(dom.StyleInvalid), elems.Items[0].(*dom.Paragraph).Style)
	assert.Equal(t, dom.StyleName("heading2"), elems.Items[1].(*dom.Paragraph).Style)
}

func TestStyles_WarningsAsErrors(t *testing.T) {
	sink := perrors.NewDiagnostics("styles.ddl")
	sink.Policy.WarningsAsErrors = true

	p := New(lexer.New(`\document{ \styles{ Foo: Bar {} } }`), WithDiagnostics(sink))
	_, err := p.ParseDocument(nil)
	require.NoError(t, err)

	assert.Same(t, sink, p.Diagnostics())
	require.Equal(t, 1, sink.ErrorCount())
	assert.Equal(t, "styles.ddl", sink.All()[0].File)
}

func TestHeaderFooter(t *testing.T) {
	doc, diags := parseDocument(t, `\document{ \section{
		\header{ H }
		\evenpagefooter{ Even }
	} }`)
	assert.Zero(t, diags.Len(), diags.String())

	sec := doc.Sections.Items[0]
	assert.Zero(t, sec.Elements.Count())

	h := sec.Headers
	require.NotNil(t, h.Primary)
	require.NotNil(t, h.FirstPage)
	require.NotNil(t, h.EvenPage)
	assert.NotSame(t, h.Primary, h.FirstPage)
	assert.NotSame(t, h.Primary, h.EvenPage)
	assert.NotSame(t, h.FirstPage, h.EvenPage)

	text := func(hf *dom.HeaderFooter) string {
		require.Equal(t, 1, hf.Elements.Count())
		return hf.Elements.Items[0].(*dom.Paragraph).Text()
	}
	assert.Equal(t, "H", text(h.Primary))
	assert.Equal(t, "H", text(h.EvenPage))

	h.Primary.Elements.Items[0].(*dom.Paragraph).Elements.AddText("X")
	assert.Equal(t, "HX", text(h.Primary))
	assert.Equal(t, "H", text(h.FirstPage))
	assert.Equal(t, "H", text(h.EvenPage))

	f := sec.Footers
	assert.Nil(t, f.Primary)
	assert.Nil(t, f.FirstPage)
	require.NotNil(t, f.EvenPage)
	assert.Equal(t, "Even", text(f.EvenPage))
}

func TestTable(t *testing.T) {
	obj, diags := parseObject(t, `\table[Borders.Visible = true]{
		\columns{ \column[Width = 3cm] \column{} }
		\rows[Height = 1cm]{
			\row[HeadingFormat = true]{ \cell{ A } \cell[MergeRight = 0]{ B } }
			\row{ \cell{ C } }
		}
	}`)
	assert.Zero(t, diags.Len(), diags.String())

	tbl, ok := obj.(*dom.Table)
	require.True(t, ok)
	require.NotNil(t, tbl.Borders)
	assert.True(t, tbl.Borders.Visible)
	require.Equal(t, 2, tbl.Columns.Count())
	assert.Equal(t, dom.FromCentimeter(3), tbl.Columns.Items[0].Width)
	assert.Equal(t, dom.FromCentimeter(1), tbl.Rows.Height)
	require.Equal(t, 2, tbl.Rows.Count())
	assert.True(t, tbl.Rows.Items[0].HeadingFormat)

	cellText := func(row, col int) string {
		cell := tbl.Cell(row, col)
		require.NotNil(t, cell)
		if cell.Elements.Count() == 0 {
			return ""
		}
		return cell.Elements.Items[0].(*dom.Paragraph).Text()
	}
	assert.Equal(t, "A", cellText(0, 0))
	assert.Equal(t, "B", cellText(0, 1))
	assert.Equal(t, "C", cellText(1, 0))
	assert.Equal(t, "", cellText(1, 1))
}

func TestTable_TooManyCells(t *testing.T) {
	obj, diags := parseObject(t, `\table{
		\columns{ \column }
		\rows{ \row{ \cell{ A } \cell{ B } } \row{ \cell{ C } } }
	}`)

	require.Equal(t, 1, diags.ErrorCount())
	d := diags.Errors()[0]
	assert.Equal(t, perrors.ErrTooManyCells, d.Code)
	assert.Equal(t, 1, d.Data["Count"])

	tbl := obj.(*dom.Table)
	require.Equal(t, 2, tbl.Rows.Count())
	assert.Equal(t, "C", tbl.Cell(1, 0).Elements.Items[0].(*dom.Paragraph).Text())
}

func TestRecovery_MalformedColumn(t *testing.T) {
	doc, diags := parseDocument(t, `\document{
		\section{
			\table{
				\columns{ \column[BADATTR garbage] {} }
				\rows{}
			}
		}
		\section{ Valid }
	}`)

	assert.GreaterOrEqual(t, diags.ErrorCount(), 1)
	require.Equal(t, 2, doc.Sections.Count())
	elems := doc.Sections.Items[1].Elements
	require.Equal(t, 1, elems.Count())
	assert.Equal(t, "Valid", elems.Items[0].(*dom.Paragraph).Text())
}

func TestRecovery_MalformedTable(t *testing.T) {
	doc, diags := parseDocument(t, `\document{
		\section{ \table{ \rows{ \row{} } } After }
		\section{ Next }
	}`)

	require.Equal(t, 1, diags.ErrorCount(), diags.String())
	assert.Equal(t, perrors.ErrSymbolExpected, diags.Errors()[0].Code)
	require.Equal(t, 2, doc.Sections.Count())

	first := doc.Sections.Items[0].Elements
	require.Equal(t, 2, first.Count())
	assert.IsType(t, &dom.Table{}, first.Items[0])
	assert.Equal(t, "After", first.Items[1].(*dom.Paragraph).Text())
	assert.Equal(t, "Next", doc.Sections.Items[1].Elements.Items[0].(*dom.Paragraph).Text())
}

func TestRecovery_UnknownKeyword(t *testing.T) {
	sec, diags := parseSection(t, `\section{ \pagebreak \pagebrake \pagebreak }`)

	require.Equal(t, 1, diags.ErrorCount())
	d := diags.Errors()[0]
	assert.Equal(t, perrors.ErrUnknownKeyword, d.Code)
	assert.Contains(t, d.Hints, "Did you mean `\\pagebreak`?")

	require.Equal(t, 2, sec.Elements.Count())
	assert.IsType(t, &dom.PageBreak{}, sec.Elements.Items[0])
	assert.IsType(t, &dom.PageBreak{}, sec.Elements.Items[1])
}

func TestRecovery_BadStringEscape(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code perrors.Code
	}{
		{
			"hex escape too long in a style",
			`\document{ \styles{ Foo { Font.Name = "bad\x123" } Bar { Font.Bold = true } } \section{ Next } }`,
			perrors.ErrHexEscapeTooLong,
		},
		{
			"invalid escape in paragraph attributes",
			`\document{ \section{ \paragraph[Format.Font.Name = "a\qb"]{x} } \section{ Next } }`,
			perrors.ErrInvalidEscape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, diags := parseDocument(t, tt.src)
			assert.Equal(t, []perrors.Code{tt.code}, codes(diags))

			require.NotZero(t, doc.Sections.Count())
			last := doc.Sections.Items[doc.Sections.Count()-1]
			require.Equal(t, 1, last.Elements.Count())
			assert.Equal(t, "Next", last.Elements.Items[0].(*dom.Paragraph).Text())
		})
	}

	t.Run("later style is defined", func(t *testing.T) {
		doc, _ := parseDocument(t, `\document{ \styles{ Foo { Font.Name = "\q" } Bar { Font.Bold = true } } }`)
		require.NotNil(t, doc.Styles.Get("Bar"))
		assert.True(t, doc.Styles.Get("Bar").Font.Bold)
	})
}

func TestRecovery_MisplacedElement(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"cell with body", `\section{ \cell{x} Next }`},
		{"row with attributes and body", `\section{ \row[Height = 1cm]{ \cell{ A } } Next }`},
		{"header outside a section", `\section{ \table{ \columns{ \column } \rows{ \row{ \cell{ \header{ H } } } } } Next }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, diags := parseSection(t, tt.src)
			assert.Equal(t, []perrors.Code{perrors.ErrUnexpectedSymbol}, codes(diags), diags.String())

			last := sec.Elements.Items[sec.Elements.Count()-1]
			para, ok := last.(*dom.Paragraph)
			require.True(t, ok, "expected *dom.Paragraph, got %T", last)
			assert.Equal(t, "Next", para.Text())
		})
	}
}

func TestRecovery_UnexpectedEndOfFile(t *testing.T) {
	p := New(lexer.New(`\document{ \section{ Hello`))
	doc, err := p.ParseDocument(nil)
	require.Error(t, err)
	require.NotNil(t, doc)

	var d *perrors.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, perrors.ErrUnexpectedEndOfFile, d.Code)

	assert.Equal(t, []perrors.Code{perrors.ErrUnexpectedEndOfFile}, codes(p.Diagnostics()))
	require.Equal(t, 1, doc.Sections.Count())
}

func TestParseDocument_NotADocument(t *testing.T) {
	p := New(lexer.New(`\section{ x }`))
	_, err := p.ParseDocument(nil)
	require.Error(t, err)
	assert.Equal(t, []perrors.Code{perrors.ErrSymbolExpected}, codes(p.Diagnostics()))
}

func TestParseDocument_Existing(t *testing.T) {
	doc := dom.NewDocument()
	doc.Comment = "kept"
	doc.Sections.AddSection()

	p := New(lexer.New(`\document[Info.Title = "T"]{ \section{ x } }`))
	got, err := p.ParseDocument(doc)
	require.NoError(t, err)
	assert.Same(t, doc, got)
	assert.Equal(t, "kept", doc.Comment)
	assert.Equal(t, "T", doc.Info.Title)
	assert.Equal(t, 2, doc.Sections.Count())
}

func TestParseDocumentObject_TrailingContent(t *testing.T) {
	p := New(lexer.New(`\section{ A } x`))
	obj, err := p.ParseDocumentObject()
	require.Error(t, err)
	assert.IsType(t, &dom.Section{}, obj)
	assert.Equal(t, []perrors.Code{perrors.ErrTrailingContent}, codes(p.Diagnostics()))
}

func TestParseDocumentObject_Kinds(t *testing.T) {
	tests := []struct {
		input    string
		expected dom.DocumentObject
	}{
		{`\document{}`, &dom.Document{}},
		{`\styles{ A {} }`, &dom.Styles{}},
		{`\section{}`, &dom.Section{}},
		{`\table{ \columns{} \rows{} }`, &dom.Table{}},
		{`\textframe[Width = 5cm]{ Boxed }`, &dom.TextFrame{}},
		{`\paragraph{ p }`, &dom.Paragraph{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			obj, diags := parseObject(t, tt.input)
			assert.Zero(t, diags.Len(), diags.String())
			assert.IsType(t, tt.expected, obj)
		})
	}
}

func TestShapes(t *testing.T) {
	sec, diags := parseSection(t, `\section{
		\image("logo.png")[Width = 4cm Left = Center Top = 1in]
		\barcode(Ean13, "123")[Height = 1cm]
		\textframe{ \pagebreak }
	}`)
	assert.Zero(t, diags.Len(), diags.String())
	require.Equal(t, 3, sec.Elements.Count())

	img := sec.Elements.Items[0].(*dom.Image)
	assert.Equal(t, "logo.png", img.Name)
	assert.Equal(t, dom.FromCentimeter(4), img.Width)
	assert.Equal(t, dom.ShapePosition{Position: dom.ShapeCenter}, img.Left)
	assert.Equal(t, dom.ShapePosition{Offset: dom.FromInch(1)}, img.Top)

	bc := sec.Elements.Items[1].(*dom.Barcode)
	assert.Equal(t, "Ean13", bc.Type.String())
	assert.Equal(t, "123", bc.Code)
	assert.Equal(t, dom.FromCentimeter(1), bc.Height)

	tf := sec.Elements.Items[2].(*dom.TextFrame)
	require.Equal(t, 1, tf.Elements.Count())
	assert.IsType(t, &dom.PageBreak{}, tf.Elements.Items[0])
}

func TestChart(t *testing.T) {
	sec, diags := parseSection(t, `\section{
		\chart(Column2D)[Width = 10cm]{
			\headerarea{ \paragraph{Sales} ignored \bold{also ignored} }
			\xaxis[HasMajorGridlines = true]{ skipped }
			\plotarea
			\series[Name = "S"]{ 1, 2.5, null, \point{3}, -4 }
			\xvalues{ "a", "b", null }
		}
	}`)
	assert.Zero(t, diags.Len(), diags.String())
	require.Equal(t, 1, sec.Elements.Count())

	chart := sec.Elements.Items[0].(*dom.Chart)
	assert.Equal(t, dom.ChartColumn2D, chart.Type)
	assert.Equal(t, dom.FromCentimeter(10), chart.Width)

	require.NotNil(t, chart.HeaderArea)
	require.Equal(t, 1, chart.HeaderArea.Elements.Count())
	assert.Equal(t, "Sales", chart.HeaderArea.Elements.Items[0].(*dom.Paragraph).Text())
	require.NotNil(t, chart.XAxis)
	assert.True(t, chart.XAxis.HasMajorGridlines)
	assert.NotNil(t, chart.PlotArea)

	require.Equal(t, 1, chart.SeriesCollection.Count())
	s := chart.SeriesCollection.Items[0]
	assert.Equal(t, "S", s.Name)
	require.Len(t, s.Points, 5)
	assert.Equal(t, 1.0, s.Points[0].Value)
	assert.Equal(t, 2.5, s.Points[1].Value)
	assert.Nil(t, s.Points[2])
	assert.Equal(t, 3.0, s.Points[3].Value)
	assert.Equal(t, -4.0, s.Points[4].Value)

	require.Len(t, chart.XValues.Items, 1)
	xs := chart.XValues.Items[0]
	assert.Equal(t, []dom.XValue{{Value: "a"}, {Value: "b"}, {Blank: true}}, xs.Values)
}

func TestChart_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  perrors.Code
	}{
		{"missing comma", `\chart(Line){ \series{ 1 2 } }`, perrors.ErrMissingComma},
		{"leading comma", `\chart(Line){ \series{ , 1 } }`, perrors.ErrUnexpectedSymbol},
		{"unknown chart type", `\chart(Pie3D){ \series{ 1 } }`, perrors.ErrUnknownChartType},
		{"unknown part", `\chart(Line){ \cell }`, perrors.ErrUnexpectedSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, diags := parseSection(t, `\section{ `+tt.input+` After }`)
			require.Equal(t, 1, diags.ErrorCount(), diags.String())
			assert.Equal(t, tt.code, diags.Errors()[0].Code)

			last := sec.Elements.Items[sec.Elements.Count()-1]
			require.IsType(t, &dom.Paragraph{}, last)
			assert.Equal(t, "After", last.(*dom.Paragraph).Text())
		})
	}
}

func TestChart_UnknownTypeSuggestion(t *testing.T) {
	_, diags := parseSection(t, `\section{ \chart(Pie3D){} }`)
	require.Equal(t, 1, diags.Len())
	assert.Contains(t, diags.All()[0].Hints, "Did you mean `Pie2D`?")
}

func TestParse_Deterministic(t *testing.T) {
	src := `\document[Info.Title = "Report"]{
		\styles{ Note : Normal { Font.Italic = true } }
		\section[PageSetup.Orientation = Landscape]{
			\header{ Page \field(Page) }
			Some \bold{important} text.

			\table{ \columns{ \column[Width = 2cm] } \rows{ \row{ \cell{ 1 } } } }
			\chart(Line){ \series{ 1, 2 } }
		}
	}`

	first, diags := parseDocument(t, src)
	require.Zero(t, diags.Len(), diags.String())
	second, _ := parseDocument(t, src)

	out := dom.Dump(first)
	assert.NotEmpty(t, out)
	assert.Equal(t, out, dom.Dump(second))
}

func TestParser_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := New(lexer.New(`\document{ \section{ x } }`), WithLogger(logger))
	_, err := p.ParseDocument(nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "component=parser")
	assert.Contains(t, buf.String(), `msg="parsing section"`)
}
