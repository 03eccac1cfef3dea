package dom

import "strings"

// Paragraph is a block of formatted text.
type Paragraph struct {
	node
	Style    StyleName
	Format   *ParagraphFormat
	Elements *ParagraphElements `ddl:"-"`
}

// NewParagraph returns an empty paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{Elements: &ParagraphElements{}}
}

// Text returns the paragraph's plain text.
func (p *Paragraph) Text() string {
	return p.Elements.Text()
}

// ParagraphElements is the ordered inline content of a paragraph or of a
// formatted text run.
type ParagraphElements struct {
	node
	Items []DocumentObject `ddl:"-"`
}

// Add appends obj.
func (e *ParagraphElements) Add(obj DocumentObject) {
	e.Items = append(e.Items, obj)
}

// AddText appends text, merging it into a directly preceding Text element.
func (e *ParagraphElements) AddText(s string) *Text {
	if n := len(e.Items); n > 0 {
		if t, ok := e.Items[n-1].(*Text); ok {
			t.Content += s
			return t
		}
	}
	t := &Text{Content: s}
	e.Add(t)
	return t
}

// AddFormattedText appends a new formatted text run.
func (e *ParagraphElements) AddFormattedText() *FormattedText {
	ft := NewFormattedText()
	e.Add(ft)
	return ft
}

// AddCharacter appends count repetitions of a symbol.
func (e *ParagraphElements) AddCharacter(sym SymbolName, count int) *Character {
	c := &Character{Symbol: sym, Count: count}
	e.Add(c)
	return c
}

// AddChar appends the character with the given code.
func (e *ParagraphElements) AddChar(code int) *Character {
	c := &Character{Symbol: SymbolChar, Char: code, Count: 1}
	e.Add(c)
	return c
}

// AddField appends a field.
func (e *ParagraphElements) AddField(t FieldType) *Field {
	f := &Field{Type: t}
	e.Add(f)
	return f
}

// AddFootnote appends a new empty footnote.
func (e *ParagraphElements) AddFootnote() *Footnote {
	fn := &Footnote{Elements: &DocumentElements{}}
	e.Add(fn)
	return fn
}

// AddHyperlink appends a new empty hyperlink.
func (e *ParagraphElements) AddHyperlink() *Hyperlink {
	h := &Hyperlink{Elements: &ParagraphElements{}}
	e.Add(h)
	return h
}

// AddImage appends an inline image.
func (e *ParagraphElements) AddImage(name string) *Image {
	img := &Image{Name: name}
	e.Add(img)
	return img
}

// Count returns the number of elements.
func (e *ParagraphElements) Count() int { return len(e.Items) }

// Text returns the concatenated text of the elements. Symbols render as
// their usual character; fields, footnotes and images render as nothing.
func (e *ParagraphElements) Text() string {
	var sb strings.Builder
	for _, item := range e.Items {
		switch v := item.(type) {
		case *Text:
			sb.WriteString(v.Content)
		case *FormattedText:
			sb.WriteString(v.Elements.Text())
		case *Hyperlink:
			sb.WriteString(v.Elements.Text())
		case *Character:
			sb.WriteString(strings.Repeat(v.Rune(), max(v.Count, 1)))
		}
	}
	return sb.String()
}

// Text is a run of plain text.
type Text struct {
	node
	Content string
}

// FormattedText is a run of inline content with its own font or style.
type FormattedText struct {
	node
	Style    StyleName
	Font     *Font
	Elements *ParagraphElements `ddl:"-"`
}

// NewFormattedText returns an empty formatted text run.
func NewFormattedText() *FormattedText {
	return &FormattedText{Elements: &ParagraphElements{}}
}

// Character is a symbol or a character given by code, repeated Count times.
type Character struct {
	node
	Symbol SymbolName
	Char   int
	Count  int
}

var symbolRunes = map[SymbolName]string{
	SymbolBlank:               " ",
	SymbolEm:                  " ",
	SymbolEn:                  " ",
	SymbolEmQuarter:           " ",
	SymbolEm4:                 " ",
	SymbolTab:                 "\t",
	SymbolLineBreak:           "\n",
	SymbolParaBreak:           "\n",
	SymbolEuro:                "€",
	SymbolCopyright:           "©",
	SymbolTrademark:           "™",
	SymbolRegisteredTrademark: "®",
	SymbolBullet:              "•",
	SymbolNot:                 "¬",
	SymbolEmDash:              "—",
	SymbolEnDash:              "–",
	SymbolNonBreakableBlank:   " ",
	SymbolHardBlank:           " ",
}

// Rune returns the text the character stands for.
func (c *Character) Rune() string {
	if c.Symbol == SymbolChar {
		return string(rune(c.Char))
	}
	return symbolRunes[c.Symbol]
}

// Field is a value computed at render time, such as a page number.
type Field struct {
	node
	Type   FieldType `ddl:"-"`
	Format string
	Name   string
}

// Footnote is a note attached to the text.
type Footnote struct {
	node
	Reference string
	Style     StyleName
	Format    *ParagraphFormat
	Elements  *DocumentElements `ddl:"-"`
}

// Hyperlink is a link around inline content.
type Hyperlink struct {
	node
	Name     string
	Type     HyperlinkType
	Font     *Font
	Elements *ParagraphElements `ddl:"-"`
}

// PageBreak forces a new page.
type PageBreak struct {
	node
}
