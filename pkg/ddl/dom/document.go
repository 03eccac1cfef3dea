package dom

// StyleName is a string that refers to a style of the document.
type StyleName string

// Predefined style names.
const (
	StyleNormal               = "Normal"
	StyleDefaultParagraphFont = "DefaultParagraphFont"
	StyleHeading1             = "Heading1"
	StyleList                 = "List"
	StyleFootnote             = "Footnote"
	StyleHeader               = "Header"
	StyleFooter               = "Footer"
	StyleHyperlink            = "Hyperlink"
	StyleInvalid              = "InvalidStyleName"
)

// Document is the root of the graph.
type Document struct {
	node
	Info             *DocumentInfo
	DefaultPageSetup *PageSetup
	DefaultTabStop   Unit
	Comment          string
	ImagePath        string
	UseCmykColor     bool

	Styles   *Styles   `ddl:"-"`
	Sections *Sections `ddl:"-"`
}

// NewDocument returns a document with the predefined styles.
func NewDocument() *Document {
	return &Document{
		Styles:   NewStyles(),
		Sections: &Sections{},
	}
}

// DocumentInfo holds document metadata.
type DocumentInfo struct {
	node
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Sections is the ordered list of a document's sections.
type Sections struct {
	node
	Items []*Section `ddl:"-"`
}

// AddSection appends a new empty section.
func (s *Sections) AddSection() *Section {
	sec := NewSection()
	s.Items = append(s.Items, sec)
	return sec
}

// Count returns the number of sections.
func (s *Sections) Count() int { return len(s.Items) }

// Style is a named set of paragraph and character formats.
type Style struct {
	node
	Name            string    `ddl:"-"`
	BaseStyle       string    `ddl:"-"`
	Type            StyleType `ddl:"-"`
	ParagraphFormat *ParagraphFormat
	Font            *Font
}

// Styles is the ordered list of a document's styles.
type Styles struct {
	node
	Items []*Style `ddl:"-"`
}

// NewStyles returns the predefined styles.
func NewStyles() *Styles {
	s := &Styles{}
	s.add(StyleNormal, "", ParagraphStyle)
	s.add(StyleDefaultParagraphFont, "", CharacterStyle)
	base := StyleNormal
	for _, h := range []string{"Heading1", "Heading2", "Heading3", "Heading4", "Heading5", "Heading6", "Heading7", "Heading8", "Heading9"} {
		s.add(h, base, ParagraphStyle)
		base = h
	}
	s.add(StyleList, StyleNormal, ParagraphStyle)
	s.add(StyleFootnote, StyleNormal, ParagraphStyle)
	s.add(StyleHeader, StyleNormal, ParagraphStyle)
	s.add(StyleFooter, StyleNormal, ParagraphStyle)
	s.add(StyleHyperlink, StyleDefaultParagraphFont, CharacterStyle)
	s.add(StyleInvalid, StyleNormal, ParagraphStyle)
	return s
}

func (s *Styles) add(name, base string, t StyleType) *Style {
	st := &Style{Name: name, BaseStyle: base, Type: t}
	s.Items = append(s.Items, st)
	return st
}

// NameToIndex returns the index of the named style, ignoring case, or -1.
func (s *Styles) NameToIndex(name string) int {
	folded := FoldName(name)
	for i, st := range s.Items {
		if FoldName(st.Name) == folded {
			return i
		}
	}
	return -1
}

// Get returns the named style or nil.
func (s *Styles) Get(name string) *Style {
	if i := s.NameToIndex(name); i >= 0 {
		return s.Items[i]
	}
	return nil
}

// AddStyle creates the named style, or reassigns the base of an existing
// one. A new style without a base derives from Normal; a style derived from
// a character style is a character style.
func (s *Styles) AddStyle(name, base string) *Style {
	if st := s.Get(name); st != nil {
		if base != "" {
			st.BaseStyle = base
		}
		return st
	}
	if base == "" {
		base = StyleNormal
	}
	t := ParagraphStyle
	if b := s.Get(base); b != nil {
		t = b.Type
	}
	return s.add(name, base, t)
}

// Names returns the style names in definition order.
func (s *Styles) Names() []string {
	out := make([]string, len(s.Items))
	for i, st := range s.Items {
		out[i] = st.Name
	}
	return out
}

// Count returns the number of styles.
func (s *Styles) Count() int { return len(s.Items) }
