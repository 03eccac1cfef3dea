package lexer

import (
	"fmt"
	"sort"
)

// Symbol is the terminal classification of a token.
type Symbol int

const (
	// Special symbols
	None Symbol = iota
	Eof
	EmptyLine // paragraph separator in text mode
	Blank     // synthesized word separator in text mode
	Comment

	// Literals
	Identifier
	StringLiteral
	IntegerLiteral
	HexIntegerLiteral
	RealLiteral
	Text

	// Bare keywords
	True
	False
	Null

	// Structure keywords
	Styles
	Document
	Section
	Paragraph
	Header
	PrimaryHeader
	FirstPageHeader
	EvenPageHeader
	Footer
	PrimaryFooter
	FirstPageFooter
	EvenPageFooter
	Table
	Columns
	Column
	Rows
	Row
	Cell
	Image
	TextFrame
	PageBreak
	Barcode

	// Chart keywords
	Chart
	HeaderArea
	FooterArea
	TopArea
	BottomArea
	LeftArea
	RightArea
	PlotArea
	Legend
	XAxis
	YAxis
	ZAxis
	Series
	XValues
	Point

	// Inline keywords
	Bold
	Italic
	Underline
	FontSize
	FontColor
	Font
	Field
	SymbolName // \symbol
	Chr
	Character // \( shorthand for \chr
	Footnote
	Hyperlink
	SoftHyphen
	Tab
	LineBreak
	Space
	NoSpace

	// Punctuators
	BraceLeft
	BraceRight
	BracketLeft
	BracketRight
	ParenLeft
	ParenRight
	Colon
	Semicolon
	Dot
	Comma
	Percent
	Dollar
	Hash
	Questionmark
	At
	Assign
	Slash
	Plus
	PlusAssign
	Minus
	MinusAssign
)

// TokenType is the lexical category of a token.
type TokenType int

const (
	TypeNone TokenType = iota
	TypeKeyword
	TypeIdentifier
	TypeStringLiteral
	TypeIntegerLiteral
	TypeHexIntegerLiteral
	TypeRealLiteral
	TypeText
	TypeOperatorOrPunctuator
)

func (tt TokenType) String() string {
	switch tt {
	case TypeNone:
		return "none"
	case TypeKeyword:
		return "keyword"
	case TypeIdentifier:
		return "identifier"
	case TypeStringLiteral:
		return "string literal"
	case TypeIntegerLiteral:
		return "integer literal"
	case TypeHexIntegerLiteral:
		return "hex integer literal"
	case TypeRealLiteral:
		return "real literal"
	case TypeText:
		return "text"
	case TypeOperatorOrPunctuator:
		return "operator or punctuator"
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// keywords maps backslash spellings to keyword symbols.
var keywords = map[string]Symbol{
	`\styles`:          Styles,
	`\document`:        Document,
	`\section`:         Section,
	`\paragraph`:       Paragraph,
	`\header`:          Header,
	`\primaryheader`:   PrimaryHeader,
	`\firstpageheader`: FirstPageHeader,
	`\evenpageheader`:  EvenPageHeader,
	`\footer`:          Footer,
	`\primaryfooter`:   PrimaryFooter,
	`\firstpagefooter`: FirstPageFooter,
	`\evenpagefooter`:  EvenPageFooter,
	`\table`:           Table,
	`\columns`:         Columns,
	`\column`:          Column,
	`\rows`:            Rows,
	`\row`:             Row,
	`\cell`:            Cell,
	`\image`:           Image,
	`\textframe`:       TextFrame,
	`\pagebreak`:       PageBreak,
	`\barcode`:         Barcode,
	`\chart`:           Chart,
	`\headerarea`:      HeaderArea,
	`\footerarea`:      FooterArea,
	`\toparea`:         TopArea,
	`\bottomarea`:      BottomArea,
	`\leftarea`:        LeftArea,
	`\rightarea`:       RightArea,
	`\plotarea`:        PlotArea,
	`\legend`:          Legend,
	`\xaxis`:           XAxis,
	`\yaxis`:           YAxis,
	`\zaxis`:           ZAxis,
	`\series`:          Series,
	`\xvalues`:         XValues,
	`\point`:           Point,
	`\bold`:            Bold,
	`\italic`:          Italic,
	`\underline`:       Underline,
	`\fontsize`:        FontSize,
	`\fontcolor`:       FontColor,
	`\font`:            Font,
	`\field`:           Field,
	`\symbol`:          SymbolName,
	`\chr`:             Chr,
	`\(`:               Character,
	`\footnote`:        Footnote,
	`\hyperlink`:       Hyperlink,
	`\-`:               SoftHyphen,
	`\tab`:             Tab,
	`\linebreak`:       LineBreak,
	`\space`:           Space,
	`\nospace`:         NoSpace,
}

// bareKeywords are keywords spelled without a backslash.
var bareKeywords = map[string]Symbol{
	"true":  True,
	"false": False,
	"null":  Null,
}

var punctuators = map[Symbol]string{
	BraceLeft:    "{",
	BraceRight:   "}",
	BracketLeft:  "[",
	BracketRight: "]",
	ParenLeft:    "(",
	ParenRight:   ")",
	Colon:        ":",
	Semicolon:    ";",
	Dot:          ".",
	Comma:        ",",
	Percent:      "%",
	Dollar:       "$",
	Hash:         "#",
	Questionmark: "?",
	At:           "@",
	Assign:       "=",
	Slash:        "/",
	Plus:         "+",
	PlusAssign:   "+=",
	Minus:        "-",
	MinusAssign:  "-=",
}

var punctuatorChars = map[rune]Symbol{
	'{': BraceLeft,
	'}': BraceRight,
	'[': BracketLeft,
	']': BracketRight,
	'(': ParenLeft,
	')': ParenRight,
	':': Colon,
	';': Semicolon,
	'.': Dot,
	',': Comma,
	'%': Percent,
	'$': Dollar,
	'#': Hash,
	'?': Questionmark,
	'@': At,
	'=': Assign,
	'/': Slash,
	'+': Plus,
	'-': Minus,
}

// spellings is the reverse of keywords, bareKeywords and punctuators.
var spellings = func() map[Symbol]string {
	m := make(map[Symbol]string, len(keywords)+len(bareKeywords)+len(punctuators))
	for s, sym := range keywords {
		m[sym] = s
	}
	for s, sym := range bareKeywords {
		m[sym] = s
	}
	for sym, s := range punctuators {
		m[sym] = s
	}
	return m
}()

var symbolNames = map[Symbol]string{
	None:              "none",
	Eof:               "end of file",
	EmptyLine:         "empty line",
	Blank:             "blank",
	Comment:           "comment",
	Identifier:        "identifier",
	StringLiteral:     "string literal",
	IntegerLiteral:    "integer literal",
	HexIntegerLiteral: "hex integer literal",
	RealLiteral:       "real literal",
	Text:              "text",
}

// String returns the spelling of keywords and punctuators and a
// description for every other symbol.
func (s Symbol) String() string {
	if sp, ok := spellings[s]; ok {
		return sp
	}
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}

// IsKeyword reports whether s is a backslash or bare keyword.
func (s Symbol) IsKeyword() bool {
	return s >= True && s <= NoSpace
}

// IsPunctuator reports whether s is an operator or punctuator.
func (s Symbol) IsPunctuator() bool {
	return s >= BraceLeft && s <= MinusAssign
}

// IsLiteral reports whether s is a string, numeric or identifier literal.
func (s Symbol) IsLiteral() bool {
	return s >= Identifier && s <= RealLiteral
}

// IsNumber reports whether s is an integer, hex integer or real literal.
func (s Symbol) IsNumber() bool {
	return s == IntegerLiteral || s == HexIntegerLiteral || s == RealLiteral
}

// LookupKeyword returns the symbol of a backslash keyword spelling.
func LookupKeyword(spelling string) (Symbol, bool) {
	sym, ok := keywords[spelling]
	return sym, ok
}

// LookupIdent returns the bare keyword symbol for ident, or Identifier.
// Matching is case-sensitive; a single leading capital ("True") is the one
// accepted variation.
func LookupIdent(ident string) Symbol {
	if sym, ok := bareKeywords[ident]; ok {
		return sym
	}
	if len(ident) > 1 && ident[0] >= 'A' && ident[0] <= 'Z' {
		lower := string(ident[0]+('a'-'A')) + ident[1:]
		if sym, ok := bareKeywords[lower]; ok {
			return sym
		}
	}
	return Identifier
}

// KeywordSpelling returns the literal spelling of a keyword or punctuator.
func KeywordSpelling(s Symbol) (string, bool) {
	sp, ok := spellings[s]
	return sp, ok
}

// Keywords returns all backslash keyword spellings, sorted.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for s := range keywords {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// inlineKeywords decide paragraph content when they open a block.
var inlineKeywords = map[Symbol]bool{
	Bold:       true,
	Italic:     true,
	Underline:  true,
	Field:      true,
	Font:       true,
	FontColor:  true,
	FontSize:   true,
	Footnote:   true,
	Hyperlink:  true,
	SymbolName: true,
	Chr:        true,
	Character:  true,
	Tab:        true,
	LineBreak:  true,
	Space:      true,
	SoftHyphen: true,
}

// IsInline reports whether s is a keyword that starts paragraph content.
func (s Symbol) IsInline() bool {
	return inlineKeywords[s]
}
