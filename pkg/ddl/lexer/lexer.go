// Package lexer implements the DDL scanner.
//
// The scanner has two modes. Code mode (ReadCode) produces structural tokens:
// keywords, identifiers, literals and punctuators. Text mode (ReadText)
// produces paragraph prose with inline escapes, interrupted by keywords and
// braces. Tokens are produced one at a time on demand; lookahead is done by
// snapshotting the scanner state and restoring it afterwards.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
)

// Token is the most recently scanned lexeme.
type Token struct {
	Symbol  Symbol
	Type    TokenType
	Literal string // exact source text
	Value   string // decoded content of strings and text runs
	Unit    string // unit suffix of a numeric literal ("cm", "pt", ...)
	Line    int
	Column  int
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Symbol: %s, Type: %s, Literal: %q, Line: %d, Column: %d}",
		t.Symbol, t.Type, t.Literal, t.Line, t.Column)
}

// Lexer scans DDL source held in an index-addressable rune buffer.
type Lexer struct {
	filename   string
	src        []rune
	pos        int   // index of the current character
	line       int   // line of the current character (1-based)
	column     int   // column of the current character (1-based)
	tok        Token // most recently produced token
	prevSymbol Symbol
}

// State is a snapshot of the lexer used for non-consuming lookahead.
type State struct {
	pos        int
	line       int
	column     int
	tok        Token
	prevSymbol Symbol
}

// New creates a new lexer instance
func New(input string) *Lexer {
	return NewWithFilename(input, "")
}

// NewWithFilename creates a lexer whose diagnostics name filename.
func NewWithFilename(input, filename string) *Lexer {
	return &Lexer{
		filename: filename,
		src:      []rune(input),
		line:     1,
		column:   1,
	}
}

// SaveState captures the scanner position and current token.
func (l *Lexer) SaveState() State {
	return State{
		pos:        l.pos,
		line:       l.line,
		column:     l.column,
		tok:        l.tok,
		prevSymbol: l.prevSymbol,
	}
}

// RestoreState returns the scanner to a saved snapshot.
func (l *Lexer) RestoreState(s State) {
	l.pos = s.pos
	l.line = s.line
	l.column = s.column
	l.tok = s.tok
	l.prevSymbol = s.prevSymbol
}

// Filename returns the source name used in diagnostics.
func (l *Lexer) Filename() string { return l.filename }

// Token returns the current token.
func (l *Lexer) Token() Token { return l.tok }

// Symbol returns the symbol of the current token.
func (l *Lexer) Symbol() Symbol { return l.tok.Symbol }

// TokenType returns the type of the current token.
func (l *Lexer) TokenType() TokenType { return l.tok.Type }

// PrevSymbol returns the symbol of the token before the current one.
func (l *Lexer) PrevSymbol() Symbol { return l.prevSymbol }

// Char returns the current character, or 0 at end of input.
func (l *Lexer) Char() rune { return l.charAt(l.pos) }

// NextChar returns the character after the current one, or 0.
func (l *Lexer) NextChar() rune { return l.charAt(l.pos + 1) }

// Line returns the line of the current character.
func (l *Lexer) Line() int { return l.line }

// Column returns the column of the current character.
func (l *Lexer) Column() int { return l.column }

// AtEOF reports whether all input has been consumed.
func (l *Lexer) AtEOF() bool { return l.pos >= len(l.src) }

func (l *Lexer) charAt(i int) rune {
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

// advance moves to the next character, tracking line and column.
func (l *Lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) errorAt(code perrors.Code, line, column int, data map[string]any) *perrors.Diagnostic {
	d := perrors.NewWithPosition(code, line, column, data)
	if l.filename != "" {
		d.File = l.filename
	}
	return d
}

// beginToken starts a new token at the current position.
func (l *Lexer) beginToken() {
	l.tok = Token{Line: l.line, Column: l.column}
}

func (l *Lexer) setToken(sym Symbol, tt TokenType, start int) Symbol {
	l.tok.Symbol = sym
	l.tok.Type = tt
	l.tok.Literal = string(l.src[start:l.pos])
	if l.tok.Value == "" && tt != TypeStringLiteral && tt != TypeText {
		l.tok.Value = l.tok.Literal
	}
	return sym
}

// fail leaves the lexer with no current token and returns err.
func (l *Lexer) fail(err *perrors.Diagnostic) (Symbol, error) {
	l.tok.Symbol = None
	l.tok.Type = TypeNone
	return None, err
}

// ReadCode skips whitespace and comments and scans the next structural token.
func (l *Lexer) ReadCode() (Symbol, error) {
	l.prevSymbol = l.tok.Symbol
	l.skipWhitespaceAndComments()
	l.beginToken()

	ch := l.Char()
	switch {
	case l.AtEOF():
		return l.setToken(Eof, TypeNone, l.pos), nil
	case isIdentStart(ch):
		return l.scanIdentifier(), nil
	case ch == '"':
		return l.scanStringLiteral()
	case ch == '@' && l.NextChar() == '"':
		return l.scanVerbatimString()
	case isDigit(ch), ch == '.' && isDigit(l.NextChar()):
		return l.scanNumber()
	case ch == '\\':
		return l.scanKeyword()
	default:
		return l.scanPunctuator()
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.AtEOF() {
		ch := l.Char()
		switch {
		case isWhitespace(ch):
			l.advance()
		case ch == '/' && l.NextChar() == '/':
			l.skipToEndOfLine()
		default:
			return
		}
	}
}

// skipToEndOfLine stops on the line feed without consuming it.
func (l *Lexer) skipToEndOfLine() {
	for !l.AtEOF() && l.Char() != '\n' {
		l.advance()
	}
}

func (l *Lexer) scanIdentifier() Symbol {
	start := l.pos
	for isIdentChar(l.Char()) {
		l.advance()
	}
	sym := LookupIdent(string(l.src[start:l.pos]))
	if sym == Identifier {
		return l.setToken(Identifier, TypeIdentifier, start)
	}
	return l.setToken(sym, TypeKeyword, start)
}

func (l *Lexer) scanStringLiteral() (Symbol, error) {
	start := l.pos
	var sb strings.Builder
	l.advance() // opening quote

	for {
		ch := l.Char()
		switch {
		case l.AtEOF():
			return l.fail(l.errorAt(perrors.ErrUnterminatedString, l.tok.Line, l.tok.Column, nil))
		case ch == '\n':
			return l.fail(l.errorAt(perrors.ErrNewlineInString, l.line, l.column, nil))
		case ch == '"':
			l.advance()
			l.tok.Value = sb.String()
			return l.setToken(StringLiteral, TypeStringLiteral, start), nil
		case ch == '\\':
			line, column := l.line, l.column
			l.advance()
			r, err := l.scanEscape(line, column)
			if err != nil {
				l.skipStringRest()
				return l.fail(err)
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(ch)
			l.advance()
		}
	}
}

// skipStringRest consumes the rest of a string literal after a bad
// escape, up to and including its closing quote. It stops before a line
// feed or at end of input.
func (l *Lexer) skipStringRest() {
	for !l.AtEOF() {
		switch l.Char() {
		case '\n':
			return
		case '"':
			l.advance()
			return
		case '\\':
			l.advance()
			if l.Char() == '\n' {
				return
			}
		}
		l.advance()
	}
}

var simpleEscapes = map[rune]rune{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\'': '\'',
	'"':  '"',
	'\\': '\\',
}

// scanEscape decodes the escape whose backslash has been consumed.
func (l *Lexer) scanEscape(line, column int) (rune, *perrors.Diagnostic) {
	ch := l.Char()
	if r, ok := simpleEscapes[ch]; ok {
		l.advance()
		return r, nil
	}
	if ch != 'x' {
		if !l.AtEOF() && ch != '\n' {
			l.advance()
		}
		return 0, l.errorAt(perrors.ErrInvalidEscape, line, column, map[string]any{"Char": string(ch)})
	}

	l.advance() // x
	start := l.pos
	for isHexDigit(l.Char()) {
		l.advance()
	}
	digits := string(l.src[start:l.pos])
	switch {
	case len(digits) == 0:
		return 0, l.errorAt(perrors.ErrInvalidEscape, line, column, map[string]any{"Char": "x"})
	case len(digits) > 2:
		return 0, l.errorAt(perrors.ErrHexEscapeTooLong, line, column, map[string]any{"Digits": digits})
	}
	v, _ := strconv.ParseUint(digits, 16, 8)
	return rune(v), nil
}

func (l *Lexer) scanVerbatimString() (Symbol, error) {
	start := l.pos
	var sb strings.Builder
	l.advance() // @
	l.advance() // "

	for {
		if l.AtEOF() {
			return l.fail(l.errorAt(perrors.ErrUnterminatedString, l.tok.Line, l.tok.Column, nil))
		}
		ch := l.Char()
		if ch == '"' {
			if l.NextChar() == '"' {
				sb.WriteRune('"')
				l.advance()
				l.advance()
				continue
			}
			l.advance()
			l.tok.Value = sb.String()
			return l.setToken(StringLiteral, TypeStringLiteral, start), nil
		}
		sb.WriteRune(ch)
		l.advance()
	}
}

func (l *Lexer) scanNumber() (Symbol, error) {
	start := l.pos
	sym, tt := IntegerLiteral, TypeIntegerLiteral

	if l.Char() == '0' && (l.NextChar() == 'x' || l.NextChar() == 'X') {
		l.advance()
		l.advance()
		digits := l.pos
		for isHexDigit(l.Char()) {
			l.advance()
		}
		if l.pos == digits || isIdentChar(l.Char()) {
			for isIdentChar(l.Char()) {
				l.advance()
			}
			return l.fail(l.errorAt(perrors.ErrInvalidNumber, l.tok.Line, l.tok.Column,
				map[string]any{"Literal": string(l.src[start:l.pos])}))
		}
		return l.setToken(HexIntegerLiteral, TypeHexIntegerLiteral, start), nil
	}

	for isDigit(l.Char()) {
		l.advance()
	}
	if l.Char() == '.' {
		l.advance()
		sym, tt = RealLiteral, TypeRealLiteral
		for isDigit(l.Char()) {
			l.advance()
		}
	}

	numberEnd := l.pos
	for isLetter(l.Char()) {
		l.advance()
	}
	l.tok.Unit = string(l.src[numberEnd:l.pos])
	l.tok.Value = string(l.src[start:numberEnd])
	return l.setToken(sym, tt, start), nil
}

func (l *Lexer) scanKeyword() (Symbol, error) {
	start := l.pos
	next := l.NextChar()

	switch {
	case next == '-':
		l.advance()
		l.advance()
		return l.setToken(SoftHyphen, TypeKeyword, start), nil
	case next == '(':
		l.advance()
		l.advance()
		return l.setToken(Character, TypeKeyword, start), nil
	case isIdentStart(next):
		l.advance()
		for isIdentChar(l.Char()) {
			l.advance()
		}
		spelling := string(l.src[start:l.pos])
		sym, ok := keywords[spelling]
		if !ok {
			d := l.errorAt(perrors.ErrUnknownKeyword, l.tok.Line, l.tok.Column, map[string]any{"Keyword": spelling})
			return l.fail(d.WithSuggestion(spelling, Keywords()))
		}
		return l.setToken(sym, TypeKeyword, start), nil
	}

	l.advance()
	if !l.AtEOF() && next != '\n' {
		l.advance()
	}
	return l.fail(l.errorAt(perrors.ErrInvalidKeyword, l.tok.Line, l.tok.Column,
		map[string]any{"Keyword": `\` + printable(next)}))
}

func (l *Lexer) scanPunctuator() (Symbol, error) {
	start := l.pos
	ch := l.Char()

	if (ch == '+' || ch == '-') && l.NextChar() == '=' {
		l.advance()
		l.advance()
		if ch == '+' {
			return l.setToken(PlusAssign, TypeOperatorOrPunctuator, start), nil
		}
		return l.setToken(MinusAssign, TypeOperatorOrPunctuator, start), nil
	}

	l.advance()
	if sym, ok := punctuatorChars[ch]; ok {
		return l.setToken(sym, TypeOperatorOrPunctuator, start), nil
	}
	return l.fail(l.errorAt(perrors.ErrUnexpectedCharacter, l.tok.Line, l.tok.Column,
		map[string]any{"Char": printable(ch)}))
}

// PeekSymbol classifies the next code-mode token without consuming it.
// Scan errors classify as None.
func (l *Lexer) PeekSymbol() Symbol {
	state := l.SaveState()
	defer l.RestoreState(state)
	sym, err := l.ReadCode()
	if err != nil {
		return None
	}
	return sym
}

// PeekKeyword classifies the backslash keyword at the current character
// without consuming it. It returns None if there is no valid keyword there.
func (l *Lexer) PeekKeyword() Symbol {
	return l.PeekKeywordAt(l.pos)
}

// PeekKeywordAt classifies the backslash keyword starting at index.
func (l *Lexer) PeekKeywordAt(index int) Symbol {
	if l.charAt(index) != '\\' {
		return None
	}
	state := l.SaveState()
	defer l.RestoreState(state)
	l.seek(index)
	l.beginToken()
	sym, err := l.scanKeyword()
	if err != nil {
		return None
	}
	return sym
}

// PeekPunctuator classifies the single character offset positions after
// the current one, without skipping whitespace.
func (l *Lexer) PeekPunctuator(offset int) Symbol {
	if sym, ok := punctuatorChars[l.charAt(l.pos+offset)]; ok {
		return sym
	}
	return None
}

// seek moves forward to index, tracking line and column.
func (l *Lexer) seek(index int) {
	for l.pos < index && !l.AtEOF() {
		l.advance()
	}
}

// StringValue returns the decoded content of a string literal or text run.
func (l *Lexer) StringValue() string { return l.tok.Value }

// IntValue interprets the current token as a signed integer.
func (l *Lexer) IntValue() (int64, error) {
	switch l.tok.Symbol {
	case HexIntegerLiteral:
		return strconv.ParseInt(l.tok.Literal[2:], 16, 64)
	case IntegerLiteral:
		if l.tok.Unit != "" {
			return 0, fmt.Errorf("integer %q has a unit", l.tok.Literal)
		}
		return strconv.ParseInt(l.tok.Value, 10, 64)
	case StringLiteral:
		return strconv.ParseInt(strings.TrimSpace(l.tok.Value), 0, 64)
	}
	return 0, fmt.Errorf("%s is not an integer", l.tok.Symbol)
}

// UintValue interprets the current token as an unsigned 32-bit integer.
func (l *Lexer) UintValue() (uint32, error) {
	var (
		v   uint64
		err error
	)
	switch l.tok.Symbol {
	case HexIntegerLiteral:
		v, err = strconv.ParseUint(l.tok.Literal[2:], 16, 32)
	case IntegerLiteral:
		if l.tok.Unit != "" {
			return 0, fmt.Errorf("integer %q has a unit", l.tok.Literal)
		}
		v, err = strconv.ParseUint(l.tok.Value, 10, 32)
	default:
		return 0, fmt.Errorf("%s is not an integer", l.tok.Symbol)
	}
	return uint32(v), err
}

// RealValue interprets the current token as a floating point number.
func (l *Lexer) RealValue() (float64, error) {
	switch l.tok.Symbol {
	case IntegerLiteral, RealLiteral:
		if l.tok.Unit != "" {
			return 0, fmt.Errorf("number %q has a unit", l.tok.Literal)
		}
		return strconv.ParseFloat(l.tok.Value, 64)
	case HexIntegerLiteral:
		v, err := strconv.ParseInt(l.tok.Literal[2:], 16, 64)
		return float64(v), err
	case StringLiteral:
		return strconv.ParseFloat(strings.TrimSpace(l.tok.Value), 64)
	}
	return 0, fmt.Errorf("%s is not a number", l.tok.Symbol)
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || isLetter(ch)
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func printable(ch rune) string {
	switch ch {
	case 0:
		return "end of file"
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	}
	return string(ch)
}
