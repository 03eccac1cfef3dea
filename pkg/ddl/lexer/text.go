package lexer

import "strings"

// isTextEscape reports whether \ch stands for the literal character ch in
// paragraph text.
func isTextEscape(ch rune) bool {
	return ch == '\\' || ch == '{' || ch == '}' || ch == '/'
}

// IsTextEscape reports whether the backslash at the current character
// starts a text escape rather than a keyword.
func (l *Lexer) IsTextEscape() bool {
	return l.Char() == '\\' && isTextEscape(l.NextChar())
}

// ReadText scans the next token of paragraph text. rootLevel is true when
// the paragraph is an implicit one directly inside a section or cell, where
// an empty line ends the paragraph.
//
// A line break inside a paragraph becomes a single Blank token, except where
// whitespace is already implied. A line break that ends the paragraph yields
// EmptyLine.
func (l *Lexer) ReadText(rootLevel bool) (Symbol, error) {
	l.prevSymbol = l.tok.Symbol
	afterSpace := l.endsWithSpace()

	for {
		l.beginToken()
		ch := l.Char()

		switch {
		case l.AtEOF():
			return l.setToken(Eof, TypeNone, l.pos), nil

		case ch == '\\':
			if isTextEscape(l.NextChar()) {
				if sym, ok := l.scanText(afterSpace); ok {
					return sym, nil
				}
				continue
			}
			return l.scanKeyword()

		case ch == '{':
			start := l.pos
			l.advance()
			return l.setToken(BraceLeft, TypeOperatorOrPunctuator, start), nil

		case ch == '}':
			start := l.pos
			l.advance()
			return l.setToken(BraceRight, TypeOperatorOrPunctuator, start), nil

		case ch == '/' && l.NextChar() == '/':
			l.skipToEndOfLine()

		case ch == '\r':
			l.advance()

		case ch == '\n':
			start := l.pos
			if !l.MoveToNextParagraphContentLine(rootLevel) {
				return l.setToken(EmptyLine, TypeNone, start), nil
			}
			if afterSpace || l.AtEOF() || l.Char() == '}' {
				continue
			}
			l.tok.Literal = "\n"
			l.tok.Symbol = Blank
			l.tok.Type = TypeText
			l.tok.Value = " "
			return Blank, nil

		case (ch == ' ' || ch == '\t') && afterSpace:
			l.advance()

		default:
			if sym, ok := l.scanText(afterSpace); ok {
				return sym, nil
			}
		}
	}
}

// endsWithSpace reports whether the current token already separates words,
// so that following whitespace can be dropped.
func (l *Lexer) endsWithSpace() bool {
	switch l.tok.Symbol {
	case None, BraceLeft, EmptyLine, Blank, Tab, LineBreak, Space:
		return true
	case Text:
		return strings.HasSuffix(l.tok.Value, " ")
	}
	return false
}

// scanText collects a run of prose. Runs of spaces and tabs collapse to one
// space, and trailing space before a closing brace is dropped. It reports
// false when the run was empty after trimming.
func (l *Lexer) scanText(afterSpace bool) (Symbol, bool) {
	start := l.pos
	var sb strings.Builder
	lastSpace := afterSpace

loop:
	for !l.AtEOF() {
		ch := l.Char()
		switch {
		case ch == '\\':
			if !isTextEscape(l.NextChar()) {
				break loop
			}
			l.advance()
			sb.WriteRune(l.Char())
			lastSpace = false
		case ch == '{', ch == '}', ch == '\n', ch == '\r':
			break loop
		case ch == '/' && l.NextChar() == '/':
			break loop
		case ch == ' ', ch == '\t':
			if !lastSpace {
				sb.WriteByte(' ')
				lastSpace = true
			}
		default:
			sb.WriteRune(ch)
			lastSpace = false
		}
		l.advance()
	}

	text := sb.String()
	if l.Char() == '}' {
		text = strings.TrimRight(text, " ")
	}
	if text == "" {
		return None, false
	}
	l.tok.Value = text
	return l.setToken(Text, TypeText, start), true
}

// MoveToParagraphContent skips whitespace and comment lines up to the next
// content character or closing brace. It reports false at end of input.
func (l *Lexer) MoveToParagraphContent() bool {
	l.skipWhitespaceAndComments()
	return !l.AtEOF()
}

// MoveToNextParagraphContentLine is called on a line feed inside paragraph
// text. It consumes the line feed and any following blank or comment-only
// lines, and reports whether the paragraph continues.
//
// An empty line ends the paragraph, except directly before a closing brace
// of a non-root paragraph. Comment-only lines are skipped and do not count
// as empty.
func (l *Lexer) MoveToNextParagraphContentLine(rootLevel bool) bool {
	emptyLine := false
	lineHasContent := false
	l.advance() // line feed

	for {
		for ch := l.Char(); ch == ' ' || ch == '\t' || ch == '\r'; ch = l.Char() {
			l.advance()
		}

		ch := l.Char()
		switch {
		case l.AtEOF():
			return false
		case ch == '\n':
			if !lineHasContent {
				emptyLine = true
			}
			lineHasContent = false
			l.advance()
		case ch == '/' && l.NextChar() == '/':
			l.skipToEndOfLine()
			lineHasContent = true
		case ch == '}':
			return !(emptyLine && rootLevel)
		default:
			return !emptyLine
		}
	}
}
