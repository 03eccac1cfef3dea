// Package parser reads DDL text into a dom document graph.
//
// The parser is a set of recursive-descent productions, one per grammar
// construct. Each production starts with its first token as the lexer's
// current token and returns with its last token current. Errors are
// recorded in a Diagnostics sink and recovered at the innermost enclosing
// construct, so a parse always yields a best-effort graph.
package parser

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

// Parser builds document objects from a lexer's token stream.
type Parser struct {
	l      *lexer.Lexer
	diags  *perrors.Diagnostics
	logger *slog.Logger
	styles *dom.Styles

	// open holds one entry per unclosed brace, bracket or parenthesis.
	// An entry is true when the delimiter encloses prose.
	open        []bool
	eofReported bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithDiagnostics records diagnostics into d instead of a private sink.
func WithDiagnostics(d *perrors.Diagnostics) Option {
	return func(p *Parser) { p.diags = d }
}

// WithLogger enables debug logging of parser events. A nil logger
// disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithStyles sets the styles that style references are checked against
// when parsing a construct other than a whole document.
func WithStyles(s *dom.Styles) Option {
	return func(p *Parser) { p.styles = s }
}

// New creates a parser reading from l.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{l: l}
	for _, opt := range opts {
		opt(p)
	}
	if p.diags == nil {
		p.diags = perrors.NewDiagnostics(l.Filename())
	}
	if p.logger != nil {
		p.logger = p.logger.With(slog.String("component", "parser"))
	}
	return p
}

// Diagnostics returns the sink the parser records into.
func (p *Parser) Diagnostics() *perrors.Diagnostics {
	return p.diags
}

func (p *Parser) log(level slog.Level, msg string, attrs ...slog.Attr) {
	if p.logger == nil {
		return
	}
	ctx := context.Background()
	if !p.logger.Enabled(ctx, level) {
		return
	}
	p.logger.LogAttrs(ctx, level, msg, attrs...)
}

// fatal aborts the parse. It passes through every recovery point.
type fatal struct {
	d *perrors.Diagnostic
}

func (f *fatal) Error() string { return f.d.Error() }
func (f *fatal) Unwrap() error { return f.d }

func isFatal(err error) bool {
	var f *fatal
	return errors.As(err, &f)
}

func (p *Parser) depth() int { return len(p.open) }

func (p *Parser) track(sym lexer.Symbol) {
	switch sym {
	case lexer.BraceLeft, lexer.BracketLeft, lexer.ParenLeft, lexer.Character:
		p.open = append(p.open, false)
	case lexer.BraceRight, lexer.BracketRight, lexer.ParenRight:
		if len(p.open) > 0 {
			p.open = p.open[:len(p.open)-1]
		}
	}
}

// markText records that the innermost open delimiter encloses prose.
func (p *Parser) markText() {
	if len(p.open) > 0 {
		p.open[len(p.open)-1] = true
	}
}

func (p *Parser) inText() bool {
	return len(p.open) > 0 && p.open[len(p.open)-1]
}

// readCode reads the next code-mode token. End of input is fatal.
func (p *Parser) readCode() (lexer.Symbol, error) {
	sym, err := p.l.ReadCode()
	if err != nil {
		return sym, err
	}
	if sym == lexer.Eof {
		return sym, p.eof()
	}
	p.track(sym)
	return sym, nil
}

// readText reads the next text-mode token. End of input is fatal.
func (p *Parser) readText(root bool) (lexer.Symbol, error) {
	sym, err := p.l.ReadText(root)
	if err != nil {
		return sym, err
	}
	if sym == lexer.Eof {
		return sym, p.eof()
	}
	p.track(sym)
	if sym == lexer.BraceLeft {
		p.markText()
	}
	return sym, nil
}

func (p *Parser) expect(sym lexer.Symbol) error {
	got, err := p.readCode()
	if err != nil {
		return err
	}
	if got != sym {
		return p.expected(sym)
	}
	return nil
}

// peekAttributes reports whether an attribute list follows. Inline
// constructs only accept a directly adjacent list.
func (p *Parser) peekAttributes(inline bool) bool {
	if inline {
		return p.l.PeekPunctuator(0) == lexer.BracketLeft
	}
	return p.l.PeekSymbol() == lexer.BracketLeft
}

// parseOptionalAttributes parses "[...]" into obj when it follows.
func (p *Parser) parseOptionalAttributes(obj dom.DocumentObject, inline bool) error {
	if !p.peekAttributes(inline) {
		return nil
	}
	if _, err := p.readCode(); err != nil {
		return err
	}
	return p.parseAttributes(obj)
}

// parseBlock reads the statements of a code-mode block up to close. The
// opening delimiter is the current token. fn parses one statement starting
// at the current token sym; errors it returns are recovered here.
func (p *Parser) parseBlock(close lexer.Symbol, fn func(sym lexer.Symbol) error) error {
	inner := p.depth()
	for {
		sym, err := p.readCode()
		if err == nil {
			if sym == close {
				return nil
			}
			err = fn(sym)
		}
		if err = p.catch(inner, err); err != nil {
			return err
		}
		if p.depth() < inner {
			return nil
		}
	}
}

// Diagnostics construction

func describe(tok lexer.Token) string {
	if tok.Literal != "" {
		return tok.Literal
	}
	return tok.Symbol.String()
}

func (p *Parser) errorAt(tok lexer.Token, code perrors.Code, data map[string]any) *perrors.Diagnostic {
	d := perrors.NewWithPosition(code, tok.Line, tok.Column, data)
	if f := p.l.Filename(); f != "" {
		d.File = f
	}
	return d
}

// newError creates a diagnostic at the current token.
func (p *Parser) newError(code perrors.Code, data map[string]any) *perrors.Diagnostic {
	return p.errorAt(p.l.Token(), code, data)
}

func (p *Parser) warn(code perrors.Code, data map[string]any) {
	d := p.newError(code, data)
	p.diags.Add(d)
	p.log(slog.LevelDebug, "warning", slog.Int("code", int(code)), slog.String("message", d.Message))
}

func (p *Parser) unexpected() error {
	tok := p.l.Token()
	if tok.Symbol == lexer.Eof {
		return p.eof()
	}
	return p.newError(perrors.ErrUnexpectedSymbol, map[string]any{"Symbol": describe(tok)})
}

func (p *Parser) expected(sym lexer.Symbol) error {
	tok := p.l.Token()
	if tok.Symbol == lexer.Eof {
		return p.eof()
	}
	return p.newError(perrors.ErrSymbolExpected, map[string]any{
		"Expected": sym.String(),
		"Got":      describe(tok),
	})
}

// eof records the end-of-file error once and returns the fatal error that
// unwinds the parse.
func (p *Parser) eof() error {
	d := perrors.NewWithPosition(perrors.ErrUnexpectedEndOfFile, p.l.Line(), p.l.Column(), nil)
	if f := p.l.Filename(); f != "" {
		d.File = f
	}
	if !p.eofReported {
		p.eofReported = true
		p.diags.Add(d)
	}
	return &fatal{d: d}
}

func (p *Parser) report(err error) {
	var d *perrors.Diagnostic
	if !errors.As(err, &d) {
		d = p.newError(perrors.ErrUnexpectedSymbol, map[string]any{"Symbol": describe(p.l.Token())})
		d.Hints = append(d.Hints, err.Error())
	}
	p.diags.Add(d)
	p.log(slog.LevelDebug, "recovering",
		slog.Int("code", int(d.Code)),
		slog.Int("line", d.Line),
		slog.Int("depth", p.depth()))
}

// Recovery

// catch records err and resynchronizes the token stream to depth start,
// the delimiter depth at which the failed construct began. Fatal errors
// are returned unchanged; nil is returned once recovered.
func (p *Parser) catch(start int, err error) error {
	if err == nil || isFatal(err) {
		return err
	}
	p.report(err)

	closed, err := p.skipTo(start)
	if err != nil {
		return err
	}
	if closed == lexer.ParenRight || closed == lexer.BracketRight {
		return p.skipGroups()
	}
	return nil
}

// catchStatement recovers an attribute statement. Besides the open
// delimiters it skips the rest of a statement left at the same depth.
func (p *Parser) catchStatement(start int, err error) error {
	if err == nil {
		return nil
	}
	if err = p.catch(start, err); err != nil || p.depth() != start {
		return err
	}

	for p.l.PeekSymbol() == lexer.Dot {
		if _, err := p.skipToken(); err != nil {
			return err
		}
		if p.l.PeekSymbol() != lexer.Identifier {
			break
		}
		if _, err := p.skipToken(); err != nil {
			return err
		}
	}

	switch p.l.PeekSymbol() {
	case lexer.Assign, lexer.PlusAssign, lexer.MinusAssign:
		if _, err := p.skipToken(); err != nil {
			return err
		}
		if _, err := p.skipToken(); err != nil {
			return err
		}
		return p.skipValueRest()
	case lexer.BraceLeft:
		if _, err := p.skipToken(); err != nil {
			return err
		}
		return p.skipValueRest()
	}
	return nil
}

// skipToken consumes one token in the mode of the innermost delimiter.
// Lexical errors are dropped; they always consume input.
func (p *Parser) skipToken() (lexer.Symbol, error) {
	var (
		sym lexer.Symbol
		err error
	)
	if p.inText() {
		sym, err = p.readText(false)
	} else {
		sym, err = p.readCode()
	}
	if err != nil {
		if isFatal(err) {
			return sym, err
		}
		return lexer.None, nil
	}
	return sym, nil
}

// skipTo consumes tokens until the delimiter depth is back at start and
// returns the last symbol consumed.
func (p *Parser) skipTo(start int) (lexer.Symbol, error) {
	last := lexer.None
	for p.depth() > start {
		sym, err := p.skipToken()
		if err != nil {
			return sym, err
		}
		last = sym
	}
	return last, nil
}

// skipGroups consumes the attribute list and body directly following a
// construct's arguments.
func (p *Parser) skipGroups() error {
	for {
		next := p.l.PeekSymbol()
		if next != lexer.BraceLeft && (next != lexer.BracketLeft || p.inText()) {
			return nil
		}
		start := p.depth()
		if _, err := p.skipToken(); err != nil {
			return err
		}
		if _, err := p.skipTo(start); err != nil {
			return err
		}
		if next == lexer.BraceLeft {
			return nil
		}
	}
}

// skipElementGroups drops the argument, attribute and body groups after a
// misplaced element keyword. Arguments and attributes are read as code and
// the body as prose.
func (p *Parser) skipElementGroups() error {
	for {
		next := p.l.PeekSymbol()
		switch next {
		case lexer.ParenLeft, lexer.BracketLeft, lexer.BraceLeft:
		default:
			return nil
		}
		start := p.depth()
		if _, err := p.readCode(); err != nil {
			if isFatal(err) {
				return err
			}
			return nil
		}
		if next == lexer.BraceLeft {
			p.markText()
		}
		if _, err := p.skipTo(start); err != nil {
			return err
		}
		if next == lexer.BraceLeft {
			return nil
		}
	}
}

// skipValueRest consumes the remainder of a value whose first token is
// current.
func (p *Parser) skipValueRest() error {
	switch p.l.Symbol() {
	case lexer.Minus:
		_, err := p.skipToken()
		return err
	case lexer.Identifier:
		if p.l.PeekSymbol() != lexer.ParenLeft {
			return nil
		}
		start := p.depth()
		if _, err := p.skipToken(); err != nil {
			return err
		}
		_, err := p.skipTo(start)
		return err
	case lexer.BraceLeft, lexer.BracketLeft, lexer.ParenLeft:
		_, err := p.skipTo(p.depth() - 1)
		return err
	}
	return nil
}

// skipConstruct silently consumes the construct starting at the current
// token together with any argument, attribute and body groups after it.
func (p *Parser) skipConstruct() error {
	switch p.l.Symbol() {
	case lexer.BraceLeft, lexer.BracketLeft, lexer.ParenLeft:
		if _, err := p.skipTo(p.depth() - 1); err != nil {
			return err
		}
	}
	for {
		switch p.l.PeekSymbol() {
		case lexer.ParenLeft, lexer.BracketLeft, lexer.BraceLeft:
		default:
			return nil
		}
		start := p.depth()
		if _, err := p.skipToken(); err != nil {
			return err
		}
		if _, err := p.skipTo(start); err != nil {
			return err
		}
	}
}

// top finishes a parse that failed outside any recovering construct.
func (p *Parser) top(err error) error {
	if err == nil || isFatal(err) {
		return err
	}
	p.report(err)
	return err
}

// expectEnd asserts that only whitespace and comments remain.
func (p *Parser) expectEnd(construct string) error {
	sym, err := p.l.ReadCode()
	if err != nil {
		return p.top(err)
	}
	if sym == lexer.Eof {
		return nil
	}
	return p.top(p.newError(perrors.ErrTrailingContent, map[string]any{
		"Got":       describe(p.l.Token()),
		"Construct": construct,
	}))
}
