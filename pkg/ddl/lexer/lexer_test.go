package lexer

import (
	"testing"

	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllCode(t *testing.T, input string) []Token {
	t.Helper()
	l := New(input)
	var out []Token
	for i := 0; i < 1000; i++ {
		_, err := l.ReadCode()
		require.NoError(t, err)
		out = append(out, l.Token())
		if l.Symbol() == Eof {
			return out
		}
	}
	t.Fatal("lexer did not reach end of file")
	return nil
}

func TestReadCode_Structure(t *testing.T) {
	input := `\section [Format.Font.Size = 10pt] { } // trailing comment`

	tests := []struct {
		expectedSymbol  Symbol
		expectedLiteral string
	}{
		{Section, `\section`},
		{BracketLeft, "["},
		{Identifier, "Format"},
		{Dot, "."},
		{Identifier, "Font"},
		{Dot, "."},
		{Identifier, "Size"},
		{Assign, "="},
		{IntegerLiteral, "10pt"},
		{BracketRight, "]"},
		{BraceLeft, "{"},
		{BraceRight, "}"},
		{Eof, ""},
	}

	tokens := readAllCode(t, input)
	require.Len(t, tokens, len(tests))
	for i, tt := range tests {
		assert.Equal(t, tt.expectedSymbol, tokens[i].Symbol, "tests[%d] symbol", i)
		assert.Equal(t, tt.expectedLiteral, tokens[i].Literal, "tests[%d] literal", i)
	}
	assert.Equal(t, "pt", tokens[8].Unit)
	assert.Equal(t, "10", tokens[8].Value)
	assert.Equal(t, TypeKeyword, tokens[0].Type)
}

func TestReadCode_BareKeywords(t *testing.T) {
	tokens := readAllCode(t, "true False null TRUE nullable")
	assert.Equal(t, True, tokens[0].Symbol)
	assert.Equal(t, False, tokens[1].Symbol)
	assert.Equal(t, Null, tokens[2].Symbol)
	assert.Equal(t, Identifier, tokens[3].Symbol)
	assert.Equal(t, Identifier, tokens[4].Symbol)
}

func TestReadCode_Operators(t *testing.T) {
	tokens := readAllCode(t, "+= -= + - ( ) , :")
	got := make([]Symbol, 0, len(tokens))
	for _, tok := range tokens {
		got = append(got, tok.Symbol)
	}
	assert.Equal(t, []Symbol{PlusAssign, MinusAssign, Plus, Minus, ParenLeft, ParenRight, Comma, Colon, Eof}, got)
}

func TestReadCode_Strings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"plain"`, "plain"},
		{`"a\tb\x41"`, "a\tbA"},
		{`"quote \" and \\ backslash"`, `quote " and \ backslash`},
		{`@"say ""hi"""`, `say "hi"`},
		{"@\"two\nlines\"", "two\nlines"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			sym, err := l.ReadCode()
			require.NoError(t, err)
			assert.Equal(t, StringLiteral, sym)
			assert.Equal(t, tt.expected, l.Token().Value)
			assert.Equal(t, tt.input, l.Token().Literal)
		})
	}
}

func TestReadCode_Numbers(t *testing.T) {
	l := New("0xFF 1.5 .5 2cm 42")

	sym, err := l.ReadCode()
	require.NoError(t, err)
	assert.Equal(t, HexIntegerLiteral, sym)
	v, err := l.IntValue()
	require.NoError(t, err)
	assert.Equal(t, int64(255), v)

	sym, err = l.ReadCode()
	require.NoError(t, err)
	assert.Equal(t, RealLiteral, sym)
	f, err := l.RealValue()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	sym, err = l.ReadCode()
	require.NoError(t, err)
	assert.Equal(t, RealLiteral, sym)
	f, err = l.RealValue()
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	sym, err = l.ReadCode()
	require.NoError(t, err)
	assert.Equal(t, IntegerLiteral, sym)
	assert.Equal(t, "cm", l.Token().Unit)
	_, err = l.IntValue()
	assert.Error(t, err)

	_, err = l.ReadCode()
	require.NoError(t, err)
	u, err := l.UintValue()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), u)
}

func TestReadCode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  perrors.Code
	}{
		{"unterminated string", `"abc`, perrors.ErrUnterminatedString},
		{"newline in string", "\"ab\ncd\"", perrors.ErrNewlineInString},
		{"hex escape too long", `"\x414"`, perrors.ErrHexEscapeTooLong},
		{"invalid escape", `"\q"`, perrors.ErrInvalidEscape},
		{"unknown keyword", `\secton`, perrors.ErrUnknownKeyword},
		{"invalid keyword", `\%`, perrors.ErrInvalidKeyword},
		{"unexpected character", "~", perrors.ErrUnexpectedCharacter},
		{"invalid hex", "0x", perrors.ErrInvalidNumber},
		{"unterminated verbatim", `@"abc`, perrors.ErrUnterminatedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			sym, err := l.ReadCode()
			require.Error(t, err)
			assert.Equal(t, None, sym)
			assert.Equal(t, None, l.Symbol())

			var d *perrors.Diagnostic
			require.ErrorAs(t, err, &d)
			assert.Equal(t, tt.code, d.Code)
			assert.Equal(t, perrors.ClassLexical, d.Class)
			assert.Equal(t, 1, d.Line)
			assert.Positive(t, l.pos, "a lexical error must consume input")
		})
	}
}

func TestReadCode_BadEscapeSkipsString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		next  Symbol
	}{
		{"invalid escape", `"a\qb" }`, BraceRight},
		{"hex escape too long", `"bad\x123" Bar`, Identifier},
		{"escaped quote after error", `"\q\"x" ]`, BracketRight},
		{"unterminated after error", "\"\\q\n}", BraceRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			_, err := l.ReadCode()
			require.Error(t, err)

			sym, err := l.ReadCode()
			require.NoError(t, err)
			assert.Equal(t, tt.next, sym)
		})
	}
}

func TestReadCode_UnknownKeywordSuggestion(t *testing.T) {
	_, err := New(`\secton`).ReadCode()
	var d *perrors.Diagnostic
	require.ErrorAs(t, err, &d)
	require.NotEmpty(t, d.Hints)
	assert.Equal(t, "Did you mean `\\section`?", d.Hints[0])
}

func TestReadCode_Positions(t *testing.T) {
	tokens := readAllCode(t, "a\n  b")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[1].Column)
}

func TestReadCode_FilenameInDiagnostics(t *testing.T) {
	_, err := NewWithFilename("~", "report.mdddl").ReadCode()
	var d *perrors.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, "report.mdddl", d.File)
}

func TestSaveRestoreState(t *testing.T) {
	l := New(`\table { \columns }`)
	_, err := l.ReadCode()
	require.NoError(t, err)

	state := l.SaveState()
	_, _ = l.ReadCode()
	_, _ = l.ReadCode()
	assert.Equal(t, Columns, l.Symbol())

	l.RestoreState(state)
	assert.Equal(t, Table, l.Symbol())
	sym, err := l.ReadCode()
	require.NoError(t, err)
	assert.Equal(t, BraceLeft, sym)
}

func TestPeekOperations(t *testing.T) {
	t.Run("peek symbol does not consume", func(t *testing.T) {
		l := New("  [ x")
		assert.Equal(t, BracketLeft, l.PeekSymbol())
		sym, err := l.ReadCode()
		require.NoError(t, err)
		assert.Equal(t, BracketLeft, sym)
	})

	t.Run("peek punctuator does not skip whitespace", func(t *testing.T) {
		l := New(`\image("a.png") \bold {x}`)
		_, err := l.ReadCode()
		require.NoError(t, err)
		assert.Equal(t, ParenLeft, l.PeekPunctuator(0))

		for l.Symbol() != ParenRight {
			_, err = l.ReadCode()
			require.NoError(t, err)
		}
		_, err = l.ReadCode()
		require.NoError(t, err)
		assert.Equal(t, Bold, l.Symbol())
		assert.Equal(t, None, l.PeekPunctuator(0))
		assert.Equal(t, BraceLeft, l.PeekPunctuator(1))
	})

	t.Run("peek keyword", func(t *testing.T) {
		assert.Equal(t, Bold, New(`\bold{x}`).PeekKeyword())
		assert.Equal(t, None, New(`\\x`).PeekKeyword())
		assert.Equal(t, None, New(`\nosuch`).PeekKeyword())
		assert.Equal(t, None, New(`plain`).PeekKeyword())
	})
}

func TestSymbol_Classification(t *testing.T) {
	assert.True(t, Section.IsKeyword())
	assert.True(t, True.IsKeyword())
	assert.False(t, Identifier.IsKeyword())
	assert.True(t, Comma.IsPunctuator())
	assert.True(t, HexIntegerLiteral.IsNumber())
	assert.True(t, Bold.IsInline())
	assert.True(t, SoftHyphen.IsInline())
	assert.False(t, Image.IsInline())
	assert.False(t, Paragraph.IsInline())
	assert.Equal(t, `\section`, Section.String())
	assert.Equal(t, "+=", PlusAssign.String())
	assert.Equal(t, "end of file", Eof.String())
}

func TestKeywords_Sorted(t *testing.T) {
	kws := Keywords()
	require.NotEmpty(t, kws)
	assert.IsIncreasing(t, kws)
	sym, ok := LookupKeyword(`\xvalues`)
	assert.True(t, ok)
	assert.Equal(t, XValues, sym)
}
