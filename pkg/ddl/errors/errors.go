// Package errors provides the diagnostics produced while reading DDL text.
//
// A Diagnostic carries a level, a numeric code from the catalog, a rendered
// message and the source position it was detected at. Diagnostics are
// collected in an append-only Diagnostics sink owned by the caller.
package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

// Level is the severity of a diagnostic.
type Level int

const (
	LevelError Level = iota
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// MarshalJSON renders the level by name.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// Class categorizes diagnostics for filtering.
type Class string

const (
	ClassLexical Class = "lexical" // Malformed tokens
	ClassSyntax  Class = "syntax"  // Grammar violations
	ClassBinding Class = "binding" // Attribute path and value errors
	ClassStyle   Class = "style"   // Style resolution
)

// Code is the numeric identifier of a catalog entry.
type Code int

// Lexical errors (1xxx)
const (
	ErrUnterminatedString Code = 1001 + iota
	ErrNewlineInString
	ErrInvalidEscape
	ErrHexEscapeTooLong
	ErrUnexpectedCharacter
	ErrUnknownKeyword
	ErrInvalidKeyword
	ErrInvalidNumber
)

// Syntax errors (2xxx)
const (
	ErrUnexpectedSymbol Code = 2001 + iota
	ErrSymbolExpected
	ErrUnexpectedEndOfFile
	ErrMissingComma
	ErrUnknownChartType
	ErrUnknownFieldType
	ErrTrailingContent
	ErrUnknownSymbolName
	ErrTooManyCells
	ErrUnexpectedKeywordInParagraph
)

// Binding errors (3xxx)
const (
	ErrUnknownAttribute Code = 3001 + iota
	ErrNotAnObject
	ErrInaccessibleAttribute
	ErrInvalidEnumValue
	ErrValueOutOfRange
	ErrNullNotSupported
	ErrInvalidValueType
	ErrDeltaNotAllowed
	ErrUnknownColor
	ErrColorModelNotSupported
	ErrInvalidLiteral
	ErrObjectAssignment
)

// Style warnings (4xxx)
const (
	WarnUndefinedBaseStyle Code = 4001 + iota
	WarnUndefinedStyle
)

// Diagnostic is a single error or warning found in DDL input.
type Diagnostic struct {
	Level   Level          `json:"level"`
	Class   Class          `json:"class"`
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Hints   []string       `json:"hints,omitempty"`
	File    string         `json:"file,omitempty"`
	Line    int            `json:"line"`   // 1-based line (0 if unknown)
	Column  int            `json:"column"` // 1-based column (0 if unknown)
	Data    map[string]any `json:"data,omitempty"`
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.String()
}

// String returns "file: line L, column C: message" followed by indented hints.
func (d *Diagnostic) String() string {
	var sb strings.Builder

	if d.File != "" {
		sb.WriteString(d.File)
		sb.WriteString(": ")
	}
	if d.Line > 0 {
		sb.WriteString(fmt.Sprintf("line %d, column %d: ", d.Line, d.Column))
	}
	sb.WriteString(d.Message)

	for _, hint := range d.Hints {
		sb.WriteString("\n  ")
		sb.WriteString(hint)
	}

	return sb.String()
}

// PrettyString returns a multi-line rendering with the level and code.
func (d *Diagnostic) PrettyString() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s DDL%04d", d.Level, int(d.Code)))
	if d.File != "" {
		sb.WriteString(":\n  in: ")
		sb.WriteString(d.File)
		if d.Line > 0 {
			sb.WriteString(fmt.Sprintf("\n  at: line %d, column %d", d.Line, d.Column))
		}
		sb.WriteString("\n  ")
	} else if d.Line > 0 {
		sb.WriteString(fmt.Sprintf(": line %d, column %d\n  ", d.Line, d.Column))
	} else {
		sb.WriteString(":\n  ")
	}

	sb.WriteString(d.Message)

	for _, hint := range d.Hints {
		sb.WriteString("\n  ")
		sb.WriteString(hint)
	}

	return sb.String()
}

// ToJSON returns the diagnostic as JSON bytes.
func (d *Diagnostic) ToJSON() ([]byte, error) {
	return json.Marshal(d)
}

// WithFile returns a copy of the diagnostic with the file name set.
func (d *Diagnostic) WithFile(file string) *Diagnostic {
	c := *d
	c.File = file
	return &c
}

// WithPosition returns a copy of the diagnostic with line and column set.
func (d *Diagnostic) WithPosition(line, column int) *Diagnostic {
	c := *d
	c.Line = line
	c.Column = column
	return &c
}

// IsWarning reports whether the diagnostic is at warning level.
func (d *Diagnostic) IsWarning() bool {
	return d.Level == LevelWarning
}

// MessageDef defines a diagnostic in the catalog.
type MessageDef struct {
	Class    Class
	Level    Level
	Template string   // Message template with {{.placeholders}}
	Hints    []string // Hint templates
}

// Catalog maps codes to their definitions.
var Catalog = map[Code]MessageDef{
	// ========================================
	// Lexical errors
	// ========================================
	ErrUnterminatedString: {
		Class:    ClassLexical,
		Template: "unterminated string literal",
	},
	ErrNewlineInString: {
		Class:    ClassLexical,
		Template: "newline in string literal",
		Hints:    []string{`use \n or a verbatim string @"..."`},
	},
	ErrInvalidEscape: {
		Class:    ClassLexical,
		Template: `invalid escape sequence '\{{.Char}}' in string literal`,
	},
	ErrHexEscapeTooLong: {
		Class:    ClassLexical,
		Template: `hex escape '\x{{.Digits}}' has more than 2 digits`,
	},
	ErrUnexpectedCharacter: {
		Class:    ClassLexical,
		Template: "unexpected character '{{.Char}}'",
	},
	ErrUnknownKeyword: {
		Class:    ClassLexical,
		Template: "unknown keyword '{{.Keyword}}'",
	},
	ErrInvalidKeyword: {
		Class:    ClassLexical,
		Template: "invalid keyword '{{.Keyword}}'",
		Hints:    []string{`escape a literal backslash as \\`},
	},
	ErrInvalidNumber: {
		Class:    ClassLexical,
		Template: "invalid number literal '{{.Literal}}'",
	},

	// ========================================
	// Syntax errors
	// ========================================
	ErrUnexpectedSymbol: {
		Class:    ClassSyntax,
		Template: "unexpected '{{.Symbol}}'",
	},
	ErrSymbolExpected: {
		Class:    ClassSyntax,
		Template: "expected '{{.Expected}}', got '{{.Got}}'",
	},
	ErrUnexpectedEndOfFile: {
		Class:    ClassSyntax,
		Template: "unexpected end of file",
	},
	ErrMissingComma: {
		Class:    ClassSyntax,
		Template: "missing comma before '{{.Got}}'",
	},
	ErrUnknownChartType: {
		Class:    ClassSyntax,
		Template: "unknown chart type '{{.Name}}'",
	},
	ErrUnknownFieldType: {
		Class:    ClassSyntax,
		Template: "unknown field type '{{.Name}}'",
	},
	ErrTrailingContent: {
		Class:    ClassSyntax,
		Template: "unexpected '{{.Got}}' after end of {{.Construct}}",
	},
	ErrUnknownSymbolName: {
		Class:    ClassSyntax,
		Template: "unknown symbol name '{{.Name}}'",
	},
	ErrTooManyCells: {
		Class:    ClassSyntax,
		Template: "row has only {{.Count}} cell(s)",
		Hints:    []string{"add a \\column for every \\cell in a row"},
	},
	ErrUnexpectedKeywordInParagraph: {
		Class:    ClassSyntax,
		Template: "'{{.Keyword}}' cannot appear inside paragraph text",
	},

	// ========================================
	// Binding errors
	// ========================================
	ErrUnknownAttribute: {
		Class:    ClassBinding,
		Template: "unknown attribute '{{.Name}}' on {{.Type}}",
	},
	ErrNotAnObject: {
		Class:    ClassBinding,
		Template: "attribute '{{.Name}}' on {{.Type}} is not an object",
	},
	ErrInaccessibleAttribute: {
		Class:    ClassBinding,
		Template: "attribute '{{.Name}}' is not accessible",
	},
	ErrInvalidEnumValue: {
		Class:    ClassBinding,
		Template: "'{{.Value}}' is not a valid {{.Enum}}",
	},
	ErrValueOutOfRange: {
		Class:    ClassBinding,
		Template: "value {{.Value}} is out of range [{{.Min}}, {{.Max}}]",
	},
	ErrNullNotSupported: {
		Class:    ClassBinding,
		Template: "null cannot be assigned to '{{.Name}}'",
	},
	ErrInvalidValueType: {
		Class:    ClassBinding,
		Template: "'{{.Got}}' is not a valid {{.Kind}} value for '{{.Name}}'",
	},
	ErrDeltaNotAllowed: {
		Class:    ClassBinding,
		Template: "operator '{{.Operator}}' is not allowed on '{{.Name}}'",
		Hints:    []string{"only TabStops supports += and -="},
	},
	ErrUnknownColor: {
		Class:    ClassBinding,
		Template: "unknown color '{{.Name}}'",
	},
	ErrColorModelNotSupported: {
		Class:    ClassBinding,
		Template: "color model '{{.Model}}' is not supported",
		Hints:    []string{"use RGB(r,g,b), CMYK(c,m,y,k), GRAY(g) or a color name"},
	},
	ErrInvalidLiteral: {
		Class:    ClassBinding,
		Template: "invalid {{.Kind}} literal '{{.Literal}}'",
	},
	ErrObjectAssignment: {
		Class:    ClassBinding,
		Template: "cannot assign a value to object '{{.Name}}'",
		Hints:    []string{"{{.Name}} { ... }", "{{.Name}}.Attribute = value"},
	},

	// ========================================
	// Style warnings
	// ========================================
	WarnUndefinedBaseStyle: {
		Class:    ClassStyle,
		Level:    LevelWarning,
		Template: "base style '{{.Base}}' of '{{.Style}}' is not defined",
	},
	WarnUndefinedStyle: {
		Class:    ClassStyle,
		Level:    LevelWarning,
		Template: "style '{{.Style}}' is not defined",
	},
}

// New creates a diagnostic from the catalog.
func New(code Code, data map[string]any) *Diagnostic {
	def, ok := Catalog[code]
	if !ok {
		msg := fmt.Sprintf("unknown diagnostic code %d", int(code))
		if data != nil {
			msg = fmt.Sprintf("%s: %v", msg, data)
		}
		return &Diagnostic{
			Class:   ClassSyntax,
			Code:    code,
			Message: msg,
			Data:    data,
		}
	}

	msg := renderTemplate(def.Template, data)

	var hints []string
	for _, hintTmpl := range def.Hints {
		rendered := renderTemplate(hintTmpl, data)
		if rendered != "" {
			hints = append(hints, rendered)
		}
	}

	return &Diagnostic{
		Level:   def.Level,
		Class:   def.Class,
		Code:    code,
		Message: msg,
		Hints:   hints,
		Data:    data,
	}
}

// NewWithPosition creates a diagnostic with position information.
func NewWithPosition(code Code, line, column int, data map[string]any) *Diagnostic {
	d := New(code, data)
	d.Line = line
	d.Column = column
	return d
}

func renderTemplate(tmplStr string, data map[string]any) string {
	if data == nil {
		return tmplStr
	}

	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return tmplStr
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return tmplStr
	}

	return buf.String()
}

// ============================================================================
// Fuzzy Matching - "Did you mean?" suggestions
// ============================================================================

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

// matchThreshold is the maximum edit distance accepted for an input of n bytes.
func matchThreshold(n int) int {
	switch {
	case n >= 7:
		return 3
	case n >= 4:
		return 2
	}
	return 1
}

// FindClosestMatch finds the candidate closest to input, ignoring case.
// It returns "" for an exact match or when nothing is close enough.
func FindClosestMatch(input string, candidates []string) string {
	if len(input) == 0 || len(candidates) == 0 {
		return ""
	}

	inputLower := strings.ToLower(input)

	var bestMatch string
	bestDistance := -1
	for _, candidate := range candidates {
		dist := levenshteinDistance(inputLower, strings.ToLower(candidate))
		if bestDistance == -1 || dist < bestDistance {
			bestDistance = dist
			bestMatch = candidate
		}
	}

	if bestDistance <= 0 || bestDistance > matchThreshold(len(input)) {
		return ""
	}
	return bestMatch
}

// FindTopMatches returns up to n candidates within the distance threshold,
// closest first.
func FindTopMatches(input string, candidates []string, n int) []string {
	if len(input) == 0 || len(candidates) == 0 || n <= 0 {
		return nil
	}

	type match struct {
		value    string
		distance int
	}

	inputLower := strings.ToLower(input)
	var matches []match
	for _, candidate := range candidates {
		dist := levenshteinDistance(inputLower, strings.ToLower(candidate))
		if dist > 0 {
			matches = append(matches, match{candidate, dist})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	threshold := matchThreshold(len(input))
	var result []string
	for i := 0; i < len(matches) && i < n; i++ {
		if matches[i].distance <= threshold {
			result = append(result, matches[i].value)
		}
	}
	return result
}

// WithSuggestion appends a "Did you mean" hint when a close candidate exists.
func (d *Diagnostic) WithSuggestion(input string, candidates []string) *Diagnostic {
	if suggestion := FindClosestMatch(input, candidates); suggestion != "" {
		d.Hints = append(d.Hints, "Did you mean `"+suggestion+"`?")
	}
	return d
}
