package repl

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sambeau/ddl/pkg/ddl/ddl"
	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
)

// Session parses snippets one after another. Styles defined by a \styles
// snippet are visible to style references in later snippets.
type Session struct {
	out    io.Writer
	policy perrors.Policy
	logger *slog.Logger
	styles *dom.Styles
	dump   bool
}

// NewSession creates a session writing results to out.
func NewSession(out io.Writer, policy perrors.Policy, logger *slog.Logger) *Session {
	return &Session{
		out:    out,
		policy: policy,
		logger: logger,
		styles: dom.NewStyles(),
	}
}

// Eval parses snippet as a document object and prints its diagnostics,
// followed by the object's type or, in dump mode, the whole object.
func (s *Session) Eval(snippet string) {
	obj, diags, err := ddl.ParseDocumentObject(snippet,
		ddl.WithFilename("<repl>"),
		ddl.WithPolicy(s.policy),
		ddl.WithLogger(s.logger),
		ddl.WithStyles(s.styles),
	)

	for _, d := range diags.All() {
		io.WriteString(s.out, d.PrettyString())
		io.WriteString(s.out, "\n")
	}
	if err != nil || obj == nil {
		return
	}
	if doc, ok := obj.(*dom.Document); ok {
		s.styles = doc.Styles
	}

	if s.dump {
		io.WriteString(s.out, dom.Dump(obj))
		return
	}
	if diags.HasErrors() {
		fmt.Fprintf(s.out, "%s (%d errors)\n", dom.TypeName(obj), diags.ErrorCount())
		return
	}
	fmt.Fprintf(s.out, "OK %s\n", dom.TypeName(obj))
}

// Command handles REPL meta-commands that start with ':'.
func (s *Session) Command(cmd string) {
	switch cmd {
	case ":help", ":h", ":?":
		fmt.Fprintln(s.out, "REPL Commands:")
		fmt.Fprintln(s.out, "  :help, :h, :?   Show this help")
		fmt.Fprintln(s.out, "  :dump           Toggle printing of the parsed object")
		fmt.Fprintln(s.out, "  :styles         List the known styles")
		fmt.Fprintln(s.out, "  :reset          Forget styles defined in this session")
		fmt.Fprintln(s.out, "  exit, quit      Exit the REPL")

	case ":dump":
		s.dump = !s.dump
		if s.dump {
			fmt.Fprintln(s.out, "Dump mode ON")
		} else {
			fmt.Fprintln(s.out, "Dump mode OFF")
		}

	case ":styles":
		fmt.Fprintln(s.out, strings.Join(s.styles.Names(), " "))

	case ":reset":
		s.styles = dom.NewStyles()
		fmt.Fprintln(s.out, "Styles reset")

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type :help for commands)\n", cmd)
	}
}

var completionWords = func() []string {
	words := lexer.Keywords()
	for _, sym := range []lexer.Symbol{lexer.True, lexer.False, lexer.Null} {
		if kw, ok := lexer.KeywordSpelling(sym); ok {
			words = append(words, kw)
		}
	}
	return words
}()

// filterCompletions completes the keyword being typed at the end of line.
// Each candidate is the whole line with the keyword completed.
func filterCompletions(line string) []string {
	if line == "" || strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
		return nil
	}

	start := strings.LastIndexFunc(line, func(r rune) bool {
		return !isWordChar(r)
	})
	prefix, word := line[:start+1], line[start+1:]
	if start >= 0 && line[start] == '\\' {
		prefix, word = line[:start], line[start:]
	}
	if word == "" {
		return nil
	}

	var matches []string
	for _, kw := range completionWords {
		if strings.HasPrefix(kw, word) {
			matches = append(matches, prefix+kw)
		}
	}
	return matches
}

func isWordChar(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
