// Package ddl is the entry point for reading DDL documents.
//
// ParseDocument and ParseDocumentObject run the lexer and parser over a
// source string and return the resulting graph together with every
// diagnostic recorded along the way. A parse always yields a best-effort
// graph; the returned error is set only when the input could not be read
// to its end.
package ddl

import (
	"log/slog"

	"github.com/sambeau/ddl/pkg/ddl/dom"
	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
	"github.com/sambeau/ddl/pkg/ddl/lexer"
	"github.com/sambeau/ddl/pkg/ddl/parser"
)

type options struct {
	filename string
	policy   perrors.Policy
	logger   *slog.Logger
	styles   *dom.Styles
	document *dom.Document
}

// Option configures a parse.
type Option func(*options)

// WithFilename names the source in diagnostics.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithPolicy filters and promotes diagnostics as they are recorded.
func WithPolicy(p perrors.Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger logs parser events to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStyles checks style references of a document object against s.
func WithStyles(s *dom.Styles) Option {
	return func(o *options) { o.styles = s }
}

// WithDocument makes ParseDocument add to doc instead of a new document.
func WithDocument(doc *dom.Document) Option {
	return func(o *options) { o.document = doc }
}

func newParser(src string, opts []Option) (*parser.Parser, *options) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	diags := perrors.NewDiagnostics(o.filename)
	diags.Policy = o.policy

	popts := []parser.Option{parser.WithDiagnostics(diags), parser.WithLogger(o.logger)}
	if o.styles != nil {
		popts = append(popts, parser.WithStyles(o.styles))
	}
	return parser.New(lexer.NewWithFilename(src, o.filename), popts...), o
}

// ParseDocument parses src, which must hold a single \document.
func ParseDocument(src string, opts ...Option) (*dom.Document, *perrors.Diagnostics, error) {
	p, o := newParser(src, opts)
	doc, err := p.ParseDocument(o.document)
	return doc, p.Diagnostics(), err
}

// ParseDocumentObject parses src, which must hold a single document,
// styles, section, table, text frame or paragraph.
func ParseDocumentObject(src string, opts ...Option) (dom.DocumentObject, *perrors.Diagnostics, error) {
	p, _ := newParser(src, opts)
	obj, err := p.ParseDocumentObject()
	return obj, p.Diagnostics(), err
}
