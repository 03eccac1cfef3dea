package errors

import (
	"slices"
	"strings"
)

// Policy adjusts diagnostics as they are recorded.
type Policy struct {
	WarningsAsErrors bool   // Record warnings at error level
	Ignore           []Code // Codes that are never recorded
}

// Diagnostics is an append-only, ordered collection of diagnostics.
// It performs no locking; a sink shared between goroutines must be
// guarded by the caller.
type Diagnostics struct {
	File   string // Default source file for recorded diagnostics
	Policy Policy

	items []*Diagnostic
}

// NewDiagnostics creates an empty sink for the given source file.
func NewDiagnostics(file string) *Diagnostics {
	return &Diagnostics{File: file}
}

// Add records d and reports whether it was kept by the policy.
func (s *Diagnostics) Add(d *Diagnostic) bool {
	if d == nil || slices.Contains(s.Policy.Ignore, d.Code) {
		return false
	}
	if d.File == "" && s.File != "" {
		d = d.WithFile(s.File)
	}
	if s.Policy.WarningsAsErrors && d.Level == LevelWarning {
		c := *d
		c.Level = LevelError
		d = &c
	}
	s.items = append(s.items, d)
	return true
}

// All returns the recorded diagnostics in detection order.
func (s *Diagnostics) All() []*Diagnostic {
	return slices.Clone(s.items)
}

// Len returns the number of recorded diagnostics.
func (s *Diagnostics) Len() int {
	return len(s.items)
}

// Last returns the most recently recorded diagnostic or nil.
func (s *Diagnostics) Last() *Diagnostic {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// ErrorCount returns the number of error-level diagnostics.
func (s *Diagnostics) ErrorCount() int {
	return s.count(LevelError)
}

// WarningCount returns the number of warning-level diagnostics.
func (s *Diagnostics) WarningCount() int {
	return s.count(LevelWarning)
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (s *Diagnostics) HasErrors() bool {
	return s.ErrorCount() > 0
}

// Errors returns the error-level diagnostics.
func (s *Diagnostics) Errors() []*Diagnostic {
	return s.filter(LevelError)
}

// Warnings returns the warning-level diagnostics.
func (s *Diagnostics) Warnings() []*Diagnostic {
	return s.filter(LevelWarning)
}

// String renders one diagnostic per line.
func (s *Diagnostics) String() string {
	lines := make([]string, len(s.items))
	for i, d := range s.items {
		lines[i] = d.Level.String() + ": " + d.String()
	}
	return strings.Join(lines, "\n")
}

func (s *Diagnostics) count(level Level) int {
	n := 0
	for _, d := range s.items {
		if d.Level == level {
			n++
		}
	}
	return n
}

func (s *Diagnostics) filter(level Level) []*Diagnostic {
	var out []*Diagnostic
	for _, d := range s.items {
		if d.Level == level {
			out = append(out, d)
		}
	}
	return out
}
