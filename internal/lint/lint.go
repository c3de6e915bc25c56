// Package lint checks a parsed manifest for entries that cannot work as
// intended.
package lint

import (
	"errors"
	"fmt"

	"github.com/quantmind-br/testmanifest/internal/manifest"
	"github.com/quantmind-br/testmanifest/internal/matcher"
)

// Severity of an issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single finding.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Line     int      `json:"line" yaml:"line"`
	Key      string   `json:"key" yaml:"key"`
	Pattern  string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	if i.Key == "" {
		return fmt.Sprintf("%d: %s: %s", i.Line, i.Severity, i.Message)
	}
	if i.Pattern != "" {
		return fmt.Sprintf("%d: %s: %s %q: %s", i.Line, i.Severity, i.Key, i.Pattern, i.Message)
	}
	return fmt.Sprintf("%d: %s: %s: %s", i.Line, i.Severity, i.Key, i.Message)
}

// Report collects the issues found in one manifest.
type Report struct {
	Path   string  `json:"path" yaml:"path"`
	Issues []Issue `json:"issues" yaml:"issues"`
}

// Errors returns the number of error-level issues.
func (r *Report) Errors() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings returns the number of warning-level issues.
func (r *Report) Warnings() int {
	return len(r.Issues) - r.Errors()
}

// Failed reports whether the manifest should be rejected. In strict mode
// warnings count as failures.
func (r *Report) Failed(strict bool) bool {
	if strict {
		return len(r.Issues) > 0
	}
	return r.Errors() > 0
}

// Check compiles every pattern in doc with mt and flags suspicious entries.
// When platform is set, patterns that match only part of it are reported,
// since manifest patterns must match the whole platform name.
func Check(doc *manifest.Document, mt matcher.Matcher, platform string) *Report {
	r := &Report{Path: doc.Path, Issues: []Issue{}}

	for _, e := range doc.Entries {
		if e.Key == "" {
			for _, line := range append([]int{e.Line}, e.Redeclared...) {
				r.Issues = append(r.Issues, Issue{
					Severity: SeverityWarning,
					Line:     line,
					Message:  "line starts with a space; key is empty",
				})
			}
			continue
		}
		if len(e.Patterns) == 0 {
			r.add(SeverityWarning, e, "", "entry has no platform patterns and never disables anything")
		}
		for _, line := range e.Redeclared {
			r.Issues = append(r.Issues, Issue{
				Severity: SeverityWarning,
				Line:     line,
				Key:      e.Key,
				Message:  fmt.Sprintf("key already declared on line %d; patterns are merged", e.Line),
			})
		}

		for _, p := range e.Patterns {
			if p == "" {
				r.add(SeverityWarning, e, p, "empty pattern (repeated space?) only matches an empty platform")
				continue
			}

			full, err := mt.FullMatch(platform, p)
			if err != nil {
				var perr *matcher.PatternError
				if errors.As(err, &perr) {
					err = perr.Err
				}
				r.add(SeverityError, e, p, err.Error())
				continue
			}
			if platform == "" || full {
				continue
			}
			partial, err := mt.PartialMatch(platform, p)
			if err == nil && partial {
				r.add(SeverityWarning, e, p,
					fmt.Sprintf("matches part of platform %q but not all of it; did you mean .*%s.*?", platform, p))
			}
		}
	}
	return r
}

func (r *Report) add(sev Severity, e manifest.Entry, pattern, msg string) {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Line:     e.Line,
		Key:      e.Key,
		Pattern:  pattern,
		Message:  msg,
	})
}
