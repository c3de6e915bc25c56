// Package matcher abstracts the regular expression engine used to compare
// platform names against manifest patterns.
package matcher

//go:generate mockgen -destination=mocks/mock_matcher.go -package=mocks github.com/quantmind-br/testmanifest/internal/matcher Matcher

import (
	"errors"
	"fmt"
	"strings"
)

// Engine names accepted by New
const (
	EngineRE2     = "re2"
	EngineRegexp2 = "regexp2"
)

var (
	// ErrInvalidPattern indicates a pattern the engine cannot compile
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownEngine indicates an unsupported engine name
	ErrUnknownEngine = errors.New("unknown regex engine")
)

// Matcher matches text against regular expression patterns.
type Matcher interface {
	// FullMatch reports whether pattern matches the whole of text.
	FullMatch(text, pattern string) (bool, error)
	// PartialMatch reports whether pattern matches any substring of text.
	PartialMatch(text, pattern string) (bool, error)
}

// PatternError wraps a compilation failure for a single pattern.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidPattern, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// Engines lists the supported engine names.
func Engines() []string {
	return []string{EngineRE2, EngineRegexp2}
}

// New returns the matcher for the named engine. An empty name selects RE2.
func New(engine string) (Matcher, error) {
	switch strings.ToLower(engine) {
	case "", EngineRE2:
		return NewRE2(), nil
	case EngineRegexp2:
		return NewRegexp2(0), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, engine)
	}
}

// anchor wraps pattern so that it must consume the entire input. The
// pattern must already be known to compile.
func anchor(pattern string) string {
	return `\A(?:` + pattern + `)\z`
}
