package matcher

import (
	"regexp"
	"sync"
)

// RE2 matches with the standard library regexp package, which implements
// RE2 syntax and linear-time matching.
type RE2 struct {
	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// NewRE2 creates an RE2 matcher. Compiled patterns are memoized.
func NewRE2() *RE2 {
	return &RE2{cache: make(map[string]*regexp.Regexp)}
}

// FullMatch implements Matcher.
func (m *RE2) FullMatch(text, pattern string) (bool, error) {
	// The bare pattern must compile on its own; unbalanced groups could
	// otherwise close the anchoring group early.
	if _, err := m.compile(pattern, pattern); err != nil {
		return false, err
	}
	re, err := m.compile(anchor(pattern), pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}

// PartialMatch implements Matcher.
func (m *RE2) PartialMatch(text, pattern string) (bool, error) {
	re, err := m.compile(pattern, pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}

func (m *RE2) compile(expr, pattern string) (*regexp.Regexp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if re, ok := m.cache[expr]; ok {
		return re, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	m.cache[expr] = re
	return re, nil
}
