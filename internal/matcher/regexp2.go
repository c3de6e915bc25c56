package matcher

import (
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single backtracking match.
const DefaultMatchTimeout = time.Second

// Regexp2 matches with github.com/dlclark/regexp2, a backtracking engine
// that accepts lookaround and backreferences.
type Regexp2 struct {
	timeout time.Duration

	mu    sync.Mutex
	cache map[string]*regexp2.Regexp
}

// NewRegexp2 creates a Regexp2 matcher. A zero timeout selects
// DefaultMatchTimeout.
func NewRegexp2(timeout time.Duration) *Regexp2 {
	if timeout <= 0 {
		timeout = DefaultMatchTimeout
	}
	return &Regexp2{
		timeout: timeout,
		cache:   make(map[string]*regexp2.Regexp),
	}
}

// FullMatch implements Matcher.
func (m *Regexp2) FullMatch(text, pattern string) (bool, error) {
	// The bare pattern must compile on its own; unbalanced groups could
	// otherwise close the anchoring group early.
	if _, err := m.compile(pattern, pattern); err != nil {
		return false, err
	}
	re, err := m.compile(anchor(pattern), pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text)
}

// PartialMatch implements Matcher.
func (m *Regexp2) PartialMatch(text, pattern string) (bool, error) {
	re, err := m.compile(pattern, pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text)
}

func (m *Regexp2) compile(expr, pattern string) (*regexp2.Regexp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if re, ok := m.cache[expr]; ok {
		return re, nil
	}
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	re.MatchTimeout = m.timeout
	m.cache[expr] = re
	return re, nil
}
