// Package disable decides whether a test is disabled on the current platform.
package disable

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/testmanifest/internal/manifest"
	"github.com/quantmind-br/testmanifest/internal/matcher"
)

// DisabledPrefix marks a test name as disabled for the test runner.
const DisabledPrefix = "DISABLED_"

// Decision describes the outcome for one test.
type Decision struct {
	Suite    string `json:"suite" yaml:"suite"`
	Test     string `json:"test" yaml:"test"`
	Platform string `json:"platform" yaml:"platform"`
	Name     string `json:"name" yaml:"name"`
	Disabled bool   `json:"disabled" yaml:"disabled"`
	// Rule is the manifest key that applied, empty when none did.
	Rule string `json:"rule,omitempty" yaml:"rule,omitempty"`
	// Pattern is the platform pattern that matched.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	// Line is where Rule is first declared, when known.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// NormalizeTestName strips a trailing "/<digits>" shard suffix.
func NormalizeTestName(name string) string {
	slash := strings.LastIndexByte(name, '/')
	if slash < 0 || slash == len(name)-1 {
		return name
	}
	for _, c := range name[slash+1:] {
		if c < '0' || c > '9' {
			return name
		}
	}
	return name[:slash]
}

// QualifiedKey returns the manifest key naming a single test.
func QualifiedKey(suite, test string) string {
	return suite + "." + test
}

// Evaluate applies the manifest to one test. The qualified key wins over the
// suite-wide key; within the chosen rule the first fully matching pattern
// disables the test.
func Evaluate(suite, test, platform string, m manifest.Manifest, mt matcher.Matcher) (Decision, error) {
	test = NormalizeTestName(test)
	d := Decision{
		Suite:    suite,
		Test:     test,
		Platform: platform,
		Name:     test,
	}

	rule := QualifiedKey(suite, test)
	patterns, ok := m[rule]
	if !ok {
		rule = suite
		patterns, ok = m[rule]
		if !ok {
			return d, nil
		}
	}
	d.Rule = rule

	for _, p := range patterns {
		matched, err := mt.FullMatch(platform, p)
		if err != nil {
			return Decision{}, fmt.Errorf("rule %s: %w", rule, err)
		}
		if matched {
			d.Disabled = true
			d.Pattern = p
			d.Name = DisabledPrefix + test
			return d, nil
		}
	}
	return d, nil
}

// Decide returns test, with its shard suffix removed, prefixed with
// DisabledPrefix when the manifest disables it on platform.
func Decide(suite, test, platform string, m manifest.Manifest, mt matcher.Matcher) (string, error) {
	d, err := Evaluate(suite, test, platform, m, mt)
	if err != nil {
		return "", err
	}
	return d.Name, nil
}
