package disable

import (
	"fmt"

	"github.com/quantmind-br/testmanifest/internal/manifest"
	"github.com/quantmind-br/testmanifest/internal/matcher"
	"github.com/quantmind-br/testmanifest/internal/utils"
)

// Options configures a Decider.
type Options struct {
	// ManifestPath is the manifest to read; empty disables nothing.
	ManifestPath string
	// Strict makes an unreadable manifest an error instead of empty.
	Strict bool
	// Platform is the name matched against manifest patterns.
	Platform string
	// Matcher defaults to RE2.
	Matcher matcher.Matcher
	Logger  *utils.Logger
}

// Decider evaluates tests against a manifest file. The manifest is read
// again on every call so edits take effect without a restart.
type Decider struct {
	path     string
	strict   bool
	platform string
	matcher  matcher.Matcher
	loader   *manifest.Loader
	logger   *utils.Logger
}

// NewDecider creates a Decider from opts.
func NewDecider(opts Options) *Decider {
	logger := opts.Logger.OrNop()
	mt := opts.Matcher
	if mt == nil {
		mt = matcher.NewRE2()
	}
	return &Decider{
		path:     opts.ManifestPath,
		strict:   opts.Strict,
		platform: opts.Platform,
		matcher:  mt,
		loader:   manifest.NewLoader(logger),
		logger:   logger.WithComponent("decider").WithPlatform(opts.Platform),
	}
}

// Platform returns the configured platform name.
func (d *Decider) Platform() string {
	return d.platform
}

// Explain evaluates one test and reports which rule applied.
func (d *Decider) Explain(suite, test string) (Decision, error) {
	load := d.loader.Load
	if d.strict {
		load = d.loader.LoadStrict
	}
	m, err := load(d.path)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to load manifest: %w", err)
	}

	dec, err := Evaluate(suite, test, d.platform, m, d.matcher)
	if err != nil {
		return Decision{}, err
	}

	if dec.Disabled {
		d.logger.Debug().
			Str("test", QualifiedKey(suite, dec.Test)).
			Str("rule", dec.Rule).
			Str("pattern", dec.Pattern).
			Msg("Test disabled")
	}
	return dec, nil
}

// Decide returns the registration name for a test.
func (d *Decider) Decide(suite, test string) (string, error) {
	dec, err := d.Explain(suite, test)
	if err != nil {
		return "", err
	}
	return dec.Name, nil
}

// MustDecide is like Decide but panics on a configuration error. It suits
// test registration code where a broken manifest must stop the run.
func (d *Decider) MustDecide(suite, test string) string {
	name, err := d.Decide(suite, test)
	if err != nil {
		panic(fmt.Sprintf("disable: %s.%s: %v", suite, test, err))
	}
	return name
}
