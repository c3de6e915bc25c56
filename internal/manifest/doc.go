// Package manifest loads disabled-test manifests. A manifest maps a test
// identifier to the platforms on which that test is disabled.
//
// # Manifest Format
//
// One entry per line. The first space-separated token is the test identifier,
// the remaining tokens are regular expressions matched against the platform
// name:
//
//	// Disable one test on two platforms.
//	DotTest.Square cuda rocm
//	// Disable a whole suite on every interpreter build.
//	ConvTest interpreter.*
//	ReduceTest.Huge cpu  // too slow on CI
//
// A key of the form "Suite.Test" names one test; a bare "Suite" names every
// test in that suite. Everything after "//" is a comment, trailing whitespace
// is ignored and blank lines are skipped. A key that appears on several lines
// accumulates the patterns of all of them. A line that starts with a space
// has an empty key; it is accepted but never matches a named suite.
//
// Paths ending in .gz or .zst are decompressed transparently.
//
// # Usage
//
//	loader := manifest.NewLoader(logger)
//	m, err := loader.Load(os.Getenv("XLA_DISABLED_MANIFEST"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	patterns := m["DotTest.Square"]
//
// # Error Handling
//
// Load treats an empty path or an unreadable file as an empty manifest. Use
// LoadStrict when a missing file should be reported instead. Sentinel errors:
//   - ErrMalformedLine: a non-empty line yields no tokens (wrapped in *LineError)
//   - ErrFileNotFound: the manifest file does not exist (strict mode only)
package manifest
