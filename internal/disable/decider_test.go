package disable

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/testmanifest/internal/manifest"
	"github.com/quantmind-br/testmanifest/internal/matcher"
	"github.com/quantmind-br/testmanifest/internal/utils"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disabled_manifest.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDecider_Decide(t *testing.T) {
	path := writeManifest(t, "SuiteA.TestX platformA platformB\nSuiteB .* // everything\n")

	tests := []struct {
		platform string
		suite    string
		test     string
		want     string
	}{
		{"platformA", "SuiteA", "TestX", "DISABLED_TestX"},
		{"platformC", "SuiteA", "TestX", "TestX"},
		{"platformC", "SuiteB", "TestQ/9", "DISABLED_TestQ"},
	}

	for _, tt := range tests {
		t.Run(tt.platform+"/"+tt.suite+"."+tt.test, func(t *testing.T) {
			d := NewDecider(Options{ManifestPath: path, Platform: tt.platform})
			got, err := d.Decide(tt.suite, tt.test)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecider_NoManifest(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.txt")} {
		d := NewDecider(Options{ManifestPath: path, Platform: "cpu"})

		got, err := d.Decide("SuiteA", "TestX")
		require.NoError(t, err)
		assert.Equal(t, "TestX", got)
	}
}

func TestDecider_StrictMissingManifest(t *testing.T) {
	d := NewDecider(Options{
		ManifestPath: filepath.Join(t.TempDir(), "missing.txt"),
		Strict:       true,
		Platform:     "cpu",
	})

	_, err := d.Decide("SuiteA", "TestX")

	assert.ErrorIs(t, err, manifest.ErrFileNotFound)
}

func TestDecider_RereadsManifest(t *testing.T) {
	path := writeManifest(t, "SuiteA.TestX cpu\n")
	d := NewDecider(Options{ManifestPath: path, Platform: "cpu"})

	got, err := d.Decide("SuiteA", "TestX")
	require.NoError(t, err)
	assert.Equal(t, "DISABLED_TestX", got)

	require.NoError(t, os.WriteFile(path, []byte("SuiteA.TestX gpu\n"), 0644))

	got, err = d.Decide("SuiteA", "TestX")
	require.NoError(t, err)
	assert.Equal(t, "TestX", got)
}

func TestDecider_Idempotent(t *testing.T) {
	path := writeManifest(t, "SuiteA cpu\n")
	d := NewDecider(Options{ManifestPath: path, Platform: "cpu"})

	first, err := d.Decide("SuiteA", "TestX/2")
	require.NoError(t, err)
	second, err := d.Decide("SuiteA", "TestX/2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecider_IndentedLineDoesNotAbort(t *testing.T) {
	path := writeManifest(t, "SuiteA.TestX cpu\n SuiteA cpu\n")
	d := NewDecider(Options{ManifestPath: path, Platform: "cpu"})

	got, err := d.Decide("SuiteA", "TestX")
	require.NoError(t, err)
	assert.Equal(t, "DISABLED_TestX", got)

	got, err = d.Decide("SuiteA", "TestY")
	require.NoError(t, err)
	assert.Equal(t, "TestY", got)
}

func TestDecider_MustDecidePanicsOnError(t *testing.T) {
	path := writeManifest(t, "SuiteA cpu(\n")
	d := NewDecider(Options{ManifestPath: path, Platform: "cpu"})

	assert.Panics(t, func() { d.MustDecide("SuiteA", "TestX") })
}

func TestDecider_InvalidPattern(t *testing.T) {
	path := writeManifest(t, "SuiteA cpu[\n")
	d := NewDecider(Options{ManifestPath: path, Platform: "cpu"})

	_, err := d.Decide("SuiteA", "TestX")

	assert.ErrorIs(t, err, matcher.ErrInvalidPattern)
}

func TestDecider_Explain(t *testing.T) {
	path := writeManifest(t, "SuiteA.TestX cpu\n")
	var buf bytes.Buffer
	logger := utils.NewLogger(utils.LoggerOptions{Level: "debug", Format: "json", Output: &buf})

	d := NewDecider(Options{
		ManifestPath: path,
		Platform:     "cpu",
		Matcher:      matcher.NewRegexp2(0),
		Logger:       logger,
	})

	dec, err := d.Explain("SuiteA", "TestX")

	require.NoError(t, err)
	assert.True(t, dec.Disabled)
	assert.Equal(t, "SuiteA.TestX", dec.Rule)
	assert.Equal(t, "cpu", dec.Pattern)
	assert.Equal(t, "cpu", d.Platform())
	assert.Contains(t, buf.String(), "Test disabled")
	assert.Contains(t, buf.String(), `"rule":"SuiteA.TestX"`)
}

func TestDecider_MustDecide(t *testing.T) {
	path := writeManifest(t, "SuiteA .*\n")
	d := NewDecider(Options{ManifestPath: path, Platform: "interpreter"})

	assert.Equal(t, "DISABLED_Foo", d.MustDecide("SuiteA", "Foo/3"))
}
