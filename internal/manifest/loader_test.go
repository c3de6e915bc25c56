package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/testmanifest/internal/utils"
)

const sampleManifest = `// Disabled tests
SuiteA.TestX platformA platformB
SuiteA .*  // whole suite
SuiteB.TestY platformA // explanation
`

func writeManifest(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestNewLoader(t *testing.T) {
	assert.NotNil(t, NewLoader(nil))
	assert.NotNil(t, NewLoader(utils.NewDefaultLogger()))
}

func TestLoader_Load_EmptyPath(t *testing.T) {
	m, err := NewLoader(nil).Load("")

	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestLoader_Load_MissingFileIsEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := utils.NewLogger(utils.LoggerOptions{Level: "warn", Format: "json", Output: &buf})

	m, err := NewLoader(logger).Load("/nonexistent/path/disabled_manifest.txt")

	require.NoError(t, err)
	assert.Empty(t, m)
	assert.Contains(t, buf.String(), "Cannot open manifest")
}

func TestLoader_LoadStrict_MissingFile(t *testing.T) {
	m, err := NewLoader(nil).LoadStrict("/nonexistent/path/disabled_manifest.txt")

	require.Error(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoader_LoadStrict_EmptyPath(t *testing.T) {
	m, err := NewLoader(nil).LoadStrict("")

	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestLoader_Load_PlainFile(t *testing.T) {
	path := writeManifest(t, "disabled_manifest.txt", []byte(sampleManifest))

	m, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, Manifest{
		"SuiteA.TestX": {"platformA", "platformB"},
		"SuiteA":       {".*"},
		"SuiteB.TestY": {"platformA"},
	}, m)
}

func TestLoader_Load_Compressed(t *testing.T) {
	want, err := ParseBytes([]byte(sampleManifest))
	require.NoError(t, err)

	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(sampleManifest))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		path := writeManifest(t, "disabled_manifest.txt.gz", buf.Bytes())
		got, err := NewLoader(nil).LoadStrict(path)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("zstd", func(t *testing.T) {
		enc, err := zstd.NewWriter(nil)
		require.NoError(t, err)
		data := enc.EncodeAll([]byte(sampleManifest), nil)
		require.NoError(t, enc.Close())

		path := writeManifest(t, "disabled_manifest.txt.zst", data)
		got, err := NewLoader(nil).LoadStrict(path)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestLoader_Load_IndentedLineIsKept(t *testing.T) {
	path := writeManifest(t, "indented.txt", []byte("SuiteA cpu\n  gpu\n"))

	m, err := NewLoader(nil).Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"cpu"}, m["SuiteA"])
	assert.Equal(t, []string{"", "gpu"}, m[""])
}

func TestLoader_LoadDocument(t *testing.T) {
	path := writeManifest(t, "disabled_manifest.txt", []byte(sampleManifest))

	doc, err := NewLoader(nil).LoadDocument(path, true)

	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	require.Len(t, doc.Entries, 3)
	assert.Equal(t, "SuiteA.TestX", doc.Entries[0].Key)
	assert.Equal(t, 2, doc.Entries[0].Line)
}

func TestLoader_Load_IsRepeatable(t *testing.T) {
	path := writeManifest(t, "disabled_manifest.txt", []byte(sampleManifest))
	loader := NewLoader(nil)

	first, err := loader.Load(path)
	require.NoError(t, err)
	second, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
