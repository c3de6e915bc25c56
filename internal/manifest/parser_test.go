package manifest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Manifest
	}{
		{
			name:    "empty input",
			content: "",
			want:    Manifest{},
		},
		{
			name:    "qualified key with platforms",
			content: "SuiteA.TestX platformA platformB\n",
			want:    Manifest{"SuiteA.TestX": {"platformA", "platformB"}},
		},
		{
			name:    "suite-wide key",
			content: "SuiteA .*",
			want:    Manifest{"SuiteA": {".*"}},
		},
		{
			name:    "key without patterns",
			content: "SuiteA.TestX",
			want:    Manifest{"SuiteA.TestX": {}},
		},
		{
			name:    "trailing comment",
			content: "SuiteB.TestY platformA // explanation",
			want:    Manifest{"SuiteB.TestY": {"platformA"}},
		},
		{
			name:    "comment glued to pattern",
			content: "SuiteB.TestY platformA// explanation",
			want:    Manifest{"SuiteB.TestY": {"platformA"}},
		},
		{
			name: "comment lines and blank lines are skipped",
			content: `// header comment

SuiteA.TestX cpu
   
// trailing comment
`,
			want: Manifest{"SuiteA.TestX": {"cpu"}},
		},
		{
			name:    "trailing whitespace and CRLF",
			content: "SuiteA.TestX cpu \t\r\nSuiteB gpu\r\n",
			want: Manifest{
				"SuiteA.TestX": {"cpu"},
				"SuiteB":       {"gpu"},
			},
		},
		{
			name:    "duplicate keys accumulate in file order",
			content: "SuiteA.TestX cpu\nSuiteB gpu\nSuiteA.TestX tpu interpreter\n",
			want: Manifest{
				"SuiteA.TestX": {"cpu", "tpu", "interpreter"},
				"SuiteB":       {"gpu"},
			},
		},
		{
			name:    "double space yields an empty pattern",
			content: "SuiteA.TestX  cpu",
			want:    Manifest{"SuiteA.TestX": {"", "cpu"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.content))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_CommentStrippingIsTransparent(t *testing.T) {
	withComment, err := ParseBytes([]byte("SuiteB.TestY platformA // explanation"))
	require.NoError(t, err)
	without, err := ParseBytes([]byte("SuiteB.TestY platformA"))
	require.NoError(t, err)

	assert.Equal(t, without, withComment)
}

func TestParse_LeadingSpaceGivesEmptyKey(t *testing.T) {
	got, err := ParseBytes([]byte("SuiteA.TestX cpu\n indented gpu\n"))
	require.NoError(t, err)

	want := Manifest{
		"SuiteA.TestX": {"cpu"},
		"":             {"indented", "gpu"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestLineError(t *testing.T) {
	err := &LineError{Line: 2, Text: "x", Err: ErrMalformedLine}
	assert.ErrorIs(t, err, ErrMalformedLine)
	assert.Equal(t, `line 2: malformed manifest line: "x"`, err.Error())

	err.Path = "m.txt"
	assert.Equal(t, `m.txt:2: malformed manifest line: "x"`, err.Error())
}

func TestParseDocument_KeepsOrderAndLines(t *testing.T) {
	content := "// comment\nSuiteB gpu\n\nSuiteA.TestX cpu\nSuiteB tpu\n"

	doc, err := ParseDocument(strings.NewReader(content), "disabled_manifest.txt")
	require.NoError(t, err)

	want := []Entry{
		{Key: "SuiteB", Patterns: []string{"gpu", "tpu"}, Line: 2, Redeclared: []int{5}},
		{Key: "SuiteA.TestX", Patterns: []string{"cpu"}, Line: 4},
	}
	if diff := cmp.Diff(want, doc.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "disabled_manifest.txt", doc.Path)
}

func TestParseDocument_ErrorCarriesPath(t *testing.T) {
	_, err := ParseDocument(strings.NewReader(" x"), "m.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "m.txt:1")
}
