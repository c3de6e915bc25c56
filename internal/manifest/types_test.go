package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManifest_Keys(t *testing.T) {
	m := Manifest{
		"SuiteB":       {"gpu"},
		"SuiteA.TestX": {"cpu"},
		"SuiteA":       {".*"},
	}

	assert.Equal(t, []string{"SuiteA", "SuiteA.TestX", "SuiteB"}, m.Keys())
	assert.Empty(t, Manifest{}.Keys())
}

func TestDocument_Lookup(t *testing.T) {
	doc := &Document{Entries: []Entry{
		{Key: "SuiteA", Patterns: []string{".*"}, Line: 3},
	}}

	e, ok := doc.Lookup("SuiteA")
	assert.True(t, ok)
	assert.Equal(t, 3, e.Line)

	_, ok = doc.Lookup("SuiteZ")
	assert.False(t, ok)
}

func TestDocument_Manifest(t *testing.T) {
	doc := &Document{Entries: []Entry{
		{Key: "SuiteA", Patterns: []string{".*"}, Line: 1},
		{Key: "SuiteB.T", Patterns: []string{"cpu", "gpu"}, Line: 2},
	}}

	assert.Equal(t, Manifest{
		"SuiteA":   {".*"},
		"SuiteB.T": {"cpu", "gpu"},
	}, doc.Manifest())
}
