package manifest

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const commentMarker = "//"

// asciiSpace is the set stripped from the end of every line.
const asciiSpace = " \t\n\v\f\r"

// Parse reads a manifest from r.
func Parse(r io.Reader) (Manifest, error) {
	doc, err := ParseDocument(r, "")
	if err != nil {
		return nil, err
	}
	return doc.Manifest(), nil
}

// ParseBytes parses manifest contents held in memory.
func ParseBytes(data []byte) (Manifest, error) {
	return Parse(bytes.NewReader(data))
}

// ParseDocument reads a manifest from r, keeping entry order and line
// numbers. path is only used in error messages.
func ParseDocument(r io.Reader, path string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	doc := &Document{Path: path}
	index := make(map[string]int)

	for i, raw := range strings.Split(string(data), "\n") {
		line := raw
		if pos := strings.Index(line, commentMarker); pos >= 0 {
			line = line[:pos]
		}
		line = strings.TrimRight(line, asciiSpace)
		if line == "" {
			continue
		}

		// A leading space yields an empty key. It is kept, and can only be
		// reached by an empty suite name.
		pieces := strings.Split(line, " ")
		if len(pieces) == 0 {
			return nil, &LineError{Path: path, Line: i + 1, Text: raw, Err: ErrMalformedLine}
		}

		key := pieces[0]
		pos, ok := index[key]
		if !ok {
			pos = len(doc.Entries)
			index[key] = pos
			doc.Entries = append(doc.Entries, Entry{Key: key, Patterns: []string{}, Line: i + 1})
		} else {
			doc.Entries[pos].Redeclared = append(doc.Entries[pos].Redeclared, i+1)
		}
		doc.Entries[pos].Patterns = append(doc.Entries[pos].Patterns, pieces[1:]...)
	}

	return doc, nil
}
