package manifest

import "sort"

// Manifest maps a test identifier ("Suite.Test" or "Suite") to the platform
// patterns that disable it, in file order.
type Manifest map[string][]string

// Entry is one manifest key together with where it was first declared.
type Entry struct {
	Key      string   `yaml:"key" json:"key"`
	Patterns []string `yaml:"patterns" json:"patterns"`
	Line     int      `yaml:"line" json:"line"`
	// Redeclared lists later lines that added patterns to the same key.
	Redeclared []int `yaml:"redeclared,omitempty" json:"redeclared,omitempty"`
}

// Document is a parsed manifest that keeps declaration order and positions.
type Document struct {
	Path    string  `yaml:"path,omitempty" json:"path,omitempty"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Manifest flattens the document into a lookup map.
func (d *Document) Manifest() Manifest {
	m := make(Manifest, len(d.Entries))
	for _, e := range d.Entries {
		m[e.Key] = e.Patterns
	}
	return m
}

// Lookup returns the entry declared for key.
func (d *Document) Lookup(key string) (Entry, bool) {
	for _, e := range d.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Keys returns the manifest keys in sorted order.
func (m Manifest) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
