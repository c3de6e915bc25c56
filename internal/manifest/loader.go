package manifest

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/quantmind-br/testmanifest/internal/utils"
)

// Loader reads manifest files from disk.
type Loader struct {
	logger *utils.Logger
}

// NewLoader creates a new manifest loader. A nil logger discards output.
func NewLoader(logger *utils.Logger) *Loader {
	return &Loader{logger: logger.OrNop().WithComponent("manifest")}
}

// Load reads the manifest at path. An empty path yields an empty manifest.
// A file that cannot be opened also yields an empty manifest; the failure is
// only logged.
func (l *Loader) Load(path string) (Manifest, error) {
	doc, err := l.load(path, false)
	if err != nil {
		return nil, err
	}
	return doc.Manifest(), nil
}

// LoadStrict is like Load but reports a missing or unreadable file.
func (l *Loader) LoadStrict(path string) (Manifest, error) {
	doc, err := l.load(path, true)
	if err != nil {
		return nil, err
	}
	return doc.Manifest(), nil
}

// LoadDocument reads the manifest at path keeping entry order and line
// numbers. strict selects whether an unopenable file is an error.
func (l *Loader) LoadDocument(path string, strict bool) (*Document, error) {
	return l.load(path, strict)
}

func (l *Loader) load(path string, strict bool) (*Document, error) {
	if path == "" {
		l.logger.Debug().Msg("No manifest configured")
		return &Document{}, nil
	}

	rc, err := openFile(path)
	if err != nil {
		if strict {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}
			return nil, fmt.Errorf("failed to open manifest file: %w", err)
		}
		l.logger.Warn().Err(err).Str("path", path).Msg("Cannot open manifest, treating as empty")
		return &Document{Path: path}, nil
	}
	defer rc.Close()

	doc, err := ParseDocument(rc, path)
	if err != nil {
		return nil, err
	}

	l.logger.Debug().Str("path", path).Int("entries", len(doc.Entries)).Msg("Manifest loaded")
	return doc, nil
}

// Load reads the manifest at path with a silent loader.
func Load(path string) (Manifest, error) {
	return NewLoader(nil).Load(path)
}
