package textatlas

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader resolves a font name to raw font bytes. Sessions call Load once
// per Open and keep the bytes for the session's lifetime.
type Loader interface {
	Load(name string) ([]byte, error)
}

// FileLoader loads fonts from the filesystem. Names are joined to Root;
// an empty Root resolves names relative to the working directory.
type FileLoader struct {
	Root string
}

// Load reads the font file at Root/name.
func (l FileLoader) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.Root, name))
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	return data, nil
}

// MapLoader serves fonts from memory, keyed by name. Useful for embedded
// fonts and for tests.
type MapLoader map[string][]byte

// Load returns the bytes registered under name, or ErrFontNotFound.
func (l MapLoader) Load(name string) ([]byte, error) {
	data, ok := l[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return data, nil
}
