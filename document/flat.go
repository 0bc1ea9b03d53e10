package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FlatLoader builds documents from plain text files. It is the generic
// document-construction path: content is the file's bytes verbatim, metadata
// is derived from the file name.
type FlatLoader struct{}

// NewFlatLoader creates a FlatLoader.
func NewFlatLoader() *FlatLoader {
	return &FlatLoader{}
}

// Load reads the file at path and returns one Document whose text equals the
// file content.
func (l *FlatLoader) Load(path string, extra map[string]string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	metadata := map[string]string{
		"filename":  filepath.Base(path),
		"extension": strings.ToLower(filepath.Ext(path)),
	}
	for k, v := range extra {
		metadata[k] = v
	}

	return New(string(data), metadata), nil
}
