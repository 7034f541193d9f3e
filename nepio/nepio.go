// Package nepio reads and writes nepeta documents through an afero
// filesystem, so callers can target the OS, an in-memory filesystem in
// tests, or anything else afero wraps.
package nepio

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/sepia-mori/nepeta"
)

// Load reads and parses the document at path. The file is parsed in view
// mode over the freshly read buffer, so no per-value allocations happen.
// Parse errors are reported through onError (which may be nil); a
// best-effort document is returned even when errors occur. The returned
// error covers I/O only.
func Load(fsys afero.Fs, path string, onError nepeta.ErrorHandler, opts ...nepeta.Option) (*nepeta.Node, error) {
	source, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return nepeta.ParseView(source, onError, opts...), nil
}

// LoadInto is Load appending to an existing document.
func LoadInto(fsys afero.Fs, doc *nepeta.Node, path string, onError nepeta.ErrorHandler, opts ...nepeta.Option) error {
	source, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	nepeta.ParseViewInto(doc, source, onError, opts...)
	return nil
}

// Save writes doc to path.
func Save(fsys afero.Fs, path string, doc *nepeta.Node, opts nepeta.WriterOptions) error {
	if err := afero.WriteFile(fsys, path, nepeta.Encode(doc, opts), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
