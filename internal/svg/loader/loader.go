// Package loader implements svg.Loader over files, fs.FS entries, and
// in-memory payloads.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pkgsvg "github.com/goliatone/go-resistags/pkg/svg"
)

// Loader implements pkgsvg.Loader by delegating to file, fs.FS, or bytes
// strategies. Construction helpers live in the top-level resistags package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgsvg.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgsvg.LoaderOptions) pkgsvg.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a template from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src pkgsvg.Source) (pkgsvg.Document, error) {
	if src == nil {
		return pkgsvg.Document{}, errors.New("svg loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgsvg.Document{}, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgsvg.SourceKindFile:
		data, err = os.ReadFile(src.Location())
		if err != nil {
			err = fmt.Errorf("svg loader: read %s: %w", src.Location(), err)
		}
	case pkgsvg.SourceKindFS:
		data, err = l.loadFromFS(src.Location())
	case pkgsvg.SourceKindBytes:
		payload, ok := pkgsvg.BytesPayload(src)
		if !ok {
			err = errors.New("svg loader: bytes source carries no payload")
		}
		data = payload
	default:
		err = fmt.Errorf("svg loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgsvg.Document{}, err
	}

	return pkgsvg.NewDocument(src, data)
}

func (l *Loader) loadFromFS(name string) ([]byte, error) {
	if l.fs == nil {
		return nil, errors.New("svg loader: fs source requires a configured filesystem")
	}
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("svg loader: read %s from fs: %w", name, err)
	}
	return data, nil
}
