package svg

import "path/filepath"

// fileSource identifies on-disk template documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// bytesSource carries an in-memory template, typically an embedded default.
type bytesSource struct {
	name string
	data []byte
}

func (s bytesSource) Location() string {
	return s.name
}

func (s bytesSource) Kind() SourceKind {
	return SourceKindBytes
}

// Data returns the raw payload carried by a bytes source.
func (s bytesSource) Data() []byte {
	return s.data
}

// SourceFromBytes wraps an in-memory payload with a display name.
func SourceFromBytes(name string, data []byte) Source {
	return bytesSource{name: name, data: data}
}

// BytesPayload extracts the payload from a bytes source, reporting whether
// the source carries one.
func BytesPayload(src Source) ([]byte, bool) {
	bs, ok := src.(bytesSource)
	if !ok {
		return nil, false
	}
	return bs.Data(), true
}
