// Package source provides the byte sources a shell link is decoded from. The
// decoder only sees the Source interface; whether the bytes live in memory,
// behind an open file handle, or in a read-only mapping is decided here.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Source is a random-access, fixed-size byte provider.
type Source interface {
	io.ReaderAt
	io.Closer
	// Size is the number of readable bytes.
	Size() int64
	// Name identifies the source in diagnostics. It may be empty.
	Name() string
}

type bufferSource struct {
	*bytes.Reader
	name string
}

// Bytes wraps an in-memory buffer. name is optional and only used for
// diagnostics.
func Bytes(name string, data []byte) Source {
	return &bufferSource{Reader: bytes.NewReader(data), name: name}
}

func (s *bufferSource) Name() string { return s.name }
func (s *bufferSource) Close() error { return nil }

type fileSource struct {
	f    *os.File
	size int64
}

// Open returns a stream-backed source reading from path on demand. The
// caller must Close it.
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, &os.PathError{Op: "open", Path: path, Err: fmt.Errorf("is a directory")}
	}
	return &fileSource{f: f, size: st.Size()}, nil
}

func (s *fileSource) ReadAt(p []byte, off int64) (int, error) { return s.f.ReadAt(p, off) }
func (s *fileSource) Size() int64                              { return s.size }
func (s *fileSource) Name() string                             { return s.f.Name() }
func (s *fileSource) Close() error                             { return s.f.Close() }
