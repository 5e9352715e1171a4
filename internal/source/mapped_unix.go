//go:build unix

package source

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type mappedSource struct {
	*bufferSource
	data []byte
}

// Map maps the file at path read-only and returns it as a Source. Close
// releases the mapping.
func Map(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // the mapping keeps the pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return Bytes(path, nil), nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("source: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
	}
	return &mappedSource{bufferSource: Bytes(path, data).(*bufferSource), data: data}, nil
}

func (s *mappedSource) Close() error {
	if s.data == nil {
		return nil
	}
	err := unix.Munmap(s.data)
	s.data = nil
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}
