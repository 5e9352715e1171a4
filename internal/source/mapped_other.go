//go:build !unix

package source

import "os"

// Map reads the entire file when mmap is not available.
func Map(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Bytes(path, data), nil
}
