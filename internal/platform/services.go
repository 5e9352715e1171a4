// Package platform isolates the host-specific pieces of shell link handling:
// splitting the stored argument string, converting legacy 8-bit strings
// through a code page, and expanding environment references in icon paths.
//
// Windows gets the native implementations from golang.org/x/sys/windows.
// Other hosts get identity behavior for splitting and expansion; legacy
// decoding works everywhere through golang.org/x/text.
package platform

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/lnkkit/internal/buf"
)

// Services is the capability the decoder and the ShellLink accessors depend on.
type Services interface {
	// SplitCommandLine tokenizes a stored argument string.
	SplitCommandLine(cmdline string) ([]string, error)
	// DecodeLegacy converts 8-bit code page text to UTF-8.
	DecodeLegacy(b []byte) (string, error)
	// ExpandEnv expands environment references such as %SystemRoot%.
	ExpandEnv(s string) string
}

type services struct {
	enc encoding.Encoding
}

// New returns the host services decoding legacy strings with enc. A nil enc
// selects the host's active code page (Windows) or Windows-1252 elsewhere.
func New(enc encoding.Encoding) Services {
	if enc == nil {
		enc = hostEncoding()
	}
	return &services{enc: enc}
}

// Native returns the host services with the host's default code page.
func Native() Services { return New(nil) }

func (s *services) DecodeLegacy(b []byte) (string, error) {
	if buf.IsASCII(b) {
		return string(b), nil
	}
	out, err := s.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("platform: decode legacy string: %w", err)
	}
	return string(out), nil
}

func (s *services) SplitCommandLine(cmdline string) ([]string, error) {
	return splitCommandLine(cmdline)
}

func (s *services) ExpandEnv(v string) string {
	return expandEnv(v)
}
