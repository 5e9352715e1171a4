package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
)

// LegacyDecoder converts 8-bit code page text to UTF-8.
type LegacyDecoder interface {
	DecodeLegacy(b []byte) (string, error)
}

// offsetString resolves a string field that may be stored at an ANSI
// offset, a unicode offset, or both. A non-zero unicode offset always wins;
// zero offsets mean absent.
func offsetString(c *buf.Cursor, ansiOff, unicodeOff uint32, legacy LegacyDecoder) (string, error) {
	if unicodeOff != 0 {
		return c.CStringUTF16(int(unicodeOff))
	}
	if ansiOff == 0 {
		return "", nil
	}
	raw, err := c.CStringANSI(int(ansiOff))
	if err != nil {
		return "", err
	}
	if buf.IsASCII(raw) {
		return string(raw), nil
	}
	s, err := legacy.DecodeLegacy(raw)
	if err != nil {
		return "", fmt.Errorf("ansi string at 0x%x: %w", ansiOff, err)
	}
	return s, nil
}
