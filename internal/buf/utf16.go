package buf

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

const asciiThreshold = 0x80

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16 converts UTF-16LE bytes to a UTF-8 string. Unpaired surrogates
// become U+FFFD; a trailing odd byte is dropped.
func DecodeUTF16(data []byte) string {
	if len(data)%utf16Width != 0 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return ""
	}

	// Fast path: shell link strings are overwhelmingly ASCII, which in
	// UTF-16LE is [byte, 0x00].
	allASCII := true
	for i := 0; i < len(data); i += utf16Width {
		if data[i+1] != 0 || data[i] >= asciiThreshold {
			allASCII = false
			break
		}
	}
	if allASCII {
		var b strings.Builder
		b.Grow(len(data) / utf16Width)
		for i := 0; i < len(data); i += utf16Width {
			b.WriteByte(data[i])
		}
		return b.String()
	}

	// The decoder substitutes U+FFFD for invalid sequences rather than failing.
	out, _ := utf16LE.NewDecoder().Bytes(data)
	return string(out)
}

// IsASCII reports whether every byte of b is below 0x80.
func IsASCII(b []byte) bool {
	for _, c := range b {
		if c >= asciiThreshold {
			return false
		}
	}
	return true
}
