package platform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// ErrUnknownCodePage indicates a code page number or name with no decoder.
var ErrUnknownCodePage = errors.New("platform: unknown code page")

// DefaultCodePage is used when the host has no notion of an active code page.
const DefaultCodePage = 1252

var codePages = map[uint32]encoding.Encoding{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
	20866: charmap.KOI8R,
	21866: charmap.KOI8U,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28595: charmap.ISO8859_5,
	28605: charmap.ISO8859_15,
	54936: simplifiedchinese.GB18030,
}

// CodePage returns the decoder for a Windows code page identifier.
func CodePage(cp uint32) (encoding.Encoding, error) {
	enc, ok := codePages[cp]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodePage, cp)
	}
	return enc, nil
}

// Lookup resolves a code page given either as a Windows number ("932",
// "cp1252") or as an IANA name ("shift_jis", "windows-1251").
func Lookup(name string) (encoding.Encoding, error) {
	n := strings.TrimSpace(strings.ToLower(name))
	if n == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownCodePage)
	}
	if num, err := strconv.ParseUint(strings.TrimPrefix(n, "cp"), 10, 32); err == nil {
		return CodePage(uint32(num))
	}
	enc, err := ianaindex.IANA.Encoding(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodePage, name)
	}
	// ianaindex knows some names it has no implementation for.
	if enc == nil {
		return nil, fmt.Errorf("%w: %s (unsupported)", ErrUnknownCodePage, name)
	}
	return enc, nil
}
