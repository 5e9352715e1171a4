package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

func TestDecodeLegacy(t *testing.T) {
	tests := []struct {
		name string
		cp   uint32
		in   []byte
		want string
	}{
		{"ascii fast path", 1252, []byte(`C:\Windows\notepad.exe`), `C:\Windows\notepad.exe`},
		{"windows-1252", 1252, []byte{'c', 0xe9, 'l', 0xe8, 'b', 'r', 'e'}, "célèbre"},
		{"windows-1251", 1251, []byte{0xcf, 0xf0, 0xe8}, "При"},
		{"cp437", 437, []byte{0x82}, "é"},
		{"shift_jis", 932, []byte{0x93, 0xfa, 0x96, 0x7b}, "日本"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := CodePage(tt.cp)
			require.NoError(t, err)
			got, err := New(enc).DecodeLegacy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodePageUnknown(t *testing.T) {
	_, err := CodePage(12345)
	require.ErrorIs(t, err, ErrUnknownCodePage)
}

func TestLookup(t *testing.T) {
	enc, err := Lookup("932")
	require.NoError(t, err)
	assert.Equal(t, japanese.ShiftJIS, enc)

	enc, err = Lookup("CP1252")
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1252, enc)

	enc, err = Lookup("windows-1251")
	require.NoError(t, err)
	got, err := New(enc).DecodeLegacy([]byte{0xcf})
	require.NoError(t, err)
	assert.Equal(t, "П", got)

	_, err = Lookup("")
	require.ErrorIs(t, err, ErrUnknownCodePage)
	_, err = Lookup("no-such-charset")
	require.ErrorIs(t, err, ErrUnknownCodePage)
}

func TestNativeDecodesLatin(t *testing.T) {
	// every supported host default is a superset of ASCII
	got, err := Native().DecodeLegacy([]byte("readme.txt"))
	require.NoError(t, err)
	assert.Equal(t, "readme.txt", got)
}
