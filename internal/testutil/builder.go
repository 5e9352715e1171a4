// Package testutil assembles synthetic shell link byte streams for tests.
// Every structure the decoders understand can be built with valid defaults
// and then bent into the malformed shapes the tests need.
package testutil

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Link describes a whole .lnk file. Sections are emitted iff the matching
// bit is set in Flags, so a test can set content and clear the bit (or the
// reverse) independently.
type Link struct {
	HeaderSize     uint32   // 0 means format.HeaderSize
	CLSID          [16]byte // zero means format.LinkCLSID
	Flags          types.LinkFlags
	FileAttributes types.FileAttributes
	CreationTime   uint64
	AccessTime     uint64
	WriteTime      uint64
	FileSize       uint32
	IconIndex      int32
	ShowCommand    uint32
	HotKey         uint16

	IDList   [][]byte // item payloads, without size prefixes
	LinkInfo []byte   // a complete LinkInfo structure, see LinkInfo.Bytes

	Name         string
	RelativePath string
	WorkingDir   string
	Arguments    string
	IconLocation string

	Trailer []byte // appended verbatim after the string data
}

// Bytes serializes the link.
func (l Link) Bytes() []byte {
	out := l.header()
	if l.Flags.Has(types.HasLinkTargetIDList) {
		out = append(out, IDList(l.IDList...)...)
	}
	if l.Flags.Has(types.HasLinkInfo) {
		out = append(out, l.LinkInfo...)
	}
	for _, s := range []struct {
		flag types.LinkFlags
		v    string
	}{
		{types.HasName, l.Name},
		{types.HasRelativePath, l.RelativePath},
		{types.HasWorkingDir, l.WorkingDir},
		{types.HasArguments, l.Arguments},
		{types.HasIconLocation, l.IconLocation},
	} {
		if l.Flags.Has(s.flag) {
			out = append(out, CountedUTF16(s.v)...)
		}
	}
	return append(out, l.Trailer...)
}

func (l Link) header() []byte {
	b := make([]byte, format.HeaderSize)
	size := l.HeaderSize
	if size == 0 {
		size = format.HeaderSize
	}
	clsid := l.CLSID
	if clsid == ([16]byte{}) {
		clsid = format.LinkCLSID.ToWindowsArray()
	}
	le := binary.LittleEndian
	le.PutUint32(b[0x00:], size)
	copy(b[format.HeaderCLSIDOffset:], clsid[:])
	le.PutUint32(b[format.HeaderFlagsOffset:], uint32(l.Flags))
	le.PutUint32(b[0x18:], uint32(l.FileAttributes))
	le.PutUint64(b[format.HeaderCreationOffset:], l.CreationTime)
	le.PutUint64(b[0x24:], l.AccessTime)
	le.PutUint64(b[0x2C:], l.WriteTime)
	le.PutUint32(b[format.HeaderFileSizeOffset:], l.FileSize)
	le.PutUint32(b[format.HeaderIconIndexOffset:], uint32(l.IconIndex))
	le.PutUint32(b[format.HeaderShowCmdOffset:], l.ShowCommand)
	le.PutUint16(b[format.HeaderHotKeyOffset:], l.HotKey)
	return b
}

// IDList serializes a LinkTargetIDList: the 16-bit list size, each item with
// its size prefix, and the zero terminator.
func IDList(items ...[]byte) []byte {
	var body []byte
	for _, it := range items {
		body = binary.LittleEndian.AppendUint16(body, uint16(len(it)+format.ItemIDSizeLen))
		body = append(body, it...)
	}
	body = append(body, 0, 0)
	return append(binary.LittleEndian.AppendUint16(nil, uint16(len(body))), body...)
}

// LinkInfo describes a LinkInfo structure. Strings are written only when
// non-empty; ANSI strings are written byte for byte.
type LinkInfo struct {
	HeaderSize uint32 // 0 picks 0x24 when a unicode string is set, else 0x1C
	Flags      types.LinkInfoFlags

	Volume      []byte // a complete VolumeID record, see Volume.Bytes
	NetworkLink []byte // a complete CommonNetworkRelativeLink, see NetworkLink.Bytes

	LocalBasePath           string
	LocalBasePathUnicode    string
	CommonPathSuffix        string
	CommonPathSuffixUnicode string
}

// Bytes serializes the structure with every offset computed.
func (li LinkInfo) Bytes() []byte {
	hs := li.HeaderSize
	if hs == 0 {
		hs = format.LinkInfoHeaderSizeDefault
		if li.LocalBasePathUnicode != "" || li.CommonPathSuffixUnicode != "" {
			hs = format.LinkInfoHeaderSizeExtendedMin
		}
	}
	fixedLen := max(int(hs), format.LinkInfoHeaderSizeDefault)
	out := make([]byte, fixedLen)

	place := func(data []byte) uint32 {
		if len(data) == 0 {
			return 0
		}
		off := uint32(len(out))
		out = append(out, data...)
		return off
	}
	volOff := place(li.Volume)
	lbpOff := place(ansiZ(li.LocalBasePath))
	netOff := place(li.NetworkLink)
	cpsOff := place(ansiZ(li.CommonPathSuffix))
	lbpUOff := place(utf16Z(li.LocalBasePathUnicode))
	cpsUOff := place(utf16Z(li.CommonPathSuffixUnicode))

	le := binary.LittleEndian
	le.PutUint32(out[0x00:], uint32(len(out)))
	le.PutUint32(out[0x04:], hs)
	le.PutUint32(out[0x08:], uint32(li.Flags))
	le.PutUint32(out[0x0C:], volOff)
	le.PutUint32(out[0x10:], lbpOff)
	le.PutUint32(out[0x14:], netOff)
	le.PutUint32(out[0x18:], cpsOff)
	if fixedLen >= format.LinkInfoHeaderSizeExtendedMin {
		le.PutUint32(out[0x1C:], lbpUOff)
		le.PutUint32(out[0x20:], cpsUOff)
	}
	return out
}

// Volume describes a VolumeID record.
type Volume struct {
	Size         uint32 // 0 means the computed length
	DriveType    types.DriveType
	SerialNumber uint32
	Label        string // ANSI, used when LabelUnicode is empty
	LabelUnicode string
}

// Bytes serializes the record. A unicode label uses the 0x14 sentinel.
func (v Volume) Bytes() []byte {
	var out []byte
	le := binary.LittleEndian
	if v.LabelUnicode != "" {
		out = make([]byte, 0x14)
		le.PutUint32(out[0x0C:], format.VolumeLabelUnicodeSentinel)
		le.PutUint32(out[0x10:], 0x14)
		out = append(out, utf16Z(v.LabelUnicode)...)
	} else {
		out = make([]byte, 0x10)
		le.PutUint32(out[0x0C:], 0x10)
		out = append(out, v.Label...)
		out = append(out, 0)
	}
	le.PutUint32(out[0x04:], uint32(v.DriveType))
	le.PutUint32(out[0x08:], v.SerialNumber)
	size := v.Size
	if size == 0 {
		size = uint32(len(out))
	}
	le.PutUint32(out[0x00:], size)
	return out
}

// NetworkLink describes a CommonNetworkRelativeLink record.
type NetworkLink struct {
	Size         uint32 // 0 means the computed length
	Flags        types.NetworkLinkFlags
	ProviderType uint32

	NetName           string // ANSI, always written
	DeviceName        string // ANSI, written when non-empty
	NetNameUnicode    string // switches to the 0x1C header with unicode offsets
	DeviceNameUnicode string
}

// Bytes serializes the record.
func (n NetworkLink) Bytes() []byte {
	unicode := n.NetNameUnicode != "" || n.DeviceNameUnicode != ""
	hdrLen := format.NetworkLinkMinSize
	if unicode {
		hdrLen = 0x1C
	}
	out := make([]byte, hdrLen)
	place := func(data []byte) uint32 {
		if len(data) == 0 {
			return 0
		}
		off := uint32(len(out))
		out = append(out, data...)
		return off
	}
	netOff := place(ansiZ(n.NetName))
	if n.NetName == "" {
		netOff = place([]byte{0})
	}
	devOff := place(ansiZ(n.DeviceName))
	netUOff := place(utf16Z(n.NetNameUnicode))
	devUOff := place(utf16Z(n.DeviceNameUnicode))

	le := binary.LittleEndian
	size := n.Size
	if size == 0 {
		size = uint32(len(out))
	}
	le.PutUint32(out[0x00:], size)
	le.PutUint32(out[0x04:], uint32(n.Flags))
	le.PutUint32(out[0x08:], netOff)
	le.PutUint32(out[0x0C:], devOff)
	le.PutUint32(out[0x10:], n.ProviderType)
	if unicode {
		le.PutUint32(out[0x14:], netUOff)
		le.PutUint32(out[0x18:], devUOff)
	}
	return out
}

// CountedUTF16 encodes s as a StringData field: 16-bit code unit count
// followed by UTF-16LE code units, no terminator.
func CountedUTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := binary.LittleEndian.AppendUint16(nil, uint16(len(units)))
	for _, u := range units {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return out
}

// UTF16 encodes s as UTF-16LE without a terminator.
func UTF16(s string) []byte {
	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return out
}

func utf16Z(s string) []byte {
	if s == "" {
		return nil
	}
	return append(UTF16(s), 0, 0)
}

func ansiZ(s string) []byte {
	if s == "" {
		return nil
	}
	return append([]byte(s), 0)
}
