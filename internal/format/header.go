package format

import (
	"encoding/binary"
	"fmt"

	"github.com/Microsoft/go-winio/pkg/guid"
	"github.com/go-restruct/restruct"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// headerRecord is the on-disk ShellLinkHeader in file order.
type headerRecord struct {
	HeaderSize     uint32
	LinkCLSID      [16]byte
	LinkFlags      uint32
	FileAttributes uint32
	CreationTime   uint64
	AccessTime     uint64
	WriteTime      uint64
	FileSize       uint32
	IconIndex      int32
	ShowCommand    uint32
	HotKey         uint16
	Reserved1      uint16
	Reserved2      uint32
	Reserved3      uint32
}

// Header is the decoded ShellLinkHeader. Timestamps are kept as raw FILETIME
// values; ShowCommand is kept raw so callers can see out-of-range values.
type Header struct {
	Size           uint32
	CLSID          guid.GUID
	Flags          types.LinkFlags
	FileAttributes types.FileAttributes
	CreationTime   uint64
	AccessTime     uint64
	WriteTime      uint64
	FileSize       uint32
	IconIndex      int32
	ShowCommand    uint32
	HotKey         types.HotKey
}

// ParseHeader validates and decodes the header at the cursor position,
// advancing past it.
func ParseHeader(c *buf.Cursor) (Header, error) {
	size, err := c.ReadU32()
	if err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}
	if size != HeaderSize {
		return Header{}, fmt.Errorf("header: size 0x%x: %w", size, ErrHeaderSize)
	}
	raw, err := c.EatSlice(HeaderSize)
	if err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}

	var rec headerRecord
	if err := restruct.Unpack(raw, binary.LittleEndian, &rec); err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}
	clsid := guid.FromWindowsArray(rec.LinkCLSID)
	if clsid != LinkCLSID {
		return Header{}, fmt.Errorf("header: clsid %s: %w", clsid, ErrCLSIDMismatch)
	}

	return Header{
		Size:           rec.HeaderSize,
		CLSID:          clsid,
		Flags:          types.LinkFlags(rec.LinkFlags),
		FileAttributes: types.FileAttributes(rec.FileAttributes),
		CreationTime:   rec.CreationTime,
		AccessTime:     rec.AccessTime,
		WriteTime:      rec.WriteTime,
		FileSize:       rec.FileSize,
		IconIndex:      rec.IconIndex,
		ShowCommand:    rec.ShowCommand,
		HotKey:         types.HotKey(rec.HotKey),
	}, nil
}
