package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// LinkInfoHeader is the fixed portion of a LinkInfo structure. The unicode
// offsets are only populated for extended headers.
type LinkInfoHeader struct {
	Size                          uint32
	HeaderSize                    uint32
	Flags                         types.LinkInfoFlags
	VolumeIDOffset                uint32
	LocalBasePathOffset           uint32
	NetworkLinkOffset             uint32
	CommonPathSuffixOffset        uint32
	LocalBasePathOffsetUnicode    uint32
	CommonPathSuffixOffsetUnicode uint32
}

// LinkInfo carries the local and network location of the link target.
type LinkInfo struct {
	Header      LinkInfoHeader
	Volume      *Volume      // nil unless VolumeIDAndLocalBasePath is set with a non-zero offset
	NetworkLink *NetworkLink // nil unless CommonNetworkRelativeLinkAndPathSuffix is set with a non-zero offset

	LocalBasePath    string
	CommonPathSuffix string
}

// NetName returns the share name from the network record, if any.
func (li *LinkInfo) NetName() string {
	if li == nil || li.NetworkLink == nil {
		return ""
	}
	return li.NetworkLink.NetName
}

// DeviceName returns the mapped device (e.g. "Z:") from the network record, if any.
func (li *LinkInfo) DeviceName() string {
	if li == nil || li.NetworkLink == nil {
		return ""
	}
	return li.NetworkLink.DeviceName
}

// ParseLinkInfo decodes the LinkInfo structure at the cursor position,
// advancing past LinkInfoSize bytes. Every offset inside it is validated
// against that window.
func ParseLinkInfo(c *buf.Cursor, legacy LegacyDecoder) (*LinkInfo, error) {
	size, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("linkinfo: %w", err)
	}
	info, err := c.Sub(int(size))
	if err != nil {
		return nil, fmt.Errorf("linkinfo: size 0x%x: %w", size, err)
	}

	hdr, err := parseLinkInfoHeader(info)
	if err != nil {
		return nil, err
	}
	li := &LinkInfo{Header: hdr}

	if hdr.Flags.Has(types.VolumeIDAndLocalBasePath) && hdr.VolumeIDOffset != 0 {
		vc, err := recordWindow(info, hdr.VolumeIDOffset)
		if err != nil {
			return nil, fmt.Errorf("linkinfo: volume: %w", err)
		}
		if li.Volume, err = ParseVolume(vc, legacy); err != nil {
			return nil, fmt.Errorf("linkinfo: %w", err)
		}
	}
	if hdr.Flags.Has(types.CommonNetworkRelativeLinkAndPathSuffix) && hdr.NetworkLinkOffset != 0 {
		nc, err := recordWindow(info, hdr.NetworkLinkOffset)
		if err != nil {
			return nil, fmt.Errorf("linkinfo: network link: %w", err)
		}
		if li.NetworkLink, err = ParseNetworkLink(nc, legacy); err != nil {
			return nil, fmt.Errorf("linkinfo: %w", err)
		}
	}

	if li.LocalBasePath, err = offsetString(info, hdr.LocalBasePathOffset, hdr.LocalBasePathOffsetUnicode, legacy); err != nil {
		return nil, fmt.Errorf("linkinfo: local base path: %w", err)
	}
	if li.CommonPathSuffix, err = offsetString(info, hdr.CommonPathSuffixOffset, hdr.CommonPathSuffixOffsetUnicode, legacy); err != nil {
		return nil, fmt.Errorf("linkinfo: common path suffix: %w", err)
	}
	return li, nil
}

func parseLinkInfoHeader(info *buf.Cursor) (LinkInfoHeader, error) {
	var hdr LinkInfoHeader
	var err error
	if hdr.Size, err = info.EatU32(); err != nil {
		return hdr, fmt.Errorf("linkinfo: %w", err)
	}
	if hdr.HeaderSize, err = info.EatU32(); err != nil {
		return hdr, fmt.Errorf("linkinfo: %w", err)
	}
	extended := hdr.HeaderSize >= LinkInfoHeaderSizeExtendedMin
	if hdr.HeaderSize != LinkInfoHeaderSizeDefault && !extended {
		return hdr, fmt.Errorf("linkinfo: header size 0x%x: %w", hdr.HeaderSize, ErrLinkInfoHeaderSize)
	}

	fixed, err := info.Window(0, int(hdr.HeaderSize))
	if err != nil {
		return hdr, fmt.Errorf("linkinfo: header: %w", err)
	}
	if err := fixed.Skip(LinkInfoSizeFieldsLen); err != nil {
		return hdr, fmt.Errorf("linkinfo: header: %w", err)
	}
	flags, err := fixed.EatU32()
	if err != nil {
		return hdr, fmt.Errorf("linkinfo: header: %w", err)
	}
	hdr.Flags = types.LinkInfoFlags(flags)
	for _, dst := range []*uint32{
		&hdr.VolumeIDOffset,
		&hdr.LocalBasePathOffset,
		&hdr.NetworkLinkOffset,
		&hdr.CommonPathSuffixOffset,
	} {
		if *dst, err = fixed.EatU32(); err != nil {
			return hdr, fmt.Errorf("linkinfo: header: %w", err)
		}
	}
	if !extended {
		return hdr, nil
	}
	if hdr.LocalBasePathOffsetUnicode, err = fixed.EatU32(); err != nil {
		return hdr, fmt.Errorf("linkinfo: header: %w", err)
	}
	if hdr.CommonPathSuffixOffsetUnicode, err = fixed.EatU32(); err != nil {
		return hdr, fmt.Errorf("linkinfo: header: %w", err)
	}
	return hdr, nil
}

// recordWindow returns a cursor over the sub-record at off, sized by the
// 32-bit size field it starts with.
func recordWindow(info *buf.Cursor, off uint32) (*buf.Cursor, error) {
	at, err := info.At(int(off))
	if err != nil {
		return nil, err
	}
	size, err := at.ReadU32()
	if err != nil {
		return nil, err
	}
	if size < 4 {
		// Let the record decoder report its own minimum-size error.
		size = 4
	}
	return at.Sub(int(size))
}
