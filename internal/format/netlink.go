package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// NetworkLink is the CommonNetworkRelativeLink record describing the network
// share the target was stored on. It keeps a copy of its own bytes.
type NetworkLink struct {
	Size                    uint32
	Flags                   types.NetworkLinkFlags
	NetNameOffset           uint32
	DeviceNameOffset        uint32
	ProviderType            uint32
	NetNameOffsetUnicode    uint32
	DeviceNameOffsetUnicode uint32
	NetName                 string
	DeviceName              string

	raw []byte
}

// Raw returns the record bytes exactly as stored.
func (n *NetworkLink) Raw() []byte { return n.raw }

// ParseNetworkLink decodes a CommonNetworkRelativeLink from a cursor scoped
// to exactly the record.
func ParseNetworkLink(c *buf.Cursor, legacy LegacyDecoder) (*NetworkLink, error) {
	raw, err := c.Bytes()
	if err != nil {
		return nil, fmt.Errorf("network link: %w", err)
	}
	r := buf.FromBytes(raw)
	n := &NetworkLink{raw: raw}

	if n.Size, err = r.EatU32(); err != nil {
		return nil, fmt.Errorf("network link: %w", err)
	}
	if n.Size < NetworkLinkMinSize {
		return nil, fmt.Errorf("network link: size 0x%x: %w", n.Size, ErrNetworkLinkSize)
	}
	flags, err := r.EatU32()
	if err != nil {
		return nil, fmt.Errorf("network link: %w", err)
	}
	n.Flags = types.NetworkLinkFlags(flags)
	if n.NetNameOffset, err = r.EatU32(); err != nil {
		return nil, fmt.Errorf("network link: %w", err)
	}
	if n.DeviceNameOffset, err = r.EatU32(); err != nil {
		return nil, fmt.Errorf("network link: %w", err)
	}
	if n.ProviderType, err = r.EatU32(); err != nil {
		return nil, fmt.Errorf("network link: %w", err)
	}
	// The unicode offsets exist only when the ANSI net name starts past the
	// minimal record.
	if n.NetNameOffset > NetworkLinkMinSize {
		if n.NetNameOffsetUnicode, err = r.EatU32(); err != nil {
			return nil, fmt.Errorf("network link: %w", err)
		}
		if n.DeviceNameOffsetUnicode, err = r.EatU32(); err != nil {
			return nil, fmt.Errorf("network link: %w", err)
		}
	}

	if n.NetName, err = offsetString(r, n.NetNameOffset, n.NetNameOffsetUnicode, legacy); err != nil {
		return nil, fmt.Errorf("network link: net name: %w", err)
	}
	if n.DeviceName, err = offsetString(r, n.DeviceNameOffset, n.DeviceNameOffsetUnicode, legacy); err != nil {
		return nil, fmt.Errorf("network link: device name: %w", err)
	}
	return n, nil
}
