package format

import "errors"

var (
	// ErrHeaderSize indicates the header declared a size other than 0x4C.
	ErrHeaderSize = errors.New("format: header size mismatch")
	// ErrCLSIDMismatch indicates the header type identifier is not LinkCLSID.
	ErrCLSIDMismatch = errors.New("format: link CLSID mismatch")
	// ErrItemSize indicates an ItemID declared a size smaller than its own prefix.
	ErrItemSize = errors.New("format: item id size too small")
	// ErrLinkInfoHeaderSize indicates a LinkInfo header size that is neither
	// the default nor at least the extended minimum.
	ErrLinkInfoHeaderSize = errors.New("format: invalid link info header size")
	// ErrVolumeSize indicates a VolumeID at or below its minimum size.
	ErrVolumeSize = errors.New("format: volume id too small")
	// ErrNetworkLinkSize indicates a CommonNetworkRelativeLink below its minimum size.
	ErrNetworkLinkSize = errors.New("format: network link too small")
)
