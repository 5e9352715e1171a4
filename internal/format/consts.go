// Package format houses the low-level decoders for the shell link (.lnk)
// binary format. Each record decoder takes a buf.Cursor scoped to the bytes
// it may read and returns a plain value; the public API in pkg/lnk
// orchestrates them.
package format

import "github.com/Microsoft/go-winio/pkg/guid"

// LinkCLSID identifies a shell link: 00021401-0000-0000-C000-000000000046.
// It is stored on disk in Windows GUID byte order.
var LinkCLSID = guid.GUID{
	Data1: 0x00021401,
	Data2: 0x0000,
	Data3: 0x0000,
	Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
}

// ============================================================================
// ShellLinkHeader
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    HeaderSize (must be 0x4C)
//	 0x04   16    LinkCLSID
//	 0x14    4    LinkFlags
//	 0x18    4    FileAttributes
//	 0x1C    8    CreationTime (FILETIME)
//	 0x24    8    AccessTime (FILETIME)
//	 0x2C    8    WriteTime (FILETIME)
//	 0x34    4    FileSize
//	 0x38    4    IconIndex (signed)
//	 0x3C    4    ShowCommand
//	 0x40    2    HotKey
//	 0x42   10    Reserved1 (2), Reserved2 (4), Reserved3 (4)
const (
	HeaderSize = 0x4C

	HeaderFlagsOffset     = 0x14
	HeaderCreationOffset  = 0x1C
	HeaderShowCmdOffset   = 0x3C
	HeaderHotKeyOffset    = 0x40
	HeaderCLSIDOffset     = 0x04
	HeaderFileSizeOffset  = 0x34
	HeaderIconIndexOffset = 0x38
)

// ============================================================================
// LinkTargetIDList
// ============================================================================
const (
	// ItemIDSizeLen is the width of every ItemID size prefix, which counts
	// toward the declared size.
	ItemIDSizeLen = 2
)

// ============================================================================
// LinkInfo
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    LinkInfoSize
//	 0x04    4    LinkInfoHeaderSize (0x1C, or >= 0x24 with unicode offsets)
//	 0x08    4    LinkInfoFlags
//	 0x0C    4    VolumeIDOffset
//	 0x10    4    LocalBasePathOffset
//	 0x14    4    CommonNetworkRelativeLinkOffset
//	 0x18    4    CommonPathSuffixOffset
//	 0x1C    4    LocalBasePathOffsetUnicode    (extended header only)
//	 0x20    4    CommonPathSuffixOffsetUnicode (extended header only)
//
// All offsets are relative to the start of the LinkInfo structure; zero
// means absent.
const (
	LinkInfoHeaderSizeDefault     = 0x1C
	LinkInfoHeaderSizeExtendedMin = 0x24

	// LinkInfoSizeFieldsLen covers LinkInfoSize and LinkInfoHeaderSize,
	// which precede the flags inside the fixed portion.
	LinkInfoSizeFieldsLen = 8
)

// ============================================================================
// VolumeID
// ============================================================================
//
//	 0x00    4    VolumeIDSize (must be > 0x10)
//	 0x04    4    DriveType
//	 0x08    4    DriveSerialNumber
//	 0x0C    4    VolumeLabelOffset
//	 0x10    4    VolumeLabelOffsetUnicode (only when VolumeLabelOffset == 0x14)
const (
	VolumeIDMinSize = 0x10

	// VolumeLabelUnicodeSentinel in VolumeLabelOffset announces the
	// VolumeLabelOffsetUnicode field.
	VolumeLabelUnicodeSentinel = 0x14
)

// ============================================================================
// CommonNetworkRelativeLink
// ============================================================================
//
//	 0x00    4    CommonNetworkRelativeLinkSize (must be >= 0x14)
//	 0x04    4    CommonNetworkRelativeLinkFlags
//	 0x08    4    NetNameOffset
//	 0x0C    4    DeviceNameOffset
//	 0x10    4    NetworkProviderType
//	 0x14    4    NetNameOffsetUnicode    (only when NetNameOffset > 0x14)
//	 0x18    4    DeviceNameOffsetUnicode (only when NetNameOffset > 0x14)
const (
	NetworkLinkMinSize = 0x14
)
