package types

import (
	"fmt"
	"strings"
)

// LinkFlags is the header bitmask announcing which structures follow the
// header and how the link should be tracked.
type LinkFlags uint32

// Bits 0-6 gate the optional structures this package decodes; the rest are
// reported but otherwise ignored.
const (
	HasLinkTargetIDList LinkFlags = 1 << iota
	HasLinkInfo
	HasName
	HasRelativePath
	HasWorkingDir
	HasArguments
	HasIconLocation
	IsUnicode
	ForceNoLinkInfo
	HasExpString
	RunInSeparateProcess
	unusedLinkFlag1
	HasDarwinID
	RunAsUser
	HasExpIcon
	NoPidlAlias
	unusedLinkFlag2
	RunWithShimLayer
	ForceNoLinkTrack
	EnableTargetMetadata
	DisableLinkPathTracking
	DisableKnownFolderTracking
	DisableKnownFolderAlias
	AllowLinkToLink
	UnaliasOnSave
	PreferEnvironmentPath
	KeepLocalIDListForUNCTarget
)

var linkFlagNames = []flagName{
	{uint32(HasLinkTargetIDList), "HasLinkTargetIDList"},
	{uint32(HasLinkInfo), "HasLinkInfo"},
	{uint32(HasName), "HasName"},
	{uint32(HasRelativePath), "HasRelativePath"},
	{uint32(HasWorkingDir), "HasWorkingDir"},
	{uint32(HasArguments), "HasArguments"},
	{uint32(HasIconLocation), "HasIconLocation"},
	{uint32(IsUnicode), "IsUnicode"},
	{uint32(ForceNoLinkInfo), "ForceNoLinkInfo"},
	{uint32(HasExpString), "HasExpString"},
	{uint32(RunInSeparateProcess), "RunInSeparateProcess"},
	{uint32(HasDarwinID), "HasDarwinID"},
	{uint32(RunAsUser), "RunAsUser"},
	{uint32(HasExpIcon), "HasExpIcon"},
	{uint32(NoPidlAlias), "NoPidlAlias"},
	{uint32(RunWithShimLayer), "RunWithShimLayer"},
	{uint32(ForceNoLinkTrack), "ForceNoLinkTrack"},
	{uint32(EnableTargetMetadata), "EnableTargetMetadata"},
	{uint32(DisableLinkPathTracking), "DisableLinkPathTracking"},
	{uint32(DisableKnownFolderTracking), "DisableKnownFolderTracking"},
	{uint32(DisableKnownFolderAlias), "DisableKnownFolderAlias"},
	{uint32(AllowLinkToLink), "AllowLinkToLink"},
	{uint32(UnaliasOnSave), "UnaliasOnSave"},
	{uint32(PreferEnvironmentPath), "PreferEnvironmentPath"},
	{uint32(KeepLocalIDListForUNCTarget), "KeepLocalIDListForUNCTarget"},
}

// Has reports whether every bit of want is set.
func (f LinkFlags) Has(want LinkFlags) bool { return f&want == want }

func (f LinkFlags) String() string { return formatFlags(uint32(f), linkFlagNames) }

// LinkInfoFlags selects which location records a LinkInfo structure carries.
type LinkInfoFlags uint32

const (
	VolumeIDAndLocalBasePath               LinkInfoFlags = 1 << 0
	CommonNetworkRelativeLinkAndPathSuffix LinkInfoFlags = 1 << 1
)

var linkInfoFlagNames = []flagName{
	{uint32(VolumeIDAndLocalBasePath), "VolumeIDAndLocalBasePath"},
	{uint32(CommonNetworkRelativeLinkAndPathSuffix), "CommonNetworkRelativeLinkAndPathSuffix"},
}

// Has reports whether every bit of want is set.
func (f LinkInfoFlags) Has(want LinkInfoFlags) bool { return f&want == want }

func (f LinkInfoFlags) String() string { return formatFlags(uint32(f), linkInfoFlagNames) }

// NetworkLinkFlags says which optional CommonNetworkRelativeLink fields are valid.
type NetworkLinkFlags uint32

const (
	ValidDevice  NetworkLinkFlags = 1 << 0
	ValidNetType NetworkLinkFlags = 1 << 1
)

var networkLinkFlagNames = []flagName{
	{uint32(ValidDevice), "ValidDevice"},
	{uint32(ValidNetType), "ValidNetType"},
}

// Has reports whether every bit of want is set.
func (f NetworkLinkFlags) Has(want NetworkLinkFlags) bool { return f&want == want }

func (f NetworkLinkFlags) String() string { return formatFlags(uint32(f), networkLinkFlagNames) }

// FileAttributes mirrors the FILE_ATTRIBUTE_* bits of the link target.
type FileAttributes uint32

const (
	AttrReadOnly          FileAttributes = 0x0001
	AttrHidden            FileAttributes = 0x0002
	AttrSystem            FileAttributes = 0x0004
	AttrDirectory         FileAttributes = 0x0010
	AttrArchive           FileAttributes = 0x0020
	AttrNormal            FileAttributes = 0x0080
	AttrTemporary         FileAttributes = 0x0100
	AttrSparseFile        FileAttributes = 0x0200
	AttrReparsePoint      FileAttributes = 0x0400
	AttrCompressed        FileAttributes = 0x0800
	AttrOffline           FileAttributes = 0x1000
	AttrNotContentIndexed FileAttributes = 0x2000
	AttrEncrypted         FileAttributes = 0x4000
)

var fileAttributeNames = []flagName{
	{uint32(AttrReadOnly), "READONLY"},
	{uint32(AttrHidden), "HIDDEN"},
	{uint32(AttrSystem), "SYSTEM"},
	{uint32(AttrDirectory), "DIRECTORY"},
	{uint32(AttrArchive), "ARCHIVE"},
	{uint32(AttrNormal), "NORMAL"},
	{uint32(AttrTemporary), "TEMPORARY"},
	{uint32(AttrSparseFile), "SPARSE_FILE"},
	{uint32(AttrReparsePoint), "REPARSE_POINT"},
	{uint32(AttrCompressed), "COMPRESSED"},
	{uint32(AttrOffline), "OFFLINE"},
	{uint32(AttrNotContentIndexed), "NOT_CONTENT_INDEXED"},
	{uint32(AttrEncrypted), "ENCRYPTED"},
}

// Has reports whether every bit of want is set.
func (a FileAttributes) Has(want FileAttributes) bool { return a&want == want }

func (a FileAttributes) String() string { return formatFlags(uint32(a), fileAttributeNames) }

type flagName struct {
	bit  uint32
	name string
}

// formatFlags renders the known bits by name, joined with '|', followed by
// any unknown remainder in hex.
func formatFlags(v uint32, names []flagName) string {
	if v == 0 {
		return "0"
	}
	var parts []string
	rest := v
	for _, n := range names {
		if v&n.bit != 0 {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", rest))
	}
	return strings.Join(parts, "|")
}
