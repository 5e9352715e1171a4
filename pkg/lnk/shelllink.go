package lnk

import (
	"strings"
	"time"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/platform"
	"github.com/joshuapare/lnkkit/internal/resolve"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// ShellLink is a decoded shell link. It is never modified after decoding and
// is safe for concurrent reads.
type ShellLink struct {
	name       string
	header     format.Header
	idList     format.IDList
	linkInfo   *format.LinkInfo
	stringData format.StringData

	platform platform.Services
	exists   resolve.Exists
}

// -----------------------------------------------------------------------------
// String data
// -----------------------------------------------------------------------------

// Description returns the Name string, shown as the shortcut's comment.
func (l *ShellLink) Description() string { return l.stringData.Name }

// RelativePath returns the target path relative to the link file, or "".
func (l *ShellLink) RelativePath() string { return l.stringData.RelativePath }

// WorkingDirectory returns the directory the target is started in, or "".
func (l *ShellLink) WorkingDirectory() string { return l.stringData.WorkingDir }

// ArgumentsString returns the stored command-line arguments unmodified.
func (l *ShellLink) ArgumentsString() string { return l.stringData.Arguments }

// Arguments splits ArgumentsString the way the host shell would. An empty
// argument string yields no arguments.
func (l *ShellLink) Arguments() ([]string, error) {
	if l.stringData.Arguments == "" {
		return nil, nil
	}
	return l.platform.SplitCommandLine(l.stringData.Arguments)
}

// IconLocation returns the stored icon path. It may contain environment
// references; see ExpandedIconLocation.
func (l *ShellLink) IconLocation() string { return l.stringData.IconLocation }

// ExpandedIconLocation returns IconLocation with environment references
// expanded by the host.
func (l *ShellLink) ExpandedIconLocation() string {
	if l.stringData.IconLocation == "" {
		return ""
	}
	return l.platform.ExpandEnv(l.stringData.IconLocation)
}

// IconIndex returns the icon's index within IconLocation.
func (l *ShellLink) IconIndex() int32 { return l.header.IconIndex }

// -----------------------------------------------------------------------------
// Naming
// -----------------------------------------------------------------------------

// FileName returns the path or display name the link was decoded from.
func (l *ShellLink) FileName() string { return l.name }

// ShortName returns the base of FileName without a trailing ".lnk".
func (l *ShellLink) ShortName() string {
	base := l.name
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if len(base) >= 4 && strings.EqualFold(base[len(base)-4:], ".lnk") {
		base = base[:len(base)-4]
	}
	return base
}

// -----------------------------------------------------------------------------
// Header
// -----------------------------------------------------------------------------

// Header returns the decoded header with raw timestamps and show command.
func (l *ShellLink) Header() format.Header { return l.header }

// Flags returns the header's LinkFlags.
func (l *ShellLink) Flags() types.LinkFlags { return l.header.Flags }

// FileAttributes returns the target's attributes as recorded when the link
// was created.
func (l *ShellLink) FileAttributes() types.FileAttributes { return l.header.FileAttributes }

// ShowCommand returns the requested window state. Unknown stored values
// report ShowNormal.
func (l *ShellLink) ShowCommand() types.ShowCommand {
	return types.ShowCommandFromRaw(l.header.ShowCommand)
}

// HotKey returns the keyboard shortcut that activates the link.
func (l *ShellLink) HotKey() types.HotKey { return l.header.HotKey }

// FileSize returns the low 32 bits of the target's size.
func (l *ShellLink) FileSize() uint32 { return l.header.FileSize }

// CreationTime is the target's creation time in UTC, or the zero time if unset.
func (l *ShellLink) CreationTime() time.Time { return format.FiletimeToTime(l.header.CreationTime) }

// AccessTime is the target's last access time in UTC, or the zero time if unset.
func (l *ShellLink) AccessTime() time.Time { return format.FiletimeToTime(l.header.AccessTime) }

// WriteTime is the target's last write time in UTC, or the zero time if unset.
func (l *ShellLink) WriteTime() time.Time { return format.FiletimeToTime(l.header.WriteTime) }

// -----------------------------------------------------------------------------
// Target ID list and LinkInfo
// -----------------------------------------------------------------------------

// IDList returns the target ID list items. The slices must not be modified.
func (l *ShellLink) IDList() [][]byte { return l.idList.Items }

// LinkInfo returns the decoded LinkInfo, or nil if the link has none.
func (l *ShellLink) LinkInfo() *format.LinkInfo { return l.linkInfo }

// LocalBasePath returns the local path prefix from LinkInfo, or "".
func (l *ShellLink) LocalBasePath() string {
	if l.linkInfo == nil {
		return ""
	}
	return l.linkInfo.LocalBasePath
}

// CommonPathSuffix returns the path part appended to LocalBasePath or
// NetName, or "".
func (l *ShellLink) CommonPathSuffix() string {
	if l.linkInfo == nil {
		return ""
	}
	return l.linkInfo.CommonPathSuffix
}

// NetName returns the network share the target lives on, e.g.
// \\server\share, or "".
func (l *ShellLink) NetName() string { return l.linkInfo.NetName() }

// DeviceName returns the drive letter mapped to NetName, e.g. "Z:", or "".
func (l *ShellLink) DeviceName() string { return l.linkInfo.DeviceName() }

func (l *ShellLink) volume() *format.Volume {
	if l.linkInfo == nil {
		return nil
	}
	return l.linkInfo.Volume
}

// VolumeLabel returns the label of the volume holding the target, or "".
func (l *ShellLink) VolumeLabel() string {
	if v := l.volume(); v != nil {
		return v.Label
	}
	return ""
}

// DriveType reports DriveUnknown when the link carries no volume record.
func (l *ShellLink) DriveType() types.DriveType {
	if v := l.volume(); v != nil {
		return v.DriveType
	}
	return types.DriveUnknown
}

// DriveSerialNumber returns the volume serial number, or 0 without a volume
// record.
func (l *ShellLink) DriveSerialNumber() uint32 {
	if v := l.volume(); v != nil {
		return v.SerialNumber
	}
	return 0
}
