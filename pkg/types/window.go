package types

import (
	"fmt"
	"strings"
)

// ShowCommand is the window state requested for the launched target.
type ShowCommand uint32

const (
	ShowNormal      ShowCommand = 0x1 // SW_SHOWNORMAL
	ShowMaximized   ShowCommand = 0x3 // SW_SHOWMAXIMIZED
	ShowMinNoActive ShowCommand = 0x7 // SW_SHOWMINNOACTIVE
)

// ShowCommandFromRaw maps a stored value to a ShowCommand. Anything other
// than the three defined values is treated as ShowNormal.
func ShowCommandFromRaw(v uint32) ShowCommand {
	switch sc := ShowCommand(v); sc {
	case ShowNormal, ShowMaximized, ShowMinNoActive:
		return sc
	default:
		return ShowNormal
	}
}

func (s ShowCommand) String() string {
	switch s {
	case ShowNormal:
		return "normal"
	case ShowMaximized:
		return "maximized"
	case ShowMinNoActive:
		return "minimized"
	default:
		return fmt.Sprintf("ShowCommand(%d)", uint32(s))
	}
}

// HotKeyModifiers is the high byte of a HotKey.
type HotKeyModifiers uint8

const (
	HotKeyShift   HotKeyModifiers = 0x01
	HotKeyControl HotKeyModifiers = 0x02
	HotKeyAlt     HotKeyModifiers = 0x04
)

// HotKey is the keyboard shortcut assigned to the link: low byte virtual key
// code, high byte modifiers.
type HotKey uint16

// Key returns the virtual key code.
func (h HotKey) Key() uint8 { return uint8(h) }

// Modifiers returns the modifier bits.
func (h HotKey) Modifiers() HotKeyModifiers { return HotKeyModifiers(h >> 8) }

// IsZero reports whether no hot key is assigned.
func (h HotKey) IsZero() bool { return h.Key() == 0 }

// String renders the hot key as e.g. "Ctrl+Alt+F5". An unassigned key
// renders as "".
func (h HotKey) String() string {
	if h.IsZero() {
		return ""
	}
	var parts []string
	mods := h.Modifiers()
	if mods&HotKeyControl != 0 {
		parts = append(parts, "Ctrl")
	}
	if mods&HotKeyAlt != 0 {
		parts = append(parts, "Alt")
	}
	if mods&HotKeyShift != 0 {
		parts = append(parts, "Shift")
	}
	parts = append(parts, keyName(h.Key()))
	return strings.Join(parts, "+")
}

func keyName(vk uint8) string {
	switch {
	case vk >= '0' && vk <= '9', vk >= 'A' && vk <= 'Z':
		return string(rune(vk))
	case vk >= 0x70 && vk <= 0x87:
		return fmt.Sprintf("F%d", vk-0x70+1)
	case vk == 0x90:
		return "NumLock"
	case vk == 0x91:
		return "ScrollLock"
	default:
		return fmt.Sprintf("0x%02X", vk)
	}
}

// DriveType is the type of the drive the link target was stored on.
type DriveType uint32

const (
	DriveUnknown DriveType = iota
	DriveNoRootDir
	DriveRemovable
	DriveFixed
	DriveRemote
	DriveCDROM
	DriveRAMDisk
)

func (d DriveType) String() string {
	switch d {
	case DriveUnknown:
		return "unknown"
	case DriveNoRootDir:
		return "no-root-dir"
	case DriveRemovable:
		return "removable"
	case DriveFixed:
		return "fixed"
	case DriveRemote:
		return "remote"
	case DriveCDROM:
		return "cdrom"
	case DriveRAMDisk:
		return "ramdisk"
	default:
		return fmt.Sprintf("DriveType(%d)", uint32(d))
	}
}
