package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Volume is the VolumeID record describing the local drive the target was
// stored on. It keeps a copy of its own bytes.
type Volume struct {
	Size               uint32
	DriveType          types.DriveType
	SerialNumber       uint32
	LabelOffset        uint32
	LabelOffsetUnicode uint32
	Label              string

	raw []byte
}

// Raw returns the record bytes exactly as stored.
func (v *Volume) Raw() []byte { return v.raw }

// ParseVolume decodes a VolumeID from a cursor scoped to exactly the record.
func ParseVolume(c *buf.Cursor, legacy LegacyDecoder) (*Volume, error) {
	raw, err := c.Bytes()
	if err != nil {
		return nil, fmt.Errorf("volume: %w", err)
	}
	r := buf.FromBytes(raw)
	v := &Volume{raw: raw}

	if v.Size, err = r.EatU32(); err != nil {
		return nil, fmt.Errorf("volume: %w", err)
	}
	if v.Size <= VolumeIDMinSize {
		return nil, fmt.Errorf("volume: size 0x%x: %w", v.Size, ErrVolumeSize)
	}
	driveType, err := r.EatU32()
	if err != nil {
		return nil, fmt.Errorf("volume: %w", err)
	}
	v.DriveType = types.DriveType(driveType)
	if v.SerialNumber, err = r.EatU32(); err != nil {
		return nil, fmt.Errorf("volume: %w", err)
	}
	if v.LabelOffset, err = r.EatU32(); err != nil {
		return nil, fmt.Errorf("volume: %w", err)
	}
	if v.LabelOffset == VolumeLabelUnicodeSentinel {
		if v.LabelOffsetUnicode, err = r.EatU32(); err != nil {
			return nil, fmt.Errorf("volume: %w", err)
		}
	}

	if v.Label, err = offsetString(r, v.LabelOffset, v.LabelOffsetUnicode, legacy); err != nil {
		return nil, fmt.Errorf("volume: label: %w", err)
	}
	return v, nil
}
