package format_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func TestParseVolumeANSILabel(t *testing.T) {
	data := testutil.Volume{DriveType: types.DriveRemovable, SerialNumber: 7, Label: "USB"}.Bytes()
	v, err := format.ParseVolume(buf.FromBytes(data), cp1252)
	require.NoError(t, err)

	assert.Equal(t, uint32(len(data)), v.Size)
	assert.Equal(t, types.DriveRemovable, v.DriveType)
	assert.Equal(t, uint32(7), v.SerialNumber)
	assert.Equal(t, uint32(0x10), v.LabelOffset)
	assert.Zero(t, v.LabelOffsetUnicode, "unicode offset is only read behind the 0x14 sentinel")
	assert.Equal(t, "USB", v.Label)
	assert.Equal(t, data, v.Raw())
}

func TestParseVolumeUnicodeLabel(t *testing.T) {
	data := testutil.Volume{DriveType: types.DriveFixed, LabelUnicode: "Système"}.Bytes()
	v, err := format.ParseVolume(buf.FromBytes(data), cp1252)
	require.NoError(t, err)

	assert.Equal(t, uint32(format.VolumeLabelUnicodeSentinel), v.LabelOffset)
	assert.Equal(t, uint32(0x14), v.LabelOffsetUnicode)
	assert.Equal(t, "Système", v.Label)
}

func TestParseVolumeSentinelWithoutRoom(t *testing.T) {
	// size 0x11 with the sentinel: the unicode offset field does not fit
	data := make([]byte, 0x11)
	binary.LittleEndian.PutUint32(data[0:], 0x11)
	binary.LittleEndian.PutUint32(data[0x0C:], format.VolumeLabelUnicodeSentinel)
	_, err := format.ParseVolume(buf.FromBytes(data), cp1252)
	require.ErrorIs(t, err, buf.ErrOutOfBounds)
}

func TestParseVolumeTooSmall(t *testing.T) {
	for _, size := range []uint32{0x01, 0x0F, 0x10} {
		data := testutil.Volume{Size: size, Label: "x"}.Bytes()
		_, err := format.ParseVolume(buf.FromBytes(data), cp1252)
		require.ErrorIs(t, err, format.ErrVolumeSize, "size 0x%x", size)
	}
}

func TestParseNetworkLinkANSI(t *testing.T) {
	data := testutil.NetworkLink{
		Flags:        types.ValidDevice,
		ProviderType: 0x001A0000,
		NetName:      `\\nas\media`,
		DeviceName:   "M:",
	}.Bytes()
	n, err := format.ParseNetworkLink(buf.FromBytes(data), cp1252)
	require.NoError(t, err)

	assert.Equal(t, uint32(format.NetworkLinkMinSize), n.NetNameOffset)
	assert.Zero(t, n.NetNameOffsetUnicode)
	assert.Zero(t, n.DeviceNameOffsetUnicode)
	assert.Equal(t, types.ValidDevice, n.Flags)
	assert.Equal(t, uint32(0x001A0000), n.ProviderType)
	assert.Equal(t, `\\nas\media`, n.NetName)
	assert.Equal(t, "M:", n.DeviceName)
	assert.Equal(t, data, n.Raw())
}

func TestParseNetworkLinkUnicode(t *testing.T) {
	data := testutil.NetworkLink{
		NetName:           `\\srv\ansi`,
		DeviceName:        "A:",
		NetNameUnicode:    `\\srv\共有`,
		DeviceNameUnicode: "W:",
	}.Bytes()
	n, err := format.ParseNetworkLink(buf.FromBytes(data), cp1252)
	require.NoError(t, err)

	assert.Greater(t, n.NetNameOffset, uint32(format.NetworkLinkMinSize))
	assert.NotZero(t, n.NetNameOffsetUnicode)
	assert.NotZero(t, n.DeviceNameOffsetUnicode)
	assert.Equal(t, `\\srv\共有`, n.NetName)
	assert.Equal(t, "W:", n.DeviceName)
}

func TestParseNetworkLinkTooSmall(t *testing.T) {
	data := testutil.NetworkLink{Size: 0x13, NetName: "x"}.Bytes()
	_, err := format.ParseNetworkLink(buf.FromBytes(data), cp1252)
	require.ErrorIs(t, err, format.ErrNetworkLinkSize)

	data = testutil.NetworkLink{Size: 0x14, NetName: "x"}.Bytes()
	_, err = format.ParseNetworkLink(buf.FromBytes(data), cp1252)
	require.NoError(t, err, "the minimum size itself is valid")
}

func TestParseStringData(t *testing.T) {
	fields := []struct {
		flag types.LinkFlags
		get  func(format.StringData) string
	}{
		{types.HasName, func(sd format.StringData) string { return sd.Name }},
		{types.HasRelativePath, func(sd format.StringData) string { return sd.RelativePath }},
		{types.HasWorkingDir, func(sd format.StringData) string { return sd.WorkingDir }},
		{types.HasArguments, func(sd format.StringData) string { return sd.Arguments }},
		{types.HasIconLocation, func(sd format.StringData) string { return sd.IconLocation }},
	}
	const value = `..\Ünïcode "quoted" value`

	for _, f := range fields {
		t.Run(f.flag.String(), func(t *testing.T) {
			c := buf.FromBytes(testutil.CountedUTF16(value))
			sd, err := format.ParseStringData(c, f.flag)
			require.NoError(t, err)
			assert.Equal(t, value, f.get(sd))
			assert.Equal(t, 0, c.Remaining())

			// bit clear: the same bytes are left alone
			c = buf.FromBytes(testutil.CountedUTF16(value))
			sd, err = format.ParseStringData(c, 0)
			require.NoError(t, err)
			assert.Equal(t, "", f.get(sd))
			assert.Equal(t, 0, c.Pos())
		})
	}
}

func TestParseStringDataOrder(t *testing.T) {
	var data []byte
	for _, s := range []string{"desc", "rel", "wd", "args", "icon"} {
		data = append(data, testutil.CountedUTF16(s)...)
	}
	flags := types.HasName | types.HasRelativePath | types.HasWorkingDir | types.HasArguments | types.HasIconLocation
	sd, err := format.ParseStringData(buf.FromBytes(data), flags)
	require.NoError(t, err)
	assert.Equal(t, format.StringData{
		Name:         "desc",
		RelativePath: "rel",
		WorkingDir:   "wd",
		Arguments:    "args",
		IconLocation: "icon",
	}, sd)

	// skipping a field shifts the next one into its place
	sd, err = format.ParseStringData(buf.FromBytes(data), types.HasRelativePath|types.HasArguments)
	require.NoError(t, err)
	assert.Equal(t, "desc", sd.RelativePath)
	assert.Equal(t, "rel", sd.Arguments)
}

func TestParseStringDataTruncated(t *testing.T) {
	data := testutil.CountedUTF16("truncated")
	_, err := format.ParseStringData(buf.FromBytes(data[:len(data)-1]), types.HasName)
	require.ErrorIs(t, err, buf.ErrOutOfBounds)

	_, err = format.ParseStringData(buf.FromBytes([]byte{0x01}), types.HasArguments)
	require.ErrorIs(t, err, buf.ErrOutOfBounds)
}

func TestParseStringDataEmptyString(t *testing.T) {
	sd, err := format.ParseStringData(buf.FromBytes([]byte{0, 0}), types.HasWorkingDir)
	require.NoError(t, err)
	assert.Equal(t, "", sd.WorkingDir)
}
