package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/testutil"
)

func TestParseIDList(t *testing.T) {
	items := [][]byte{
		{0x1f, 0x50, 0xe0, 0x4f},
		{0x2f, 'C', ':', '\\'},
		{},
		{0x31, 0x00, 0x01},
	}
	data := append(testutil.IDList(items...), 0xAA, 0xBB)
	c := buf.FromBytes(data)

	list, err := format.ParseIDList(c)
	require.NoError(t, err)
	require.Len(t, list.Items, len(items))
	for i := range items {
		assert.Equal(t, items[i], list.Items[i], "item %d", i)
	}
	assert.Equal(t, 2, c.Remaining(), "cursor must stop at the end of IDListSize")
}

func TestParseIDListEmpty(t *testing.T) {
	list, err := format.ParseIDList(buf.FromBytes(testutil.IDList()))
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestParseIDListItemTooSmall(t *testing.T) {
	// IDListSize=5: one item claiming size 1, then a terminator
	data := []byte{0x05, 0x00, 0x01, 0x00, 0xff, 0x00, 0x00}
	_, err := format.ParseIDList(buf.FromBytes(data))
	require.ErrorIs(t, err, format.ErrItemSize)
}

func TestParseIDListItemOverflow(t *testing.T) {
	// item declares 0x10 bytes but the list only holds 4
	data := []byte{0x04, 0x00, 0x10, 0x00, 0x01, 0x02}
	_, err := format.ParseIDList(buf.FromBytes(data))
	require.ErrorIs(t, err, buf.ErrOutOfBounds)
}

func TestParseIDListMissingTerminator(t *testing.T) {
	data := []byte{0x04, 0x00, 0x04, 0x00, 0x01, 0x02}
	_, err := format.ParseIDList(buf.FromBytes(data))
	require.ErrorIs(t, err, buf.ErrOutOfBounds)
}

func TestParseIDListSizeBeyondInput(t *testing.T) {
	data := []byte{0x40, 0x00, 0x00, 0x00}
	_, err := format.ParseIDList(buf.FromBytes(data))
	require.ErrorIs(t, err, buf.ErrOutOfBounds)
}
