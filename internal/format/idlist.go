package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
)

// IDList is the LinkTargetIDList: opaque shell item identifiers in order,
// each without its 2-byte size prefix.
type IDList struct {
	Items [][]byte
}

// ParseIDList decodes the 16-bit IDListSize at the cursor and the item
// sequence it covers, advancing past both. A zero item size terminates the
// list.
func ParseIDList(c *buf.Cursor) (IDList, error) {
	size, err := c.EatU16()
	if err != nil {
		return IDList{}, fmt.Errorf("idlist: %w", err)
	}
	body, err := c.Sub(int(size))
	if err != nil {
		return IDList{}, fmt.Errorf("idlist: size 0x%x: %w", size, err)
	}

	var list IDList
	for {
		itemSize, err := body.EatU16()
		if err != nil {
			return IDList{}, fmt.Errorf("idlist: item %d: %w", len(list.Items), err)
		}
		if itemSize == 0 {
			return list, nil
		}
		if itemSize < ItemIDSizeLen {
			return IDList{}, fmt.Errorf("idlist: item %d size %d: %w", len(list.Items), itemSize, ErrItemSize)
		}
		payload, err := body.EatSlice(int(itemSize) - ItemIDSizeLen)
		if err != nil {
			return IDList{}, fmt.Errorf("idlist: item %d: %w", len(list.Items), err)
		}
		list.Items = append(list.Items, payload)
	}
}
