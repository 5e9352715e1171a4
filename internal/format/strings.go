package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// StringData holds the optional trailing strings. Absent fields are empty.
type StringData struct {
	Name         string // description
	RelativePath string
	WorkingDir   string
	Arguments    string
	IconLocation string
}

// ParseStringData decodes the StringData section at the cursor position.
// Each field is present iff its flag is set and is stored as a 16-bit
// character count followed by that many UTF-16LE code units, with no
// terminator. Fields appear in a fixed order.
func ParseStringData(c *buf.Cursor, flags types.LinkFlags) (StringData, error) {
	var sd StringData
	fields := []struct {
		flag types.LinkFlags
		name string
		dst  *string
	}{
		{types.HasName, "name", &sd.Name},
		{types.HasRelativePath, "relative path", &sd.RelativePath},
		{types.HasWorkingDir, "working dir", &sd.WorkingDir},
		{types.HasArguments, "arguments", &sd.Arguments},
		{types.HasIconLocation, "icon location", &sd.IconLocation},
	}
	for _, f := range fields {
		if !flags.Has(f.flag) {
			continue
		}
		count, err := c.EatU16()
		if err != nil {
			return StringData{}, fmt.Errorf("string data: %s: %w", f.name, err)
		}
		if *f.dst, err = c.EatUTF16(int(count)); err != nil {
			return StringData{}, fmt.Errorf("string data: %s: %w", f.name, err)
		}
	}
	return sd, nil
}
