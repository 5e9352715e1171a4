package lnk_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/lnk"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Example decodes an in-memory link and resolves it against a fixed set of
// known paths.
func Example() {
	data := testutil.Link{
		Flags: types.HasLinkInfo | types.HasName,
		LinkInfo: testutil.LinkInfo{
			Flags:            types.VolumeIDAndLocalBasePath,
			Volume:           testutil.Volume{DriveType: types.DriveFixed, Label: "OS"}.Bytes(),
			LocalBasePath:    `C:\Tools\`,
			CommonPathSuffix: "app.exe",
		}.Bytes(),
		Name: "My tool",
	}.Bytes()

	link, err := lnk.Parse(data, &lnk.Options{Name: "My Tool.lnk"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(link.ShortName())
	fmt.Println(link.Description())
	fmt.Println(link.VolumeLabel(), link.DriveType())
	fmt.Println(link.ResolveWith(func(p string) bool { return p == `C:\Tools\app.exe` }))
	// Output:
	// My Tool
	// My tool
	// OS fixed
	// C:\Tools\app.exe
}

// ExampleParse_malformed shows how decode failures are classified.
func ExampleParse_malformed() {
	_, err := lnk.Parse([]byte("MZ"), nil)
	fmt.Println(errors.Is(err, types.ErrMalformed))
	// Output:
	// true
}
