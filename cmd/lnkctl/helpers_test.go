package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// resetGlobals restores flags and derived state between tests.
func resetGlobals(t *testing.T) {
	t.Helper()
	resetFlags(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		resetFlags(c.Flags())
	}
	cfg = defaultConfig()
	logger = slog.New(slog.DiscardHandler)
}

// resetFlags puts every flag back to its default and clears Changed, so a
// flag set by one test does not override config in the next.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// fixture is a link on disk whose local base path points into a temp dir
// holding an existing target file.
type fixture struct {
	dir    string
	target string
	path   string
}

func writeFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	target := testutil.Touch(t, filepath.Join(dir, "bin", "tool.exe"))

	data := testutil.Link{
		Flags: types.HasLinkTargetIDList | types.HasLinkInfo | types.HasName |
			types.HasWorkingDir | types.HasArguments | types.HasIconLocation | types.IsUnicode,
		FileAttributes: types.AttrArchive,
		ShowCommand:    uint32(types.ShowMaximized),
		HotKey:         0x0674,
		IDList:         [][]byte{{0x1f, 0x50}},
		LinkInfo: testutil.LinkInfo{
			Flags: types.VolumeIDAndLocalBasePath,
			Volume: testutil.Volume{
				DriveType:    types.DriveFixed,
				SerialNumber: 0xA1B2C3D4,
				Label:        "OS",
			}.Bytes(),
			LocalBasePath:    dir + string(os.PathSeparator),
			CommonPathSuffix: filepath.Join("bin", "tool.exe"),
		}.Bytes(),
		Name:         "Build tool",
		WorkingDir:   dir,
		Arguments:    `--mode fast`,
		IconLocation: `%SystemRoot%\system32\shell32.dll`,
		IconIndex:    4,
	}.Bytes()

	return fixture{dir: dir, target: target, path: testutil.WriteLink(t, "Build Tool.lnk", data)}
}
