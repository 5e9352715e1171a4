package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existsIn(paths ...string) Exists {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(p string) bool { return set[p] }
}

func TestResolveLocalBaseAndSuffix(t *testing.T) {
	f := Fragments{LocalBasePath: `C:\A\`, CommonPathSuffix: "b.txt"}
	assert.Equal(t, `C:\A\b.txt`, Resolve(f, existsIn(`C:\A\b.txt`)))
}

func TestResolveWorkingDirJoin(t *testing.T) {
	f := Fragments{WorkingDir: "/home/u", RelativePath: "x/y"}
	assert.Equal(t, "/home/u/x/y", Resolve(f, existsIn("/home/u/x/y")))
}

func TestResolveKeepsBackslashInPOSIXName(t *testing.T) {
	f := Fragments{WorkingDir: "/home/u", RelativePath: `x\y`}
	require.Equal(t, []string{`/home/u/x\y`}, Candidates(f))
	assert.Equal(t, `/home/u/x\y`, Resolve(f, existsIn(`/home/u/x\y`)))
}

func TestResolveNetNameOnly(t *testing.T) {
	f := Fragments{NetName: `\\srv\share`}
	assert.Equal(t, `\\srv\share`, Resolve(f, existsIn(`\\srv\share`)))
}

func TestResolveNothingExists(t *testing.T) {
	f := Fragments{
		LocalBasePath:    `C:\A\`,
		CommonPathSuffix: "b.txt",
		WorkingDir:       "/home/u",
		RelativePath:     "x/y",
		NetName:          `\\srv\share`,
	}
	assert.Equal(t, "", Resolve(f, existsIn()))
	assert.Equal(t, "", Resolve(Fragments{}, nil))
}

func TestResolveFallbackOrder(t *testing.T) {
	f := Fragments{
		LocalBasePath:    `C:\Program Files\App\`,
		CommonPathSuffix: `bin\app.exe`,
		WorkingDir:       `D:\work`,
		RelativePath:     `..\tools\app.exe`,
		NetName:          `\\nas\apps`,
	}

	tests := []struct {
		name   string
		exists []string
		want   string
	}{
		{"rule 1 wins", []string{`C:\Program Files\App\bin\app.exe`, `D:\tools\app.exe`}, `C:\Program Files\App\bin\app.exe`},
		{"rule 2 absolute base", []string{`C:\Program Files\App\`}, `C:\Program Files\App`},
		{"rule 3 relative join", []string{`D:\work\..\tools\app.exe`}, `D:\tools\app.exe`},
		{"rule 4 net name and suffix", []string{`\\nas\apps\bin\app.exe`}, `\\nas\apps\bin\app.exe`},
		{"rule 5 net name", []string{`\\nas\apps`}, `\\nas\apps`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(f, existsIn(tt.exists...)))
		})
	}
}

func TestCandidatesPreconditions(t *testing.T) {
	// relative base path, no suffix: rule 2 does not apply
	assert.Empty(t, Candidates(Fragments{LocalBasePath: `dir\file`}))
	// working dir without relative path: rule 3 does not apply
	assert.Empty(t, Candidates(Fragments{WorkingDir: `C:\x`}))
	// relative net name, no suffix: rule 5 does not apply
	assert.Empty(t, Candidates(Fragments{NetName: "share"}))

	got := Candidates(Fragments{NetName: `\\srv\share`, CommonPathSuffix: `a\b`})
	assert.Equal(t, []string{`\\srv\share\a\b`, `\\srv\share`}, got)
}

func TestResolveNilExistsAcceptsFirst(t *testing.T) {
	f := Fragments{LocalBasePath: `C:\x\`, CommonPathSuffix: "y"}
	assert.Equal(t, `C:\x\y`, Resolve(f, nil))
}

func TestStatExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "target.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, StatExists(file))
	assert.True(t, StatExists(dir))
	assert.False(t, StatExists(filepath.Join(dir, "missing")))

	f := Fragments{WorkingDir: dir, RelativePath: "target.txt"}
	assert.Equal(t, file, Resolve(f, StatExists))
}
