//go:build windows

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeServicesWindows(t *testing.T) {
	s := Native()

	args, err := s.SplitCommandLine(`-a "b c" d`)
	require.NoError(t, err)
	assert.Equal(t, []string{"-a", "b c", "d"}, args)

	t.Setenv("LNKKIT_TEST_DIR", `C:\lnkkit`)
	assert.Equal(t, `C:\lnkkit\icon.ico`, s.ExpandEnv(`%LNKKIT_TEST_DIR%\icon.ico`))
}
