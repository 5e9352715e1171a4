package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetGlobals(t)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = closeLog()
	})
	return captureOutput(t, rootCmd.Execute)
}

func TestRootWithoutArgsPrintsUsage(t *testing.T) {
	out, err := execRoot(t)
	require.NoError(t, err)
	assertContains(t, out, []string{"Usage:", "lnkctl [file]", "resolve", "version"})
}

func TestRootWithFile(t *testing.T) {
	fx := writeFixture(t)
	out, err := execRoot(t, fx.path, "--json")
	require.NoError(t, err)
	assertJSON(t, out)

	var r linkReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "Build tool", r.Description)
}

func TestRootTooManyArgs(t *testing.T) {
	_, err := execRoot(t, "a.lnk", "b.lnk")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execRoot(t, "version")
	require.NoError(t, err)
	assertContains(t, out, []string{"lnkctl dev", "commit: none"})
}

func TestResolveSubcommand(t *testing.T) {
	fx := writeFixture(t)
	out, err := execRoot(t, "resolve", fx.path)
	require.NoError(t, err)
	assert.Equal(t, fx.target+"\n", out)
}

func TestLogFileReceivesDecodeStages(t *testing.T) {
	fx := writeFixture(t)
	logPath := filepath.Join(t.TempDir(), "logs", "lnkctl.log")
	_, err := execRoot(t, "info", fx.path, "--verbose", "--log-file", logPath, "--resolve=false")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"header decoded"`)
	assert.Contains(t, string(data), `"msg":"string data decoded"`)
}

func TestRootFlagsReachConfig(t *testing.T) {
	fx := writeFixture(t)
	out, err := execRoot(t, "info", fx.path, "-o", "yaml", "--resolve=false", "--codepage", "932")
	require.NoError(t, err)
	assert.Contains(t, out, "description: Build tool")
	assert.Equal(t, outputYAML, cfg.Output)
	assert.False(t, cfg.Resolve)
	assert.Equal(t, "932", cfg.CodePage)

	// flags from the previous run must not leak into this one
	_, err = execRoot(t, "info", fx.path)
	require.NoError(t, err)
	assert.Equal(t, outputText, cfg.Output)
	assert.True(t, cfg.Resolve)
	assert.Equal(t, "", cfg.CodePage)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lnkctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codepage: \"932\"\noutput: yaml\nmmap: true\n"), 0o644))

	c, err := loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "932", c.CodePage)
	assert.Equal(t, outputYAML, c.Output)
	assert.True(t, c.Mmap)
	assert.True(t, c.Resolve, "default kept")
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lnkctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\nresolve: false\n"), 0o644))
	t.Setenv("LNKCTL_CODEPAGE", "1251")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", outputText, "")
	flags.Bool("resolve", true, "")
	flags.String("codepage", "", "")
	require.NoError(t, flags.Parse([]string{"--output", "json"}))

	c, err := loadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, outputJSON, c.Output, "explicit flag beats the file")
	assert.False(t, c.Resolve, "file beats an unset flag")
	assert.Equal(t, "1251", c.CodePage, "environment beats an unset flag")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err, "an explicit config file must exist")

	path := filepath.Join(t.TempDir(), "lnkctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0o644))
	_, err = loadConfig(path, nil)
	require.Error(t, err)
}
