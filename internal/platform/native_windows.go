//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
	"golang.org/x/text/encoding"
)

func hostEncoding() encoding.Encoding {
	if enc, err := CodePage(windows.GetACP()); err == nil {
		return enc
	}
	return codePages[DefaultCodePage]
}

func splitCommandLine(cmdline string) ([]string, error) {
	if cmdline == "" {
		return nil, nil
	}
	return windows.DecomposeCommandLine(cmdline)
}

func expandEnv(s string) string {
	src, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return s
	}
	n, err := windows.ExpandEnvironmentStrings(src, nil, 0)
	if err != nil || n == 0 {
		return s
	}
	dst := make([]uint16, n)
	n, err = windows.ExpandEnvironmentStrings(src, &dst[0], n)
	if err != nil || n == 0 {
		return s
	}
	return windows.UTF16ToString(dst[:n])
}
