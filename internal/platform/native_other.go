//go:build !windows

package platform

import "golang.org/x/text/encoding"

func hostEncoding() encoding.Encoding { return codePages[DefaultCodePage] }

// Without a native tokenizer the argument string is passed through whole.
func splitCommandLine(cmdline string) ([]string, error) {
	if cmdline == "" {
		return nil, nil
	}
	return []string{cmdline}, nil
}

func expandEnv(s string) string { return s }
