// Package resolve turns the path fragments stored in a shell link into a
// single target path.
package resolve

import "os"

// Exists reports whether a candidate target path is present.
type Exists func(path string) bool

// Fragments are the decoded path pieces a link may carry. Any may be empty.
type Fragments struct {
	LocalBasePath    string
	CommonPathSuffix string
	RelativePath     string
	WorkingDir       string
	NetName          string
}

// Resolve walks the fallback rules in order and returns the first candidate
// that exists, normalized. It returns "" when no rule applies or no candidate
// exists. A nil exists accepts every candidate.
//
// Rules:
//  1. LocalBasePath + CommonPathSuffix
//  2. LocalBasePath, when absolute
//  3. WorkingDir joined with RelativePath
//  4. NetName + `\` + CommonPathSuffix
//  5. NetName, when absolute
func Resolve(f Fragments, exists Exists) string {
	if exists == nil {
		exists = func(string) bool { return true }
	}
	for _, candidate := range Candidates(f) {
		if exists(candidate) {
			return normalize(candidate)
		}
	}
	return ""
}

// Candidates lists the raw candidate paths in rule order, skipping rules
// whose fragments are missing.
func Candidates(f Fragments) []string {
	var out []string
	if f.LocalBasePath != "" && f.CommonPathSuffix != "" {
		out = append(out, f.LocalBasePath+f.CommonPathSuffix)
	}
	if f.LocalBasePath != "" && isAbs(f.LocalBasePath) {
		out = append(out, f.LocalBasePath)
	}
	if f.RelativePath != "" && f.WorkingDir != "" {
		out = append(out, join(f.WorkingDir, f.RelativePath))
	}
	if f.NetName != "" && f.CommonPathSuffix != "" {
		out = append(out, f.NetName+`\`+f.CommonPathSuffix)
	}
	if f.NetName != "" && isAbs(f.NetName) {
		out = append(out, f.NetName)
	}
	return out
}

// StatExists checks the host filesystem. Files and directories both count.
func StatExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
