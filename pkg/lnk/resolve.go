package lnk

import "github.com/joshuapare/lnkkit/internal/resolve"

// Resolve returns the best existing target path, or "" if no candidate
// exists. Existence is checked with Options.Exists, or the host filesystem
// by default.
func (l *ShellLink) Resolve() string {
	return resolve.Resolve(l.fragments(), l.exists)
}

// ResolveWith is Resolve with an explicit existence check.
func (l *ShellLink) ResolveWith(exists func(path string) bool) string {
	if exists == nil {
		exists = resolve.StatExists
	}
	return resolve.Resolve(l.fragments(), exists)
}

// Candidates lists every candidate target path in the order Resolve tries
// them, without checking existence or normalizing.
func (l *ShellLink) Candidates() []string {
	return resolve.Candidates(l.fragments())
}

func (l *ShellLink) fragments() resolve.Fragments {
	return resolve.Fragments{
		LocalBasePath:    l.LocalBasePath(),
		CommonPathSuffix: l.CommonPathSuffix(),
		RelativePath:     l.stringData.RelativePath,
		WorkingDir:       l.stringData.WorkingDir,
		NetName:          l.NetName(),
	}
}
