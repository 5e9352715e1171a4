package resolve

import "strings"

// isAbs reports whether p is absolute in either Windows or POSIX form:
// a drive letter followed by a separator, a UNC prefix, or a leading slash.
func isAbs(p string) bool {
	switch {
	case p == "":
		return false
	case strings.HasPrefix(p, `\\`), strings.HasPrefix(p, "//"):
		return true
	case p[0] == '/':
		return true
	case hasDrive(p):
		return len(p) > 2 && isSep(p[2])
	}
	return false
}

func hasDrive(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0] | 0x20
	return c >= 'a' && c <= 'z'
}

func isSep(c byte) bool { return c == '\\' || c == '/' }

// separator picks the separator style p already uses. Drive-letter and UNC
// paths are Windows paths. A path rooted at "/" is a POSIX path even when a
// name inside it contains a backslash; other paths with a backslash are
// Windows paths.
func separator(p string) byte {
	switch {
	case hasDrive(p), strings.HasPrefix(p, `\\`):
		return '\\'
	case strings.HasPrefix(p, "/"):
		return '/'
	case strings.Contains(p, `\`):
		return '\\'
	}
	return '/'
}

// join appends rel to dir with dir's separator. An absolute rel wins.
func join(dir, rel string) string {
	if isAbs(rel) {
		return rel
	}
	if dir == "" {
		return rel
	}
	sep := separator(dir)
	if isSep(dir[len(dir)-1]) {
		return dir + rel
	}
	return dir + string(sep) + rel
}

// normalize collapses repeated separators and resolves "." and ".."
// segments, keeping the drive, UNC or root prefix intact. Windows paths come
// back with backslashes only; POSIX paths keep any backslash inside a name.
func normalize(p string) string {
	if p == "" {
		return ""
	}
	sep := separator(p)
	var prefix string
	rest := p
	switch {
	case strings.HasPrefix(p, `\\`) || strings.HasPrefix(p, "//"):
		prefix = string([]byte{sep, sep})
		rest = p[2:]
	case hasDrive(p):
		prefix = p[:2]
		rest = p[2:]
		if rest != "" && isSep(rest[0]) {
			prefix += string(sep)
		}
	case isSep(p[0]):
		prefix = string(sep)
	}

	// In a POSIX path a backslash is part of a name.
	splitOn := func(r rune) bool { return r == '\\' || r == '/' }
	if sep == '/' {
		splitOn = func(r rune) bool { return r == '/' }
	}
	segments := strings.FieldsFunc(rest, splitOn)
	out := segments[:0]
	for _, seg := range segments {
		switch seg {
		case ".":
			continue
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
				continue
			}
			if prefix != "" && isSep(prefix[len(prefix)-1]) {
				// cannot climb above a root
				continue
			}
		}
		out = append(out, seg)
	}
	joined := strings.Join(out, string(sep))
	if joined == "" && prefix == "" {
		return "."
	}
	return prefix + joined
}
