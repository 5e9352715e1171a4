/*
Package lnk decodes Windows shell link (.lnk) files and resolves the path
they point to.

# Quick Start

Open a shortcut and print where it leads:

	link, err := lnk.Open("Notepad.lnk", nil)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(link.Resolve())

# Sources

A link can be decoded from three kinds of byte source. All of them feed the
same decoder and produce identical results:

  - Parse reads an in-memory buffer
  - Open streams from an open file handle
  - OpenMapped maps the file read-only where the host supports it

The file handle or mapping is released before Open and OpenMapped return,
whether decoding succeeded or not.

# Decoded Fields

A ShellLink is immutable. Accessors expose the header (flags, attributes,
timestamps, show command, hot key), the target ID list, the LinkInfo
location data (local base path, common path suffix, volume and network
share details) and the five optional display strings:

	link.Description()
	link.RelativePath()
	link.WorkingDirectory()
	link.ArgumentsString()
	link.IconLocation()

Arguments and ExpandedIconLocation go through the host platform: the
argument string is split the way the Windows shell would split it, and
%VAR% references in the icon path are expanded. Elsewhere both are identity
operations.

# Resolving Targets

Resolve combines the decoded path fragments into one candidate path using
an ordered fallback (local base path and suffix, local base path, working
directory and relative path, network share and suffix, network share) and
returns the first candidate that exists. Use ResolveWith or Options.Exists
to supply a different existence check:

	target := link.ResolveWith(func(p string) bool { return known[p] })

# Error Handling

Decoding either produces a complete ShellLink or fails. Failures are
*types.Error values:

	_, err := lnk.Open(path, nil)
	switch {
	case errors.Is(err, types.ErrMalformed):
	    // not a well-formed shell link
	case errors.Is(err, types.ErrSourceUnavailable):
	    // the file could not be read; errors.Is(err, fs.ErrNotExist) also works
	}
*/
package lnk
