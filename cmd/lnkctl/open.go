package main

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/platform"
	"github.com/joshuapare/lnkkit/pkg/lnk"
)

// openLink decodes path with the current configuration.
func openLink(path string) (*lnk.ShellLink, error) {
	opts := &lnk.Options{Logger: logger}
	if cfg.CodePage != "" {
		enc, err := platform.Lookup(cfg.CodePage)
		if err != nil {
			return nil, err
		}
		opts.Platform = platform.New(enc)
	}

	printVerbose("Opening link: %s\n", path)
	open := lnk.Open
	if cfg.Mmap {
		open = lnk.OpenMapped
	}
	link, err := open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return link, nil
}
