package lnk

import (
	"log/slog"

	"github.com/joshuapare/lnkkit/internal/platform"
	"github.com/joshuapare/lnkkit/internal/resolve"
)

// Options controls how a link is decoded. A nil *Options uses the defaults.
type Options struct {
	// Name identifies an in-memory link in diagnostics and is reported by
	// FileName. Open and OpenMapped default it to the path.
	Name string

	// CodePage selects the Windows code page used for legacy 8-bit path
	// strings, e.g. 1252 or 932. Zero selects the host's active code page
	// on Windows and 1252 elsewhere. Ignored when Platform is set.
	CodePage uint32

	// Platform overrides the host services used for legacy decoding,
	// argument splitting and environment expansion.
	Platform platform.Services

	// Exists is the existence check Resolve uses. Default: the host filesystem.
	Exists func(path string) bool

	// Logger receives per-stage decode diagnostics at debug level.
	// Default: discard.
	Logger *slog.Logger
}

// settings is Options with every default filled in.
type settings struct {
	name     string
	platform platform.Services
	exists   resolve.Exists
	log      *slog.Logger
}

func (o *Options) settings() (settings, error) {
	var opts Options
	if o != nil {
		opts = *o
	}
	s := settings{
		name:     opts.Name,
		platform: opts.Platform,
		exists:   opts.Exists,
		log:      opts.Logger,
	}
	if s.platform == nil {
		if opts.CodePage == 0 {
			s.platform = platform.Native()
		} else {
			enc, err := platform.CodePage(opts.CodePage)
			if err != nil {
				return settings{}, err
			}
			s.platform = platform.New(enc)
		}
	}
	if s.exists == nil {
		s.exists = resolve.StatExists
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	return s, nil
}
