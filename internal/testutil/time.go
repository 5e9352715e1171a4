package testutil

import (
	"time"

	"github.com/joshuapare/lnkkit/internal/format"
)

// Filetime converts t to a Windows FILETIME value for building headers. The
// zero time.Time maps to 0, times before the Unix epoch clamp to it.
func Filetime(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	sec, nsec := t.Unix(), int64(t.Nanosecond())
	if sec < 0 {
		sec, nsec = 0, 0
	}
	return uint64(sec)*format.FiletimeTicksPerSecond + uint64(nsec)/100 + format.FiletimeUnixOffset
}
