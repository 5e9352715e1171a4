package format

import (
	"time"
)

const (
	// FiletimeUnixOffset is the Unix epoch in FILETIME units.
	FiletimeUnixOffset = 116444736000000000
	// FiletimeTicksPerSecond is the number of 100ns FILETIME ticks per second.
	FiletimeTicksPerSecond = 10000000

	filetimeUnit = 100 // FILETIME units are 100ns
)

// FiletimeToTime converts a Windows FILETIME value to time.Time. Zero means
// "not set" in a shell link and maps to the zero time.Time; values before
// the Unix epoch clamp to it. Seconds and ticks are split before scaling so
// the full uint64 range stays exact.
func FiletimeToTime(v uint64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	if v <= FiletimeUnixOffset {
		return time.Unix(0, 0).UTC()
	}
	d := v - FiletimeUnixOffset
	sec := int64(d / FiletimeTicksPerSecond)
	nsec := int64(d%FiletimeTicksPerSecond) * filetimeUnit
	return time.Unix(sec, nsec).UTC()
}
