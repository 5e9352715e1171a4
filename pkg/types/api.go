package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindMalformed ErrKind = iota // input violates the container layout (sizes/offsets/ids)
	ErrKindSource                   // the underlying bytes could not be obtained
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindMalformed:
		return "malformed"
	case ErrKindSource:
		return "source"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so
// errors.Is(err, ErrMalformed) holds for every malformed-input failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrMalformed indicates the input is not a well-formed shell link.
	ErrMalformed = &Error{Kind: ErrKindMalformed, Msg: "malformed shell link"}
	// ErrSourceUnavailable indicates the bytes could not be read at all.
	ErrSourceUnavailable = &Error{Kind: ErrKindSource, Msg: "shell link source unavailable"}
)
