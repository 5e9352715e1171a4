package buf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrOutOfBounds indicates a read extended past the end of the cursor window.
	ErrOutOfBounds = errors.New("buf: out of bounds")
	// ErrNoTerminator indicates a null-terminated string ran to the end of its window.
	ErrNoTerminator = errors.New("buf: missing string terminator")
	// ErrRead indicates the underlying byte source failed to deliver bytes
	// that were inside the window.
	ErrRead = errors.New("buf: source read failed")
)

const utf16Width = 2

// Cursor is a bounds-checked sequential reader over a window of a random
// access byte source. The window is [base, base+limit) in source coordinates;
// every position a caller sees is relative to the window start.
//
// All reads go through read(), which is the only place a window offset is
// turned into a source offset.
type Cursor struct {
	r     io.ReaderAt
	base  int64
	limit int
	pos   int
}

// New returns a cursor over the first size bytes of r.
func New(r io.ReaderAt, size int64) (*Cursor, error) {
	if size < 0 || size > int64(maxInt) {
		return nil, fmt.Errorf("%w: source size %d", ErrOutOfBounds, size)
	}
	return &Cursor{r: r, limit: int(size)}, nil
}

// FromBytes returns a cursor over b.
func FromBytes(b []byte) *Cursor {
	return &Cursor{r: bytes.NewReader(b), limit: len(b)}
}

const maxInt = int(^uint(0) >> 1)

// Len returns the window length.
func (c *Cursor) Len() int { return c.limit }

// Pos returns the read position relative to the window start.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes in the window.
func (c *Cursor) Remaining() int { return c.limit - c.pos }

// Offset returns the absolute source offset of the read position.
func (c *Cursor) Offset() int64 { return c.base + int64(c.pos) }

func (c *Cursor) read(off, n int) ([]byte, error) {
	if _, ok := Span(c.limit, off, n); !ok {
		return nil, fmt.Errorf("%w: %d bytes at 0x%x (window 0x%x)", ErrOutOfBounds, n, off, c.limit)
	}
	p := make([]byte, n)
	if n == 0 {
		return p, nil
	}
	got, err := c.r.ReadAt(p, c.base+int64(off))
	if got == n {
		return p, nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return nil, fmt.Errorf("%w at 0x%x: %w", ErrRead, c.base+int64(off), err)
}

func (c *Cursor) eat(n int) ([]byte, error) {
	b, err := c.read(c.pos, n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// ReadU32 decodes a uint32 at the read position without advancing.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.read(c.pos, 4)
	if err != nil {
		return 0, err
	}
	return U32LE(b), nil
}

// EatU16 decodes a uint16 and advances past it.
func (c *Cursor) EatU16() (uint16, error) {
	b, err := c.eat(2)
	if err != nil {
		return 0, err
	}
	return U16LE(b), nil
}

// EatU32 decodes a uint32 and advances past it.
func (c *Cursor) EatU32() (uint32, error) {
	b, err := c.eat(4)
	if err != nil {
		return 0, err
	}
	return U32LE(b), nil
}

// EatSlice returns the next n raw bytes and advances past them. The returned
// slice is owned by the caller.
func (c *Cursor) EatSlice(n int) ([]byte, error) {
	return c.eat(n)
}

// EatUTF16 consumes n UTF-16LE code units and returns them as a Go string.
func (c *Cursor) EatUTF16(n int) (string, error) {
	size, ok := MulOverflowSafe(n, utf16Width)
	if !ok {
		return "", fmt.Errorf("%w: %d code units", ErrOutOfBounds, n)
	}
	b, err := c.eat(size)
	if err != nil {
		return "", err
	}
	return DecodeUTF16(b), nil
}

// Skip advances past n bytes.
func (c *Cursor) Skip(n int) error {
	end, ok := Span(c.limit, c.pos, n)
	if !ok {
		return fmt.Errorf("%w: skip %d at 0x%x (window 0x%x)", ErrOutOfBounds, n, c.pos, c.limit)
	}
	c.pos = end
	return nil
}

// Sub returns a cursor over the next n bytes and advances the parent past them.
func (c *Cursor) Sub(n int) (*Cursor, error) {
	child, err := c.Window(c.pos, n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return child, nil
}

// Window returns a cursor over [off, off+n) of this window. The parent does
// not move.
func (c *Cursor) Window(off, n int) (*Cursor, error) {
	if _, ok := Span(c.limit, off, n); !ok {
		return nil, fmt.Errorf("%w: window %d bytes at 0x%x (window 0x%x)", ErrOutOfBounds, n, off, c.limit)
	}
	return &Cursor{r: c.r, base: c.base + int64(off), limit: n}, nil
}

// At returns a cursor positioned at off that can read to the end of this
// window. The parent does not move.
func (c *Cursor) At(off int) (*Cursor, error) {
	if off < 0 || off > c.limit {
		return nil, fmt.Errorf("%w: offset 0x%x (window 0x%x)", ErrOutOfBounds, off, c.limit)
	}
	return &Cursor{r: c.r, base: c.base, limit: c.limit, pos: off}, nil
}

// Bytes returns a copy of the whole window.
func (c *Cursor) Bytes() ([]byte, error) {
	return c.read(0, c.limit)
}

// CStringANSI returns the bytes from off up to, not including, the first NUL.
// The cursor does not move.
func (c *Cursor) CStringANSI(off int) ([]byte, error) {
	if off < 0 || off > c.limit {
		return nil, fmt.Errorf("%w: string at 0x%x (window 0x%x)", ErrOutOfBounds, off, c.limit)
	}
	rest, err := c.read(off, c.limit-off)
	if err != nil {
		return nil, err
	}
	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		return nil, fmt.Errorf("%w: ansi string at 0x%x", ErrNoTerminator, off)
	}
	return rest[:i], nil
}

// CStringUTF16 decodes the UTF-16LE code units from off up to, not
// including, the first NUL code unit. The cursor does not move.
func (c *Cursor) CStringUTF16(off int) (string, error) {
	if off < 0 || off > c.limit {
		return "", fmt.Errorf("%w: string at 0x%x (window 0x%x)", ErrOutOfBounds, off, c.limit)
	}
	rest, err := c.read(off, c.limit-off)
	if err != nil {
		return "", err
	}
	for i := 0; i+1 < len(rest); i += utf16Width {
		if rest[i] == 0 && rest[i+1] == 0 {
			return DecodeUTF16(rest[:i]), nil
		}
	}
	return "", fmt.Errorf("%w: utf-16 string at 0x%x", ErrNoTerminator, off)
}
