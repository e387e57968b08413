package strbuffer

import (
	"github.com/textbuf/piecetree/internal/engine/linestart"
	"github.com/textbuf/piecetree/internal/engine/piece"
)

// Buffer is an immutable byte buffer plus its precomputed line-start
// offset table. LineStarts[0] is always 0.
type Buffer struct {
	Bytes      []byte
	LineStarts []int
}

// New constructs a Buffer from bytes and a caller-supplied line-start
// table, as handed off by the builder (spec.md §6's "buffers is an
// ordered list of (bytes, lineStarts) pairs").
func New(bytes []byte, lineStarts []int) *Buffer {
	if lineStarts == nil {
		lineStarts = []int{0}
	}
	return &Buffer{Bytes: bytes, LineStarts: lineStarts}
}

// FromBytes scans b for its own line-start table.
func FromBytes(b []byte) *Buffer {
	r := linestart.Scan(b)
	return &Buffer{Bytes: b, LineStarts: r.LineStarts}
}

// NewChangeBuffer returns an empty mutable change buffer (buffer
// index 0 of a fresh List), per spec.md §4.2.
func NewChangeBuffer() *Buffer {
	return &Buffer{Bytes: nil, LineStarts: []int{0}}
}

// Append grows the buffer by text, extending LineStarts in lockstep,
// and returns the scan result so the caller can derive a line-feed
// delta without rescanning. Callers must ensure text does not itself
// begin a CRLF pair whose CR already terminates the buffer; see
// NeedsCRLFPad and Pad, which enforce the padding-byte rule of
// spec.md §4.2 before calling Append in that situation. Only the
// change buffer (index 0 of a List) may be appended to; original
// buffers are never mutated after construction.
func (b *Buffer) Append(text []byte) linestart.Result {
	if len(text) == 0 {
		return linestart.Result{LineStarts: []int{0}, ASCII: true}
	}
	base := len(b.Bytes)
	r := linestart.Scan(text)
	b.Bytes = append(b.Bytes, text...)
	for _, off := range r.LineStarts[1:] {
		b.LineStarts = append(b.LineStarts, base+off)
	}
	return r
}

// crlfPadByte is the neutral, non-newline byte spliced into the
// change buffer by Pad. Any byte that is not '\r' or '\n' would do;
// spec.md §9's Open Question on this point is resolved in favor of a
// visible ASCII character, matching the source's own choice.
const crlfPadByte = '_'

// NeedsCRLFPad reports whether appending text right now would let a
// '\n' retroactively complete a CRLF pair whose '\r' this buffer's
// line-start table has already recorded as its own line terminator
// (spec.md §4.2).
func (b *Buffer) NeedsCRLFPad(text []byte) bool {
	if len(b.Bytes) == 0 || len(text) == 0 {
		return false
	}
	if b.Bytes[len(b.Bytes)-1] != '\r' || text[0] != '\n' {
		return false
	}
	return len(b.Bytes) == b.LineStarts[len(b.LineStarts)-1]
}

// Pad splices in a single crlfPadByte. It never registers a new line
// start, since the byte is neither '\r' nor '\n'; the byte itself is
// never covered by any Piece, so it is never observable in document
// content.
func (b *Buffer) Pad() {
	b.Bytes = append(b.Bytes, crlfPadByte)
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int {
	return len(b.Bytes)
}

// LineCount returns the number of lines represented by LineStarts.
func (b *Buffer) LineCount() int {
	return len(b.LineStarts)
}

// EndCursor returns the cursor one past the last byte in the buffer.
func (b *Buffer) EndCursor() piece.Cursor {
	line := len(b.LineStarts) - 1
	return piece.Cursor{Line: line, Column: len(b.Bytes) - b.LineStarts[line]}
}

// Slice returns the bytes covered by [start, end) in buffer-cursor
// space.
func (b *Buffer) Slice(start, end piece.Cursor) []byte {
	so := b.LineStarts[start.Line] + start.Column
	eo := b.LineStarts[end.Line] + end.Column
	return b.Bytes[so:eo]
}

// ByteAt returns the byte at the given absolute buffer offset.
func (b *Buffer) ByteAt(offset int) byte {
	return b.Bytes[offset]
}
