package strbuffer

// List is an append-only, index-stable collection of buffers. Index 0
// is always the change buffer once NewList has run; growing the list
// never invalidates a previously returned index or a previously
// observed *Buffer, since elements are never removed or replaced and
// each Buffer's own backing array is only ever appended to (never
// reallocated out from under a caller holding a byte slice into it,
// since Buffer.Append reassigns b.Bytes but never mutates bytes a
// caller has already sliced out of the old backing array).
type List struct {
	buffers []*Buffer
}

// NewList returns a List seeded with an empty change buffer at index
// 0, per spec.md §4.2.
func NewList() *List {
	return &List{buffers: []*Buffer{NewChangeBuffer()}}
}

// NewListFromBuffers seeds a List with a change buffer at index 0
// followed by the given original buffers, as delivered by the
// builder.
func NewListFromBuffers(originals []*Buffer) *List {
	l := &List{buffers: make([]*Buffer, 0, len(originals)+1)}
	l.buffers = append(l.buffers, NewChangeBuffer())
	l.buffers = append(l.buffers, originals...)
	return l
}

// Add appends a new original buffer and returns its index.
func (l *List) Add(b *Buffer) int {
	l.buffers = append(l.buffers, b)
	return len(l.buffers) - 1
}

// Get returns the buffer at index i. A Piece ever carrying a
// BufferIndex outside the list is a construction bug, not a condition
// a caller can hit through the public API, so this panics rather than
// returning an error.
func (l *List) Get(i int) *Buffer {
	if i < 0 || i >= len(l.buffers) {
		panic("strbuffer: buffer index out of range")
	}
	return l.buffers[i]
}

// Change returns the mutable change buffer (index 0).
func (l *List) Change() *Buffer {
	return l.buffers[0]
}

// Len returns the number of buffers held, including the change buffer.
func (l *List) Len() int {
	return len(l.buffers)
}
