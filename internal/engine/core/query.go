package core

// Range identifies a span of the document by 1-based line/column
// endpoints, mirroring the (line, column) vocabulary PositionAt and
// OffsetAt already use.
type Range struct {
	StartLine, StartColumn int
	EndLine, EndColumn     int
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// OffsetAt converts a 1-based (line, column) pair to an absolute byte
// offset (spec.md §4.5). Out-of-range lines/columns are clamped: a
// line below 1 reads as line 1, a line beyond LineCount yields
// Length(), and the column is kept within the offsets PositionAt
// reports for that line (its first byte up to the byte before the
// next line's start, or Length() on the last line).
func (t *PieceTree) OffsetAt(line, column int) int {
	if line > t.totalLines {
		return t.totalBytes
	}
	l0 := clampInt(line-1, 0, t.totalLines-1)
	lineStart := t.startOffsetOfLine(l0)
	lineEnd := t.totalBytes
	if l0+1 < t.totalLines {
		lineEnd = t.startOffsetOfLine(l0+1) - 1
	}
	return lineStart + clampInt(column-1, 0, lineEnd-lineStart)
}

// PositionAt converts an absolute byte offset to a 1-based (line,
// column) pair (spec.md §4.5). Negative offsets clamp to 0; offsets
// beyond Length clamp to the document end.
func (t *PieceTree) PositionAt(offset int) (line, column int) {
	offset = clampInt(offset, 0, t.totalBytes)
	if t.tree.IsEmpty() {
		return 1, offset + 1
	}
	np := t.nodeAt(offset)
	if np.Node == t.tree.NIL {
		line0 := t.totalLines - 1
		return line0 + 1, offset - t.startOffsetOfLine(line0) + 1
	}
	buf := t.buffers.Get(np.Node.Piece.BufferIndex)
	cur := bufferCursorAt(buf, np.Node.Piece, np.Remainder)
	line0 := np.NodeStartLineNumber + (cur.Line - np.Node.Piece.Start.Line)
	column = offset - t.startOffsetOfLine(line0) + 1
	return line0 + 1, column
}

// stripTrailingEOL removes exactly one trailing line terminator
// (CRLF, CR, or LF) from b, if present.
func stripTrailingEOL(b []byte) []byte {
	n := len(b)
	if n >= 2 && b[n-2] == '\r' && b[n-1] == '\n' {
		return b[:n-2]
	}
	if n >= 1 && (b[n-1] == '\n' || b[n-1] == '\r') {
		return b[:n-1]
	}
	return b
}

// lineContentRaw returns the bytes of 0-based line l0 including its
// trailing terminator, if any (the terminator is absent only for the
// document's final line when it doesn't end in one).
func (t *PieceTree) lineContentRaw(l0 int) []byte {
	start := t.startOffsetOfLine(l0)
	var end int
	if l0+1 < t.totalLines {
		end = t.startOffsetOfLine(l0 + 1)
	} else {
		end = t.totalBytes
	}
	return t.bytesInRange(start, end)
}

// LineContent returns 1-based lineNumber's bytes, excluding its
// trailing terminator (spec.md §6).
func (t *PieceTree) LineContent(lineNumber int) ([]byte, error) {
	if lineNumber < 1 || lineNumber > t.totalLines {
		return nil, &BoundsError{Line: lineNumber, LineCount: t.totalLines}
	}
	if t.memo.valid && t.memo.line == lineNumber {
		return t.memo.content, nil
	}
	raw := t.lineContentRaw(lineNumber - 1)
	content := stripTrailingEOL(raw)
	t.memo = lineMemo{valid: true, line: lineNumber, content: content}
	return content, nil
}

// LineContentRaw returns 1-based lineNumber's bytes including its
// trailing terminator. Supplemented from original_source's
// getLineRawContent (SPEC_FULL.md §9); spec.md's own LineContent
// always strips the terminator.
func (t *PieceTree) LineContentRaw(lineNumber int) ([]byte, error) {
	if lineNumber < 1 || lineNumber > t.totalLines {
		return nil, &BoundsError{Line: lineNumber, LineCount: t.totalLines}
	}
	return t.lineContentRaw(lineNumber - 1), nil
}

// LineLength returns the byte length of 1-based lineNumber, excluding
// its trailing terminator.
func (t *PieceTree) LineLength(lineNumber int) (int, error) {
	c, err := t.LineContent(lineNumber)
	if err != nil {
		return 0, err
	}
	return len(c), nil
}

// rewriteEOL replaces every CRLF/CR/LF terminator in b with newEOL.
func rewriteEOL(b []byte, newEOL string) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\r':
			if i+1 < len(b) && b[i+1] == '\n' {
				i++
			}
			out = append(out, newEOL...)
		case '\n':
			out = append(out, newEOL...)
		default:
			out = append(out, b[i])
		}
	}
	return out
}

// ValueInRange returns the bytes covering r. Reversed endpoints are
// normalized by swapping, per spec.md §7's documented lenient option.
// If requestedEOL is non-empty and either differs from the active EOL
// or the document is not known-normalized, every terminator in the
// result is rewritten to requestedEOL.
func (t *PieceTree) ValueInRange(r Range, requestedEOL string) []byte {
	start := t.OffsetAt(r.StartLine, r.StartColumn)
	end := t.OffsetAt(r.EndLine, r.EndColumn)
	if end < start {
		start, end = end, start
	}
	raw := t.bytesInRange(start, end)
	if requestedEOL != "" && (requestedEOL != t.eol || !t.eolNormalized) {
		return rewriteEOL(raw, requestedEOL)
	}
	return raw
}

// Value returns the entire document.
func (t *PieceTree) Value() []byte {
	return t.bytesInRange(0, t.totalBytes)
}

// LinesContent returns every line's bytes, each without its trailing
// terminator, in document order.
func (t *PieceTree) LinesContent() [][]byte {
	lines := make([][]byte, t.totalLines)
	for i := 0; i < t.totalLines; i++ {
		lines[i] = stripTrailingEOL(t.lineContentRaw(i))
	}
	return lines
}

// ByteAt returns the byte at absolute offset, and whether offset was
// in range. Supplemented from original_source's getCharCode
// (SPEC_FULL.md §9).
func (t *PieceTree) ByteAt(offset int) (byte, bool) {
	if offset < 0 || offset >= t.totalBytes {
		return 0, false
	}
	np := t.nodeAt(offset)
	if np.Node == t.tree.NIL {
		return 0, false
	}
	buf := t.buffers.Get(np.Node.Piece.BufferIndex)
	cur := bufferCursorAt(buf, np.Node.Piece, np.Remainder)
	return buf.ByteAt(buf.LineStarts[cur.Line] + cur.Column), true
}

// Equal reports whether t and other currently hold identical document
// bytes. Supplemented from original_source's equal (SPEC_FULL.md §9).
func (t *PieceTree) Equal(other *PieceTree) bool {
	if t.totalBytes != other.totalBytes {
		return false
	}
	return string(t.Value()) == string(other.Value())
}
