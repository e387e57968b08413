package core

import (
	"bytes"
	"testing"

	"github.com/textbuf/piecetree/internal/engine/strbuffer"
)

func newEmpty() *PieceTree {
	return New(nil, "\n", true)
}

func fromString(s string) *PieceTree {
	return New([]*strbuffer.Buffer{strbuffer.FromBytes([]byte(s))}, "\n", true)
}

func TestEmptyDocumentInvariants(t *testing.T) {
	pt := newEmpty()
	if pt.Length() != 0 {
		t.Fatalf("Length() = %d, want 0", pt.Length())
	}
	if pt.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", pt.LineCount())
	}
	if got := string(pt.Value()); got != "" {
		t.Fatalf("Value() = %q, want empty", got)
	}
}

func TestInsertIntoEmptyDocument(t *testing.T) {
	pt := newEmpty()
	pt.Insert(0, []byte("Hello"), false)
	pt.Insert(5, []byte(" World"), false)
	pt.Insert(11, []byte("!"), false)

	if got := string(pt.Value()); got != "Hello World!" {
		t.Fatalf("Value() = %q, want %q", got, "Hello World!")
	}
	if pt.Length() != 12 {
		t.Fatalf("Length() = %d, want 12", pt.Length())
	}
	if pt.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", pt.LineCount())
	}
}

func TestDeleteMiddleSpan(t *testing.T) {
	pt := fromString("Hello World!")
	pt.Delete(5, 6)
	if got := string(pt.Value()); got != "Hello!" {
		t.Fatalf("Value() = %q, want %q", got, "Hello!")
	}
	if pt.Length() != 6 {
		t.Fatalf("Length() = %d, want 6", pt.Length())
	}
}

func TestBuildWithCRLFNormalizesLineCount(t *testing.T) {
	pt := fromString("Line1\r\nLine2\r\nLine3")
	if pt.LineCount() != 3 {
		t.Fatalf("LineCount() = %d, want 3", pt.LineCount())
	}
	for i, want := range []string{"Line1", "Line2", "Line3"} {
		got, err := pt.LineContent(i + 1)
		if err != nil {
			t.Fatalf("LineContent(%d) error: %v", i+1, err)
		}
		if string(got) != want {
			t.Fatalf("LineContent(%d) = %q, want %q", i+1, got, want)
		}
	}
}

func TestInsertAndDeleteSequenceScenarioS4(t *testing.T) {
	pt := fromString("abcdefghijklmnopqrstuvwxyz")
	pt.Insert(1, []byte("-1-"), false)
	pt.Insert(13, []byte("-13-"), false)
	pt.Delete(2, 2)
	pt.Delete(10, 5)

	want := "a-bcdefghiklmnopqrstuvwxyz"
	if got := string(pt.Value()); got != want {
		t.Fatalf("Value() = %q, want %q", got, want)
	}
}

func TestDeleteAcrossLineBoundaryMergesLines(t *testing.T) {
	pt := fromString("Line1\nLine2\nLine3\n")
	pt.Delete(5, 1)
	if pt.LineCount() != 3 {
		t.Fatalf("LineCount() = %d, want 3", pt.LineCount())
	}
	got, err := pt.LineContent(1)
	if err != nil {
		t.Fatalf("LineContent(1) error: %v", err)
	}
	if string(got) != "Line1Line2" {
		t.Fatalf("LineContent(1) = %q, want %q", got, "Line1Line2")
	}
}

func TestPositionOffsetRoundTrip(t *testing.T) {
	pt := fromString("abc\ndef\nghi")
	for o := 0; o <= pt.Length(); o++ {
		line, col := pt.PositionAt(o)
		back := pt.OffsetAt(line, col)
		if back != o {
			t.Fatalf("offset %d: round trip via (%d,%d) = %d", o, line, col, back)
		}
	}
}

func TestInsertPastEndClampsToAppend(t *testing.T) {
	pt := fromString("hi")
	pt.Insert(1000, []byte("!"), false)
	if got := string(pt.Value()); got != "hi!" {
		t.Fatalf("Value() = %q, want %q", got, "hi!")
	}
}

func TestDeletePastEndEmptiesDocument(t *testing.T) {
	pt := fromString("hello world")
	pt.Delete(0, 1000)
	if pt.Length() != 0 {
		t.Fatalf("Length() = %d, want 0", pt.Length())
	}
	if pt.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", pt.LineCount())
	}
}

func TestInsertEmptyStringIsNoOp(t *testing.T) {
	pt := fromString("hello")
	pt.Insert(2, []byte(""), false)
	if string(pt.Value()) != "hello" {
		t.Fatalf("Value() changed on empty insert")
	}
}

func TestDeleteZeroCountIsNoOp(t *testing.T) {
	pt := fromString("hello")
	pt.Delete(2, 0)
	if string(pt.Value()) != "hello" {
		t.Fatalf("Value() changed on zero-count delete")
	}
}

func TestLineContentBoundsError(t *testing.T) {
	pt := fromString("only line")
	if _, err := pt.LineContent(0); err == nil {
		t.Fatalf("LineContent(0) should error")
	}
	if _, err := pt.LineContent(2); err == nil {
		t.Fatalf("LineContent(2) should error on a 1-line document")
	}
}

func TestCRLFAcrossInsertBoundaryFuses(t *testing.T) {
	pt := fromString("a\rb")
	// insert "\n" right between \r and b, i.e. at offset 2
	pt.Insert(2, []byte("\n"), false)
	if got := string(pt.Value()); got != "a\r\nb" {
		t.Fatalf("Value() = %q, want %q", got, "a\r\nb")
	}
	if pt.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2 (single CRLF terminator)", pt.LineCount())
	}
}

func TestCRLFAcrossDeleteJoinFuses(t *testing.T) {
	pt := fromString("a\r\nb")
	// delete the middle byte pair such that a\r and \nb become newly
	// adjacent from two different original pieces: split first, then
	// delete a marker in between.
	pt.Insert(2, []byte("X"), false) // a\rX\nb
	pt.Delete(2, 1)                  // back to a\r|\nb, now two pieces
	if got := string(pt.Value()); got != "a\r\nb" {
		t.Fatalf("Value() = %q, want %q", got, "a\r\nb")
	}
	if pt.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", pt.LineCount())
	}
}

func TestValueInRangeRewritesEOL(t *testing.T) {
	pt := fromString("a\nb\nc")
	got := pt.ValueInRange(Range{StartLine: 1, StartColumn: 1, EndLine: 3, EndColumn: 2}, "\r\n")
	want := "a\r\nb\r\nc"
	if string(got) != want {
		t.Fatalf("ValueInRange() = %q, want %q", got, want)
	}
}

func TestValueInRangeReversedEndpointsNormalizes(t *testing.T) {
	pt := fromString("abcdef")
	forward := pt.ValueInRange(Range{StartLine: 1, StartColumn: 2, EndLine: 1, EndColumn: 5}, "")
	backward := pt.ValueInRange(Range{StartLine: 1, StartColumn: 5, EndLine: 1, EndColumn: 2}, "")
	if !bytes.Equal(forward, backward) {
		t.Fatalf("reversed range = %q, want %q", backward, forward)
	}
}

func TestLinesContentMatchesLineContent(t *testing.T) {
	pt := fromString("one\ntwo\nthree")
	lines := pt.LinesContent()
	if len(lines) != 3 {
		t.Fatalf("LinesContent() len = %d, want 3", len(lines))
	}
	for i, want := range []string{"one", "two", "three"} {
		if string(lines[i]) != want {
			t.Fatalf("LinesContent()[%d] = %q, want %q", i, lines[i], want)
		}
	}
}

func TestLargeInsertChunksAcrossMultipleBuffers(t *testing.T) {
	pt := newEmpty()
	big := bytes.Repeat([]byte("x"), AverageBufferSize*2+10)
	pt.Insert(0, big, false)
	if pt.Length() != len(big) {
		t.Fatalf("Length() = %d, want %d", pt.Length(), len(big))
	}
	if !bytes.Equal(pt.Value(), big) {
		t.Fatalf("Value() mismatch after large chunked insert")
	}
}

func TestByteAtAndEqual(t *testing.T) {
	pt1 := fromString("hello")
	pt2 := fromString("hello")
	pt3 := fromString("world")
	if !pt1.Equal(pt2) {
		t.Fatalf("Equal() should be true for identical content")
	}
	if pt1.Equal(pt3) {
		t.Fatalf("Equal() should be false for differing content")
	}
	b, ok := pt1.ByteAt(0)
	if !ok || b != 'h' {
		t.Fatalf("ByteAt(0) = %q, %v; want 'h', true", b, ok)
	}
	if _, ok := pt1.ByteAt(100); ok {
		t.Fatalf("ByteAt(100) should be out of range")
	}
}

func TestSetEOLNormalizesMixedTerminators(t *testing.T) {
	pt := New([]*strbuffer.Buffer{strbuffer.FromBytes([]byte("a\nb\r\nc\rd"))}, "\n", false)
	pt.SetEOL("\r\n")
	if pt.EOL() != "\r\n" {
		t.Fatalf("EOL() = %q, want %q", pt.EOL(), "\r\n")
	}
	if !pt.EOLNormalized() {
		t.Fatalf("EOLNormalized() should be true after SetEOL")
	}
	want := "a\r\nb\r\nc\r\nd"
	if got := string(pt.Value()); got != want {
		t.Fatalf("Value() = %q, want %q", got, want)
	}
	if pt.LineCount() != 4 {
		t.Fatalf("LineCount() = %d, want 4", pt.LineCount())
	}
}
