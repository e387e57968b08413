package core

import "testing"

func TestOffsetAtClampsOutOfRangeLineAndColumn(t *testing.T) {
	pt := fromString("abc\ndef")
	if got := pt.OffsetAt(1, 1); got != 0 {
		t.Fatalf("OffsetAt(1,1) = %d, want 0", got)
	}
	if got := pt.OffsetAt(100, 1); got != pt.Length() {
		t.Fatalf("OffsetAt(100,1) = %d, want %d", got, pt.Length())
	}
	if got := pt.OffsetAt(1, 1000); got != 3 {
		t.Fatalf("OffsetAt(1,1000) = %d, want 3 (line 1 has 3 bytes)", got)
	}
}

func TestPositionAtStartAndEndOfEachLine(t *testing.T) {
	pt := fromString("ab\ncd\nef")
	cases := []struct {
		offset           int
		line, col        int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{8, 3, 3},
	}
	for _, c := range cases {
		line, col := pt.PositionAt(c.offset)
		if line != c.line || col != c.col {
			t.Fatalf("PositionAt(%d) = (%d,%d), want (%d,%d)", c.offset, line, col, c.line, c.col)
		}
	}
}

func TestLineLengthExcludesTerminator(t *testing.T) {
	pt := fromString("hello\nworld!")
	l1, err := pt.LineLength(1)
	if err != nil || l1 != 5 {
		t.Fatalf("LineLength(1) = %d, %v; want 5, nil", l1, err)
	}
	l2, err := pt.LineLength(2)
	if err != nil || l2 != 6 {
		t.Fatalf("LineLength(2) = %d, %v; want 6, nil", l2, err)
	}
}

func TestLineContentRawIncludesTerminator(t *testing.T) {
	pt := fromString("a\r\nb")
	raw, err := pt.LineContentRaw(1)
	if err != nil {
		t.Fatalf("LineContentRaw(1) error: %v", err)
	}
	if string(raw) != "a\r\n" {
		t.Fatalf("LineContentRaw(1) = %q, want %q", raw, "a\r\n")
	}
	raw2, err := pt.LineContentRaw(2)
	if err != nil {
		t.Fatalf("LineContentRaw(2) error: %v", err)
	}
	if string(raw2) != "b" {
		t.Fatalf("LineContentRaw(2) = %q, want %q", raw2, "b")
	}
}

func TestLineContentMemoServesRepeatedQuery(t *testing.T) {
	pt := fromString("first\nsecond\nthird")
	a, err := pt.LineContent(2)
	if err != nil {
		t.Fatalf("LineContent(2) error: %v", err)
	}
	b, err := pt.LineContent(2)
	if err != nil {
		t.Fatalf("LineContent(2) second call error: %v", err)
	}
	if string(a) != string(b) || string(a) != "second" {
		t.Fatalf("LineContent(2) = %q / %q, want %q both times", a, b, "second")
	}
}

func TestLineContentMemoInvalidatedByEdit(t *testing.T) {
	pt := fromString("first\nsecond\nthird")
	if _, err := pt.LineContent(2); err != nil {
		t.Fatalf("LineContent(2) error: %v", err)
	}
	pt.Insert(pt.OffsetAt(2, 1), []byte("X"), false)
	got, err := pt.LineContent(2)
	if err != nil {
		t.Fatalf("LineContent(2) after edit error: %v", err)
	}
	if string(got) != "Xsecond" {
		t.Fatalf("LineContent(2) after edit = %q, want %q", got, "Xsecond")
	}
}
