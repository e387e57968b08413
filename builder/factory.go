package builder

import (
	"github.com/textbuf/piecetree/internal/engine/core"
	"github.com/textbuf/piecetree/internal/engine/strbuffer"
)

// Factory holds a Builder's finished chunks and terminator tally,
// ready to construct a PieceTree once a default EOL is supplied
// (spec.md §6). A single Factory may back multiple PieceTrees.
type Factory struct {
	chunks [][]byte
	bom    string

	crCount   int
	lfCount   int
	crlfCount int
	normalize bool
}

// BOM returns the byte-order mark stripped from the accepted text, or
// the empty string if none was present. A Facade forwards this to
// core.PieceTree.Snapshot so a snapshot can reattach it.
func (f *Factory) BOM() string {
	return f.bom
}

// decideEOL applies spec.md §6's majority-vote rule: CRLF wins if it
// accounts for more than half of every terminator seen; otherwise LF
// wins; with no terminators at all, defaultEOL wins by default.
func (f *Factory) decideEOL(defaultEOL string) string {
	total := f.crCount + f.lfCount + f.crlfCount
	switch {
	case total == 0:
		return defaultEOL
	case f.crlfCount*2 > total:
		return "\r\n"
	default:
		return "\n"
	}
}

// Create builds a PieceTree from the accumulated chunks, using
// defaultEOL only when the accepted text carried no terminators of its
// own to vote with.
func (f *Factory) Create(defaultEOL string) *core.PieceTree {
	eol := f.decideEOL(defaultEOL)
	buffers := make([]*strbuffer.Buffer, 0, len(f.chunks))
	for _, c := range f.chunks {
		if f.normalize {
			c = rewriteEOL(c, eol)
		}
		buffers = append(buffers, strbuffer.FromBytes(c))
	}
	return core.New(buffers, eol, f.normalize)
}

// FirstLineText returns up to limit bytes of the first line of the
// accepted text, excluding its terminator. Supplemented from
// original_source's getFirstLineText (SPEC_FULL.md §9), useful for a
// host that wants to sniff a shebang or doctype line before the full
// tree is built.
func (f *Factory) FirstLineText(limit int) string {
	out := make([]byte, 0, limit)
	for _, c := range f.chunks {
		for _, b := range c {
			if b == '\n' || b == '\r' {
				return string(out)
			}
			if len(out) >= limit {
				return string(out)
			}
			out = append(out, b)
		}
	}
	return string(out)
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
