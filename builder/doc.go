// Package builder is the external collaborator spec.md §6 describes:
// feed it text a chunk at a time via AcceptChunk, call Finish once the
// stream is exhausted to get a Factory, then call Factory.Create to
// obtain a fully constructed PieceTree.
//
// A Builder tallies CR/LF/CRLF terminators as chunks arrive so the
// Factory can later decide a default end-of-line string without a
// second pass over the text, detects and strips a leading UTF-8
// byte-order mark, and holds back a chunk's trailing byte or bytes
// whenever they could be the first half of something that only makes
// sense once the next chunk arrives — a lone '\r' that might turn out
// to be the first half of a "\r\n" pair, or the lead byte of a
// multi-byte UTF-8 sequence chunked mid-character.
package builder
