// Package linestart scans raw bytes for line-start offsets and
// line-terminator tallies in a single left-to-right pass.
//
// The scanner recognizes three terminators: CR, LF, and CRLF (counted
// as one terminator, not two). Its output feeds the construction of a
// strbuffer.Buffer, whose line-start table is exactly the lineStarts
// slice this package produces.
package linestart
