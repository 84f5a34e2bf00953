// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

import "fmt"

// LineCol is a zero-indexed line/column position in a source file. Column
// is a UTF-8 code point count, not a byte offset.
type LineCol struct {
	Line int
	Col  int
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// Less reports whether lc sorts strictly before other, comparing line
// first and then column.
func (lc LineCol) Less(other LineCol) bool {
	if lc.Line != other.Line {
		return lc.Line < other.Line
	}
	return lc.Col < other.Col
}

// Span is a half-open range of source positions, [Start, End).
type Span struct {
	Start LineCol
	End   LineCol
}

// NewSpan builds a Span, panicking if start sorts after end. Malformed
// spans indicate a bug in the engine, not in the input being parsed.
func NewSpan(start, end LineCol) Span {
	if end.Less(start) {
		panic(fmt.Sprintf("assert(start <= end): %s > %s", start, end))
	}
	return Span{Start: start, End: end}
}

// Union returns the smallest span covering both a and b.
func Union(a, b Span) Span {
	start, end := a.Start, a.End
	if b.Start.Less(start) {
		start = b.Start
	}
	if end.Less(b.End) {
		end = b.End
	}
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// ByteSpan is a half-open byte offset range into the original source
// buffer. Kept alongside LineCol spans because SNBT/commands callers want
// cheap substring access without re-walking lines.
type ByteSpan struct {
	Start int
	End   int
}

func (b ByteSpan) Text(src []byte) string {
	return string(src[b.Start:b.End])
}
