// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

// Token is a single lexed token: a kind, its source span, and the byte
// offsets backing that span in the original source buffer. Lexers for a
// concrete language (internal/mcf, internal/nbtdoc) produce slices of
// these; the generic Parser consumes them without knowing anything else
// about the language.
type Token[T Kind] struct {
	Kind T
	Span Span
	Byte ByteSpan
}

// Text returns the token's exact source text.
func (t Token[T]) Text(src []byte) string {
	return t.Byte.Text(src)
}
