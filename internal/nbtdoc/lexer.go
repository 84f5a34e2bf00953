// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package nbtdoc

import (
	"unicode/utf8"

	"github.com/datapack-land/mcsyntax/internal/cst"
	"github.com/datapack-land/mcsyntax/internal/runescan"
)

var punct = []struct {
	s string
	k TokenKind
}{
	{"..", DotDot},
	{"::", ColonColon},

	{",", Comma},
	{":", Colon},
	{"@", At},
	{"|", Bar},
	{"=", Eq},
	{"/", Slash},
	{".", Dot},
	{";", Semicolon},

	{"{", LCurly},
	{"}", RCurly},
	{"[", LBracket},
	{"]", RBracket},
	{"(", LParen},
	{")", RParen},
}

var keywords = map[string]TokenKind{
	"byte":      ByteKw,
	"short":     ShortKw,
	"int":       IntKw,
	"long":      LongKw,
	"float":     FloatKw,
	"double":    DoubleKw,
	"string":    StringKw,
	"boolean":   BooleanKw,
	"mod":       ModKw,
	"compound":  CompoundKw,
	"enum":      EnumKw,
	"inject":    InjectKw,
	"super":     SuperKw,
	"extends":   ExtendsKw,
	"export":    ExportKw,
	"use":       UseKw,
	"describes": DescribesKw,
	"id":        IdKw,
}

// Tokenize lexes src into one flat token stream, terminated by a
// zero-width Eof token. nbtdoc items span lines freely, so there is no
// per-line split; comments and doc comments are ordinary tokens the
// engine treats as whitespace.
func Tokenize(src []byte) []cst.Token[TokenKind] {
	c := runescan.New(src)
	var toks []cst.Token[TokenKind]

	push := func(kind TokenKind, startLine, startCol, startPos int) {
		toks = append(toks, cst.Token[TokenKind]{
			Kind: kind,
			Span: cst.NewSpan(cst.LineCol{Line: startLine, Col: startCol}, cst.LineCol{Line: c.Line, Col: c.Col}),
			Byte: cst.ByteSpan{Start: startPos, End: c.Pos},
		})
	}

	for !c.AtEOF() {
		startLine, startCol, startPos := c.Line, c.Col, c.Pos

		// floats are matched before punctuation so `1.5` doesn't split
		// at the dot and `-2` isn't an invalid dash
		if n := floatLen(src[c.Pos:]); n > 0 {
			c.Skip(n)
			push(Float, startLine, startCol, startPos)
			continue
		}

		if c.HasPrefix("//") {
			kind := Comment
			if c.HasPrefix("///") {
				kind = DocComment
			}
			for {
				cc := c.Current()
				if cc == runescan.EOFRune {
					break
				}
				c.Advance()
				if cc == '\n' {
					break
				}
			}
			push(kind, startLine, startCol, startPos)
			continue
		}

		matched := false
		for _, pp := range punct {
			if c.HasPrefix(pp.s) {
				c.Skip(len(pp.s))
				push(pp.k, startLine, startCol, startPos)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		ch := c.Current()
		switch {
		case isAsciiAlpha(ch) || ch == '_':
			for isAsciiAlnum(c.Current()) || c.Current() == '_' {
				c.Advance()
			}
			kind := Ident
			if kw, ok := keywords[string(src[startPos:c.Pos])]; ok {
				kind = kw
			}
			push(kind, startLine, startCol, startPos)
		case ch == '"' || ch == '\'':
			quote := ch
			c.Advance()
			escaped := false
			for {
				cc := c.Current()
				if cc == runescan.EOFRune || cc == '\r' || cc == '\n' {
					break
				}
				c.Advance()
				if escaped {
					escaped = false
				} else if cc == quote {
					break
				} else if cc == '\\' {
					escaped = true
				}
			}
			push(QuotedString, startLine, startCol, startPos)
		case isAsciiSpace(ch):
			for isAsciiSpace(c.Current()) {
				c.Advance()
			}
			push(Whitespace, startLine, startCol, startPos)
		default:
			_, w := utf8.DecodeRune(src[c.Pos:])
			if w == 0 {
				w = 1
			}
			c.Skip(w)
			push(Invalid, startLine, startCol, startPos)
		}
	}

	pos := c.Pos
	toks = append(toks, cst.Token[TokenKind]{
		Kind: Eof,
		Span: cst.NewSpan(cst.LineCol{Line: c.Line, Col: c.Col}, cst.LineCol{Line: c.Line, Col: c.Col}),
		Byte: cst.ByteSpan{Start: pos, End: pos},
	})
	return toks
}

// floatLen reports the byte length of a float at the start of b, or 0.
// Accepted: optional leading dash, digits with optional fraction or a
// bare `.digits` fraction, optional e|E exponent with optional sign.
func floatLen(b []byte) int {
	i := 0
	if i < len(b) && b[i] == '-' {
		i++
	}
	if i < len(b) && b[i] == '.' {
		i++
		if i >= len(b) || !isDigitByte(b[i]) {
			return 0
		}
		for i < len(b) && isDigitByte(b[i]) {
			i++
		}
	} else {
		if i >= len(b) || !isDigitByte(b[i]) {
			return 0
		}
		for i < len(b) && isDigitByte(b[i]) {
			i++
		}
		// the fractional dot needs a digit after it, so `0..10` stays
		// float, range operator, float
		if i+1 < len(b) && b[i] == '.' && isDigitByte(b[i+1]) {
			i++
			for i < len(b) && isDigitByte(b[i]) {
				i++
			}
		}
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '-' || b[j] == '+') {
			j++
		}
		if j >= len(b) || !isDigitByte(b[j]) {
			return i
		}
		for j < len(b) && isDigitByte(b[j]) {
			j++
		}
		i = j
	}
	return i
}

func isDigitByte(b byte) bool  { return b >= '0' && b <= '9' }
func isAsciiAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isAsciiAlnum(r rune) bool { return isAsciiAlpha(r) || (r >= '0' && r <= '9') }
func isAsciiSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
