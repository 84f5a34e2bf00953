// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import (
	"unicode"
	"unicode/utf8"

	"github.com/datapack-land/mcsyntax/internal/cst"
	"github.com/datapack-land/mcsyntax/internal/runescan"
)

// punct is tried longest-match-first, exactly mirroring the double-char
// operators (.. <= >= >< += -= *= /= %=) taking precedence over their
// single-char prefixes.
var punct = []struct {
	s string
	k TokenKind
}{
	{"..", DotDot},
	{"<=", Lte},
	{">=", Gte},
	{"><", Swap},
	{"+=", AddAssign},
	{"-=", SubAssign},
	{"*=", MulAssign},
	{"/=", DivAssign},
	{"%=", ModAssign},

	{",", Comma},
	{".", Dot},
	{":", Colon},
	{";", Semicolon},
	{"@", At},
	{"!", Excl},
	{"=", Eq},
	{"<", Lt},
	{">", Gt},
	{"/", Slash},
	{"~", Tilde},
	{"^", Caret},
	{"+", Plus},
	{"-", Dash},
	{"#", Hash},

	{"{", LCurly},
	{"}", RCurly},
	{"[", LBracket},
	{"]", RBracket},
}

// Tokenize lexes src into one token slice per line, each terminated by a
// zero-width Eof token. mcfunction treats every line independently: a
// malformed line never desynchronizes the next one.
func Tokenize(src []byte) [][]cst.Token[TokenKind] {
	c := runescan.New(src)
	var lines [][]cst.Token[TokenKind]
	var cur []cst.Token[TokenKind]

	push := func(kind TokenKind, startLine, startCol, startPos int) {
		cur = append(cur, cst.Token[TokenKind]{
			Kind: kind,
			Span: cst.NewSpan(cst.LineCol{Line: startLine, Col: startCol}, cst.LineCol{Line: c.Line, Col: c.Col}),
			Byte: cst.ByteSpan{Start: startPos, End: c.Pos},
		})
	}

	for !c.AtEOF() {
		startLine, startCol, startPos := c.Line, c.Col, c.Pos

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
			for isAsciiAlpha(c.Current()) || c.Current() == '_' {
				c.Advance()
			}
			push(Word, startLine, startCol, startPos)
		case isAsciiDigit(ch):
			for isAsciiDigit(c.Current()) {
				c.Advance()
			}
			push(Digits, startLine, startCol, startPos)
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
		case ch == '\r':
			c.Advance()
			if c.Current() == '\n' {
				c.Advance()
			}
			push(Eof, startLine, startCol, startPos)
			lines = append(lines, cur)
			cur = nil
		case ch == '\n':
			c.Advance()
			push(Eof, startLine, startCol, startPos)
			lines = append(lines, cur)
			cur = nil
		case unicode.IsSpace(ch):
			for {
				cc := c.Current()
				if cc == runescan.EOFRune || cc == '\r' || cc == '\n' || !unicode.IsSpace(cc) {
					break
				}
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
	cur = append(cur, cst.Token[TokenKind]{
		Kind: Eof,
		Span: cst.NewSpan(cst.LineCol{Line: c.Line, Col: c.Col}, cst.LineCol{Line: c.Line, Col: c.Col}),
		Byte: cst.ByteSpan{Start: pos, End: pos},
	})
	lines = append(lines, cur)
	return lines
}

func isAsciiAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isAsciiDigit(r rune) bool { return r >= '0' && r <= '9' }
