// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package mcf implements the lexer, grammar, and typed syntax tree for
// the mcfunction command language.
package mcf

import "fmt"

// TokenKind enumerates every raw lexical token mcfunction source can
// produce. Order matches the PUNCT table precedence (longest match
// first) mcf's lexer tries them in.
type TokenKind uint8

const (
	DotDot TokenKind = iota
	Lte
	Gte
	Swap
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign

	Comma
	Dot
	Colon
	Semicolon
	At
	Excl
	Eq
	Lt
	Gt
	Slash
	Tilde
	Caret
	Plus
	Dash
	Hash

	LCurly
	RCurly
	LBracket
	RBracket

	Word
	Digits
	QuotedString
	Whitespace
	Invalid
	Eof
)

func (k TokenKind) String() string {
	switch k {
	case DotDot:
		return ".."
	case Lte:
		return "<="
	case Gte:
		return ">="
	case Swap:
		return "><"
	case AddAssign:
		return "+="
	case SubAssign:
		return "-="
	case MulAssign:
		return "*="
	case DivAssign:
		return "/="
	case ModAssign:
		return "%="
	case Comma:
		return ","
	case Dot:
		return "."
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case At:
		return "@"
	case Excl:
		return "!"
	case Eq:
		return "="
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Slash:
		return "/"
	case Tilde:
		return "~"
	case Caret:
		return "^"
	case Plus:
		return "+"
	case Dash:
		return "-"
	case Hash:
		return "#"
	case LCurly:
		return "{"
	case RCurly:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Word:
		return "Word"
	case Digits:
		return "Digits"
	case QuotedString:
		return "QuotedString"
	case Whitespace:
		return "Whitespace"
	case Invalid:
		return "Invalid"
	case Eof:
		return "Eof"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}
