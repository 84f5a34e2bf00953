// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package nbtdoc implements the lexer, grammar, and typed syntax tree
// for the nbtdoc schema language.
package nbtdoc

import "fmt"

// TokenKind enumerates every raw lexical token nbtdoc source can
// produce. Unlike mcfunction, keywords are distinguished by the lexer,
// and floats are a single token.
type TokenKind uint8

const (
	// single character punctuation
	Comma TokenKind = iota
	At
	Colon
	Bar
	Eq
	Slash
	Dot
	Semicolon
	// double character punctuation
	DotDot
	ColonColon
	// keyword tokens
	ByteKw
	ShortKw
	IntKw
	LongKw
	FloatKw
	DoubleKw
	StringKw
	BooleanKw
	ModKw
	CompoundKw
	EnumKw
	InjectKw
	SuperKw
	ExtendsKw
	ExportKw
	UseKw
	DescribesKw
	IdKw
	// delimiters
	LBracket
	RBracket
	LCurly
	RCurly
	LParen
	RParen
	// arbitrary length
	QuotedString // need not be terminated; ends at end of line
	Ident
	Whitespace
	Float
	Comment
	DocComment
	// other
	Invalid
	Eof
)

// IsKeyword reports whether the kind is one of the reserved words.
// IdKw is deliberately not included: `id` is only reserved in type
// position and may appear inside resource paths.
func (k TokenKind) IsKeyword() bool {
	switch k {
	case ByteKw, ShortKw, IntKw, LongKw, FloatKw, DoubleKw, StringKw, BooleanKw,
		ModKw, CompoundKw, EnumKw, InjectKw, SuperKw, ExtendsKw, ExportKw, UseKw,
		DescribesKw:
		return true
	}
	return false
}

func (k TokenKind) String() string {
	switch k {
	case Comma:
		return ","
	case At:
		return "@"
	case Colon:
		return ":"
	case Bar:
		return "|"
	case Eq:
		return "="
	case Slash:
		return "/"
	case Dot:
		return "."
	case Semicolon:
		return ";"
	case DotDot:
		return ".."
	case ColonColon:
		return "::"
	case ByteKw:
		return "byte"
	case ShortKw:
		return "short"
	case IntKw:
		return "int"
	case LongKw:
		return "long"
	case FloatKw:
		return "float"
	case DoubleKw:
		return "double"
	case StringKw:
		return "string"
	case BooleanKw:
		return "boolean"
	case ModKw:
		return "mod"
	case CompoundKw:
		return "compound"
	case EnumKw:
		return "enum"
	case InjectKw:
		return "inject"
	case SuperKw:
		return "super"
	case ExtendsKw:
		return "extends"
	case ExportKw:
		return "export"
	case UseKw:
		return "use"
	case DescribesKw:
		return "describes"
	case IdKw:
		return "id"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case LCurly:
		return "{"
	case RCurly:
		return "}"
	case LParen:
		return "("
	case RParen:
		return ")"
	case QuotedString:
		return "QuotedString"
	case Ident:
		return "Ident"
	case Whitespace:
		return "Whitespace"
	case Float:
		return "Float"
	case Comment:
		return "Comment"
	case DocComment:
		return "DocComment"
	case Invalid:
		return "Invalid"
	case Eof:
		return "EOF"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}
