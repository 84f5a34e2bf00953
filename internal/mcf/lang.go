// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import "github.com/datapack-land/mcsyntax/internal/cst"

// The engine instantiated for mcfunction. Whitespace stays significant
// at the top level (it separates command arguments); productions that
// want insignificant layout open their own Skip scopes.
type (
	Parser      = cst.Parser[TokenKind, Group]
	TokenParser = cst.TokenParser[TokenKind, Group]
	Marker      = cst.Marker[TokenKind, Group]
	Token       = cst.Token[TokenKind]
	TokenSet    = cst.TokenSet[TokenKind]
	Keyword     = cst.Keyword[Group]
	Ast         = cst.Ast[TokenKind, Group]
	View        = cst.View[TokenKind, Group]
)

var lang = cst.Lang[TokenKind, Group]{
	EOF:        Eof,
	Word:       Word,
	Whitespace: cst.NewTokenSet(Whitespace),
	ErrorGroup: g(Error),
}
