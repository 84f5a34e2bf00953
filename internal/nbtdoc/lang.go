// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package nbtdoc

import "github.com/datapack-land/mcsyntax/internal/cst"

// The engine instantiated for nbtdoc. Comments and doc comments count as
// whitespace for the engine: most of the grammar runs in Skip scopes and
// passes over them, leaving doc comments as leaves ahead of the item or
// field they precede; the typed views in cst.go collect them from there.
type (
	Parser   = cst.Parser[TokenKind, GroupType]
	Token    = cst.Token[TokenKind]
	TokenSet = cst.TokenSet[TokenKind]
	Keyword  = cst.Keyword[GroupType]
	Ast      = cst.Ast[TokenKind, GroupType]
	View     = cst.View[TokenKind, GroupType]
)

var ndWhitespace = cst.NewTokenSet(Whitespace, Comment, DocComment)

var lang = cst.Lang[TokenKind, GroupType]{
	EOF:        Eof,
	Word:       Ident,
	Whitespace: ndWhitespace,
	ErrorGroup: Error,
}

// Parse builds the CST for one nbtdoc file.
func Parse(src []byte) *Ast {
	toks := Tokenize(src)
	p := cst.NewParser(lang, toks, src, File, false)
	file(p)
	// trailing trivia after the last item stays outside the File group
	// but inside the tree, keeping coverage lossless
	for p.EatTokens(ndWhitespace) {
	}
	return p.Build(true)
}
