// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/datapack-land/mcsyntax/internal/cst"
)

// printAst renders a CST as an indented tree, one node per line with
// its span; token and joined leaves show their source text.
func printAst[T cst.Kind, G comparable](w io.Writer, ast *cst.Ast[T, G]) {
	var walk func(idx cst.Index, depth int)
	walk = func(idx cst.Index, depth int) {
		n := ast.Node(idx)
		pad := strings.Repeat("  ", depth)
		switch n.Shape {
		case cst.ShapeRoot:
			fmt.Fprintf(w, "%sRoot(%v) %s\n", pad, n.Group, n.Span)
		case cst.ShapeGroup:
			fmt.Fprintf(w, "%sGroup(%v) %s\n", pad, n.Group, n.Span)
		case cst.ShapeJoined:
			fmt.Fprintf(w, "%sJoined(%v) %s %q\n", pad, n.Group, n.Span, ast.Text(idx))
		case cst.ShapeToken:
			fmt.Fprintf(w, "%sToken(%v) %s %q\n", pad, n.Tok.Kind, n.Span, ast.Text(idx))
		case cst.ShapeError:
			fmt.Fprintf(w, "%sError %s: %v\n", pad, n.Span, n.Err)
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(ast.Root, 0)
}

// countNodes reports total nodes and error nodes.
func countNodes[T cst.Kind, G comparable](ast *cst.Ast[T, G]) (nodes, errors int) {
	return ast.Len(), len(ast.Errors())
}
