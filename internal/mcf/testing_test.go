// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import (
	"fmt"
	"strings"

	"github.com/datapack-land/mcsyntax/internal/cst"
)

// parseSingle runs one grammar production over a single line of source,
// for testing productions in isolation from the dispatcher.
func parseSingle(src string, f func(p *Parser)) *Ast {
	toks := Tokenize([]byte(src))
	p := cst.NewParser(lang, toks[0], []byte(src), g(File), false)
	f(p)
	return p.Build(true)
}

// leafConcat rebuilds the source from token leaves — the lossless
// coverage property.
func leafConcat(ast *Ast) string {
	var sb strings.Builder
	var walk func(idx cst.Index)
	walk = func(idx cst.Index) {
		n := ast.Node(idx)
		if n.Shape == cst.ShapeToken {
			sb.WriteString(ast.Text(idx))
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(ast.Root)
	return sb.String()
}

// findGroup returns the first node of the given group type in preorder.
func findGroup(ast *Ast, t GroupType) (View, bool) {
	var found View
	var ok bool
	var walk func(idx cst.Index)
	walk = func(idx cst.Index) {
		if ok {
			return
		}
		n := ast.Node(idx)
		if (n.Shape == cst.ShapeGroup || n.Shape == cst.ShapeJoined) && n.Group.Type == t {
			found, ok = View{Ast: ast, Idx: idx}, true
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(ast.Root)
	return found, ok
}

// formatAst renders the tree for failure messages.
func formatAst(ast *Ast) string {
	var sb strings.Builder
	var walk func(idx cst.Index, depth int)
	walk = func(idx cst.Index, depth int) {
		n := ast.Node(idx)
		sb.WriteString(strings.Repeat("  ", depth))
		switch n.Shape {
		case cst.ShapeRoot:
			fmt.Fprintf(&sb, "Root(%v)\n", n.Group)
		case cst.ShapeGroup:
			fmt.Fprintf(&sb, "Group(%v)\n", n.Group)
		case cst.ShapeJoined:
			fmt.Fprintf(&sb, "Joined(%v) %q\n", n.Group, ast.Text(idx))
		case cst.ShapeToken:
			fmt.Fprintf(&sb, "Token(%v) %q\n", n.Tok.Kind, ast.Text(idx))
		case cst.ShapeError:
			fmt.Fprintf(&sb, "Error(%v)\n", n.Err)
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(ast.Root, 0)
	return sb.String()
}
