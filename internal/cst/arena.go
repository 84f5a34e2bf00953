// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

// Index is a typed reference into an Ast's node arena. The zero Index
// refers to the tree's root, matching how buildAst allocates it first.
type Index int

// Shape discriminates the five node kinds the builder can produce,
// mirroring the original engine's SyntaxKind: Root, Group, Joined, a
// single Token leaf, or an Error leaf.
type Shape int

const (
	ShapeRoot Shape = iota
	ShapeGroup
	ShapeJoined
	ShapeToken
	ShapeError
)

// Node is one entry in an Ast's arena. Exactly the fields relevant to
// Shape are meaningful: Group for Root/Group/Joined, Tok for Token, Err
// for Error.
type Node[T Kind, G comparable] struct {
	Shape    Shape
	Group    G
	Tok      Token[T]
	Err      ParseError[T, G]
	Span     Span
	Byte     ByteSpan
	Parent   Index
	Sibling  int
	Children []Index
}

// Ast is the flat, arena-backed Concrete Syntax Tree produced by
// Parser.Build. Every byte of the source the parser consumed is
// accounted for by exactly one Token leaf, reachable by walking from
// Root.
type Ast[T Kind, G comparable] struct {
	nodes  []Node[T, G]
	errors []Index
	Root   Index
	src    []byte
}

// Node returns the arena entry at idx.
func (a *Ast[T, G]) Node(idx Index) Node[T, G] {
	return a.nodes[idx]
}

// Source returns the original source buffer the tree was built over.
func (a *Ast[T, G]) Source() []byte {
	return a.src
}

// Text returns the exact source text spanned by idx.
func (a *Ast[T, G]) Text(idx Index) string {
	n := a.nodes[idx]
	return n.Byte.Text(a.src)
}

// Len reports the number of nodes in the arena, including Root.
func (a *Ast[T, G]) Len() int {
	return len(a.nodes)
}

// Errors returns a View for every Error node, in source order. Empty
// when the tree was built with saveErrors false.
func (a *Ast[T, G]) Errors() []View[T, G] {
	out := make([]View[T, G], len(a.errors))
	for i, idx := range a.errors {
		out[i] = View[T, G]{Ast: a, Idx: idx}
	}
	return out
}

// View returns a borrowed cursor at the tree's root.
func (a *Ast[T, G]) View() View[T, G] {
	return View[T, G]{Ast: a, Idx: a.Root}
}
