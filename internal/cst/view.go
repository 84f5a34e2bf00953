// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

// View is a borrowed cursor into an Ast: a pointer to the tree plus the
// index of one node in it. Concrete languages build typed wrappers
// around View (internal/mcf and internal/nbtdoc's cst.go files) rather
// than the macro-generated wrapper structs the original engine used,
// since Go has no macros — each typed accessor is a small hand-written
// predicate-plus-constructor pair instead.
type View[T Kind, G comparable] struct {
	Ast *Ast[T, G]
	Idx Index
}

// Node returns the arena entry this view points at.
func (v View[T, G]) Node() Node[T, G] {
	return v.Ast.Node(v.Idx)
}

// Text returns the exact source text spanned by this view.
func (v View[T, G]) Text() string {
	return v.Ast.Text(v.Idx)
}

// Span returns the view's line/column span.
func (v View[T, G]) Span() Span {
	return v.Node().Span
}

// Children returns a View for each direct child of this node.
func (v View[T, G]) Children() []View[T, G] {
	kids := v.Node().Children
	out := make([]View[T, G], len(kids))
	for i, k := range kids {
		out[i] = View[T, G]{Ast: v.Ast, Idx: k}
	}
	return out
}

// FirstChild returns the first direct child satisfying pred, if any.
func (v View[T, G]) FirstChild(pred func(Node[T, G]) bool) (View[T, G], bool) {
	for _, k := range v.Node().Children {
		if pred(v.Ast.Node(k)) {
			return View[T, G]{Ast: v.Ast, Idx: k}, true
		}
	}
	return View[T, G]{}, false
}

// NextSibling returns the sibling immediately after v among their shared
// parent's children, if one exists.
func (v View[T, G]) NextSibling() (View[T, G], bool) {
	parent := v.Node().Parent
	if parent < 0 {
		return View[T, G]{}, false
	}
	kids := v.Ast.Node(parent).Children
	if i := v.Node().Sibling; i+1 < len(kids) {
		return View[T, G]{Ast: v.Ast, Idx: kids[i+1]}, true
	}
	return View[T, G]{}, false
}

// PrevSibling returns the sibling immediately before v, if one exists.
func (v View[T, G]) PrevSibling() (View[T, G], bool) {
	parent := v.Node().Parent
	if parent < 0 {
		return View[T, G]{}, false
	}
	kids := v.Ast.Node(parent).Children
	if i := v.Node().Sibling; i > 0 {
		return View[T, G]{Ast: v.Ast, Idx: kids[i-1]}, true
	}
	return View[T, G]{}, false
}

// Parent returns the view's parent node, if v is not the root.
func (v View[T, G]) Parent() (View[T, G], bool) {
	parent := v.Node().Parent
	if parent < 0 {
		return View[T, G]{}, false
	}
	return View[T, G]{Ast: v.Ast, Idx: parent}, true
}

// LastChild returns the last direct child satisfying pred, if any.
func (v View[T, G]) LastChild(pred func(Node[T, G]) bool) (View[T, G], bool) {
	kids := v.Node().Children
	for i := len(kids) - 1; i >= 0; i-- {
		if pred(v.Ast.Node(kids[i])) {
			return View[T, G]{Ast: v.Ast, Idx: kids[i]}, true
		}
	}
	return View[T, G]{}, false
}

// IsGroup reports whether this node is a Group or Joined node of the
// given kind.
func (v View[T, G]) IsGroup(group G) bool {
	n := v.Node()
	return (n.Shape == ShapeGroup || n.Shape == ShapeJoined) && n.Group == group
}

// IsToken reports whether this node is a Token leaf of the given kind.
func (v View[T, G]) IsToken(kind T) bool {
	n := v.Node()
	return n.Shape == ShapeToken && n.Tok.Kind == kind
}

// GroupChild returns the first direct child that is a Group/Joined node
// of the given kind.
func (v View[T, G]) GroupChild(group G) (View[T, G], bool) {
	return v.FirstChild(func(n Node[T, G]) bool {
		return (n.Shape == ShapeGroup || n.Shape == ShapeJoined) && n.Group == group
	})
}

// TokenChild returns the first direct child that is a Token leaf of the
// given kind.
func (v View[T, G]) TokenChild(kind T) (View[T, G], bool) {
	return v.FirstChild(func(n Node[T, G]) bool {
		return n.Shape == ShapeToken && n.Tok.Kind == kind
	})
}
