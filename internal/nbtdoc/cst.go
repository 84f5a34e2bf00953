// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package nbtdoc

import (
	"strings"

	"github.com/datapack-land/mcsyntax/internal/cst"
)

// Typed wrappers over engine views, one per grammar shape. Doc comments
// lex as trivia and sit as loose leaves before the node they document;
// the DocComments accessors below gather them from the preceding
// siblings, which is what "attach to the following item" means at the
// tree level.

func isGroupType(v View, t GroupType) bool {
	n := v.Node()
	return (n.Shape == cst.ShapeGroup || n.Shape == cst.ShapeJoined) && n.Group == t
}

func isTokenKind(v View, k TokenKind) bool {
	n := v.Node()
	return n.Shape == cst.ShapeToken && n.Tok.Kind == k
}

func groupChild(v View, t GroupType) (View, bool) {
	return v.GroupChild(t)
}

// docCommentsBefore collects the text of the contiguous run of
// DocComment leaves directly preceding v among its siblings, most
// recent last. Whitespace and plain comments in between are skipped;
// anything else breaks the run.
func docCommentsBefore(v View) []string {
	var backward []string
	cur := v
	for {
		prev, ok := cur.PrevSibling()
		if !ok {
			break
		}
		cur = prev
		n := cur.Node()
		if n.Shape == cst.ShapeToken {
			switch n.Tok.Kind {
			case DocComment:
				backward = append(backward, strings.TrimRight(cur.Text(), "\r\n"))
				continue
			case Whitespace, Comment:
				continue
			}
		}
		break
	}
	out := make([]string, 0, len(backward))
	for i := len(backward) - 1; i >= 0; i-- {
		out = append(out, backward[i])
	}
	return out
}

// FileNode is the root of a parsed nbtdoc file.
type FileNode struct{ v View }

// FileOf wraps an Ast produced by Parse.
func FileOf(ast *Ast) FileNode {
	if v, ok := ast.View().GroupChild(File); ok {
		return FileNode{v: v}
	}
	return FileNode{v: ast.View()}
}

func (f FileNode) View() View { return f.v }

func (f FileNode) Items() []ItemNode {
	var out []ItemNode
	for _, c := range f.v.Children() {
		if isGroupType(c, Item) {
			out = append(out, ItemNode{v: c})
		}
	}
	return out
}

// ItemNode is one top-level item; exactly one of the typed accessors
// returns true.
type ItemNode struct{ v View }

func (i ItemNode) View() View { return i.v }

// DocComments returns the doc comments written directly above the item.
func (i ItemNode) DocComments() []string {
	return docCommentsBefore(i.v)
}

func (i ItemNode) Compound() (CompoundNode, bool) {
	if v, ok := groupChild(i.v, CompoundDef); ok {
		return CompoundNode{v: v}, true
	}
	return CompoundNode{}, false
}

func (i ItemNode) Enum() (EnumNode, bool) {
	if v, ok := groupChild(i.v, EnumDef); ok {
		return EnumNode{v: v}, true
	}
	return EnumNode{}, false
}

func (i ItemNode) Mod() (ModNode, bool) {
	if v, ok := groupChild(i.v, ModDecl); ok {
		return ModNode{v: v}, true
	}
	return ModNode{}, false
}

func (i ItemNode) Use() (UseNode, bool) {
	if v, ok := groupChild(i.v, UseStatement); ok {
		return UseNode{v: v}, true
	}
	return UseNode{}, false
}

func (i ItemNode) CompoundInject() (CompoundInjectNode, bool) {
	if v, ok := groupChild(i.v, CompoundInject); ok {
		return CompoundInjectNode{v: v}, true
	}
	return CompoundInjectNode{}, false
}

func (i ItemNode) EnumInject() (EnumInjectNode, bool) {
	if v, ok := groupChild(i.v, EnumInject); ok {
		return EnumInjectNode{v: v}, true
	}
	return EnumInjectNode{}, false
}

func (i ItemNode) Describes() (DescribesNode, bool) {
	if v, ok := groupChild(i.v, DescribesStatement); ok {
		return DescribesNode{v: v}, true
	}
	return DescribesNode{}, false
}

// CompoundNode is `compound Name [extends ...] { fields }`.
type CompoundNode struct{ v View }

func (c CompoundNode) View() View { return c.v }

func (c CompoundNode) Name() (string, bool) {
	if v, ok := c.v.TokenChild(Ident); ok {
		return v.Text(), true
	}
	return "", false
}

func (c CompoundNode) Extends() (CompoundExtendsNode, bool) {
	if v, ok := groupChild(c.v, CompoundExtends); ok {
		return CompoundExtendsNode{v: v}, true
	}
	return CompoundExtendsNode{}, false
}

func (c CompoundNode) Fields() []CompoundFieldNode {
	return fieldsOf(c.v)
}

func fieldsOf(v View) []CompoundFieldNode {
	var out []CompoundFieldNode
	for _, ch := range v.Children() {
		if isGroupType(ch, CompoundField) {
			out = append(out, CompoundFieldNode{v: ch})
		}
	}
	return out
}

type CompoundExtendsNode struct{ v View }

func (e CompoundExtendsNode) View() View { return e.v }

func (e CompoundExtendsNode) IdentPath() (IdentPathNode, bool) {
	if v, ok := groupChild(e.v, IdentPath); ok {
		return IdentPathNode{v: v}, true
	}
	return IdentPathNode{}, false
}

func (e CompoundExtendsNode) RegistryIndex() (RegistryIndexNode, bool) {
	if v, ok := groupChild(e.v, RegistryIndex); ok {
		return RegistryIndexNode{v: v}, true
	}
	return RegistryIndexNode{}, false
}

// CompoundFieldNode is one `name: type` field.
type CompoundFieldNode struct{ v View }

func (f CompoundFieldNode) View() View { return f.v }

func (f CompoundFieldNode) DocComments() []string {
	return docCommentsBefore(f.v)
}

// Name returns the field's key spelling (quotes included for quoted
// keys).
func (f CompoundFieldNode) Name() (string, bool) {
	for _, ch := range f.v.Children() {
		if isTokenKind(ch, Ident) || isTokenKind(ch, QuotedString) {
			return ch.Text(), true
		}
		if isTokenKind(ch, Colon) {
			break
		}
	}
	return "", false
}

func (f CompoundFieldNode) Type() (FieldTypeNode, bool) {
	for _, ch := range f.v.Children() {
		if ft, ok := AsFieldType(ch); ok {
			return ft, true
		}
	}
	return nil, false
}

// FieldTypeNode is the union of the seven field-type shapes.
type FieldTypeNode interface {
	View() View
	isFieldType()
}

// AsFieldType casts a view to the field-type union.
func AsFieldType(v View) (FieldTypeNode, bool) {
	switch {
	case isGroupType(v, ScalarType):
		return ScalarTypeNode{v: v}, true
	case isGroupType(v, ArrayType):
		return ArrayTypeNode{v: v}, true
	case isGroupType(v, ListType):
		return ListTypeNode{v: v}, true
	case isGroupType(v, IdType):
		return IdTypeNode{v: v}, true
	case isGroupType(v, UnionType):
		return UnionTypeNode{v: v}, true
	case isGroupType(v, NamedType):
		return NamedTypeNode{v: v}, true
	case isGroupType(v, IndexType):
		return IndexTypeNode{v: v}, true
	}
	return nil, false
}

func primitiveOf(v View) (TokenKind, bool) {
	for _, ch := range v.Children() {
		n := ch.Node()
		if n.Shape == cst.ShapeToken && n.Tok.Kind >= ByteKw && n.Tok.Kind <= BooleanKw {
			return n.Tok.Kind, true
		}
	}
	return 0, false
}

func rangeOf(v View) (RangeNode, bool) {
	if r, ok := groupChild(v, Range); ok {
		return RangeNode{v: r}, true
	}
	return RangeNode{}, false
}

type ScalarTypeNode struct{ v View }

func (s ScalarTypeNode) View() View   { return s.v }
func (s ScalarTypeNode) isFieldType() {}

// Primitive returns the scalar's keyword kind (ByteKw..BooleanKw).
func (s ScalarTypeNode) Primitive() (TokenKind, bool) { return primitiveOf(s.v) }
func (s ScalarTypeNode) Range() (RangeNode, bool)     { return rangeOf(s.v) }

type ArrayTypeNode struct{ v View }

func (a ArrayTypeNode) View() View                   { return a.v }
func (a ArrayTypeNode) isFieldType()                 {}
func (a ArrayTypeNode) Primitive() (TokenKind, bool) { return primitiveOf(a.v) }

type ListTypeNode struct{ v View }

func (l ListTypeNode) View() View   { return l.v }
func (l ListTypeNode) isFieldType() {}

func (l ListTypeNode) Element() (FieldTypeNode, bool) {
	for _, ch := range l.v.Children() {
		if ft, ok := AsFieldType(ch); ok {
			return ft, true
		}
	}
	return nil, false
}

type IdTypeNode struct{ v View }

func (i IdTypeNode) View() View   { return i.v }
func (i IdTypeNode) isFieldType() {}

func (i IdTypeNode) Registry() (string, bool) {
	if v, ok := groupChild(i.v, MinecraftIdent); ok {
		return v.Text(), true
	}
	return "", false
}

type UnionTypeNode struct{ v View }

func (u UnionTypeNode) View() View   { return u.v }
func (u UnionTypeNode) isFieldType() {}

func (u UnionTypeNode) Members() []FieldTypeNode {
	var out []FieldTypeNode
	for _, ch := range u.v.Children() {
		if ft, ok := AsFieldType(ch); ok {
			out = append(out, ft)
		}
	}
	return out
}

type NamedTypeNode struct{ v View }

func (n NamedTypeNode) View() View   { return n.v }
func (n NamedTypeNode) isFieldType() {}

func (n NamedTypeNode) Path() (IdentPathNode, bool) {
	if v, ok := groupChild(n.v, IdentPath); ok {
		return IdentPathNode{v: v}, true
	}
	return IdentPathNode{}, false
}

type IndexTypeNode struct{ v View }

func (i IndexTypeNode) View() View   { return i.v }
func (i IndexTypeNode) isFieldType() {}

func (i IndexTypeNode) Index() (RegistryIndexNode, bool) {
	if v, ok := groupChild(i.v, RegistryIndex); ok {
		return RegistryIndexNode{v: v}, true
	}
	return RegistryIndexNode{}, false
}

// RangeNode is `@ a..b` and friends.
type RangeNode struct{ v View }

func (r RangeNode) View() View { return r.v }

// Bounds returns the range's low and high spellings; either may be
// empty for half-open ranges, and both equal for a single value.
func (r RangeNode) Bounds() (lo, hi string) {
	var floats []string
	sawDots := false
	for _, ch := range r.v.Children() {
		switch {
		case isTokenKind(ch, Float):
			floats = append(floats, ch.Text())
		case isTokenKind(ch, DotDot):
			sawDots = true
		}
	}
	switch {
	case !sawDots && len(floats) == 1:
		return floats[0], floats[0]
	case len(floats) == 2:
		return floats[0], floats[1]
	case len(floats) == 1:
		// `..b` when the dots came first, `a..` otherwise
		if first, ok := r.v.TokenChild(DotDot); ok {
			if f, okf := r.v.TokenChild(Float); okf && first.Node().Sibling < f.Node().Sibling {
				return "", floats[0]
			}
		}
		return floats[0], ""
	}
	return "", ""
}

// EnumNode is `enum(primitive) Name { entries }`.
type EnumNode struct{ v View }

func (e EnumNode) View() View { return e.v }

func (e EnumNode) Primitive() (TokenKind, bool) { return primitiveOf(e.v) }

func (e EnumNode) Name() (string, bool) {
	if v, ok := e.v.TokenChild(Ident); ok {
		return v.Text(), true
	}
	return "", false
}

func (e EnumNode) Entries() []EnumEntryNode {
	return entriesOf(e.v)
}

func entriesOf(v View) []EnumEntryNode {
	var out []EnumEntryNode
	for _, ch := range v.Children() {
		if isGroupType(ch, EnumEntry) {
			out = append(out, EnumEntryNode{v: ch})
		}
	}
	return out
}

// EnumEntryNode is one `Name = value` entry.
type EnumEntryNode struct{ v View }

func (e EnumEntryNode) View() View { return e.v }

func (e EnumEntryNode) DocComments() []string {
	return docCommentsBefore(e.v)
}

func (e EnumEntryNode) Name() (string, bool) {
	if v, ok := e.v.TokenChild(Ident); ok {
		return v.Text(), true
	}
	return "", false
}

// Value returns the entry's literal: a Float or QuotedString token.
func (e EnumEntryNode) Value() (string, bool) {
	if v, ok := e.v.TokenChild(Float); ok {
		return v.Text(), true
	}
	if v, ok := e.v.TokenChild(QuotedString); ok {
		return v.Text(), true
	}
	return "", false
}

type ModNode struct{ v View }

func (m ModNode) View() View { return m.v }

func (m ModNode) Name() (string, bool) {
	if v, ok := m.v.TokenChild(Ident); ok {
		return v.Text(), true
	}
	return "", false
}

type UseNode struct{ v View }

func (u UseNode) View() View { return u.v }

// Export reports whether the statement was `export use ...`.
func (u UseNode) Export() bool {
	_, ok := u.v.TokenChild(ExportKw)
	return ok
}

func (u UseNode) Path() (IdentPathNode, bool) {
	if v, ok := groupChild(u.v, IdentPath); ok {
		return IdentPathNode{v: v}, true
	}
	return IdentPathNode{}, false
}

type CompoundInjectNode struct{ v View }

func (c CompoundInjectNode) View() View { return c.v }

func (c CompoundInjectNode) Target() (IdentPathNode, bool) {
	if v, ok := groupChild(c.v, IdentPath); ok {
		return IdentPathNode{v: v}, true
	}
	return IdentPathNode{}, false
}

func (c CompoundInjectNode) Fields() []CompoundFieldNode {
	return fieldsOf(c.v)
}

type EnumInjectNode struct{ v View }

func (e EnumInjectNode) View() View { return e.v }

func (e EnumInjectNode) Primitive() (TokenKind, bool) { return primitiveOf(e.v) }

func (e EnumInjectNode) Target() (IdentPathNode, bool) {
	if v, ok := groupChild(e.v, IdentPath); ok {
		return IdentPathNode{v: v}, true
	}
	return IdentPathNode{}, false
}

func (e EnumInjectNode) Entries() []EnumEntryNode {
	return entriesOf(e.v)
}

type DescribesNode struct{ v View }

func (d DescribesNode) View() View { return d.v }

func (d DescribesNode) Compound() (IdentPathNode, bool) {
	if v, ok := groupChild(d.v, IdentPath); ok {
		return IdentPathNode{v: v}, true
	}
	return IdentPathNode{}, false
}

func (d DescribesNode) Registry() (string, bool) {
	if v, ok := groupChild(d.v, MinecraftIdent); ok {
		return v.Text(), true
	}
	return "", false
}

// Targets returns the described ids inside `= [...]`, absent when the
// statement describes the whole registry.
func (d DescribesNode) Targets() ([]string, bool) {
	body, ok := groupChild(d.v, DescribesBody)
	if !ok {
		return nil, false
	}
	var out []string
	for _, ch := range body.Children() {
		if isGroupType(ch, MinecraftIdent) {
			out = append(out, ch.Text())
		}
	}
	return out, true
}

// IdentPathNode is a `::`-separated path.
type IdentPathNode struct{ v View }

func (p IdentPathNode) View() View { return p.v }

// Segments returns the path's identifier spellings in order; `super`
// segments are included verbatim.
func (p IdentPathNode) Segments() []string {
	var out []string
	for _, ch := range p.v.Children() {
		if isTokenKind(ch, Ident) || isTokenKind(ch, SuperKw) {
			out = append(out, ch.Text())
		}
	}
	return out
}

// Rooted reports whether the path begins with `::`.
func (p IdentPathNode) Rooted() bool {
	kids := p.v.Children()
	return len(kids) > 0 && isTokenKind(kids[0], ColonColon)
}

// RegistryIndexNode is `registry:name[field.path]`.
type RegistryIndexNode struct{ v View }

func (r RegistryIndexNode) View() View { return r.v }

func (r RegistryIndexNode) Registry() (string, bool) {
	if v, ok := groupChild(r.v, MinecraftIdent); ok {
		return v.Text(), true
	}
	return "", false
}

func (r RegistryIndexNode) FieldPath() []string {
	var out []string
	if fp, ok := groupChild(r.v, FieldPath); ok {
		for _, ch := range fp.Children() {
			if isTokenKind(ch, Ident) || isTokenKind(ch, QuotedString) || isTokenKind(ch, SuperKw) {
				out = append(out, ch.Text())
			}
		}
	}
	return out
}
