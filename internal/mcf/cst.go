// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import (
	"github.com/google/uuid"

	"github.com/datapack-land/mcsyntax/internal/commands"
	"github.com/datapack-land/mcsyntax/internal/cst"
)

// Typed wrappers over engine views. Each shape declares a cast predicate
// and accessors that pick typed children; unions (LineNode, NbtValueNode)
// dispatch on the underlying kind. In the original these were
// macro-generated owned/borrowed pairs; Go's garbage collector makes the
// distinction moot — a View's *Ast pointer keeps the tree alive — so one
// wrapper per shape suffices.

func isGroupType(v View, t GroupType) bool {
	n := v.Node()
	return (n.Shape == cst.ShapeGroup || n.Shape == cst.ShapeJoined) && n.Group.Type == t
}

func isTokenKind(v View, k TokenKind) bool {
	n := v.Node()
	return n.Shape == cst.ShapeToken && n.Tok.Kind == k
}

func groupChild(v View, t GroupType) (View, bool) {
	return v.FirstChild(func(n cst.Node[TokenKind, Group]) bool {
		return (n.Shape == cst.ShapeGroup || n.Shape == cst.ShapeJoined) && n.Group.Type == t
	})
}

// FileNode is the root of a parsed mcfunction file.
type FileNode struct{ v View }

// FileOf wraps an Ast produced by CommandParser.Parse.
func FileOf(ast *Ast) FileNode {
	return FileNode{v: ast.View()}
}

func (f FileNode) View() View { return f.v }

// Lines returns every Command and Comment in the file, in order.
func (f FileNode) Lines() []LineNode {
	var out []LineNode
	for _, c := range f.v.Children() {
		switch {
		case isGroupType(c, CommandGroup):
			out = append(out, CommandNode{v: c})
		case isGroupType(c, CommentGroup):
			out = append(out, CommentNode{v: c})
		}
	}
	return out
}

// LineNode is one line of a file: a CommandNode or a CommentNode.
type LineNode interface {
	View() View
	isLine()
}

// CommentNode is a `# ...` line.
type CommentNode struct{ v View }

func (c CommentNode) View() View { return c.v }
func (c CommentNode) isLine()    {}

// Text returns the comment's source text including the hash.
func (c CommentNode) Text() string { return c.v.Text() }

// CommandNode is a parsed command line.
type CommandNode struct{ v View }

func (c CommandNode) View() View { return c.v }
func (c CommandNode) isLine()    {}

// Nodes returns the command-node groups the dispatcher matched, in walk
// order.
func (c CommandNode) Nodes() []CommandNodePart {
	var out []CommandNodePart
	for _, ch := range c.v.Children() {
		if isGroupType(ch, CommandNodeGroup) {
			out = append(out, CommandNodePart{v: ch})
		}
	}
	return out
}

// CommandNodePart is one matched schema node inside a command. It
// carries the schema index the dispatcher matched, so consumers can
// recover the Command definition without re-walking the schema.
type CommandNodePart struct{ v View }

func (c CommandNodePart) View() View { return c.v }

func (c CommandNodePart) Index() commands.Index {
	return c.v.Node().Group.Cmd
}

// Command resolves the matched schema node.
func (c CommandNodePart) Command(cmds *commands.Commands) *commands.Command {
	return cmds.At(c.Index())
}

// NbtValue returns the argument's NBT value, when this node holds one.
func (c CommandNodePart) NbtValue() (NbtValueNode, bool) {
	for _, ch := range c.v.Children() {
		if nv, ok := AsNbtValue(ch); ok {
			return nv, true
		}
	}
	return nil, false
}

// Selector returns the argument's selector, when this node holds one.
func (c CommandNodePart) Selector() (SelectorNode, bool) {
	if v, ok := groupChild(c.v, Selector); ok {
		return SelectorNode{v: v}, true
	}
	return SelectorNode{}, false
}

// SelectorNode is `@x[...]`, a UUID, or a plain name.
type SelectorNode struct{ v View }

func (s SelectorNode) View() View { return s.v }

// Args returns the selector's argument entries, if any.
func (s SelectorNode) Args() []SelectorArgumentEntryNode {
	var out []SelectorArgumentEntryNode
	if args, ok := groupChild(s.v, SelectorArgument); ok {
		for _, ch := range args.Children() {
			if isGroupType(ch, SelectorArgumentEntry) {
				out = append(out, SelectorArgumentEntryNode{v: ch})
			}
		}
	}
	return out
}

// UUID parses the selector's UUID spelling, when it has one.
func (s SelectorNode) UUID() (uuid.UUID, bool) {
	v, ok := groupChild(s.v, UUID)
	if !ok {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(v.Text())
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

// SelectorArgumentEntryNode is one `key=value` pair.
type SelectorArgumentEntryNode struct{ v View }

func (e SelectorArgumentEntryNode) View() View { return e.v }

// Key returns the entry's key spelling.
func (e SelectorArgumentEntryNode) Key() (string, bool) {
	if v, ok := groupChild(e.v, UnquotedString); ok {
		return v.Text(), true
	}
	return "", false
}

// NbtValueNode is one SNBT value: a compound, sequence, number, boolean,
// or string.
type NbtValueNode interface {
	View() View
	isNbtValue()
}

// AsNbtValue casts a view to the NBT value union.
func AsNbtValue(v View) (NbtValueNode, bool) {
	switch {
	case isGroupType(v, NbtCompound):
		return NbtCompoundNode{v: v}, true
	case isGroupType(v, NbtSequence):
		return NbtSequenceNode{v: v}, true
	case isGroupType(v, NbtNumber):
		return NbtNumberNode{v: v}, true
	case isGroupType(v, NbtBoolean):
		return NbtBooleanNode{v: v}, true
	case isTokenKind(v, QuotedString), isGroupType(v, UnquotedString):
		return NbtStringNode{v: v}, true
	}
	return nil, false
}

type NbtCompoundNode struct{ v View }

func (n NbtCompoundNode) View() View  { return n.v }
func (n NbtCompoundNode) isNbtValue() {}

func (n NbtCompoundNode) Entries() []NbtCompoundEntryNode {
	var out []NbtCompoundEntryNode
	for _, ch := range n.v.Children() {
		if isGroupType(ch, NbtCompoundEntry) {
			out = append(out, NbtCompoundEntryNode{v: ch})
		}
	}
	return out
}

type NbtCompoundEntryNode struct{ v View }

func (e NbtCompoundEntryNode) View() View { return e.v }

// Key returns the entry's key: a quoted-string token or an unquoted
// string.
func (e NbtCompoundEntryNode) Key() (NbtStringNode, bool) {
	for _, ch := range e.v.Children() {
		if isTokenKind(ch, QuotedString) || isGroupType(ch, UnquotedString) {
			return NbtStringNode{v: ch}, true
		}
	}
	return NbtStringNode{}, false
}

// Value returns the entry's value. The key is itself string-shaped, so
// the search starts after the separating colon.
func (e NbtCompoundEntryNode) Value() (NbtValueNode, bool) {
	seenColon := false
	for _, ch := range e.v.Children() {
		if isTokenKind(ch, Colon) {
			seenColon = true
			continue
		}
		if !seenColon {
			continue
		}
		if nv, ok := AsNbtValue(ch); ok {
			return nv, true
		}
	}
	return nil, false
}

// NbtSequenceType discriminates `[...]` sequences by their prefix.
type NbtSequenceType uint8

const (
	SeqList NbtSequenceType = iota
	SeqByteArray
	SeqIntArray
	SeqLongArray
	SeqErrorArray
)

type NbtSequenceNode struct{ v View }

func (n NbtSequenceNode) View() View  { return n.v }
func (n NbtSequenceNode) isNbtValue() {}

// SeqType inspects the `B;`/`I;`/`L;` prefix: a semicolon preceded by an
// unknown prefix is an ErrorArray, no semicolon means a plain list.
func (n NbtSequenceNode) SeqType() NbtSequenceType {
	semi, ok := n.v.FirstChild(func(nd cst.Node[TokenKind, Group]) bool {
		return nd.Shape == cst.ShapeToken && nd.Tok.Kind == Semicolon
	})
	if !ok {
		return SeqList
	}
	prev, ok := semi.PrevSibling()
	if !ok {
		return SeqErrorArray
	}
	switch {
	case isGroupType(prev, NbtPrefixB):
		return SeqByteArray
	case isGroupType(prev, NbtPrefixI):
		return SeqIntArray
	case isGroupType(prev, NbtPrefixL):
		return SeqLongArray
	}
	return SeqErrorArray
}

func (n NbtSequenceNode) Entries() []NbtValueNode {
	var out []NbtValueNode
	for _, ch := range n.v.Children() {
		if nv, ok := AsNbtValue(ch); ok {
			out = append(out, nv)
		}
	}
	return out
}

type NbtBooleanNode struct{ v View }

func (n NbtBooleanNode) View() View  { return n.v }
func (n NbtBooleanNode) isNbtValue() {}

// Value returns the boolean's value, false-false for a malformed node.
func (n NbtBooleanNode) Value() (bool, bool) {
	switch n.v.Text() {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

type NbtStringNode struct{ v View }

func (n NbtStringNode) View() View  { return n.v }
func (n NbtStringNode) isNbtValue() {}

// Raw returns the string's source spelling, quotes included.
func (n NbtStringNode) Raw() string { return n.v.Text() }

type NbtNumberNode struct{ v View }

func (n NbtNumberNode) View() View  { return n.v }
func (n NbtNumberNode) isNbtValue() {}

func (n NbtNumberNode) suffixed(suffix GroupType) (string, bool) {
	if _, ok := n.v.LastChild(func(nd cst.Node[TokenKind, Group]) bool {
		return nd.Shape == cst.ShapeJoined && nd.Group.Type == suffix
	}); !ok {
		return "", false
	}
	if v, ok := groupChild(n.v, Float); ok {
		return v.Text(), true
	}
	return "", false
}

func (n NbtNumberNode) Byte() (string, bool)   { return n.suffixed(NbtSuffixB) }
func (n NbtNumberNode) Short() (string, bool)  { return n.suffixed(NbtSuffixS) }
func (n NbtNumberNode) Long() (string, bool)   { return n.suffixed(NbtSuffixL) }
func (n NbtNumberNode) Float() (string, bool)  { return n.suffixed(NbtSuffixF) }
func (n NbtNumberNode) Double() (string, bool) { return n.suffixed(NbtSuffixD) }

// Untagged returns the number's spelling when it carries no suffix.
func (n NbtNumberNode) Untagged() (string, bool) {
	kids := n.v.Children()
	if len(kids) != 1 {
		return "", false
	}
	if v, ok := groupChild(n.v, Float); ok {
		return v.Text(), true
	}
	return "", false
}
