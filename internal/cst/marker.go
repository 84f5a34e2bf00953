// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

// StartInfo selects the whitespace policy a node opens with.
//
//   - None disables whitespace skipping inside the node; the grammar sees
//     (and must consume) every token. Used where layout is significant,
//     like mcfunction's argument separators.
//   - Skip makes lookahead and bump pass over whitespace tokens inside
//     the node, consuming them eagerly into the tree, for group-shaped
//     productions like NBT compounds where layout is insignificant.
//   - Join also disables skipping and additionally marks the node as a
//     Joined token: its children are asserted to be lexically contiguous
//     (floats, resource locations, unquoted strings).
type StartInfo int

const (
	None StartInfo = iota
	Skip
	Join
)

// Marker identifies an open, unfinished node in the event stream. It must
// be consumed by exactly one of Parser.Finish, Parser.Cancel, or (for
// nodes that stay open) left for Parser.Retype followed by one of those
// two. An un-consumed Marker panics when garbage collected; see dropbomb.go.
type Marker[T Kind, G comparable] struct {
	eventIdx  int
	savedToks []Token[T]
	savedPos  int
	savedSkip bool
	bomb      *dropBomb
}
