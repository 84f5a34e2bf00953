// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package cst implements a generic, language-agnostic engine for building
// lossless Concrete Syntax Trees.
//
// A CST retains every byte of the source, including whitespace and
// malformed input: walking the tree and concatenating token text recovers
// the original source exactly. The engine is driven by an event stream
// (Start/End/Token/Error) recorded while a hand-written recursive-descent
// grammar walks the token list; the events are replayed once parsing
// finishes to build a flat arena of nodes.
//
// This package has no knowledge of any concrete language. internal/mcf and
// internal/nbtdoc instantiate Parser with their own token kind and group
// type to build the mcfunction and nbtdoc grammars on top of it.
package cst
