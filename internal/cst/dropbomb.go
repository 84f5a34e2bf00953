// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

import "runtime"

// dropBomb emulates the original parser's Drop-based assertion that every
// Marker is finished, cancelled, or retyped before it goes out of scope.
// Go has no destructors, so the closest faithful approximation is a GC
// finalizer: if a bomb is collected while still armed, something forgot
// to call finish/cancel on its Marker, and that is a programming error in
// a grammar production, not a recoverable condition.
type dropBomb struct {
	msg     string
	defused bool
}

func newDropBomb(msg string) *dropBomb {
	b := &dropBomb{msg: msg}
	runtime.SetFinalizer(b, func(b *dropBomb) {
		if !b.defused {
			panic("marker dropped without finish or cancel: " + b.msg)
		}
	})
	return b
}

func (b *dropBomb) defuse() {
	b.defused = true
	runtime.SetFinalizer(b, nil)
}
