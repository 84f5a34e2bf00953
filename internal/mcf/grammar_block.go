// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import "github.com/datapack-land/mcsyntax/internal/cst"

// blockState parses `resource_location [key=value,...]? {nbt}?`.
func blockState(p *Parser) {
	mk := p.Start(g(BlockState), cst.None)
	resourceLocation(p)
	blockStateTail(p)
	p.Finish(mk)
}

// blockPredicate is blockState with an optional leading `#` (a block
// tag).
func blockPredicate(p *Parser) {
	mk := p.Start(g(BlockState), cst.None)
	p.Eat(Hash)
	resourceLocation(p)
	blockStateTail(p)
	p.Finish(mk)
}

func blockStateTail(p *Parser) {
	if p.At(LBracket) {
		argmk := p.Start(g(BlockStateArguments), cst.Skip)
		p.Bump()
		if !p.At(RBracket) {
			for {
				uqString(p)
				p.Expect(Eq)
				uqString(p)
				if p.At(RBracket) {
					break
				}
				p.Expect(Comma)
				if p.AtEOF() {
					break
				}
			}
		}
		p.Expect(RBracket)
		p.Finish(argmk)
	}
	if p.At(LCurly) {
		nbtCompound(p)
	}
}
