// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import "github.com/datapack-land/mcsyntax/internal/cst"

// Coordinates are whitespace-separated parts, each `(~|^)? float?`. The
// last part of a triple may be empty at line end ("~ ~ " is a valid
// prefix while typing), so it tolerates EOF where the others expect a
// float.

func coord2(p *Parser) {
	mk := p.Start(g(Coord), cst.None)
	pmk := p.Start(g(CoordPart), cst.None)
	p.EatTokens(coordModifier)
	if !p.At(Whitespace) {
		float(p)
	}
	p.Finish(pmk)
	p.Expect(Whitespace)
	pmk = p.Start(g(CoordPart), cst.None)
	p.EatTokens(coordModifier)
	if !p.At(Whitespace) {
		float(p)
	}
	p.Finish(pmk)
	p.Finish(mk)
}

func coord(p *Parser) {
	mk := p.Start(g(Coord), cst.None)
	pmk := p.Start(g(CoordPart), cst.None)
	p.EatTokens(coordModifier)
	if !p.At(Whitespace) {
		float(p)
	}
	p.Finish(pmk)
	p.Expect(Whitespace)
	pmk = p.Start(g(CoordPart), cst.None)
	p.EatTokens(coordModifier)
	if !p.At(Whitespace) {
		float(p)
	}
	p.Finish(pmk)
	p.Expect(Whitespace)
	pmk = p.Start(g(CoordPart), cst.None)
	p.EatTokens(coordModifier)
	if !p.AtTokens(cst.NewTokenSet(Whitespace, Eof)) {
		float(p)
	}
	p.Finish(pmk)
	p.Finish(mk)
}
