// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import "github.com/datapack-land/mcsyntax/internal/cst"

var selectorTypeKw = []Keyword{
	{Text: "p", Group: g(SelectorModP)},
	{Text: "a", Group: g(SelectorModA)},
	{Text: "r", Group: g(SelectorModR)},
	{Text: "s", Group: g(SelectorModS)},
	{Text: "e", Group: g(SelectorModE)},
}

// gameProfile accepts a UUID or a player name.
func gameProfile(p *Parser) {
	mk := p.Start(g(Selector), cst.None)
	if !p.TryToken(g(UUID), uuidTk) {
		uqString(p)
	}
	p.Finish(mk)
}

// entity accepts `@x[...]`, a UUID, or a player name.
func entity(p *Parser) {
	mk := p.Start(g(Selector), cst.None)
	if p.At(At) {
		selector(p)
	} else if !p.TryToken(g(UUID), uuidTk) {
		uqString(p)
	}
	p.Finish(mk)
}

// scoreHolder additionally allows the `#fakeplayer` spelling, so the
// fallback consumes everything up to the next separator.
func scoreHolder(p *Parser) {
	mk := p.Start(g(Selector), cst.None)
	if p.At(At) {
		selector(p)
	} else if !p.TryToken(g(UUID), uuidTk) {
		nmp := p.Start(g(UnquotedString), cst.Join)
		for !p.At(Whitespace) && !p.AtEOF() {
			p.Bump()
		}
		p.Finish(nmp)
	}
	p.Finish(mk)
}

func selector(p *Parser) {
	p.Expect(At)
	if !p.ExpectKeyword(selectorTypeKw) {
		p.BumpRecover(TokenSet{})
	}
	if p.At(LBracket) {
		argsmk := p.Start(g(SelectorArgument), cst.Skip)
		p.Bump()
		if !p.At(RBracket) {
			for {
				argmk := p.Start(g(SelectorArgumentEntry), cst.Skip)
				uqString(p)
				p.Expect(Eq)
				selectorArgValue(p)
				p.Finish(argmk)
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
		p.Finish(argsmk)
	}
}

// selectorArgValue parses the right side of a selector argument: an
// optionally negated quoted string, nested map, range, or resource
// location.
func selectorArgValue(p *Parser) {
	p.Eat(Excl)
	if p.At(QuotedString) {
		p.Bump()
	} else if p.At(LCurly) {
		mapmk := p.Start(g(SelectorArgumentMap), cst.Skip)
		p.Bump()
		if !p.At(RCurly) {
			for {
				argmk := p.Start(g(SelectorArgumentMapEntry), cst.Skip)
				resourceLocation(p)
				p.Expect(Eq)
				selectorArgValue(p)
				p.Finish(argmk)
				if p.At(RCurly) {
					break
				}
				p.Expect(Comma)
				if p.AtEOF() {
					break
				}
			}
		}
		p.Expect(RCurly)
		p.Finish(mapmk)
	} else {
		if !tryRangeSuffix(p) {
			resourceLocation(p)
		}
	}
}

// tryRangeSuffix parses a range only if nothing string-like follows it:
// `1..17.5` is a range, but `1..17.5x` must stay a resource location.
func tryRangeSuffix(p *Parser) bool {
	mk := p.Start(g(Range), cst.None)
	if p.Eat(DotDot) {
		if !p.TryToken(g(Float), floatTk) {
			p.Cancel(mk)
			return false
		}
	} else {
		if !p.TryToken(g(Float), floatTk) {
			p.Cancel(mk)
			return false
		}
		if p.Eat(DotDot) {
			p.TryToken(g(Float), floatTk)
		}
	}
	if p.AtTokens(allowedUqString) {
		p.Cancel(mk)
		return false
	}
	p.Finish(mk)
	return true
}
