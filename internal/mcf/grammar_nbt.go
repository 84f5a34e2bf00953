// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import "github.com/datapack-land/mcsyntax/internal/cst"

var nbtNumberSuffixKw = []Keyword{
	{Text: "b", Group: g(NbtSuffixB)},
	{Text: "s", Group: g(NbtSuffixS)},
	{Text: "l", Group: g(NbtSuffixL)},
	{Text: "f", Group: g(NbtSuffixF)},
	{Text: "d", Group: g(NbtSuffixD)},
}

var nbtSeqPrefixKw = []Keyword{
	{Text: "B", Group: g(NbtPrefixB)},
	{Text: "I", Group: g(NbtPrefixI)},
	{Text: "L", Group: g(NbtPrefixL)},
}

// nbtValue parses one SNBT value: a quoted string, compound, sequence
// (list or typed array), boolean, number, or — when all else fails — an
// unquoted string. A number directly followed by unquoted-string
// characters is reclassified as an unquoted string, so `1a` is a string,
// not a malformed byte.
func nbtValue(p *Parser) {
	if p.At(QuotedString) {
		p.Bump()
	} else if p.At(LCurly) {
		nbtCompound(p)
	} else if p.At(LBracket) {
		mk := p.Start(g(NbtSequence), cst.Skip)
		p.Bump()
		if p.Nth(1).Kind == Semicolon {
			if !p.ExpectKeyword(nbtSeqPrefixKw) {
				p.Bump()
			}
			p.Bump()
		}
		if !p.At(RBracket) {
			for {
				nbtValue(p)
				if !p.Eat(Comma) {
					break
				}
			}
		}
		p.Expect(RBracket)
		p.Finish(mk)
	} else if p.At(Word) && !allowedUqString.Contains(p.Nth(1).Kind) && p.AtKeyword(booleanKw) {
		mk := p.Start(g(NbtBoolean), cst.Join)
		p.Bump()
		p.Finish(mk)
	} else {
		nmk := p.Start(g(NbtNumber), cst.None)
		if !p.TryToken(g(Float), floatTk) {
			p.Cancel(nmk)
			uqString(p)
		} else {
			p.EatKeyword(nbtNumberSuffixKw)
			if p.AtTokens(allowedUqString) {
				p.Cancel(nmk)
				uqString(p)
			} else {
				p.Finish(nmk)
			}
		}
	}
}

func nbtCompound(p *Parser) {
	cpdmk := p.Start(g(NbtCompound), cst.Skip)
	p.Bump()
	if !p.At(RCurly) {
		for {
			enmk := p.Start(g(NbtCompoundEntry), cst.Skip)
			stringArg(p)
			p.Expect(Colon)
			nbtValue(p)
			p.Finish(enmk)
			if !p.Eat(Comma) {
				break
			}
		}
	}
	p.Expect(RCurly)
	p.Finish(cpdmk)
}

// nbtPath parses dot-separated segments with `[n]`, `[{...}]`, and `[]`
// index suffixes: foo[0].bar."quoted key"[{a:1}].
func nbtPath(p *Parser) {
	mk := p.Start(g(NbtPath), cst.None)
	start := true
	for {
		vmk := p.Start(g(NbtPathSegment), cst.None)
		if p.At(LBracket) {
			indmk := p.Start(g(NbtPathIndex), cst.Skip)
			p.Bump()
			if !p.At(RBracket) && !p.TryToken(g(Integer), integerTk) {
				nbtCompound(p)
			}
			p.Expect(RBracket)
			p.Finish(indmk)
		} else {
			if !start {
				if !(p.Eat(Dot) || p.Eat(DotDot)) {
					p.Cancel(vmk)
					break
				}
			} else {
				start = false
			}
			if !p.Eat(Word) && !p.Eat(QuotedString) {
				p.Error(g(NbtPathSegment))
				p.Finish(vmk)
				break
			}
		}
		p.Finish(vmk)
	}
	p.Finish(mk)
}
