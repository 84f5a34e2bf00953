// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import "github.com/datapack-land/mcsyntax/internal/cst"

// allowedUqString is the set of token kinds an unquoted string may
// continue with. Unquoted strings are greedy: "-1233.86+534-" is one
// string, not arithmetic.
var allowedUqString = cst.NewTokenSet(Digits, Word, Dash, Plus, Dot, DotDot)

// operationSet covers every scoreboard operator.
var operationSet = cst.NewTokenSet(
	AddAssign, SubAssign, MulAssign, DivAssign, ModAssign,
	Eq, Lt, Gt, Lte, Gte, Swap,
)

var coordModifier = cst.NewTokenSet(Tilde, Caret)

var booleanKw = []Keyword{
	{Text: "true", Group: g(BooleanTrue)},
	{Text: "false", Group: g(BooleanFalse)},
}

var floatSciKw = []Keyword{
	{Text: "e", Group: g(FloatSciExpLower)},
	{Text: "E", Group: g(FloatSciExpUpper)},
}

// hex digits that lex as Word; UUID parsing folds them back into the
// number
var hexCharKw = []Keyword{
	{Text: "a", Group: g(Integer)},
	{Text: "b", Group: g(Integer)},
	{Text: "c", Group: g(Integer)},
	{Text: "d", Group: g(Integer)},
	{Text: "e", Group: g(Integer)},
	{Text: "f", Group: g(Integer)},
}

var timeSuffixKw = []Keyword{
	{Text: "s", Group: g(TimeSuffixS)},
	{Text: "t", Group: g(TimeSuffixT)},
	{Text: "d", Group: g(TimeSuffixD)},
}

func function(p *Parser) {
	mk := p.Start(g(Function), cst.None)
	p.Eat(Hash)
	resourceLocation(p)
	p.Finish(mk)
}

func itemStack(p *Parser) {
	mk := p.Start(g(ItemStack), cst.None)
	resourceLocation(p)
	if p.At(LCurly) {
		nbtCompound(p)
	}
	p.Finish(mk)
}

func itemPredicate(p *Parser) {
	mk := p.Start(g(ItemPredicate), cst.None)
	p.Eat(Hash)
	resourceLocation(p)
	if p.At(LCurly) {
		nbtCompound(p)
	}
	p.Finish(mk)
}

// message consumes the rest of the line verbatim.
func message(p *Parser) {
	mk := p.Start(g(UnquotedString), cst.None)
	for !p.AtEOF() {
		p.Bump()
	}
	p.Finish(mk)
}

func resourceLocation(p *Parser) {
	if !p.TryToken(g(ResourceLocation), resourceLocationTk) {
		p.Error(g(ResourceLocation))
	}
}

func resourceLocationTk(tp *TokenParser) bool {
	uqStringTk(tp)
	if tp.EatTokens(cst.NewTokenSet(Colon, Slash)) {
		for {
			uqStringTk(tp)
			if !tp.Eat(Slash) {
				break
			}
		}
	}
	return true
}

// rangeArg parses `a..b`, `..b`, `a..`, or a bare number.
func rangeArg(p *Parser) {
	mk := p.Start(g(Range), cst.None)
	if p.Eat(DotDot) {
		float(p)
	} else {
		float(p)
		if p.Eat(DotDot) {
			p.TryToken(g(Float), floatTk)
		}
	}
	p.Finish(mk)
}

func uqString(p *Parser) {
	p.TryToken(g(UnquotedString), uqStringTk)
}

func uqStringTk(tp *TokenParser) bool {
	for tp.EatTokens(allowedUqString) {
	}
	return true
}

// uqStringNeTk is uqStringTk requiring at least one token.
func uqStringNeTk(tp *TokenParser) bool {
	if !tp.ExpectTokens(allowedUqString) {
		return false
	}
	return uqStringTk(tp)
}

func timeArg(p *Parser) {
	mk := p.Start(g(Time), cst.None)
	p.Expect(Digits)
	p.EatKeyword(timeSuffixKw)
	p.Finish(mk)
}

// uuidTk matches at least four dash-separated groups of hex digits (a
// canonical UUID has five). Digits and the hex letters a-f lex as
// separate tokens, so each group is a run of either.
func uuidTk(tp *TokenParser) bool {
	if !uuidGroupTk(tp) {
		return false
	}
	dashes := 0
	for tp.Eat(Dash) {
		if !uuidGroupTk(tp) {
			return false
		}
		dashes++
	}
	return dashes >= 3
}

func uuidGroupTk(tp *TokenParser) bool {
	empty := true
	for tp.Eat(Digits) || tp.EatKw(hexCharKw) {
		empty = false
	}
	return !empty
}

// stringArg parses a Phrase string: quoted if possible, else unquoted.
func stringArg(p *Parser) {
	if !p.Eat(QuotedString) {
		p.TryToken(g(UnquotedString), uqStringTk)
	}
}

func integer(p *Parser) {
	if !p.TryToken(g(Integer), integerTk) {
		p.Error(g(Integer))
	}
}

func integerTk(tp *TokenParser) bool {
	if !tp.Eat(Dash) {
		tp.Eat(Plus)
	}
	return tp.Expect(Digits)
}

func float(p *Parser) {
	if !p.TryToken(g(Float), floatTk) {
		p.Error(g(Float))
	}
}

func floatTk(tp *TokenParser) bool {
	tp.EatTokens(cst.NewTokenSet(Plus, Dash))
	if tp.Eat(Dot) {
		if !tp.Expect(Digits) {
			return false
		}
	} else if tp.Eat(Digits) {
		if tp.Eat(Dot) {
			tp.Eat(Digits)
		}
	} else {
		return false
	}
	if tp.EatKw(floatSciKw) {
		return integerTk(tp)
	}
	return true
}
