// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package nbtdoc

import "github.com/datapack-land/mcsyntax/internal/cst"

// Static recursive descent; nothing here consults a schema. Items are
// parsed in a loop so one malformed item never takes down the file.

func primitiveAt(lk *cst.Lookahead[TokenKind, GroupType]) bool {
	return lk.At(ByteKw) || lk.At(ShortKw) || lk.At(IntKw) || lk.At(LongKw) ||
		lk.At(FloatKw) || lk.At(DoubleKw) || lk.At(StringKw) || lk.At(BooleanKw)
}

func file(p *Parser) {
	mk := p.Start(File, cst.Skip)
	for {
		imk := p.Start(Item, cst.Skip)
		lk := p.Lookahead()
		if lk.At(CompoundKw) {
			compound(p)
		} else if lk.At(EnumKw) {
			enumDef(p)
		} else if lk.At(ModKw) {
			mmk := p.Start(ModDecl, cst.Skip)
			p.Bump()
			p.Expect(Ident)
			p.Expect(Semicolon)
			p.Finish(mmk)
		} else if lk.At(UseKw) || lk.At(ExportKw) {
			umk := p.Start(UseStatement, cst.Skip)
			if !p.Eat(UseKw) {
				p.Bump()
				p.Expect(UseKw)
			}
			identPath(p)
			p.Expect(Semicolon)
			p.Finish(umk)
		} else if lk.At(InjectKw) {
			inject(p)
		} else if lk.At(Ident) || lk.At(ColonColon) {
			dmk := p.Start(DescribesStatement, cst.Skip)
			identPath(p)
			p.Expect(DescribesKw)
			minecraftIdent(p)
			if p.Eat(LBracket) {
				bmk := p.Start(DescribesBody, cst.Skip)
				for p.NotAt(RBracket) {
					minecraftIdent(p)
					if !p.At(RBracket) {
						p.Expect(Comma)
					}
				}
				p.Finish(bmk)
				p.Expect(RBracket)
			}
			p.Expect(Semicolon)
			p.Finish(dmk)
		} else {
			lk.AddErrors()
			p.Bump()
		}
		p.Finish(imk)
		if p.AtEOF() {
			break
		}
	}
	p.Finish(mk)
}

func compound(p *Parser) {
	cpmk := p.Start(CompoundDef, cst.Skip)
	p.Expect(CompoundKw)
	p.Expect(Ident)
	if p.At(ExtendsKw) {
		exmk := p.Start(CompoundExtends, cst.Skip)
		p.Bump()
		if indexOverIdent(p) {
			registryIndex(p)
		} else {
			identPath(p)
		}
		p.Finish(exmk)
	}
	p.Expect(LCurly)
	for p.NotAt(RCurly) {
		fmk := p.Start(CompoundField, cst.Skip)
		identOrQs(p)
		p.Expect(Colon)
		fieldType(p)
		p.Finish(fmk)
		if !p.At(RCurly) {
			p.Expect(Comma)
		}
	}
	p.Expect(RCurly)
	p.Finish(cpmk)
}

func enumDef(p *Parser) {
	enmk := p.Start(EnumDef, cst.Skip)
	p.Expect(EnumKw)
	p.Expect(LParen)
	enumPrimitive(p)
	p.Expect(RParen)
	p.Expect(Ident)
	p.Expect(LCurly)
	enumEntries(p)
	p.Expect(RCurly)
	p.Finish(enmk)
}

func enumPrimitive(p *Parser) {
	lk := p.Lookahead()
	if primitiveAt(lk) {
		p.Bump()
	} else {
		lk.AddErrors()
		p.BumpRecover(TokenSet{})
	}
}

func enumEntries(p *Parser) {
	for p.NotAt(RCurly) {
		mk := p.Start(EnumEntry, cst.Skip)
		p.Expect(Ident)
		p.Expect(Eq)
		lk := p.Lookahead()
		if lk.At(QuotedString) || lk.At(Float) {
			p.Bump()
		} else {
			lk.AddErrors()
		}
		p.Finish(mk)
		if !p.At(RCurly) {
			p.Expect(Comma)
		}
	}
}

// inject opens optimistically as an Error group and retypes once the
// compound/enum keyword settles which form it is.
func inject(p *Parser) {
	mk := p.Start(Error, cst.Skip)
	p.Expect(InjectKw)
	lk := p.Lookahead()
	if lk.At(CompoundKw) {
		p.Retype(&mk, CompoundInject, false)
		p.Bump()
		identPath(p)
		p.Expect(LCurly)
		for p.NotAt(RCurly) {
			fmk := p.Start(CompoundField, cst.Skip)
			identOrQs(p)
			p.Expect(Colon)
			fieldType(p)
			p.Finish(fmk)
			if !p.At(RCurly) {
				p.Expect(Comma)
			}
		}
		p.Expect(RCurly)
	} else if lk.At(EnumKw) {
		p.Retype(&mk, EnumInject, false)
		p.Bump()
		p.Expect(LParen)
		enumPrimitive(p)
		p.Expect(RParen)
		identPath(p)
		p.Expect(LCurly)
		enumEntries(p)
		p.Expect(RCurly)
	} else {
		lk.AddErrors()
	}
	p.Finish(mk)
}

// identPath parses `::`-separated segments, optionally rooted:
// `::minecraft::entity`, `super::Shared`.
func identPath(p *Parser) {
	mk := p.Start(IdentPath, cst.None)
	p.Eat(ColonColon)
	for {
		lk := p.Lookahead()
		if lk.At(Ident) || lk.At(SuperKw) {
			p.Bump()
		} else {
			lk.AddErrors()
		}
		if !p.Eat(ColonColon) {
			break
		}
	}
	p.Finish(mk)
}

func identOrQs(p *Parser) {
	lk := p.Lookahead()
	if lk.At(Ident) || lk.At(QuotedString) {
		p.Bump()
	} else {
		lk.AddErrors()
		p.BumpRecover(cst.NewTokenSet(Colon))
	}
}

// minecraftIdent parses a `namespace:path/segments` resource location as
// one joined node. Keywords are allowed inside the path.
func minecraftIdent(p *Parser) {
	mk := p.Start(MinecraftIdent, cst.Join)
	if !p.Eat(QuotedString) {
		if !p.At(Colon) {
			identOrQs(p)
		}
		p.Expect(Colon)
		for p.At(Ident) || p.Nth(0).Kind.IsKeyword() || p.At(IdKw) || p.At(Slash) {
			p.Bump()
		}
	}
	p.Finish(mk)
}

// registryIndex parses `registry:name[field.path]`.
func registryIndex(p *Parser) {
	mk := p.Start(RegistryIndex, cst.Skip)
	minecraftIdent(p)
	p.Expect(LBracket)
	fmk := p.Start(FieldPath, cst.None)
	for p.NotAt(RBracket) {
		lk := p.Lookahead()
		if lk.At(Ident) || lk.At(QuotedString) || lk.At(SuperKw) {
			p.Bump()
		} else {
			lk.AddErrors()
			p.BumpRecover(cst.NewTokenSet(Dot))
		}
		if !p.At(RBracket) {
			p.Expect(Dot)
		}
	}
	p.Finish(fmk)
	p.Expect(RBracket)
	p.Finish(mk)
}

// fieldType parses one field type, retyping its group once the form is
// known: primitive scalar with optional range, `T[]` array, `[T]` list,
// `id(registry)`, `(A | B)` union, a named path, or a registry index.
func fieldType(p *Parser) {
	mk := p.Start(Error, cst.Skip)
	lk := p.Lookahead()
	if primitiveAt(lk) {
		p.Bump()
		if p.At(At) {
			valueRange(p)
		}
		if p.At(LBracket) {
			p.Bump()
			p.Expect(RBracket)
			if p.At(At) {
				valueRange(p)
			}
			p.Retype(&mk, ArrayType, false)
		} else {
			p.Retype(&mk, ScalarType, false)
		}
	} else if lk.At(LBracket) {
		p.Retype(&mk, ListType, false)
		p.Bump()
		fieldType(p)
		p.Expect(RBracket)
		if p.At(At) {
			valueRange(p)
		}
	} else if lk.At(IdKw) {
		p.Retype(&mk, IdType, false)
		p.Bump()
		p.Expect(LParen)
		minecraftIdent(p)
		p.Expect(RParen)
	} else if lk.At(LParen) {
		p.Retype(&mk, UnionType, false)
		p.Bump()
		for p.NotAt(RParen) {
			fieldType(p)
			if !p.At(RParen) {
				p.Expect(Bar)
			}
		}
		p.Expect(RParen)
	} else {
		errs := lk.GetErrors()
		if indexOverIdent(p) {
			p.Retype(&mk, IndexType, false)
			registryIndex(p)
		} else if p.AtTokens(cst.NewTokenSet(ColonColon, Ident, SuperKw)) {
			p.Retype(&mk, NamedType, false)
			identPath(p)
		} else {
			p.AddErrors(errs)
			p.Error(RegistryIndex)
			p.Error(IdentPath)
		}
	}
	p.Finish(mk)
}

// valueRange parses `@ a..b`, `@ a`, `@ ..b`, `@ a..`.
func valueRange(p *Parser) {
	mk := p.Start(Range, cst.Skip)
	p.Expect(At)
	if p.Eat(DotDot) {
		p.Expect(Float)
	} else {
		p.Expect(Float)
		if p.Eat(DotDot) {
			p.Eat(Float)
		}
	}
	p.Finish(mk)
}

func indexOverIdent(p *Parser) bool {
	if p.At(Colon) || p.Nth(1).Kind == Colon {
		return true
	}
	return p.At(QuotedString) && p.Nth(1).Kind == LBracket
}
