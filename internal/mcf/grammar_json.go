// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import "github.com/datapack-land/mcsyntax/internal/cst"

var jsonNullKw = []Keyword{{Text: "null", Group: g(JsonNull)}}

// Text components are conventional JSON with lenient numbers. The
// comma/EOF recovery matrix below is deliberate: a trailing comma at
// line end still expects one more element (so the error lands on the
// missing element, not the comma), while a missing comma mid-object
// skips a single token and retries.

func jsonObject(p *Parser) {
	objmk := p.Start(g(JsonObject), cst.Skip)
	p.Expect(LCurly)
	if p.Eat(RCurly) {
		p.Finish(objmk)
		return
	}
	for {
		entmk := p.Start(g(JsonObjectEntry), cst.Skip)
		if p.Expect(QuotedString) && p.Expect(Colon) {
			jsonValue(p)
		}
		p.Finish(entmk)
		if p.At(RCurly) {
			break
		}
		comma, eof := p.Expect(Comma), p.AtEOF()
		if comma && eof {
			p.Expect(QuotedString)
			break
		} else if !comma && !eof {
			if p.BumpRecover(TokenSet{}) {
				break
			}
		} else if !comma && eof {
			break
		}
	}
	p.Expect(RCurly)
	p.Finish(objmk)
}

func jsonArray(p *Parser) {
	arrmk := p.Start(g(JsonList), cst.Skip)
	p.Expect(LBracket)
	if p.Eat(RBracket) {
		p.Finish(arrmk)
		return
	}
	for {
		jsonValue(p)
		if p.At(RBracket) {
			break
		}
		comma, eof := p.Expect(Comma), p.AtEOF()
		if comma && eof {
			jsonValue(p)
			break
		} else if !comma && !eof {
			if p.BumpRecover(TokenSet{}) {
				break
			}
		} else if !comma && eof {
			break
		}
	}
	p.Expect(RBracket)
	p.Finish(arrmk)
}

func jsonValue(p *Parser) {
	lk := p.Lookahead()
	switch {
	case lk.At(LCurly):
		jsonObject(p)
	case lk.At(LBracket):
		jsonArray(p)
	case lk.At(QuotedString):
		p.Bump()
	case lk.AtKeyword(booleanKw):
		p.EatKeyword(booleanKw)
	case lk.AtKeyword(jsonNullKw):
		p.EatKeyword(jsonNullKw)
	default:
		lk.GroupError(g(Float))
		errs := lk.GetErrors()
		if !p.TryToken(g(Float), floatTk) {
			p.AddErrors(errs)
		}
	}
}
