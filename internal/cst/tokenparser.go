// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

// TokenParser is the narrow view of Parser passed to closures that build
// a single Joined node (a float, a resource location, an unquoted
// string...). It exposes only token-consuming operations — no Start,
// Finish, or Cancel — because the enclosing TryToken call owns the
// marker's lifetime; a closure can only say "yes, this looks right" or
// "no" by returning a bool.
//
// Its expect-shaped methods deliberately never push ParseError events of
// their own: a failed probe inside a Joined node means "this isn't a
// float after all", which TryToken turns into a silent Cancel, not a
// reported error.
type TokenParser[T Kind, G comparable] struct {
	p *Parser[T, G]
}

func (tp *TokenParser[T, G]) Nth(n int) Token[T]           { return tp.p.Nth(n) }
func (tp *TokenParser[T, G]) At(kind T) bool               { return tp.p.At(kind) }
func (tp *TokenParser[T, G]) AtTokens(s TokenSet[T]) bool  { return tp.p.AtTokens(s) }
func (tp *TokenParser[T, G]) Eat(kind T) bool              { return tp.p.Eat(kind) }
func (tp *TokenParser[T, G]) EatTokens(s TokenSet[T]) bool { return tp.p.EatTokens(s) }
func (tp *TokenParser[T, G]) Bump()                        { tp.p.Bump() }

// EatKw consumes a matching keyword as a nested Joined node of the
// matched group type (a float's exponent marker, a hex word in a UUID).
func (tp *TokenParser[T, G]) EatKw(pairs []Keyword[G]) bool {
	return tp.p.EatKeyword(pairs)
}

// Expect consumes the current token if it matches kind. Unlike
// Parser.Expect it records nothing on failure — the caller's false
// return is the signal.
func (tp *TokenParser[T, G]) Expect(kind T) bool              { return tp.p.Eat(kind) }
func (tp *TokenParser[T, G]) ExpectTokens(s TokenSet[T]) bool { return tp.p.EatTokens(s) }

// ExpectKw consumes a matching keyword as a bare token, without the
// nested Joined node EatKw builds.
func (tp *TokenParser[T, G]) ExpectKw(pairs []Keyword[G]) bool {
	if !tp.p.AtKeyword(pairs) {
		return false
	}
	tp.p.Bump()
	return true
}

// TryToken speculatively builds a Joined node of kind group by running f
// against a TokenParser view of p. If f returns true, the node is
// finished; if false, it is cancelled and no error is recorded — the
// caller decides whether failure here is itself an error.
func (p *Parser[T, G]) TryToken(group G, f func(tp *TokenParser[T, G]) bool) bool {
	m := p.Start(group, Join)
	ok := f(&TokenParser[T, G]{p: p})
	if ok {
		p.Finish(m)
	} else {
		p.Cancel(m)
	}
	return ok
}

// AtToken is a side-effect-free probe: it runs f against a throwaway
// clone of p's current state and reports whether f would succeed,
// without touching p's real token position or event stream.
func (p *Parser[T, G]) AtToken(f func(tp *TokenParser[T, G]) bool) bool {
	clone := &Parser[T, G]{lang: p.lang, src: p.src, root: p.root, toks: p.toks, pos: p.pos, skipWS: p.skipWS}
	m := clone.Start(clone.lang.ErrorGroup, Join)
	ok := f(&TokenParser[T, G]{p: clone})
	clone.Cancel(m)
	return ok
}
