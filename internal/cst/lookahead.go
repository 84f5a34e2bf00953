// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

// Lookahead accumulates every token kind and keyword tried and NOT
// matched while a grammar production hunts for the right alternative, so
// that if none of them match, one combined diagnostic ("expected one of
// 'a', 'b', or group C") can be reported instead of only the last
// attempt. Successful probes record nothing.
type Lookahead[T Kind, G comparable] struct {
	p      *Parser[T, G]
	tried  []T
	kw     []Keyword[G]
	groups []G
}

// At probes for kind, recording the attempt if it fails.
func (la *Lookahead[T, G]) At(kind T) bool {
	if la.p.At(kind) {
		return true
	}
	la.tried = append(la.tried, kind)
	return false
}

// AtTokens probes a whole set without recording individual kinds — used
// for coarse-grained lookahead (e.g. "any unquoted-string continuation
// character") that would otherwise pollute the combined error with an
// unhelpful, very long list.
func (la *Lookahead[T, G]) AtTokens(set TokenSet[T]) bool {
	return la.p.AtTokens(set)
}

// AtKeyword probes a keyword table, recording the candidates if none
// matched.
func (la *Lookahead[T, G]) AtKeyword(pairs []Keyword[G]) bool {
	if la.p.AtKeyword(pairs) {
		return true
	}
	la.kw = append(la.kw, pairs...)
	return false
}

// GroupError records that group was a candidate production that did not
// pan out, for inclusion in the combined error.
func (la *Lookahead[T, G]) GroupError(group G) {
	la.groups = append(la.groups, group)
}

// AddErrors pushes one error event per distinct kind of failed attempt
// recorded so far directly onto the parser's event stream.
func (la *Lookahead[T, G]) AddErrors() {
	la.p.AddErrors(la.collect())
}

// GetErrors returns the same errors AddErrors would push, without
// touching the parser's event stream — used when the caller wants to try
// one more alternative before deciding what to record.
func (la *Lookahead[T, G]) GetErrors() []ParseError[T, G] {
	return la.collect()
}

func (la *Lookahead[T, G]) collect() []ParseError[T, G] {
	var errs []ParseError[T, G]
	if len(la.tried) > 0 {
		errs = append(errs, ExpectedToken[T, G](la.tried...))
	}
	if len(la.kw) > 0 {
		errs = append(errs, ExpectedKeyword[T, G](la.kw...))
	}
	for _, g := range la.groups {
		errs = append(errs, ExpectedGroup[T, G](g))
	}
	return errs
}
