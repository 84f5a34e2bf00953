// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cst

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates the three shapes of parse error the engine can
// record. It mirrors the original implementation's three-variant error
// enum (ExpectedToken/ExpectedKeyword/ExpectedGroup in spec terms).
type ErrorKind int

const (
	// ErrExpectedToken records that none of a set of token kinds was
	// found where the grammar required one of them.
	ErrExpectedToken ErrorKind = iota
	// ErrExpectedKeyword records that none of a set of (text, group)
	// keyword pairs matched the current Word-like token.
	ErrExpectedKeyword
	// ErrExpectedGroup records that a whole production failed and the
	// parser gave up, wrapping everything until recovery in an Error
	// group of the given type.
	ErrExpectedGroup
)

// Keyword pairs literal text with the group it would have produced had it
// matched, so an ExpectedKeyword error can describe what was expected
// without re-deriving it from the grammar.
type Keyword[G comparable] struct {
	Text  string
	Group G
}

// ParseError is a single recorded parse failure. Exactly one of its
// fields is meaningful, selected by Kind.
type ParseError[T Kind, G comparable] struct {
	Kind     ErrorKind
	Tokens   []T
	Keywords []Keyword[G]
	Group    G
}

// ExpectedToken builds a ParseError of kind ErrExpectedToken.
func ExpectedToken[T Kind, G comparable](kinds ...T) ParseError[T, G] {
	return ParseError[T, G]{Kind: ErrExpectedToken, Tokens: kinds}
}

// ExpectedKeyword builds a ParseError of kind ErrExpectedKeyword.
func ExpectedKeyword[T Kind, G comparable](kws ...Keyword[G]) ParseError[T, G] {
	return ParseError[T, G]{Kind: ErrExpectedKeyword, Keywords: kws}
}

// ExpectedGroup builds a ParseError of kind ErrExpectedGroup.
func ExpectedGroup[T Kind, G comparable](group G) ParseError[T, G] {
	return ParseError[T, G]{Kind: ErrExpectedGroup, Group: group}
}

// Error implements the error interface so ParseError can flow through
// ordinary Go error handling at the CLI boundary.
func (e ParseError[T, G]) Error() string {
	switch e.Kind {
	case ErrExpectedToken:
		parts := make([]string, len(e.Tokens))
		for i, t := range e.Tokens {
			parts[i] = t.String()
		}
		return "expected one of " + strings.Join(parts, ", ")
	case ErrExpectedKeyword:
		parts := make([]string, len(e.Keywords))
		for i, k := range e.Keywords {
			parts[i] = fmt.Sprintf("%q", k.Text)
		}
		return "expected one of " + strings.Join(parts, ", ")
	case ErrExpectedGroup:
		return fmt.Sprintf("could not parse %v", e.Group)
	default:
		return "unknown parse error"
	}
}
