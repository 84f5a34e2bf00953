// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package nbt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/datapack-land/mcsyntax/internal/mcf"
)

// SnbtError is a structural failure while converting a CST value.
// Partial holds whatever was built before the failure, so callers (the
// CLI, diagnostics) can still show the rest of the value.
type SnbtError struct {
	Kind    SnbtErrorKind
	Key     string
	Partial Value
	Err     error
}

type SnbtErrorKind uint8

const (
	ErrInvalidValue SnbtErrorKind = iota
	ErrParseInt
	ErrParseFloat
	ErrInvalidListType
	ErrMissingCompoundKey
	ErrMissingCompoundValue
	ErrInvalidBoolean
	ErrInvalidNumber
)

func (e *SnbtError) Error() string {
	switch e.Kind {
	case ErrParseInt, ErrParseFloat:
		return e.Err.Error()
	case ErrInvalidListType:
		return "mixed element types in list"
	case ErrMissingCompoundKey:
		return "compound entry is missing its key"
	case ErrMissingCompoundValue:
		return fmt.Sprintf("compound key %q is missing its value", e.Key)
	case ErrInvalidBoolean:
		return "invalid boolean"
	case ErrInvalidNumber:
		return "invalid number"
	default:
		return "invalid SNBT value"
	}
}

func (e *SnbtError) Unwrap() error { return e.Err }

// FromCst converts a parsed SNBT node into a Value. Booleans become
// bytes; numbers pick their variant by suffix, untagged ones become Int
// when integer-parseable and Double otherwise; typed arrays coerce
// untagged integers into their element type.
func FromCst(node mcf.NbtValueNode) (Value, error) {
	switch n := node.(type) {
	case mcf.NbtCompoundNode:
		out := Compound{}
		for _, entry := range n.Entries() {
			key, ok := entry.Key()
			if !ok {
				return nil, &SnbtError{Kind: ErrMissingCompoundKey, Partial: out}
			}
			name := StringValue(key.Raw())
			value, ok := entry.Value()
			if !ok {
				return nil, &SnbtError{Kind: ErrMissingCompoundValue, Key: name, Partial: out}
			}
			v, err := FromCst(value)
			if err != nil {
				return nil, err
			}
			out[name] = v
		}
		return out, nil
	case mcf.NbtSequenceNode:
		items := make([]Value, 0, len(n.Entries()))
		for _, entry := range n.Entries() {
			v, err := FromCst(entry)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return sequenceValue(n.SeqType(), items)
	case mcf.NbtBooleanNode:
		b, ok := n.Value()
		if !ok {
			return nil, &SnbtError{Kind: ErrInvalidBoolean}
		}
		if b {
			return Byte(1), nil
		}
		return Byte(0), nil
	case mcf.NbtNumberNode:
		return numberValue(n)
	case mcf.NbtStringNode:
		return String(StringValue(n.Raw())), nil
	default:
		return nil, &SnbtError{Kind: ErrInvalidValue}
	}
}

func sequenceValue(seq mcf.NbtSequenceType, items []Value) (Value, error) {
	switch seq {
	case mcf.SeqByteArray:
		out := make(ByteArray, 0, len(items))
		for _, v := range items {
			switch x := v.(type) {
			case Byte:
				out = append(out, int8(x))
			case Int:
				if int32(x) < -128 || int32(x) > 127 {
					return nil, &SnbtError{Kind: ErrInvalidListType, Partial: List{Items: items}}
				}
				out = append(out, int8(x))
			default:
				return nil, &SnbtError{Kind: ErrInvalidListType, Partial: List{Items: items}}
			}
		}
		return out, nil
	case mcf.SeqIntArray:
		out := make(IntArray, 0, len(items))
		for _, v := range items {
			x, ok := v.(Int)
			if !ok {
				return nil, &SnbtError{Kind: ErrInvalidListType, Partial: List{Items: items}}
			}
			out = append(out, int32(x))
		}
		return out, nil
	case mcf.SeqLongArray:
		out := make(LongArray, 0, len(items))
		for _, v := range items {
			switch x := v.(type) {
			case Long:
				out = append(out, int64(x))
			case Int:
				out = append(out, int64(x))
			default:
				return nil, &SnbtError{Kind: ErrInvalidListType, Partial: List{Items: items}}
			}
		}
		return out, nil
	case mcf.SeqList:
		if len(items) == 0 {
			return List{Elem: TagEnd}, nil
		}
		elem := items[0].Tag()
		for _, v := range items[1:] {
			if v.Tag() != elem {
				return nil, &SnbtError{Kind: ErrInvalidListType, Partial: List{Items: items}}
			}
		}
		return List{Elem: elem, Items: items}, nil
	default:
		return nil, &SnbtError{Kind: ErrInvalidListType, Partial: List{Items: items}}
	}
}

func numberValue(n mcf.NbtNumberNode) (Value, error) {
	if s, ok := n.Byte(); ok {
		v, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return nil, &SnbtError{Kind: ErrParseInt, Err: err}
		}
		return Byte(v), nil
	}
	if s, ok := n.Short(); ok {
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return nil, &SnbtError{Kind: ErrParseInt, Err: err}
		}
		return Short(v), nil
	}
	if s, ok := n.Long(); ok {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, &SnbtError{Kind: ErrParseInt, Err: err}
		}
		return Long(v), nil
	}
	if s, ok := n.Float(); ok {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, &SnbtError{Kind: ErrParseFloat, Err: err}
		}
		return Float(v), nil
	}
	if s, ok := n.Double(); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &SnbtError{Kind: ErrParseFloat, Err: err}
		}
		return Double(v), nil
	}
	if s, ok := n.Untagged(); ok {
		if v, err := strconv.ParseInt(s, 10, 32); err == nil {
			return Int(v), nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &SnbtError{Kind: ErrParseFloat, Err: err}
		}
		return Double(v), nil
	}
	return nil, &SnbtError{Kind: ErrInvalidNumber}
}

// ParseSnbt lexes and parses src as one SNBT value and converts it.
func ParseSnbt(src []byte) (Value, error) {
	ast := mcf.ParseNbtValue(src)
	root := ast.View()
	for _, c := range root.Children() {
		if nv, ok := mcf.AsNbtValue(c); ok {
			return FromCst(nv)
		}
	}
	return nil, &SnbtError{Kind: ErrInvalidValue}
}

// StringValue returns the best-effort value of a string spelling:
// quoted strings are dequoted and unescaped, anything else is returned
// verbatim.
func StringValue(s string) string {
	if !strings.HasPrefix(s, `"`) && !strings.HasPrefix(s, `'`) {
		return s
	}
	term := rune(s[0])
	var buf strings.Builder
	escaped := false
	for _, c := range s[1:] {
		if escaped {
			escaped = false
			if c == 'n' {
				// Format writes newlines as \n to stay on one line
				buf.WriteByte('\n')
			} else {
				buf.WriteRune(c)
			}
		} else if c == term {
			break
		} else if c == '\\' {
			escaped = true
		} else {
			buf.WriteRune(c)
		}
	}
	return buf.String()
}
