// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package nbt_test

import (
	"errors"
	"testing"

	"github.com/go-test/deep"

	"github.com/datapack-land/mcsyntax/internal/nbt"
)

func mustParse(t *testing.T, src string) nbt.Value {
	t.Helper()
	v, err := nbt.ParseSnbt([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return v
}

func TestSnbt_Compound(t *testing.T) {
	got := mustParse(t, `{a:1b,b:[B;1,2,3],c:"x"}`)
	want := nbt.Compound{
		"a": nbt.Byte(1),
		"b": nbt.ByteArray{1, 2, 3},
		"c": nbt.String("x"),
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("value: %v", diff)
	}
}

func TestSnbt_Scalars(t *testing.T) {
	tests := []struct {
		src  string
		want nbt.Value
	}{
		{"0", nbt.Int(0)},
		{"-17", nbt.Int(-17)},
		{"1b", nbt.Byte(1)},
		{"300s", nbt.Short(300)},
		{"40l", nbt.Long(40)},
		{"0.5f", nbt.Float(0.5)},
		{"0.25d", nbt.Double(0.25)},
		{"1.5", nbt.Double(1.5)},
		{"2147483648", nbt.Double(2147483648)}, // overflows Int, falls to Double
		{"true", nbt.Byte(1)},
		{"false", nbt.Byte(0)},
		{`"hi there"`, nbt.String("hi there")},
		{`"say \"hi\""`, nbt.String(`say "hi"`)},
		{"bare_string", nbt.String("bare_string")},
	}
	for _, tc := range tests {
		got := mustParse(t, tc.src)
		if diff := deep.Equal(got, tc.want); diff != nil {
			t.Errorf("%q: %v", tc.src, diff)
		}
	}
}

func TestSnbt_Lists(t *testing.T) {
	got := mustParse(t, "[1,2,3]")
	want := nbt.List{Elem: nbt.TagInt, Items: []nbt.Value{nbt.Int(1), nbt.Int(2), nbt.Int(3)}}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("list: %v", diff)
	}

	got = mustParse(t, "[]")
	if got.(nbt.List).Elem != nbt.TagEnd {
		t.Errorf("empty list elem = %v", got.(nbt.List).Elem)
	}

	got = mustParse(t, "[I;4,5]")
	if diff := deep.Equal(got, nbt.IntArray{4, 5}); diff != nil {
		t.Fatalf("int array: %v", diff)
	}

	got = mustParse(t, "[L;123456789]")
	if diff := deep.Equal(got, nbt.LongArray{123456789}); diff != nil {
		t.Fatalf("long array: %v", diff)
	}
}

func TestSnbt_MixedListFails(t *testing.T) {
	_, err := nbt.ParseSnbt([]byte(`[1,"two"]`))
	var serr *nbt.SnbtError
	if !errors.As(err, &serr) || serr.Kind != nbt.ErrInvalidListType {
		t.Fatalf("err = %v", err)
	}
	// the partial value is carried for recovery
	if serr.Partial == nil {
		t.Errorf("expected a partial value")
	}
}

func TestSnbt_ByteArrayRejectsStrings(t *testing.T) {
	_, err := nbt.ParseSnbt([]byte(`[B;1,"x"]`))
	var serr *nbt.SnbtError
	if !errors.As(err, &serr) || serr.Kind != nbt.ErrInvalidListType {
		t.Fatalf("err = %v", err)
	}
}

func TestSnbt_CompactRoundTrip(t *testing.T) {
	// display then re-parse preserves value and typed variants
	values := []nbt.Value{
		nbt.Byte(7),
		nbt.Short(-2),
		nbt.Int(100000),
		nbt.Long(5),
		nbt.Float(1.5),
		nbt.Double(-0.125),
		nbt.String("plain"),
		nbt.String(`with "quotes" and \slash`),
		nbt.ByteArray{1, 2},
		nbt.IntArray{3},
		nbt.LongArray{4},
		nbt.List{Elem: nbt.TagInt, Items: []nbt.Value{nbt.Int(1)}},
		nbt.Compound{"a": nbt.Byte(1), "b": nbt.Compound{"c": nbt.String("x")}},
	}
	for _, v := range values {
		text := nbt.Format(v, false)
		got, err := nbt.ParseSnbt([]byte(text))
		if err != nil {
			t.Errorf("%q: %v", text, err)
			continue
		}
		if diff := deep.Equal(got, v); diff != nil {
			t.Errorf("%q: %v", text, diff)
		}
	}
}

func TestSnbt_PrettyRoundTrip(t *testing.T) {
	v := nbt.Compound{"pos": nbt.List{Elem: nbt.TagInt, Items: []nbt.Value{nbt.Int(1), nbt.Int(2)}}}
	text := nbt.Format(v, true)
	got, err := nbt.ParseSnbt([]byte(text))
	if err != nil {
		t.Fatalf("%q: %v", text, err)
	}
	if diff := deep.Equal(got, v); diff != nil {
		t.Fatalf("pretty round trip: %v", diff)
	}
}

func TestStringValue(t *testing.T) {
	tests := []struct{ in, want string }{
		{"bare", "bare"},
		{`"quoted"`, "quoted"},
		{`'single'`, "single"},
		{`"with \"escape\""`, `with "escape"`},
		{`"back\\slash"`, `back\slash`},
		{`"unterminated`, "unterminated"},
	}
	for _, tc := range tests {
		if got := nbt.StringValue(tc.in); got != tc.want {
			t.Errorf("StringValue(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
