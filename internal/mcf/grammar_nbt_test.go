// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import "testing"

func TestNbtValue_Numbers(t *testing.T) {
	// plain and suffixed numbers stay NbtNumber nodes
	for _, tc := range []struct {
		input  string
		suffix GroupType
	}{
		{"123", 0},
		{"-2147483648", 0},
		{"16s", NbtSuffixS},
		{"255b", NbtSuffixB},
		{"1234567890l", NbtSuffixL},
		{"0.5f", NbtSuffixF},
		{"3.14d", NbtSuffixD},
	} {
		ast := parseSingle(tc.input, nbtValue)
		v, ok := findGroup(ast, NbtNumber)
		if !ok {
			t.Errorf("%q: no NbtNumber node\n%s", tc.input, formatAst(ast))
			continue
		}
		if got := v.Text(); got != tc.input {
			t.Errorf("%q: text = %q", tc.input, got)
		}
		if tc.suffix != 0 {
			if _, ok := findGroup(ast, tc.suffix); !ok {
				t.Errorf("%q: missing suffix node\n%s", tc.input, formatAst(ast))
			}
		}
	}
}

func TestNbtValue_InvalidSuffixBecomesString(t *testing.T) {
	// `1a` starts as a number but the trailing word reclassifies the
	// whole thing as an unquoted string
	for _, input := range []string{"1a", "16sneaky", "12_tone"} {
		ast := parseSingle(input, nbtValue)
		if _, ok := findGroup(ast, NbtNumber); ok {
			t.Errorf("%q: must not stay a number\n%s", input, formatAst(ast))
		}
		v, ok := findGroup(ast, UnquotedString)
		if !ok || v.Text() != input {
			t.Errorf("%q: expected an UnquotedString covering the input\n%s", input, formatAst(ast))
		}
	}
}

func TestNbtValue_Booleans(t *testing.T) {
	for _, input := range []string{"true", "false"} {
		ast := parseSingle(input, nbtValue)
		if _, ok := findGroup(ast, NbtBoolean); !ok {
			t.Errorf("%q: no NbtBoolean node\n%s", input, formatAst(ast))
		}
	}
	// a word continuing past the keyword is a string, not a boolean
	ast := parseSingle("truethy", nbtValue)
	if _, ok := findGroup(ast, NbtBoolean); ok {
		t.Errorf("truethy: must not be a boolean\n%s", formatAst(ast))
	}
}

func TestNbtValue_Compounds(t *testing.T) {
	tests := []struct {
		input   string
		entries int
		errors  int
	}{
		{"{}", 0, 0},
		{"{foo:123}", 1, 0},
		{"{foo:123,bar:420}", 2, 0},
		{"{\tfoo  :1564 ,  \t   bar:420   }", 2, 0},
		{"{foo:123,bar:420", 2, 1},
		{"{foo:{bar:{baz:\"ikr\"}}}", 1, 0},
	}
	for _, tc := range tests {
		ast := parseSingle(tc.input, nbtValue)
		v, ok := findGroup(ast, NbtCompound)
		if !ok {
			t.Errorf("%q: no NbtCompound node\n%s", tc.input, formatAst(ast))
			continue
		}
		var entries int
		for _, c := range v.Children() {
			if c.IsGroup(g(NbtCompoundEntry)) {
				entries++
			}
		}
		if entries != tc.entries {
			t.Errorf("%q: entries = %d, want %d\n%s", tc.input, entries, tc.entries, formatAst(ast))
		}
		if got := len(ast.Errors()); got != tc.errors {
			t.Errorf("%q: errors = %d, want %d\n%s", tc.input, got, tc.errors, formatAst(ast))
		}
		if got := leafConcat(ast); got != tc.input {
			t.Errorf("%q: leaves = %q", tc.input, got)
		}
	}
}

func TestNbtValue_Sequences(t *testing.T) {
	tests := []struct {
		input  string
		prefix GroupType
	}{
		{"[]", 0},
		{"[B;]", NbtPrefixB},
		{"['hello']", 0},
		{"[L;123456789]", NbtPrefixL},
		{"[I;1,2,3]", NbtPrefixI},
		{"['hello', 123, true]", 0},
		{"[[123],[[],456,[789]]]", 0},
	}
	for _, tc := range tests {
		ast := parseSingle(tc.input, nbtValue)
		if _, ok := findGroup(ast, NbtSequence); !ok {
			t.Errorf("%q: no NbtSequence node\n%s", tc.input, formatAst(ast))
			continue
		}
		if tc.prefix != 0 {
			if _, ok := findGroup(ast, tc.prefix); !ok {
				t.Errorf("%q: missing prefix node\n%s", tc.input, formatAst(ast))
			}
		}
		if got := leafConcat(ast); got != tc.input {
			t.Errorf("%q: leaves = %q", tc.input, got)
		}
	}

	// unclosed list recovers with an error but keeps every element
	ast := parseSingle("[1, 2, 3, 4, 5, 6", nbtValue)
	if len(ast.Errors()) == 0 {
		t.Errorf("unclosed list must report an error\n%s", formatAst(ast))
	}
}

func TestNbtPath(t *testing.T) {
	tests := []struct {
		input    string
		segments int
	}{
		{"foo", 1},
		{"path.to.field", 3},
		// a path that never sees a name keeps expecting one after the
		// indices, so pure-index paths carry one trailing error segment
		{"[0]", 2},
		{"[0][34][12553]", 4},
		{"foo[0].bar.baz[1]", 5},
		{"filter[{me:123}]", 2},
	}
	for _, tc := range tests {
		ast := parseSingle(tc.input, nbtPath)
		v, ok := findGroup(ast, NbtPath)
		if !ok {
			t.Errorf("%q: no NbtPath node\n%s", tc.input, formatAst(ast))
			continue
		}
		var segments int
		for _, c := range v.Children() {
			if c.IsGroup(g(NbtPathSegment)) {
				segments++
			}
		}
		if segments != tc.segments {
			t.Errorf("%q: segments = %d, want %d\n%s", tc.input, segments, tc.segments, formatAst(ast))
		}
	}
}
