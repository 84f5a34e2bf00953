// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package nbtdoc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/datapack-land/mcsyntax/internal/cst"
)

func leafConcat(ast *Ast) string {
	var sb strings.Builder
	var walk func(idx cst.Index)
	walk = func(idx cst.Index) {
		n := ast.Node(idx)
		if n.Shape == cst.ShapeToken {
			sb.WriteString(ast.Text(idx))
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(ast.Root)
	return sb.String()
}

func findGroup(ast *Ast, t GroupType) (View, bool) {
	var found View
	var ok bool
	var walk func(idx cst.Index)
	walk = func(idx cst.Index) {
		if ok {
			return
		}
		n := ast.Node(idx)
		if (n.Shape == cst.ShapeGroup || n.Shape == cst.ShapeJoined) && n.Group == t {
			found, ok = View{Ast: ast, Idx: idx}, true
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(ast.Root)
	return found, ok
}

func formatAst(ast *Ast) string {
	var sb strings.Builder
	var walk func(idx cst.Index, depth int)
	walk = func(idx cst.Index, depth int) {
		n := ast.Node(idx)
		sb.WriteString(strings.Repeat("  ", depth))
		switch n.Shape {
		case cst.ShapeRoot:
			fmt.Fprintf(&sb, "Root(%v)\n", n.Group)
		case cst.ShapeGroup:
			fmt.Fprintf(&sb, "Group(%v)\n", n.Group)
		case cst.ShapeJoined:
			fmt.Fprintf(&sb, "Joined(%v) %q\n", n.Group, ast.Text(idx))
		case cst.ShapeToken:
			fmt.Fprintf(&sb, "Token(%v) %q\n", n.Tok.Kind, ast.Text(idx))
		case cst.ShapeError:
			fmt.Fprintf(&sb, "Error(%v)\n", n.Err)
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(ast.Root, 0)
	return sb.String()
}

func TestParse_CompoundAndEnum(t *testing.T) {
	src := "compound Foo { bar: int @ 0..10, baz: [string] } enum(byte) E { X = 0, Y = 1 }"
	ast := Parse([]byte(src))

	if len(ast.Errors()) != 0 {
		t.Fatalf("unexpected errors\n%s", formatAst(ast))
	}
	if got := leafConcat(ast); got != src {
		t.Fatalf("leaves = %q", got)
	}

	file := FileOf(ast)
	items := file.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2\n%s", len(items), formatAst(ast))
	}

	cpd, ok := items[0].Compound()
	if !ok {
		t.Fatalf("item 0 is not a compound\n%s", formatAst(ast))
	}
	if name, _ := cpd.Name(); name != "Foo" {
		t.Errorf("compound name = %q", name)
	}
	fields := cpd.Fields()
	if len(fields) != 2 {
		t.Fatalf("fields = %d, want 2\n%s", len(fields), formatAst(ast))
	}
	if name, _ := fields[0].Name(); name != "bar" {
		t.Errorf("field 0 name = %q", name)
	}
	ft, ok := fields[0].Type()
	if !ok {
		t.Fatalf("field 0 has no type\n%s", formatAst(ast))
	}
	scalar, ok := ft.(ScalarTypeNode)
	if !ok {
		t.Fatalf("field 0 type is %T, want scalar", ft)
	}
	if prim, _ := scalar.Primitive(); prim != IntKw {
		t.Errorf("field 0 primitive = %v", prim)
	}
	rng, ok := scalar.Range()
	if !ok {
		t.Fatalf("field 0 has no range")
	}
	if lo, hi := rng.Bounds(); lo != "0" || hi != "10" {
		t.Errorf("range bounds = %q..%q", lo, hi)
	}

	if name, _ := fields[1].Name(); name != "baz" {
		t.Errorf("field 1 name = %q", name)
	}
	ft, _ = fields[1].Type()
	list, ok := ft.(ListTypeNode)
	if !ok {
		t.Fatalf("field 1 type is %T, want list", ft)
	}
	if el, ok := list.Element(); !ok {
		t.Errorf("list has no element type")
	} else if s, ok := el.(ScalarTypeNode); !ok {
		t.Errorf("list element is %T", el)
	} else if prim, _ := s.Primitive(); prim != StringKw {
		t.Errorf("list element primitive = %v", prim)
	}

	en, ok := items[1].Enum()
	if !ok {
		t.Fatalf("item 1 is not an enum\n%s", formatAst(ast))
	}
	if prim, _ := en.Primitive(); prim != ByteKw {
		t.Errorf("enum primitive = %v", prim)
	}
	if name, _ := en.Name(); name != "E" {
		t.Errorf("enum name = %q", name)
	}
	entries := en.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2\n%s", len(entries), formatAst(ast))
	}
	if name, _ := entries[0].Name(); name != "X" {
		t.Errorf("entry 0 name = %q", name)
	}
	if val, _ := entries[1].Value(); val != "1" {
		t.Errorf("entry 1 value = %q", val)
	}
}

func TestParse_ModUseDescribes(t *testing.T) {
	src := "mod loot;\nexport use ::minecraft::entity;\n::entity::Base describes minecraft:entity [ minecraft:pig, minecraft:cow ];\n"
	ast := Parse([]byte(src))
	if len(ast.Errors()) != 0 {
		t.Fatalf("unexpected errors\n%s", formatAst(ast))
	}
	if got := leafConcat(ast); got != src {
		t.Fatalf("leaves = %q", got)
	}

	items := FileOf(ast).Items()
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3\n%s", len(items), formatAst(ast))
	}

	mod, ok := items[0].Mod()
	if !ok {
		t.Fatalf("item 0 is not a mod decl")
	}
	if name, _ := mod.Name(); name != "loot" {
		t.Errorf("mod name = %q", name)
	}

	use, ok := items[1].Use()
	if !ok {
		t.Fatalf("item 1 is not a use")
	}
	if !use.Export() {
		t.Errorf("use must be exported")
	}
	if path, ok := use.Path(); !ok {
		t.Errorf("use has no path")
	} else {
		if !path.Rooted() {
			t.Errorf("use path must be rooted")
		}
		if segs := path.Segments(); len(segs) != 2 || segs[0] != "minecraft" || segs[1] != "entity" {
			t.Errorf("use path segments = %v", segs)
		}
	}

	desc, ok := items[2].Describes()
	if !ok {
		t.Fatalf("item 2 is not a describes")
	}
	if reg, _ := desc.Registry(); reg != "minecraft:entity" {
		t.Errorf("registry = %q", reg)
	}
	targets, ok := desc.Targets()
	if !ok || len(targets) != 2 {
		t.Fatalf("targets = %v", targets)
	}
	if targets[0] != "minecraft:pig" || targets[1] != "minecraft:cow" {
		t.Errorf("targets = %v", targets)
	}
}

func TestParse_Injects(t *testing.T) {
	src := "inject compound ::minecraft::entity::Base { Health: float @ 0.. }\ninject enum(int) ::Colors { Cyan = 6 }\n"
	ast := Parse([]byte(src))
	if len(ast.Errors()) != 0 {
		t.Fatalf("unexpected errors\n%s", formatAst(ast))
	}
	items := FileOf(ast).Items()
	if len(items) != 2 {
		t.Fatalf("items = %d\n%s", len(items), formatAst(ast))
	}

	ci, ok := items[0].CompoundInject()
	if !ok {
		t.Fatalf("item 0 is not a compound inject\n%s", formatAst(ast))
	}
	if fields := ci.Fields(); len(fields) != 1 {
		t.Errorf("inject fields = %d", len(fields))
	} else if ft, _ := fields[0].Type(); ft != nil {
		if s, ok := ft.(ScalarTypeNode); ok {
			if rng, ok := s.Range(); ok {
				if lo, hi := rng.Bounds(); lo != "0" || hi != "" {
					t.Errorf("range = %q..%q", lo, hi)
				}
			} else {
				t.Errorf("missing range")
			}
		}
	}

	ei, ok := items[1].EnumInject()
	if !ok {
		t.Fatalf("item 1 is not an enum inject\n%s", formatAst(ast))
	}
	if prim, _ := ei.Primitive(); prim != IntKw {
		t.Errorf("inject primitive = %v", prim)
	}
	if entries := ei.Entries(); len(entries) != 1 {
		t.Errorf("inject entries = %d", len(entries))
	}
}

func TestParse_FieldTypes(t *testing.T) {
	src := `compound Kitchen {
	sink: byte[] @ 4,
	knives: (int | string | ::super::Knife),
	oven: id(minecraft:block),
	fridge: minecraft:item[crafting.result],
	pantry: ::storage::Pantry
}`
	ast := Parse([]byte(src))
	if len(ast.Errors()) != 0 {
		t.Fatalf("unexpected errors\n%s", formatAst(ast))
	}
	fields := mustCompound(t, ast).Fields()
	if len(fields) != 5 {
		t.Fatalf("fields = %d\n%s", len(fields), formatAst(ast))
	}

	wantTypes := []string{"array", "union", "id", "index", "named"}
	for i, f := range fields {
		ft, ok := f.Type()
		if !ok {
			t.Errorf("field %d has no type", i)
			continue
		}
		var got string
		switch ft.(type) {
		case ScalarTypeNode:
			got = "scalar"
		case ArrayTypeNode:
			got = "array"
		case ListTypeNode:
			got = "list"
		case IdTypeNode:
			got = "id"
		case UnionTypeNode:
			got = "union"
		case NamedTypeNode:
			got = "named"
		case IndexTypeNode:
			got = "index"
		}
		if got != wantTypes[i] {
			t.Errorf("field %d type = %s, want %s", i, got, wantTypes[i])
		}
	}

	if u, ok := fields[1].Type(); ok {
		if members := u.(UnionTypeNode).Members(); len(members) != 3 {
			t.Errorf("union members = %d", len(members))
		}
	}
	if idt, ok := fields[2].Type(); ok {
		if reg, _ := idt.(IdTypeNode).Registry(); reg != "minecraft:block" {
			t.Errorf("id registry = %q", reg)
		}
	}
	if ix, ok := fields[3].Type(); ok {
		ri, ok := ix.(IndexTypeNode).Index()
		if !ok {
			t.Fatalf("index type has no registry index")
		}
		if reg, _ := ri.Registry(); reg != "minecraft:item" {
			t.Errorf("index registry = %q", reg)
		}
		if fp := ri.FieldPath(); len(fp) != 2 || fp[0] != "crafting" || fp[1] != "result" {
			t.Errorf("field path = %v", fp)
		}
	}
}

func mustCompound(t *testing.T, ast *Ast) CompoundNode {
	t.Helper()
	for _, item := range FileOf(ast).Items() {
		if cpd, ok := item.Compound(); ok {
			return cpd
		}
	}
	t.Fatalf("no compound in file\n%s", formatAst(ast))
	return CompoundNode{}
}

func TestParse_DocComments(t *testing.T) {
	src := "/// Describes a cat.\n/// Second line.\ncompound Cat {\n\t/// How loud.\n\tvolume: int,\n}"
	ast := Parse([]byte(src))
	items := FileOf(ast).Items()
	if len(items) != 1 {
		t.Fatalf("items = %d\n%s", len(items), formatAst(ast))
	}
	docs := items[0].DocComments()
	if len(docs) != 2 || docs[0] != "/// Describes a cat." || docs[1] != "/// Second line." {
		t.Fatalf("item docs = %q", docs)
	}
	fields := mustCompound(t, ast).Fields()
	if len(fields) != 1 {
		t.Fatalf("fields = %d\n%s", len(fields), formatAst(ast))
	}
	fdocs := fields[0].DocComments()
	if len(fdocs) != 1 || fdocs[0] != "/// How loud." {
		t.Fatalf("field docs = %q", fdocs)
	}
}

func TestParse_Extends(t *testing.T) {
	src := "compound Pig extends ::entity::Base { }"
	ast := Parse([]byte(src))
	cpd := mustCompound(t, ast)
	ext, ok := cpd.Extends()
	if !ok {
		t.Fatalf("no extends clause\n%s", formatAst(ast))
	}
	path, ok := ext.IdentPath()
	if !ok {
		t.Fatalf("extends has no path")
	}
	if segs := path.Segments(); len(segs) != 2 || segs[1] != "Base" {
		t.Errorf("segments = %v", segs)
	}

	src = `compound Slot extends minecraft:item[inventory] { }`
	ast = Parse([]byte(src))
	ext, ok = mustCompound(t, ast).Extends()
	if !ok {
		t.Fatalf("no extends clause\n%s", formatAst(ast))
	}
	if _, ok := ext.RegistryIndex(); !ok {
		t.Errorf("extends must hold a registry index\n%s", formatAst(ast))
	}
}

func TestParse_Recovery(t *testing.T) {
	tests := []string{
		"compound { }",          // missing name
		"compound Foo { bar }",  // missing colon and type
		"enum(nope) E { }",      // bad primitive
		"mod ;",                 // missing name
		"inject frobnicate",     // inject with neither form
		"compound Foo { bar: }", // missing type
	}
	for _, src := range tests {
		ast := Parse([]byte(src))
		if len(ast.Errors()) == 0 {
			t.Errorf("%q: expected errors\n%s", src, formatAst(ast))
		}
		if got := leafConcat(ast); got != src {
			t.Errorf("%q: leaves = %q", src, got)
		}
	}
}

func TestParse_ErrorSpansResolved(t *testing.T) {
	src := "compound Foo { bar: }"
	ast := Parse([]byte(src))
	for _, e := range ast.Errors() {
		sp := e.Span()
		if sp.End.Less(sp.Start) {
			t.Errorf("error span %v is inverted", sp)
		}
	}
}
