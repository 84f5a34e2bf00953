// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import (
	"testing"

	"github.com/datapack-land/mcsyntax/internal/commands"
	"github.com/datapack-land/mcsyntax/internal/cst"
)

// a vanilla-shaped schema subset: execute/as redirects back into
// execute, run recurses into the root, say takes a greedy string.
const testSchema = `{
	"type": "root",
	"children": {
		"execute": {
			"type": "literal",
			"children": {
				"as": {
					"type": "literal",
					"children": {
						"targets": {
							"type": "argument",
							"parser": "minecraft:entity",
							"properties": {"amount": "multiple", "type": "entities"},
							"redirect": ["execute"]
						}
					}
				},
				"run": {"type": "literal"}
			}
		},
		"say": {
			"type": "literal",
			"children": {
				"message": {
					"type": "argument",
					"parser": "brigadier:string",
					"properties": {"type": "greedy"},
					"executable": true
				}
			}
		},
		"tp": {
			"type": "literal",
			"children": {
				"location": {
					"type": "argument",
					"parser": "minecraft:vec3",
					"executable": true
				}
			}
		},
		"tell": {
			"type": "literal",
			"children": {
				"targets": {
					"type": "argument",
					"parser": "minecraft:entity",
					"properties": {"amount": "multiple", "type": "players"},
					"children": {
						"message": {
							"type": "argument",
							"parser": "minecraft:message",
							"executable": true
						}
					}
				}
			}
		}
	}
}`

func testParser(t *testing.T) *CommandParser {
	t.Helper()
	cmds, err := commands.Load([]byte(testSchema))
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	return NewCommandParser(cmds)
}

func TestParse_ExecuteChain(t *testing.T) {
	src := `execute as @e[tag="foo",type=minecraft:pig] run say hi`
	ast := testParser(t).Parse([]byte(src))

	if len(ast.Errors()) != 0 {
		t.Fatalf("unexpected errors\n%s", formatAst(ast))
	}
	if got := leafConcat(ast); got != src {
		t.Fatalf("leaves = %q", got)
	}

	file := FileOf(ast)
	lines := file.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	cmd, ok := lines[0].(CommandNode)
	if !ok {
		t.Fatalf("line 0 is %T, want CommandNode", lines[0])
	}
	nodes := cmd.Nodes()
	// execute, as, targets, run, say, message
	if len(nodes) != 6 {
		t.Fatalf("command nodes = %d, want 6\n%s", len(nodes), formatAst(ast))
	}

	sel, ok := nodes[2].Selector()
	if !ok {
		t.Fatalf("node 2 has no selector\n%s", formatAst(ast))
	}
	args := sel.Args()
	if len(args) != 2 {
		t.Fatalf("selector entries = %d, want 2\n%s", len(args), formatAst(ast))
	}
	if key, _ := args[0].Key(); key != "tag" {
		t.Errorf("arg 0 key = %q", key)
	}
	if key, _ := args[1].Key(); key != "type" {
		t.Errorf("arg 1 key = %q", key)
	}

	// the greedy message lands in the final node
	last := nodes[5]
	if v, ok := groupChild(last.View(), UnquotedString); !ok || v.Text() != "hi" {
		t.Errorf("message text missing\n%s", formatAst(ast))
	}
}

func TestParse_Comment(t *testing.T) {
	src := "# hello world\n"
	ast := testParser(t).Parse([]byte(src))

	file := FileOf(ast)
	lines := file.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	comment, ok := lines[0].(CommentNode)
	if !ok {
		t.Fatalf("line 0 is %T, want CommentNode", lines[0])
	}
	if got := comment.Text(); got != "# hello world" {
		t.Errorf("comment text = %q", got)
	}
	if got := leafConcat(ast); got != src {
		t.Errorf("leaves = %q", got)
	}
}

func TestParse_DeadEnd(t *testing.T) {
	src := "execute frobnicate"
	ast := testParser(t).Parse([]byte(src))

	// the unmatched tail is wrapped in an Error group inside the command
	if _, ok := findGroup(ast, Error); !ok {
		t.Fatalf("no Error group\n%s", formatAst(ast))
	}
	var sawKeywordError bool
	for _, e := range ast.Errors() {
		if e.Node().Err.Kind == cst.ErrExpectedKeyword {
			sawKeywordError = true
		}
	}
	if !sawKeywordError {
		t.Errorf("expected an ExpectedKeyword error\n%s", formatAst(ast))
	}
	if got := leafConcat(ast); got != src {
		t.Errorf("leaves = %q", got)
	}
}

func TestParse_MultiLine(t *testing.T) {
	src := "say one\n# two\r\n\ntp ~ ~1 ~\n"
	ast := testParser(t).Parse([]byte(src))

	if got := leafConcat(ast); got != src {
		t.Fatalf("leaves = %q, want %q", got, src)
	}
	lines := FileOf(ast).Lines()
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3 (blank line yields nothing)\n%s", len(lines), formatAst(ast))
	}
	if _, ok := lines[0].(CommandNode); !ok {
		t.Errorf("line 0 is %T", lines[0])
	}
	if _, ok := lines[1].(CommentNode); !ok {
		t.Errorf("line 1 is %T", lines[1])
	}
	if cmd, ok := lines[2].(CommandNode); ok {
		if len(cmd.Nodes()) != 2 {
			t.Errorf("tp nodes = %d, want 2\n%s", len(cmd.Nodes()), formatAst(ast))
		}
	} else {
		t.Errorf("line 2 is %T", lines[2])
	}
	if len(ast.Errors()) != 0 {
		t.Errorf("unexpected errors\n%s", formatAst(ast))
	}
}

func TestParse_CoordCertainty(t *testing.T) {
	// `tp ~ ~1 ~` must pick the vec3 argument via the coord modifier
	src := "tp ~ ~1 ~"
	ast := testParser(t).Parse([]byte(src))
	coordV, ok := findGroup(ast, Coord)
	if !ok {
		t.Fatalf("no Coord node\n%s", formatAst(ast))
	}
	var parts int
	for _, c := range coordV.Children() {
		if c.IsGroup(g(CoordPart)) {
			parts++
		}
	}
	if parts != 3 {
		t.Fatalf("parts = %d\n%s", parts, formatAst(ast))
	}
}

func TestParse_SelectorUUID(t *testing.T) {
	src := "tell 12345678-1234-1234-1234-123456789012 hello there"
	ast := testParser(t).Parse([]byte(src))
	lines := FileOf(ast).Lines()
	cmd := lines[0].(CommandNode)
	sel, ok := cmd.Nodes()[1].Selector()
	if !ok {
		t.Fatalf("no selector\n%s", formatAst(ast))
	}
	id, ok := sel.UUID()
	if !ok {
		t.Fatalf("no uuid\n%s", formatAst(ast))
	}
	if id.String() != "12345678-1234-1234-1234-123456789012" {
		t.Errorf("uuid = %s", id)
	}
}

func TestParse_IncompleteCommand(t *testing.T) {
	// `execute as` ends before the selector; the tree still covers the
	// input and stays inside a Command node
	src := "execute as"
	ast := testParser(t).Parse([]byte(src))
	if got := leafConcat(ast); got != src {
		t.Fatalf("leaves = %q", got)
	}
	lines := FileOf(ast).Lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d\n%s", len(lines), formatAst(ast))
	}
	if _, ok := lines[0].(CommandNode); !ok {
		t.Fatalf("line 0 is %T", lines[0])
	}
}

func TestParse_TotalOverGarbage(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"   \n",
		"say\n",
		"]}{[",
		"execute as @e[tag=foo run say hi",
		"tp ~ ~",
	}
	for _, src := range inputs {
		ast := testParser(t).Parse([]byte(src))
		if got := leafConcat(ast); got != src {
			t.Errorf("%q: leaves = %q\n%s", src, got, formatAst(ast))
		}
	}
}
