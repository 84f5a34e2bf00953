// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package commands

import (
	"encoding/json"
	"fmt"
)

// The flat-arena encoding used by the on-disk schema cache. Re-decoding
// the arena skips the redirect-resolution passes a fresh report load
// pays, which is the whole point of caching.

type encodedSchema struct {
	Root  Index         `json:"root"`
	Nodes []encodedNode `json:"nodes"`
}

type encodedNode struct {
	Name       string  `json:"name,omitempty"`
	Children   []Index `json:"children,omitempty"`
	Executable bool    `json:"executable,omitempty"`
	Kind       uint8   `json:"kind"`
	Parser     string  `json:"parser,omitempty"`
	String     uint8   `json:"string,omitempty"`
	Amount     uint8   `json:"amount,omitempty"`
	Target     uint8   `json:"target,omitempty"`
}

// Encode serializes the resolved arena.
func (c *Commands) Encode() ([]byte, error) {
	enc := encodedSchema{Root: c.root, Nodes: make([]encodedNode, len(c.arena))}
	for i, cmd := range c.arena {
		n := encodedNode{
			Name:       cmd.name,
			Children:   cmd.children,
			Executable: cmd.executable,
			Kind:       uint8(cmd.nodeType.Kind),
		}
		if cmd.nodeType.Kind == Argument {
			pt := cmd.nodeType.Parser
			n.Parser = parserNames[pt.Kind]
			n.String = uint8(pt.String)
			n.Amount = uint8(pt.Amount)
			n.Target = uint8(pt.Target)
		}
		enc.Nodes[i] = n
	}
	return json.Marshal(enc)
}

// Decode reverses Encode.
func Decode(data []byte) (*Commands, error) {
	var enc encodedSchema
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, fmt.Errorf("commands: decode: %w", err)
	}
	out := &Commands{root: enc.Root, arena: make([]Command, len(enc.Nodes))}
	for i, n := range enc.Nodes {
		cmd := Command{
			name:       n.Name,
			children:   n.Children,
			executable: n.Executable,
			nodeType:   NodeType{Kind: NodeKind(n.Kind)},
		}
		if cmd.nodeType.Kind == Argument {
			pk, ok := parserKinds[n.Parser]
			if !ok {
				return nil, fmt.Errorf("commands: decode: unknown parser %q", n.Parser)
			}
			cmd.nodeType.Parser = ParserType{
				Kind:   pk,
				String: StringKind(n.String),
				Amount: EntityAmount(n.Amount),
				Target: EntityTarget(n.Target),
			}
		}
		for _, ci := range cmd.children {
			if int(ci) >= len(enc.Nodes) || ci < 0 {
				return nil, fmt.Errorf("commands: decode: child index %d out of range", ci)
			}
		}
		out.arena[i] = cmd
	}
	if int(out.root) >= len(out.arena) {
		return nil, fmt.Errorf("commands: decode: root index %d out of range", out.root)
	}
	return out, nil
}
