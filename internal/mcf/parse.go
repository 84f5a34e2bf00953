// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import (
	"github.com/datapack-land/mcsyntax/internal/commands"
	"github.com/datapack-land/mcsyntax/internal/cst"
)

// CommandParser parses mcfunction source, steered by a commands schema.
// The schema is read-only and may be shared across parsers.
type CommandParser struct {
	commands *commands.Commands
}

func NewCommandParser(cmds *commands.Commands) *CommandParser {
	return &CommandParser{commands: cmds}
}

// Parse lexes src line by line and parses each line as a command or
// comment, producing one tree covering the whole input. Every non-empty
// line yields a Command or Comment node (possibly holding Error
// children); an empty line yields only its terminator leaf. The tree is
// total over arbitrary input.
func (cp *CommandParser) Parse(src []byte) *Ast {
	lines := Tokenize(src)
	p := cst.NewParser(lang, lines[0], src, g(File), false)
	cp.parseLine(p)
	p.BumpEOF()
	for _, line := range lines[1:] {
		p.ChangeTokens(line)
		cp.parseLine(p)
		p.BumpEOF()
	}
	return p.Build(true)
}

// ParseNbtValue parses src as one standalone SNBT value, independent of
// any command. Interior line terminators are folded into whitespace so
// a pretty-printed value spanning lines parses as a single stream.
func ParseNbtValue(src []byte) *Ast {
	lines := Tokenize(src)
	var toks []Token
	for i, line := range lines {
		for _, tk := range line {
			if tk.Kind == Eof && i < len(lines)-1 {
				tk.Kind = Whitespace
			}
			toks = append(toks, tk)
		}
	}
	p := cst.NewParser(lang, toks, src, g(File), true)
	nbtValue(p)
	return p.Build(true)
}

func (cp *CommandParser) parseLine(p *Parser) {
	if p.AtEOF() {
		return
	}
	if p.At(Hash) {
		cmk := p.Start(g(CommentGroup), cst.Join)
		p.Bump()
		message(p)
		p.Finish(cmk)
		return
	}
	cmk := p.Start(g(CommandGroup), cst.None)
	cp.parseCommand(cp.commands.RootIndex(), p)
	if !p.AtEOF() {
		// a walk that bailed mid-line (say, a missing separator) must
		// not leak tokens past the Command node
		errmk := p.Start(g(Error), cst.None)
		for !p.AtEOF() {
			p.Bump()
		}
		p.Finish(errmk)
	}
	p.Finish(cmk)
}

// parseCommand walks one schema node: consume its payload, require a
// whitespace separator, then descend into the best-matching child.
// Literal children that match are taken immediately; argument children
// compete by lookahead certainty, ties broken toward the child with the
// larger subtree.
func (cp *CommandParser) parseCommand(ind commands.Index, p *Parser) {
	if p.AtEOF() {
		return
	}
	c := cp.commands.At(ind)
	nt := c.NodeType()
	switch nt.Kind {
	case commands.Argument:
		mk := p.Start(cmdNode(ind), cst.None)
		cp.parseArgument(nt.Parser, p)
		p.Finish(mk)
	case commands.Literal:
		mk := p.Start(cmdNode(ind), cst.None)
		p.Bump()
		p.Finish(mk)
	case commands.Root:
	}
	if nt.Kind != commands.Root {
		if p.AtEOF() {
			// only executable nodes may end a command
			if !c.Executable() {
				p.Error(g(Error))
			}
			return
		}
		if !p.Expect(Whitespace) {
			return
		}
	}

	type candidate struct {
		cty certainty
		ind commands.Index
	}
	var best *candidate
	var literals []Keyword
	for _, ci := range c.ChildIndices() {
		child := cp.commands.At(ci)
		switch child.NodeType().Kind {
		case commands.Root:
			cp.parseCommand(cp.commands.RootIndex(), p)
			return
		case commands.Literal:
			if p.AtKeyword([]Keyword{{Text: child.Name(), Group: g(Error)}}) {
				cp.parseCommand(ci, p)
				return
			}
			for _, pp := range punct {
				if child.Name() == pp.s && p.At(pp.k) {
					cp.parseCommand(ci, p)
					return
				}
			}
			literals = append(literals, Keyword{Text: child.Name(), Group: g(Error)})
		case commands.Argument:
			cty := parserLookahead(p, child.NodeType().Parser)
			if best == nil {
				best = &candidate{cty, ci}
			} else {
				bcmd := cp.commands.At(best.ind)
				if cty > best.cty ||
					(bcmd.NodeType().Same(child.NodeType()) && len(child.ChildIndices()) > len(bcmd.ChildIndices())) {
					best = &candidate{cty, ci}
				}
			}
		}
	}
	if best != nil {
		if !p.AtEOF() {
			cp.parseCommand(best.ind, p)
		} else if !c.Executable() {
			p.Error(g(Error))
		}
		return
	}
	if !p.AtEOF() {
		// dead end: nothing the schema allows here
		errmk := p.Start(g(Error), cst.None)
		if len(literals) > 0 {
			p.AddErrors([]cst.ParseError[TokenKind, Group]{
				cst.ExpectedKeyword[TokenKind](literals...),
			})
		}
		for !p.AtEOF() {
			p.Bump()
		}
		p.Finish(errmk)
	}
}

func (cp *CommandParser) parseArgument(pt commands.ParserType, p *Parser) {
	switch pt.Kind {
	case commands.BlockPos, commands.Vec3:
		coord(p)
	case commands.BlockPredicate:
		blockPredicate(p)
	case commands.BlockState:
		blockState(p)
	case commands.Bool:
		if !p.ExpectKeyword(booleanKw) && p.At(Word) {
			p.Bump()
		}
	case commands.Color, commands.EntityAnchor, commands.Swizzle:
		p.Expect(Word)
	case commands.ColumnPos, commands.Rotation, commands.Vec2:
		coord2(p)
	case commands.Component:
		jsonValue(p)
	case commands.Dimension, commands.EntitySummon, commands.ItemEnchantment,
		commands.MobEffect, commands.Particle, commands.ResourceLocation,
		commands.ObjectiveCriteria:
		resourceLocation(p)
	case commands.Double, commands.Float:
		float(p)
	case commands.Entity:
		entity(p)
	case commands.Function:
		function(p)
	case commands.GameProfile:
		gameProfile(p)
	case commands.Integer:
		integer(p)
	case commands.IntRange:
		rangeArg(p)
	case commands.ItemPredicate:
		itemPredicate(p)
	case commands.ItemSlot, commands.Objective, commands.ScoreboardSlot, commands.Team:
		uqString(p)
	case commands.ItemStack:
		itemStack(p)
	case commands.Message:
		message(p)
	case commands.NbtCompoundTag:
		nbtCompound(p)
	case commands.NbtPath:
		nbtPath(p)
	case commands.NbtTag:
		nbtValue(p)
	case commands.Operation:
		p.EatTokens(operationSet)
	case commands.ScoreHolder:
		scoreHolder(p)
	case commands.String:
		switch pt.String {
		case commands.Word:
			uqString(p)
		case commands.Phrase:
			stringArg(p)
		case commands.Greedy:
			message(p)
		}
	case commands.Time:
		timeArg(p)
	}
}
