// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import (
	"github.com/datapack-land/mcsyntax/internal/commands"
	"github.com/datapack-land/mcsyntax/internal/cst"
)

// certainty ranks how strongly the current token(s) suggest an argument
// parser will accept. The dispatcher descends into the argument child
// with the highest rank.
type certainty uint8

const (
	ctNo certainty = iota
	ctMaybe
	ctProbably
	ctYes
)

var entityAnchorKw = []Keyword{
	{Text: "eyes", Group: g(Error)},
	{Text: "feet", Group: g(Error)},
}

// parserLookahead is the per-parser-kind certainty table. It probes one
// or two tokens (never consuming) and deliberately errs toward Maybe:
// a wrong Maybe costs an error node inside the chosen child, a wrong No
// costs the whole rest of the line.
func parserLookahead(p *Parser, pt commands.ParserType) certainty {
	switch pt.Kind {
	case commands.BlockPos, commands.ColumnPos:
		if p.AtTokens(coordModifier) {
			return ctYes
		} else if p.AtToken(integerTk) {
			return ctMaybe
		}
	case commands.BlockPredicate, commands.Function, commands.ItemPredicate:
		if p.At(Hash) || p.AtToken(resourceLocationTk) {
			return ctYes
		}
	case commands.BlockState, commands.Dimension, commands.EntitySummon,
		commands.ItemEnchantment, commands.ItemStack, commands.MobEffect,
		commands.Particle, commands.ResourceLocation:
		if p.AtToken(resourceLocationTk) {
			return ctYes
		}
	case commands.Bool:
		if p.AtKeyword(booleanKw) {
			return ctYes
		}
	case commands.Color:
		if p.At(Word) {
			return ctProbably
		}
	case commands.Component:
		if p.AtTokens(cst.NewTokenSet(QuotedString, LCurly, LBracket)) {
			return ctYes
		}
	case commands.Double, commands.Float:
		if p.AtToken(floatTk) {
			return ctYes
		}
	case commands.Entity:
		if p.At(At) || p.AtToken(uuidTk) {
			return ctYes
		} else if p.AtTokens(allowedUqString) {
			if allowedUqString.Contains(p.Nth(1).Kind) {
				return ctProbably
			}
			return ctMaybe
		}
	case commands.EntityAnchor:
		if p.AtKeyword(entityAnchorKw) {
			return ctYes
		} else if p.At(Word) {
			return ctMaybe
		}
	case commands.GameProfile:
		if p.At(Word) {
			return ctYes
		} else if p.At(Digits) {
			return ctMaybe
		}
	case commands.Integer:
		if p.AtToken(integerTk) {
			return ctYes
		}
	case commands.IntRange:
		if p.At(DotDot) || p.AtToken(integerTk) {
			return ctYes
		}
	case commands.ItemSlot:
		if p.At(Word) {
			return ctYes
		} else if p.AtTokens(cst.NewTokenSet(Digits, Dot, DotDot)) {
			return ctMaybe
		}
	case commands.Message:
		return ctMaybe
	case commands.NbtCompoundTag:
		if p.At(LCurly) {
			return ctYes
		}
	case commands.NbtPath:
		if p.AtTokens(cst.NewTokenSet(Word, Dot)) {
			return ctYes
		} else if p.AtTokens(cst.NewTokenSet(LBracket, LCurly)) {
			return ctMaybe
		}
	case commands.NbtTag:
		return ctMaybe
	case commands.Objective:
		if p.AtToken(uqStringNeTk) {
			return ctProbably
		}
	case commands.ObjectiveCriteria:
		if p.AtTokens(cst.NewTokenSet(Word, Colon, Dot, DotDot)) {
			return ctProbably
		}
	case commands.Operation:
		if p.AtTokens(operationSet) {
			return ctYes
		}
	case commands.ScoreboardSlot:
		if p.AtTokens(cst.NewTokenSet(Dot, DotDot, Word)) {
			return ctMaybe
		}
	case commands.ScoreHolder:
		if p.AtTokens(cst.NewTokenSet(At, Word, Hash)) || p.AtToken(uuidTk) {
			return ctYes
		} else if p.At(Digits) {
			return ctMaybe
		}
	case commands.String:
		switch pt.String {
		case commands.Word:
			if p.AtToken(uqStringNeTk) {
				return ctProbably
			}
		case commands.Phrase:
			if p.At(QuotedString) {
				return ctYes
			} else if p.AtToken(uqStringNeTk) {
				return ctProbably
			}
		case commands.Greedy:
			return ctMaybe
		}
	case commands.Swizzle:
		if p.At(Word) {
			return ctMaybe
		}
	case commands.Team:
		if p.At(Word) {
			return ctProbably
		}
	case commands.Time:
		if p.At(Digits) {
			return ctProbably
		}
	case commands.Vec2, commands.Vec3, commands.Rotation:
		if p.AtTokens(coordModifier) {
			return ctYes
		} else if p.AtToken(floatTk) {
			return ctMaybe
		}
	}
	return ctNo
}
