// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mcf

import (
	"fmt"

	"github.com/datapack-land/mcsyntax/internal/commands"
)

// GroupType enumerates every structural or joined node kind the
// mcfunction grammar can produce. Argument-specific groups
// (ResourceLocation, NbtCompound, Selector...) are shared across every
// parser kind that needs them, the same way the grammar's
// sub-productions are.
type GroupType uint8

const (
	File GroupType = iota
	CommentGroup
	CommandGroup
	CommandNodeGroup
	Error

	ResourceLocation
	Range
	UnquotedString
	Integer
	Float
	FloatSciExpLower
	FloatSciExpUpper
	UUID
	Time
	TimeSuffixS
	TimeSuffixT
	TimeSuffixD

	Coord
	CoordPart

	BlockState
	BlockStateArguments

	ItemStack
	ItemPredicate

	Function

	NbtCompound
	NbtCompoundEntry
	NbtSequence
	NbtNumber
	NbtString
	NbtBoolean
	NbtSuffixB
	NbtSuffixS
	NbtSuffixL
	NbtSuffixF
	NbtSuffixD
	NbtPrefixB
	NbtPrefixI
	NbtPrefixL
	NbtPath
	NbtPathSegment
	NbtPathIndex

	BooleanTrue
	BooleanFalse

	Selector
	SelectorArgument
	SelectorArgumentEntry
	SelectorArgumentMap
	SelectorArgumentMapEntry
	SelectorModP
	SelectorModA
	SelectorModR
	SelectorModS
	SelectorModE

	JsonObject
	JsonObjectEntry
	JsonList
	JsonNull
)

// Group is the node kind the mcfunction parser instantiates the engine
// with. CommandNodeGroup nodes additionally carry the index of the
// schema node that was matched, so downstream consumers (completion,
// highlighting) can recover the command definition from the tree alone.
type Group struct {
	Type GroupType
	Cmd  commands.Index
}

func g(t GroupType) Group { return Group{Type: t} }

func cmdNode(ind commands.Index) Group {
	return Group{Type: CommandNodeGroup, Cmd: ind}
}

func (gr Group) String() string {
	if gr.Type == CommandNodeGroup {
		return fmt.Sprintf("CommandNode(%d)", gr.Cmd)
	}
	return gr.Type.String()
}

func (t GroupType) String() string {
	switch t {
	case File:
		return "File"
	case CommentGroup:
		return "Comment"
	case CommandGroup:
		return "Command"
	case CommandNodeGroup:
		return "CommandNode"
	case Error:
		return "Error"
	case ResourceLocation:
		return "ResourceLocation"
	case Range:
		return "Range"
	case UnquotedString:
		return "UnquotedString"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case FloatSciExpLower:
		return "FloatSciExpLower"
	case FloatSciExpUpper:
		return "FloatSciExpUpper"
	case UUID:
		return "Uuid"
	case Time:
		return "Time"
	case TimeSuffixS:
		return "TimeSuffixS"
	case TimeSuffixT:
		return "TimeSuffixT"
	case TimeSuffixD:
		return "TimeSuffixD"
	case Coord:
		return "Coord"
	case CoordPart:
		return "CoordPart"
	case BlockState:
		return "BlockState"
	case BlockStateArguments:
		return "BlockStateArguments"
	case ItemStack:
		return "ItemStack"
	case ItemPredicate:
		return "ItemPredicate"
	case Function:
		return "Function"
	case NbtCompound:
		return "NbtCompound"
	case NbtCompoundEntry:
		return "NbtCompoundEntry"
	case NbtSequence:
		return "NbtSequence"
	case NbtNumber:
		return "NbtNumber"
	case NbtString:
		return "NbtString"
	case NbtBoolean:
		return "NbtBoolean"
	case NbtSuffixB:
		return "NbtSuffixB"
	case NbtSuffixS:
		return "NbtSuffixS"
	case NbtSuffixL:
		return "NbtSuffixL"
	case NbtSuffixF:
		return "NbtSuffixF"
	case NbtSuffixD:
		return "NbtSuffixD"
	case NbtPrefixB:
		return "NbtPrefixB"
	case NbtPrefixI:
		return "NbtPrefixI"
	case NbtPrefixL:
		return "NbtPrefixL"
	case NbtPath:
		return "NbtPath"
	case NbtPathSegment:
		return "NbtPathSegment"
	case NbtPathIndex:
		return "NbtPathIndex"
	case BooleanTrue:
		return "BooleanTrue"
	case BooleanFalse:
		return "BooleanFalse"
	case Selector:
		return "Selector"
	case SelectorArgument:
		return "SelectorArgument"
	case SelectorArgumentEntry:
		return "SelectorArgumentEntry"
	case SelectorArgumentMap:
		return "SelectorArgumentMap"
	case SelectorArgumentMapEntry:
		return "SelectorArgumentMapEntry"
	case SelectorModP:
		return "SelectorModP"
	case SelectorModA:
		return "SelectorModA"
	case SelectorModR:
		return "SelectorModR"
	case SelectorModS:
		return "SelectorModS"
	case SelectorModE:
		return "SelectorModE"
	case JsonObject:
		return "JsonObject"
	case JsonObjectEntry:
		return "JsonObjectEntry"
	case JsonList:
		return "JsonList"
	case JsonNull:
		return "JsonNull"
	default:
		return fmt.Sprintf("GroupType(%d)", uint8(t))
	}
}
