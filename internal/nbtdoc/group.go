// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package nbtdoc

import "fmt"

// GroupType enumerates every structural or joined node kind the nbtdoc
// grammar can produce.
type GroupType uint8

const (
	File GroupType = iota
	Error
	Item

	IdentPath
	MinecraftIdent

	RegistryIndex
	FieldPath

	Range

	ScalarType
	ArrayType
	ListType
	IdType
	UnionType
	NamedType
	IndexType

	CompoundDef
	CompoundExtends
	CompoundField

	EnumDef
	EnumEntry

	ModDecl
	UseStatement
	DescribesStatement
	DescribesBody

	CompoundInject
	EnumInject
)

func (t GroupType) String() string {
	switch t {
	case File:
		return "File"
	case Error:
		return "Error"
	case Item:
		return "Item"
	case IdentPath:
		return "IdentPath"
	case MinecraftIdent:
		return "MinecraftIdent"
	case RegistryIndex:
		return "RegistryIndex"
	case FieldPath:
		return "FieldPath"
	case Range:
		return "Range"
	case ScalarType:
		return "ScalarType"
	case ArrayType:
		return "ArrayType"
	case ListType:
		return "ListType"
	case IdType:
		return "IdType"
	case UnionType:
		return "UnionType"
	case NamedType:
		return "NamedType"
	case IndexType:
		return "IndexType"
	case CompoundDef:
		return "CompoundDef"
	case CompoundExtends:
		return "CompoundExtends"
	case CompoundField:
		return "CompoundField"
	case EnumDef:
		return "EnumDef"
	case EnumEntry:
		return "EnumEntry"
	case ModDecl:
		return "ModDecl"
	case UseStatement:
		return "UseStatement"
	case DescribesStatement:
		return "DescribesStatement"
	case DescribesBody:
		return "DescribesBody"
	case CompoundInject:
		return "CompoundInject"
	case EnumInject:
		return "EnumInject"
	default:
		return fmt.Sprintf("GroupType(%d)", uint8(t))
	}
}
