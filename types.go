// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import (
	"fmt"
	"strings"
)

// Kind enumerates the ABI type families the codec implements.
type Kind byte

const (
	UintKind       Kind = iota // unsigned integer, 8-256 bits
	IntKind                    // signed integer, 8-256 bits, two's complement
	BoolKind                   // boolean
	AddressKind                // 20-byte account address
	FixedBytesKind             // bytes1..bytes32
	BytesKind                  // dynamic byte string
	StringKind                 // dynamic UTF-8 string
	ArrayKind                  // dynamic array of a homogeneous element type
	TupleKind                  // ordered, named fields
)

// Type describes one ABI type. Types are immutable value descriptors: the
// registry builds them once and decode/encode only ever read them.
type Type struct {
	Kind   Kind
	Bits   int     // integer bit width (UintKind, IntKind)
	Size   int     // byte width (FixedBytesKind)
	Elem   *Type   // element type (ArrayKind)
	Fields []Field // ordered members (TupleKind)
}

// Field is a named member of a tuple type.
type Field struct {
	Name string
	Type Type
}

// Simple types are package variables so registry tables read like ABI
// signatures.
var (
	Bool    = Type{Kind: BoolKind}
	Address = Type{Kind: AddressKind}
	Bytes   = Type{Kind: BytesKind}
	String  = Type{Kind: StringKind}
)

// Uint returns the unsigned integer type of the given bit width.
func Uint(bits int) Type {
	if bits <= 0 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("invalid uint width: %d", bits))
	}
	return Type{Kind: UintKind, Bits: bits}
}

// Int returns the signed integer type of the given bit width.
func Int(bits int) Type {
	if bits <= 0 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("invalid int width: %d", bits))
	}
	return Type{Kind: IntKind, Bits: bits}
}

// FixedBytes returns the bytesN type of the given byte width.
func FixedBytes(size int) Type {
	if size <= 0 || size > 32 {
		panic(fmt.Sprintf("invalid fixed bytes width: %d", size))
	}
	return Type{Kind: FixedBytesKind, Size: size}
}

// Array returns the dynamic array type over elem.
func Array(elem Type) Type {
	return Type{Kind: ArrayKind, Elem: &elem}
}

// Tuple returns the tuple type with the given ordered fields.
func Tuple(fields ...Field) Type {
	return Type{Kind: TupleKind, Fields: fields}
}

// Dynamic reports whether the type is tail-encoded: its head slot holds an
// offset into the enclosing tuple's tail region instead of the value itself.
func (t Type) Dynamic() bool {
	switch t.Kind {
	case BytesKind, StringKind, ArrayKind:
		return true
	case TupleKind:
		for _, f := range t.Fields {
			if f.Type.Dynamic() {
				return true
			}
		}
	}
	return false
}

// headSize returns the number of bytes the type occupies in a tuple's head
// region: one 32-byte slot for scalars and for offsets of dynamic types, the
// full inlined size for static tuples.
func (t Type) headSize() int {
	if t.Kind == TupleKind && !t.Dynamic() {
		size := 0
		for _, f := range t.Fields {
			size += f.Type.headSize()
		}
		return size
	}
	return wordSize
}

// String renders the canonical ABI notation of the type.
func (t Type) String() string {
	switch t.Kind {
	case UintKind:
		return fmt.Sprintf("uint%d", t.Bits)
	case IntKind:
		return fmt.Sprintf("int%d", t.Bits)
	case BoolKind:
		return "bool"
	case AddressKind:
		return "address"
	case FixedBytesKind:
		return fmt.Sprintf("bytes%d", t.Size)
	case BytesKind:
		return "bytes"
	case StringKind:
		return "string"
	case ArrayKind:
		return t.Elem.String() + "[]"
	case TupleKind:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = f.Type.String()
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return fmt.Sprintf("kind(%d)", t.Kind)
	}
}
