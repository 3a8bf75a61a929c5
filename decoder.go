// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// wordSize is the ABI slot width: every static scalar occupies one 32-byte
// word, as do offsets and length prefixes.
const wordSize = 32

// twoPow256 is used to sign extend two's complement integer words.
var twoPow256 = new(big.Int).Lsh(big.NewInt(1), 256)

// decodeTuple decodes the ordered field list of a tuple whose encoding starts
// at base within blob. Static fields are read in place; dynamic fields are
// reached through an offset slot, relative to base per the head/tail layout.
// All reported offsets are absolute positions within blob.
func decodeTuple(blob []byte, base int, fields []Field) ([]Value, error) {
	vals := make([]Value, 0, len(fields))

	head := base
	for _, f := range fields {
		val, err := decodeValue(blob, base, head, f.Type)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
		head += f.Type.headSize()
	}
	return vals, nil
}

// decodeValue decodes a single value of type t whose head slot sits at head,
// inside a tuple whose encoding starts at base.
func decodeValue(blob []byte, base, head int, t Type) (Value, error) {
	if !t.Dynamic() {
		return decodeStatic(blob, head, t)
	}
	// Dynamic value: the head slot is an offset into the tail, relative to
	// the enclosing tuple's start.
	offset, err := decodeIndex(blob, head)
	if err != nil {
		return Value{}, err
	}
	pos := base + offset
	if pos > len(blob) {
		return Value{}, fmt.Errorf("%w: offset %d", ErrOutOfBounds, pos)
	}
	switch t.Kind {
	case BytesKind, StringKind:
		blob, err := decodeBlob(blob, pos)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: t, blob: blob}, nil

	case ArrayKind:
		length, err := decodeIndex(blob, pos)
		if err != nil {
			return Value{}, err
		}
		// Element head slots follow the length word; element offsets are
		// relative to the first element slot.
		elemBase := pos + wordSize
		elemHead := t.Elem.headSize()
		if length > (len(blob)-elemBase)/elemHead {
			return Value{}, fmt.Errorf("%w: %d array items at offset %d", ErrOutOfBounds, length, pos)
		}
		if length == 0 {
			return Value{typ: t}, nil
		}
		elems := make([]Value, 0, length)
		for i := 0; i < length; i++ {
			elem, err := decodeValue(blob, elemBase, elemBase+i*elemHead, *t.Elem)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, elem)
		}
		return Value{typ: t, vals: elems}, nil

	case TupleKind:
		vals, err := decodeTuple(blob, pos, t.Fields)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: t, vals: vals}, nil

	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

// decodeStatic decodes a value encoded inline in the head region.
func decodeStatic(blob []byte, off int, t Type) (Value, error) {
	switch t.Kind {
	case TupleKind:
		// Static tuples are inlined field by field, no indirection.
		vals, err := decodeTuple(blob, off, t.Fields)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: t, vals: vals}, nil
	case UintKind:
		n, err := decodeUint(blob, off, t.Bits)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: t, num: n}, nil
	case IntKind:
		n, err := decodeInt(blob, off, t.Bits)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: t, sig: n}, nil
	case BoolKind:
		b, err := decodeBool(blob, off)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: t, flag: b}, nil
	case AddressKind:
		w, err := word(blob, off)
		if err != nil {
			return Value{}, err
		}
		for _, b := range w[:12] {
			if b != 0 {
				return Value{}, fmt.Errorf("%w: offset %d", ErrMalformedAddress, off)
			}
		}
		return Value{typ: t, blob: append([]byte(nil), w[12:]...)}, nil
	case FixedBytesKind:
		w, err := word(blob, off)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: t, blob: append([]byte(nil), w[:t.Size]...)}, nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

// word returns the 32-byte slot starting at off.
func word(blob []byte, off int) ([]byte, error) {
	if off < 0 || off+wordSize > len(blob) {
		return nil, fmt.Errorf("%w: offset %d", ErrOutOfBounds, off)
	}
	return blob[off : off+wordSize], nil
}

// decodeUint reads an unsigned integer of the given bit width, big-endian and
// left-padded within its 32-byte slot.
func decodeUint(blob []byte, off, bits int) (*uint256.Int, error) {
	w, err := word(blob, off)
	if err != nil {
		return nil, err
	}
	n := new(uint256.Int).SetBytes(w)
	if bits < 256 && n.BitLen() > bits {
		return nil, fmt.Errorf("%w: uint%d at offset %d", ErrIntegerOverflow, bits, off)
	}
	return n, nil
}

// decodeInt reads a two's complement signed integer of the given bit width.
func decodeInt(blob []byte, off, bits int) (*big.Int, error) {
	w, err := word(blob, off)
	if err != nil {
		return nil, err
	}
	n := new(big.Int).SetBytes(w)
	if n.Bit(255) == 1 {
		n.Sub(n, twoPow256)
	}
	if bits < 256 {
		half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		if n.Cmp(half) >= 0 || n.Cmp(new(big.Int).Neg(half)) < 0 {
			return nil, fmt.Errorf("%w: int%d at offset %d", ErrIntegerOverflow, bits, off)
		}
	}
	return n, nil
}

// decodeBool reads a boolean slot, rejecting any value besides 0 and 1.
func decodeBool(blob []byte, off int) (bool, error) {
	w, err := word(blob, off)
	if err != nil {
		return false, err
	}
	for _, b := range w[:31] {
		if b != 0 {
			return false, fmt.Errorf("%w: offset %d", ErrInvalidBoolean, off)
		}
	}
	switch w[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: found %#x at offset %d", ErrInvalidBoolean, w[31], off)
	}
}

// decodeIndex reads a slot that must fit the platform int: tail offsets and
// length prefixes. Anything beyond the buffer length is already out of
// bounds, so the bound doubles as an overflow guard.
func decodeIndex(blob []byte, off int) (int, error) {
	w, err := word(blob, off)
	if err != nil {
		return 0, err
	}
	n := new(uint256.Int).SetBytes(w)
	if !n.IsUint64() || n.Uint64() > uint64(len(blob)) {
		return 0, fmt.Errorf("%w: offset %d", ErrOutOfBounds, off)
	}
	return int(n.Uint64()), nil
}

// decodeBlob reads a length-prefixed byte string: a 32-byte length slot at
// off followed by that many payload bytes. The zero padding rounding the
// payload up to a slot boundary is ignored on read.
func decodeBlob(blob []byte, off int) ([]byte, error) {
	length, err := decodeIndex(blob, off)
	if err != nil {
		return nil, err
	}
	start := off + wordSize
	if length > len(blob)-start {
		return nil, fmt.Errorf("%w: %d byte payload at offset %d", ErrOutOfBounds, length, off)
	}
	return append([]byte(nil), blob[start:start+length]...), nil
}
