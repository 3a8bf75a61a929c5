// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Encode packs the ordered values as the ABI encoding of a tuple: the exact
// inverse of the head/tail decode. Prefix a 4-byte selector to the result to
// obtain complete calldata.
func Encode(vals ...Value) ([]byte, error) {
	return encodeTuple(vals)
}

// encodeTuple writes the head region slot by slot, accumulating dynamic
// payloads in the tail. Offsets are relative to the tuple's own start.
func encodeTuple(vals []Value) ([]byte, error) {
	headSize := 0
	for _, v := range vals {
		headSize += v.typ.headSize()
	}
	head := make([]byte, 0, headSize)

	var tail []byte
	for _, v := range vals {
		if v.typ.Dynamic() {
			head = append(head, encodeWord(uint64(headSize+len(tail)))...)
			payload, err := encodeDynamic(v)
			if err != nil {
				return nil, err
			}
			tail = append(tail, payload...)
			continue
		}
		blob, err := encodeStatic(v)
		if err != nil {
			return nil, err
		}
		head = append(head, blob...)
	}
	return append(head, tail...), nil
}

// encodeDynamic produces the tail payload of a dynamic value.
func encodeDynamic(v Value) ([]byte, error) {
	switch v.typ.Kind {
	case BytesKind, StringKind:
		out := encodeWord(uint64(len(v.blob)))
		out = append(out, v.blob...)
		if pad := len(v.blob) % wordSize; pad != 0 {
			out = append(out, make([]byte, wordSize-pad)...)
		}
		return out, nil
	case ArrayKind:
		body, err := encodeTuple(v.vals)
		if err != nil {
			return nil, err
		}
		return append(encodeWord(uint64(len(v.vals))), body...), nil
	case TupleKind:
		return encodeTuple(v.vals)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, v.typ)
	}
}

// encodeStatic produces the inline head slots of a static value.
func encodeStatic(v Value) ([]byte, error) {
	switch v.typ.Kind {
	case UintKind:
		n := v.Uint()
		if v.typ.Bits < 256 && n.BitLen() > v.typ.Bits {
			return nil, fmt.Errorf("%w: uint%d", ErrIntegerOverflow, v.typ.Bits)
		}
		w := n.Bytes32()
		return w[:], nil
	case IntKind:
		n := v.Int()
		half := new(big.Int).Lsh(big.NewInt(1), uint(v.typ.Bits-1))
		if n.Cmp(half) >= 0 || n.Cmp(new(big.Int).Neg(half)) < 0 {
			return nil, fmt.Errorf("%w: int%d", ErrIntegerOverflow, v.typ.Bits)
		}
		if n.Sign() < 0 {
			n.Add(n, twoPow256)
		}
		out := make([]byte, wordSize)
		n.FillBytes(out)
		return out, nil
	case BoolKind:
		out := make([]byte, wordSize)
		if v.flag {
			out[wordSize-1] = 1
		}
		return out, nil
	case AddressKind:
		out := make([]byte, wordSize)
		copy(out[12:], v.blob)
		return out, nil
	case FixedBytesKind:
		out := make([]byte, wordSize)
		copy(out, v.blob)
		return out, nil
	case TupleKind:
		return encodeTuple(v.vals)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, v.typ)
	}
}

// encodeWord writes n into the low bytes of a 32-byte big-endian slot.
func encodeWord(n uint64) []byte {
	w := make([]byte, wordSize)
	binary.BigEndian.PutUint64(w[wordSize-8:], n)
	return w
}
