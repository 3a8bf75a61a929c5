// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Value is the universal decode result: a tagged union over every ABI value
// the codec can produce. A Value is immutable once built; accessors for the
// wrong kind return the kind's zero value.
type Value struct {
	typ  Type
	num  *uint256.Int // UintKind
	sig  *big.Int     // IntKind, sign extended
	flag bool         // BoolKind
	blob []byte       // AddressKind, FixedBytesKind, BytesKind, StringKind
	vals []Value      // ArrayKind, TupleKind
}

// NewUint wraps an unsigned integer of the given bit width.
func NewUint(bits int, n *uint256.Int) Value {
	return Value{typ: Uint(bits), num: n.Clone()}
}

// NewUint64 wraps a machine-word unsigned integer of the given bit width.
func NewUint64(bits int, n uint64) Value {
	return Value{typ: Uint(bits), num: uint256.NewInt(n)}
}

// NewInt wraps a signed integer of the given bit width.
func NewInt(bits int, n *big.Int) Value {
	return Value{typ: Int(bits), sig: new(big.Int).Set(n)}
}

// NewBool wraps a boolean.
func NewBool(b bool) Value {
	return Value{typ: Bool, flag: b}
}

// NewAddress wraps an account address.
func NewAddress(addr common.Address) Value {
	return Value{typ: Address, blob: addr.Bytes()}
}

// NewFixedBytes wraps a bytesN value, N taken from the slice length.
func NewFixedBytes(blob []byte) Value {
	return Value{typ: FixedBytes(len(blob)), blob: append([]byte(nil), blob...)}
}

// NewBytes wraps a dynamic byte string.
func NewBytes(blob []byte) Value {
	return Value{typ: Bytes, blob: append([]byte(nil), blob...)}
}

// NewString wraps a dynamic UTF-8 string.
func NewString(s string) Value {
	return Value{typ: String, blob: []byte(s)}
}

// NewArray wraps an ordered sequence of values of the same element type.
func NewArray(elem Type, elems ...Value) Value {
	return Value{typ: Array(elem), vals: elems}
}

// NewTuple wraps an ordered sequence of values under a tuple type. The value
// count must match the tuple's field count.
func NewTuple(typ Type, elems ...Value) Value {
	if typ.Kind != TupleKind || len(typ.Fields) != len(elems) {
		panic(fmt.Sprintf("tuple arity mismatch: type %s, %d values", typ, len(elems)))
	}
	return Value{typ: typ, vals: elems}
}

// Type returns the ABI type descriptor of the value.
func (v Value) Type() Type { return v.typ }

// Kind returns the ABI type family of the value.
func (v Value) Kind() Kind { return v.typ.Kind }

// Uint returns the unsigned integer payload.
func (v Value) Uint() *uint256.Int {
	if v.num == nil {
		return new(uint256.Int)
	}
	return v.num.Clone()
}

// Int returns the signed integer payload.
func (v Value) Int() *big.Int {
	if v.sig == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.sig)
}

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.flag }

// Addr returns the address payload.
func (v Value) Addr() common.Address { return common.BytesToAddress(v.blob) }

// Bytes returns the raw byte payload of address, fixed bytes, dynamic bytes
// and string values.
func (v Value) Bytes() []byte { return append([]byte(nil), v.blob...) }

// Text returns the string payload.
func (v Value) Text() string { return string(v.blob) }

// Values returns the ordered elements of array and tuple values.
func (v Value) Values() []Value { return v.vals }

// Len returns the element count of array and tuple values.
func (v Value) Len() int { return len(v.vals) }

// String renders the value for human consumption: decimal integers, lowercase
// hex addresses and byte strings, bracketed composites.
func (v Value) String() string {
	switch v.typ.Kind {
	case UintKind:
		return v.Uint().Dec()
	case IntKind:
		return v.Int().String()
	case BoolKind:
		return fmt.Sprintf("%t", v.flag)
	case AddressKind:
		return addressHex(v.Addr())
	case FixedBytesKind, BytesKind:
		return "0x" + hex.EncodeToString(v.blob)
	case StringKind:
		return fmt.Sprintf("%q", string(v.blob))
	case ArrayKind:
		parts := make([]string, len(v.vals))
		for i, e := range v.vals {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TupleKind:
		parts := make([]string, len(v.vals))
		for i, e := range v.vals {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("kind(%d)", v.typ.Kind)
	}
}

// MarshalJSON renders integers as arbitrary-precision JSON numbers, addresses
// and byte strings as lowercase hex, tuples as ordered name/value pairs.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.typ.Kind {
	case UintKind:
		return []byte(v.Uint().Dec()), nil
	case IntKind:
		return []byte(v.Int().String()), nil
	case BoolKind:
		return json.Marshal(v.flag)
	case AddressKind:
		return json.Marshal(addressHex(v.Addr()))
	case FixedBytesKind, BytesKind:
		return json.Marshal("0x" + hex.EncodeToString(v.blob))
	case StringKind:
		return json.Marshal(string(v.blob))
	case ArrayKind:
		if v.vals == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.vals)
	case TupleKind:
		pairs := make([]namedValue, len(v.vals))
		for i, e := range v.vals {
			pairs[i] = namedValue{Name: v.typ.Fields[i].Name, Value: e}
		}
		return json.Marshal(pairs)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, v.typ)
	}
}

type namedValue struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// addressHex renders the canonical lowercase hex form of an address.
func addressHex(addr common.Address) string {
	return "0x" + hex.EncodeToString(addr.Bytes())
}
