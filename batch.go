// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// selectorSize is the length of the function selector prefixing calldata.
const selectorSize = 4

// batchItemTuple is the ABI shape of one batch item.
var batchItemTuple = Tuple(
	Field{"targetContract", Address},
	Field{"onBehalfOfAccount", Address},
	Field{"value", Uint(256)},
	Field{"data", Bytes},
)

// batchFields is the argument list of the batch entry points: a single
// dynamic array of items.
var batchFields = []Field{{Name: "items", Type: Array(batchItemTuple)}}

// BatchDecoding is the root of a decode result: the raw top-level selector
// and the ordered item sequence. Immutable once produced.
type BatchDecoding struct {
	Selector [4]byte
	Items    []BatchItem
}

// BatchItem is one decoded sub-call of a batch.
type BatchItem struct {
	Target     common.Address
	OnBehalfOf common.Address
	Value      *uint256.Int
	Call       Call
}

// Call is the decoded payload of a batch item: exactly one of UnknownCall,
// OperationCall or NestedBatch.
type Call interface {
	isCall()
}

// UnknownCall is a call whose selector matched no registry entry, with the
// argument bytes preserved verbatim. Calls shorter than a selector are also
// represented this way, with whatever bytes were present.
type UnknownCall struct {
	Selector [4]byte
	Raw      []byte
}

// OperationCall is a call matched against the registry, with its arguments
// decoded in declared parameter order.
type OperationCall struct {
	Op   *Operation
	Args []Arg
}

// NestedBatch is a batch-within-a-batch: an item targeting the EVC itself
// with batch calldata. Its items satisfy the same guarantees as the root's.
type NestedBatch struct {
	Items []BatchItem
}

func (*UnknownCall) isCall()   {}
func (*OperationCall) isCall() {}
func (*NestedBatch) isCall()   {}

// Arg is one decoded argument, paired with its declared parameter name.
type Arg struct {
	Name  string
	Value Value
}

// Arg returns the decoded argument with the given parameter name.
func (c *OperationCall) Arg(name string) (Value, bool) {
	for _, a := range c.Args {
		if a.Name == name {
			return a.Value, true
		}
	}
	return Value{}, false
}

// decodeItems decodes the argument area of a batch call (everything after
// the selector) into the ordered item sequence, recursing into nested
// batches up to MaxBatchDepth.
func (d *Decoder) decodeItems(blob []byte, depth int) ([]BatchItem, error) {
	if depth > MaxBatchDepth {
		return nil, fmt.Errorf("%w: depth %d", ErrRecursionLimit, depth)
	}
	args, err := decodeTuple(blob, 0, batchFields)
	if err != nil {
		return nil, err
	}
	structs := args[0].Values()

	items := make([]BatchItem, 0, len(structs))
	for _, s := range structs {
		fields := s.Values()
		var (
			target     = fields[0].Addr()
			onBehalfOf = fields[1].Addr()
			value      = fields[2].Uint()
			data       = fields[3].Bytes()
		)
		call, err := d.decodeCall(target, data, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, BatchItem{
			Target:     target,
			OnBehalfOf: onBehalfOf,
			Value:      value,
			Call:       call,
		})
	}
	return items, nil
}

// decodeCall decodes one item's embedded calldata: selector dispatch through
// the registry, argument decode through the tuple codec, and recursion when
// the item re-enters the EVC's batch entry point.
func (d *Decoder) decodeCall(target common.Address, data []byte, depth int) (Call, error) {
	if len(data) < selectorSize {
		// Empty or truncated calls are representable, not fatal.
		call := &UnknownCall{}
		copy(call.Selector[:], data)
		return call, nil
	}
	var selector [4]byte
	copy(selector[:], data)

	op, ok := Lookup(selector)
	if !ok {
		return &UnknownCall{Selector: selector, Raw: append([]byte(nil), data[selectorSize:]...)}, nil
	}
	if op.batch() && target == d.chain.EVC {
		items, err := d.decodeItems(data[selectorSize:], depth+1)
		if err != nil {
			return nil, err
		}
		return &NestedBatch{Items: items}, nil
	}
	vals, err := decodeTuple(data[selectorSize:], 0, op.fields())
	if err != nil {
		return nil, err
	}
	args := make([]Arg, len(vals))
	for i, v := range vals {
		args[i] = Arg{Name: op.Params[i].Name, Value: v}
	}
	return &OperationCall{Op: op, Args: args}, nil
}

// MarshalJSON renders the decoding with lowercase hex addresses and
// arbitrary-precision integer values.
func (b *BatchDecoding) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Selector string      `json:"selector"`
		Items    []BatchItem `json:"items"`
	}{selectorHex(b.Selector), b.Items})
}

func (it BatchItem) MarshalJSON() ([]byte, error) {
	value := it.Value
	if value == nil {
		value = new(uint256.Int)
	}
	return json.Marshal(struct {
		Target     string          `json:"targetContract"`
		OnBehalfOf string          `json:"onBehalfOfAccount"`
		Value      json.RawMessage `json:"value"`
		Call       Call            `json:"call"`
	}{
		Target:     addressHex(it.Target),
		OnBehalfOf: addressHex(it.OnBehalfOf),
		Value:      json.RawMessage(value.Dec()),
		Call:       it.Call,
	})
}

func (c *UnknownCall) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string `json:"kind"`
		Selector string `json:"selector"`
		Data     string `json:"data"`
	}{"unknown", selectorHex(c.Selector), "0x" + hex.EncodeToString(c.Raw)})
}

func (c *OperationCall) MarshalJSON() ([]byte, error) {
	args := make([]namedValue, len(c.Args))
	for i, a := range c.Args {
		args[i] = namedValue{Name: a.Name, Value: a.Value}
	}
	return json.Marshal(struct {
		Kind     string       `json:"kind"`
		Function string       `json:"function"`
		Selector string       `json:"selector"`
		Group    string       `json:"group"`
		Args     []namedValue `json:"args"`
	}{"operation", c.Op.Name, selectorHex(c.Op.Selector), c.Op.Group.String(), args})
}

func (c *NestedBatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string      `json:"kind"`
		Items []BatchItem `json:"items"`
	}{"batch", c.Items})
}
