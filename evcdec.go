// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package evcdec decodes Ethereum Vault Connector batch calldata into an
// inspectable tree and classifies the decoded calls for governance review.
//
// The decoder is a recursive ABI parser: a batch is an ordered array of
// (targetContract, onBehalfOfAccount, value, data) items, and an item whose
// target is the EVC itself with batch calldata encodes another full batch.
// Decoding is pure computation over the input buffer: no I/O, no shared
// mutable state, safe for concurrent use on independent inputs.
package evcdec

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// MaxBatchDepth is the ceiling on nested batch recursion. Calldata is
// tooling- or attacker-controlled, so depth is bounded explicitly instead of
// leaning on the goroutine stack.
const MaxBatchDepth = 32

// Decoder decodes batch calldata against one chain's EVC deployment. The
// zero value is not usable; construct with New. A Decoder is stateless and
// may be shared across goroutines.
type Decoder struct {
	chain Chain
}

// New returns a decoder for the given chain ID, falling back to the default
// chain for networks without a known deployment.
func New(chainID uint64) *Decoder {
	return &Decoder{chain: ChainByID(chainID)}
}

// Chain returns the chain configuration the decoder resolves against.
func (d *Decoder) Chain() Chain { return d.chain }

// Decode parses complete calldata: a 4-byte selector followed by the ABI
// encoded argument area. Batch selectors decode into their item sequence;
// any other call is wrapped as a single-item batch so every input yields the
// same tree shape. Decoding is all or nothing: any malformed slot fails the
// whole call rather than returning a truncated tree.
func (d *Decoder) Decode(data []byte) (*BatchDecoding, error) {
	if len(data) < selectorSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortSelector, len(data))
	}
	var selector [4]byte
	copy(selector[:], data)

	if op, ok := Lookup(selector); ok && op.batch() {
		items, err := d.decodeItems(data[selectorSize:], 0)
		if err != nil {
			return nil, err
		}
		return &BatchDecoding{Selector: selector, Items: items}, nil
	}
	// Not a batch entry point: wrap the single call so callers always get a
	// batch tree back. The synthetic item has no meaningful target.
	call, err := d.decodeCall(common.Address{}, data, 0)
	if err != nil {
		return nil, err
	}
	return &BatchDecoding{
		Selector: selector,
		Items: []BatchItem{{
			Value: new(uint256.Int),
			Call:  call,
		}},
	}, nil
}

// DecodeHex parses hex calldata, with or without the 0x prefix.
func (d *Decoder) DecodeHex(input string) (*BatchDecoding, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "0x") && !strings.HasPrefix(input, "0X") {
		input = "0x" + input
	}
	blob, err := hexutil.Decode(strings.ToLower(input))
	if err != nil {
		return nil, fmt.Errorf("evcdec: invalid hex calldata: %w", err)
	}
	return d.Decode(blob)
}
