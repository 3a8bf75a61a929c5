// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import "errors"

// ErrOutOfBounds is returned when a read or a resolved tail offset would land
// past the end of the calldata buffer.
var ErrOutOfBounds = errors.New("evcdec: read beyond calldata bounds")

// ErrShortSelector is returned when top level calldata is shorter than the
// 4-byte function selector.
var ErrShortSelector = errors.New("evcdec: calldata shorter than selector")

// ErrMalformedAddress is returned when an address slot carries non-zero bytes
// in its high-order 12-byte padding.
var ErrMalformedAddress = errors.New("evcdec: non-zero padding in address slot")

// ErrRecursionLimit is returned when nested batches exceed the configured
// depth ceiling.
var ErrRecursionLimit = errors.New("evcdec: nested batch depth limit exceeded")

// ErrUnsupportedType is returned when a registry entry declares a parameter
// type the codec does not implement. A well-formed registry never trips this.
var ErrUnsupportedType = errors.New("evcdec: unsupported parameter type")

// ErrInvalidBoolean is returned when a boolean slot holds anything besides
// zero or one.
var ErrInvalidBoolean = errors.New("evcdec: boolean slot not 0 or 1")

// ErrIntegerOverflow is returned when an integer slot carries a value wider
// than its declared bit width.
var ErrIntegerOverflow = errors.New("evcdec: integer wider than declared width")
