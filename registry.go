// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

//go:generate go run ./cmd/evcgen -manifest cmd/evcgen/signatures.yaml -out registry_table.go

// Group classifies an operation for downstream analysis.
type Group byte

const (
	GroupGeneral   Group = iota // token and vault views, user operations
	GroupEVC                    // EVC entry points (batch, call, account ops)
	GroupVaultGov               // vault governance setters
	GroupRouterGov              // oracle router governance setters
)

// String returns the lowercase label of the group.
func (g Group) String() string {
	switch g {
	case GroupEVC:
		return "evc"
	case GroupVaultGov:
		return "vault"
	case GroupRouterGov:
		return "router"
	default:
		return "general"
	}
}

// Param is one declared parameter of a known operation.
type Param struct {
	Name string
	Type Type
}

// Operation describes one known function: its 4-byte selector, name, ordered
// parameters and analysis group. Descriptors are built once from the fixed
// table in registry_table.go and never mutated.
type Operation struct {
	Selector [4]byte
	Name     string
	Group    Group
	Params   []Param
}

// Signature renders the canonical ABI signature of the operation.
func (op *Operation) Signature() string {
	parts := make([]string, len(op.Params))
	for i, p := range op.Params {
		parts[i] = p.Type.String()
	}
	return op.Name + "(" + strings.Join(parts, ",") + ")"
}

// Governance reports whether the operation mutates protocol configuration.
func (op *Operation) Governance() bool {
	return op.Group == GroupVaultGov || op.Group == GroupRouterGov
}

// batch reports whether the operation is an EVC batch entry point, whose
// argument bytes encode another full batch.
func (op *Operation) batch() bool {
	return op.Group == GroupEVC && op.Name == "batch"
}

// fields adapts the parameter list to the tuple codec's field list.
func (op *Operation) fields() []Field {
	fields := make([]Field, len(op.Params))
	for i, p := range op.Params {
		fields[i] = Field{Name: p.Name, Type: p.Type}
	}
	return fields
}

// registry is the immutable selector index, built once at process start.
var registry = func() map[[4]byte]*Operation {
	index := make(map[[4]byte]*Operation, len(operations))
	for i := range operations {
		op := &operations[i]
		if _, ok := index[op.Selector]; ok {
			panic(fmt.Sprintf("duplicate selector %#x in operation table", op.Selector))
		}
		index[op.Selector] = op
	}
	return index
}()

// Lookup returns the operation descriptor registered for a selector. A miss
// is not an error: unmatched calls decode as UnknownCall.
func Lookup(selector [4]byte) (*Operation, bool) {
	op, ok := registry[selector]
	return op, ok
}

// selectorHex renders a selector as 0x-prefixed hex.
func selectorHex(selector [4]byte) string {
	return "0x" + hex.EncodeToString(selector[:])
}
