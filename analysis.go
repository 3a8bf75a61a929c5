// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Analysis is the governance summary of a decoded batch: which vaults and
// oracle routers are reconfigured, by which operations, and what could not be
// attributed. It is a read-only view into the BatchDecoding tree.
type Analysis struct {
	TotalItems    int // top level items
	NestedBatches int // nested batch count across the whole tree

	Governance    []GovernanceOp
	VaultChanges  []ContractChanges
	RouterChanges []ContractChanges
	Unknown       []UnknownOp
}

// GovernanceOp is one configuration-mutating call found in the tree.
type GovernanceOp struct {
	Index  int // position within its enclosing batch
	Depth  int // nesting depth, 0 for the root batch
	Target common.Address
	Call   *OperationCall
}

// ContractChanges groups the governance calls aimed at one contract, in
// first-seen order.
type ContractChanges struct {
	Addr  common.Address
	Calls []*OperationCall
}

// UnknownOp is a call that matched no registry entry.
type UnknownOp struct {
	Index    int
	Depth    int
	Target   common.Address
	Selector [4]byte
	DataLen  int
}

// Analyze walks a decoded batch and classifies every call by its registry
// group: vault governance, router/oracle governance, or unknown.
func Analyze(dec *BatchDecoding) *Analysis {
	an := &Analysis{TotalItems: len(dec.Items)}
	an.walk(dec.Items, 0)
	return an
}

func (an *Analysis) walk(items []BatchItem, depth int) {
	for i, item := range items {
		switch call := item.Call.(type) {
		case *NestedBatch:
			an.NestedBatches++
			an.walk(call.Items, depth+1)

		case *OperationCall:
			if !call.Op.Governance() {
				continue
			}
			an.Governance = append(an.Governance, GovernanceOp{
				Index:  i,
				Depth:  depth,
				Target: item.Target,
				Call:   call,
			})
			if call.Op.Group == GroupVaultGov {
				addChange(&an.VaultChanges, item.Target, call)
			} else {
				addChange(&an.RouterChanges, item.Target, call)
			}

		case *UnknownCall:
			an.Unknown = append(an.Unknown, UnknownOp{
				Index:    i,
				Depth:    depth,
				Target:   item.Target,
				Selector: call.Selector,
				DataLen:  len(call.Raw),
			})
		}
	}
}

func addChange(set *[]ContractChanges, addr common.Address, call *OperationCall) {
	for i := range *set {
		if (*set)[i].Addr == addr {
			(*set)[i].Calls = append((*set)[i].Calls, call)
			return
		}
	}
	*set = append(*set, ContractChanges{Addr: addr, Calls: []*OperationCall{call}})
}

// VaultAddresses returns the vaults touched by governance calls, in
// first-seen order.
func (an *Analysis) VaultAddresses() []common.Address {
	return changeAddresses(an.VaultChanges)
}

// RouterAddresses returns the oracle routers touched by governance calls, in
// first-seen order.
func (an *Analysis) RouterAddresses() []common.Address {
	return changeAddresses(an.RouterChanges)
}

// OracleAddresses returns the oracle adapters referenced by router
// configuration calls, in first-seen order.
func (an *Analysis) OracleAddresses() []common.Address {
	var out []common.Address
	seen := make(map[common.Address]bool)
	for _, cc := range an.RouterChanges {
		for _, call := range cc.Calls {
			arg, ok := call.Arg("oracle")
			if !ok || arg.Kind() != AddressKind {
				continue
			}
			if addr := arg.Addr(); !seen[addr] {
				seen[addr] = true
				out = append(out, addr)
			}
		}
	}
	return out
}

func changeAddresses(set []ContractChanges) []common.Address {
	out := make([]common.Address, len(set))
	for i, cc := range set {
		out[i] = cc.Addr
	}
	return out
}

// ResolveAmountCap expands the EVK 16-bit decimal float cap encoding: the
// low 6 bits are a base-10 exponent, the high 10 bits a mantissa scaled by
// 1/100. A zero cap means uncapped and resolves to nil.
func ResolveAmountCap(raw uint16) *uint256.Int {
	if raw == 0 {
		return nil
	}
	amount := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(raw&63)))
	amount.Mul(amount, uint256.NewInt(uint64(raw>>6)))
	return amount.Div(amount, uint256.NewInt(100))
}
