// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import "github.com/ethereum/go-ethereum/common"

// Chain carries the per-network deployment addresses the decoder and the
// naming layer need: the EVC singleton (nested batch detection), the vault
// factory and lens (well-known address naming) and the explorer URL prefix
// for report links.
type Chain struct {
	ID           uint64
	Name         string
	ExplorerAddr string // explorer address page prefix
	EVC          common.Address
	VaultFactory common.Address
	VaultLens    common.Address
}

// DefaultChainID is used when no chain is specified.
const DefaultChainID = 43114

var chains = map[uint64]Chain{
	1: {
		ID:           1,
		Name:         "mainnet",
		ExplorerAddr: "https://etherscan.io/address/",
		EVC:          common.HexToAddress("0x0C9a3dd6b8F28529d72d7f9cE918D493519EE383"),
		VaultFactory: common.HexToAddress("0x29a56a1b8214D9Cf7c5561811750D5cBDb45CC8e"),
		VaultLens:    common.HexToAddress("0x079FA5cdE9c9647D26E79F3520Fbdf9dbCC0E45e"),
	},
	8453: {
		ID:           8453,
		Name:         "base",
		ExplorerAddr: "https://basescan.org/address/",
		EVC:          common.HexToAddress("0x5301c7dD20bD945D2013b48ed0DEE3A284ca8989"),
		VaultFactory: common.HexToAddress("0x7F321498A801A191a93C840750ed637149dDf8D0"),
		VaultLens:    common.HexToAddress("0xCCC8D18e40c439F5234042FbEA0f4f1528f52f00"),
	},
	43114: {
		ID:           43114,
		Name:         "avalanche",
		ExplorerAddr: "https://snowtrace.io/address/",
		EVC:          common.HexToAddress("0x08739CBede6E28E387685ba20e6409bD16969Cde"),
		VaultFactory: common.HexToAddress("0x238bF86bb451ec3CA69BB855f91BDA001aB118b9"),
		VaultLens:    common.HexToAddress("0x1f1997528FbD68496d8007E65599637fBBe85582"),
	},
	1923: {
		ID:           1923,
		Name:         "swell",
		ExplorerAddr: "https://swellscan.io/address/",
		EVC:          common.HexToAddress("0x08739CBede6E28E387685ba20e6409bD16969Cde"),
		VaultFactory: common.HexToAddress("0x238bF86bb451ec3CA69BB855f91BDA001aB118b9"),
		VaultLens:    common.HexToAddress("0x1f1997528FbD68496d8007E65599637fBBe85582"),
	},
}

// ChainByID returns the configuration for a chain ID, falling back to the
// default chain for networks without a known deployment.
func ChainByID(id uint64) Chain {
	if c, ok := chains[id]; ok {
		return c
	}
	return chains[DefaultChainID]
}

// Chains lists the networks with known deployments, ordered by chain ID.
func Chains() []Chain {
	out := make([]Chain, 0, len(chains))
	for _, id := range [...]uint64{1, 1923, 8453, 43114} {
		out = append(out, chains[id])
	}
	return out
}
