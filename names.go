// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// Metadata is what is known about one contract address beyond its bytes.
type Metadata struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // vault, router, oracle, asset, ...
}

// Namer resolves contract addresses to human-readable names for reports:
// explicit metadata first, then the chain's well-known system addresses,
// then a shortened hex form.
type Namer struct {
	chain Chain
	meta  map[common.Address]Metadata
}

// NewNamer returns a namer for one chain's deployment.
func NewNamer(chain Chain) *Namer {
	return &Namer{chain: chain, meta: make(map[common.Address]Metadata)}
}

// Add records metadata for an address, replacing any previous entry.
func (n *Namer) Add(addr common.Address, md Metadata) {
	n.meta[addr] = md
}

// LoadFile merges a YAML metadata file: a mapping from hex address to
// {name, kind}.
func (n *Namer) LoadFile(path string) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var entries map[string]Metadata
	if err := yaml.Unmarshal(blob, &entries); err != nil {
		return fmt.Errorf("evcdec: invalid metadata file %s: %w", path, err)
	}
	for addr, md := range entries {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("evcdec: invalid address %q in metadata file %s", addr, path)
		}
		n.Add(common.HexToAddress(addr), md)
	}
	return nil
}

// SeedGeneric fills in placeholder names for the vault, router and oracle
// addresses an analysis touched that have no metadata yet.
func (n *Namer) SeedGeneric(an *Analysis) {
	for _, addr := range an.VaultAddresses() {
		n.seed(addr, "EVK Vault", "vault")
	}
	for _, addr := range an.RouterAddresses() {
		n.seed(addr, "Oracle Router", "router")
	}
	for _, addr := range an.OracleAddresses() {
		n.seed(addr, "Oracle", "oracle")
	}
}

func (n *Namer) seed(addr common.Address, prefix, kind string) {
	if _, ok := n.meta[addr]; ok {
		return
	}
	n.meta[addr] = Metadata{Name: prefix + " " + shortAddress(addr), Kind: kind}
}

// Name returns the display name of an address.
func (n *Namer) Name(addr common.Address) string {
	if md, ok := n.meta[addr]; ok && md.Name != "" {
		return md.Name
	}
	switch addr {
	case n.chain.EVC:
		return "EVC"
	case n.chain.VaultFactory:
		return "EVault Factory"
	case n.chain.VaultLens:
		return "Vault Lens"
	}
	return shortAddress(addr)
}

// Link returns a markdown explorer link for an address.
func (n *Namer) Link(addr common.Address) string {
	return fmt.Sprintf("[%s](%s%s)", n.Name(addr), n.chain.ExplorerAddr, addressHex(addr))
}

// shortAddress renders the compact 0xABCD...123456 form: first and last
// bytes of the address, enough to eyeball-match against an explorer.
func shortAddress(addr common.Address) string {
	hex := addressHex(addr)
	return hex[:6] + "..." + hex[len(hex)-6:]
}
