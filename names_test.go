// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestNamerResolution(t *testing.T) {
	chain := ChainByID(43114)
	namer := NewNamer(chain)
	namer.Add(common.HexToAddress("0x8f23da78e3f31ab5deb75dc3282198bed630ffde"), Metadata{Name: "EVK Vault eUSDC-15", Kind: "vault"})

	tests := []struct {
		addr common.Address
		want string
	}{
		{common.HexToAddress("0x8f23da78e3f31ab5deb75dc3282198bed630ffde"), "EVK Vault eUSDC-15"},
		{chain.EVC, "EVC"},
		{chain.VaultFactory, "EVault Factory"},
		{chain.VaultLens, "Vault Lens"},
		{common.HexToAddress("0xea534105c2ccc0582d82b285aa47a6b446383d44"), "0xea53...383d44"},
	}
	for i, tt := range tests {
		if name := namer.Name(tt.addr); name != tt.want {
			t.Errorf("test %d: name mismatch: have %q, want %q", i, name, tt.want)
		}
	}
}

func TestNamerLink(t *testing.T) {
	namer := NewNamer(ChainByID(43114))
	addr := common.HexToAddress("0xea534105c2ccc0582d82b285aa47a6b446383d44")
	want := "[0xea53...383d44](https://snowtrace.io/address/0xea534105c2ccc0582d82b285aa47a6b446383d44)"
	if link := namer.Link(addr); link != want {
		t.Fatalf("link mismatch: have %q, want %q", link, want)
	}
}

func TestNamerLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")
	blob := []byte(`
0x8f23da78e3f31ab5deb75dc3282198bed630ffde:
  name: EVK Vault eUSDC-15
  kind: vault
0xea534105c2ccc0582d82b285aa47a6b446383d44:
  name: EVK Vault eBTC.b-3
  kind: vault
`)
	if err := os.WriteFile(path, blob, 0644); err != nil {
		t.Fatalf("failed to write metadata file: %v", err)
	}
	namer := NewNamer(ChainByID(43114))
	if err := namer.LoadFile(path); err != nil {
		t.Fatalf("failed to load metadata file: %v", err)
	}
	if name := namer.Name(common.HexToAddress("0x8f23da78e3f31ab5deb75dc3282198bed630ffde")); name != "EVK Vault eUSDC-15" {
		t.Errorf("name mismatch: have %q, want %q", name, "EVK Vault eUSDC-15")
	}
	if name := namer.Name(common.HexToAddress("0xea534105c2ccc0582d82b285aa47a6b446383d44")); name != "EVK Vault eBTC.b-3" {
		t.Errorf("name mismatch: have %q, want %q", name, "EVK Vault eBTC.b-3")
	}
}

func TestNamerLoadFileInvalidAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")
	if err := os.WriteFile(path, []byte("not-an-address:\n  name: x\n"), 0644); err != nil {
		t.Fatalf("failed to write metadata file: %v", err)
	}
	if err := NewNamer(ChainByID(43114)).LoadFile(path); err == nil {
		t.Fatal("metadata file with bad address loaded without error")
	}
}

func TestNamerSeedGeneric(t *testing.T) {
	vault := common.HexToAddress("0x8f23da78e3f31ab5deb75dc3282198bed630ffde")
	an := &Analysis{
		VaultChanges: []ContractChanges{{Addr: vault}},
	}
	namer := NewNamer(ChainByID(43114))
	namer.SeedGeneric(an)
	if name := namer.Name(vault); name != "EVK Vault 0x8f23...30ffde" {
		t.Fatalf("seeded name mismatch: have %q, want %q", name, "EVK Vault 0x8f23...30ffde")
	}
	// Explicit metadata wins over seeding.
	namer.Add(vault, Metadata{Name: "EVK Vault eUSDC-15", Kind: "vault"})
	namer.SeedGeneric(an)
	if name := namer.Name(vault); name != "EVK Vault eUSDC-15" {
		t.Fatalf("name mismatch after seeding: have %q, want %q", name, "EVK Vault eUSDC-15")
	}
}
