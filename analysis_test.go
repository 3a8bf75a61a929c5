// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/evkit/evcdec"
)

// govSetConfigCalldata assembles a govSetConfig(base,quote,oracle) call.
func govSetConfigCalldata(t *testing.T, base, quote, oracle common.Address) []byte {
	t.Helper()

	blob, err := evcdec.Encode(evcdec.NewAddress(base), evcdec.NewAddress(quote), evcdec.NewAddress(oracle))
	if err != nil {
		t.Fatalf("failed to encode oracle config: %v", err)
	}
	return append([]byte{0x2c, 0x4e, 0x0a, 0x11}, blob...)
}

func TestAnalyzeGovernanceBatch(t *testing.T) {
	dec, err := evcdec.New(43114).DecodeHex(govBatchCalldata)
	if err != nil {
		t.Fatalf("failed to decode batch: %v", err)
	}
	an := evcdec.Analyze(dec)

	if an.TotalItems != 2 {
		t.Errorf("item count mismatch: have %d, want 2", an.TotalItems)
	}
	if an.NestedBatches != 0 {
		t.Errorf("nested batch count mismatch: have %d, want 0", an.NestedBatches)
	}
	if len(an.Governance) != 2 {
		t.Errorf("governance op count mismatch: have %d, want 2", len(an.Governance))
	}
	if len(an.Unknown) != 0 {
		t.Errorf("unknown op count mismatch: have %d, want 0", len(an.Unknown))
	}
	wantVaults := []common.Address{
		common.HexToAddress("0x8f23da78e3f31ab5deb75dc3282198bed630ffde"),
		common.HexToAddress("0xea534105c2ccc0582d82b285aa47a6b446383d44"),
	}
	vaults := an.VaultAddresses()
	if len(vaults) != len(wantVaults) {
		t.Fatalf("vault count mismatch: have %d, want %d", len(vaults), len(wantVaults))
	}
	for i, want := range wantVaults {
		if vaults[i] != want {
			t.Errorf("vault %d mismatch: have %v, want %v", i, vaults[i], want)
		}
	}
	if len(an.RouterChanges) != 0 {
		t.Errorf("router count mismatch: have %d, want 0", len(an.RouterChanges))
	}
}

func TestAnalyzeNestedAndUnknown(t *testing.T) {
	d := evcdec.New(43114)
	var (
		vault  = common.HexToAddress("0x8f23da78e3f31ab5deb75dc3282198bed630ffde")
		router = common.HexToAddress("0x1111111111111111111111111111111111111111")
		base   = common.HexToAddress("0x2222222222222222222222222222222222222222")
		quote  = common.HexToAddress("0x3333333333333333333333333333333333333333")
		oracle = common.HexToAddress("0x4444444444444444444444444444444444444444")
	)
	inner := batchCalldata(t,
		batchItem(vault, common.Address{}, 0, setCapsCalldata(t, 12813, 6)),
		batchItem(router, common.Address{}, 0, govSetConfigCalldata(t, base, quote, oracle)),
	)
	outer := batchCalldata(t,
		batchItem(vault, common.Address{}, 0, []byte{0xde, 0xad, 0xbe, 0xef, 0x01}),
		batchItem(d.Chain().EVC, common.Address{}, 0, inner),
	)
	dec, err := d.Decode(outer)
	if err != nil {
		t.Fatalf("failed to decode batch: %v", err)
	}
	an := evcdec.Analyze(dec)

	if an.TotalItems != 2 {
		t.Errorf("item count mismatch: have %d, want 2", an.TotalItems)
	}
	if an.NestedBatches != 1 {
		t.Errorf("nested batch count mismatch: have %d, want 1", an.NestedBatches)
	}
	if len(an.Governance) != 2 {
		t.Fatalf("governance op count mismatch: have %d, want 2", len(an.Governance))
	}
	for i, gov := range an.Governance {
		if gov.Depth != 1 {
			t.Errorf("governance op %d: depth mismatch: have %d, want 1", i, gov.Depth)
		}
	}
	if len(an.Unknown) != 1 {
		t.Fatalf("unknown op count mismatch: have %d, want 1", len(an.Unknown))
	}
	if unknown := an.Unknown[0]; unknown.Target != vault || unknown.Depth != 0 || unknown.DataLen != 1 {
		t.Errorf("unknown op mismatch: have %+v", unknown)
	}
	if vaults := an.VaultAddresses(); len(vaults) != 1 || vaults[0] != vault {
		t.Errorf("vault list mismatch: have %v, want [%v]", vaults, vault)
	}
	if routers := an.RouterAddresses(); len(routers) != 1 || routers[0] != router {
		t.Errorf("router list mismatch: have %v, want [%v]", routers, router)
	}
	if oracles := an.OracleAddresses(); len(oracles) != 1 || oracles[0] != oracle {
		t.Errorf("oracle list mismatch: have %v, want [%v]", oracles, oracle)
	}
}

func TestResolveAmountCap(t *testing.T) {
	tests := []struct {
		raw  uint16
		want string // "" for uncapped
	}{
		{raw: 0, want: ""},
		{raw: 6, want: "0"},     // mantissa 0: 0 * 10^6 / 100
		{raw: 12813, want: "20000000000000"}, // mantissa 200, exponent 13
		{raw: 32013, want: "50000000000000"}, // mantissa 500, exponent 13
		{raw: 6400, want: "1"},               // mantissa 100, exponent 0
		{raw: 129, want: "0"},                // mantissa 2, exponent 1: 20/100 truncates
	}
	for i, tt := range tests {
		amount := evcdec.ResolveAmountCap(tt.raw)
		if tt.want == "" {
			if amount != nil {
				t.Errorf("test %d: cap %d resolved to %v, want uncapped", i, tt.raw, amount)
			}
			continue
		}
		if amount == nil || amount.Dec() != tt.want {
			t.Errorf("test %d: cap %d mismatch: have %v, want %s", i, tt.raw, amount, tt.want)
		}
	}
}
