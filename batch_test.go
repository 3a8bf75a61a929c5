// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/evkit/evcdec"
)

// govBatchCalldata is a real Avalanche governance payload: one batch(items)
// call raising the caps of two vaults through the 0xd87f780f setCaps setter.
const govBatchCalldata = "0xc16ae7a4" +
	"0000000000000000000000000000000000000000000000000000000000000020" +
	"0000000000000000000000000000000000000000000000000000000000000002" +
	"0000000000000000000000000000000000000000000000000000000000000040" +
	"0000000000000000000000000000000000000000000000000000000000000140" +
	"0000000000000000000000008f23da78e3f31ab5deb75dc3282198bed630ffde" +
	"00000000000000000000000069cc425b1e5f302e7db4e5d125ab984ec5186364" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000000000000000000000000000000000080" +
	"0000000000000000000000000000000000000000000000000000000000000044" +
	"d87f780f000000000000000000000000000000000000000000000000000000000000320d" +
	"000000000000000000000000000000000000000000000000000000000000320d" +
	"00000000000000000000000000000000000000000000000000000000" +
	"000000000000000000000000ea534105c2ccc0582d82b285aa47a6b446383d44" +
	"00000000000000000000000069cc425b1e5f302e7db4e5d125ab984ec5186364" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000000000000000000000000000000000080" +
	"0000000000000000000000000000000000000000000000000000000000000044" +
	"d87f780f000000000000000000000000000000000000000000000000000000000000320d" +
	"0000000000000000000000000000000000000000000000000000000000000006" +
	"00000000000000000000000000000000000000000000000000000000"

// batchItemType mirrors the on-chain item struct for building synthetic
// batches in tests.
var batchItemType = evcdec.Tuple(
	evcdec.Field{Name: "targetContract", Type: evcdec.Address},
	evcdec.Field{Name: "onBehalfOfAccount", Type: evcdec.Address},
	evcdec.Field{Name: "value", Type: evcdec.Uint(256)},
	evcdec.Field{Name: "data", Type: evcdec.Bytes},
)

// batchItem builds one encodable batch item value.
func batchItem(target, onBehalfOf common.Address, value uint64, data []byte) evcdec.Value {
	return evcdec.NewTuple(batchItemType,
		evcdec.NewAddress(target),
		evcdec.NewAddress(onBehalfOf),
		evcdec.NewUint64(256, value),
		evcdec.NewBytes(data),
	)
}

// batchCalldata assembles complete batch calldata from the given items.
func batchCalldata(t *testing.T, items ...evcdec.Value) []byte {
	t.Helper()

	blob, err := evcdec.Encode(evcdec.NewArray(batchItemType, items...))
	if err != nil {
		t.Fatalf("failed to encode batch items: %v", err)
	}
	return append([]byte{0xc1, 0x6a, 0xe7, 0xa4}, blob...)
}

// setCapsCalldata assembles a setCaps(uint16,uint16) call.
func setCapsCalldata(t *testing.T, supplyCap, borrowCap uint64) []byte {
	t.Helper()

	blob, err := evcdec.Encode(evcdec.NewUint64(16, supplyCap), evcdec.NewUint64(16, borrowCap))
	if err != nil {
		t.Fatalf("failed to encode caps: %v", err)
	}
	return append([]byte{0xd8, 0x7f, 0x78, 0x0f}, blob...)
}

func TestDecodeGovernanceBatch(t *testing.T) {
	dec, err := evcdec.New(43114).DecodeHex(govBatchCalldata)
	if err != nil {
		t.Fatalf("failed to decode batch: %v", err)
	}
	if want := [4]byte{0xc1, 0x6a, 0xe7, 0xa4}; dec.Selector != want {
		t.Errorf("selector mismatch: have %#x, want %#x", dec.Selector, want)
	}
	if len(dec.Items) != 2 {
		t.Fatalf("item count mismatch: have %d, want 2", len(dec.Items))
	}
	wants := []struct {
		target    common.Address
		supplyCap uint64
		borrowCap uint64
	}{
		{common.HexToAddress("0x8f23da78e3f31ab5deb75dc3282198bed630ffde"), 12813, 12813},
		{common.HexToAddress("0xea534105c2ccc0582d82b285aa47a6b446383d44"), 12813, 6},
	}
	onBehalfOf := common.HexToAddress("0x69cC425B1E5f302e7Db4E5d125ab984EC5186364")
	for i, want := range wants {
		item := dec.Items[i]
		if item.Target != want.target {
			t.Errorf("item %d: target mismatch: have %v, want %v", i, item.Target, want.target)
		}
		if item.OnBehalfOf != onBehalfOf {
			t.Errorf("item %d: onBehalfOf mismatch: have %v, want %v", i, item.OnBehalfOf, onBehalfOf)
		}
		if !item.Value.IsZero() {
			t.Errorf("item %d: value mismatch: have %v, want 0", i, item.Value)
		}
		call, ok := item.Call.(*evcdec.OperationCall)
		if !ok {
			t.Fatalf("item %d: call type mismatch: have %T, want *OperationCall", i, item.Call)
		}
		if call.Op.Name != "setCaps" {
			t.Errorf("item %d: function mismatch: have %s, want setCaps", i, call.Op.Name)
		}
		if supply, _ := call.Arg("supplyCap"); supply.Uint().Uint64() != want.supplyCap {
			t.Errorf("item %d: supplyCap mismatch: have %v, want %d", i, supply, want.supplyCap)
		}
		if borrow, _ := call.Arg("borrowCap"); borrow.Uint().Uint64() != want.borrowCap {
			t.Errorf("item %d: borrowCap mismatch: have %v, want %d", i, borrow, want.borrowCap)
		}
	}
}

func TestDecodeIdempotent(t *testing.T) {
	d := evcdec.New(43114)
	first, err := d.DecodeHex(govBatchCalldata)
	if err != nil {
		t.Fatalf("failed to decode batch: %v", err)
	}
	second, err := d.DecodeHex(govBatchCalldata)
	if err != nil {
		t.Fatalf("failed to re-decode batch: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated decodes differ:\nhave %v\nwant %v", second, first)
	}
}

func TestDecodeOrderPreserved(t *testing.T) {
	targets := []common.Address{
		common.HexToAddress("0x0000000000000000000000000000000000000001"),
		common.HexToAddress("0x0000000000000000000000000000000000000002"),
		common.HexToAddress("0x0000000000000000000000000000000000000003"),
		common.HexToAddress("0x0000000000000000000000000000000000000004"),
		common.HexToAddress("0x0000000000000000000000000000000000000005"),
	}
	items := make([]evcdec.Value, len(targets))
	for i, target := range targets {
		items[i] = batchItem(target, common.Address{}, uint64(i), setCapsCalldata(t, uint64(i), 0))
	}
	dec, err := evcdec.New(43114).Decode(batchCalldata(t, items...))
	if err != nil {
		t.Fatalf("failed to decode batch: %v", err)
	}
	if len(dec.Items) != len(targets) {
		t.Fatalf("item count mismatch: have %d, want %d", len(dec.Items), len(targets))
	}
	for i, item := range dec.Items {
		if item.Target != targets[i] {
			t.Errorf("item %d: target mismatch: have %v, want %v", i, item.Target, targets[i])
		}
		if item.Value.Uint64() != uint64(i) {
			t.Errorf("item %d: value mismatch: have %v, want %d", i, item.Value, i)
		}
	}
}

func TestDecodeZeroItems(t *testing.T) {
	dec, err := evcdec.New(43114).Decode(batchCalldata(t))
	if err != nil {
		t.Fatalf("failed to decode empty batch: %v", err)
	}
	if len(dec.Items) != 0 {
		t.Fatalf("item count mismatch: have %d, want 0", len(dec.Items))
	}
}

func TestDecodeShortCalldata(t *testing.T) {
	for _, blob := range [][]byte{nil, {0xc1}, {0xc1, 0x6a, 0xe7}} {
		if _, err := evcdec.New(43114).Decode(blob); !errors.Is(err, evcdec.ErrShortSelector) {
			t.Errorf("%d bytes: error mismatch: have %v, want %v", len(blob), err, evcdec.ErrShortSelector)
		}
	}
}

func TestDecodeUnknownSelectorFallback(t *testing.T) {
	// A non-batch top level call with an unregistered selector wraps into a
	// single item batch with the argument bytes untouched.
	raw := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}
	dec, err := evcdec.New(43114).Decode(raw)
	if err != nil {
		t.Fatalf("failed to decode unknown call: %v", err)
	}
	if len(dec.Items) != 1 {
		t.Fatalf("item count mismatch: have %d, want 1", len(dec.Items))
	}
	call, ok := dec.Items[0].Call.(*evcdec.UnknownCall)
	if !ok {
		t.Fatalf("call type mismatch: have %T, want *UnknownCall", dec.Items[0].Call)
	}
	if want := [4]byte{0xde, 0xad, 0xbe, 0xef}; call.Selector != want {
		t.Errorf("selector mismatch: have %#x, want %#x", call.Selector, want)
	}
	if want := []byte{0x01, 0x02, 0x03}; !reflect.DeepEqual(call.Raw, want) {
		t.Errorf("raw data mismatch: have %#x, want %#x", call.Raw, want)
	}
}

func TestDecodeUnknownItemCall(t *testing.T) {
	target := common.HexToAddress("0x0000000000000000000000000000000000001234")
	data := []byte{0xde, 0xad, 0xbe, 0xef, 0xaa, 0xbb}
	dec, err := evcdec.New(43114).Decode(batchCalldata(t, batchItem(target, common.Address{}, 0, data)))
	if err != nil {
		t.Fatalf("failed to decode batch: %v", err)
	}
	call, ok := dec.Items[0].Call.(*evcdec.UnknownCall)
	if !ok {
		t.Fatalf("call type mismatch: have %T, want *UnknownCall", dec.Items[0].Call)
	}
	if want := []byte{0xaa, 0xbb}; !reflect.DeepEqual(call.Raw, want) {
		t.Errorf("raw data mismatch: have %#x, want %#x", call.Raw, want)
	}
}

func TestDecodeShortItemData(t *testing.T) {
	// Items with less than a selector's worth of data still decode, keeping
	// whatever bytes were present.
	target := common.HexToAddress("0x0000000000000000000000000000000000001234")
	for _, data := range [][]byte{nil, {0xde}, {0xde, 0xad, 0xbe}} {
		dec, err := evcdec.New(43114).Decode(batchCalldata(t, batchItem(target, common.Address{}, 0, data)))
		if err != nil {
			t.Fatalf("%d data bytes: failed to decode batch: %v", len(data), err)
		}
		call, ok := dec.Items[0].Call.(*evcdec.UnknownCall)
		if !ok {
			t.Fatalf("%d data bytes: call type mismatch: have %T, want *UnknownCall", len(data), dec.Items[0].Call)
		}
		var want [4]byte
		copy(want[:], data)
		if call.Selector != want {
			t.Errorf("%d data bytes: selector mismatch: have %#x, want %#x", len(data), call.Selector, want)
		}
		if len(call.Raw) != 0 {
			t.Errorf("%d data bytes: raw data mismatch: have %#x, want empty", len(data), call.Raw)
		}
	}
}

func TestDecodeNestedBatch(t *testing.T) {
	d := evcdec.New(43114)
	vault := common.HexToAddress("0x8f23da78e3f31ab5deb75dc3282198bed630ffde")

	inner := batchCalldata(t, batchItem(vault, common.Address{}, 0, setCapsCalldata(t, 12813, 6)))
	outer := batchCalldata(t, batchItem(d.Chain().EVC, common.Address{}, 0, inner))

	dec, err := d.Decode(outer)
	if err != nil {
		t.Fatalf("failed to decode nested batch: %v", err)
	}
	nested, ok := dec.Items[0].Call.(*evcdec.NestedBatch)
	if !ok {
		t.Fatalf("call type mismatch: have %T, want *NestedBatch", dec.Items[0].Call)
	}
	if len(nested.Items) != 1 {
		t.Fatalf("nested item count mismatch: have %d, want 1", len(nested.Items))
	}
	call, ok := nested.Items[0].Call.(*evcdec.OperationCall)
	if !ok {
		t.Fatalf("nested call type mismatch: have %T, want *OperationCall", nested.Items[0].Call)
	}
	if call.Op.Name != "setCaps" {
		t.Errorf("nested function mismatch: have %s, want setCaps", call.Op.Name)
	}
}

func TestDecodeBatchAtForeignTarget(t *testing.T) {
	// Batch calldata aimed at anything but the EVC decodes as a plain
	// operation call, not a nested batch.
	d := evcdec.New(43114)
	vault := common.HexToAddress("0x8f23da78e3f31ab5deb75dc3282198bed630ffde")

	inner := batchCalldata(t)
	outer := batchCalldata(t, batchItem(vault, common.Address{}, 0, inner))

	dec, err := d.Decode(outer)
	if err != nil {
		t.Fatalf("failed to decode batch: %v", err)
	}
	call, ok := dec.Items[0].Call.(*evcdec.OperationCall)
	if !ok {
		t.Fatalf("call type mismatch: have %T, want *OperationCall", dec.Items[0].Call)
	}
	if call.Op.Name != "batch" {
		t.Errorf("function mismatch: have %s, want batch", call.Op.Name)
	}
}

func TestDecodeRecursionLimit(t *testing.T) {
	d := evcdec.New(43114)

	data := setCapsCalldata(t, 1, 1)
	target := common.HexToAddress("0x8f23da78e3f31ab5deb75dc3282198bed630ffde")
	for i := 0; i < 40; i++ {
		data = batchCalldata(t, batchItem(target, common.Address{}, 0, data))
		target = d.Chain().EVC
	}
	if _, err := d.Decode(data); !errors.Is(err, evcdec.ErrRecursionLimit) {
		t.Fatalf("error mismatch: have %v, want %v", err, evcdec.ErrRecursionLimit)
	}
}

func TestDecodeNestedBatchAllOrNothing(t *testing.T) {
	// A malformed nested batch fails the whole decode instead of producing a
	// partial tree.
	d := evcdec.New(43114)

	inner := append([]byte{0xc1, 0x6a, 0xe7, 0xa4}, 0xff) // garbage argument area
	outer := batchCalldata(t, batchItem(d.Chain().EVC, common.Address{}, 0, inner))
	if _, err := d.Decode(outer); err == nil {
		t.Fatal("malformed nested batch decoded without error")
	}
}
