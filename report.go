// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package evcdec

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// RenderJSON writes the decoded tree as indented JSON.
func RenderJSON(w io.Writer, dec *BatchDecoding) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dec)
}

// RenderText writes a plain-text summary and item tree.
func RenderText(w io.Writer, dec *BatchDecoding, an *Analysis, namer *Namer) error {
	var b strings.Builder

	b.WriteString("EVC batch decoding\n")
	b.WriteString("==================\n")
	fmt.Fprintf(&b, "Selector:       %s\n", selectorHex(dec.Selector))
	fmt.Fprintf(&b, "Items:          %d\n", an.TotalItems)
	fmt.Fprintf(&b, "Governance ops: %d\n", len(an.Governance))
	fmt.Fprintf(&b, "Vaults changed: %d\n", len(an.VaultChanges))
	fmt.Fprintf(&b, "Routers changed:%d\n", len(an.RouterChanges))
	fmt.Fprintf(&b, "Unknown ops:    %d\n", len(an.Unknown))
	fmt.Fprintf(&b, "Nested batches: %d\n", an.NestedBatches)
	b.WriteString("\n")

	writeItemsText(&b, dec.Items, namer, 0)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeItemsText(b *strings.Builder, items []BatchItem, namer *Namer, indent int) {
	pad := strings.Repeat("  ", indent)
	for i, item := range items {
		fmt.Fprintf(b, "%s[%d] %s (%s)\n", pad, i, namer.Name(item.Target), addressHex(item.Target))
		switch call := item.Call.(type) {
		case *NestedBatch:
			fmt.Fprintf(b, "%s    nested batch, %d items:\n", pad, len(call.Items))
			writeItemsText(b, call.Items, namer, indent+3)
		case *OperationCall:
			fmt.Fprintf(b, "%s    %s(%s)", pad, call.Op.Name, argsText(call.Args))
			writeItemTail(b, item)
		case *UnknownCall:
			fmt.Fprintf(b, "%s    unknown %s, %d argument bytes", pad, selectorHex(call.Selector), len(call.Raw))
			writeItemTail(b, item)
		}
	}
}

func writeItemTail(b *strings.Builder, item BatchItem) {
	fmt.Fprintf(b, "  value=%s onBehalfOf=%s\n", item.Value.Dec(), addressHex(item.OnBehalfOf))
}

// RenderMarkdown writes the governance review report: the per-vault and
// per-router change lists followed by the full item listing, with explorer
// links throughout.
func RenderMarkdown(w io.Writer, dec *BatchDecoding, an *Analysis, namer *Namer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Changes: %d modified vaults\n", len(an.VaultChanges))
	for _, cc := range an.VaultChanges {
		fmt.Fprintf(&b, "- %s\n", namer.Link(cc.Addr))
		for _, call := range cc.Calls {
			writeChangeMarkdown(&b, call)
		}
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- %d modified routers\n", len(an.RouterChanges))
	for _, cc := range an.RouterChanges {
		fmt.Fprintf(&b, "- %s\n", namer.Link(cc.Addr))
		for _, call := range cc.Calls {
			writeChangeMarkdown(&b, call)
		}
	}
	b.WriteString("\n")

	b.WriteString("# Items\n")
	writeItemsMarkdown(&b, dec.Items, namer, 0)

	_, err := io.WriteString(w, b.String())
	return err
}

// writeChangeMarkdown renders one governance call as change bullets. Cap
// setters additionally resolve the 16-bit cap encoding to raw amounts.
func writeChangeMarkdown(b *strings.Builder, call *OperationCall) {
	if call.Op.Name == "setCaps" {
		for _, arg := range call.Args {
			if arg.Value.Kind() != UintKind || arg.Value.Type().Bits != 16 {
				fmt.Fprintf(b, "  - %s → %s\n", arg.Name, arg.Value)
				continue
			}
			resolved := "unlimited"
			if amount := ResolveAmountCap(uint16(arg.Value.Uint().Uint64())); amount != nil {
				resolved = amount.Dec()
			}
			fmt.Fprintf(b, "  - %s → %s [%s]\n", arg.Name, arg.Value, resolved)
		}
		return
	}
	fmt.Fprintf(b, "  - %s(%s)\n", call.Op.Name, argsText(call.Args))
}

func writeItemsMarkdown(b *strings.Builder, items []BatchItem, namer *Namer, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, item := range items {
		switch call := item.Call.(type) {
		case *NestedBatch:
			fmt.Fprintf(b, "%s- %s nested batch (%d items)\n", pad, namer.Link(item.Target), len(call.Items))
			writeItemsMarkdown(b, call.Items, namer, indent+1)
		case *OperationCall:
			fmt.Fprintf(b, "%s- %s `.%s(%s)`, onBehalfOf=%s , value=%s\n",
				pad, namer.Link(item.Target), call.Op.Name, argsText(call.Args),
				namer.Link(item.OnBehalfOf), item.Value.Dec())
		case *UnknownCall:
			fmt.Fprintf(b, "%s- %s `unknown %s` (%d bytes), onBehalfOf=%s , value=%s\n",
				pad, namer.Link(item.Target), selectorHex(call.Selector), len(call.Raw),
				namer.Link(item.OnBehalfOf), item.Value.Dec())
		}
	}
}

// argsText renders decoded arguments as name=value pairs in declared order.
func argsText(args []Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name + "=" + a.Value.String()
	}
	return strings.Join(parts, ", ")
}
