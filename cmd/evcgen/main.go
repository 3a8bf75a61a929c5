// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

// evcgen regenerates the selector registry table from a YAML manifest of
// function signatures. Selectors are derived with Keccak-256 from the
// canonical signature unless the manifest pins one explicitly: several
// selectors observed in production payloads do not hash from the signature
// their arguments decode with, so the observed value wins.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	var (
		manifest = flag.String("manifest", "cmd/evcgen/signatures.yaml", "signature manifest to build the table from")
		out      = flag.String("out", "registry_table.go", "output source file")
		pkg      = flag.String("pkg", "evcdec", "package name of the output")
	)
	flag.Parse()

	blob, err := os.ReadFile(*manifest)
	if err != nil {
		fatal(err)
	}
	var doc struct {
		Operations []opSpec `yaml:"operations"`
	}
	if err := yaml.Unmarshal(blob, &doc); err != nil {
		fatal(fmt.Errorf("parse %s: %w", *manifest, err))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by evcgen from %s. DO NOT EDIT.\n\n", *manifest)
	fmt.Fprintf(&buf, "package %s\n\n", *pkg)
	buf.WriteString("// operations is the fixed table of known selectors.\n")
	buf.WriteString("var operations = []Operation{\n")

	seen := make(map[[4]byte]string)
	for _, op := range doc.Operations {
		entry, err := op.render()
		if err != nil {
			fatal(fmt.Errorf("operation %q: %w", op.Signature, err))
		}
		if prev, ok := seen[entry.selector]; ok {
			fatal(fmt.Errorf("selector %#x of %q already taken by %q", entry.selector, op.Signature, prev))
		}
		seen[entry.selector] = op.Signature
		buf.WriteString(entry.source)
	}
	buf.WriteString("}\n")

	src, err := format(*out, buf.Bytes())
	if err != nil {
		fatal(err)
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %d operations to %s\n", len(doc.Operations), *out)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "evcgen:", err)
	os.Exit(1)
}
