// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/tools/imports"
)

// opSpec is one manifest entry: an ABI signature, the names of its
// parameters, its analysis group, and an optional pinned selector.
type opSpec struct {
	Signature  string   `yaml:"signature"`
	Selector   string   `yaml:"selector"`   // optional 0x pin
	Group      string   `yaml:"group"`      // general, evc, vault, router
	Params     []string `yaml:"params"`     // parameter names, matching arity
	Components []string `yaml:"components"` // field names for tuple parameters
}

// rendered is one generated table entry.
type rendered struct {
	selector [4]byte
	source   string
}

// render derives the selector and emits the table entry source.
func (op *opSpec) render() (*rendered, error) {
	name, types, err := parseSignature(op.Signature)
	if err != nil {
		return nil, err
	}
	if len(types) != len(op.Params) {
		return nil, fmt.Errorf("%d parameter names for %d types", len(op.Params), len(types))
	}

	var selector [4]byte
	if op.Selector != "" {
		blob, err := hexutil.Decode(op.Selector)
		if err != nil || len(blob) != 4 {
			return nil, fmt.Errorf("invalid pinned selector %q", op.Selector)
		}
		copy(selector[:], blob)
	} else {
		copy(selector[:], crypto.Keccak256([]byte(op.Signature)))
	}

	group, err := groupConst(op.Group)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\t{Selector: [4]byte{%#04x, %#04x, %#04x, %#04x}, Name: %q, Group: %s, ",
		selector[0], selector[1], selector[2], selector[3], name, group)
	if len(types) == 0 {
		b.WriteString("Params: nil},\n")
		return &rendered{selector: selector, source: b.String()}, nil
	}
	b.WriteString("Params: []Param{\n")
	for i, t := range types {
		expr, err := typeExpr(t, op.Components)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "\t\t{%q, %s},\n", op.Params[i], expr)
	}
	b.WriteString("\t}},\n")
	return &rendered{selector: selector, source: b.String()}, nil
}

// parseSignature splits "name(type,type,...)" into the function name and its
// top-level parameter type strings.
func parseSignature(sig string) (string, []string, error) {
	open := strings.IndexByte(sig, '(')
	if open <= 0 || !strings.HasSuffix(sig, ")") {
		return "", nil, fmt.Errorf("malformed signature %q", sig)
	}
	return sig[:open], splitTypes(sig[open+1 : len(sig)-1]), nil
}

// splitTypes splits a type list on top-level commas only, leaving nested
// tuple types intact.
func splitTypes(list string) []string {
	if list == "" {
		return nil
	}
	var (
		out   []string
		depth int
		start int
	)
	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, list[start:i])
				start = i + 1
			}
		}
	}
	return append(out, list[start:])
}

// typeExpr maps an ABI type string onto the package's type constructor
// expression. Tuple fields take their names from the manifest components,
// falling back to argN.
func typeExpr(t string, components []string) (string, error) {
	t = strings.TrimSpace(t)

	if inner, ok := strings.CutSuffix(t, "[]"); ok {
		expr, err := typeExpr(inner, components)
		if err != nil {
			return "", err
		}
		return "Array(" + expr + ")", nil
	}
	if strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") {
		fields := splitTypes(t[1 : len(t)-1])
		parts := make([]string, len(fields))
		for i, f := range fields {
			expr, err := typeExpr(f, nil)
			if err != nil {
				return "", err
			}
			name := fmt.Sprintf("arg%d", i)
			if i < len(components) {
				name = components[i]
			}
			parts[i] = fmt.Sprintf("Field{%q, %s}", name, expr)
		}
		return "Tuple(" + strings.Join(parts, ", ") + ")", nil
	}
	switch {
	case t == "bool":
		return "Bool", nil
	case t == "address":
		return "Address", nil
	case t == "bytes":
		return "Bytes", nil
	case t == "string":
		return "String", nil
	case strings.HasPrefix(t, "uint"):
		bits, err := bitWidth(t[4:])
		if err != nil {
			return "", fmt.Errorf("invalid type %q", t)
		}
		return fmt.Sprintf("Uint(%d)", bits), nil
	case strings.HasPrefix(t, "int"):
		bits, err := bitWidth(t[3:])
		if err != nil {
			return "", fmt.Errorf("invalid type %q", t)
		}
		return fmt.Sprintf("Int(%d)", bits), nil
	case strings.HasPrefix(t, "bytes"):
		size, err := strconv.Atoi(t[5:])
		if err != nil || size < 1 || size > 32 {
			return "", fmt.Errorf("invalid type %q", t)
		}
		return fmt.Sprintf("FixedBytes(%d)", size), nil
	default:
		return "", fmt.Errorf("unsupported type %q", t)
	}
}

func bitWidth(s string) (int, error) {
	bits, err := strconv.Atoi(s)
	if err != nil || bits < 8 || bits > 256 || bits%8 != 0 {
		return 0, fmt.Errorf("invalid bit width %q", s)
	}
	return bits, nil
}

func groupConst(group string) (string, error) {
	switch group {
	case "", "general":
		return "GroupGeneral", nil
	case "evc":
		return "GroupEVC", nil
	case "vault":
		return "GroupVaultGov", nil
	case "router":
		return "GroupRouterGov", nil
	default:
		return "", fmt.Errorf("unknown group %q", group)
	}
}

// format runs the generated source through goimports.
func format(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}
