// evcdec: Ethereum Vault Connector batch calldata decoder
// Copyright 2026 evcdec Authors
// SPDX-License-Identifier: BSD-3-Clause

// evcdec decodes EVC batch calldata and prints a governance review of the
// operations it contains.
//
//	evcdec 0xc16ae7a4...
//	evcdec --file batch.json --markdown
//	evcdec --tx 0xabc... --rpc https://api.avax.network/ext/bc/C/rpc
//	cat calldata.hex | evcdec --json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/evkit/evcdec"
)

const rpcTimeout = 30 * time.Second

func main() {
	app := &cli.App{
		Name:      "evcdec",
		Usage:     "decode and analyze Ethereum Vault Connector batch calldata",
		ArgsUsage: "[calldata]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read calldata from a file (raw hex, or JSON with a data field)"},
			&cli.StringFlag{Name: "tx", Aliases: []string{"t"}, Usage: "load calldata from a transaction hash (requires --rpc)"},
			&cli.StringFlag{Name: "rpc", Aliases: []string{"r"}, Usage: "RPC endpoint used by --tx"},
			&cli.Uint64Flag{Name: "chain", Aliases: []string{"c"}, Value: evcdec.DefaultChainID, Usage: "chain ID of the EVC deployment"},
			&cli.BoolFlag{Name: "json", Aliases: []string{"j"}, Usage: "emit the decoded tree as JSON"},
			&cli.BoolFlag{Name: "markdown", Aliases: []string{"m"}, Usage: "emit the governance report as markdown"},
			&cli.StringFlag{Name: "names", Usage: "YAML file with contract name metadata"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "verbose diagnostics"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "evcdec:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := newLogger(c.Bool("verbose"))
	defer logger.Sync()

	input, err := readInput(c, logger)
	if err != nil {
		return err
	}

	decoder := evcdec.New(c.Uint64("chain"))
	logger.Debugw("decoding calldata", "chain", decoder.Chain().Name, "bytes", len(input)/2)

	decoding, err := decoder.DecodeHex(input)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return evcdec.RenderJSON(os.Stdout, decoding)
	}

	analysis := evcdec.Analyze(decoding)

	namer := evcdec.NewNamer(decoder.Chain())
	if path := c.String("names"); path != "" {
		if err := namer.LoadFile(path); err != nil {
			return err
		}
	}
	namer.SeedGeneric(analysis)

	if c.Bool("markdown") {
		return evcdec.RenderMarkdown(os.Stdout, decoding, analysis, namer)
	}
	return evcdec.RenderText(os.Stdout, decoding, analysis, namer)
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

// readInput resolves calldata from, in priority order: a transaction hash,
// a file, the positional argument, or stdin. The result is a hex string,
// possibly still wrapped in a JSON document.
func readInput(c *cli.Context, logger *zap.SugaredLogger) (string, error) {
	if txHash := c.String("tx"); txHash != "" {
		rpcURL := c.String("rpc")
		if rpcURL == "" {
			return "", errors.New("--rpc is required with --tx")
		}
		return fetchTxData(c.Context, rpcURL, txHash, logger)
	}
	if path := c.String("file"); path != "" {
		blob, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return unwrapJSON(string(blob))
	}
	if c.Args().Len() > 0 {
		return unwrapJSON(c.Args().First())
	}
	blob, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	if len(strings.TrimSpace(string(blob))) == 0 {
		return "", errors.New("no calldata given: pass it as an argument, via --file/--tx, or on stdin")
	}
	return unwrapJSON(string(blob))
}

// unwrapJSON extracts the data field from a JSON document, passing plain hex
// strings through untouched.
func unwrapJSON(input string) (string, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "{") && !strings.HasPrefix(input, "[") {
		return input, nil
	}
	var doc struct {
		Data string `json:"data"`
	}
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return "", fmt.Errorf("invalid JSON input: %w", err)
	}
	if doc.Data == "" {
		return "", errors.New("JSON input carries no data field")
	}
	return doc.Data, nil
}

// fetchTxData pulls a transaction's input bytes from a node. The decoder
// itself never touches the network; it is handed the resulting hex only.
func fetchTxData(ctx context.Context, rpcURL, txHash string, logger *zap.SugaredLogger) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return "", fmt.Errorf("connect to %s: %w", rpcURL, err)
	}
	defer client.Close()

	tx, pending, err := client.TransactionByHash(ctx, common.HexToHash(txHash))
	if err != nil {
		return "", fmt.Errorf("load transaction %s: %w", txHash, err)
	}
	if pending {
		logger.Warnw("transaction is still pending", "tx", txHash)
	}
	logger.Debugw("loaded transaction calldata", "tx", txHash, "bytes", len(tx.Data()))
	return hexutil.Encode(tx.Data()), nil
}
