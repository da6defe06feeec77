package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/cardano-ledger/address"
	"github.com/blinklabs-io/cardano-ledger/cbor"
	"github.com/blinklabs-io/cardano-ledger/plutusdata"
)

var cmdlineFlags struct {
	mode       string
	hexData    string
	bech32Addr string
	conway     bool
	debug      bool
}

func main() {
	flag.StringVar(&cmdlineFlags.mode, "mode", "", "operation: decode-cbor, plutus-data, or address")
	flag.StringVar(&cmdlineFlags.hexData, "hex", "", "hex-encoded input for decode-cbor/plutus-data")
	flag.StringVar(&cmdlineFlags.bech32Addr, "address", "", "bech32 or base58 address for the address mode")
	flag.BoolVar(&cmdlineFlags.conway, "conway", false, "use conway (lenient mainnet) CBOR mode instead of canonical")
	flag.BoolVar(&cmdlineFlags.debug, "debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cmdlineFlags.debug {
		level = slog.LevelDebug
	}
	logger := newLogger(level)

	var err error
	switch cmdlineFlags.mode {
	case "decode-cbor":
		err = runDecodeCbor(logger)
	case "plutus-data":
		err = runPlutusData(logger)
	case "address":
		err = runAddress(logger)
	default:
		fmt.Println("ERROR: you must specify -mode (decode-cbor, plutus-data, address)")
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}

func options() cbor.Options {
	if cmdlineFlags.conway {
		return cbor.ConwayOptions()
	}
	return cbor.DefaultOptions()
}

func runDecodeCbor(logger *slog.Logger) error {
	if cmdlineFlags.hexData == "" {
		return fmt.Errorf("decode-cbor mode requires -hex")
	}
	raw, err := hex.DecodeString(cmdlineFlags.hexData)
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}
	v, err := cbor.Decode(raw, options())
	if err != nil {
		return fmt.Errorf("cbor decode failed: %w", err)
	}
	logger.Debug("decoded cbor value", "kind", v.Kind)
	fmt.Printf("%+v\n", v)
	return nil
}

func runPlutusData(logger *slog.Logger) error {
	if cmdlineFlags.hexData == "" {
		return fmt.Errorf("plutus-data mode requires -hex")
	}
	d, err := plutusdata.FromHex(cmdlineFlags.hexData, options())
	if err != nil {
		return fmt.Errorf("plutus data decode failed: %w", err)
	}
	logger.Debug("decoded plutus data", "kind", d.Kind)
	fmt.Printf("%+v\n", d)

	reencoded, err := plutusdata.ToHex(d, cbor.DefaultOptions())
	if err != nil {
		return fmt.Errorf("plutus data canonical re-encode failed: %w", err)
	}
	fmt.Printf("canonical: %s\n", reencoded)
	return nil
}

func runAddress(logger *slog.Logger) error {
	if cmdlineFlags.bech32Addr == "" {
		return fmt.Errorf("address mode requires -address")
	}
	addr, err := address.FromBech32(cmdlineFlags.bech32Addr)
	if err != nil {
		if base58Addr, base58Err := address.FromBase58(cmdlineFlags.bech32Addr); base58Err == nil {
			addr = base58Addr
		} else {
			return fmt.Errorf("not a valid bech32 or base58 address: %w", err)
		}
	}
	logger.Debug("parsed address", "kind", addr.Kind, "network", addr.Network)
	hexForm, err := addr.Hex()
	if err != nil {
		return fmt.Errorf("address hex encoding failed: %w", err)
	}
	fmt.Printf("Kind:    %d\n", addr.Kind)
	fmt.Printf("Network: %d\n", addr.Network)
	fmt.Printf("Hex:     %s\n", hexForm)
	return nil
}
