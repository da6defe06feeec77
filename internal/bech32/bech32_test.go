package bech32_test

import (
	"bytes"
	"testing"

	"github.com/blinklabs-io/cardano-ledger/internal/bech32"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := make([]byte, 57)
	for i := range payload {
		payload[i] = byte(i * 3)
	}
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		t.Fatalf("convertbits: %v", err)
	}
	encoded, err := bech32.Encode("addr", data)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	hrp, decData, err := bech32.DecodeNoLimit(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if hrp != "addr" {
		t.Errorf("expected hrp addr, got %s", hrp)
	}
	decoded, err := bech32.ConvertBits(decData, 5, 8, false)
	if err != nil {
		t.Fatalf("convertbits back: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Errorf("round trip mismatch: got %x want %x", decoded, payload)
	}
}

func TestDecodeRejectsMixedCase(t *testing.T) {
	if _, _, err := bech32.DecodeNoLimit("Addr1abc"); err == nil {
		t.Fatal("expected error for mixed-case input")
	}
}

func TestDecodeRejectsBadChecksum(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	data, _ := bech32.ConvertBits(payload, 8, 5, true)
	encoded, _ := bech32.Encode("stake", data)
	corrupted := []byte(encoded)
	last := corrupted[len(corrupted)-1]
	if last == 'q' {
		corrupted[len(corrupted)-1] = 'p'
	} else {
		corrupted[len(corrupted)-1] = 'q'
	}
	if _, _, err := bech32.DecodeNoLimit(string(corrupted)); err == nil {
		t.Fatal("expected checksum failure")
	}
}

func TestLongStringNotRejected(t *testing.T) {
	// A base address with a long native-asset-laden payload easily exceeds
	// BIP-173's 90-character guidance; this package must not enforce it.
	payload := make([]byte, 200)
	data, _ := bech32.ConvertBits(payload, 8, 5, true)
	encoded, err := bech32.Encode("addr", data)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(encoded) <= 90 {
		t.Fatalf("expected a long string for this test to be meaningful")
	}
	if _, _, err := bech32.DecodeNoLimit(encoded); err != nil {
		t.Errorf("expected long string to decode without a length-limit error, got %v", err)
	}
}
