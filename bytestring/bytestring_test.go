package bytestring_test

import (
	"testing"

	"github.com/blinklabs-io/cardano-ledger/bytestring"
	"github.com/blinklabs-io/cardano-ledger/ledgererr"
)

func TestNewFixedRejectsWrongLength(t *testing.T) {
	_, err := bytestring.NewFixed([]byte{1, 2, 3}, 28)
	if err == nil {
		t.Fatal("expected error for wrong length")
	}
	if !ledgererr.Is(err, ledgererr.InvalidLength) {
		t.Errorf("expected InvalidLength kind, got %v", err)
	}
}

func TestFixedHexRoundTrip(t *testing.T) {
	data := make([]byte, 28)
	for i := range data {
		data[i] = byte(i)
	}
	f, err := bytestring.NewFixed(data, 28)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := bytestring.FixedFromHex(f.Hex(), 28)
	if err != nil {
		t.Fatalf("unexpected error decoding hex: %v", err)
	}
	if !f.Equal(decoded) {
		t.Errorf("round trip mismatch")
	}
}

func TestVariableBounds(t *testing.T) {
	if _, err := bytestring.NewVariable(make([]byte, 33), 0, 32); err == nil {
		t.Fatal("expected error for over-length variable bytes")
	}
	v, err := bytestring.NewVariable(make([]byte, 32), 0, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Len() != 32 {
		t.Errorf("expected length 32, got %d", v.Len())
	}
}

func TestDecodeHexUppercaseTolerated(t *testing.T) {
	raw, err := bytestring.DecodeHex("DEADBEEF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytestring.EncodeHex(raw) != "deadbeef" {
		t.Errorf("expected lowercase re-encoding, got %s", bytestring.EncodeHex(raw))
	}
}

func TestDecodeHexOddLength(t *testing.T) {
	if _, err := bytestring.DecodeHex("abc"); err == nil {
		t.Fatal("expected error for odd-length hex")
	}
}
