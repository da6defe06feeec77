package ledgererr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/blinklabs-io/cardano-ledger/ledgererr"
)

func TestWrapPreservesCauseChain(t *testing.T) {
	leaf := ledgererr.New(ledgererr.InvalidHex, "bytestring", "odd length")
	wrapped := ledgererr.Wrap(ledgererr.StructuralMismatch, "address", "decoding payload", leaf)

	if !ledgererr.Is(wrapped, ledgererr.InvalidHex) {
		t.Errorf("expected wrapped error to carry InvalidHex in its cause chain")
	}
	if !errors.Is(wrapped, leaf) {
		t.Errorf("expected errors.Is to find leaf via Unwrap")
	}
}

func TestErrorMessageIncludesModuleAndKind(t *testing.T) {
	err := ledgererr.New(ledgererr.BadHeader, "address", "unknown kind bits")
	msg := err.Error()
	if msg == "" {
		t.Fatal("expected non-empty message")
	}
	if !strings.Contains(msg, "address") || !strings.Contains(msg, string(ledgererr.BadHeader)) {
		t.Errorf("expected message to include module and kind, got %q", msg)
	}
}
