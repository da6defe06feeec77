package bech32

import "errors"

var (
	errNonEmptyHrp       = errors.New("bech32: human-readable part must not be empty")
	errInvalidGroupValue = errors.New("bech32: value does not fit in target group width")
	errMixedCase         = errors.New("bech32: string contains mixed case")
	errInvalidSeparator  = errors.New("bech32: missing or misplaced '1' separator")
	errInvalidHrpChar    = errors.New("bech32: invalid character in human-readable part")
	errInvalidDataChar   = errors.New("bech32: invalid character in data part")
	errTooShort          = errors.New("bech32: data part shorter than checksum")
	errChecksumFail      = errors.New("bech32: checksum verification failed")
	errInvalidPadding    = errors.New("bech32: non-zero padding bits")
)
