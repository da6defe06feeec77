package base58

import "errors"

var errInvalidChar = errors.New("base58: invalid character")
