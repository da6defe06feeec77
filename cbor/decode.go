// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	"math"
	"math/big"
)

// Decode parses a single top-level CBOR value from data. Trailing bytes
// after the value are rejected. Container definite/indefinite acceptance
// is not mode-dependent; only Canonical mode additionally rejects
// non-minimal integer/length heads.
func Decode(data []byte, opts Options) (Value, error) {
	opts = opts.normalized()
	d := &decoder{data: data, opts: opts}
	v, err := d.decodeValue()
	if err != nil {
		return Value{}, err
	}
	if d.pos != len(d.data) {
		return Value{}, errInvalidHead("trailing bytes after top-level value")
	}
	return v, nil
}

// MustDecode decodes data or panics. Intended for call sites that have
// already validated the input (tests, trusted internal callers), not for
// decoding untrusted wire data.
func MustDecode(data []byte, opts Options) Value {
	v, err := Decode(data, opts)
	if err != nil {
		panic(err)
	}
	return v
}

type decoder struct {
	data []byte
	pos  int
	opts Options
}

func (d *decoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, errUnexpectedEnd("expected one more byte")
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) readN(n uint64) ([]byte, error) {
	if n > d.opts.MaxBytes {
		return nil, errTooLarge("string length exceeds MaxBytes")
	}
	end := d.pos + int(n)
	if end < d.pos || end > len(d.data) {
		return nil, errUnexpectedEnd("string runs past end of input")
	}
	b := d.data[d.pos:end]
	d.pos = end
	return b, nil
}

// readHead reads a major-type byte and returns the major type, the info
// field (low 5 bits) and, for info in [24,27], the decoded argument.
// isIndefinite reports the info==31 case; argument is meaningless then.
func (d *decoder) readHead() (major byte, info byte, arg uint64, isIndefinite bool, err error) {
	first, err := d.readByte()
	if err != nil {
		return 0, 0, 0, false, err
	}
	major = first >> 5
	info = first & 0x1f
	// Major type 7 carries float bits in its 2/4/8-byte forms, not an
	// integer argument, so those forms have no minimal width to enforce.
	strict := d.opts.Mode == Canonical && major != 7

	switch {
	case info < 24:
		return major, info, uint64(info), false, nil
	case info == 24:
		b, err := d.readByte()
		if err != nil {
			return 0, 0, 0, false, err
		}
		if d.opts.Mode == Canonical && b < 24 {
			return 0, 0, 0, false, errNonCanonical("non-minimal 1-byte integer head")
		}
		return major, info, uint64(b), false, nil
	case info == 25:
		b, err := d.readN(2)
		if err != nil {
			return 0, 0, 0, false, err
		}
		v := uint64(b[0])<<8 | uint64(b[1])
		if strict && v < 1<<8 {
			return 0, 0, 0, false, errNonCanonical("non-minimal 2-byte integer head")
		}
		return major, info, v, false, nil
	case info == 26:
		b, err := d.readN(4)
		if err != nil {
			return 0, 0, 0, false, err
		}
		v := uint64(b[0])<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3])
		if strict && v < 1<<16 {
			return 0, 0, 0, false, errNonCanonical("non-minimal 4-byte integer head")
		}
		return major, info, v, false, nil
	case info == 27:
		b, err := d.readN(8)
		if err != nil {
			return 0, 0, 0, false, err
		}
		var v uint64
		for _, c := range b {
			v = v<<8 | uint64(c)
		}
		if strict && v < 1<<32 {
			return 0, 0, 0, false, errNonCanonical("non-minimal 8-byte integer head")
		}
		return major, info, v, false, nil
	case info == 31:
		return major, info, 0, true, nil
	default:
		return 0, 0, 0, false, errInvalidHead("reserved additional info value")
	}
}

func (d *decoder) decodeValue() (Value, error) {
	startPos := d.pos
	major, info, arg, indefinite, err := d.readHead()
	if err != nil {
		return Value{}, err
	}

	switch major {
	case 0:
		return Uint(arg), nil
	case 1:
		return NegInt(arg), nil
	case 2:
		return d.decodeBytesLike(info, arg, indefinite, false)
	case 3:
		return d.decodeBytesLike(info, arg, indefinite, true)
	case 4:
		return d.decodeArray(arg, indefinite)
	case 5:
		return d.decodeMap(arg, indefinite)
	case 6:
		return d.decodeTag(arg, startPos)
	case 7:
		return d.decodeSimpleOrFloat(info, arg)
	default:
		return Value{}, errUnknownMajor(major)
	}
}

func (d *decoder) decodeBytesLike(info byte, arg uint64, indefinite, isText bool) (Value, error) {
	if !indefinite {
		b, err := d.readN(arg)
		if err != nil {
			return Value{}, err
		}
		if isText {
			return Text(string(b)), nil
		}
		return Bytes(b), nil
	}

	var chunks [][]byte
	var total uint64
	for {
		b, err := d.readByte()
		if err != nil {
			return Value{}, err
		}
		if b == 0xff {
			break
		}
		d.pos--
		chunkMajor, _, chunkArg, chunkIndef, err := d.readHead()
		if err != nil {
			return Value{}, err
		}
		wantMajor := byte(2)
		if isText {
			wantMajor = 3
		}
		if chunkMajor != wantMajor || chunkIndef {
			return Value{}, errInvalidHead("indefinite string chunk has wrong major type or is itself indefinite")
		}
		chunk, err := d.readN(chunkArg)
		if err != nil {
			return Value{}, err
		}
		total += uint64(len(chunk))
		if total > d.opts.MaxBytes {
			return Value{}, errTooLarge("chunked string exceeds MaxBytes")
		}
		chunks = append(chunks, chunk)
	}

	var full []byte
	for _, c := range chunks {
		full = append(full, c...)
	}
	if isText {
		return Text(string(full)), nil
	}
	v := BytesChunked(full, defaultBytesThreshold)
	return v, nil
}

func (d *decoder) decodeArray(n uint64, indefinite bool) (Value, error) {
	if !indefinite {
		if n > d.opts.MaxItems {
			return Value{}, errTooLarge("array length exceeds MaxItems")
		}
		items := make([]Value, 0, n)
		for i := uint64(0); i < n; i++ {
			item, err := d.decodeValue()
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Array(items), nil
	}

	var items []Value
	for {
		b, err := d.readByte()
		if err != nil {
			return Value{}, err
		}
		if b == 0xff {
			break
		}
		d.pos--
		item, err := d.decodeValue()
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
		if uint64(len(items)) > d.opts.MaxItems {
			return Value{}, errTooLarge("array length exceeds MaxItems")
		}
	}
	v := Array(items)
	v.LengthMode = LenIndefinite
	return v, nil
}

func (d *decoder) decodeMap(n uint64, indefinite bool) (Value, error) {
	if !indefinite {
		if n > d.opts.MaxItems {
			return Value{}, errTooLarge("map length exceeds MaxItems")
		}
		pairs := make([]Pair, 0, n)
		for i := uint64(0); i < n; i++ {
			k, err := d.decodeValue()
			if err != nil {
				return Value{}, err
			}
			v, err := d.decodeValue()
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
		return Map(pairs), nil
	}

	var pairs []Pair
	for {
		b, err := d.readByte()
		if err != nil {
			return Value{}, err
		}
		if b == 0xff {
			break
		}
		d.pos--
		k, err := d.decodeValue()
		if err != nil {
			return Value{}, err
		}
		v, err := d.decodeValue()
		if err != nil {
			return Value{}, err
		}
		pairs = append(pairs, Pair{Key: k, Value: v})
		if uint64(len(pairs)) > d.opts.MaxItems {
			return Value{}, errTooLarge("map length exceeds MaxItems")
		}
	}
	mv := Map(pairs)
	mv.LengthMode = LenIndefinite
	return mv, nil
}

func (d *decoder) decodeTag(tag uint64, startPos int) (Value, error) {
	_ = startPos
	if tag == 2 || tag == 3 {
		major, _, arg, indefinite, err := d.readHead()
		if err != nil {
			return Value{}, err
		}
		if major != 2 {
			return Value{}, errTagMismatch("bignum tag must wrap a byte string")
		}
		var mag []byte
		if !indefinite {
			mag, err = d.readN(arg)
			if err != nil {
				return Value{}, err
			}
		} else {
			bv, err := d.decodeBytesLike(31, 0, true, false)
			if err != nil {
				return Value{}, err
			}
			mag = bv.Bytes
		}
		n := new(big.Int).SetBytes(mag)
		if tag == 3 {
			n.Add(n, big.NewInt(1))
			n.Neg(n)
		}
		return NewBigInt(n), nil
	}

	inner, err := d.decodeValue()
	if err != nil {
		return Value{}, err
	}
	return TagValue(tag, inner), nil
}

func (d *decoder) decodeSimpleOrFloat(info byte, arg uint64) (Value, error) {
	switch info {
	case 20:
		return Bool(false), nil
	case 21:
		return Bool(true), nil
	case 22:
		return Null(), nil
	case 23:
		return Undefined(), nil
	case 25:
		return Value{Kind: KindFloat, Float: halfToFloat64(uint16(arg)), Bits: 16}, nil
	case 26:
		return Value{Kind: KindFloat, Float: float64(math.Float32frombits(uint32(arg))), Bits: 32}, nil
	case 27:
		return Value{Kind: KindFloat, Float: math.Float64frombits(arg), Bits: 64}, nil
	default:
		return Value{}, errInvalidHead("unsupported simple value")
	}
}
