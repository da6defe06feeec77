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
	"bytes"
	"encoding/binary"
	"math"
	"math/big"
	"sort"
	"unicode/utf8"
)

// Encode serializes v per opts, using the shortest head for every integer,
// length and tag field.
func Encode(v Value, opts Options) ([]byte, error) {
	opts = opts.normalized()
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustEncode encodes v or panics.
func MustEncode(v Value, opts Options) []byte {
	b, err := Encode(v, opts)
	if err != nil {
		panic(err)
	}
	return b
}

// writeHead emits the shortest-form CBOR head for the given major type and
// unsigned argument (length, tag number or integer magnitude).
func writeHead(buf *bytes.Buffer, major byte, n uint64) {
	switch {
	case n < 24:
		buf.WriteByte(major<<5 | byte(n))
	case n < 1<<8:
		buf.WriteByte(major<<5 | 24)
		buf.WriteByte(byte(n))
	case n < 1<<16:
		buf.WriteByte(major<<5 | 25)
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(n))
		buf.Write(tmp[:])
	case n < 1<<32:
		buf.WriteByte(major<<5 | 26)
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(n))
		buf.Write(tmp[:])
	default:
		buf.WriteByte(major<<5 | 27)
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], n)
		buf.Write(tmp[:])
	}
}

func writeIndefiniteHead(buf *bytes.Buffer, major byte) {
	buf.WriteByte(major<<5 | 31)
}

func writeBreak(buf *bytes.Buffer) {
	buf.WriteByte(0xff)
}

func encodeValue(buf *bytes.Buffer, v Value, opts Options) error {
	switch v.Kind {
	case KindUint:
		writeHead(buf, 0, v.Uint)
		return nil
	case KindNegInt:
		writeHead(buf, 1, v.Uint)
		return nil
	case KindBigInt:
		return encodeBigInt(buf, v.BigInt)
	case KindBytes:
		writeHead(buf, 2, uint64(len(v.Bytes)))
		buf.Write(v.Bytes)
		return nil
	case KindBytesChunked:
		return encodeBytesChunked(buf, v.Bytes, v.ChunkSize)
	case KindText:
		if !utf8.ValidString(v.Text) {
			return errOverlongUtf8()
		}
		b := []byte(v.Text)
		writeHead(buf, 3, uint64(len(b)))
		buf.Write(b)
		return nil
	case KindArray:
		return encodeArray(buf, v, opts)
	case KindMap:
		return encodeMap(buf, v, opts)
	case KindTag:
		writeHead(buf, 6, v.Tag)
		return encodeValue(buf, *v.Inner, opts)
	case KindBool:
		if v.Bool {
			buf.WriteByte(0xf5)
		} else {
			buf.WriteByte(0xf4)
		}
		return nil
	case KindNull:
		buf.WriteByte(0xf6)
		return nil
	case KindUndefined:
		buf.WriteByte(0xf7)
		return nil
	case KindFloat:
		return encodeFloat(buf, v)
	default:
		return errInvalidHead("unknown value kind")
	}
}

func encodeArray(buf *bytes.Buffer, v Value, opts Options) error {
	n := len(v.Array)
	indefinite := arrayIsIndefinite(v, n, opts)
	if indefinite {
		writeIndefiniteHead(buf, 4)
	} else {
		writeHead(buf, 4, uint64(n))
	}
	for _, item := range v.Array {
		if err := encodeValue(buf, item, opts); err != nil {
			return err
		}
	}
	if indefinite {
		writeBreak(buf)
	}
	return nil
}

func arrayIsIndefinite(v Value, n int, opts Options) bool {
	switch v.LengthMode {
	case LenDefinite:
		return false
	case LenIndefinite:
		return true
	default:
		return opts.Mode == Conway && uint64(n) > opts.ArrayThreshold
	}
}

func encodeMap(buf *bytes.Buffer, v Value, opts Options) error {
	pairs := v.MapPairs
	n := len(pairs)
	indefinite := mapIsIndefinite(v, n, opts)

	if opts.Mode == Canonical {
		type encodedPair struct {
			key   []byte
			value []byte
		}
		encoded := make([]encodedPair, 0, n)
		for _, p := range pairs {
			kb, err := Encode(p.Key, opts)
			if err != nil {
				return err
			}
			vb, err := Encode(p.Value, opts)
			if err != nil {
				return err
			}
			encoded = append(encoded, encodedPair{key: kb, value: vb})
		}
		sort.SliceStable(encoded, func(i, j int) bool {
			return bytes.Compare(encoded[i].key, encoded[j].key) < 0
		})
		if indefinite {
			writeIndefiniteHead(buf, 5)
		} else {
			writeHead(buf, 5, uint64(n))
		}
		for _, e := range encoded {
			buf.Write(e.key)
			buf.Write(e.value)
		}
		if indefinite {
			writeBreak(buf)
		}
		return nil
	}

	if indefinite {
		writeIndefiniteHead(buf, 5)
	} else {
		writeHead(buf, 5, uint64(n))
	}
	for _, p := range pairs {
		if err := encodeValue(buf, p.Key, opts); err != nil {
			return err
		}
		if err := encodeValue(buf, p.Value, opts); err != nil {
			return err
		}
	}
	if indefinite {
		writeBreak(buf)
	}
	return nil
}

func mapIsIndefinite(v Value, n int, opts Options) bool {
	switch v.LengthMode {
	case LenDefinite:
		return false
	case LenIndefinite:
		return true
	default:
		return opts.Mode == Conway && uint64(n) > opts.MapThreshold
	}
}

func encodeBytesChunked(buf *bytes.Buffer, data []byte, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = defaultBytesThreshold
	}
	if len(data) <= chunkSize {
		writeHead(buf, 2, uint64(len(data)))
		buf.Write(data)
		return nil
	}
	writeIndefiniteHead(buf, 2)
	for offset := 0; offset < len(data); offset += chunkSize {
		end := offset + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[offset:end]
		writeHead(buf, 2, uint64(len(chunk)))
		buf.Write(chunk)
	}
	writeBreak(buf)
	return nil
}

var maxUint64Big = new(big.Int).SetUint64(math.MaxUint64)

// encodeBigInt emits the shortest representation for n: a plain major-0/1
// integer when it fits in 64 bits, otherwise tag 2 (non-negative) or tag 3
// (negative) wrapping the big-endian magnitude with no leading zero byte.
func encodeBigInt(buf *bytes.Buffer, n *big.Int) error {
	if n.Sign() >= 0 && n.Cmp(maxUint64Big) <= 0 {
		writeHead(buf, 0, n.Uint64())
		return nil
	}
	if n.Sign() < 0 {
		// CBOR major type 1 / tag 3 represent -1-m for magnitude m >= 0.
		m := new(big.Int).Neg(n)
		m.Sub(m, big.NewInt(1))
		if m.Cmp(maxUint64Big) <= 0 {
			writeHead(buf, 1, m.Uint64())
			return nil
		}
		writeHead(buf, 6, 3)
		mag := m.Bytes()
		writeHead(buf, 2, uint64(len(mag)))
		buf.Write(mag)
		return nil
	}
	writeHead(buf, 6, 2)
	mag := n.Bytes()
	writeHead(buf, 2, uint64(len(mag)))
	buf.Write(mag)
	return nil
}

func encodeFloat(buf *bytes.Buffer, v Value) error {
	switch v.Bits {
	case 16:
		buf.WriteByte(0xf9)
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], float64ToHalf(v.Float))
		buf.Write(tmp[:])
	case 32:
		buf.WriteByte(0xfa)
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], math.Float32bits(float32(v.Float)))
		buf.Write(tmp[:])
	default:
		buf.WriteByte(0xfb)
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v.Float))
		buf.Write(tmp[:])
	}
	return nil
}
