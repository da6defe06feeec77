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

// Mode selects between deterministic canonical encoding and the lenient
// wire format mainnet tooling actually emits.
type Mode int

const (
	// Canonical emits definite-length containers with sorted map keys:
	// byte-identical output for byte-identical logical values.
	Canonical Mode = iota
	// Conway emits indefinite-length arrays/maps once they exceed the
	// configured inline threshold, matching Cardano mainnet's wire
	// format. Map key order is preserved as given, not sorted.
	Conway
)

// Options configures a single Encode/Decode call. Options are plain
// values passed explicitly on every call; there is no global or
// environment-sourced configuration anywhere in this codec.
type Options struct {
	Mode Mode

	// MapThreshold: maps longer than this emit indefinite-length in
	// Conway mode. Default 23.
	MapThreshold uint64
	// ArrayThreshold: arrays longer than this emit indefinite-length in
	// Conway mode. Default 23.
	ArrayThreshold uint64
	// BytesThreshold: carried with a default of 64 but not read by this
	// package or by plutusdata, which chunks Data byte strings and
	// big-integer magnitudes at a fixed 64 bytes.
	BytesThreshold uint64

	// MaxItems bounds the number of container elements (array items and
	// map pairs, definite or indefinite) a single decode call will
	// allocate for, to prevent adversarial input from exhausting memory
	// via a claimed-but-absent huge length. Chunks of indefinite strings
	// are not counted here; MaxBytes bounds their size. Default 2^24.
	MaxItems uint64
	// MaxBytes bounds the size of any single byte/text string a decode
	// call will allocate. Default 16 MiB.
	MaxBytes uint64
}

const (
	defaultMapThreshold   = 23
	defaultArrayThreshold = 23
	defaultBytesThreshold = 64
	defaultMaxItems       = 1 << 24
	defaultMaxBytes       = 16 << 20
)

// DefaultOptions returns the canonical-mode options with this package's
// default thresholds and safety bounds.
func DefaultOptions() Options {
	return Options{
		Mode:           Canonical,
		MapThreshold:   defaultMapThreshold,
		ArrayThreshold: defaultArrayThreshold,
		BytesThreshold: defaultBytesThreshold,
		MaxItems:       defaultMaxItems,
		MaxBytes:       defaultMaxBytes,
	}
}

// ConwayOptions returns the lenient mainnet-wire-format options with the
// same default thresholds as DefaultOptions.
func ConwayOptions() Options {
	o := DefaultOptions()
	o.Mode = Conway
	return o
}

// normalized fills any zero-valued thresholds/bounds with their defaults,
// so a caller-constructed Options{Mode: Conway} still behaves sensibly.
func (o Options) normalized() Options {
	if o.MapThreshold == 0 {
		o.MapThreshold = defaultMapThreshold
	}
	if o.ArrayThreshold == 0 {
		o.ArrayThreshold = defaultArrayThreshold
	}
	if o.BytesThreshold == 0 {
		o.BytesThreshold = defaultBytesThreshold
	}
	if o.MaxItems == 0 {
		o.MaxItems = defaultMaxItems
	}
	if o.MaxBytes == 0 {
		o.MaxBytes = defaultMaxBytes
	}
	return o
}
