// Package bloom implements the BIP 37 Bloom filter used by the
// filterload/filteradd/filterclear/merkleblock messages: MurmurHash3-32
// seeded per the BIP 37 tweak/hash-count scheme over a bit vector.
package bloom

import (
	"math"

	"github.com/conformal-wire/satoshiwire/serialize"
)

// MaxFilterSize and MaxHashFuncs are BIP 37's hard caps, grounded on
// original_source/bloom.h's constructor clamp and the teacher's
// btcutil/bloom package limits of the same values.
const (
	MaxFilterSize = 36000
	MaxHashFuncs  = 50

	ln2Squared = math.Ln2 * math.Ln2
)

// Filter is a Bloom filter: a bit vector tested/set by HashFuncs
// independent MurmurHash3 draws seeded from Tweak.
type Filter struct {
	Bits      []byte
	HashFuncs uint32
	Tweak     uint32
}

// NewFilter constructs an empty filter sized for capacity elements at
// the given false-positive rate, per BIP 37's standard sizing formula,
// clamped to MaxFilterSize bytes and MaxHashFuncs hash functions. Both
// the bit count and hash count are truncated (not rounded), matching
// Bitcoin Core's C-style double-to-uint cast in its constructor rather
// than ceiling/rounding.
func NewFilter(capacity int, falsePositiveRate float64, tweak uint32) *Filter {
	bitsCount := int(-1 / ln2Squared * float64(capacity) * math.Log(falsePositiveRate))
	if bitsCount > MaxFilterSize*8 {
		bitsCount = MaxFilterSize * 8
	}
	sizeBytes := bitsCount / 8
	if sizeBytes < 1 {
		sizeBytes = 1
	}
	hashFuncs := int(float64(sizeBytes*8/capacity) * math.Ln2)
	if hashFuncs > MaxHashFuncs {
		hashFuncs = MaxHashFuncs
	}
	if hashFuncs < 1 {
		hashFuncs = 1
	}
	return &Filter{
		Bits:      make([]byte, sizeBytes),
		HashFuncs: uint32(hashFuncs),
		Tweak:     tweak,
	}
}

func (f *Filter) bitCount() uint32 { return uint32(len(f.Bits)) * 8 }

func setBit(bits []byte, idx uint32) {
	bits[idx/8] |= 1 << (idx % 8)
}

func testBit(bits []byte, idx uint32) bool {
	return bits[idx/8]&(1<<(idx%8)) != 0
}

// Insert adds data to the filter. An empty filter (len(Bits) == 0) is a
// caller programming error per spec.md §4.4 and will panic on division
// by zero, matching the spec's "programming error (fatal/assert)" policy.
func (f *Filter) Insert(data []byte) {
	nBits := f.bitCount()
	seed := f.Tweak
	for i := uint32(0); i < f.HashFuncs; i++ {
		idx := MurmurHash3(seed, data) % nBits
		setBit(f.Bits, idx)
		seed += 0xfba4c795
	}
}

// MaybeContains tests whether data may have been inserted. False means
// definitely absent; true means possibly present.
func (f *Filter) MaybeContains(data []byte) bool {
	nBits := f.bitCount()
	seed := f.Tweak
	for i := uint32(0); i < f.HashFuncs; i++ {
		idx := MurmurHash3(seed, data) % nBits
		if !testBit(f.Bits, idx) {
			return false
		}
		seed += 0xfba4c795
	}
	return true
}

// Serialize writes the filter as varbytes(bits) | hash_count u32 LE |
// tweak u32 LE, per spec.md's filterload payload layout (§4.5).
func (f *Filter) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteVarBytes(sink, f.Bits); err != nil {
		return err
	}
	if err := serialize.WriteU32LE(sink, f.HashFuncs); err != nil {
		return err
	}
	return serialize.WriteU32LE(sink, f.Tweak)
}

// Deserialize reads a filter in the same layout Serialize writes,
// enforcing the MaxFilterSize/MaxHashFuncs caps.
func Deserialize(src serialize.Source) (*Filter, error) {
	bits, err := serialize.ReadVarBytes(src, MaxFilterSize)
	if err != nil {
		return nil, err
	}
	hashFuncs, err := serialize.ReadU32LE(src)
	if err != nil {
		return nil, err
	}
	if hashFuncs > MaxHashFuncs {
		return nil, serialize.ErrOverflow
	}
	tweak, err := serialize.ReadU32LE(src)
	if err != nil {
		return nil, err
	}
	return &Filter{Bits: bits, HashFuncs: hashFuncs, Tweak: tweak}, nil
}
