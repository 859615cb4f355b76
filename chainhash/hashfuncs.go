// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"crypto/sha256"
	"io"
)

// HashB calculates hash(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashB calculates hash(hash(b)) and returns the resulting bytes.
// This is SHA256d, used for frame checksums and Base58Check checksums.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as
// a Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// DoubleHashRaw calculates hash(hash(w)) where w is the resulting bytes
// from the given serialize function and returns the result as a Hash.
func DoubleHashRaw(serialize func(w io.Writer) error) (Hash, error) {
	h := sha256.New()
	if err := serialize(h); err != nil {
		return Hash{}, err
	}
	buf := make([]byte, 0, HashSize)
	first := h.Sum(buf)
	h.Reset()
	h.Write(first)
	res := h.Sum(buf)
	var out Hash
	copy(out[:], res)
	return out, nil
}

// NewDoubleHasher returns an io.Writer that accumulates written bytes into
// a running SHA-256 state, and a Sum function that finalizes it into a
// SHA256d digest. This is the digest half of the Tap adapter in the
// serialize package: bytes are written to it as they are consumed from a
// Source, so a message's checksum is available without buffering the
// whole payload.
func NewDoubleHasher() (w io.Writer, sum func() Hash) {
	h := sha256.New()
	return h, func() Hash {
		first := h.Sum(nil)
		second := sha256.Sum256(first)
		return Hash(second)
	}
}
