// Copyright (c) 2013-2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the SHA256d (double SHA-256) hashing used
// throughout the wire format for checksums, transaction ids, and block
// hashes. It is the Go-native analog of the SHA-256 collaborator
// spec.md treats as an out-of-scope external primitive: the core never
// reimplements SHA-256 itself, it calls this package.
package chainhash

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the size, in bytes, of a SHA-256 (and therefore SHA256d)
// digest.
const HashSize = 32

// Hash is a 32-byte SHA256d digest, stored internally in the byte order
// produced by the hash function itself (not the reversed, human-readable
// order used when printing block/transaction hashes).
type Hash [HashSize]byte

// String returns the Hash as the reversed, big-endian-looking hex string
// Bitcoin tooling conventionally prints block and transaction hashes as.
func (h Hash) String() string {
	var reversed Hash
	for i := 0; i < HashSize/2; i++ {
		reversed[i], reversed[HashSize-1-i] = h[HashSize-1-i], h[i]
	}
	return hex.EncodeToString(reversed[:])
}

// CloneBytes returns a newly allocated copy of the hash bytes.
func (h Hash) CloneBytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// NewHash constructs a Hash from a byte slice of exactly HashSize bytes.
func NewHash(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashSize {
		return h, fmt.Errorf("invalid hash length %d, expected %d", len(b), HashSize)
	}
	copy(h[:], b)
	return h, nil
}
