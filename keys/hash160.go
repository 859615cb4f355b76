package keys

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ripemd160 is deprecated upstream but required for Bitcoin's Hash160
)

// Hash160 computes RIPEMD160(SHA256(b)), the digest used for public-key
// and script hashes throughout the wire format. ripemd160 comes from
// golang.org/x/crypto, the real third-party dependency the teacher's
// hash160.go uses for the same purpose; sha256 is the Go-native analog
// of the spec's out-of-scope SHA-256 collaborator.
func Hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	r := ripemd160.New()
	r.Write(sha[:])
	return r.Sum(nil)
}
