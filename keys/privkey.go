// Package keys implements the WIF private-key codec, SEC1 public-key
// decoding/decompression over secp256k1, and Base58Check address
// encoding/decoding, per spec.md §4.7.
package keys

import (
	"math/big"

	"github.com/conformal-wire/satoshiwire/base58"
	"github.com/conformal-wire/satoshiwire/serialize"
)

// Flags is the bitmask carried alongside a WIF-encoded private key.
type Flags uint8

const (
	FlagsNone     Flags = 0
	FlagCompress  Flags = 1 << 0
	flagsMask     Flags = FlagCompress
)

const wifVersion = 0x80

// PrivateKey is a 256-bit secp256k1 scalar plus the WIF compression
// flag. spec.md §3 notes the codec itself does not enforce d's range
// within [1, n-1]; that policy is the caller's.
type PrivateKey struct {
	D     *big.Int
	Flags Flags
}

// EncodeWIF renders the private key as Base58Check(0x80 || d_be(32) ||
// [flags]); the flags byte is present only when non-zero, per spec.md
// §4.7.
func (k *PrivateKey) EncodeWIF() string {
	d := make([]byte, 32)
	k.D.FillBytes(d)

	payload := make([]byte, 0, 1+32+1)
	payload = append(payload, wifVersion)
	payload = append(payload, d...)
	if k.Flags != FlagsNone {
		payload = append(payload, byte(k.Flags))
	}
	return base58.Encode(payload)
}

// DecodeWIF parses a WIF string. Per original_source/types.cpp, the
// decoded payload is tolerated at either 33 bytes (version + scalar, no
// flags byte) or 34 bytes (version + scalar + flags); any other length,
// or a flags byte with bits outside FlagCompress set, fails.
func DecodeWIF(s string) (*PrivateKey, error) {
	payload, err := base58.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(payload) != 33 && len(payload) != 34 {
		return nil, serialize.NewInvalidFormat("wif: decoded payload must be 33 or 34 bytes")
	}
	if payload[0] != wifVersion {
		return nil, serialize.NewInvalidFormat("wif: unexpected version byte")
	}
	d := new(big.Int).SetBytes(payload[1:33])

	var flags Flags
	if len(payload) == 34 {
		flags = Flags(payload[33])
		if flags&^flagsMask != 0 {
			return nil, serialize.NewInvalidFormat("wif: unexpected flag bits")
		}
	}
	return &PrivateKey{D: d, Flags: flags}, nil
}
