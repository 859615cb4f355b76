package keys

import (
	"math/big"

	"github.com/conformal-wire/satoshiwire/serialize"
)

const (
	sec1Compressed0  = 0x02
	sec1Compressed1  = 0x03
	sec1Uncompressed = 0x04
)

// secp256k1P is the field prime p = 2^256 - 2^32 - 977.
var secp256k1P = mustHexBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

// secp256k1B is the curve constant in y^2 = x^3 + B (B = 7 for secp256k1).
var secp256k1B = big.NewInt(7)

// qPlus1Div4 is the precomputed exponent (p+1)/4 used by decompression's
// y = (y^2)^((p+1)/4) mod p trick, per spec.md §4.7. Precomputed once at
// init rather than per call, mirroring original_source/types.cpp.
var qPlus1Div4 = new(big.Int).Div(new(big.Int).Add(secp256k1P, big.NewInt(1)), big.NewInt(4))

func mustHexBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("keys: invalid hex constant")
	}
	return v
}

// PublicKey is a point on secp256k1 plus a flag controlling which SEC1
// form Encode produces.
type PublicKey struct {
	X, Y     *big.Int
	Compress bool
}

// Encode renders the public key in SEC1 form: compressed (33 bytes) if
// Compress is set, uncompressed (65 bytes) otherwise.
func (k *PublicKey) Encode() []byte {
	if k.Compress {
		return k.encodeCompressed()
	}
	return k.encodeUncompressed()
}

func (k *PublicKey) encodeCompressed() []byte {
	out := make([]byte, 33)
	if k.Y.Bit(0) == 1 {
		out[0] = sec1Compressed1
	} else {
		out[0] = sec1Compressed0
	}
	k.X.FillBytes(out[1:33])
	return out
}

func (k *PublicKey) encodeUncompressed() []byte {
	out := make([]byte, 65)
	out[0] = sec1Uncompressed
	k.X.FillBytes(out[1:33])
	k.Y.FillBytes(out[33:65])
	return out
}

// DecodePublicKey parses a SEC1-encoded public key: 0x02/0x03 || X (33
// bytes total, compressed) or 0x04 || X || Y (65 bytes total,
// uncompressed), per spec.md §4.7. Compressed keys are decompressed via
// DecompressPubkey.
func DecodePublicKey(b []byte) (*PublicKey, error) {
	if len(b) == 0 {
		return nil, serialize.NewInvalidFormat("pubkey: empty input")
	}
	switch b[0] {
	case sec1Compressed0, sec1Compressed1:
		if len(b) != 33 {
			return nil, serialize.NewInvalidFormat("pubkey: compressed key must be 33 bytes")
		}
		x := new(big.Int).SetBytes(b[1:33])
		odd := b[0] == sec1Compressed1
		y, err := DecompressPubkey(x, odd)
		if err != nil {
			return nil, err
		}
		return &PublicKey{X: x, Y: y, Compress: true}, nil
	case sec1Uncompressed:
		if len(b) != 65 {
			return nil, serialize.NewInvalidFormat("pubkey: uncompressed key must be 65 bytes")
		}
		x := new(big.Int).SetBytes(b[1:33])
		y := new(big.Int).SetBytes(b[33:65])
		return &PublicKey{X: x, Y: y, Compress: false}, nil
	default:
		return nil, serialize.NewInvalidFormat("pubkey: unrecognized prefix byte")
	}
}

// DecompressPubkey solves y^2 = x^3 + 7 (mod p) for the root whose
// parity matches oddY, using the (p+1)/4 field-exponentiation trick
// spec.md §4.7 specifies (valid because p ≡ 3 mod 4 for secp256k1).
func DecompressPubkey(x *big.Int, oddY bool) (*big.Int, error) {
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	x3.Add(x3, secp256k1B)
	x3.Mod(x3, secp256k1P)

	y := new(big.Int).Exp(x3, qPlus1Div4, secp256k1P)
	if new(big.Int).Exp(y, big.NewInt(2), secp256k1P).Cmp(x3) != 0 {
		return nil, serialize.NewInvalidFormat("pubkey: x is not on the curve")
	}
	if (y.Bit(0) == 1) != oddY {
		y.Sub(secp256k1P, y)
	}
	if (y.Bit(0) == 1) != oddY {
		return nil, serialize.NewInvalidFormat("pubkey: x has no valid root of requested parity")
	}
	return y, nil
}
