// Package base58 implements Bitcoin's Base58Check text encoding:
// big-integer base-58 conversion with leading-zero preservation and a
// truncated-SHA256d checksum, per spec.md §4.3.
package base58

import (
	"errors"
	"math/big"

	"github.com/conformal-wire/satoshiwire/chainhash"
)

// alphabet omits '0', 'O', 'I', 'l' to avoid visual ambiguity, in the
// exact order the reference implementation this was distilled from
// tabulates it.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var bigRadix = big.NewInt(58)

var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i, c := range alphabet {
		decodeTable[c] = int8(i)
	}
}

// ErrInvalidAlphabet is returned when a decoded string contains a byte
// outside the base58 alphabet.
var ErrInvalidAlphabet = errors.New("base58: character outside alphabet")

// ErrInvalidChecksum is returned when a decoded payload's trailing 4
// bytes do not match the recomputed SHA256d checksum.
var ErrInvalidChecksum = errors.New("base58: checksum mismatch")

// Encode returns bytes as a Base58Check string: the checksum is computed
// over bytes, appended, and the result is base58-encoded with one '1'
// emitted per leading zero byte.
func Encode(payload []byte) string {
	checksum := chainhash.DoubleHashB(payload)[:4]
	full := make([]byte, len(payload)+4)
	copy(full, payload)
	copy(full[len(payload):], checksum)
	return encodeRaw(full)
}

func encodeRaw(full []byte) string {
	zeros := 0
	for zeros < len(full) && full[zeros] == 0 {
		zeros++
	}

	x := new(big.Int).SetBytes(full)
	mod := new(big.Int)
	var digits []byte
	for x.Sign() > 0 {
		x.DivMod(x, bigRadix, mod)
		digits = append(digits, alphabet[mod.Int64()])
	}

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = '1'
	}
	for i, d := range digits {
		out[zeros+len(digits)-1-i] = d
	}
	return string(out)
}

// Decode reverses Encode: it base58-decodes s, splits the result into
// (payload, checksum4), recomputes SHA256d over payload, and fails with
// ErrInvalidChecksum on mismatch or ErrInvalidAlphabet on a bad
// character.
func Decode(s string) ([]byte, error) {
	full, err := decodeRaw(s)
	if err != nil {
		return nil, err
	}
	if len(full) < 4 {
		return nil, ErrInvalidChecksum
	}
	payload, checksum := full[:len(full)-4], full[len(full)-4:]
	want := chainhash.DoubleHashB(payload)[:4]
	if !bytesEqual(checksum, want) {
		return nil, ErrInvalidChecksum
	}
	return payload, nil
}

func decodeRaw(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == '1' {
		zeros++
	}

	x := new(big.Int)
	for i := zeros; i < len(s); i++ {
		d := decodeTable[s[i]]
		if d < 0 {
			return nil, ErrInvalidAlphabet
		}
		x.Mul(x, bigRadix)
		x.Add(x, big.NewInt(int64(d)))
	}

	xb := x.Bytes()
	out := make([]byte, zeros+len(xb))
	copy(out[zeros:], xb)
	return out, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
