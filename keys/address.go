package keys

import (
	"github.com/conformal-wire/satoshiwire/base58"
	"github.com/conformal-wire/satoshiwire/script"
	"github.com/conformal-wire/satoshiwire/serialize"
)

// AddressType is one of the four accepted address version bytes.
type AddressType byte

const (
	PubKeyHash        AddressType = 0
	ScriptHash        AddressType = 5
	TestnetPubKeyHash AddressType = 111
	TestnetScriptHash AddressType = 196
)

// Address is a Base58Check-encoded {type, hash20} pair, per spec.md §3.
type Address struct {
	Type AddressType
	Hash [20]byte
}

// DecodeAddress Base58Check-decodes s to 21 bytes {type, hash20}, failing
// with InvalidFormat if type is not one of the four accepted values.
func DecodeAddress(s string) (*Address, error) {
	payload, err := base58.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(payload) != 21 {
		return nil, serialize.NewInvalidFormat("address: decoded payload must be 21 bytes")
	}
	t := AddressType(payload[0])
	switch t {
	case PubKeyHash, ScriptHash, TestnetPubKeyHash, TestnetScriptHash:
	default:
		return nil, serialize.NewInvalidFormat("address: unrecognized type byte")
	}
	addr := &Address{Type: t}
	copy(addr.Hash[:], payload[1:])
	return addr, nil
}

// Encode renders the address as Base58Check of {type, hash20}.
func (a *Address) Encode() string {
	payload := make([]byte, 21)
	payload[0] = byte(a.Type)
	copy(payload[1:], a.Hash[:])
	return base58.Encode(payload)
}

// AddressToScript maps an address to its canonical scriptPubKey
// template, per spec.md §4.7:
//
//	PUBKEY_HASH / TESTNET_PUBKEY_HASH -> DUP HASH160 <push20> EQUALVERIFY CHECKSIG
//	SCRIPT_HASH / TESTNET_SCRIPT_HASH -> HASH160 <push20> EQUAL
func AddressToScript(a *Address) (script.Script, error) {
	switch a.Type {
	case PubKeyHash, TestnetPubKeyHash:
		return script.NewBuilder().
			PushOpcode(script.OP_DUP).
			PushOpcode(script.OP_HASH160).
			PushData(a.Hash[:]).
			PushOpcode(script.OP_EQUALVERIFY).
			PushOpcode(script.OP_CHECKSIG).
			Script(), nil
	case ScriptHash, TestnetScriptHash:
		return script.NewBuilder().
			PushOpcode(script.OP_HASH160).
			PushData(a.Hash[:]).
			PushOpcode(script.OP_EQUAL).
			Script(), nil
	default:
		return nil, serialize.NewInvalidFormat("address: unrecognized type byte")
	}
}

// PubkeyToAddress computes Address{type, Hash160(SEC1(pubkey))}, using
// pubkey's Compress flag to choose the SEC1 encoding, per spec.md §4.7.
func PubkeyToAddress(pubkey *PublicKey, testnet bool) *Address {
	h := Hash160(pubkey.Encode())
	t := PubKeyHash
	if testnet {
		t = TestnetPubKeyHash
	}
	addr := &Address{Type: t}
	copy(addr.Hash[:], h)
	return addr
}
