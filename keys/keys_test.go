package keys

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenarioE2WIFDecode(t *testing.T) {
	priv, err := DecodeWIF("5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ")
	require.NoError(t, err)
	require.Equal(t, FlagsNone, priv.Flags)

	want := "0C28FCA386C7A227600B2FE50B7CAE11EC86D3BF1FBE471BE89827E19D72AA1D"
	wantBytes, _ := hex.DecodeString(want)
	gotBytes := make([]byte, 32)
	priv.D.FillBytes(gotBytes)
	require.Equal(t, wantBytes, gotBytes)

	require.Equal(t, "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ", priv.EncodeWIF())
}

func TestWIFCompressedRoundTrip(t *testing.T) {
	priv, err := DecodeWIF("5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ")
	require.NoError(t, err)
	priv.Flags = FlagCompress
	s := priv.EncodeWIF()

	round, err := DecodeWIF(s)
	require.NoError(t, err)
	require.Equal(t, FlagCompress, round.Flags)
	require.Equal(t, priv.D, round.D)
}

func TestWIFRejectsBadFlagBits(t *testing.T) {
	// 0x80 || 32 zero bytes || 0xFF (bad flags byte).
	payload := append([]byte{0x80}, make([]byte, 32)...)
	payload = append(payload, 0xFF)
	s := encodeForTest(payload)
	_, err := DecodeWIF(s)
	require.Error(t, err)
}

func TestScenarioE3AddressDecodeAndScript(t *testing.T) {
	addr, err := DecodeAddress("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa")
	require.NoError(t, err)
	require.Equal(t, PubKeyHash, addr.Type)

	wantHash, _ := hex.DecodeString("62E907B15CBF27D5425399EBF6F0FB50EBB88F18")
	require.Equal(t, wantHash, addr.Hash[:])

	s, err := AddressToScript(addr)
	require.NoError(t, err)
	wantScript, _ := hex.DecodeString("76A91462E907B15CBF27D5425399EBF6F0FB50EBB88F1888AC")
	require.Equal(t, wantScript, []byte(s))
}

func TestPubkeyCompressDecompressRoundTrip(t *testing.T) {
	// A point on secp256k1: the generator G.
	gx, _ := hexBig("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy, _ := hexBig("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

	pk := &PublicKey{X: gx, Y: gy, Compress: true}
	enc := pk.Encode()
	require.Len(t, enc, 33)

	decoded, err := DecodePublicKey(enc)
	require.NoError(t, err)
	require.Equal(t, gx, decoded.X)
	require.Equal(t, gy, decoded.Y)
}

func TestPropertySevenPubkeyToAddressMatchesRecomputation(t *testing.T) {
	gx, _ := hexBig("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy, _ := hexBig("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
	pk := &PublicKey{X: gx, Y: gy, Compress: true}

	addr := PubkeyToAddress(pk, false)
	want := Hash160(pk.Encode())
	require.Equal(t, want, addr.Hash[:])
}
