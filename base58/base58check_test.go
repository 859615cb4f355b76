package base58

import (
	"bytes"
	"testing"

	"github.com/conformal-wire/satoshiwire/chainhash"
	"github.com/stretchr/testify/require"
)

func TestScenarioE1LeadingZeroEncodesAsOnes(t *testing.T) {
	h160 := chainhash.HashB([]byte("empty"))[:20]
	payload := append([]byte{0x00}, bytes.Repeat([]byte{0x00}, 19)...)
	payload = append(payload, h160...)

	s := Encode(payload)
	require.True(t, len(s) > 0 && s[0] == '1')
}

func TestPropertySixLeadingZerosCountOnes(t *testing.T) {
	for k := 0; k <= 3; k++ {
		payload := append(bytes.Repeat([]byte{0x00}, k), []byte{0x01, 0x02, 0x03}...)
		s := Encode(payload)
		leading := 0
		for leading < len(s) && s[leading] == '1' {
			leading++
		}
		require.Equal(t, k, leading)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte{0x00, 0x62, 0xE9, 0x07, 0xB1, 0x5C, 0xBF, 0x27, 0xD5,
		0x42, 0x53, 0x99, 0xEB, 0xF6, 0xF0, 0xFB, 0x50, 0xEB, 0xB8, 0x8F, 0x18}
	s := Encode(payload)
	got, err := Decode(s)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestScenarioE3AddressDecode(t *testing.T) {
	got, err := Decode("1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2")
	require.NoError(t, err)
	want := append([]byte{0x00}, mustHex("62E907B15CBF27D5425399EBF6F0FB50EBB88F18")...)
	require.Equal(t, want, got)
}

func TestDecodeRejectsBadChecksum(t *testing.T) {
	s := Encode([]byte{0x01, 0x02, 0x03})
	tampered := s[:len(s)-1] + flipLastChar(s[len(s)-1])
	_, err := Decode(tampered)
	require.Error(t, err)
}

func flipLastChar(c byte) string {
	for _, r := range alphabet {
		if byte(r) != c {
			return string(r)
		}
	}
	return "1"
}

func mustHex(s string) []byte {
	b := make([]byte, len(s)/2)
	for i := 0; i < len(b); i++ {
		hi := hexVal(s[i*2])
		lo := hexVal(s[i*2+1])
		b[i] = hi<<4 | lo
	}
	return b
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	return 0
}
