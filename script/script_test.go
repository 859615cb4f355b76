package script

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushDataRoundTripBoundarySizes(t *testing.T) {
	sizes := []int{0, 1, 0x4B, 0x4C, 0xFF, 0x100, 0xFFFF, 0x10000}
	for _, size := range sizes {
		data := bytes.Repeat([]byte{0xAB}, size)
		s := NewBuilder().PushData(data).Script()
		insts := s.Instructions()
		require.Len(t, insts, 1)
		require.Equal(t, data, insts[0].Data)
		require.True(t, s.Valid())
	}
}

func TestPushData2UsesBigEndianLength(t *testing.T) {
	// A deliberate deviation from real Bitcoin Core: PUSHDATA2/4 length
	// prefixes are big-endian in this wire format.
	data := bytes.Repeat([]byte{0x01}, 0x100)
	s := NewBuilder().PushData(data).Script()
	require.Equal(t, byte(OP_PUSHDATA2), s[0])
	require.Equal(t, byte(0x01), s[1])
	require.Equal(t, byte(0x00), s[2])
}

func TestPushIntRoundTrip(t *testing.T) {
	values := []int64{
		-(1 << 62) + 1, -(1 << 32), -0x80, -1, 0, 1, 16, 17,
		0x7F, 0x80, 0x7FFFFFFF, (1 << 62) - 1,
	}
	for _, v := range values {
		s := NewBuilder().PushInt(v).Script()
		insts := s.Instructions()
		require.Len(t, insts, 1)
		require.Equal(t, v, insts[0].IntValue(), "value %d", v)
	}
}

func TestSmallConstantsUseSingleByteOpcodes(t *testing.T) {
	require.Equal(t, Script{byte(OP_0)}, NewBuilder().PushInt(0).Script())
	require.Equal(t, Script{byte(OP_1)}, NewBuilder().PushInt(1).Script())
	require.Equal(t, Script{byte(OP_16)}, NewBuilder().PushInt(16).Script())
	require.Equal(t, Script{byte(OP_1NEGATE)}, NewBuilder().PushInt(-1).Script())
}

func TestScenarioE5P2PKHScript(t *testing.T) {
	hash := bytes.Repeat([]byte{0xAB}, 20)
	s := NewBuilder().
		PushOpcode(OP_DUP).
		PushOpcode(OP_HASH160).
		PushData(hash).
		PushOpcode(OP_EQUALVERIFY).
		PushOpcode(OP_CHECKSIG).
		Script()

	want := append([]byte{0x76, 0xA9, 0x14}, hash...)
	want = append(want, 0x88, 0xAC)
	require.Equal(t, Script(want), s)
	require.Len(t, s.Instructions(), 5)
}

func TestInvalidScriptDetectsTruncatedPush(t *testing.T) {
	s := Script{byte(OP_PUSHDATA1), 0x05, 0x01, 0x02}
	require.False(t, s.Valid())
}
