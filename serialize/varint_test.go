package serialize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTripVarInt(t *testing.T, v uint64) uint64 {
	sink := NewStringSink()
	require.NoError(t, WriteVarInt(sink, v))
	got, err := ReadVarInt(NewMemorySource(sink.Bytes()))
	require.NoError(t, err)
	return got
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xFC, 0xFD, 0xFE, 0xFFFF, 0x10000, 0xFFFFFFFF, 0x100000000, ^uint64(0)}
	for _, v := range values {
		require.Equal(t, v, roundTripVarInt(t, v))
	}
}

func TestVarIntEncodingForm(t *testing.T) {
	cases := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{0xFC, []byte{0xFC}},
		{0xFD, []byte{0xFD, 0xFD, 0x00}},
		{0xFFFF, []byte{0xFD, 0xFF, 0xFF}},
		{0x10000, []byte{0xFE, 0x00, 0x00, 0x01, 0x00}},
		{0x100000000, []byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
	}
	for _, c := range cases {
		sink := NewStringSink()
		require.NoError(t, WriteVarInt(sink, c.v))
		require.Equal(t, c.want, sink.Bytes())
	}
}

func TestVarIntRejectsNonCanonical9ByteForm(t *testing.T) {
	// 0xFF followed by a value that fits in uint32 range must be rejected,
	// per spec.md §8 boundary behavior 8.
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}
	_, err := ReadVarInt(NewMemorySource(buf))
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	require.Equal(t, InvalidFormat, serr.Kind)
}

func TestReadVarIntNOverflow(t *testing.T) {
	sink := NewStringSink()
	require.NoError(t, WriteVarInt(sink, 1<<40))
	_, err := ReadVarIntN(NewMemorySource(sink.Bytes()), 1<<32)
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	require.Equal(t, Overflow, serr.Kind)
}

func TestVarStringRoundTrip(t *testing.T) {
	sink := NewStringSink()
	require.NoError(t, WriteVarString(sink, "/satoshi-p2p:0.1/"))
	got, err := ReadVarString(NewMemorySource(sink.Bytes()), 256)
	require.NoError(t, err)
	require.Equal(t, "/satoshi-p2p:0.1/", got)
}
