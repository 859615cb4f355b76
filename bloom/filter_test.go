package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMurmurHash3ScenarioE6(t *testing.T) {
	require.Equal(t, uint32(0), MurmurHash3(0, nil))
	require.Equal(t, uint32(0x6a396f08), MurmurHash3(0xfba4c795, nil))
	require.Equal(t, uint32(0xbdd4c4a4), MurmurHash3(0xfba4c795, []byte{0x00}))
}

func TestFilterInsertThenContains(t *testing.T) {
	f := NewFilter(100, 0.01, 0)
	data := []byte("hello world")
	require.False(t, f.MaybeContains(data))
	f.Insert(data)
	require.True(t, f.MaybeContains(data))
}

func TestFilterSizingClampedToMax(t *testing.T) {
	f := NewFilter(10_000_000, 0.00001, 0)
	require.LessOrEqual(t, len(f.Bits), MaxFilterSize)
	require.LessOrEqual(t, f.HashFuncs, uint32(MaxHashFuncs))
}

func TestFilterSerializeRoundTrip(t *testing.T) {
	f := NewFilter(50, 0.01, 0xDEADBEEF)
	f.Insert([]byte("abc"))

	sink := newMemSink()
	require.NoError(t, f.Serialize(sink))

	got, err := Deserialize(sink.source())
	require.NoError(t, err)
	require.Equal(t, f.Bits, got.Bits)
	require.Equal(t, f.HashFuncs, got.HashFuncs)
	require.Equal(t, f.Tweak, got.Tweak)
}
