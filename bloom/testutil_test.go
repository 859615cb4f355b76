package bloom

import "github.com/conformal-wire/satoshiwire/serialize"

type memSink struct {
	*serialize.StringSink
}

func newMemSink() *memSink { return &memSink{serialize.NewStringSink()} }

func (m *memSink) source() *serialize.MemorySource {
	return serialize.NewMemorySource(m.Bytes())
}
