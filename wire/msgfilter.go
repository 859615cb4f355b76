package wire

import (
	"github.com/conformal-wire/satoshiwire/bloom"
	"github.com/conformal-wire/satoshiwire/serialize"
)

// maxFilterAddDataSize bounds a single filteradd element, matching BIP37's
// defensive cap against oversized script-element pushes.
const maxFilterAddDataSize = 520

// BloomUpdateFlag tells a peer how matched outpoints should update the
// filter it just installed.
type BloomUpdateFlag uint8

const (
	BloomUpdateNone         BloomUpdateFlag = 0
	BloomUpdateAll          BloomUpdateFlag = 1
	BloomUpdateP2PubkeyOnly BloomUpdateFlag = 2
)

// FilterLoadMessage installs a BIP37 bloom filter on the connection, per
// spec.md §4.5: varbytes(bits) | hash_count u32 LE | tweak u32 LE |
// nFlags u8. nFlags lives on the message, not the filter itself — the
// bare filter's wire form (bloom.Filter.Serialize) is only the first
// three fields.
type FilterLoadMessage struct {
	Filter bloom.Filter
	Flags  BloomUpdateFlag
}

func (m *FilterLoadMessage) Command() string { return CmdFilterLoad }
func (m *FilterLoadMessage) Deserialize(src serialize.Source) error {
	f, err := bloom.Deserialize(src)
	if err != nil {
		return err
	}
	m.Filter = *f
	flags, err := serialize.ReadU8(src)
	if err != nil {
		return err
	}
	m.Flags = BloomUpdateFlag(flags)
	return nil
}
func (m *FilterLoadMessage) Serialize(sink serialize.Sink) error {
	if err := m.Filter.Serialize(sink); err != nil {
		return err
	}
	return serialize.WriteU8(sink, uint8(m.Flags))
}

// FilterAddMessage adds a single element to the peer's loaded filter.
type FilterAddMessage struct {
	Data []byte
}

func (m *FilterAddMessage) Command() string { return CmdFilterAdd }
func (m *FilterAddMessage) Deserialize(src serialize.Source) error {
	data, err := serialize.ReadVarBytes(src, maxFilterAddDataSize)
	if err != nil {
		return err
	}
	m.Data = data
	return nil
}
func (m *FilterAddMessage) Serialize(sink serialize.Sink) error {
	return serialize.WriteVarBytes(sink, m.Data)
}
