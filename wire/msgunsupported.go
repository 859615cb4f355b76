package wire

import "github.com/conformal-wire/satoshiwire/serialize"

// UnsupportedMessage is the fallback variant for any command outside the
// known table (MakeEmptyMessage's ok==false case), per spec.md §9's
// Design Notes: an unrecognized command is preserved as raw bytes and
// handed to the embedding application rather than causing a disconnect.
type UnsupportedMessage struct {
	CommandName string
	Payload     []byte
}

func (m *UnsupportedMessage) Command() string { return m.CommandName }

func (m *UnsupportedMessage) Deserialize(src serialize.Source) error {
	rem, ok := src.(interface{ Remaining() int })
	if !ok {
		return nil
	}
	n := rem.Remaining()
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	if err := src.ReadFull(buf); err != nil {
		return err
	}
	m.Payload = buf
	return nil
}

func (m *UnsupportedMessage) Serialize(sink serialize.Sink) error {
	return serialize.WriteBytes(sink, m.Payload)
}
