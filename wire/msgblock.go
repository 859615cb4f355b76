package wire

import "github.com/conformal-wire/satoshiwire/serialize"

// maxTxPerBlock bounds transaction counts, matching the teacher's
// defensive cap against unbounded allocation from a declared count.
const maxTxPerBlock = 1_000_000

// BlockMessage is a full block: header plus its transaction list, per
// spec.md §4.5.
type BlockMessage struct {
	Header BlockHeader
	Tx     []*Tx
}

func (m *BlockMessage) Command() string { return CmdBlock }

func (m *BlockMessage) Deserialize(src serialize.Source) error {
	if err := m.Header.Deserialize(src); err != nil {
		return err
	}
	n, err := serialize.ReadVarIntN(src, maxTxPerBlock)
	if err != nil {
		return err
	}
	m.Tx = make([]*Tx, n)
	for i := range m.Tx {
		tx := &Tx{}
		if err := tx.Deserialize(src); err != nil {
			return err
		}
		m.Tx[i] = tx
	}
	return nil
}

func (m *BlockMessage) Serialize(sink serialize.Sink) error {
	if err := m.Header.Serialize(sink); err != nil {
		return err
	}
	if err := serialize.WriteVarInt(sink, uint64(len(m.Tx))); err != nil {
		return err
	}
	for _, tx := range m.Tx {
		if err := tx.Serialize(sink); err != nil {
			return err
		}
	}
	return nil
}

// HeadersMessage carries a batch of block headers, per spec.md §4.5.
// Each header on the wire is followed by an inline transaction count
// that must be zero, since headers never carry transactions; a nonzero
// value is rejected as malformed.
type HeadersMessage struct {
	Headers []*BlockHeader
}

func (m *HeadersMessage) Command() string { return CmdHeaders }

const maxHeadersPerMessage = 2000

func (m *HeadersMessage) Deserialize(src serialize.Source) error {
	n, err := serialize.ReadVarIntN(src, maxHeadersPerMessage)
	if err != nil {
		return err
	}
	m.Headers = make([]*BlockHeader, n)
	for i := range m.Headers {
		h := &BlockHeader{}
		if err := h.Deserialize(src); err != nil {
			return err
		}
		txCount, err := serialize.ReadVarIntN(src, maxTxPerBlock)
		if err != nil {
			return err
		}
		if txCount != 0 {
			return serialize.NewInvalidFormat("headers: inline tx_count must be zero")
		}
		m.Headers[i] = h
	}
	return nil
}

func (m *HeadersMessage) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteVarInt(sink, uint64(len(m.Headers))); err != nil {
		return err
	}
	for _, h := range m.Headers {
		if err := h.Serialize(sink); err != nil {
			return err
		}
		if err := serialize.WriteVarInt(sink, 0); err != nil {
			return err
		}
	}
	return nil
}
