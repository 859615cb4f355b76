package wire

import (
	"github.com/conformal-wire/satoshiwire/chainhash"
	"github.com/conformal-wire/satoshiwire/serialize"
)

// MerkleBlockMessage carries a block header plus a BIP37 partial merkle
// tree proving which transactions matched a loaded filter, per spec.md
// §4.5.
type MerkleBlockMessage struct {
	Header           BlockHeader
	TotalTransactions uint32
	Hashes            []chainhash.Hash
	Flags             []byte
}

func (m *MerkleBlockMessage) Command() string { return CmdMerkleBlock }

func (m *MerkleBlockMessage) Deserialize(src serialize.Source) error {
	if err := m.Header.Deserialize(src); err != nil {
		return err
	}
	total, err := serialize.ReadU32LE(src)
	if err != nil {
		return err
	}
	m.TotalTransactions = total

	n, err := serialize.ReadVarIntN(src, maxTxPerBlock)
	if err != nil {
		return err
	}
	m.Hashes = make([]chainhash.Hash, n)
	for i := range m.Hashes {
		b, err := serialize.ReadBytes(src, chainhash.HashSize)
		if err != nil {
			return err
		}
		copy(m.Hashes[i][:], b)
	}

	flags, err := serialize.ReadVarBytes(src, MaxMessagePayload)
	if err != nil {
		return err
	}
	m.Flags = flags
	return nil
}

func (m *MerkleBlockMessage) Serialize(sink serialize.Sink) error {
	if err := m.Header.Serialize(sink); err != nil {
		return err
	}
	if err := serialize.WriteU32LE(sink, m.TotalTransactions); err != nil {
		return err
	}
	if err := serialize.WriteVarInt(sink, uint64(len(m.Hashes))); err != nil {
		return err
	}
	for _, h := range m.Hashes {
		if err := serialize.WriteBytes(sink, h[:]); err != nil {
			return err
		}
	}
	return serialize.WriteVarBytes(sink, m.Flags)
}
