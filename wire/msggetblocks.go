package wire

import (
	"github.com/conformal-wire/satoshiwire/chainhash"
	"github.com/conformal-wire/satoshiwire/serialize"
)

// maxLocatorHashes bounds block-locator length, matching the teacher's
// defensive cap.
const maxLocatorHashes = 2000

func deserializeLocator(src serialize.Source) (version uint32, hashes []chainhash.Hash, stop chainhash.Hash, err error) {
	version, err = serialize.ReadU32LE(src)
	if err != nil {
		return
	}
	n, err2 := serialize.ReadVarIntN(src, maxLocatorHashes)
	if err2 != nil {
		err = err2
		return
	}
	hashes = make([]chainhash.Hash, n)
	for i := range hashes {
		b, e := serialize.ReadBytes(src, chainhash.HashSize)
		if e != nil {
			err = e
			return
		}
		copy(hashes[i][:], b)
	}
	b, e := serialize.ReadBytes(src, chainhash.HashSize)
	if e != nil {
		err = e
		return
	}
	copy(stop[:], b)
	return
}

func serializeLocator(sink serialize.Sink, version uint32, hashes []chainhash.Hash, stop chainhash.Hash) error {
	if err := serialize.WriteU32LE(sink, version); err != nil {
		return err
	}
	if err := serialize.WriteVarInt(sink, uint64(len(hashes))); err != nil {
		return err
	}
	for _, h := range hashes {
		if err := serialize.WriteBytes(sink, h[:]); err != nil {
			return err
		}
	}
	return serialize.WriteBytes(sink, stop[:])
}

// GetBlocksMessage requests an inv of blocks following the locator, per
// spec.md §4.5.
type GetBlocksMessage struct {
	Version      uint32
	BlockLocator []chainhash.Hash
	HashStop     chainhash.Hash
}

func (m *GetBlocksMessage) Command() string { return CmdGetBlocks }
func (m *GetBlocksMessage) Deserialize(src serialize.Source) error {
	v, h, s, err := deserializeLocator(src)
	if err != nil {
		return err
	}
	m.Version, m.BlockLocator, m.HashStop = v, h, s
	return nil
}
func (m *GetBlocksMessage) Serialize(sink serialize.Sink) error {
	return serializeLocator(sink, m.Version, m.BlockLocator, m.HashStop)
}

// GetHeadersMessage requests headers following the locator. Wire layout
// is identical to GetBlocksMessage; kept as a distinct type since the
// two are not interchangeable at the protocol level.
type GetHeadersMessage struct {
	Version      uint32
	BlockLocator []chainhash.Hash
	HashStop     chainhash.Hash
}

func (m *GetHeadersMessage) Command() string { return CmdGetHeaders }
func (m *GetHeadersMessage) Deserialize(src serialize.Source) error {
	v, h, s, err := deserializeLocator(src)
	if err != nil {
		return err
	}
	m.Version, m.BlockLocator, m.HashStop = v, h, s
	return nil
}
func (m *GetHeadersMessage) Serialize(sink serialize.Sink) error {
	return serializeLocator(sink, m.Version, m.BlockLocator, m.HashStop)
}
