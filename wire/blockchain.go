package wire

import (
	"bytes"
	"io"

	"github.com/conformal-wire/satoshiwire/chainhash"
	"github.com/conformal-wire/satoshiwire/script"
	"github.com/conformal-wire/satoshiwire/serialize"
)

// OutPoint references a specific output of a transaction by (txid,
// index); immutable once constructed, per spec.md §3.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// Less orders OutPoints lexicographically by Hash, then by Index.
func (o OutPoint) Less(other OutPoint) bool {
	if c := bytes.Compare(o.Hash[:], other.Hash[:]); c != 0 {
		return c < 0
	}
	return o.Index < other.Index
}

func (o *OutPoint) Deserialize(src serialize.Source) error {
	h, err := serialize.ReadBytes(src, chainhash.HashSize)
	if err != nil {
		return err
	}
	copy(o.Hash[:], h)
	idx, err := serialize.ReadU32LE(src)
	if err != nil {
		return err
	}
	o.Index = idx
	return nil
}

func (o *OutPoint) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteBytes(sink, o.Hash[:]); err != nil {
		return err
	}
	return serialize.WriteU32LE(sink, o.Index)
}

// TxIn is {prevout, script, seq_num}.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript   script.Script
	Sequence          uint32
}

func (in *TxIn) Deserialize(src serialize.Source) error {
	if err := in.PreviousOutPoint.Deserialize(src); err != nil {
		return err
	}
	s, err := script.Deserialize(src, MaxMessagePayload)
	if err != nil {
		return err
	}
	in.SignatureScript = s
	seq, err := serialize.ReadU32LE(src)
	if err != nil {
		return err
	}
	in.Sequence = seq
	return nil
}

func (in *TxIn) Serialize(sink serialize.Sink) error {
	if err := in.PreviousOutPoint.Serialize(sink); err != nil {
		return err
	}
	if err := in.SignatureScript.Serialize(sink); err != nil {
		return err
	}
	return serialize.WriteU32LE(sink, in.Sequence)
}

// TxOut is {amount (satoshis), script}.
type TxOut struct {
	Value    int64
	PkScript script.Script
}

func (out *TxOut) Deserialize(src serialize.Source) error {
	v, err := serialize.ReadI64LE(src)
	if err != nil {
		return err
	}
	out.Value = v
	s, err := script.Deserialize(src, MaxMessagePayload)
	if err != nil {
		return err
	}
	out.PkScript = s
	return nil
}

func (out *TxOut) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteI64LE(sink, out.Value); err != nil {
		return err
	}
	return out.PkScript.Serialize(sink)
}

// Tx is {version, inputs, outputs, lock_time}, per spec.md §3.
type Tx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

func (tx *Tx) Deserialize(src serialize.Source) error {
	v, err := serialize.ReadI32LE(src)
	if err != nil {
		return err
	}
	tx.Version = v

	nIn, err := serialize.ReadVarIntN(src, MaxMessagePayload)
	if err != nil {
		return err
	}
	tx.TxIn = make([]*TxIn, nIn)
	for i := range tx.TxIn {
		in := &TxIn{}
		if err := in.Deserialize(src); err != nil {
			return err
		}
		tx.TxIn[i] = in
	}

	nOut, err := serialize.ReadVarIntN(src, MaxMessagePayload)
	if err != nil {
		return err
	}
	tx.TxOut = make([]*TxOut, nOut)
	for i := range tx.TxOut {
		out := &TxOut{}
		if err := out.Deserialize(src); err != nil {
			return err
		}
		tx.TxOut[i] = out
	}

	lockTime, err := serialize.ReadU32LE(src)
	if err != nil {
		return err
	}
	tx.LockTime = lockTime
	return nil
}

func (tx *Tx) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteI32LE(sink, tx.Version); err != nil {
		return err
	}
	if err := serialize.WriteVarInt(sink, uint64(len(tx.TxIn))); err != nil {
		return err
	}
	for _, in := range tx.TxIn {
		if err := in.Serialize(sink); err != nil {
			return err
		}
	}
	if err := serialize.WriteVarInt(sink, uint64(len(tx.TxOut))); err != nil {
		return err
	}
	for _, out := range tx.TxOut {
		if err := out.Serialize(sink); err != nil {
			return err
		}
	}
	return serialize.WriteU32LE(sink, tx.LockTime)
}

// TxHash computes the double-SHA256 id of the transaction's serialized
// form, streaming through chainhash.DoubleHashRaw so the whole payload
// need not be buffered separately.
func (tx *Tx) TxHash() (chainhash.Hash, error) {
	return chainhash.DoubleHashRaw(func(w io.Writer) error {
		return tx.Serialize(serialize.NewWriterSink(w))
	})
}

// BlockHeader is {version, parent_block_hash, merkle_root_hash, time,
// bits, nonce}, per spec.md §3. Only versions 1, 2, and 3 are accepted
// on deserialization.
type BlockHeader struct {
	Version    uint32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

func (h *BlockHeader) Deserialize(src serialize.Source) error {
	v, err := serialize.ReadU32LE(src)
	if err != nil {
		return err
	}
	if v != 1 && v != 2 && v != 3 {
		return serialize.NewInvalidFormat("blockheader: version must be 1, 2, or 3")
	}
	h.Version = v

	prev, err := serialize.ReadBytes(src, chainhash.HashSize)
	if err != nil {
		return err
	}
	copy(h.PrevBlock[:], prev)

	merkle, err := serialize.ReadBytes(src, chainhash.HashSize)
	if err != nil {
		return err
	}
	copy(h.MerkleRoot[:], merkle)

	ts, err := serialize.ReadU32LE(src)
	if err != nil {
		return err
	}
	h.Timestamp = ts

	bits, err := serialize.ReadU32LE(src)
	if err != nil {
		return err
	}
	h.Bits = bits

	nonce, err := serialize.ReadU32LE(src)
	if err != nil {
		return err
	}
	h.Nonce = nonce
	return nil
}

func (h *BlockHeader) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteU32LE(sink, h.Version); err != nil {
		return err
	}
	if err := serialize.WriteBytes(sink, h.PrevBlock[:]); err != nil {
		return err
	}
	if err := serialize.WriteBytes(sink, h.MerkleRoot[:]); err != nil {
		return err
	}
	if err := serialize.WriteU32LE(sink, h.Timestamp); err != nil {
		return err
	}
	if err := serialize.WriteU32LE(sink, h.Bits); err != nil {
		return err
	}
	return serialize.WriteU32LE(sink, h.Nonce)
}

// CompactToDouble decodes a compact ("bits") difficulty target into its
// floating-point approximation, per spec.md's glossary entry and
// original_source/types.cpp's compact_to_double.
func CompactToDouble(compact uint32) float64 {
	size := compact >> 24
	word := float64(compact & 0x007fffff)
	exponent := int(size) - 3
	result := word
	for exponent > 0 {
		result *= 256
		exponent--
	}
	for exponent < 0 {
		result /= 256
		exponent++
	}
	return result
}
