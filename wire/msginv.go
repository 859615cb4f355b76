package wire

import (
	"github.com/conformal-wire/satoshiwire/chainhash"
	"github.com/conformal-wire/satoshiwire/serialize"
)

// InvType identifies what kind of object an InventoryVector names.
type InvType uint32

const (
	InvError         InvType = 0
	InvTx            InvType = 1
	InvBlock         InvType = 2
	InvFilteredBlock InvType = 3
)

// InventoryVector is {type, hash}, shared by inv, getdata, and notfound.
type InventoryVector struct {
	Type InvType
	Hash chainhash.Hash
}

func (v *InventoryVector) Deserialize(src serialize.Source) error {
	t, err := serialize.ReadU32LE(src)
	if err != nil {
		return err
	}
	v.Type = InvType(t)
	h, err := serialize.ReadBytes(src, chainhash.HashSize)
	if err != nil {
		return err
	}
	copy(v.Hash[:], h)
	return nil
}

func (v *InventoryVector) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteU32LE(sink, uint32(v.Type)); err != nil {
		return err
	}
	return serialize.WriteBytes(sink, v.Hash[:])
}

// maxInvPerMessage bounds inv/getdata/notfound vector counts, matching
// the teacher's defensive cap.
const maxInvPerMessage = 50000

func deserializeInvList(src serialize.Source) ([]*InventoryVector, error) {
	n, err := serialize.ReadVarIntN(src, maxInvPerMessage)
	if err != nil {
		return nil, err
	}
	out := make([]*InventoryVector, n)
	for i := range out {
		v := &InventoryVector{}
		if err := v.Deserialize(src); err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func serializeInvList(sink serialize.Sink, list []*InventoryVector) error {
	if err := serialize.WriteVarInt(sink, uint64(len(list))); err != nil {
		return err
	}
	for _, v := range list {
		if err := v.Serialize(sink); err != nil {
			return err
		}
	}
	return nil
}

// InvMessage announces objects the sender has.
type InvMessage struct{ Inventory []*InventoryVector }

func (m *InvMessage) Command() string { return CmdInv }
func (m *InvMessage) Deserialize(src serialize.Source) error {
	list, err := deserializeInvList(src)
	if err != nil {
		return err
	}
	m.Inventory = list
	return nil
}
func (m *InvMessage) Serialize(sink serialize.Sink) error { return serializeInvList(sink, m.Inventory) }

// GetDataMessage requests specific objects by inventory vector.
type GetDataMessage struct{ Inventory []*InventoryVector }

func (m *GetDataMessage) Command() string { return CmdGetData }
func (m *GetDataMessage) Deserialize(src serialize.Source) error {
	list, err := deserializeInvList(src)
	if err != nil {
		return err
	}
	m.Inventory = list
	return nil
}
func (m *GetDataMessage) Serialize(sink serialize.Sink) error {
	return serializeInvList(sink, m.Inventory)
}

// NotFoundMessage responds to a getdata for objects the sender doesn't have.
type NotFoundMessage struct{ Inventory []*InventoryVector }

func (m *NotFoundMessage) Command() string { return CmdNotFound }
func (m *NotFoundMessage) Deserialize(src serialize.Source) error {
	list, err := deserializeInvList(src)
	if err != nil {
		return err
	}
	m.Inventory = list
	return nil
}
func (m *NotFoundMessage) Serialize(sink serialize.Sink) error {
	return serializeInvList(sink, m.Inventory)
}
