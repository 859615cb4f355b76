package wire

import "github.com/conformal-wire/satoshiwire/serialize"

// AddressWithTimestamp is a NetworkAddress as carried by the addr
// message: a 4-byte timestamp prefix followed by the plain 26-byte
// inner form used inside version (see NetworkAddress).
type AddressWithTimestamp struct {
	Timestamp uint32
	Address   NetworkAddress
}

func (a *AddressWithTimestamp) Deserialize(src serialize.Source) error {
	ts, err := serialize.ReadU32LE(src)
	if err != nil {
		return err
	}
	a.Timestamp = ts
	return a.Address.Deserialize(src)
}

func (a *AddressWithTimestamp) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteU32LE(sink, a.Timestamp); err != nil {
		return err
	}
	return a.Address.Serialize(sink)
}

// maxAddrPerMessage bounds how many entries an addr message may carry,
// matching the teacher's defensive cap against unbounded allocation.
const maxAddrPerMessage = 1000

// AddrMessage advertises known peer addresses, per spec.md §4.5.
type AddrMessage struct {
	Addrs []*AddressWithTimestamp
}

func (m *AddrMessage) Command() string { return CmdAddr }

func (m *AddrMessage) Deserialize(src serialize.Source) error {
	n, err := serialize.ReadVarIntN(src, maxAddrPerMessage)
	if err != nil {
		return err
	}
	m.Addrs = make([]*AddressWithTimestamp, n)
	for i := range m.Addrs {
		a := &AddressWithTimestamp{}
		if err := a.Deserialize(src); err != nil {
			return err
		}
		m.Addrs[i] = a
	}
	return nil
}

func (m *AddrMessage) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteVarInt(sink, uint64(len(m.Addrs))); err != nil {
		return err
	}
	for _, a := range m.Addrs {
		if err := a.Serialize(sink); err != nil {
			return err
		}
	}
	return nil
}
