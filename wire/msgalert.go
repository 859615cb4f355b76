package wire

import "github.com/conformal-wire/satoshiwire/serialize"

// AlertMessage carries a signed broadcast alert: an opaque,
// serialized AlertPayload plus a signature over it, per spec.md §4.5.
// The two are kept separate (rather than decoding the payload inline)
// because verifying the signature is a prerequisite to trusting the
// payload's contents at all.
type AlertMessage struct {
	Payload   []byte
	Signature []byte
}

func (m *AlertMessage) Command() string { return CmdAlert }

func (m *AlertMessage) Deserialize(src serialize.Source) error {
	payload, err := serialize.ReadVarBytes(src, MaxMessagePayload)
	if err != nil {
		return err
	}
	m.Payload = payload
	sig, err := serialize.ReadVarBytes(src, MaxMessagePayload)
	if err != nil {
		return err
	}
	m.Signature = sig
	return nil
}

func (m *AlertMessage) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteVarBytes(sink, m.Payload); err != nil {
		return err
	}
	return serialize.WriteVarBytes(sink, m.Signature)
}

// AlertPayload is the version-1 alert payload format, decoded from
// AlertMessage.Payload once its signature has been verified against a
// known alert key. Field layout follows the original alert system's
// CUnsignedAlert.
type AlertPayload struct {
	RelayUntil int64
	Expiration int64
	ID         int32
	Cancel     int32
	SetCancel  []int32
	MinVer     int32
	MaxVer     int32
	SetSubVer  []string
	Priority   int32
	Comment    string
	StatusBar  string
	Reserved   string
}

const maxAlertSetEntries = 10000

func DeserializeAlertPayload(src serialize.Source) (*AlertPayload, error) {
	p := &AlertPayload{}

	version, err := serialize.ReadI32LE(src)
	if err != nil {
		return nil, err
	}
	if version != 1 {
		return nil, serialize.NewInvalidFormat("alert payload: unsupported version")
	}

	if p.RelayUntil, err = serialize.ReadI64LE(src); err != nil {
		return nil, err
	}
	if p.Expiration, err = serialize.ReadI64LE(src); err != nil {
		return nil, err
	}
	if p.ID, err = serialize.ReadI32LE(src); err != nil {
		return nil, err
	}
	if p.Cancel, err = serialize.ReadI32LE(src); err != nil {
		return nil, err
	}

	n, err := serialize.ReadVarIntN(src, maxAlertSetEntries)
	if err != nil {
		return nil, err
	}
	p.SetCancel = make([]int32, n)
	for i := range p.SetCancel {
		if p.SetCancel[i], err = serialize.ReadI32LE(src); err != nil {
			return nil, err
		}
	}

	if p.MinVer, err = serialize.ReadI32LE(src); err != nil {
		return nil, err
	}
	if p.MaxVer, err = serialize.ReadI32LE(src); err != nil {
		return nil, err
	}

	n, err = serialize.ReadVarIntN(src, maxAlertSetEntries)
	if err != nil {
		return nil, err
	}
	p.SetSubVer = make([]string, n)
	for i := range p.SetSubVer {
		if p.SetSubVer[i], err = serialize.ReadVarString(src, MaxMessagePayload); err != nil {
			return nil, err
		}
	}

	if p.Priority, err = serialize.ReadI32LE(src); err != nil {
		return nil, err
	}
	if p.Comment, err = serialize.ReadVarString(src, MaxMessagePayload); err != nil {
		return nil, err
	}
	if p.StatusBar, err = serialize.ReadVarString(src, MaxMessagePayload); err != nil {
		return nil, err
	}
	if p.Reserved, err = serialize.ReadVarString(src, MaxMessagePayload); err != nil {
		return nil, err
	}

	return p, nil
}

func SerializeAlertPayload(sink serialize.Sink, p *AlertPayload) error {
	if err := serialize.WriteI32LE(sink, 1); err != nil {
		return err
	}
	if err := serialize.WriteI64LE(sink, p.RelayUntil); err != nil {
		return err
	}
	if err := serialize.WriteI64LE(sink, p.Expiration); err != nil {
		return err
	}
	if err := serialize.WriteI32LE(sink, p.ID); err != nil {
		return err
	}
	if err := serialize.WriteI32LE(sink, p.Cancel); err != nil {
		return err
	}
	if err := serialize.WriteVarInt(sink, uint64(len(p.SetCancel))); err != nil {
		return err
	}
	for _, c := range p.SetCancel {
		if err := serialize.WriteI32LE(sink, c); err != nil {
			return err
		}
	}
	if err := serialize.WriteI32LE(sink, p.MinVer); err != nil {
		return err
	}
	if err := serialize.WriteI32LE(sink, p.MaxVer); err != nil {
		return err
	}
	if err := serialize.WriteVarInt(sink, uint64(len(p.SetSubVer))); err != nil {
		return err
	}
	for _, s := range p.SetSubVer {
		if err := serialize.WriteVarString(sink, s); err != nil {
			return err
		}
	}
	if err := serialize.WriteI32LE(sink, p.Priority); err != nil {
		return err
	}
	if err := serialize.WriteVarString(sink, p.Comment); err != nil {
		return err
	}
	if err := serialize.WriteVarString(sink, p.StatusBar); err != nil {
		return err
	}
	return serialize.WriteVarString(sink, p.Reserved)
}
