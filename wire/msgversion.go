package wire

import "github.com/conformal-wire/satoshiwire/serialize"

// VersionMessage is the handshake's first message, per spec.md §4.5.
// AddrFrom, Nonce, UserAgent, StartHeight and Relay are only present
// when Version is new enough to carry them; earlier fields are always
// present.
type VersionMessage struct {
	Version     int32
	Services    ServiceFlags
	Timestamp   int64
	AddrRecv    NetworkAddress
	AddrFrom    NetworkAddress
	Nonce       uint64
	UserAgent   string
	StartHeight int32
	Relay       bool
}

func (m *VersionMessage) Command() string { return CmdVersion }

func (m *VersionMessage) Deserialize(src serialize.Source) error {
	v, err := serialize.ReadI32LE(src)
	if err != nil {
		return err
	}
	m.Version = v

	services, err := serialize.ReadU64LE(src)
	if err != nil {
		return err
	}
	m.Services = ServiceFlags(services)

	ts, err := serialize.ReadI64LE(src)
	if err != nil {
		return err
	}
	m.Timestamp = ts

	if err := m.AddrRecv.Deserialize(src); err != nil {
		return err
	}

	if uint32(m.Version) >= AddrFromVersion {
		if err := m.AddrFrom.Deserialize(src); err != nil {
			return err
		}
		nonce, err := serialize.ReadU64LE(src)
		if err != nil {
			return err
		}
		m.Nonce = nonce
		ua, err := serialize.ReadVarString(src, MaxMessagePayload)
		if err != nil {
			return err
		}
		m.UserAgent = ua
	}

	if uint32(m.Version) >= HeightVersion {
		h, err := serialize.ReadI32LE(src)
		if err != nil {
			return err
		}
		m.StartHeight = h
	}

	if uint32(m.Version) >= RelayVersion {
		relay, err := serialize.ReadBool(src)
		if err != nil {
			return err
		}
		m.Relay = relay
	} else {
		m.Relay = true
	}

	return nil
}

func (m *VersionMessage) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteI32LE(sink, m.Version); err != nil {
		return err
	}
	if err := serialize.WriteU64LE(sink, uint64(m.Services)); err != nil {
		return err
	}
	if err := serialize.WriteI64LE(sink, m.Timestamp); err != nil {
		return err
	}
	if err := m.AddrRecv.Serialize(sink); err != nil {
		return err
	}
	if uint32(m.Version) >= AddrFromVersion {
		if err := m.AddrFrom.Serialize(sink); err != nil {
			return err
		}
		if err := serialize.WriteU64LE(sink, m.Nonce); err != nil {
			return err
		}
		if err := serialize.WriteVarString(sink, m.UserAgent); err != nil {
			return err
		}
	}
	if uint32(m.Version) >= HeightVersion {
		if err := serialize.WriteI32LE(sink, m.StartHeight); err != nil {
			return err
		}
	}
	if uint32(m.Version) >= RelayVersion {
		if err := serialize.WriteBool(sink, m.Relay); err != nil {
			return err
		}
	}
	return nil
}

// VerAckMessage has no payload.
type VerAckMessage struct{}

func (m *VerAckMessage) Command() string                           { return CmdVerAck }
func (m *VerAckMessage) Deserialize(src serialize.Source) error    { return nil }
func (m *VerAckMessage) Serialize(sink serialize.Sink) error       { return nil }
