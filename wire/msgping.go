package wire

import "github.com/conformal-wire/satoshiwire/serialize"

// PingMessage carries a nonce a peer should echo back in a pong.
type PingMessage struct{ Nonce uint64 }

func (m *PingMessage) Command() string { return CmdPing }
func (m *PingMessage) Deserialize(src serialize.Source) error {
	n, err := serialize.ReadU64LE(src)
	if err != nil {
		return err
	}
	m.Nonce = n
	return nil
}
func (m *PingMessage) Serialize(sink serialize.Sink) error { return serialize.WriteU64LE(sink, m.Nonce) }

// PongMessage echoes a ping's nonce.
type PongMessage struct{ Nonce uint64 }

func (m *PongMessage) Command() string { return CmdPong }
func (m *PongMessage) Deserialize(src serialize.Source) error {
	n, err := serialize.ReadU64LE(src)
	if err != nil {
		return err
	}
	m.Nonce = n
	return nil
}
func (m *PongMessage) Serialize(sink serialize.Sink) error { return serialize.WriteU64LE(sink, m.Nonce) }
