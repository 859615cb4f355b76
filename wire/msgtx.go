package wire

import "github.com/conformal-wire/satoshiwire/serialize"

// TxMessage carries a single transaction.
type TxMessage struct{ Tx Tx }

func (m *TxMessage) Command() string                        { return CmdTx }
func (m *TxMessage) Deserialize(src serialize.Source) error { return m.Tx.Deserialize(src) }
func (m *TxMessage) Serialize(sink serialize.Sink) error     { return m.Tx.Serialize(sink) }
