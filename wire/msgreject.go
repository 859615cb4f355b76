package wire

import "github.com/conformal-wire/satoshiwire/serialize"

// RejectCode enumerates the reason a message was rejected.
type RejectCode uint8

const (
	RejectMalformed       RejectCode = 0x01
	RejectInvalid         RejectCode = 0x10
	RejectObsolete        RejectCode = 0x11
	RejectDuplicate       RejectCode = 0x12
	RejectNonstandard     RejectCode = 0x40
	RejectDust            RejectCode = 0x41
	RejectInsufficientFee RejectCode = 0x42
	RejectCheckpoint      RejectCode = 0x43
)

// RejectMessage reports why a previously received message was refused,
// per spec.md §4.5. Extra carries any additional bytes a reject for
// CmdTx/CmdBlock tacks on (the rejected object's hash), read via a
// LimitedSource since its presence is command-dependent rather than
// length-prefixed.
type RejectMessage struct {
	Message string
	Code    RejectCode
	Reason  string
	Extra   []byte
}

func (m *RejectMessage) Command() string { return CmdReject }

func (m *RejectMessage) Deserialize(src serialize.Source) error {
	msg, err := serialize.ReadVarString(src, MaxMessagePayload)
	if err != nil {
		return err
	}
	m.Message = msg

	code, err := serialize.ReadU8(src)
	if err != nil {
		return err
	}
	m.Code = RejectCode(code)

	reason, err := serialize.ReadVarString(src, MaxMessagePayload)
	if err != nil {
		return err
	}
	m.Reason = reason

	if rem, ok := src.(interface{ Remaining() int }); ok && rem.Remaining() > 0 {
		extra := make([]byte, rem.Remaining())
		if err := src.ReadFull(extra); err != nil {
			return err
		}
		m.Extra = extra
	}
	return nil
}

func (m *RejectMessage) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteVarString(sink, m.Message); err != nil {
		return err
	}
	if err := serialize.WriteU8(sink, uint8(m.Code)); err != nil {
		return err
	}
	if err := serialize.WriteVarString(sink, m.Reason); err != nil {
		return err
	}
	if len(m.Extra) == 0 {
		return nil
	}
	return serialize.WriteBytes(sink, m.Extra)
}
