package wire

import (
	"github.com/conformal-wire/satoshiwire/chainhash"
	"github.com/conformal-wire/satoshiwire/serialize"
)

// Message is the tagged-union value produced by reading one frame: a
// concrete type per command, each identified by its own Command(). Per
// spec.md §9's Design Notes, this replaces the source's per-variant
// virtual dispatch — a caller type-switches on the concrete Message
// value (see peer.Handler) rather than the Node invoking a virtual
// method on it.
type Message interface {
	// Command returns the wire command name for this message, without
	// the NUL padding that WriteMessageHeader adds to fill 12 bytes.
	Command() string
	// Deserialize reads the payload (not the envelope) from src.
	Deserialize(src serialize.Source) error
	// Serialize writes the payload (not the envelope) to sink.
	Serialize(sink serialize.Sink) error
}

// MessageHeader is {magic, command[12], length, checksum}, per spec.md
// §4.6.
type MessageHeader struct {
	Magic    Magic
	Command  string
	Length   uint32
	Checksum [4]byte
}

const messageHeaderSize = 4 + commandLength + 4 + 4

func ReadMessageHeader(src serialize.Source) (*MessageHeader, error) {
	magic, err := serialize.ReadU32LE(src)
	if err != nil {
		return nil, err
	}
	var cmd [commandLength]byte
	if err := src.ReadFull(cmd[:]); err != nil {
		return nil, err
	}
	length, err := serialize.ReadU32LE(src)
	if err != nil {
		return nil, err
	}
	if length > MaxMessagePayload {
		log.Warnf("rejecting %q frame: declared payload %d exceeds max %d",
			decodeCommand(cmd), length, MaxMessagePayload)
		return nil, serialize.NewInvalidFormat("message header: declared payload too large")
	}
	var checksum [4]byte
	if err := src.ReadFull(checksum[:]); err != nil {
		return nil, err
	}
	return &MessageHeader{
		Magic:    Magic(magic),
		Command:  decodeCommand(cmd),
		Length:   length,
		Checksum: checksum,
	}, nil
}

func WriteMessageHeader(sink serialize.Sink, h *MessageHeader) error {
	if err := serialize.WriteU32LE(sink, uint32(h.Magic)); err != nil {
		return err
	}
	cmd := encodeCommand(h.Command)
	if err := sink.WriteFull(cmd[:]); err != nil {
		return err
	}
	if err := serialize.WriteU32LE(sink, h.Length); err != nil {
		return err
	}
	return sink.WriteFull(h.Checksum[:])
}

// MakeEmptyMessage constructs a zero-value Message for the given
// command, using a plain map lookup — per spec.md §9's Design Notes,
// this replaces the source's hand-rolled character-by-character switch.
// ok is false for a command name not in the known table; callers should
// fall back to UnsupportedMessage.
func MakeEmptyMessage(command string) (Message, bool) {
	factory, ok := messageFactories[command]
	if !ok {
		return nil, false
	}
	return factory(), true
}

var messageFactories = map[string]func() Message{
	CmdVersion:     func() Message { return &VersionMessage{} },
	CmdVerAck:      func() Message { return &VerAckMessage{} },
	CmdAddr:        func() Message { return &AddrMessage{} },
	CmdInv:         func() Message { return &InvMessage{} },
	CmdGetData:     func() Message { return &GetDataMessage{} },
	CmdNotFound:    func() Message { return &NotFoundMessage{} },
	CmdGetBlocks:   func() Message { return &GetBlocksMessage{} },
	CmdGetHeaders:  func() Message { return &GetHeadersMessage{} },
	CmdTx:          func() Message { return &TxMessage{} },
	CmdBlock:       func() Message { return &BlockMessage{} },
	CmdHeaders:     func() Message { return &HeadersMessage{} },
	CmdGetAddr:     func() Message { return &GetAddrMessage{} },
	CmdMemPool:     func() Message { return &MemPoolMessage{} },
	CmdPing:        func() Message { return &PingMessage{} },
	CmdPong:        func() Message { return &PongMessage{} },
	CmdReject:      func() Message { return &RejectMessage{} },
	CmdFilterLoad:  func() Message { return &FilterLoadMessage{} },
	CmdFilterAdd:   func() Message { return &FilterAddMessage{} },
	CmdFilterClear: func() Message { return &FilterClearMessage{} },
	CmdMerkleBlock: func() Message { return &MerkleBlockMessage{} },
	CmdAlert:       func() Message { return &AlertMessage{} },
}

// checksum computes the first 4 bytes of SHA256(SHA256(payload)).
func checksum(payload []byte) [4]byte {
	h := chainhash.DoubleHashB(payload)
	var out [4]byte
	copy(out[:], h[:4])
	return out
}

// EncodeMessage serializes msg's payload into a buffer, computes the
// frame's length and checksum from it, and returns the full envelope +
// payload bytes ready to write, mirroring Node.send()'s "serialize into
// a counting hash stream" approach (see peer.Node.Send) at the message
// level rather than the connection level.
func EncodeMessage(magic Magic, msg Message) ([]byte, error) {
	payloadBuf := serialize.NewStringSink()
	if err := msg.Serialize(payloadBuf); err != nil {
		return nil, err
	}
	payload := payloadBuf.Bytes()

	header := &MessageHeader{
		Magic:    magic,
		Command:  msg.Command(),
		Length:   uint32(len(payload)),
		Checksum: checksum(payload),
	}

	out := serialize.NewStringSink()
	if err := WriteMessageHeader(out, header); err != nil {
		return nil, err
	}
	if err := out.WriteFull(payload); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeMessagePayload parses a message's payload, verifying the frame's
// checksum and that no extraneous bytes remain, per spec.md §4.6's
// read-path description: the underlying Source is wrapped in a
// LimitedSource composed through a Tap(SHA256) so the checksum is
// computed as the payload is parsed rather than after buffering it.
func DecodeMessagePayload(src serialize.Source, header *MessageHeader) (Message, error) {
	digest, sum := chainhash.NewDoubleHasher()
	limited := serialize.NewLimitedSource(src, int(header.Length))
	tapped := serialize.NewTap(limited, digest)

	msg, known := MakeEmptyMessage(header.Command)
	if !known {
		msg = &UnsupportedMessage{CommandName: header.Command}
	}
	if err := msg.Deserialize(tapped); err != nil {
		log.Warnf("failed to decode %q payload: %v", header.Command, err)
		return nil, err
	}
	if limited.Remaining() != 0 {
		log.Warnf("%q frame left %d bytes unconsumed", header.Command, limited.Remaining())
		return nil, serialize.NewInvalidFormat("message: extraneous data in payload")
	}
	got := sum()
	if [4]byte{got[0], got[1], got[2], got[3]} != header.Checksum {
		log.Warnf("%q frame failed checksum verification", header.Command)
		return nil, serialize.ErrInvalidChecksum
	}
	return msg, nil
}
