// Package peer implements the connection-level state machine that
// drives one socket through the Bitcoin handshake and message loop:
// Node owns the socket and the network's expected magic, and Run
// dispatches each parsed wire.Message to a Handler by concrete type.
package peer

import (
	"net"
	"time"

	"github.com/conformal-wire/satoshiwire/serialize"
	"github.com/conformal-wire/satoshiwire/wire"
	"github.com/davecgh/go-spew/spew"
)

// State names the stage of the handshake a Node has reached. Run itself
// carries no state beyond the frame loop; these transitions are driven
// by the embedding application's Handler as it observes VersionMessage
// and VerAckMessage arrive and sends its own.
type State int

const (
	PreHandshake State = iota
	VersionSent
	VersionReceived
	VerAckReceived
	Established
	Closed
)

func (s State) String() string {
	switch s {
	case PreHandshake:
		return "pre-handshake"
	case VersionSent:
		return "version-sent"
	case VersionReceived:
		return "version-received"
	case VerAckReceived:
		return "verack-received"
	case Established:
		return "established"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Node owns one socket and one expected network magic.
type Node struct {
	conn  net.Conn
	magic wire.Magic
	src   serialize.Source
	sink  *serialize.BufferedSink

	state State
}

// NewNode wraps a connection for the given network, buffering reads and
// writes the way the teacher's peer.go buffers its socket.
func NewNode(conn net.Conn, magic wire.Magic) *Node {
	return &Node{
		conn:  conn,
		magic: magic,
		src:   serialize.NewBufferedSource(conn, 3072),
		sink:  serialize.NewBufferedSink(conn, 3072),
		state: PreHandshake,
	}
}

// State reports the Node's current handshake stage.
func (n *Node) State() State { return n.state }

// SetState lets the embedding application advance the handshake state
// as it observes messages. Run never changes the state; only NewNode
// (PreHandshake), Close (Closed) and SetState do.
func (n *Node) SetState(s State) { n.state = s }

// InitVersionMessage populates msg for this Node's handshake, per the
// node's connected peer address and the current time: protocol_version,
// services=0, timestamp=now, addr_recv derived from the remote address,
// addr_from=::, nonce, start_height=-1, relay=true.
func (n *Node) InitVersionMessage(msg *wire.VersionMessage, nonce uint64) {
	msg.Version = wire.ProtocolVersion
	msg.Services = 0
	msg.Timestamp = time.Now().Unix()

	msg.AddrRecv = wire.NetworkAddress{Services: wire.SFNodeNetwork}
	if addr, ok := n.conn.RemoteAddr().(*net.TCPAddr); ok {
		msg.AddrRecv.IP = addr.IP
		msg.AddrRecv.Port = uint16(addr.Port)
	}

	msg.AddrFrom = wire.NetworkAddress{Services: msg.Services, IP: net.IPv6zero}
	msg.Nonce = nonce
	msg.StartHeight = -1
	msg.Relay = true
}

// Send serializes msg into a counting hash stream to obtain both length
// and checksum, then writes the header followed by the payload,
// flushing the sink fully.
func (n *Node) Send(msg wire.Message) error {
	log.Debugf("sending %s to %s", msg.Command(), n.conn.RemoteAddr())
	log.Tracef("%v", newLogClosure(func() string { return spew.Sdump(msg) }))

	frame, err := wire.EncodeMessage(n.magic, msg)
	if err != nil {
		return err
	}
	if err := n.sink.WriteFull(frame); err != nil {
		return err
	}
	return n.sink.FlushFully()
}

// Run reads frames in a loop until an error occurs: it checks the
// frame's magic, decodes its payload (verifying checksum and the
// absence of extraneous bytes), and dispatches the resulting
// wire.Message to handler by concrete type. An unrecognized command
// dispatches HandleUnsupported and logs a warning rather than
// disconnecting.
func (n *Node) Run(handler Handler) error {
	for {
		header, err := wire.ReadMessageHeader(n.src)
		if err != nil {
			return err
		}
		if header.Magic != n.magic {
			return serialize.NewInvalidMagic("node: frame magic does not match configured network")
		}

		msg, err := wire.DecodeMessagePayload(n.src, header)
		if err != nil {
			return err
		}

		log.Debugf("received %s from %s", msg.Command(), n.conn.RemoteAddr())
		log.Tracef("%v", newLogClosure(func() string { return spew.Sdump(msg) }))

		if _, ok := msg.(*wire.UnsupportedMessage); ok {
			log.Warnf("received unsupported message: %q", header.Command)
		}

		dispatch(handler, msg)
	}
}

// Close closes the underlying connection and marks the Node closed.
func (n *Node) Close() error {
	n.state = Closed
	return n.conn.Close()
}
