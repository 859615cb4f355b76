package peer

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/conformal-wire/satoshiwire/serialize"
	"github.com/conformal-wire/satoshiwire/wire"
)

type recordingHandler struct {
	DefaultHandler
	gotVerAck chan struct{}
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{gotVerAck: make(chan struct{}, 1)}
}

func (h *recordingHandler) HandleVerAck(*wire.VerAckMessage) {
	h.gotVerAck <- struct{}{}
}

func TestNodeSendRunRoundTrip(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	server := NewNode(serverConn, wire.MagicTestnet3)
	client := NewNode(clientConn, wire.MagicTestnet3)

	handler := newRecordingHandler()
	go func() {
		_ = server.Run(handler)
	}()

	if err := client.Send(&wire.VerAckMessage{}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case <-handler.gotVerAck:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for verack dispatch")
	}
}

func TestInitVersionMessageDefaults(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	node := NewNode(clientConn, wire.MagicMain)
	var msg wire.VersionMessage
	node.InitVersionMessage(&msg, 0xFEEDFACE)

	if msg.Version != wire.ProtocolVersion {
		t.Fatalf("unexpected version: %d", msg.Version)
	}
	if msg.StartHeight != -1 {
		t.Fatalf("unexpected start height: %d", msg.StartHeight)
	}
	if !msg.Relay {
		t.Fatal("expected relay=true")
	}
	if msg.Nonce != 0xFEEDFACE {
		t.Fatalf("unexpected nonce: %d", msg.Nonce)
	}
	if !msg.AddrFrom.IP.Equal(net.IPv6zero) {
		t.Fatalf("unexpected addr_from: %v", msg.AddrFrom.IP)
	}
}

// TestPropertyElevenInvalidMagic matches spec.md §8 property 11: Run
// raises InvalidMagic when the frame's magic differs from the
// configured network.
func TestPropertyElevenInvalidMagic(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	server := NewNode(serverConn, wire.MagicMain)
	client := NewNode(clientConn, wire.MagicTestnet3)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Run(newRecordingHandler()) }()

	if err := client.Send(&wire.VerAckMessage{}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case err := <-errCh:
		var serr *serialize.Error
		if !errors.As(err, &serr) || serr.Kind != serialize.InvalidMagic {
			t.Fatalf("expected InvalidMagic, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Run to return")
	}
}

// TestPropertyTwelveExtraneousData matches spec.md §8 property 12: a
// frame whose declared length exceeds what its payload actually
// consumes fails with InvalidFormat("extraneous data").
func TestPropertyTwelveExtraneousData(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	server := NewNode(serverConn, wire.MagicMain)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Run(newRecordingHandler()) }()

	// A verack frame with extra trailing bytes folded into its declared
	// length; verack's payload is empty, so any declared length > 0
	// leaves bytes unconsumed.
	sink := serialize.NewBufferedSink(clientConn, 64)
	header := &wire.MessageHeader{
		Magic:   wire.MagicMain,
		Command: wire.CmdVerAck,
		Length:  4,
	}
	payload := []byte{0xAA, 0xBB, 0xCC, 0xDD}

	if err := wire.WriteMessageHeader(sink, header); err != nil {
		t.Fatalf("WriteMessageHeader: %v", err)
	}
	if err := sink.WriteFull(payload); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	if err := sink.FlushFully(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	select {
	case err := <-errCh:
		var serr *serialize.Error
		if !errors.As(err, &serr) || serr.Kind != serialize.InvalidFormat {
			t.Fatalf("expected InvalidFormat, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Run to return")
	}
}
