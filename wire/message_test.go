package wire

import (
	"bytes"
	"testing"

	"github.com/conformal-wire/satoshiwire/bloom"
	"github.com/conformal-wire/satoshiwire/serialize"
)

func mustEncode(t *testing.T, magic Magic, msg Message) []byte {
	t.Helper()
	b, err := EncodeMessage(magic, msg)
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	return b
}

func mustDecode(t *testing.T, b []byte) (*MessageHeader, Message) {
	t.Helper()
	src := serialize.NewMemorySource(b)
	header, err := ReadMessageHeader(src)
	if err != nil {
		t.Fatalf("ReadMessageHeader: %v", err)
	}
	msg, err := DecodeMessagePayload(src, header)
	if err != nil {
		t.Fatalf("DecodeMessagePayload: %v", err)
	}
	return header, msg
}

// TestScenarioE4VerAckFrame matches spec.md §8 E4: a verack frame on
// MAIN parses to VerAckMessage and re-serializes byte-identically.
func TestScenarioE4VerAckFrame(t *testing.T) {
	want := []byte{
		0xF9, 0xBE, 0xB4, 0xD9,
		0x76, 0x65, 0x72, 0x61, 0x63, 0x6B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x5D, 0xF6, 0xE0, 0xE2,
	}

	_, msg := mustDecode(t, want)
	if _, ok := msg.(*VerAckMessage); !ok {
		t.Fatalf("expected *VerAckMessage, got %T", msg)
	}

	got := mustEncode(t, MagicMain, msg)
	if !bytes.Equal(got, want) {
		t.Fatalf("re-encoded frame mismatch:\n got  % X\n want % X", got, want)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	cases := []Message{
		&VerAckMessage{},
		&GetAddrMessage{},
		&MemPoolMessage{},
		&FilterClearMessage{},
		&PingMessage{Nonce: 0xDEADBEEFCAFEBABE},
		&PongMessage{Nonce: 42},
		&AddrMessage{Addrs: []*AddressWithTimestamp{
			{Timestamp: 12345, Address: NetworkAddress{Services: SFNodeNetwork, Port: 8333}},
		}},
		&InvMessage{Inventory: []*InventoryVector{{Type: InvTx}}},
		&GetDataMessage{Inventory: []*InventoryVector{{Type: InvBlock}}},
		&NotFoundMessage{},
		&GetBlocksMessage{Version: ProtocolVersion},
		&GetHeadersMessage{Version: ProtocolVersion},
		&RejectMessage{Message: "tx", Code: RejectDuplicate, Reason: "already have"},
		&FilterAddMessage{Data: []byte{0x01, 0x02, 0x03}},
		&AlertMessage{Payload: []byte{0xAA}, Signature: []byte{0xBB, 0xCC}},
		&HeadersMessage{},
		&TxMessage{Tx: Tx{Version: 1, LockTime: 0}},
		&BlockMessage{Header: BlockHeader{Version: 1}},
		&MerkleBlockMessage{Header: BlockHeader{Version: 1}, Flags: []byte{0x01}},
		&FilterLoadMessage{Filter: *bloom.NewFilter(10, 0.001, 0), Flags: BloomUpdateAll},
	}

	for _, c := range cases {
		encoded := mustEncode(t, MagicMain, c)
		header, decoded := mustDecode(t, encoded)
		if header.Command != c.Command() {
			t.Fatalf("command mismatch: got %q want %q", header.Command, c.Command())
		}
		reencoded := mustEncode(t, MagicMain, decoded)
		if !bytes.Equal(encoded, reencoded) {
			t.Fatalf("%T: round trip mismatch:\n got  % X\n want % X", c, reencoded, encoded)
		}
	}
}

func TestUnsupportedMessageFallback(t *testing.T) {
	custom := &UnsupportedMessage{CommandName: "unknowncmd", Payload: []byte{1, 2, 3, 4}}
	encoded := mustEncode(t, MagicMain, custom)
	header, decoded := mustDecode(t, encoded)
	if header.Command != "unknowncmd" {
		t.Fatalf("unexpected command: %q", header.Command)
	}
	u, ok := decoded.(*UnsupportedMessage)
	if !ok {
		t.Fatalf("expected *UnsupportedMessage, got %T", decoded)
	}
	if !bytes.Equal(u.Payload, []byte{1, 2, 3, 4}) {
		t.Fatalf("unexpected payload: % X", u.Payload)
	}
}

// TestPropertyNineBlockHeaderVersionRejected matches spec.md §8
// property 9.
func TestPropertyNineBlockHeaderVersionRejected(t *testing.T) {
	buf := serialize.NewStringSink()
	_ = serialize.WriteU32LE(buf, 4) // invalid version
	_ = buf.WriteFull(make([]byte, 32+32+4+4+4))

	var h BlockHeader
	src := serialize.NewMemorySource(buf.Bytes())
	if err := h.Deserialize(src); err == nil {
		t.Fatal("expected error for version 4")
	}
}

// TestPropertyTenHeadersRejectsNonZeroTxCount matches spec.md §8
// property 10.
func TestPropertyTenHeadersRejectsNonZeroTxCount(t *testing.T) {
	buf := serialize.NewStringSink()
	_ = serialize.WriteVarInt(buf, 1) // one header
	hdr := BlockHeader{Version: 1}
	if err := hdr.Serialize(buf); err != nil {
		t.Fatalf("serialize header: %v", err)
	}
	_ = serialize.WriteVarInt(buf, 1) // non-zero tx_count

	var m HeadersMessage
	src := serialize.NewMemorySource(buf.Bytes())
	if err := m.Deserialize(src); err == nil {
		t.Fatal("expected error for non-zero inline tx_count")
	}
}
