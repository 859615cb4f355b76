package peer

import "github.com/conformal-wire/satoshiwire/wire"

// Handler receives each message a Node parses from its peer, one method
// per concrete wire.Message type, exhaustively covering the tagged
// union dispatch produces. Embed DefaultHandler to get no-op defaults
// for variants a particular Node doesn't care about — matching the
// source's virtual dispatch(M) overloads, which default to no-op per
// variant.
type Handler interface {
	HandleVersion(*wire.VersionMessage)
	HandleVerAck(*wire.VerAckMessage)
	HandleAddr(*wire.AddrMessage)
	HandleInv(*wire.InvMessage)
	HandleGetData(*wire.GetDataMessage)
	HandleNotFound(*wire.NotFoundMessage)
	HandleGetBlocks(*wire.GetBlocksMessage)
	HandleGetHeaders(*wire.GetHeadersMessage)
	HandleTx(*wire.TxMessage)
	HandleBlock(*wire.BlockMessage)
	HandleHeaders(*wire.HeadersMessage)
	HandleGetAddr(*wire.GetAddrMessage)
	HandleMemPool(*wire.MemPoolMessage)
	HandlePing(*wire.PingMessage)
	HandlePong(*wire.PongMessage)
	HandleReject(*wire.RejectMessage)
	HandleFilterLoad(*wire.FilterLoadMessage)
	HandleFilterAdd(*wire.FilterAddMessage)
	HandleFilterClear(*wire.FilterClearMessage)
	HandleMerkleBlock(*wire.MerkleBlockMessage)
	HandleAlert(*wire.AlertMessage)
	HandleUnsupported(*wire.UnsupportedMessage)
}

// DefaultHandler implements Handler with a no-op per variant; embed it
// in a concrete handler and override only the methods that matter.
type DefaultHandler struct{}

func (DefaultHandler) HandleVersion(*wire.VersionMessage)         {}
func (DefaultHandler) HandleVerAck(*wire.VerAckMessage)           {}
func (DefaultHandler) HandleAddr(*wire.AddrMessage)               {}
func (DefaultHandler) HandleInv(*wire.InvMessage)                 {}
func (DefaultHandler) HandleGetData(*wire.GetDataMessage)         {}
func (DefaultHandler) HandleNotFound(*wire.NotFoundMessage)       {}
func (DefaultHandler) HandleGetBlocks(*wire.GetBlocksMessage)     {}
func (DefaultHandler) HandleGetHeaders(*wire.GetHeadersMessage)   {}
func (DefaultHandler) HandleTx(*wire.TxMessage)                   {}
func (DefaultHandler) HandleBlock(*wire.BlockMessage)             {}
func (DefaultHandler) HandleHeaders(*wire.HeadersMessage)         {}
func (DefaultHandler) HandleGetAddr(*wire.GetAddrMessage)         {}
func (DefaultHandler) HandleMemPool(*wire.MemPoolMessage)         {}
func (DefaultHandler) HandlePing(*wire.PingMessage)               {}
func (DefaultHandler) HandlePong(*wire.PongMessage)               {}
func (DefaultHandler) HandleReject(*wire.RejectMessage)           {}
func (DefaultHandler) HandleFilterLoad(*wire.FilterLoadMessage)   {}
func (DefaultHandler) HandleFilterAdd(*wire.FilterAddMessage)     {}
func (DefaultHandler) HandleFilterClear(*wire.FilterClearMessage) {}
func (DefaultHandler) HandleMerkleBlock(*wire.MerkleBlockMessage) {}
func (DefaultHandler) HandleAlert(*wire.AlertMessage)             {}
func (DefaultHandler) HandleUnsupported(*wire.UnsupportedMessage) {}

// dispatch type-switches on msg's concrete type and invokes the
// matching Handler method, mirroring the source's per-variant virtual
// dispatch(M) without needing a vtable.
func dispatch(h Handler, msg wire.Message) {
	switch m := msg.(type) {
	case *wire.VersionMessage:
		h.HandleVersion(m)
	case *wire.VerAckMessage:
		h.HandleVerAck(m)
	case *wire.AddrMessage:
		h.HandleAddr(m)
	case *wire.InvMessage:
		h.HandleInv(m)
	case *wire.GetDataMessage:
		h.HandleGetData(m)
	case *wire.NotFoundMessage:
		h.HandleNotFound(m)
	case *wire.GetBlocksMessage:
		h.HandleGetBlocks(m)
	case *wire.GetHeadersMessage:
		h.HandleGetHeaders(m)
	case *wire.TxMessage:
		h.HandleTx(m)
	case *wire.BlockMessage:
		h.HandleBlock(m)
	case *wire.HeadersMessage:
		h.HandleHeaders(m)
	case *wire.GetAddrMessage:
		h.HandleGetAddr(m)
	case *wire.MemPoolMessage:
		h.HandleMemPool(m)
	case *wire.PingMessage:
		h.HandlePing(m)
	case *wire.PongMessage:
		h.HandlePong(m)
	case *wire.RejectMessage:
		h.HandleReject(m)
	case *wire.FilterLoadMessage:
		h.HandleFilterLoad(m)
	case *wire.FilterAddMessage:
		h.HandleFilterAdd(m)
	case *wire.FilterClearMessage:
		h.HandleFilterClear(m)
	case *wire.MerkleBlockMessage:
		h.HandleMerkleBlock(m)
	case *wire.AlertMessage:
		h.HandleAlert(m)
	case *wire.UnsupportedMessage:
		h.HandleUnsupported(m)
	}
}
