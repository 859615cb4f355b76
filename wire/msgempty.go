package wire

import "github.com/conformal-wire/satoshiwire/serialize"

// GetAddrMessage requests known peer addresses; carries no payload.
type GetAddrMessage struct{}

func (m *GetAddrMessage) Command() string                        { return CmdGetAddr }
func (m *GetAddrMessage) Deserialize(src serialize.Source) error { return nil }
func (m *GetAddrMessage) Serialize(sink serialize.Sink) error     { return nil }

// MemPoolMessage requests the peer's mempool transaction ids; carries no
// payload.
type MemPoolMessage struct{}

func (m *MemPoolMessage) Command() string                        { return CmdMemPool }
func (m *MemPoolMessage) Deserialize(src serialize.Source) error { return nil }
func (m *MemPoolMessage) Serialize(sink serialize.Sink) error     { return nil }

// FilterClearMessage removes a previously loaded bloom filter; carries
// no payload.
type FilterClearMessage struct{}

func (m *FilterClearMessage) Command() string                        { return CmdFilterClear }
func (m *FilterClearMessage) Deserialize(src serialize.Source) error { return nil }
func (m *FilterClearMessage) Serialize(sink serialize.Sink) error     { return nil }
