package wire

import (
	"net"

	"github.com/conformal-wire/satoshiwire/serialize"
)

// NetworkAddress is {services u64 LE, addr 16-byte IPv6, port u16 BE},
// per spec.md §3. IPv4 addresses are expressed as ::ffff:a.b.c.d. This is
// the "inner" 26-byte form used inside version; the addr message
// prefixes each entry with an additional 4-byte timestamp (see
// AddrMessage).
type NetworkAddress struct {
	Services ServiceFlags
	IP       net.IP
	Port     uint16
}

func (a *NetworkAddress) Deserialize(src serialize.Source) error {
	services, err := serialize.ReadU64LE(src)
	if err != nil {
		return err
	}
	ip, err := serialize.ReadBytes(src, 16)
	if err != nil {
		return err
	}
	port, err := serialize.ReadU16BE(src)
	if err != nil {
		return err
	}
	a.Services = ServiceFlags(services)
	a.IP = net.IP(ip)
	a.Port = port
	return nil
}

func (a *NetworkAddress) Serialize(sink serialize.Sink) error {
	if err := serialize.WriteU64LE(sink, uint64(a.Services)); err != nil {
		return err
	}
	ip := a.IP.To16()
	if ip == nil {
		ip = make(net.IP, 16)
	}
	if err := serialize.WriteBytes(sink, ip); err != nil {
		return err
	}
	return serialize.WriteU16BE(sink, a.Port)
}
