package serialize

import "encoding/binary"

// All protocol fields carry explicit endianness; there is no implicit
// integer field anywhere in this package. Per spec.md's Design Notes, byte
// order is a property of the call made, not a type wrapper threaded through
// the recursive descent.

func ReadU8(s Source) (uint8, error) {
	var b [1]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func WriteU8(s Sink, v uint8) error {
	return s.WriteFull([]byte{v})
}

func ReadU16LE(s Source) (uint16, error) {
	var b [2]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func WriteU16LE(s Sink, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return s.WriteFull(b[:])
}

func ReadU16BE(s Source) (uint16, error) {
	var b [2]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func WriteU16BE(s Sink, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return s.WriteFull(b[:])
}

func ReadU32LE(s Source) (uint32, error) {
	var b [4]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func WriteU32LE(s Sink, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return s.WriteFull(b[:])
}

func ReadU32BE(s Source) (uint32, error) {
	var b [4]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func WriteU32BE(s Sink, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return s.WriteFull(b[:])
}

func ReadU64LE(s Source) (uint64, error) {
	var b [8]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func WriteU64LE(s Sink, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return s.WriteFull(b[:])
}

func ReadI32LE(s Source) (int32, error) {
	v, err := ReadU32LE(s)
	return int32(v), err
}

func WriteI32LE(s Sink, v int32) error {
	return WriteU32LE(s, uint32(v))
}

func ReadI64LE(s Source) (int64, error) {
	v, err := ReadU64LE(s)
	return int64(v), err
}

func WriteI64LE(s Sink, v int64) error {
	return WriteU64LE(s, uint64(v))
}

// ReadBytes reads exactly n fixed-size bytes.
func ReadBytes(s Source, n int) ([]byte, error) {
	b := make([]byte, n)
	if err := s.ReadFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

func WriteBytes(s Sink, b []byte) error {
	return s.WriteFull(b)
}

// ReadBool decodes a single byte as a boolean per spec.md's `relay u8 bool`.
func ReadBool(s Source) (bool, error) {
	v, err := ReadU8(s)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func WriteBool(s Sink, v bool) error {
	if v {
		return WriteU8(s, 1)
	}
	return WriteU8(s, 0)
}
