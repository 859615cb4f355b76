package serialize

// Bitcoin-flavored unsigned varint, per spec.md §4.1:
//
//	v < 0xFD            -> single byte v
//	v <= 0xFFFF          -> 0xFD followed by 2 LE bytes
//	v <= 0xFFFFFFFF      -> 0xFE followed by 4 LE bytes
//	otherwise            -> 0xFF followed by 8 LE bytes
//
// The encoder always emits the canonical (shortest) form. The decoder
// rejects non-canonical forms with InvalidFormat — see DESIGN.md's Open
// Question decision — even though spec.md permits accepting them; this
// implementation chooses the stricter of the two allowed policies.

const (
	varintTag16 = 0xFD
	varintTag32 = 0xFE
	varintTag64 = 0xFF
)

// MaxVarIntPayload is the largest number of bytes a varint encoding
// occupies: one tag byte followed by eight value bytes.
const MaxVarIntPayload = 9

func ReadVarInt(s Source) (uint64, error) {
	tag, err := ReadU8(s)
	if err != nil {
		return 0, err
	}
	switch tag {
	case varintTag16:
		v, err := ReadU16LE(s)
		if err != nil {
			return 0, err
		}
		if v < varintTag16 {
			return 0, invalidFormat("varint: non-canonical 3-byte encoding")
		}
		return uint64(v), nil
	case varintTag32:
		v, err := ReadU32LE(s)
		if err != nil {
			return 0, err
		}
		if v <= 0xFFFF {
			return 0, invalidFormat("varint: non-canonical 5-byte encoding")
		}
		return uint64(v), nil
	case varintTag64:
		v, err := ReadU64LE(s)
		if err != nil {
			return 0, err
		}
		if v <= 0xFFFFFFFF {
			return 0, invalidFormat("varint: non-canonical 9-byte encoding")
		}
		return v, nil
	default:
		return uint64(tag), nil
	}
}

func WriteVarInt(s Sink, v uint64) error {
	switch {
	case v < varintTag16:
		return WriteU8(s, uint8(v))
	case v <= 0xFFFF:
		if err := WriteU8(s, varintTag16); err != nil {
			return err
		}
		return WriteU16LE(s, uint16(v))
	case v <= 0xFFFFFFFF:
		if err := WriteU8(s, varintTag32); err != nil {
			return err
		}
		return WriteU32LE(s, uint32(v))
	default:
		if err := WriteU8(s, varintTag64); err != nil {
			return err
		}
		return WriteU64LE(s, v)
	}
}

// ReadVarIntN decodes a varint and fails with Overflow if it exceeds the
// caller's target width, per spec.md §4.1.
func ReadVarIntN(s Source, maxValue uint64) (uint64, error) {
	v, err := ReadVarInt(s)
	if err != nil {
		return 0, err
	}
	if v > maxValue {
		return 0, overflow("varint exceeds target width")
	}
	return v, nil
}

// ReadVarString reads a varint-prefixed length followed by that many raw
// bytes, interpreted as a UTF-8/ASCII string.
func ReadVarString(s Source, maxLen uint64) (string, error) {
	n, err := ReadVarIntN(s, maxLen)
	if err != nil {
		return "", err
	}
	b, err := ReadBytes(s, int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func WriteVarString(s Sink, v string) error {
	if err := WriteVarInt(s, uint64(len(v))); err != nil {
		return err
	}
	return WriteBytes(s, []byte(v))
}

// ReadVarBytes reads a varint-prefixed length followed by that many raw bytes.
func ReadVarBytes(s Source, maxLen uint64) ([]byte, error) {
	n, err := ReadVarIntN(s, maxLen)
	if err != nil {
		return nil, err
	}
	return ReadBytes(s, int(n))
}

func WriteVarBytes(s Sink, v []byte) error {
	if err := WriteVarInt(s, uint64(len(v))); err != nil {
		return err
	}
	return WriteBytes(s, v)
}
